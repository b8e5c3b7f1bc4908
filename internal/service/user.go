package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"assetz/internal/model"
	"assetz/internal/repository"
)

// RegisterUserInput carries the fields needed to create an account.
type RegisterUserInput struct {
	Username       string
	Email          string
	FullName       string
	Password       string
	EmployeeID     string
	Designation    string
	Phone          string
	DepartmentID   *string
	LocationID     *string
	IsCompanyAdmin bool
	IsApprover     bool
	IsCustodian    bool
}

// UpdateUserInput carries the mutable profile fields. Nil pointers leave the
// stored value unchanged.
type UpdateUserInput struct {
	Email          *string
	FullName       *string
	Designation    *string
	Phone          *string
	DepartmentID   *string
	LocationID     *string
	IsCompanyAdmin *bool
	IsApprover     *bool
	IsCustodian    *bool
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      *model.User `json:"user"`
}

// UserListResult is the service-level DTO for paginated users.
type UserListResult struct {
	Items []model.User `json:"data"`
	Total int          `json:"total"`
}

// UserService defines account management and authentication use cases.
type UserService interface {
	Register(ctx context.Context, actor Actor, meta RequestMeta, in RegisterUserInput) (*model.User, error)
	Login(ctx context.Context, meta RequestMeta, username, password string) (*LoginResult, error)
	Get(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context, limit, offset int) (*UserListResult, error)
	Update(ctx context.Context, actor Actor, meta RequestMeta, id string, in UpdateUserInput) (*model.User, error)
	Deactivate(ctx context.Context, actor Actor, meta RequestMeta, id string) error
}

type userService struct {
	repo       repository.UserRepository
	tokens     *TokenIssuer
	audit      AuditService
	bcryptCost int
}

// NewUserService constructs a UserService. bcryptCost <= 0 selects the
// library default.
func NewUserService(repo repository.UserRepository, tokens *TokenIssuer, audit AuditService, bcryptCost int) UserService {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &userService{repo: repo, tokens: tokens, audit: audit, bcryptCost: bcryptCost}
}

func (s *userService) Register(ctx context.Context, actor Actor, meta RequestMeta, in RegisterUserInput) (*model.User, error) {
	if _, err := s.repo.FindByUsername(ctx, in.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	u := &model.User{
		ID:             uuid.New().String(),
		Username:       in.Username,
		Email:          in.Email,
		FullName:       in.FullName,
		PasswordHash:   string(hash),
		EmployeeID:     in.EmployeeID,
		Designation:    in.Designation,
		Phone:          in.Phone,
		DepartmentID:   in.DepartmentID,
		LocationID:     in.LocationID,
		IsCompanyAdmin: in.IsCompanyAdmin,
		IsApprover:     in.IsApprover,
		IsCustodian:    in.IsCustodian,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	stored, err := s.repo.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditCreate, "user", stored.ID, stored.Username, "user registered", nil, stored)
	return stored, nil
}

func (s *userService) Login(ctx context.Context, meta RequestMeta, username, password string) (*LoginResult, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrUserInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(u.ID, u.Username, u.IsCompanyAdmin, u.IsApprover, u.IsCustodian)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	actor := Actor{ID: u.ID, Username: u.Username, IsCompanyAdmin: u.IsCompanyAdmin, IsApprover: u.IsApprover, IsCustodian: u.IsCustodian}
	_ = s.audit.Record(ctx, actor, meta, model.AuditLogin, "user", u.ID, u.Username, "user logged in", nil, nil)

	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: u}, nil
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) List(ctx context.Context, limit, offset int) (*UserListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &UserListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *userService) Update(ctx context.Context, actor Actor, meta RequestMeta, id string, in UpdateUserInput) (*model.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	before := *u

	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.FullName != nil {
		u.FullName = *in.FullName
	}
	if in.Designation != nil {
		u.Designation = *in.Designation
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.DepartmentID != nil {
		u.DepartmentID = in.DepartmentID
	}
	if in.LocationID != nil {
		u.LocationID = in.LocationID
	}
	if in.IsCompanyAdmin != nil {
		u.IsCompanyAdmin = *in.IsCompanyAdmin
	}
	if in.IsApprover != nil {
		u.IsApprover = *in.IsApprover
	}
	if in.IsCustodian != nil {
		u.IsCustodian = *in.IsCustodian
	}
	u.UpdatedAt = time.Now().UTC()

	stored, err := s.repo.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditUpdate, "user", stored.ID, stored.Username, "user updated", &before, stored)
	return stored, nil
}

func (s *userService) Deactivate(ctx context.Context, actor Actor, meta RequestMeta, id string) error {
	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	_ = s.audit.Record(ctx, actor, meta, model.AuditDelete, "user", u.ID, u.Username, "user deactivated", u, nil)
	return nil
}
