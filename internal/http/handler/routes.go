package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"assetz/internal/http/middleware"
	"assetz/internal/service"
)

// Services bundles everything the HTTP layer depends on.
type Services struct {
	Tokens      *service.TokenIssuer
	Users       service.UserService
	Org         service.OrgService
	Catalog     service.CatalogService
	Assets      service.AssetService
	Documents   service.DocumentService
	Workflows   service.WorkflowService
	Maintenance service.MaintenanceService
	Reports     service.ReportService
	Audit       service.AuditService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers
// stay thin; business logic lives in the services.
func RegisterRoutes(app *fiber.App, db *sql.DB, s Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/auth/login", Login(s.Users))

	auth := app.Group("", middleware.RequireAuth(s.Tokens))
	admin := middleware.RequireAdmin()
	approver := middleware.RequireApprover()

	users := auth.Group("/users")
	users.Post("/", admin, RegisterUser(s.Users))
	users.Get("/", ListUsers(s.Users))
	users.Get("/:id", GetUser(s.Users))
	users.Put("/:id", admin, UpdateUser(s.Users))
	users.Delete("/:id", admin, DeactivateUser(s.Users))

	locations := auth.Group("/locations")
	locations.Post("/", admin, CreateLocation(s.Org))
	locations.Get("/", ListLocations(s.Org))
	locations.Get("/:id", GetLocation(s.Org))
	locations.Put("/:id", admin, UpdateLocation(s.Org))
	locations.Delete("/:id", admin, DeleteLocation(s.Org))

	departments := auth.Group("/departments")
	departments.Post("/", admin, CreateDepartment(s.Org))
	departments.Get("/", ListDepartments(s.Org))
	departments.Get("/:id", GetDepartment(s.Org))
	departments.Put("/:id", admin, UpdateDepartment(s.Org))
	departments.Delete("/:id", admin, DeleteDepartment(s.Org))

	categories := auth.Group("/categories")
	categories.Post("/", admin, CreateCategory(s.Catalog))
	categories.Get("/", ListCategories(s.Catalog))
	categories.Get("/:id", GetCategory(s.Catalog))
	categories.Put("/:id", admin, UpdateCategory(s.Catalog))
	categories.Delete("/:id", admin, DeleteCategory(s.Catalog))

	vendors := auth.Group("/vendors")
	vendors.Post("/", admin, CreateVendor(s.Catalog))
	vendors.Get("/", ListVendors(s.Catalog))
	vendors.Get("/:id", GetVendor(s.Catalog))
	vendors.Put("/:id", admin, UpdateVendor(s.Catalog))
	vendors.Delete("/:id", admin, DeleteVendor(s.Catalog))

	assets := auth.Group("/assets")
	assets.Post("/", CreateAsset(s.Assets))
	assets.Get("/", ListAssets(s.Assets))
	assets.Get("/scan/:qr", GetAssetByQR(s.Assets))
	assets.Get("/:id", GetAsset(s.Assets))
	assets.Put("/:id", UpdateAsset(s.Assets))
	assets.Delete("/:id", admin, DeleteAsset(s.Assets))
	assets.Post("/:id/assign", AssignAsset(s.Assets))
	assets.Post("/:id/return", ReturnAsset(s.Assets))
	assets.Post("/:id/status", ChangeAssetStatus(s.Assets))
	assets.Get("/:id/history", AssetHistory(s.Assets))
	assets.Get("/:id/book-value", AssetBookValue(s.Assets))
	assets.Get("/:id/qr-image", AssetQRImage(s.Assets))

	assets.Post("/:id/documents", UploadAssetDocument(s.Documents))
	assets.Get("/:id/documents", ListAssetDocuments(s.Documents))
	assets.Get("/:id/documents/:docID", GetAssetDocument(s.Documents))
	assets.Get("/:id/documents/:docID/download", DownloadAssetDocument(s.Documents))
	assets.Delete("/:id/documents/:docID", DeleteAssetDocument(s.Documents))

	transfers := auth.Group("/transfers")
	transfers.Post("/", RequestTransfer(s.Workflows))
	transfers.Get("/", ListTransfers(s.Workflows))
	transfers.Get("/:id", GetTransfer(s.Workflows))
	transfers.Post("/:id/approve", approver, ApproveTransfer(s.Workflows))
	transfers.Post("/:id/reject", approver, RejectTransfer(s.Workflows))
	transfers.Post("/:id/complete", CompleteTransfer(s.Workflows))
	transfers.Post("/:id/cancel", CancelTransfer(s.Workflows))

	disposals := auth.Group("/disposals")
	disposals.Post("/", RequestDisposal(s.Workflows))
	disposals.Get("/", ListDisposals(s.Workflows))
	disposals.Get("/:id", GetDisposal(s.Workflows))
	disposals.Post("/:id/approve", approver, ApproveDisposal(s.Workflows))
	disposals.Post("/:id/reject", approver, RejectDisposal(s.Workflows))
	disposals.Post("/:id/complete", CompleteDisposal(s.Workflows))
	disposals.Post("/:id/cancel", CancelDisposal(s.Workflows))

	maint := auth.Group("/maintenance")
	maint.Post("/types", admin, CreateMaintenanceType(s.Maintenance))
	maint.Get("/types", ListMaintenanceTypes(s.Maintenance))
	maint.Get("/types/:id", GetMaintenanceType(s.Maintenance))
	maint.Post("/requests", CreateMaintenanceRequest(s.Maintenance))
	maint.Get("/requests", ListMaintenanceRequests(s.Maintenance))
	maint.Get("/requests/:id", GetMaintenanceRequest(s.Maintenance))
	maint.Post("/requests/:id/approve", approver, ApproveMaintenanceRequest(s.Maintenance))
	maint.Post("/requests/:id/reject", approver, RejectMaintenanceRequest(s.Maintenance))
	maint.Post("/requests/:id/start", StartMaintenanceRequest(s.Maintenance))
	maint.Post("/requests/:id/complete", CompleteMaintenanceRequest(s.Maintenance))
	maint.Post("/requests/:id/cancel", CancelMaintenanceRequest(s.Maintenance))
	maint.Post("/schedules", CreateMaintenanceSchedule(s.Maintenance))
	maint.Get("/schedules", ListMaintenanceSchedules(s.Maintenance))
	maint.Get("/schedules/:id", GetMaintenanceSchedule(s.Maintenance))
	maint.Put("/schedules/:id", UpdateMaintenanceSchedule(s.Maintenance))
	maint.Post("/schedules/:id/done", MarkScheduleDone(s.Maintenance))

	reports := auth.Group("/reports")
	reports.Get("/summary", AssetSummaryReport(s.Reports))
	reports.Get("/depreciation", DepreciationReport(s.Reports))
	reports.Get("/expiring-coverage", ExpiringCoverageReport(s.Reports))
	reports.Get("/assets.csv", ExportAssets(s.Reports))

	auth.Get("/audit-logs", admin, ListAuditLogs(s.Audit))
}
