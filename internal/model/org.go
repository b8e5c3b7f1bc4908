package model

import "time"

// Location types mirror the physical sites assets can live at.
const (
	LocationOffice     = "OFFICE"
	LocationWarehouse  = "WAREHOUSE"
	LocationFactory    = "FACTORY"
	LocationBranch     = "BRANCH"
	LocationDataCenter = "DATA_CENTER"
	LocationOther      = "OTHER"
)

// Location is a physical site where assets are deployed.
type Location struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Code         string     `json:"code"`
	AddressLine1 string     `json:"address_line1"`
	AddressLine2 string     `json:"address_line2,omitempty"`
	City         string     `json:"city"`
	State        string     `json:"state"`
	Country      string     `json:"country"`
	PostalCode   string     `json:"postal_code"`
	LocationType string     `json:"location_type"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"-"`
}

// Department groups users and assets organizationally.
type Department struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Code        string     `json:"code"`
	Description string     `json:"description,omitempty"`
	HeadID      *string    `json:"head_id,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`
}
