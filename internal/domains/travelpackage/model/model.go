package model

import (
	"time"

	"voyago/shared/model"
)

const (
	TableName  = "travel_packages"
	EntityName = "travel_package"

	FieldID           = "id"
	FieldDestination  = "destination"
	FieldCountry      = "country"
	FieldStartDate    = "start_date"
	FieldEndDate      = "end_date"
	FieldPrice        = "price"
	FieldTotalRoomCap = "total_room_cap"
	FieldPackageType  = "package_type"
	FieldDescription  = "description"
	FieldVisible      = "visible"
	FieldImages       = "images"
)

// TravelPackage is the bookable unit. TotalRoomCap is the admin-configured
// ceiling on bookable rooms, independent of any physical room count.
type TravelPackage struct {
	ID           string    `db:"id"`
	Destination  string    `db:"destination"`
	Country      string    `db:"country"`
	StartDate    time.Time `db:"start_date"`
	EndDate      time.Time `db:"end_date"`
	Price        float64   `db:"price"`
	TotalRoomCap int       `db:"total_room_cap"`
	PackageType  string    `db:"package_type"`
	Description  *string   `db:"description"`
	Visible      bool      `db:"visible"`
	Images       ImageList `db:"images"`
	model.Metadata
}
