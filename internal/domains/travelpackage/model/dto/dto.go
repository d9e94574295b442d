package dto

import (
	"mime/multipart"
	"time"

	"voyago/internal/domains/travelpackage/model"
	"voyago/shared"
	gDto "voyago/shared/dto"
	gModel "voyago/shared/model"
	"voyago/shared/timezone"

	"github.com/google/uuid"
)

type CreateTravelPackageRequest struct {
	Destination  string                `json:"destination"    validate:"required,max=100"`
	Country      string                `json:"country"        validate:"required,max=100"`
	StartDate    time.Time             `json:"start_date"     validate:"required"`
	EndDate      time.Time             `json:"end_date"       validate:"required,gtfield=StartDate"`
	Price        float64               `json:"price"          validate:"required,min=0"`
	TotalRoomCap int                   `json:"total_room_cap" validate:"required,min=1"`
	PackageType  string                `json:"package_type"   validate:"required,max=50"`
	Description  *string               `json:"description"    validate:"omitempty,max=2000"`
	Visible      *bool                 `json:"visible"        validate:"omitempty"`
	Image        *multipart.FileHeader `json:"image"          validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile    multipart.File        `json:"-"`
}

func (c *CreateTravelPackageRequest) ToModel(user string, images model.ImageList) model.TravelPackage {
	visible := true
	if c.Visible != nil {
		visible = *c.Visible
	}

	return model.TravelPackage{
		ID:           uuid.NewString(),
		Destination:  c.Destination,
		Country:      c.Country,
		StartDate:    c.StartDate,
		EndDate:      c.EndDate,
		Price:        c.Price,
		TotalRoomCap: c.TotalRoomCap,
		PackageType:  c.PackageType,
		Description:  c.Description,
		Visible:      visible,
		Images:       images,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTravelPackageRequest struct {
	Destination  string                `db:"destination"    json:"destination"    validate:"omitempty,max=100"`
	Country      string                `db:"country"        json:"country"        validate:"omitempty,max=100"`
	StartDate    *time.Time            `db:"start_date"     json:"start_date"     validate:"omitempty"`
	EndDate      *time.Time            `db:"end_date"       json:"end_date"       validate:"omitempty"`
	Price        *float64              `db:"price"          json:"price"          validate:"omitempty,min=0"`
	TotalRoomCap *int                  `db:"total_room_cap" json:"total_room_cap" validate:"omitempty,min=1"`
	PackageType  string                `db:"package_type"   json:"package_type"   validate:"omitempty,max=50"`
	Description  *string               `db:"description"    json:"description"    validate:"omitempty,max=2000"`
	Visible      *bool                 `db:"visible"        json:"visible"        validate:"omitempty"`
	Image        *multipart.FileHeader `json:"image"        validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile    multipart.File        `json:"-"`
}

type TravelPackageResponse struct {
	ID             string        `json:"id"`
	Destination    string        `json:"destination"`
	Country        string        `json:"country"`
	StartDate      time.Time     `json:"start_date"`
	EndDate        time.Time     `json:"end_date"`
	Price          float64       `json:"price"`
	TotalRoomCap   int           `json:"total_room_cap"`
	PackageType    string        `json:"package_type"`
	Description    *string       `json:"description"`
	Visible        bool          `json:"visible"`
	Images         []model.Image `json:"images"`
	RemainingRooms int           `json:"remaining_rooms"`
	gDto.Metadata
}

func (r *TravelPackageResponse) FromModel(mod model.TravelPackage, remaining int) {
	r.ID = mod.ID
	r.Destination = mod.Destination
	r.Country = mod.Country
	r.StartDate = mod.StartDate
	r.EndDate = mod.EndDate
	r.Price = mod.Price
	r.TotalRoomCap = mod.TotalRoomCap
	r.PackageType = mod.PackageType
	r.Description = mod.Description
	r.Visible = mod.Visible
	r.Images = mod.Images
	r.RemainingRooms = remaining
	r.Metadata.FromModel(mod.Metadata)
}

type TravelPackageListItem struct {
	ID           string    `json:"id"`
	Destination  string    `json:"destination"`
	Country      string    `json:"country"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Price        float64   `json:"price"`
	TotalRoomCap int       `json:"total_room_cap"`
	PackageType  string    `json:"package_type"`
	Visible      bool      `json:"visible"`
}

func (r *TravelPackageListItem) FromModel(mod model.TravelPackage) {
	r.ID = mod.ID
	r.Destination = mod.Destination
	r.Country = mod.Country
	r.StartDate = mod.StartDate
	r.EndDate = mod.EndDate
	r.Price = mod.Price
	r.TotalRoomCap = mod.TotalRoomCap
	r.PackageType = mod.PackageType
	r.Visible = mod.Visible
}

type GetTravelPackagesResponse struct {
	TravelPackages []TravelPackageListItem `json:"travel_packages"`
	TotalPage      int                     `json:"total_page"`
	TotalData      int                     `json:"total_data"`
}

func (r *GetTravelPackagesResponse) FromModels(models []model.TravelPackage, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.TravelPackages = make([]TravelPackageListItem, len(models))
	for i, mod := range models {
		r.TravelPackages[i].FromModel(mod)
	}
}
