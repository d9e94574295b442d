package dto

import (
	"time"

	"voyago/internal/domains/booking/model"
	"voyago/shared"
	gDto "voyago/shared/dto"
	gModel "voyago/shared/model"
	"voyago/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	TravelPackageID string `json:"travel_package_id" validate:"required,uuid"`
	RoomsCount      int    `json:"rooms_count"       validate:"required,min=1"`
}

func (c *CreateBookingRequest) ToModel(userID string) model.Booking {
	return model.Booking{
		ID:              uuid.NewString(),
		TravelPackageID: c.TravelPackageID,
		UserID:          userID,
		RoomsCount:      c.RoomsCount,
		Status:          model.StatusActive,
		PaymentStatus:   model.PaymentStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending paid refunded failed"`
}

type BookingResponse struct {
	ID              string     `json:"id"`
	TravelPackageID string     `json:"travel_package_id"`
	UserID          string     `json:"user_id"`
	RoomsCount      int        `json:"rooms_count"`
	Status          string     `json:"status"`
	PaymentStatus   string     `json:"payment_status"`
	ReminderSentAt  *time.Time `json:"reminder_sent_at,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.TravelPackageID = mod.TravelPackageID
	r.UserID = mod.UserID
	r.RoomsCount = mod.RoomsCount
	r.Status = mod.Status
	r.PaymentStatus = mod.PaymentStatus
	r.ReminderSentAt = mod.ReminderSentAt
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
