package model

import (
	"time"

	"voyago/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldTravelPackageID = "travel_package_id"
	FieldUserID          = "user_id"
	FieldRoomsCount      = "rooms_count"
	FieldStatus          = "status"
	FieldPaymentStatus   = "payment_status"
	FieldReminderSentAt  = "reminder_sent_at"

	StatusActive    = "active"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"

	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
	PaymentStatusFailed   = "failed"
)

type Booking struct {
	ID              string     `db:"id"`
	TravelPackageID string     `db:"travel_package_id"`
	UserID          string     `db:"user_id"`
	RoomsCount      int        `db:"rooms_count"`
	Status          string     `db:"status"`
	PaymentStatus   string     `db:"payment_status"`
	ReminderSentAt  *time.Time `db:"reminder_sent_at"`
	model.Metadata
}

// OccupiesRooms reports whether the booking counts against the package's
// room capacity. Unpaid bookings occupy rooms only when countUnpaid is on.
func (b Booking) OccupiesRooms(countUnpaid bool) bool {
	if b.Status != StatusActive {
		return false
	}

	return countUnpaid || b.PaymentStatus == PaymentStatusPaid
}
