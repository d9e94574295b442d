package model

import (
	"time"

	"voyago/shared/model"
)

const (
	TableName  = "waiting_list_entries"
	EntityName = "waiting_list_entry"

	FieldID                    = "id"
	FieldTravelPackageID       = "travel_package_id"
	FieldUserID                = "user_id"
	FieldPosition              = "position"
	FieldJoinedAt              = "joined_at"
	FieldNotifiedAt            = "notified_at"
	FieldNotificationExpiresAt = "notification_expires_at"
	FieldActive                = "active"
)

// TokenState describes an entry's claim on an opened room.
type TokenState int

const (
	// TokenNone means the entry has never been offered a room.
	TokenNone TokenState = iota
	// TokenLive means the entry holds an unexpired priority claim.
	TokenLive
	// TokenExpired means the entry was offered a room and let the offer lapse.
	TokenExpired
)

type WaitingListEntry struct {
	ID                    string     `db:"id"`
	TravelPackageID       string     `db:"travel_package_id"`
	UserID                string     `db:"user_id"`
	Position              int        `db:"position"`
	JoinedAt              time.Time  `db:"joined_at"`
	NotifiedAt            *time.Time `db:"notified_at"`
	NotificationExpiresAt *time.Time `db:"notification_expires_at"`
	Active                bool       `db:"active"`
	model.Metadata
}

// Token reports the entry's claim at the given instant. The expiry bound is
// exclusive: a token expiring exactly at now is already expired.
func (e WaitingListEntry) Token(now time.Time) TokenState {
	if e.NotifiedAt == nil || e.NotificationExpiresAt == nil {
		return TokenNone
	}

	if e.NotificationExpiresAt.After(now) {
		return TokenLive
	}

	return TokenExpired
}
