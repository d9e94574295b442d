package dto

import (
	"time"

	"voyago/internal/domains/waitinglist/model"
	"voyago/shared"
)

type JoinWaitingListRequest struct {
	TravelPackageID string `json:"travel_package_id" validate:"required,uuid"`
}

type JoinWaitingListResponse struct {
	Position                int `json:"position"`
	EstimatedMaxWaitMinutes int `json:"estimated_max_wait_minutes"`
}

type WaitingListStatusResponse struct {
	InQueue                 bool       `json:"in_queue"`
	Position                int        `json:"position,omitempty"`
	JoinedAt                *time.Time `json:"joined_at,omitempty"`
	Notified                bool       `json:"notified"`
	NotificationExpiresAt   *time.Time `json:"notification_expires_at,omitempty"`
	EstimatedMaxWaitMinutes int        `json:"estimated_max_wait_minutes,omitempty"`
}

type WaitingListEntryResponse struct {
	ID                    string     `json:"id"`
	TravelPackageID       string     `json:"travel_package_id"`
	UserID                string     `json:"user_id"`
	Position              int        `json:"position"`
	JoinedAt              time.Time  `json:"joined_at"`
	NotifiedAt            *time.Time `json:"notified_at,omitempty"`
	NotificationExpiresAt *time.Time `json:"notification_expires_at,omitempty"`
}

func (r *WaitingListEntryResponse) FromModel(mod model.WaitingListEntry) {
	r.ID = mod.ID
	r.TravelPackageID = mod.TravelPackageID
	r.UserID = mod.UserID
	r.Position = mod.Position
	r.JoinedAt = mod.JoinedAt
	r.NotifiedAt = mod.NotifiedAt
	r.NotificationExpiresAt = mod.NotificationExpiresAt
}

type GetWaitingListResponse struct {
	Entries   []WaitingListEntryResponse `json:"entries"`
	TotalPage int                        `json:"total_page"`
	TotalData int                        `json:"total_data"`
}

func (r *GetWaitingListResponse) FromModels(models []model.WaitingListEntry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Entries = make([]WaitingListEntryResponse, len(models))
	for i, mod := range models {
		r.Entries[i].FromModel(mod)
	}
}


