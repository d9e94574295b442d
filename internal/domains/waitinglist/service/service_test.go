package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"voyago/config"
	"voyago/infras/otel/mocks"
	pgMocks "voyago/infras/postgres/mocks"
	ledgerMocks "voyago/internal/domains/inventory/mocks"
	pkgMocks "voyago/internal/domains/travelpackage/mocks"
	pkgModel "voyago/internal/domains/travelpackage/model"
	wlMocks "voyago/internal/domains/waitinglist/mocks"
	"voyago/internal/domains/waitinglist/model"
	"voyago/internal/domains/waitinglist/model/dto"
	"voyago/internal/domains/waitinglist/service"
	notifierMocks "voyago/internal/notifier/mocks"
	clockMocks "voyago/shared/clock/mocks"
	"voyago/shared/constant"
)

const (
	testPackageID = "2d3d1f9e-4a8b-4f0e-9c6d-1e2f3a4b5c6d"
	testUserID    = "7f8e9d0c-1b2a-4d3c-8e7f-6a5b4c3d2e1f"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type waitingListServiceMocks struct {
	repo     *wlMocks.MockWaitingList
	packages *pkgMocks.MockTravelPackage
	ledger   *ledgerMocks.MockLedger
	notify   *notifierMocks.MockNotifier
	clock    *clockMocks.Fixed
}

func newWaitingListService(ctrl *gomock.Controller) (service.WaitingList, waitingListServiceMocks) {
	m := waitingListServiceMocks{
		repo:     wlMocks.NewMockWaitingList(ctrl),
		packages: pkgMocks.NewMockTravelPackage(ctrl),
		ledger:   ledgerMocks.NewMockLedger(ctrl),
		notify:   notifierMocks.NewMockNotifier(ctrl),
		clock:    clockMocks.NewFixed(testNow),
	}

	// events publish on detached goroutines
	m.notify.EXPECT().QueueJoined(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.notify.EXPECT().RoomAvailable(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.App.Booking.TokenLeaseMinutes = 10

	svc := service.New(
		pgMocks.NewTransactor(),
		m.repo,
		m.packages,
		m.ledger,
		m.notify,
		cfg,
		m.clock,
		mocks.NewOtel(),
	)

	return svc, m
}

func userContext(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func fullPackage() pkgModel.TravelPackage {
	return pkgModel.TravelPackage{
		ID:           testPackageID,
		Destination:  "Kyoto",
		Country:      "Japan",
		StartDate:    testNow.AddDate(0, 1, 0),
		EndDate:      testNow.AddDate(0, 1, 7),
		TotalRoomCap: 10,
		Visible:      true,
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestWaitingListService_Join(t *testing.T) {
	req := dto.JoinWaitingListRequest{TravelPackageID: testPackageID}

	tests := []struct {
		name         string
		setupMock    func(m waitingListServiceMocks)
		wantErr      error
		wantPosition int
	}{
		{
			name: "joins at the back of the queue",
			setupMock: func(m waitingListServiceMocks) {
				m.packages.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(fullPackage(), nil)

				m.ledger.EXPECT().
					RemainingTx(gomock.Any(), gomock.Any(), testPackageID, 10).
					Return(0, nil)

				m.repo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.WaitingListEntry{}, nil)

				m.repo.EXPECT().
					MaxPositionTx(gomock.Any(), gomock.Any(), testPackageID).
					Return(2, nil)

				m.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, entry model.WaitingListEntry) error {
						assert.Equal(t, 3, entry.Position)
						assert.Equal(t, testUserID, entry.UserID)
						assert.True(t, entry.Active)
						assert.Nil(t, entry.NotifiedAt)

						return nil
					})
			},
			wantPosition: 3,
		},
		{
			name: "first joiner takes position one",
			setupMock: func(m waitingListServiceMocks) {
				m.packages.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(fullPackage(), nil)

				m.ledger.EXPECT().
					RemainingTx(gomock.Any(), gomock.Any(), testPackageID, 10).
					Return(0, nil)

				m.repo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.WaitingListEntry{}, nil)

				m.repo.EXPECT().
					MaxPositionTx(gomock.Any(), gomock.Any(), testPackageID).
					Return(0, nil)

				m.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantPosition: 1,
		},
		{
			name: "package not found",
			setupMock: func(m waitingListServiceMocks) {
				m.packages.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(pkgModel.TravelPackage{}, nil)
			},
			wantErr: service.ErrPackageNotFound,
		},
		{
			name: "cannot queue while rooms remain",
			setupMock: func(m waitingListServiceMocks) {
				m.packages.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(fullPackage(), nil)

				m.ledger.EXPECT().
					RemainingTx(gomock.Any(), gomock.Any(), testPackageID, 10).
					Return(4, nil)
			},
			wantErr: service.ErrRoomsStillAvailable,
		},
		{
			name: "cannot join the same queue twice",
			setupMock: func(m waitingListServiceMocks) {
				m.packages.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(fullPackage(), nil)

				m.ledger.EXPECT().
					RemainingTx(gomock.Any(), gomock.Any(), testPackageID, 10).
					Return(0, nil)

				m.repo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.WaitingListEntry{ID: "entry-1", Position: 2, Active: true}, nil)
			},
			wantErr: service.ErrAlreadyInQueue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newWaitingListService(ctrl)
			tt.setupMock(m)

			res, err := svc.Join(userContext(testUserID), req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantPosition, res.Position)
			assert.Equal(t, tt.wantPosition*10, res.EstimatedMaxWaitMinutes)
		})
	}
}

func TestWaitingListService_Leave(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m waitingListServiceMocks)
		wantErr   error
	}{
		{
			name: "leaving compacts the positions behind",
			setupMock: func(m waitingListServiceMocks) {
				m.repo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.WaitingListEntry{
						ID:              "entry-1",
						TravelPackageID: testPackageID,
						UserID:          testUserID,
						Position:        2,
						Active:          true,
					}, nil)

				m.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, req map[string]any, _ any) error {
						assert.Equal(t, false, req[model.FieldActive])
						assert.Equal(t, testUserID, req[constant.FieldModifiedBy])

						return nil
					})

				m.repo.EXPECT().
					CompactAfterTx(gomock.Any(), gomock.Any(), testPackageID, 2).
					Return(nil)
			},
		},
		{
			name: "leaving a queue you never joined",
			setupMock: func(m waitingListServiceMocks) {
				m.repo.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.WaitingListEntry{}, nil)
			},
			wantErr: service.ErrNotInQueue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newWaitingListService(ctrl)
			tt.setupMock(m)

			err := svc.Leave(userContext(testUserID), testPackageID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWaitingListService_Status(t *testing.T) {
	t.Run("not in the queue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newWaitingListService(ctrl)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.WaitingListEntry{}, nil)

		res, err := svc.Status(userContext(testUserID), testPackageID)

		assert.NoError(t, err)
		assert.False(t, res.InQueue)
		assert.False(t, res.Notified)
	})

	t.Run("queued with a live claim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newWaitingListService(ctrl)

		expiresAt := testNow.Add(7 * time.Minute)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.WaitingListEntry{
				ID:                    "entry-1",
				TravelPackageID:       testPackageID,
				UserID:                testUserID,
				Position:              1,
				JoinedAt:              testNow.Add(-time.Hour),
				NotifiedAt:            timePtr(testNow.Add(-3 * time.Minute)),
				NotificationExpiresAt: &expiresAt,
				Active:                true,
			}, nil)

		res, err := svc.Status(userContext(testUserID), testPackageID)

		assert.NoError(t, err)
		assert.True(t, res.InQueue)
		assert.True(t, res.Notified)
		assert.Equal(t, 1, res.Position)
		assert.Equal(t, &expiresAt, res.NotificationExpiresAt)
		assert.Equal(t, 10, res.EstimatedMaxWaitMinutes)
	})

	t.Run("queued with a lapsed claim is no longer notified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newWaitingListService(ctrl)

		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.WaitingListEntry{
				ID:                    "entry-1",
				TravelPackageID:       testPackageID,
				UserID:                testUserID,
				Position:              1,
				JoinedAt:              testNow.Add(-time.Hour),
				NotifiedAt:            timePtr(testNow.Add(-30 * time.Minute)),
				NotificationExpiresAt: timePtr(testNow),
				Active:                true,
			}, nil)

		res, err := svc.Status(userContext(testUserID), testPackageID)

		assert.NoError(t, err)
		assert.True(t, res.InQueue)
		assert.False(t, res.Notified)
	})
}

func TestWaitingListService_NotifyNext(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m waitingListServiceMocks)
	}{
		{
			name: "offers the freed room to the front of the queue",
			setupMock: func(m waitingListServiceMocks) {
				m.packages.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(fullPackage(), nil)

				m.ledger.EXPECT().
					RemainingTx(gomock.Any(), gomock.Any(), testPackageID, 10).
					Return(1, nil)

				m.repo.EXPECT().
					LiveHolderTx(gomock.Any(), gomock.Any(), testPackageID, testNow).
					Return(model.WaitingListEntry{}, nil)

				m.repo.EXPECT().
					NextEligibleTx(gomock.Any(), gomock.Any(), testPackageID, testNow).
					Return(model.WaitingListEntry{
						ID:              "entry-1",
						TravelPackageID: testPackageID,
						UserID:          testUserID,
						Position:        1,
						Active:          true,
					}, nil)

				m.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, req map[string]any, _ any) error {
						assert.Equal(t, testNow, req[model.FieldNotifiedAt])
						assert.Equal(t, testNow.Add(10*time.Minute), req[model.FieldNotificationExpiresAt])

						return nil
					})
			},
		},
		{
			name: "re-offers the head whose earlier claim lapsed instead of skipping it",
			setupMock: func(m waitingListServiceMocks) {
				m.packages.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(fullPackage(), nil)

				m.ledger.EXPECT().
					RemainingTx(gomock.Any(), gomock.Any(), testPackageID, 10).
					Return(1, nil)

				m.repo.EXPECT().
					LiveHolderTx(gomock.Any(), gomock.Any(), testPackageID, testNow).
					Return(model.WaitingListEntry{}, nil)

				m.repo.EXPECT().
					NextEligibleTx(gomock.Any(), gomock.Any(), testPackageID, testNow).
					Return(model.WaitingListEntry{
						ID:                    "entry-1",
						TravelPackageID:       testPackageID,
						UserID:                testUserID,
						Position:              1,
						NotifiedAt:            timePtr(testNow.Add(-20 * time.Minute)),
						NotificationExpiresAt: timePtr(testNow.Add(-10 * time.Minute)),
						Active:                true,
					}, nil)

				m.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, req map[string]any, _ any) error {
						assert.Equal(t, testNow, req[model.FieldNotifiedAt])
						assert.Equal(t, testNow.Add(10*time.Minute), req[model.FieldNotificationExpiresAt])

						return nil
					})
			},
		},
		{
			name: "no-op while the package is still full",
			setupMock: func(m waitingListServiceMocks) {
				m.packages.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(fullPackage(), nil)

				m.ledger.EXPECT().
					RemainingTx(gomock.Any(), gomock.Any(), testPackageID, 10).
					Return(0, nil)
			},
		},
		{
			name: "no-op while another claim is outstanding",
			setupMock: func(m waitingListServiceMocks) {
				m.packages.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(fullPackage(), nil)

				m.ledger.EXPECT().
					RemainingTx(gomock.Any(), gomock.Any(), testPackageID, 10).
					Return(1, nil)

				m.repo.EXPECT().
					LiveHolderTx(gomock.Any(), gomock.Any(), testPackageID, testNow).
					Return(model.WaitingListEntry{
						ID:                    "entry-2",
						UserID:                "someone-else",
						Position:              1,
						NotifiedAt:            timePtr(testNow.Add(-time.Minute)),
						NotificationExpiresAt: timePtr(testNow.Add(9 * time.Minute)),
						Active:                true,
					}, nil)
			},
		},
		{
			name: "no-op when nobody is waiting for an offer",
			setupMock: func(m waitingListServiceMocks) {
				m.packages.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(fullPackage(), nil)

				m.ledger.EXPECT().
					RemainingTx(gomock.Any(), gomock.Any(), testPackageID, 10).
					Return(1, nil)

				m.repo.EXPECT().
					LiveHolderTx(gomock.Any(), gomock.Any(), testPackageID, testNow).
					Return(model.WaitingListEntry{}, nil)

				m.repo.EXPECT().
					NextEligibleTx(gomock.Any(), gomock.Any(), testPackageID, testNow).
					Return(model.WaitingListEntry{}, nil)
			},
		},
		{
			name: "no-op for a deleted package",
			setupMock: func(m waitingListServiceMocks) {
				m.packages.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(pkgModel.TravelPackage{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newWaitingListService(ctrl)
			tt.setupMock(m)

			assert.NoError(t, svc.NotifyNext(context.Background(), testPackageID))
		})
	}
}

func TestWaitingListService_RemoveExpired(t *testing.T) {
	t.Run("drops the oldest lapsed entry and compacts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newWaitingListService(ctrl)

		m.repo.EXPECT().
			OldestExpiredTx(gomock.Any(), gomock.Any(), testPackageID, testNow).
			Return(model.WaitingListEntry{
				ID:                    "entry-1",
				TravelPackageID:       testPackageID,
				UserID:                testUserID,
				Position:              1,
				NotifiedAt:            timePtr(testNow.Add(-30 * time.Minute)),
				NotificationExpiresAt: timePtr(testNow.Add(-20 * time.Minute)),
				Active:                true,
			}, nil)

		m.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, req map[string]any, _ any) error {
				assert.Equal(t, false, req[model.FieldActive])
				assert.Equal(t, constant.SystemActor, req[constant.FieldModifiedBy])

				return nil
			})

		m.repo.EXPECT().
			CompactAfterTx(gomock.Any(), gomock.Any(), testPackageID, 1).
			Return(nil)

		removed, err := svc.RemoveExpired(context.Background(), testPackageID)

		assert.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("reports nothing to remove", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newWaitingListService(ctrl)

		m.repo.EXPECT().
			OldestExpiredTx(gomock.Any(), gomock.Any(), testPackageID, testNow).
			Return(model.WaitingListEntry{}, nil)

		removed, err := svc.RemoveExpired(context.Background(), testPackageID)

		assert.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestWaitingListEntry_Token(t *testing.T) {
	entry := model.WaitingListEntry{}
	assert.Equal(t, model.TokenNone, entry.Token(testNow))

	entry.NotifiedAt = timePtr(testNow.Add(-time.Minute))
	entry.NotificationExpiresAt = timePtr(testNow.Add(time.Minute))
	assert.Equal(t, model.TokenLive, entry.Token(testNow))

	// the expiry bound is exclusive
	entry.NotificationExpiresAt = timePtr(testNow)
	assert.Equal(t, model.TokenExpired, entry.Token(testNow))

	entry.NotificationExpiresAt = timePtr(testNow.Add(-time.Minute))
	assert.Equal(t, model.TokenExpired, entry.Token(testNow))
}
