package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"voyago/config"
	"voyago/infras/otel/mocks"
	pgMocks "voyago/infras/postgres/mocks"
	bookingMocks "voyago/internal/domains/booking/mocks"
	"voyago/internal/domains/booking/model"
	"voyago/internal/domains/booking/model/dto"
	"voyago/internal/domains/booking/service"
	svcMocks "voyago/internal/domains/booking/service/mocks"
	ledgerMocks "voyago/internal/domains/inventory/mocks"
	pkgMocks "voyago/internal/domains/travelpackage/mocks"
	pkgModel "voyago/internal/domains/travelpackage/model"
	wlMocks "voyago/internal/domains/waitinglist/mocks"
	wlModel "voyago/internal/domains/waitinglist/model"
	"voyago/shared/cache"
	cacheMocks "voyago/shared/cache/mocks"
	clockMocks "voyago/shared/clock/mocks"
	"voyago/shared/constant"
)

const (
	testPackageID = "2d3d1f9e-4a8b-4f0e-9c6d-1e2f3a4b5c6d"
	testUserID    = "7f8e9d0c-1b2a-4d3c-8e7f-6a5b4c3d2e1f"
	testBookingID = "9a8b7c6d-5e4f-4a3b-2c1d-0e9f8a7b6c5d"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type bookingServiceMocks struct {
	repo        *bookingMocks.MockBooking
	packages    *pkgMocks.MockTravelPackage
	waitingList *wlMocks.MockWaitingList
	ledger      *ledgerMocks.MockLedger
	listener    *svcMocks.MockCapacityListener
	cache       *cacheMocks.MockRedisCache
	clock       *clockMocks.Fixed
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingServiceMocks) {
	m := bookingServiceMocks{
		repo:        bookingMocks.NewMockBooking(ctrl),
		packages:    pkgMocks.NewMockTravelPackage(ctrl),
		waitingList: wlMocks.NewMockWaitingList(ctrl),
		ledger:      ledgerMocks.NewMockLedger(ctrl),
		listener:    svcMocks.NewMockCapacityListener(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		clock:       clockMocks.NewFixed(testNow),
	}

	// cache invalidation runs on a detached goroutine after every mutation
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.App.Booking.MaxUpcomingBookings = 3
	cfg.App.Booking.TokenLeaseMinutes = 10
	cfg.Cache.TTL = 3600

	svc := service.New(
		pgMocks.NewTransactor(),
		m.repo,
		m.packages,
		m.waitingList,
		m.ledger,
		m.listener,
		cfg,
		m.cache,
		m.clock,
		mocks.NewOtel(),
	)

	return svc, m
}

func userContext(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func openPackage() pkgModel.TravelPackage {
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

func TestBookingService_Create(t *testing.T) {
	ctx := userContext(testUserID, constant.RoleUser)

	req := dto.CreateBookingRequest{
		TravelPackageID: testPackageID,
		RoomsCount:      1,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(m bookingServiceMocks)
		checkErr  func(t *testing.T, err error)
	}{
		{
			name: "books when rooms are available",
			req:  req,
			setupMock: func(m bookingServiceMocks) {
				m.packages.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(openPackage(), nil)

				m.waitingList.EXPECT().
					LiveHolderTx(gomock.Any(), gomock.Any(), testPackageID, testNow).
					Return(wlModel.WaitingListEntry{}, nil)

				m.ledger.EXPECT().
					RemainingTx(gomock.Any(), gomock.Any(), testPackageID, 10).
					Return(4, nil)

				m.repo.EXPECT().
					CountUpcomingPaidTx(gomock.Any(), gomock.Any(), testUserID, testNow).
					Return(0, nil)

				m.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.waitingList.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(wlModel.WaitingListEntry{}, nil)
			},
			checkErr: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "package not found",
			req:  req,
			setupMock: func(m bookingServiceMocks) {
				m.packages.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(pkgModel.TravelPackage{}, nil)
			},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrPackageNotFound)
			},
		},
		{
			name: "hidden package is unavailable",
			req:  req,
			setupMock: func(m bookingServiceMocks) {
				pkg := openPackage()
				pkg.Visible = false

				m.packages.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(pkg, nil)
			},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrPackageUnavailable)
			},
		},
		{
			name: "ended package rejects new bookings",
			req:  req,
			setupMock: func(m bookingServiceMocks) {
				pkg := openPackage()
				pkg.EndDate = testNow.AddDate(0, -1, 0)

				m.packages.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(pkg, nil)
			},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrPackageEnded)
			},
		},
		{
			name: "full package rejects a user who never queued",
			req:  req,
			setupMock: func(m bookingServiceMocks) {
				m.packages.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(openPackage(), nil)

				m.waitingList.EXPECT().
					LiveHolderTx(gomock.Any(), gomock.Any(), testPackageID, testNow).
					Return(wlModel.WaitingListEntry{}, nil)

				m.ledger.EXPECT().
					RemainingTx(gomock.Any(), gomock.Any(), testPackageID, 10).
					Return(0, nil)

				m.waitingList.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(wlModel.WaitingListEntry{}, nil)
			},
			checkErr: func(t *testing.T, err error) {
				var insufficient *service.InsufficientRoomsError
				assert.ErrorAs(t, err, &insufficient)
				assert.Equal(t, 1, insufficient.Requested)
				assert.Equal(t, 0, insufficient.Remaining)
			},
		},
		{
			name: "claim holder books the room that opened while the package read full",
			req:  req,
			setupMock: func(m bookingServiceMocks) {
				holder := wlModel.WaitingListEntry{
					ID:                    "entry-1",
					TravelPackageID:       testPackageID,
					UserID:                testUserID,
					Position:              1,
					Active:                true,
					NotifiedAt:            timePtr(testNow.Add(-5 * time.Minute)),
					NotificationExpiresAt: timePtr(testNow.Add(5 * time.Minute)),
				}

				m.packages.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(openPackage(), nil)

				m.waitingList.EXPECT().
					LiveHolderTx(gomock.Any(), gomock.Any(), testPackageID, testNow).
					Return(holder, nil)

				// no RemainingTx expectation: the claim bypasses the availability check

				m.repo.EXPECT().
					CountUpcomingPaidTx(gomock.Any(), gomock.Any(), testUserID, testNow).
					Return(0, nil)

				m.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.waitingList.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(holder, nil)

				m.waitingList.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.waitingList.EXPECT().
					CompactAfterTx(gomock.Any(), gomock.Any(), testPackageID, 1).
					Return(nil)
			},
			checkErr: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "another user's live claim blocks the booking even with rooms left",
			req:  req,
			setupMock: func(m bookingServiceMocks) {
				holder := wlModel.WaitingListEntry{
					ID:                    "entry-2",
					TravelPackageID:       testPackageID,
					UserID:                "someone-else",
					Position:              1,
					Active:                true,
					NotifiedAt:            timePtr(testNow.Add(-5 * time.Minute)),
					NotificationExpiresAt: timePtr(testNow.Add(5 * time.Minute)),
				}

				m.packages.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(openPackage(), nil)

				m.waitingList.EXPECT().
					LiveHolderTx(gomock.Any(), gomock.Any(), testPackageID, testNow).
					Return(holder, nil)

				m.ledger.EXPECT().
					RemainingTx(gomock.Any(), gomock.Any(), testPackageID, 10).
					Return(2, nil)
			},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrPriorityConflict)
			},
		},
		{
			name: "full package reports the shortage before another user's claim",
			req:  req,
			setupMock: func(m bookingServiceMocks) {
				holder := wlModel.WaitingListEntry{
					ID:                    "entry-2",
					TravelPackageID:       testPackageID,
					UserID:                "someone-else",
					Position:              1,
					Active:                true,
					NotifiedAt:            timePtr(testNow.Add(-5 * time.Minute)),
					NotificationExpiresAt: timePtr(testNow.Add(5 * time.Minute)),
				}

				m.packages.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(openPackage(), nil)

				m.waitingList.EXPECT().
					LiveHolderTx(gomock.Any(), gomock.Any(), testPackageID, testNow).
					Return(holder, nil)

				m.ledger.EXPECT().
					RemainingTx(gomock.Any(), gomock.Any(), testPackageID, 10).
					Return(0, nil)

				m.waitingList.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(wlModel.WaitingListEntry{}, nil)
			},
			checkErr: func(t *testing.T, err error) {
				var insufficient *service.InsufficientRoomsError
				assert.ErrorAs(t, err, &insufficient)
				assert.Equal(t, 0, insufficient.Remaining)
				assert.NotErrorIs(t, err, service.ErrPriorityConflict)
			},
		},
		{
			name: "queued user behind the front sees their position",
			req:  req,
			setupMock: func(m bookingServiceMocks) {
				m.packages.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(openPackage(), nil)

				m.waitingList.EXPECT().
					LiveHolderTx(gomock.Any(), gomock.Any(), testPackageID, testNow).
					Return(wlModel.WaitingListEntry{}, nil)

				m.ledger.EXPECT().
					RemainingTx(gomock.Any(), gomock.Any(), testPackageID, 10).
					Return(0, nil)

				m.waitingList.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(wlModel.WaitingListEntry{
						ID:              "entry-3",
						TravelPackageID: testPackageID,
						UserID:          testUserID,
						Position:        4,
						Active:          true,
					}, nil)
			},
			checkErr: func(t *testing.T, err error) {
				var queued *service.QueuePositionError
				assert.ErrorAs(t, err, &queued)
				assert.Equal(t, 4, queued.Position)
			},
		},
		{
			name: "front of the queue with a lapsed claim is told the offer expired",
			req:  req,
			setupMock: func(m bookingServiceMocks) {
				m.packages.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(openPackage(), nil)

				m.waitingList.EXPECT().
					LiveHolderTx(gomock.Any(), gomock.Any(), testPackageID, testNow).
					Return(wlModel.WaitingListEntry{}, nil)

				m.ledger.EXPECT().
					RemainingTx(gomock.Any(), gomock.Any(), testPackageID, 10).
					Return(0, nil)

				m.waitingList.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(wlModel.WaitingListEntry{
						ID:                    "entry-4",
						TravelPackageID:       testPackageID,
						UserID:                testUserID,
						Position:              1,
						Active:                true,
						NotifiedAt:            timePtr(testNow.Add(-20 * time.Minute)),
						NotificationExpiresAt: timePtr(testNow.Add(-10 * time.Minute)),
					}, nil)
			},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrNotificationExpired)
			},
		},
		{
			name: "upcoming paid bookings limit",
			req:  req,
			setupMock: func(m bookingServiceMocks) {
				m.packages.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(openPackage(), nil)

				m.waitingList.EXPECT().
					LiveHolderTx(gomock.Any(), gomock.Any(), testPackageID, testNow).
					Return(wlModel.WaitingListEntry{}, nil)

				m.ledger.EXPECT().
					RemainingTx(gomock.Any(), gomock.Any(), testPackageID, 10).
					Return(4, nil)

				m.repo.EXPECT().
					CountUpcomingPaidTx(gomock.Any(), gomock.Any(), testUserID, testNow).
					Return(3, nil)
			},
			checkErr: func(t *testing.T, err error) {
				var tooMany *service.TooManyUpcomingError
				assert.ErrorAs(t, err, &tooMany)
				assert.Equal(t, 3, tooMany.Limit)
			},
		},
		{
			name: "requesting more rooms than remain",
			req: dto.CreateBookingRequest{
				TravelPackageID: testPackageID,
				RoomsCount:      3,
			},
			setupMock: func(m bookingServiceMocks) {
				m.packages.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(openPackage(), nil)

				m.waitingList.EXPECT().
					LiveHolderTx(gomock.Any(), gomock.Any(), testPackageID, testNow).
					Return(wlModel.WaitingListEntry{}, nil)

				m.ledger.EXPECT().
					RemainingTx(gomock.Any(), gomock.Any(), testPackageID, 10).
					Return(2, nil)

				m.waitingList.EXPECT().
					GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(wlModel.WaitingListEntry{}, nil)
			},
			checkErr: func(t *testing.T, err error) {
				var insufficient *service.InsufficientRoomsError
				assert.ErrorAs(t, err, &insufficient)
				assert.Equal(t, 3, insufficient.Requested)
				assert.Equal(t, 2, insufficient.Remaining)
			},
		},
		{
			name: "serialization failure surfaces as a concurrency conflict",
			req:  req,
			setupMock: func(m bookingServiceMocks) {
				m.packages.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(openPackage(), nil)

				m.waitingList.EXPECT().
					LiveHolderTx(gomock.Any(), gomock.Any(), testPackageID, testNow).
					Return(wlModel.WaitingListEntry{}, nil)

				m.ledger.EXPECT().
					RemainingTx(gomock.Any(), gomock.Any(), testPackageID, 10).
					Return(4, nil)

				m.repo.EXPECT().
					CountUpcomingPaidTx(gomock.Any(), gomock.Any(), testUserID, testNow).
					Return(0, nil)

				m.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "40001"})
			},
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrConcurrencyConflict)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newBookingService(ctrl)
			tt.setupMock(m)

			res, err := svc.Create(ctx, tt.req)
			tt.checkErr(t, err)

			if err == nil {
				assert.Equal(t, model.StatusActive, res.Status)
				assert.Equal(t, model.PaymentStatusPending, res.PaymentStatus)
				assert.Equal(t, testUserID, res.UserID)
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	occupying := model.Booking{
		ID:              testBookingID,
		TravelPackageID: testPackageID,
		UserID:          testUserID,
		RoomsCount:      2,
		Status:          model.StatusActive,
		PaymentStatus:   model.PaymentStatusPaid,
	}

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func(m bookingServiceMocks)
		wantErr   error
	}{
		{
			name: "owner cancels a paid booking and it is refunded and the waiting list notified",
			ctx:  userContext(testUserID, constant.RoleUser),
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(occupying, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
						assert.Equal(t, model.StatusCancelled, req[model.FieldStatus])
						assert.Equal(t, model.PaymentStatusRefunded, req[model.FieldPaymentStatus])

						return nil
					})

				m.listener.EXPECT().
					NotifyNext(gomock.Any(), testPackageID).
					Return(nil)
			},
		},
		{
			name: "cancelling an unpaid booking frees no rooms and refunds nothing",
			ctx:  userContext(testUserID, constant.RoleUser),
			setupMock: func(m bookingServiceMocks) {
				pending := occupying
				pending.PaymentStatus = model.PaymentStatusPending

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
						assert.NotContains(t, req, model.FieldPaymentStatus)

						return nil
					})
			},
		},
		{
			name: "admin cancels another user's booking",
			ctx:  userContext("someone-else", constant.RoleAdmin),
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(occupying, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.listener.EXPECT().
					NotifyNext(gomock.Any(), testPackageID).
					Return(nil)
			},
		},
		{
			name: "another user cannot cancel the booking",
			ctx:  userContext("someone-else", constant.RoleUser),
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(occupying, nil)
			},
			wantErr: service.ErrNotBookingOwner,
		},
		{
			name: "cancelling an already cancelled booking is a no-op",
			ctx:  userContext(testUserID, constant.RoleUser),
			setupMock: func(m bookingServiceMocks) {
				cancelled := occupying
				cancelled.Status = model.StatusCancelled

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
		},
		{
			name: "booking not found",
			ctx:  userContext(testUserID, constant.RoleUser),
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: service.ErrBookingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newBookingService(ctrl)
			tt.setupMock(m)

			err := svc.Cancel(tt.ctx, testBookingID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_SetPaymentStatus(t *testing.T) {
	paid := model.Booking{
		ID:              testBookingID,
		TravelPackageID: testPackageID,
		UserID:          testUserID,
		RoomsCount:      1,
		Status:          model.StatusActive,
		PaymentStatus:   model.PaymentStatusPaid,
	}

	tests := []struct {
		name      string
		req       dto.UpdatePaymentStatusRequest
		setupMock func(m bookingServiceMocks)
		wantErr   error
	}{
		{
			name: "refunding a paid booking releases its rooms",
			req:  dto.UpdatePaymentStatusRequest{PaymentStatus: model.PaymentStatusRefunded},
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(paid, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.listener.EXPECT().
					NotifyNext(gomock.Any(), testPackageID).
					Return(nil)
			},
		},
		{
			name: "marking a pending booking paid frees nothing",
			req:  dto.UpdatePaymentStatusRequest{PaymentStatus: model.PaymentStatusPaid},
			setupMock: func(m bookingServiceMocks) {
				pending := paid
				pending.PaymentStatus = model.PaymentStatusPending

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "setting the same status is a no-op",
			req:  dto.UpdatePaymentStatusRequest{PaymentStatus: model.PaymentStatusPaid},
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(paid, nil)
			},
		},
		{
			name: "booking not found",
			req:  dto.UpdatePaymentStatusRequest{PaymentStatus: model.PaymentStatusPaid},
			setupMock: func(m bookingServiceMocks) {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: service.ErrBookingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newBookingService(ctrl)
			tt.setupMock(m)

			err := svc.SetPaymentStatus(userContext(testUserID, constant.RoleAdmin), testBookingID, tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)

	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Booking{
			ID:              testBookingID,
			TravelPackageID: testPackageID,
			UserID:          testUserID,
			RoomsCount:      2,
			Status:          model.StatusActive,
			PaymentStatus:   model.PaymentStatusPending,
		}, nil)

	res, err := svc.Get(userContext(testUserID, constant.RoleUser), testBookingID)

	assert.NoError(t, err)
	assert.Equal(t, testBookingID, res.ID)
	assert.Equal(t, 2, res.RoomsCount)
}

func TestBookingService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Booking{}, nil)

	_, err := svc.Get(userContext(testUserID, constant.RoleUser), testBookingID)

	assert.ErrorIs(t, err, service.ErrBookingNotFound)
}

func TestToFailure(t *testing.T) {
	assert.NoError(t, service.ToFailure(nil))

	passthrough := errors.New("database is down")
	assert.Equal(t, passthrough, service.ToFailure(passthrough))

	mapped := []error{
		service.ErrPackageNotFound,
		service.ErrPackageUnavailable,
		service.ErrPackageEnded,
		service.ErrPriorityConflict,
		service.ErrNotificationExpired,
		service.ErrConcurrencyConflict,
		service.ErrBookingNotFound,
		service.ErrNotBookingOwner,
		&service.InsufficientRoomsError{Requested: 2, Remaining: 1},
		&service.TooManyUpcomingError{Limit: 3},
		&service.QueuePositionError{Position: 5},
	}

	for _, err := range mapped {
		assert.NotEqual(t, err, service.ToFailure(err), "expected %v to be wrapped", err)
		assert.Error(t, service.ToFailure(err))
	}
}
