package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"voyago/config"
	"voyago/infras/otel"
	"voyago/infras/postgres"
	"voyago/internal/domains/booking/model"
	"voyago/internal/domains/booking/model/dto"
	"voyago/internal/domains/booking/repository"
	"voyago/internal/domains/inventory"
	pkgModel "voyago/internal/domains/travelpackage/model"
	pkgRepo "voyago/internal/domains/travelpackage/repository"
	wlModel "voyago/internal/domains/waitinglist/model"
	wlRepo "voyago/internal/domains/waitinglist/repository"
	"voyago/shared"
	"voyago/shared/cache"
	"voyago/shared/clock"
	"voyago/shared/constant"
	gDto "voyago/shared/dto"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

// CapacityListener is told whenever a booking stops occupying rooms, so the
// head of the package's waiting list can be offered the freed room.
type CapacityListener interface {
	NotifyNext(ctx context.Context, packageID string) error
}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
	SetPaymentStatus(ctx context.Context, id string, req dto.UpdatePaymentStatusRequest) error
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	txn         postgres.Transactor
	repo        repository.Booking
	packages    pkgRepo.TravelPackage
	waitingList wlRepo.WaitingList
	ledger      inventory.Ledger
	listener    CapacityListener
	cfg         *config.Config
	cache       cache.RedisCache
	clock       clock.Clock
	otel        otel.Otel
}

func New(
	txn postgres.Transactor,
	repo repository.Booking,
	packages pkgRepo.TravelPackage,
	waitingList wlRepo.WaitingList,
	ledger inventory.Ledger,
	listener CapacityListener,
	cfg *config.Config,
	cache cache.RedisCache,
	clock clock.Clock,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		txn:         txn,
		repo:        repo,
		packages:    packages,
		waitingList: waitingList,
		ledger:      ledger,
		listener:    listener,
		cfg:         cfg,
		cache:       cache,
		clock:       clock,
		otel:        otel,
	}
}

// Create runs the whole admission decision and the booking insert in one
// transaction holding the package row lock, so two concurrent requests for
// the last room serialize and the loser sees the updated occupancy.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := s.clock.Now()
	booking := req.ToModel(userID)

	err = s.txn.WithinTx(ctx, func(tx *sqlx.Tx) error {
		pkg, txErr := s.packages.GetForUpdateTx(ctx, tx, shared.FilterByID(req.TravelPackageID, pkgModel.FieldID, pkgModel.TableName))
		if txErr != nil {
			return txErr
		}

		if txErr = s.admit(ctx, tx, pkg, userID, req.RoomsCount, now); txErr != nil {
			return txErr
		}

		if txErr = s.repo.InsertTx(ctx, tx, booking); txErr != nil {
			return txErr
		}

		return s.retireQueueEntry(ctx, tx, pkg.ID, userID, now)
	})
	if err != nil {
		if isRetryableTxError(err) {
			log.Warn().Str("packageID", req.TravelPackageID).Msg("booking transaction lost a concurrency race")

			return res, ErrConcurrencyConflict
		}

		log.Error().Err(err).Str("packageID", req.TravelPackageID).Str("userID", userID).Msg("failed to create booking")

		return res, err
	}

	s.invalidateCaches(ctx)

	res.FromModel(booking)

	return res, nil
}

// admit applies the admission rules in their fixed order: package checks,
// availability, waiting list priority, then the upcoming-bookings limit. A
// live claim held by the caller bypasses the availability check entirely;
// the claim was minted for a room that opened while the package read full.
func (s *serviceImpl) admit(ctx context.Context, tx *sqlx.Tx, pkg pkgModel.TravelPackage, userID string, roomsCount int, now time.Time) error {
	if pkg.ID == constant.Empty {
		return ErrPackageNotFound
	}

	if !pkg.Visible {
		return ErrPackageUnavailable
	}

	if !pkg.EndDate.After(now) {
		return ErrPackageEnded
	}

	holder, err := s.waitingList.LiveHolderTx(ctx, tx, pkg.ID, now)
	if err != nil {
		return err
	}

	holderIsCaller := holder.ID != constant.Empty && holder.UserID == userID

	if !holderIsCaller {
		remaining, err := s.ledger.RemainingTx(ctx, tx, pkg.ID, pkg.TotalRoomCap)
		if err != nil {
			return err
		}

		if roomsCount > remaining {
			return s.classifyRejection(ctx, tx, pkg.ID, userID, remaining, roomsCount, now)
		}

		if holder.ID != constant.Empty {
			return ErrPriorityConflict
		}
	}

	upcoming, err := s.repo.CountUpcomingPaidTx(ctx, tx, userID, now)
	if err != nil {
		return err
	}

	if upcoming >= s.cfg.App.Booking.MaxUpcomingBookings {
		return &TooManyUpcomingError{Limit: s.cfg.App.Booking.MaxUpcomingBookings}
	}

	return nil
}

// classifyRejection picks the rejection a queued user should see instead of
// the generic shortage message.
func (s *serviceImpl) classifyRejection(ctx context.Context, tx *sqlx.Tx, packageID, userID string, remaining, requested int, now time.Time) error {
	entry, err := s.waitingList.GetTx(ctx, tx, activeEntryFilter(packageID, userID))
	if err != nil {
		return err
	}

	if entry.ID != constant.Empty {
		if entry.Position > 1 {
			return &QueuePositionError{Position: entry.Position}
		}

		if entry.Token(now) == wlModel.TokenExpired {
			return ErrNotificationExpired
		}
	}

	return &InsufficientRoomsError{Requested: requested, Remaining: remaining}
}

// retireQueueEntry deactivates the caller's waiting list entry once the
// booking exists and closes the positional gap behind it.
func (s *serviceImpl) retireQueueEntry(ctx context.Context, tx *sqlx.Tx, packageID, userID string, now time.Time) error {
	entry, err := s.waitingList.GetTx(ctx, tx, activeEntryFilter(packageID, userID))
	if err != nil {
		return err
	}

	if entry.ID == constant.Empty {
		return nil
	}

	err = s.waitingList.UpdateTx(ctx, tx, map[string]any{
		wlModel.FieldActive:      false,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: userID,
	}, shared.FilterByID(entry.ID, wlModel.FieldID, wlModel.TableName))
	if err != nil {
		return err
	}

	return s.waitingList.CompactAfterTx(ctx, tx, packageID, entry.Position)
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return ErrBookingNotFound
	}

	if booking.UserID != userID && role != constant.RoleAdmin && role != constant.RoleSuperAdmin {
		return ErrNotBookingOwner
	}

	if booking.Status == model.StatusCancelled {
		return nil
	}

	update := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: s.clock.Now(),
		constant.FieldModifiedBy: userID,
	}

	// A paid booking is refunded on cancellation.
	if booking.PaymentStatus == model.PaymentStatusPaid {
		update[model.FieldPaymentStatus] = model.PaymentStatusRefunded
	}

	err = s.repo.Update(ctx, update, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	// The cancelled booking frees rooms only if it was occupying any.
	if booking.OccupiesRooms(s.cfg.App.Booking.CountUnpaidRooms) {
		if err := s.listener.NotifyNext(ctx, booking.TravelPackageID); err != nil {
			log.Error().Err(err).Str("packageID", booking.TravelPackageID).Msg("failed to notify waiting list after cancellation")
		}
	}

	s.invalidateCaches(ctx)

	return nil
}

func (s *serviceImpl) SetPaymentStatus(ctx context.Context, id string, req dto.UpdatePaymentStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.SetPaymentStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return ErrBookingNotFound
	}

	if booking.PaymentStatus == req.PaymentStatus {
		return nil
	}

	err = s.repo.Update(ctx, map[string]any{
		model.FieldPaymentStatus: req.PaymentStatus,
		constant.FieldModifiedAt: s.clock.Now(),
		constant.FieldModifiedBy: userID,
	}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update payment status")

		return fmt.Errorf("failed to update payment status: %w", err)
	}

	wasOccupying := booking.OccupiesRooms(s.cfg.App.Booking.CountUnpaidRooms)
	booking.PaymentStatus = req.PaymentStatus
	if wasOccupying && !booking.OccupiesRooms(s.cfg.App.Booking.CountUnpaidRooms) {
		if err := s.listener.NotifyNext(ctx, booking.TravelPackageID); err != nil {
			log.Error().Err(err).Str("packageID", booking.TravelPackageID).Msg("failed to notify waiting list after payment release")
		}
	}

	s.invalidateCaches(ctx)

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, ErrBookingNotFound
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) invalidateCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetBooking)
		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func activeEntryFilter(packageID, userID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: wlModel.FieldTravelPackageID, Value: packageID, Operator: gDto.FilterOperatorEq, Table: wlModel.TableName},
			gDto.Filter{Field: wlModel.FieldUserID, Value: userID, Operator: gDto.FilterOperatorEq, Table: wlModel.TableName},
			gDto.Filter{Field: wlModel.FieldActive, Value: true, Operator: gDto.FilterOperatorEq, Table: wlModel.TableName},
		},
	}
}
