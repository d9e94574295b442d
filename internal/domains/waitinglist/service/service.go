package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"voyago/config"
	"voyago/infras/otel"
	"voyago/infras/postgres"
	"voyago/internal/domains/inventory"
	pkgModel "voyago/internal/domains/travelpackage/model"
	pkgRepo "voyago/internal/domains/travelpackage/repository"
	"voyago/internal/domains/waitinglist/model"
	"voyago/internal/domains/waitinglist/model/dto"
	"voyago/internal/domains/waitinglist/repository"
	"voyago/internal/notifier"
	"voyago/shared"
	"voyago/shared/clock"
	"voyago/shared/constant"
	gDto "voyago/shared/dto"
	gModel "voyago/shared/model"
)

type WaitingList interface {
	Join(ctx context.Context, req dto.JoinWaitingListRequest) (dto.JoinWaitingListResponse, error)
	Leave(ctx context.Context, packageID string) error
	Status(ctx context.Context, packageID string) (dto.WaitingListStatusResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetWaitingListResponse, error)
	NotifyNext(ctx context.Context, packageID string) error
	RemoveExpired(ctx context.Context, packageID string) (bool, error)
	PackagesWithExpired(ctx context.Context) ([]string, error)
}

type serviceImpl struct {
	txn      postgres.Transactor
	repo     repository.WaitingList
	packages pkgRepo.TravelPackage
	ledger   inventory.Ledger
	notify   notifier.Notifier
	cfg      *config.Config
	clock    clock.Clock
	otel     otel.Otel
}

func New(
	txn postgres.Transactor,
	repo repository.WaitingList,
	packages pkgRepo.TravelPackage,
	ledger inventory.Ledger,
	notify notifier.Notifier,
	cfg *config.Config,
	clock clock.Clock,
	otel otel.Otel,
) WaitingList {
	return &serviceImpl{
		txn:      txn,
		repo:     repo,
		packages: packages,
		ledger:   ledger,
		notify:   notify,
		cfg:      cfg,
		clock:    clock,
		otel:     otel,
	}
}

// Join appends the caller to the package's queue. The position is assigned
// inside the transaction holding the package row lock so concurrent joins
// cannot claim the same slot.
func (s *serviceImpl) Join(ctx context.Context, req dto.JoinWaitingListRequest) (res dto.JoinWaitingListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".waitinglist.Join")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := s.clock.Now()

	var position int

	err = s.txn.WithinTx(ctx, func(tx *sqlx.Tx) error {
		pkg, txErr := s.packages.GetForUpdateTx(ctx, tx, shared.FilterByID(req.TravelPackageID, pkgModel.FieldID, pkgModel.TableName))
		if txErr != nil {
			return txErr
		}

		if pkg.ID == constant.Empty {
			return ErrPackageNotFound
		}

		remaining, txErr := s.ledger.RemainingTx(ctx, tx, pkg.ID, pkg.TotalRoomCap)
		if txErr != nil {
			return txErr
		}

		if remaining > 0 {
			return ErrRoomsStillAvailable
		}

		existing, txErr := s.repo.GetTx(ctx, tx, activeEntryFilter(pkg.ID, userID))
		if txErr != nil {
			return txErr
		}

		if existing.ID != constant.Empty {
			return ErrAlreadyInQueue
		}

		maxPosition, txErr := s.repo.MaxPositionTx(ctx, tx, pkg.ID)
		if txErr != nil {
			return txErr
		}

		position = maxPosition + 1

		return s.repo.InsertTx(ctx, tx, model.WaitingListEntry{
			ID:              uuid.NewString(),
			TravelPackageID: pkg.ID,
			UserID:          userID,
			Position:        position,
			JoinedAt:        now,
			Active:          true,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  userID,
				ModifiedBy: userID,
			},
		})
	})
	if err != nil {
		log.Error().Err(err).Str("packageID", req.TravelPackageID).Str("userID", userID).Msg("failed to join waiting list")

		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notify.QueueJoined(c, userID, req.TravelPackageID, position); err != nil {
			log.Error().Err(err).Msg("failed to publish queue joined event")
		}
	}()

	res.Position = position
	res.EstimatedMaxWaitMinutes = position * s.cfg.App.Booking.TokenLeaseMinutes

	return res, nil
}

// Leave removes the caller's entry and closes the gap behind it.
func (s *serviceImpl) Leave(ctx context.Context, packageID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".waitinglist.Leave")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	err = s.txn.WithinTx(ctx, func(tx *sqlx.Tx) error {
		entry, txErr := s.repo.GetTx(ctx, tx, activeEntryFilter(packageID, userID))
		if txErr != nil {
			return txErr
		}

		if entry.ID == constant.Empty {
			return ErrNotInQueue
		}

		return s.retireTx(ctx, tx, entry, userID)
	})
	if err != nil {
		log.Error().Err(err).Str("packageID", packageID).Str("userID", userID).Msg("failed to leave waiting list")

		return err
	}

	return nil
}

func (s *serviceImpl) Status(ctx context.Context, packageID string) (res dto.WaitingListStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".waitinglist.Status")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	entry, err := s.repo.Get(ctx, activeEntryFilter(packageID, userID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get waiting list entry")

		return res, fmt.Errorf("failed to get waiting list entry: %w", err)
	}

	if entry.ID == constant.Empty {
		return res, nil
	}

	res.InQueue = true
	res.Position = entry.Position
	res.JoinedAt = &entry.JoinedAt
	res.Notified = entry.Token(s.clock.Now()) == model.TokenLive
	res.NotificationExpiresAt = entry.NotificationExpiresAt
	res.EstimatedMaxWaitMinutes = entry.Position * s.cfg.App.Booking.TokenLeaseMinutes

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetWaitingListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".waitinglist.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count waiting list entries")

		return res, fmt.Errorf("failed to count waiting list entries: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get waiting list entries")

		return res, fmt.Errorf("failed to get waiting list entries: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// NotifyNext offers the front of the queue a freed room. It is a no-op when
// the package is still full, when an unexpired claim is already outstanding,
// or when nobody in the queue is waiting for an offer. At most one claim is
// live per package at any time.
func (s *serviceImpl) NotifyNext(ctx context.Context, packageID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".waitinglist.NotifyNext")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := s.clock.Now()
	expiresAt := now.Add(time.Duration(s.cfg.App.Booking.TokenLeaseMinutes) * time.Minute)

	var notified model.WaitingListEntry

	err = s.txn.WithinTx(ctx, func(tx *sqlx.Tx) error {
		pkg, txErr := s.packages.GetForUpdateTx(ctx, tx, shared.FilterByID(packageID, pkgModel.FieldID, pkgModel.TableName))
		if txErr != nil {
			return txErr
		}

		if pkg.ID == constant.Empty {
			return nil
		}

		remaining, txErr := s.ledger.RemainingTx(ctx, tx, pkg.ID, pkg.TotalRoomCap)
		if txErr != nil {
			return txErr
		}

		if remaining <= 0 {
			return nil
		}

		holder, txErr := s.repo.LiveHolderTx(ctx, tx, pkg.ID, now)
		if txErr != nil {
			return txErr
		}

		if holder.ID != constant.Empty {
			return nil
		}

		next, txErr := s.repo.NextEligibleTx(ctx, tx, pkg.ID, now)
		if txErr != nil {
			return txErr
		}

		if next.ID == constant.Empty {
			return nil
		}

		txErr = s.repo.UpdateTx(ctx, tx, map[string]any{
			model.FieldNotifiedAt:            now,
			model.FieldNotificationExpiresAt: expiresAt,
			constant.FieldModifiedAt:         now,
		}, shared.FilterByID(next.ID, model.FieldID, model.TableName))
		if txErr != nil {
			return txErr
		}

		notified = next

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("packageID", packageID).Msg("failed to notify next waiting list entry")

		return err
	}

	if notified.ID == constant.Empty {
		return nil
	}

	log.Info().
		Str("packageID", packageID).
		Str("userID", notified.UserID).
		Int("position", notified.Position).
		Time("expiresAt", expiresAt).
		Msg("waiting list entry offered a room")

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notify.RoomAvailable(c, notified.UserID, packageID, expiresAt); err != nil {
			log.Error().Err(err).Msg("failed to publish room available event")
		}
	}()

	return nil
}

// RemoveExpired drops the single oldest entry whose claim has lapsed and
// reports whether one was removed. Callers loop it to drain a backlog, so
// each removal is its own transaction and its own audit record.
func (s *serviceImpl) RemoveExpired(ctx context.Context, packageID string) (removed bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".waitinglist.RemoveExpired")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := s.clock.Now()

	var dropped model.WaitingListEntry

	err = s.txn.WithinTx(ctx, func(tx *sqlx.Tx) error {
		entry, txErr := s.repo.OldestExpiredTx(ctx, tx, packageID, now)
		if txErr != nil {
			return txErr
		}

		if entry.ID == constant.Empty {
			return nil
		}

		dropped = entry

		return s.retireTx(ctx, tx, entry, constant.SystemActor)
	})
	if err != nil {
		log.Error().Err(err).Str("packageID", packageID).Msg("failed to remove expired waiting list entry")

		return false, err
	}

	if dropped.ID == constant.Empty {
		return false, nil
	}

	log.Info().
		Str("packageID", packageID).
		Str("userID", dropped.UserID).
		Int("position", dropped.Position).
		Msg("expired waiting list entry removed")

	return true, nil
}

func (s *serviceImpl) PackagesWithExpired(ctx context.Context) ([]string, error) {
	return s.repo.PackagesWithExpired(ctx, s.clock.Now())
}

// retireTx deactivates an entry and compacts the positions behind it.
func (s *serviceImpl) retireTx(ctx context.Context, tx *sqlx.Tx, entry model.WaitingListEntry, actor string) error {
	err := s.repo.UpdateTx(ctx, tx, map[string]any{
		model.FieldActive:        false,
		constant.FieldModifiedAt: s.clock.Now(),
		constant.FieldModifiedBy: actor,
	}, shared.FilterByID(entry.ID, model.FieldID, model.TableName))
	if err != nil {
		return err
	}

	return s.repo.CompactAfterTx(ctx, tx, entry.TravelPackageID, entry.Position)
}

func activeEntryFilter(packageID, userID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldTravelPackageID, Value: packageID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldUserID, Value: userID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldActive, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}
