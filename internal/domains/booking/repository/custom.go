package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"voyago/internal/domains/booking/model"
	"voyago/shared/constant"
	"voyago/shared/logger"
)

const (
	// Occupancy is the sum of rooms_count, not the number of bookings. A
	// three-room booking holds three rooms against the cap.
	queryCountOccupiedRooms = `
		SELECT COALESCE(SUM(bookings.rooms_count), 0)
		FROM bookings
		WHERE bookings.travel_package_id = :travel_package_id
		  AND bookings.status = :status
		  AND (bookings.payment_status = :payment_status OR :count_unpaid)`

	queryCountUpcomingPaid = `
		SELECT COUNT(bookings.id)
		FROM bookings
		JOIN travel_packages ON travel_packages.id = bookings.travel_package_id
		WHERE bookings.user_id = :user_id
		  AND bookings.status = :status
		  AND bookings.payment_status = :payment_status
		  AND travel_packages.start_date > :now`

	queryUpcomingForReminder = `
		SELECT bookings.id, bookings.travel_package_id, bookings.user_id, bookings.rooms_count,
		       bookings.status, bookings.payment_status, bookings.reminder_sent_at,
		       bookings.created_by, bookings.modified_by
		FROM bookings
		JOIN travel_packages ON travel_packages.id = bookings.travel_package_id
		WHERE bookings.status = :status
		  AND bookings.payment_status = :payment_status
		  AND bookings.reminder_sent_at IS NULL
		  AND travel_packages.start_date > :from
		  AND travel_packages.start_date <= :until`
)

type namedQueryer interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

// CountOccupiedRooms sums the rooms held by active bookings of a package.
// With countUnpaid false only paid bookings occupy rooms.
func (repo *repositoryImpl) CountOccupiedRooms(ctx context.Context, packageID string, countUnpaid bool) (int, error) {
	return repo.countOccupiedRooms(ctx, repo.db.Read, packageID, countUnpaid)
}

func (repo *repositoryImpl) CountOccupiedRoomsTx(ctx context.Context, tx *sqlx.Tx, packageID string, countUnpaid bool) (int, error) {
	return repo.countOccupiedRooms(ctx, tx, packageID, countUnpaid)
}

func (repo *repositoryImpl) countOccupiedRooms(ctx context.Context, q namedQueryer, packageID string, countUnpaid bool) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountOccupiedRooms")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryCountOccupiedRooms)

	args := map[string]any{
		"travel_package_id": packageID,
		"status":            model.StatusActive,
		"payment_status":    model.PaymentStatusPaid,
		"count_unpaid":      countUnpaid,
	}

	var total int

	prepare, err := q.PrepareNamedContext(ctx, queryCountOccupiedRooms)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &total, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count occupied rooms (%s): %w", model.EntityName, err)
	}

	return total, nil
}

// CountUpcomingPaidTx counts a user's paid active bookings on packages that
// have not started yet.
func (repo *repositoryImpl) CountUpcomingPaidTx(ctx context.Context, tx *sqlx.Tx, userID string, now time.Time) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountUpcomingPaidTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryCountUpcomingPaid)

	args := map[string]any{
		"user_id":        userID,
		"status":         model.StatusActive,
		"payment_status": model.PaymentStatusPaid,
		"now":            now,
	}

	var total int

	prepare, err := tx.PrepareNamedContext(ctx, queryCountUpcomingPaid)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &total, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count upcoming bookings (%s): %w", model.EntityName, err)
	}

	return total, nil
}

// GetUpcomingForReminder lists paid active bookings whose package departs
// within (from, until] and that have not been reminded yet.
func (repo *repositoryImpl) GetUpcomingForReminder(ctx context.Context, from, until time.Time) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetUpcomingForReminder")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryUpcomingForReminder)

	args := map[string]any{
		"status":         model.StatusActive,
		"payment_status": model.PaymentStatusPaid,
		"from":           from,
		"until":          until,
	}

	var bookings []model.Booking

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, queryUpcomingForReminder)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &bookings, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get bookings for reminder (%s): %w", model.EntityName, err)
	}

	return bookings, nil
}
