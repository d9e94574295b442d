package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"voyago/internal/domains/waitinglist/model"
	"voyago/shared/constant"
	"voyago/shared/logger"
)

const (
	entryColumns = `waiting_list_entries.id, waiting_list_entries.travel_package_id,
		waiting_list_entries.user_id, waiting_list_entries.position,
		waiting_list_entries.joined_at, waiting_list_entries.notified_at,
		waiting_list_entries.notification_expires_at, waiting_list_entries.active,
		waiting_list_entries.created_by, waiting_list_entries.modified_by`

	queryLiveHolder = `
		SELECT ` + entryColumns + `
		FROM waiting_list_entries
		WHERE waiting_list_entries.travel_package_id = :travel_package_id
		  AND waiting_list_entries.active
		  AND waiting_list_entries.notified_at IS NOT NULL
		  AND waiting_list_entries.notification_expires_at > :now
		ORDER BY waiting_list_entries.position ASC
		LIMIT 1`

	queryNextEligible = `
		SELECT ` + entryColumns + `
		FROM waiting_list_entries
		WHERE waiting_list_entries.travel_package_id = :travel_package_id
		  AND waiting_list_entries.active
		  AND (waiting_list_entries.notified_at IS NULL
			OR (waiting_list_entries.notification_expires_at IS NOT NULL
				AND waiting_list_entries.notification_expires_at <= :now))
		ORDER BY waiting_list_entries.position ASC
		LIMIT 1`

	queryOldestExpired = `
		SELECT ` + entryColumns + `
		FROM waiting_list_entries
		WHERE waiting_list_entries.travel_package_id = :travel_package_id
		  AND waiting_list_entries.active
		  AND waiting_list_entries.notification_expires_at IS NOT NULL
		  AND waiting_list_entries.notification_expires_at <= :now
		ORDER BY waiting_list_entries.position ASC
		LIMIT 1`

	queryMaxPosition = `
		SELECT COALESCE(MAX(waiting_list_entries.position), 0)
		FROM waiting_list_entries
		WHERE waiting_list_entries.travel_package_id = :travel_package_id
		  AND waiting_list_entries.active`

	queryCompactAfter = `
		UPDATE waiting_list_entries
		SET position = position - 1
		WHERE travel_package_id = :travel_package_id
		  AND active
		  AND position > :position`

	queryPackagesWithExpired = `
		SELECT DISTINCT waiting_list_entries.travel_package_id
		FROM waiting_list_entries
		WHERE waiting_list_entries.active
		  AND waiting_list_entries.notification_expires_at IS NOT NULL
		  AND waiting_list_entries.notification_expires_at <= :now`
)

// LiveHolderTx returns the entry holding an unexpired priority claim on the
// package, or a zero entry when no claim is outstanding.
func (repo *repositoryImpl) LiveHolderTx(ctx context.Context, tx *sqlx.Tx, packageID string, now time.Time) (model.WaitingListEntry, error) {
	return repo.getEntry(ctx, tx, "LiveHolderTx", queryLiveHolder, map[string]any{
		"travel_package_id": packageID,
		"now":               now,
	})
}

// NextEligibleTx returns the lowest-position active entry that has never been
// offered a room or whose earlier offer lapsed, or a zero entry when the
// queue has none. An expired head stays ahead of everyone behind it.
func (repo *repositoryImpl) NextEligibleTx(ctx context.Context, tx *sqlx.Tx, packageID string, now time.Time) (model.WaitingListEntry, error) {
	return repo.getEntry(ctx, tx, "NextEligibleTx", queryNextEligible, map[string]any{
		"travel_package_id": packageID,
		"now":               now,
	})
}

// OldestExpiredTx returns the lowest-position active entry whose claim has
// lapsed, or a zero entry.
func (repo *repositoryImpl) OldestExpiredTx(ctx context.Context, tx *sqlx.Tx, packageID string, now time.Time) (model.WaitingListEntry, error) {
	return repo.getEntry(ctx, tx, "OldestExpiredTx", queryOldestExpired, map[string]any{
		"travel_package_id": packageID,
		"now":               now,
	})
}

func (repo *repositoryImpl) getEntry(ctx context.Context, tx *sqlx.Tx, operation, query string, args map[string]any) (model.WaitingListEntry, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+"."+operation)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var entry model.WaitingListEntry

	prepare, err := tx.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return entry, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &entry, args); err != nil && !errors.Is(err, sql.ErrNoRows) {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return entry, fmt.Errorf("failed to get waiting list entry (%s): %w", operation, err)
	}

	return entry, nil
}

func (repo *repositoryImpl) MaxPositionTx(ctx context.Context, tx *sqlx.Tx, packageID string) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".MaxPositionTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryMaxPosition)

	var max int

	prepare, err := tx.PrepareNamedContext(ctx, queryMaxPosition)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &max, map[string]any{"travel_package_id": packageID}); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to get max waiting list position: %w", err)
	}

	return max, nil
}

// CompactAfterTx shifts every active entry behind the removed position one
// step forward so positions stay contiguous from 1.
func (repo *repositoryImpl) CompactAfterTx(ctx context.Context, tx *sqlx.Tx, packageID string, position int) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".CompactAfterTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryCompactAfter)

	if _, err := tx.NamedExecContext(ctx, queryCompactAfter, map[string]any{
		"travel_package_id": packageID,
		"position":          position,
	}); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to compact waiting list positions: %w", err)
	}

	return nil
}

// PackagesWithExpired lists the packages that have at least one lapsed claim
// awaiting reclamation.
func (repo *repositoryImpl) PackagesWithExpired(ctx context.Context, now time.Time) ([]string, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".PackagesWithExpired")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryPackagesWithExpired)

	var packageIDs []string

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, queryPackagesWithExpired)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &packageIDs, map[string]any{"now": now}); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list packages with expired claims: %w", err)
	}

	return packageIDs, nil
}
