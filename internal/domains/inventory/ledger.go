// Package inventory derives room availability from bookings. Remaining
// rooms are never stored; every read recomputes them from the bookings
// that currently occupy rooms so a stale counter can never oversell.
package inventory

//go:generate go run go.uber.org/mock/mockgen -source=./ledger.go -destination=./mocks/ledger_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"voyago/config"
	"voyago/infras/otel"
	bookingRepo "voyago/internal/domains/booking/repository"
	"voyago/shared/constant"
)

type Ledger interface {
	Remaining(ctx context.Context, packageID string, totalRoomCap int) (int, error)
	RemainingTx(ctx context.Context, tx *sqlx.Tx, packageID string, totalRoomCap int) (int, error)
}

type ledgerImpl struct {
	bookings bookingRepo.Booking
	cfg      *config.Config
	otel     otel.Otel
}

func NewLedger(bookings bookingRepo.Booking, cfg *config.Config, otel otel.Otel) Ledger {
	return &ledgerImpl{
		bookings: bookings,
		cfg:      cfg,
		otel:     otel,
	}
}

func (l *ledgerImpl) Remaining(ctx context.Context, packageID string, totalRoomCap int) (res int, err error) {
	ctx, scope := l.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.Remaining")
	defer scope.End()
	defer scope.TraceIfError(err)

	occupied, err := l.bookings.CountOccupiedRooms(ctx, packageID, l.cfg.App.Booking.CountUnpaidRooms)
	if err != nil {
		log.Error().Err(err).Str("packageID", packageID).Msg("failed to count occupied rooms")

		return 0, fmt.Errorf("failed to count occupied rooms: %w", err)
	}

	return remaining(totalRoomCap, occupied), nil
}

func (l *ledgerImpl) RemainingTx(ctx context.Context, tx *sqlx.Tx, packageID string, totalRoomCap int) (res int, err error) {
	ctx, scope := l.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.RemainingTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	occupied, err := l.bookings.CountOccupiedRoomsTx(ctx, tx, packageID, l.cfg.App.Booking.CountUnpaidRooms)
	if err != nil {
		log.Error().Err(err).Str("packageID", packageID).Msg("failed to count occupied rooms")

		return 0, fmt.Errorf("failed to count occupied rooms: %w", err)
	}

	return remaining(totalRoomCap, occupied), nil
}

// remaining clamps at zero: overbooked history must read as full, never as a
// negative count.
func remaining(totalRoomCap, occupied int) int {
	if occupied >= totalRoomCap {
		return 0
	}

	return totalRoomCap - occupied
}
