package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"voyago/config"
	"voyago/infras/otel"
	bookingModel "voyago/internal/domains/booking/model"
	bookingRepo "voyago/internal/domains/booking/repository"
	pkgModel "voyago/internal/domains/travelpackage/model"
	pkgRepo "voyago/internal/domains/travelpackage/repository"
	"voyago/internal/notifier"
	"voyago/shared"
	"voyago/shared/clock"
	"voyago/shared/constant"
)

// ReminderSweeper sends a one-off trip reminder for every paid booking whose
// package departs within the configured lead window.
type ReminderSweeper struct {
	bookings bookingRepo.Booking
	packages pkgRepo.TravelPackage
	notify   notifier.Notifier
	cfg      *config.Config
	clock    clock.Clock
	otel     otel.Otel
}

func NewReminderSweeper(
	bookings bookingRepo.Booking,
	packages pkgRepo.TravelPackage,
	notify notifier.Notifier,
	cfg *config.Config,
	clock clock.Clock,
	otel otel.Otel,
) *ReminderSweeper {
	return &ReminderSweeper{
		bookings: bookings,
		packages: packages,
		notify:   notify,
		cfg:      cfg,
		clock:    clock,
		otel:     otel,
	}
}

func (r *ReminderSweeper) Sweep(ctx context.Context) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".ReminderSweep")
	defer scope.End()

	now := r.clock.Now()
	until := now.AddDate(0, 0, r.cfg.Scheduler.ReminderLeadDays)

	bookings, err := r.bookings.GetUpcomingForReminder(ctx, now, until)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings due a reminder")
		scope.TraceError(err)

		return
	}

	for _, booking := range bookings {
		r.remind(ctx, booking, now)
	}
}

func (r *ReminderSweeper) remind(ctx context.Context, booking bookingModel.Booking, now time.Time) {
	pkg, err := r.packages.Get(ctx, shared.FilterByID(booking.TravelPackageID, pkgModel.FieldID, pkgModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to load package for reminder")

		return
	}

	if pkg.ID == constant.Empty {
		return
	}

	if err := r.notify.TripReminder(ctx, booking.UserID, pkg.ID, booking.ID, pkg.StartDate); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish trip reminder")

		return
	}

	// Marked only after a successful publish so a failed send retries on the
	// next sweep.
	err = r.bookings.Update(ctx, map[string]any{
		bookingModel.FieldReminderSentAt: now,
		constant.FieldModifiedAt:         now,
		constant.FieldModifiedBy:         constant.SystemActor,
	}, shared.FilterByID(booking.ID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to mark reminder as sent")
	}
}
