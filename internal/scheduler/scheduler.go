// Package scheduler runs the background sweeps: reclaiming lapsed waiting
// list claims and sending pre-departure reminders.
package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"voyago/config"
	"voyago/infras/otel"
	wlService "voyago/internal/domains/waitinglist/service"
	"voyago/shared/clock"
	"voyago/shared/constant"
)

type Scheduler struct {
	waitingList wlService.WaitingList
	reminders   *ReminderSweeper
	cfg         *config.Config
	clock       clock.Clock
	otel        otel.Otel
}

func New(waitingList wlService.WaitingList, reminders *ReminderSweeper, cfg *config.Config, clock clock.Clock, otel otel.Otel) *Scheduler {
	return &Scheduler{
		waitingList: waitingList,
		reminders:   reminders,
		cfg:         cfg,
		clock:       clock,
		otel:        otel,
	}
}

// Run blocks until the context is cancelled, firing the reclamation sweep
// and the reminder sweep on their own intervals.
func (s *Scheduler) Run(ctx context.Context) error {
	reclaim := time.NewTicker(time.Duration(s.cfg.Scheduler.WaitingListSweepSeconds) * time.Second)
	defer reclaim.Stop()

	remind := time.NewTicker(time.Duration(s.cfg.Scheduler.ReminderSweepSeconds) * time.Second)
	defer remind.Stop()

	log.Info().
		Int("waitingListSweepSeconds", s.cfg.Scheduler.WaitingListSweepSeconds).
		Int("reminderSweepSeconds", s.cfg.Scheduler.ReminderSweepSeconds).
		Msg("scheduler started")

	// kick immediately
	s.tick(ctx, s.SweepWaitingLists)
	s.tick(ctx, s.reminders.Sweep)

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("scheduler stopped")

			return ctx.Err()
		case <-reclaim.C:
			s.tick(ctx, s.SweepWaitingLists)
		case <-remind.C:
			s.tick(ctx, s.reminders.Sweep)
		}
	}
}

// tick contains a sweep panic to the tick it happened in. The next tick
// still fires.
func (s *Scheduler) tick(ctx context.Context, sweep func(context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("sweep panicked")
		}
	}()

	sweep(ctx)
}

// SweepWaitingLists drains every lapsed claim across all packages. Each
// removal frees the package's offer slot, so the next waiter is offered the
// room immediately rather than waiting for another sweep.
func (s *Scheduler) SweepWaitingLists(ctx context.Context) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".SweepWaitingLists")
	defer scope.End()

	packageIDs, err := s.waitingList.PackagesWithExpired(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list packages with expired claims")
		scope.TraceError(err)

		return
	}

	for _, packageID := range packageIDs {
		for {
			removed, err := s.waitingList.RemoveExpired(ctx, packageID)
			if err != nil {
				log.Error().Err(err).Str("packageID", packageID).Msg("reclamation sweep aborted for package")

				break
			}

			if !removed {
				break
			}

			if err := s.waitingList.NotifyNext(ctx, packageID); err != nil {
				log.Error().Err(err).Str("packageID", packageID).Msg("failed to pass offer to next waiter")
			}
		}
	}
}
