package sync

import (
	"context"
	"time"

	"marinahub/internal/domain"
	"marinahub/internal/repository"

	"github.com/go-co-op/gocron/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Prober decides whether a marina's on-site system is reachable.
type Prober interface {
	Probe(ctx context.Context, marina domain.Marina) bool
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(ctx context.Context, marina domain.Marina) bool

func (f ProberFunc) Probe(ctx context.Context, marina domain.Marina) bool {
	return f(ctx, marina)
}

// Monitor periodically probes every active marina and records the result on
// the marina row (is_online, last_sync_at).
type Monitor struct {
	repo      *repository.MarinaRepository
	prober    Prober
	interval  time.Duration
	timeout   time.Duration
	log       zerolog.Logger
	scheduler gocron.Scheduler
}

func NewMonitor(repo *repository.MarinaRepository, prober Prober, interval, timeout time.Duration, log zerolog.Logger) *Monitor {
	return &Monitor{
		repo:     repo,
		prober:   prober,
		interval: interval,
		timeout:  timeout,
		log:      log,
	}
}

func (m *Monitor) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return errors.Wrap(err, "creating connectivity scheduler")
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(m.interval),
		gocron.NewTask(func() {
			if err := m.CheckAll(ctx); err != nil {
				m.log.Error().Err(err).Msg("connectivity sweep failed")
			}
		}),
	)
	if err != nil {
		return errors.Wrap(err, "scheduling connectivity sweep")
	}

	m.scheduler = scheduler
	scheduler.Start()
	m.log.Info().Dur("interval", m.interval).Msg("connectivity monitor started")
	return nil
}

func (m *Monitor) Stop() error {
	if m.scheduler == nil {
		return nil
	}
	return m.scheduler.Shutdown()
}

// CheckAll probes every active marina once and persists the outcome.
func (m *Monitor) CheckAll(ctx context.Context) error {
	marinas, _, err := m.repo.GetAll(ctx, repository.MarinaFilters{ActiveOnly: true})
	if err != nil {
		return errors.Wrap(err, "listing marinas")
	}

	now := time.Now().UTC()
	for _, marina := range marinas {
		probeCtx, cancel := context.WithTimeout(ctx, m.timeout)
		online := m.prober.Probe(probeCtx, marina)
		cancel()

		if online != marina.IsOnline {
			m.log.Warn().
				Int64("marina_id", marina.ID).
				Str("code", marina.Code).
				Bool("online", online).
				Msg("marina connectivity changed")
		}

		if err := m.repo.UpdateSyncStatus(ctx, marina.ID, online, now); err != nil {
			m.log.Error().Err(err).Int64("marina_id", marina.ID).Msg("recording sync status")
		}
	}

	return nil
}
