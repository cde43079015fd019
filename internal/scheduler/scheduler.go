package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	Timezone              = "UTC"
	TimezoneOffsetSeconds = 0
)

// Purger drops expired entries and reports how many were removed.
type Purger interface {
	Purge(now time.Time) int
}

type Scheduler struct {
	ctx    context.Context
	cron   *cron.Cron
	spec   string
	purger Purger
	now    func() time.Time
	log    *slog.Logger
}

func New(ctx context.Context, spec string, purger Purger, log *slog.Logger) *Scheduler {
	c := cron.New(cron.WithLocation(time.FixedZone(Timezone, TimezoneOffsetSeconds)))

	return &Scheduler{
		ctx:    ctx,
		cron:   c,
		spec:   spec,
		purger: purger,
		now:    time.Now,
		log:    log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.purgeCache); err != nil {
		return err
	}

	s.cron.Start()

	return nil
}

// Stop waits for a running purge to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) purgeCache() {
	select {
	case <-s.ctx.Done():
		s.log.InfoContext(s.ctx, "Scheduler context is done",
			"error", s.ctx.Err())
		return
	default:
	}

	removed := s.purger.Purge(s.now())
	if removed == 0 {
		return
	}

	s.log.InfoContext(s.ctx, "Expired summaries are purged",
		"removed", removed,
		"spec", s.spec)
}
