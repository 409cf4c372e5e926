package status

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"

	"github.com/Artox/open-build-service/api/pkg/types"
)

type refresher interface {
	Refresh(ctx context.Context, project string) (types.StatusSnapshot, error)
}

// Prewarmer keeps the snapshots of busy projects in the cache so the status page
// rarely has to wait for the backend
type Prewarmer struct {
	refresher refresher
	projects  []string
	interval  time.Duration
	cron      gocron.Scheduler
}

func NewPrewarmer(refresher refresher, projects []string, interval time.Duration) (*Prewarmer, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("prewarm interval must be positive")
	}
	cron, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Prewarmer{
		refresher: refresher,
		projects:  projects,
		interval:  interval,
		cron:      cron,
	}, nil
}

// Start schedules one job per project and blocks until the context is done
func (p *Prewarmer) Start(ctx context.Context) error {
	for _, project := range p.projects {
		_, err := p.cron.NewJob(
			gocron.DurationJob(p.interval),
			p.getTask(ctx, project),
			gocron.WithName(project),
			gocron.WithTags("prewarm"),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
			gocron.WithStartAt(gocron.WithStartImmediately()),
		)
		if err != nil {
			return fmt.Errorf("failed to schedule prewarm of %s: %w", project, err)
		}
	}

	p.cron.Start()

	<-ctx.Done()

	err := p.cron.Shutdown()
	if err != nil {
		return fmt.Errorf("failed to shutdown scheduler: %w", err)
	}
	return nil
}

func (p *Prewarmer) getTask(ctx context.Context, project string) gocron.Task {
	return gocron.NewTask(func() {
		start := time.Now()
		snapshot, err := p.refresher.Refresh(ctx, project)
		if err != nil {
			log.Error().
				Err(err).
				Str("project", project).
				Msg("failed to prewarm project status")
			return
		}
		log.Debug().
			Str("project", project).
			Int("packages", len(snapshot)).
			Dur("took", time.Since(start)).
			Msg("prewarmed project status")
	})
}
