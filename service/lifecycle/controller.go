package lifecycle

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/ngthuong45/flashsale/model"
	"github.com/ngthuong45/flashsale/pkg/metrics"
	"github.com/ngthuong45/flashsale/pkg/otellib"
	"github.com/ngthuong45/flashsale/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	phaseFinish   = "finish"
	phaseActivate = "activate"
)

// Controller runs the campaign state machine across all campaigns on a
// fixed cadence. It is the only writer of campaign status.
type Controller struct {
	provider repository.Provider
	repo     repository.Campaign

	logger  *zap.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer

	interval    time.Duration
	tickTimeout time.Duration

	nowFunc func() time.Time
}

// NewController ...
func NewController(
	provider repository.Provider, repo repository.Campaign,
	logger *zap.Logger, m *metrics.Metrics,
	interval time.Duration, tickTimeout time.Duration,
) *Controller {
	return &Controller{
		provider: provider,
		repo:     repo,

		logger:  logger,
		metrics: m,
		tracer:  otel.GetTracerProvider().Tracer("lifecycle"),

		interval:    interval,
		tickTimeout: tickTimeout,

		nowFunc: time.Now,
	}
}

// Run executes ticks on the configured interval until ctx is canceled.
// A tick that stalls on the store is abandoned at the tick timeout and the
// loop moves on to the next scheduled tick.
func (c *Controller) Run(ctx context.Context) {
	c.logger.Info("lifecycle controller started",
		zap.Duration("interval", c.interval),
		zap.Duration("tick_timeout", c.tickTimeout),
	)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			c.logger.Info("lifecycle controller stopped")
			return
		case <-ticker.C:
			c.tick(ctx)
		}
	}
}

func (c *Controller) tick(ctx context.Context) {
	start := time.Now()
	err := c.RunTick(ctx, c.nowFunc())
	c.metrics.RecordTick(time.Since(start))

	if err == nil {
		return
	}
	if errors.Is(err, context.DeadlineExceeded) {
		c.metrics.RecordTickSkipped()
		c.logger.Warn("tick abandoned on timeout, waiting for next tick", zap.Error(err))
		return
	}
	if errors.Is(err, context.Canceled) {
		return
	}
	c.metrics.RecordTickError()
	c.logger.Error("tick failed, state re-evaluated on next tick", zap.Error(err))
}

// RunTick applies the state machine to every campaign once. The finish
// phase runs before the activate phase so that a just-expired campaign
// frees the active slot within the same tick. Idempotent: once settled for
// a given now, repeated calls make no further writes.
func (c *Controller) RunTick(ctx context.Context, now time.Time) error {
	ctx, span := c.tracer.Start(ctx, "lifecycle.run_tick")
	defer span.End()

	ctx = otellib.ToContext(ctx, c.logger)

	if c.tickTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.tickTimeout)
		defer cancel()
	}

	if err := c.finishExpired(ctx, now); err != nil {
		return err
	}
	return c.activateEligible(ctx, now)
}

func (c *Controller) finishExpired(ctx context.Context, now time.Time) error {
	readCtx := c.provider.Readonly(ctx)
	expired, err := c.repo.FindExpiredActive(readCtx, now)
	if err != nil {
		return err
	}

	for _, campaign := range expired {
		if NextAction(campaign, now, true) != ActionFinish {
			continue
		}
		c.applyTransition(ctx, campaign, phaseFinish,
			model.CampaignStatusActive, model.CampaignStatusFinished)
	}
	return nil
}

func (c *Controller) activateEligible(ctx context.Context, now time.Time) error {
	readCtx := c.provider.Readonly(ctx)

	active, err := c.repo.FindActive(readCtx)
	if err != nil {
		return err
	}

	eligible, err := c.repo.FindEligibleScheduled(readCtx, now)
	if err != nil {
		return err
	}

	// the store already orders by (start_time, id), sorted again so the
	// selection stays deterministic for any store implementation
	sort.SliceStable(eligible, func(i, j int) bool {
		if !eligible[i].StartTime.Equal(eligible[j].StartTime) {
			return eligible[i].StartTime.Before(eligible[j].StartTime)
		}
		return eligible[i].ID < eligible[j].ID
	})

	if active.Valid {
		// informational only, these campaigns wait for the slot to free up
		c.metrics.SetPendingBehindActive(len(eligible))
		if len(eligible) > 0 {
			otellib.Extract(ctx).Info("scheduled campaigns pending behind an active campaign",
				zap.Int64("active_campaign_id", active.Campaign.ID),
				zap.Int("pending", len(eligible)),
			)
		}
		return nil
	}

	if len(eligible) == 0 {
		c.metrics.SetPendingBehindActive(0)
		return nil
	}

	winner := eligible[0]
	if NextAction(winner, now, false) == ActionActivate {
		c.applyTransition(ctx, winner, phaseActivate,
			model.CampaignStatusScheduled, model.CampaignStatusActive)
	}
	c.metrics.SetPendingBehindActive(len(eligible) - 1)
	return nil
}

// applyTransition persists a single status change. Failures are logged and
// counted but never abort the tick, the next tick re-derives the decision
// from current store state.
func (c *Controller) applyTransition(
	ctx context.Context, campaign model.Campaign, phase string,
	from model.CampaignStatus, to model.CampaignStatus,
) {
	var updated bool
	err := c.provider.Transact(ctx, func(ctx context.Context) error {
		var err error
		updated, err = c.repo.UpdateStatusFrom(ctx, campaign.ID, from, to)
		return err
	})
	if err != nil {
		c.metrics.RecordTransitionFailure(phase)
		otellib.Extract(ctx).Error("failed to persist campaign transition",
			zap.Int64("campaign_id", campaign.ID),
			zap.String("title", campaign.Title),
			zap.String("phase", phase),
			zap.Error(err),
		)
		return
	}
	if !updated {
		// another writer moved the campaign first, the conditional write
		// keeps the single-active invariant intact
		c.metrics.RecordLostStatusWrite()
		otellib.Extract(ctx).Warn("campaign status changed concurrently, transition skipped",
			zap.Int64("campaign_id", campaign.ID),
			zap.String("phase", phase),
		)
		return
	}

	c.metrics.RecordTransition(phase)
	otellib.Extract(ctx).Info("campaign transitioned",
		zap.Int64("campaign_id", campaign.ID),
		zap.String("title", campaign.Title),
		zap.Int("from", int(from)),
		zap.Int("to", int(to)),
	)
}
