package pricing

import (
	"context"
	"sync"
	"time"

	"github.com/ngthuong45/flashsale/model"
	"github.com/ngthuong45/flashsale/pkg/metrics"
	"github.com/ngthuong45/flashsale/pkg/otellib"
	"github.com/ngthuong45/flashsale/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ActiveCampaignCache answers "which campaign is active right now" from a
// process-local entry with a fixed TTL. Absence of an active campaign is
// cached as well. Writes by the lifecycle controller become visible within
// at most one TTL window.
type ActiveCampaignCache struct {
	provider repository.Provider
	repo     repository.Campaign

	logger  *zap.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer

	ttl     time.Duration
	nowFunc func() time.Time

	mu        sync.RWMutex
	cached    model.NullCampaign
	expiresAt time.Time
}

// NewActiveCampaignCache ...
func NewActiveCampaignCache(
	provider repository.Provider, repo repository.Campaign,
	logger *zap.Logger, m *metrics.Metrics, ttl time.Duration,
) *ActiveCampaignCache {
	return &ActiveCampaignCache{
		provider: provider,
		repo:     repo,

		logger:  logger,
		metrics: m,
		tracer:  otel.GetTracerProvider().Tracer("pricing"),

		ttl:     ttl,
		nowFunc: time.Now,
	}
}

// SetNowFunc overrides the clock, for tests.
func (c *ActiveCampaignCache) SetNowFunc(nowFunc func() time.Time) {
	c.nowFunc = nowFunc
}

// GetActiveCampaign returns the cached entry while it is fresh, otherwise
// it re-reads the store and caches the answer for another TTL window.
func (c *ActiveCampaignCache) GetActiveCampaign(ctx context.Context) (model.NullCampaign, error) {
	now := c.nowFunc()

	c.mu.RLock()
	if now.Before(c.expiresAt) {
		cached := c.cached
		c.mu.RUnlock()
		c.metrics.RecordCacheHit()
		return cached, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// another reader may have refreshed while this one waited for the lock
	if now.Before(c.expiresAt) {
		c.metrics.RecordCacheHit()
		return c.cached, nil
	}

	c.metrics.RecordCacheMiss()

	entry, err := c.refresh(ctx)
	if err != nil {
		c.metrics.RecordCacheRefreshError()
		return model.NullCampaign{}, err
	}

	c.cached = entry
	c.expiresAt = now.Add(c.ttl)
	return entry, nil
}

func (c *ActiveCampaignCache) refresh(ctx context.Context) (model.NullCampaign, error) {
	ctx, span := c.tracer.Start(ctx, "pricing.cache_refresh")
	defer span.End()

	ctx = otellib.ToContext(ctx, c.logger)

	readCtx := c.provider.Readonly(ctx)
	campaigns, err := c.repo.FindAllActive(readCtx)
	if err != nil {
		return model.NullCampaign{}, err
	}

	if len(campaigns) == 0 {
		return model.NullCampaign{}, nil
	}

	if len(campaigns) > 1 {
		// should be impossible under correct operation, resolved
		// deterministically while the anomaly is alarmed
		c.metrics.RecordConsistencyAlarm()
		ids := make([]int64, 0, len(campaigns))
		for _, campaign := range campaigns {
			ids = append(ids, campaign.ID)
		}
		otellib.Extract(ctx).Error("store reports more than one active campaign",
			zap.Int64s("campaign_ids", ids),
			zap.Int64("chosen_campaign_id", campaigns[0].ID),
		)
	}

	// FindAllActive orders by (start_time, id), the first entry is the
	// deterministic choice
	return model.NullCampaign{
		Valid:    true,
		Campaign: campaigns[0],
	}, nil
}
