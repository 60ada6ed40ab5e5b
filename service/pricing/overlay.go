package pricing

import (
	"context"

	"github.com/ngthuong45/flashsale/model"
	"github.com/ngthuong45/flashsale/pkg/metrics"
	"github.com/ngthuong45/flashsale/pkg/otellib"
	"go.uber.org/zap"
)

// ActiveCampaignSource is the part of the cache the overlay depends on.
type ActiveCampaignSource interface {
	GetActiveCampaign(ctx context.Context) (model.NullCampaign, error)
}

// Overlay computes the effective discount view of products from the
// current active campaign. It never mutates its inputs and never writes
// back to the store.
type Overlay struct {
	source  ActiveCampaignSource
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewOverlay ...
func NewOverlay(source ActiveCampaignSource, logger *zap.Logger, m *metrics.Metrics) *Overlay {
	return &Overlay{
		source:  source,
		logger:  logger,
		metrics: m,
	}
}

// Apply returns effective views for the given products, preserving
// cardinality and order. When the active campaign lookup fails the overlay
// fails open: the stored records come back unmodified so that pricing
// never becomes unavailable because the promotional subsystem is degraded.
func (o *Overlay) Apply(ctx context.Context, products []model.Product) []model.Product {
	ctx = otellib.ToContext(ctx, o.logger)

	result := make([]model.Product, len(products))
	copy(result, products)

	active, err := o.source.GetActiveCampaign(ctx)
	if err != nil {
		o.metrics.RecordOverlayFailOpen()
		otellib.Extract(ctx).Warn("active campaign lookup failed, serving stored product records",
			zap.Error(err))
		return result
	}

	for i := range result {
		result[i] = o.applyOne(ctx, result[i], active)
	}
	return result
}

// ApplyOne returns the effective view of a single product.
func (o *Overlay) ApplyOne(ctx context.Context, product model.Product) model.Product {
	views := o.Apply(ctx, []model.Product{product})
	return views[0]
}

func (o *Overlay) applyOne(ctx context.Context, product model.Product, active model.NullCampaign) model.Product {
	if !active.Valid || !active.Campaign.ContainsProduct(product.ID) {
		// a stale stored flag from a finished sale must never leak
		product.IsFlashSale = false
		return product
	}

	product.IsFlashSale = true
	if active.Campaign.DiscountType == model.DiscountTypeGlobal {
		product.DiscountPercent = o.clampPercent(ctx, active.Campaign.GlobalDiscountPercent,
			"campaign", active.Campaign.ID)
	} else {
		product.DiscountPercent = o.clampPercent(ctx, product.DiscountPercent,
			"product", product.ID)
	}
	return product
}

func (o *Overlay) clampPercent(ctx context.Context, percent int64, kind string, id int64) int64 {
	if percent >= 0 && percent <= 100 {
		return percent
	}

	clamped := percent
	if clamped < 0 {
		clamped = 0
	} else {
		clamped = 100
	}

	o.metrics.RecordPercentClamped()
	otellib.Extract(ctx).Warn("discount percent out of range, clamped",
		zap.String("kind", kind),
		zap.Int64("id", id),
		zap.Int64("percent", percent),
		zap.Int64("clamped", clamped),
	)
	return clamped
}
