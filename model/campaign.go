package model

import (
	"errors"
	"time"
)

// Campaign ...
type Campaign struct {
	ID     int64          `db:"id"`
	Title  string         `db:"title"`
	Status CampaignStatus `db:"status"`

	DiscountType          DiscountType `db:"discount_type"`
	GlobalDiscountPercent int64        `db:"global_discount_percent"`

	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`

	BannerImage string `db:"banner_image"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	// ProductIDs is loaded from campaign_product, membership is a set test
	ProductIDs []int64 `db:"-"`
}

// NullCampaign ...
type NullCampaign struct {
	Valid    bool
	Campaign Campaign
}

// CampaignStatus ...
type CampaignStatus int

const (
	// CampaignStatusDraft ...
	CampaignStatusDraft CampaignStatus = 1

	// CampaignStatusScheduled ...
	CampaignStatusScheduled CampaignStatus = 2

	// CampaignStatusActive ...
	CampaignStatusActive CampaignStatus = 3

	// CampaignStatusFinished ...
	CampaignStatusFinished CampaignStatus = 4
)

// DiscountType ...
type DiscountType int

const (
	// DiscountTypeIndividual ...
	DiscountTypeIndividual DiscountType = 1

	// DiscountTypeGlobal ...
	DiscountTypeGlobal DiscountType = 2
)

// ErrInvalidTimeRange ...
var ErrInvalidTimeRange = errors.New("campaign start time must be before end time")

// ErrInvalidDiscountPercent ...
var ErrInvalidDiscountPercent = errors.New("global discount percent must be in range [0, 100]")

// Validate checks the invariants the administrative boundary must uphold
func (c Campaign) Validate() error {
	if !c.StartTime.Before(c.EndTime) {
		return ErrInvalidTimeRange
	}
	if c.DiscountType == DiscountTypeGlobal {
		if c.GlobalDiscountPercent < 0 || c.GlobalDiscountPercent > 100 {
			return ErrInvalidDiscountPercent
		}
	}
	return nil
}

// ContainsProduct ...
func (c Campaign) ContainsProduct(productID int64) bool {
	for _, id := range c.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}
