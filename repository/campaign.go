package repository

import (
	"context"
	"github.com/jmoiron/sqlx"
	"github.com/ngthuong45/flashsale/model"
	"time"
)

// Campaign ...
type Campaign interface {
	// FindActive returns the single ACTIVE campaign, if any
	FindActive(ctx context.Context) (model.NullCampaign, error)

	// FindAllActive returns every campaign the store reports as ACTIVE,
	// callers use it to detect and resolve single-active violations
	FindAllActive(ctx context.Context) ([]model.Campaign, error)

	// FindExpiredActive returns ACTIVE campaigns with end_time <= now
	FindExpiredActive(ctx context.Context, now time.Time) ([]model.Campaign, error)

	// FindEligibleScheduled returns SCHEDULED campaigns with
	// start_time <= now, sorted by start_time then id
	FindEligibleScheduled(ctx context.Context, now time.Time) ([]model.Campaign, error)

	// UpdateStatusFrom persists a status change conditioned on the current
	// status, it returns false when the row was not in status "from"
	UpdateStatusFrom(
		ctx context.Context, campaignID int64,
		from model.CampaignStatus, to model.CampaignStatus,
	) (bool, error)

	GetCampaign(ctx context.Context, campaignID int64) (model.NullCampaign, error)
	UpsertCampaign(ctx context.Context, campaign model.Campaign) error
	SetCampaignProducts(ctx context.Context, campaignID int64, productIDs []int64) error
}

type campaignImpl struct {
}

// NewCampaign ...
func NewCampaign() Campaign {
	return &campaignImpl{}
}

const campaignColumns = `
id, title, status, discount_type, global_discount_percent,
start_time, end_time, banner_image, created_at, updated_at
`

// FindActive ...
func (c *campaignImpl) FindActive(ctx context.Context) (model.NullCampaign, error) {
	campaigns, err := c.FindAllActive(ctx)
	if err != nil {
		return model.NullCampaign{}, err
	}
	if len(campaigns) == 0 {
		return model.NullCampaign{}, nil
	}
	return model.NullCampaign{
		Valid:    true,
		Campaign: campaigns[0],
	}, nil
}

// FindAllActive ...
func (c *campaignImpl) FindAllActive(ctx context.Context) ([]model.Campaign, error) {
	query := `
SELECT ` + campaignColumns + `
FROM campaign
WHERE status = ?
ORDER BY start_time, id
`
	var result []model.Campaign
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, model.CampaignStatusActive)
	if err != nil {
		return nil, err
	}
	return c.loadProductIDs(ctx, result)
}

// FindExpiredActive ...
func (c *campaignImpl) FindExpiredActive(ctx context.Context, now time.Time) ([]model.Campaign, error) {
	query := `
SELECT ` + campaignColumns + `
FROM campaign
WHERE status = ? AND end_time <= ?
ORDER BY end_time, id
`
	var result []model.Campaign
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, model.CampaignStatusActive, now)
	return result, err
}

// FindEligibleScheduled ...
func (c *campaignImpl) FindEligibleScheduled(ctx context.Context, now time.Time) ([]model.Campaign, error) {
	query := `
SELECT ` + campaignColumns + `
FROM campaign
WHERE status = ? AND start_time <= ?
ORDER BY start_time, id
`
	var result []model.Campaign
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, model.CampaignStatusScheduled, now)
	return result, err
}

// UpdateStatusFrom ...
func (c *campaignImpl) UpdateStatusFrom(
	ctx context.Context, campaignID int64,
	from model.CampaignStatus, to model.CampaignStatus,
) (bool, error) {
	query := `UPDATE campaign SET status = ? WHERE id = ? AND status = ?`
	result, err := GetTx(ctx).ExecContext(ctx, query, to, campaignID, from)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// GetCampaign ...
func (c *campaignImpl) GetCampaign(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
	query := `
SELECT ` + campaignColumns + `
FROM campaign
WHERE id = ?
`
	var result []model.Campaign
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaignID)
	if err != nil {
		return model.NullCampaign{}, err
	}
	if len(result) == 0 {
		return model.NullCampaign{}, nil
	}

	result, err = c.loadProductIDs(ctx, result)
	if err != nil {
		return model.NullCampaign{}, err
	}
	return model.NullCampaign{
		Valid:    true,
		Campaign: result[0],
	}, nil
}

// UpsertCampaign ...
func (c *campaignImpl) UpsertCampaign(ctx context.Context, campaign model.Campaign) error {
	query := `
INSERT INTO campaign (
	id, title, status, discount_type, global_discount_percent,
	start_time, end_time, banner_image
) VALUES (
	:id, :title, :status, :discount_type, :global_discount_percent,
	:start_time, :end_time, :banner_image
) AS NEW
ON DUPLICATE KEY UPDATE
	title = NEW.title,
	status = NEW.status,
	discount_type = NEW.discount_type,
	global_discount_percent = NEW.global_discount_percent,
	start_time = NEW.start_time,
	end_time = NEW.end_time,
	banner_image = NEW.banner_image
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, campaign)
	return err
}

// SetCampaignProducts ...
func (c *campaignImpl) SetCampaignProducts(
	ctx context.Context, campaignID int64, productIDs []int64,
) error {
	deleteQuery := `DELETE FROM campaign_product WHERE campaign_id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, deleteQuery, campaignID)
	if err != nil {
		return err
	}

	if len(productIDs) == 0 {
		return nil
	}

	type membership struct {
		CampaignID int64 `db:"campaign_id"`
		ProductID  int64 `db:"product_id"`
	}

	memberships := make([]membership, 0, len(productIDs))
	for _, productID := range productIDs {
		memberships = append(memberships, membership{
			CampaignID: campaignID,
			ProductID:  productID,
		})
	}

	insertQuery := `
INSERT IGNORE INTO campaign_product (campaign_id, product_id)
VALUES (:campaign_id, :product_id)
`
	_, err = GetTx(ctx).NamedExecContext(ctx, insertQuery, memberships)
	return err
}

type campaignProductRow struct {
	CampaignID int64 `db:"campaign_id"`
	ProductID  int64 `db:"product_id"`
}

func (c *campaignImpl) loadProductIDs(
	ctx context.Context, campaigns []model.Campaign,
) ([]model.Campaign, error) {
	if len(campaigns) == 0 {
		return campaigns, nil
	}

	campaignIDs := make([]int64, 0, len(campaigns))
	for _, campaign := range campaigns {
		campaignIDs = append(campaignIDs, campaign.ID)
	}

	query, args, err := sqlx.In(`
SELECT campaign_id, product_id
FROM campaign_product
WHERE campaign_id IN (?)
ORDER BY campaign_id, product_id
`, campaignIDs)
	if err != nil {
		return nil, err
	}

	var rows []campaignProductRow
	err = GetReadonly(ctx).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	productIDs := map[int64][]int64{}
	for _, row := range rows {
		productIDs[row.CampaignID] = append(productIDs[row.CampaignID], row.ProductID)
	}

	for i := range campaigns {
		campaigns[i].ProductIDs = productIDs[campaigns[i].ID]
	}
	return campaigns, nil
}
