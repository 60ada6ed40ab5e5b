package repository

import (
	"context"
	"github.com/jmoiron/sqlx"
	"github.com/ngthuong45/flashsale/model"
)

// Product ...
type Product interface {
	GetProduct(ctx context.Context, productID int64) (model.NullProduct, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	ListProductsByIDs(ctx context.Context, productIDs []int64) ([]model.Product, error)
	UpsertProduct(ctx context.Context, product model.Product) error
}

type productImpl struct {
}

// NewProduct ...
func NewProduct() Product {
	return &productImpl{}
}

const productColumns = `
id, name, price, discount_percent, is_flash_sale, image_url, created_at, updated_at
`

// GetProduct ...
func (p *productImpl) GetProduct(ctx context.Context, productID int64) (model.NullProduct, error) {
	query := `
SELECT ` + productColumns + `
FROM product
WHERE id = ?
`
	var result []model.Product
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, productID)
	if err != nil {
		return model.NullProduct{}, err
	}
	if len(result) == 0 {
		return model.NullProduct{}, nil
	}
	return model.NullProduct{
		Valid:   true,
		Product: result[0],
	}, nil
}

// ListProducts ...
func (p *productImpl) ListProducts(ctx context.Context) ([]model.Product, error) {
	query := `
SELECT ` + productColumns + `
FROM product
ORDER BY id
`
	var result []model.Product
	err := GetReadonly(ctx).SelectContext(ctx, &result, query)
	return result, err
}

// ListProductsByIDs ...
func (p *productImpl) ListProductsByIDs(
	ctx context.Context, productIDs []int64,
) ([]model.Product, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
SELECT `+productColumns+`
FROM product
WHERE id IN (?)
ORDER BY id
`, productIDs)
	if err != nil {
		return nil, err
	}

	var result []model.Product
	err = GetReadonly(ctx).SelectContext(ctx, &result, query, args...)
	return result, err
}

// UpsertProduct ...
func (p *productImpl) UpsertProduct(ctx context.Context, product model.Product) error {
	query := `
INSERT INTO product (
	id, name, price, discount_percent, is_flash_sale, image_url
) VALUES (
	:id, :name, :price, :discount_percent, :is_flash_sale, :image_url
) AS NEW
ON DUPLICATE KEY UPDATE
	name = NEW.name,
	price = NEW.price,
	discount_percent = NEW.discount_percent,
	is_flash_sale = NEW.is_flash_sale,
	image_url = NEW.image_url
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, product)
	return err
}
