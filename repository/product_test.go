package repository

import (
	"context"
	"testing"

	"github.com/ngthuong45/flashsale/model"
	"github.com/ngthuong45/flashsale/pkg/integration"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type productRepoTest struct {
	tc       *integration.TestCase
	provider Provider
	repo     Product
}

func newProductRepoTest(t *testing.T) *productRepoTest {
	tc := integration.NewTestCase(t)
	tc.Truncate("product")

	return &productRepoTest{
		tc:       tc,
		provider: NewProvider(tc.DB),
		repo:     NewProduct(),
	}
}

func (r *productRepoTest) insert(t *testing.T, product model.Product) {
	err := r.provider.Transact(newContext(), func(ctx context.Context) error {
		return r.repo.UpsertProduct(ctx, product)
	})
	assert.Equal(t, nil, err)
}

func newStoredProduct(id int64, name string, price int64) model.Product {
	return model.Product{
		ID:              id,
		Name:            name,
		Price:           decimal.NewFromInt(price),
		DiscountPercent: 10,
		ImageURL:        "https://cdn.example.com/product.png",
	}
}

func TestProductRepo__Upsert_Get(t *testing.T) {
	r := newProductRepoTest(t)

	r.insert(t, newStoredProduct(1, "keyboard", 750000))

	result, err := r.repo.GetProduct(r.provider.Readonly(newContext()), 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.Valid)
	assert.Equal(t, "keyboard", result.Product.Name)
	assert.Equal(t, int64(10), result.Product.DiscountPercent)
	assert.Equal(t, true, result.Product.Price.Equal(decimal.NewFromInt(750000)))

	// upsert replaces the row
	r.insert(t, newStoredProduct(1, "mechanical keyboard", 900000))

	result, err = r.repo.GetProduct(r.provider.Readonly(newContext()), 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, "mechanical keyboard", result.Product.Name)
	assert.Equal(t, true, result.Product.Price.Equal(decimal.NewFromInt(900000)))
}

func TestProductRepo__Get_Not_Found(t *testing.T) {
	r := newProductRepoTest(t)

	result, err := r.repo.GetProduct(r.provider.Readonly(newContext()), 404)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, result.Valid)
}

func TestProductRepo__List__Ordered_By_ID(t *testing.T) {
	r := newProductRepoTest(t)

	r.insert(t, newStoredProduct(3, "monitor", 4500000))
	r.insert(t, newStoredProduct(1, "keyboard", 750000))
	r.insert(t, newStoredProduct(2, "mouse", 350000))

	result, err := r.repo.ListProducts(r.provider.Readonly(newContext()))
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(result))
	assert.Equal(t, int64(1), result[0].ID)
	assert.Equal(t, int64(2), result[1].ID)
	assert.Equal(t, int64(3), result[2].ID)
}

func TestProductRepo__List_By_IDs(t *testing.T) {
	r := newProductRepoTest(t)

	r.insert(t, newStoredProduct(1, "keyboard", 750000))
	r.insert(t, newStoredProduct(2, "mouse", 350000))
	r.insert(t, newStoredProduct(3, "monitor", 4500000))

	result, err := r.repo.ListProductsByIDs(r.provider.Readonly(newContext()), []int64{3, 1})
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(result))
	assert.Equal(t, int64(1), result[0].ID)
	assert.Equal(t, int64(3), result[1].ID)

	result, err = r.repo.ListProductsByIDs(r.provider.Readonly(newContext()), nil)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(result))
}
