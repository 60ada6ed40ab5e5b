package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/ngthuong45/flashsale/model"
	"github.com/ngthuong45/flashsale/pkg/memtable"
	"github.com/ngthuong45/flashsale/repository"
	"github.com/ngthuong45/flashsale/service/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newContext() context.Context {
	return context.Background()
}

type activeSourceStub struct {
	campaign model.NullCampaign
}

func (s *activeSourceStub) GetActiveCampaign(ctx context.Context) (model.NullCampaign, error) {
	return s.campaign, nil
}

type serviceTest struct {
	provider *repository.ProviderMock
	products *repository.ProductMock
	source   *activeSourceStub

	service *Service
}

func newServiceTest() *serviceTest {
	provider := &repository.ProviderMock{
		ReadonlyFunc: func(ctx context.Context) context.Context {
			return ctx
		},
	}
	products := &repository.ProductMock{}
	source := &activeSourceStub{}

	overlay := pricing.NewOverlay(source, zap.NewNop(), nil)
	table := memtable.New(1 << 20)

	return &serviceTest{
		provider: provider,
		products: products,
		source:   source,

		service: NewService(provider, products, overlay, table,
			30*time.Second, zap.NewNop()),
	}
}

func newProduct(id int64, discountPercent int64) model.Product {
	return model.Product{
		ID:              id,
		Name:            "product",
		Price:           decimal.NewFromInt(150000),
		DiscountPercent: discountPercent,
	}
}

func (tc *serviceTest) stubProducts(products ...model.Product) {
	tc.products.ListProductsFunc = func(ctx context.Context) ([]model.Product, error) {
		return products, nil
	}
}

func (tc *serviceTest) activateGlobal(percent int64, productIDs ...int64) {
	tc.source.campaign = model.NullCampaign{
		Valid: true,
		Campaign: model.Campaign{
			ID:                    11,
			Status:                model.CampaignStatusActive,
			DiscountType:          model.DiscountTypeGlobal,
			GlobalDiscountPercent: percent,
			ProductIDs:            productIDs,
		},
	}
}

func TestService__ListProducts__Store_Hit_Once(t *testing.T) {
	tc := newServiceTest()
	tc.stubProducts(newProduct(1, 10), newProduct(2, 0))

	result, err := tc.service.ListProducts(newContext())
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(result))
	assert.Equal(t, 1, len(tc.products.ListProductsCalls()))

	// second call is served from the byte cache
	result, err = tc.service.ListProducts(newContext())
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(result))
	assert.Equal(t, 1, len(tc.products.ListProductsCalls()))
}

func TestService__ListProducts__Overlay_Applied_On_Cache_Hit(t *testing.T) {
	tc := newServiceTest()
	tc.stubProducts(newProduct(1, 10), newProduct(2, 10))

	// warm the cache with no campaign active
	result, err := tc.service.ListProducts(newContext())
	assert.Equal(t, nil, err)
	assert.Equal(t, false, result[0].IsFlashSale)
	assert.Equal(t, false, result[1].IsFlashSale)

	// the campaign activates, the overlay view changes even though the
	// cached bytes are unchanged
	tc.activateGlobal(25, 1)

	result, err = tc.service.ListProducts(newContext())
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result[0].IsFlashSale)
	assert.Equal(t, int64(25), result[0].DiscountPercent)
	assert.Equal(t, false, result[1].IsFlashSale)
	assert.Equal(t, int64(10), result[1].DiscountPercent)
	assert.Equal(t, 1, len(tc.products.ListProductsCalls()))
}

func TestService__GetProduct__Found(t *testing.T) {
	tc := newServiceTest()
	tc.products.GetProductFunc = func(ctx context.Context, productID int64) (model.NullProduct, error) {
		return model.NullProduct{Valid: true, Product: newProduct(productID, 10)}, nil
	}
	tc.activateGlobal(25, 1)

	result, err := tc.service.GetProduct(newContext(), 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.Valid)
	assert.Equal(t, int64(1), result.Product.ID)
	assert.Equal(t, true, result.Product.IsFlashSale)
	assert.Equal(t, int64(25), result.Product.DiscountPercent)

	// cached afterwards
	_, err = tc.service.GetProduct(newContext(), 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(tc.products.GetProductCalls()))
}

func TestService__GetProduct__Not_Found(t *testing.T) {
	tc := newServiceTest()
	tc.products.GetProductFunc = func(ctx context.Context, productID int64) (model.NullProduct, error) {
		return model.NullProduct{}, nil
	}

	result, err := tc.service.GetProduct(newContext(), 404)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, result.Valid)

	// absence is not cached, the next call hits the store again
	_, err = tc.service.GetProduct(newContext(), 404)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(tc.products.GetProductCalls()))
}

func TestService__Corrupted_Cache_Entry__Reloaded(t *testing.T) {
	tc := newServiceTest()
	tc.stubProducts(newProduct(1, 10))

	tc.service.table.Set(allProductsKey, []byte("not json"), 30)

	result, err := tc.service.ListProducts(newContext())
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(result))
	assert.Equal(t, 1, len(tc.products.ListProductsCalls()))
}
