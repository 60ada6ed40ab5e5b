package main

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ngthuong45/flashsale/config"
	"github.com/ngthuong45/flashsale/model"
	"github.com/ngthuong45/flashsale/pkg/memtable"
	"github.com/ngthuong45/flashsale/repository"
	"github.com/ngthuong45/flashsale/service/catalog"
	"github.com/ngthuong45/flashsale/service/pricing"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	rootCmd := cobra.Command{
		Use: "bench",
	}
	rootCmd.AddCommand(
		benchOverlayCommand(),
		seedDataCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func benchOverlay() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	db := conf.MySQL.MustConnect()
	provider := repository.NewProvider(db)
	campaignRepo := repository.NewCampaign()
	productRepo := repository.NewProduct()

	cache := pricing.NewActiveCampaignCache(
		provider, campaignRepo, logger, nil, conf.FlashSale.CacheTTL)
	overlay := pricing.NewOverlay(cache, logger, nil)
	table := memtable.New(conf.FlashSale.MemtableSize)

	service := catalog.NewService(
		provider, productRepo, overlay, table,
		conf.FlashSale.CatalogCacheTTL, logger)

	const numThreads = 50
	const numElements = 2000

	durations := make([][]time.Duration, numThreads)

	totalStart := time.Now()

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for th := 0; th < numThreads; th++ {
		threadIndex := th
		go func() {
			defer wg.Done()

			for i := 0; i < numElements; i++ {
				start := time.Now()
				_, err := service.ListProducts(context.Background())
				if err != nil {
					fmt.Println(err)
				}
				durations[threadIndex] = append(durations[threadIndex], time.Since(start))
			}
		}()
	}
	wg.Wait()
	fmt.Println("TOTAL TIME", time.Since(totalStart))

	history := make([]time.Duration, 0, numThreads*numElements)
	for _, bucket := range durations {
		history = append(history, bucket...)
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i] < history[j]
	})

	numHistory := numElements * numThreads
	p50Index := numHistory * 50 / 100
	p90Index := numHistory * 90 / 100
	p95Index := numHistory * 95 / 100
	p99Index := numHistory * 99 / 100

	fmt.Println("P50:", history[p50Index])
	fmt.Println("P90:", history[p90Index])
	fmt.Println("P95:", history[p95Index])
	fmt.Println("P99:", history[p99Index])
	fmt.Println("MAX:", history[numHistory-1])
}

func benchOverlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overlay",
		Short: "benchmark the cached overlay read path",
		Run: func(cmd *cobra.Command, args []string) {
			benchOverlay()
		},
	}
}

func seedDataCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "seed products and campaigns",
		Run: func(cmd *cobra.Command, args []string) {
			conf := config.Load()
			db := conf.MySQL.MustConnect()

			provider := repository.NewProvider(db)
			campaignRepo := repository.NewCampaign()
			productRepo := repository.NewProduct()

			now := time.Now()

			err := provider.Transact(context.Background(), func(ctx context.Context) error {
				for i := int64(1); i <= 20; i++ {
					err := productRepo.UpsertProduct(ctx, model.Product{
						ID:              i,
						Name:            fmt.Sprintf("Product %02d", i),
						Price:           decimal.NewFromInt(i * 10000),
						DiscountPercent: 10,
					})
					if err != nil {
						return err
					}
				}

				campaign := model.Campaign{
					ID:                    1,
					Title:                 "Mid Autumn Flash Sale",
					Status:                model.CampaignStatusScheduled,
					DiscountType:          model.DiscountTypeGlobal,
					GlobalDiscountPercent: 25,
					StartTime:             now.Add(time.Minute),
					EndTime:               now.Add(2 * time.Hour),
				}
				if err := campaign.Validate(); err != nil {
					return err
				}
				if err := campaignRepo.UpsertCampaign(ctx, campaign); err != nil {
					return err
				}
				return campaignRepo.SetCampaignProducts(ctx, campaign.ID,
					[]int64{1, 2, 3, 4, 5, 6, 7, 8})
			})
			if err != nil {
				panic(err)
			}
			fmt.Println("Seeded successfully")
		},
	}
}
