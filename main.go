package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	bidding "fishmarket/internal/biddingService"
	chat "fishmarket/internal/chatService"
	"fishmarket/internal/config"
	"fishmarket/internal/geo"
	listing "fishmarket/internal/listingService"
	model "fishmarket/internal/models"
	order "fishmarket/internal/orderService"
	price "fishmarket/internal/priceService"
	profile "fishmarket/internal/profileService"
	"fishmarket/internal/repository"
	"fishmarket/internal/repository/sqlitedb"
	"fishmarket/internal/server"
	handler "fishmarket/services/marketplace/handler"
	"fishmarket/utils"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	repo, cleanup, err := openRepository(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open storage: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	prepopulateFishTypes(repo)

	profileSvc := profile.NewProfileService(repo, cfg.JWTSecret, cfg.JWTTTL)
	listingSvc := listing.NewListingService(repo, cfg.BulkMinWeight)
	biddingSvc := bidding.NewBiddingService(repo)
	orderSvc := order.NewOrderService(repo, geo.NewHaversineEstimator())
	chatSvc := chat.NewChatService(repo)
	priceSvc := price.NewPriceService(repo)

	router := server.SetupRouter(server.Handlers{
		Auth:    handler.NewAuthHandler(profileSvc),
		Profile: handler.NewProfileHandler(profileSvc),
		Listing: handler.NewListingHandler(listingSvc),
		Bidding: handler.NewBiddingHandler(biddingSvc),
		Order:   handler.NewOrderHandler(orderSvc),
		Chat:    handler.NewChatHandler(chatSvc),
		Price:   handler.NewPriceHandler(priceSvc),
	}, profileSvc)

	addr := ":" + cfg.Port
	fmt.Printf("Starting marketplace server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// openRepository picks SQLite when a database path is configured,
// otherwise the in-memory store.
func openRepository(cfg config.Config) (repository.MarketDB, func(), error) {
	if cfg.DatabasePath == "" {
		utils.Info("using in-memory storage", nil)
		return repository.NewMemoryRepo(), func() {}, nil
	}

	store, err := sqlitedb.Open(cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { _ = store.Close() }, nil
}

// prepopulateFishTypes seeds the catalog listings reference
func prepopulateFishTypes(repo repository.MarketDB) {
	types := []model.FishType{
		{ID: "ft-tuna", Name: "Tuna", Category: "saltwater"},
		{ID: "ft-seer", Name: "Seer Fish", Category: "saltwater"},
		{ID: "ft-pomfret", Name: "Pomfret", Category: "saltwater"},
		{ID: "ft-sardine", Name: "Sardine", Category: "saltwater"},
		{ID: "ft-mackerel", Name: "Mackerel", Category: "saltwater"},
		{ID: "ft-prawn", Name: "Prawn", Category: "shellfish"},
		{ID: "ft-crab", Name: "Crab", Category: "shellfish"},
		{ID: "ft-squid", Name: "Squid", Category: "cephalopod"},
	}

	now := time.Now().UTC()
	for _, ft := range types {
		ft.CreatedAt = now
		if err := repo.AddFishType(ft); err != nil {
			utils.Warn("failed to seed fish type", map[string]any{"name": ft.Name, "error": err.Error()})
		}
	}
}
