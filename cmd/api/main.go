package main

import (
	"log"

	"github.com/snowball-one/auspost-apis/internal/core/auspost"
	"github.com/snowball-one/auspost-apis/internal/core/config"
	"github.com/snowball-one/auspost-apis/internal/core/logger"
	"github.com/snowball-one/auspost-apis/internal/core/server"
	addressadapter "github.com/snowball-one/auspost-apis/internal/features/address/adapters"
	addresshandler "github.com/snowball-one/auspost-apis/internal/features/address/handler"
	addressservice "github.com/snowball-one/auspost-apis/internal/features/address/service"
	deliveryadapter "github.com/snowball-one/auspost-apis/internal/features/delivery/adapters"
	deliveryhandler "github.com/snowball-one/auspost-apis/internal/features/delivery/handler"
	deliveryservice "github.com/snowball-one/auspost-apis/internal/features/delivery/service"
	trackingadapter "github.com/snowball-one/auspost-apis/internal/features/tracking/adapters"
	trackinghandler "github.com/snowball-one/auspost-apis/internal/features/tracking/handler"
	trackingservice "github.com/snowball-one/auspost-apis/internal/features/tracking/service"

	"go.uber.org/zap"
)

// @title AusPost Gateway API
// @version 1.0
// @description Gateway over the Australia Post Delivery Choice API family: delivery date estimation, timeslots, postcode capabilities, tracking and address validation.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.Bool("production_endpoint", cfg.AusPost.Username != "" && cfg.AusPost.Password != ""),
	)

	// One upstream client shared by every capability adapter.
	client := auspost.NewClient(cfg.AusPost)

	deliverySvc := deliveryservice.NewDeliveryService(deliveryadapter.NewAusPostAdapter(client))
	deliveryHdl := deliveryhandler.NewDeliveryHandler(deliverySvc)

	trackingSvc := trackingservice.NewTrackingService(trackingadapter.NewAusPostAdapter(client))
	trackingHdl := trackinghandler.NewTrackingHandler(trackingSvc)

	addressSvc := addressservice.NewAddressService(addressadapter.NewAusPostAdapter(client))
	addressHdl := addresshandler.NewAddressHandler(addressSvc)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/delivery-dates", deliveryHdl.GetDeliveryDates)
	srv.App.Get("/delivery-timeslots", deliveryHdl.GetDeliveryTimeslots)
	srv.App.Get("/postcode-capabilities", deliveryHdl.GetPostcodeCapabilities)
	srv.App.Get("/collection-points", deliveryHdl.GetCollectionPoints)
	srv.App.Get("/tracking/:ids", trackingHdl.QueryTracking)
	srv.App.Get("/address/validate", addressHdl.ValidateAddress)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
