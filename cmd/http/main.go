package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"simrs-service/internal/app/config"
	"simrs-service/internal/app/delivery/http/middlewares"
	"simrs-service/internal/app/delivery/http/routers"
	"simrs-service/internal/app/drivers/database"
	"simrs-service/internal/app/drivers/logger"
	"simrs-service/internal/app/drivers/messaging"
	"simrs-service/internal/app/services/core/catalog"
	"simrs-service/internal/app/services/core/orders"
	"simrs-service/internal/app/services/core/pharmacy"
	"simrs-service/internal/app/services/core/visits"
	"simrs-service/internal/app/services/shared/alerts"
	sharedredis "simrs-service/internal/app/services/shared/redis"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that were already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Failed to close infrastructure connections: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared infrastructure
	kvStore := sharedredis.NewRedisRepository(bootstrap.Redis)
	alertPublisher, err := alerts.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.Alerts.StockReconciliationQueue)
	if err != nil {
		log.Fatalf("Failed to set up stock alert publisher: %v", err)
	}

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Catalog
	catalogMongoRepository := catalog.NewCatalogMongoRepository(bootstrap.MongoDB, dbName)
	catalogRepository := catalog.NewCatalogCachedRepository(bootstrap.Logger, kvStore, catalogMongoRepository, bootstrap.InternalConfig.Cache.CatalogTTLInSeconds)
	catalogUsecase := catalog.NewCatalogUsecase(bootstrap.Logger, catalogRepository)
	catalogController := catalog.NewCatalogController(bootstrap.Logger, catalogUsecase, bootstrap.InternalConfig)

	// Visits and orders
	visitRepository := visits.NewVisitMongoRepository(bootstrap.MongoDB, dbName)
	orderRepository := orders.NewOrderMongoRepository(bootstrap.MongoDB, dbName)

	visitUsecase := visits.NewVisitUsecase(bootstrap.Logger, visitRepository, catalogRepository, orderRepository)
	visitController := visits.NewVisitController(bootstrap.Logger, visitUsecase, bootstrap.InternalConfig)

	orderUsecase := orders.NewOrderUsecase(bootstrap.Logger, orderRepository, visitRepository)
	orderController := orders.NewOrderController(bootstrap.Logger, orderUsecase, bootstrap.InternalConfig)

	// Pharmacy
	pharmacyUsecase := pharmacy.NewPharmacyUsecase(bootstrap.Logger, visitRepository, catalogRepository, alertPublisher)
	pharmacyController := pharmacy.NewPharmacyController(bootstrap.Logger, pharmacyUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		visitController,
		orderController,
		pharmacyController,
		catalogController,
	)
}
