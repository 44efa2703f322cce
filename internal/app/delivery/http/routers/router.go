package routers

import (
	"fmt"
	"simrs-service/internal/app/config"
	"simrs-service/internal/app/delivery/http/middlewares"
	"simrs-service/internal/app/services/core/catalog"
	"simrs-service/internal/app/services/core/orders"
	"simrs-service/internal/app/services/core/pharmacy"
	"simrs-service/internal/app/services/core/visits"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	visitController *visits.VisitController,
	orderController *orders.OrderController,
	pharmacyController *pharmacy.PharmacyController,
	catalogController *catalog.CatalogController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.RequestLogger(internalConfig.App, logrus.StandardLogger()))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/visits", func(r chi.Router) {
				attachVisitRoutes(r, middlewares, visitController, pharmacyController)
			})

			r.Route("/queues", func(r chi.Router) {
				attachQueueRoutes(r, middlewares, visitController)
			})

			r.Route("/orders", func(r chi.Router) {
				attachOrderRoutes(r, middlewares, orderController)
			})

			r.Route("/catalog", func(r chi.Router) {
				attachCatalogRoutes(r, middlewares, catalogController)
			})
		})
	})
}
