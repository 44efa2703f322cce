package routers

import (
	"simrs-service/internal/app/delivery/http/middlewares"
	"simrs-service/internal/app/services/core/catalog"
	"simrs-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachCatalogRoutes(router chi.Router, middlewares *middlewares.Middlewares, catalogController *catalog.CatalogController) {
	router.Use(middlewares.Authenticate)

	router.Get("/ambulance/{vehicleType}/fare", catalogController.PreviewAmbulanceFare)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Put("/ambulance/{vehicleType}", catalogController.UpsertAmbulanceConfig)
}
