package routers

import (
	"simrs-service/internal/app/delivery/http/middlewares"
	"simrs-service/internal/app/services/core/visits"
	"simrs-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachQueueRoutes(router chi.Router, middlewares *middlewares.Middlewares, visitController *visits.VisitController) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireRoles(constvars.RoleCashier)).Get("/cashier", visitController.GetCashierQueue)
	router.With(middlewares.RequireRoles(constvars.RolePharmacy)).Get("/pharmacy", visitController.GetPharmacyQueue)
	router.With(middlewares.RequireRoles(constvars.RoleLab)).Get("/lab", visitController.GetLabQueue)
	router.With(middlewares.RequireRoles(constvars.RoleRadiology)).Get("/radiology", visitController.GetRadiologyQueue)
}
