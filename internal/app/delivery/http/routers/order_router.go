package routers

import (
	"simrs-service/internal/app/delivery/http/middlewares"
	"simrs-service/internal/app/services/core/orders"
	"simrs-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachOrderRoutes(router chi.Router, middlewares *middlewares.Middlewares, orderController *orders.OrderController) {
	router.Use(middlewares.Authenticate)

	departments := middlewares.RequireRoles(constvars.RoleLab, constvars.RoleRadiology, constvars.RoleClinical)

	router.With(departments).Put("/{kind}/{visitID}", orderController.UpsertOrder)
	router.Get("/{kind}/{visitID}", orderController.GetOrderByVisitID)
}
