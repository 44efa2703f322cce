package routers

import (
	"simrs-service/internal/app/delivery/http/middlewares"
	"simrs-service/internal/app/services/core/pharmacy"
	"simrs-service/internal/app/services/core/visits"
	"simrs-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachVisitRoutes(router chi.Router, middlewares *middlewares.Middlewares, visitController *visits.VisitController, pharmacyController *pharmacy.PharmacyController) {
	router.Use(middlewares.Authenticate)

	clinical := middlewares.RequireRoles(constvars.RoleClinical)
	cashier := middlewares.RequireRoles(constvars.RoleCashier)
	pharmacist := middlewares.RequireRoles(constvars.RolePharmacy)

	router.With(clinical).Post("/", visitController.CreateVisit)
	router.Get("/{visitID}", visitController.GetVisitByID)

	router.With(clinical).Post("/{visitID}/services", visitController.AddService)
	router.With(clinical).Put("/{visitID}/services/{index}", visitController.UpdateService)
	router.With(clinical).Delete("/{visitID}/services/{index}", visitController.RemoveService)

	router.With(clinical).Post("/{visitID}/prescriptions", visitController.AddPrescription)
	router.With(clinical).Put("/{visitID}/prescriptions/{index}", visitController.UpdatePrescription)
	router.With(clinical).Delete("/{visitID}/prescriptions/{index}", visitController.RemovePrescription)

	router.With(clinical).Put("/{visitID}/exam", visitController.RecordExam)
	router.With(clinical).Post("/{visitID}/finish", visitController.FinishVisit)

	router.With(cashier).Post("/{visitID}/payment", visitController.PayVisit)
	router.With(pharmacist).Post("/{visitID}/dispense", pharmacyController.DispenseVisit)
}
