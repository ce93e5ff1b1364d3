package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(h.withRecovery)
	router.Use(h.withCORS)
	router.Use(withGZip)

	if h.metrics != nil {
		router.Get("/metrics", h.metrics.Handler().ServeHTTP)
	}

	router.Route("/api", func(api chi.Router) {
		if h.server.RequestTimeout > 0 {
			api.Use(middleware.Timeout(h.server.RequestTimeout))
		}
		api.NotFound(apiNotFound)
		api.MethodNotAllowed(apiNotFound)

		// public routes
		api.Get("/health", h.health)
		api.Get("/version", h.getServerVersion)
		api.Get("/ledger/status", h.ledgerStatus)

		api.With(h.withRateLimit).Post("/contact", h.submitContact)
		api.With(h.withRateLimit).Post("/consultation", h.submitConsultation)

		api.Post("/calculate", h.calculateFinancing)
		api.Route("/calculators", func(calc chi.Router) {
			calc.Post("/hsa", h.calculateHSA)
			calc.Post("/insurance", h.calculateInsurance)
			calc.Post("/retirement", h.calculateRetirement)
		})

		api.Route("/auth", func(auth chi.Router) {
			auth.With(h.withRateLimit).Post("/register", h.register)
			auth.With(h.withRateLimit).Post("/login", h.login)
			auth.With(h.auth).Get("/me", h.me)
		})

		// routes with authorization
		api.Group(func(private chi.Router) {
			private.Use(h.auth)

			private.Get("/contacts", h.listContacts)

			private.Route("/patients", func(patients chi.Router) {
				patients.Post("/", h.createPatient)
				patients.Get("/", h.listPatients)
				patients.Get("/{id}", h.getPatient)
				patients.Put("/{id}", h.updatePatient)
				patients.Delete("/{id}", h.deletePatient)
			})

			private.With(h.withIntegrity).Post("/records", h.createRecord)
			private.Get("/records", h.listRecords)
			private.Get("/records/{id}", h.getRecord)
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(apiNotFound)

	return router
}
