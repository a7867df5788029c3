package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/solvix-app/solvix-backend/internal/handlers"
	"github.com/solvix-app/solvix-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps, identity *middleware.Identity) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	txh := handlers.NewTransactionHandlers(deps)
	billh := handlers.NewBillHandlers(deps)
	insth := handlers.NewInstallmentHandlers(deps)
	savh := handlers.NewSavingsHandlers(deps)

	r.Route("/api", func(r chi.Router) {
		r.Use(identity.OwnerIdentity)
		r.Mount("/transactions", txh.TransactionRoutes())
		r.Mount("/bill", billh.BillRoutes())
		r.Mount("/summary", billh.SummaryRoutes())
		r.Mount("/installments", insth.InstallmentRoutes())
		r.Mount("/boxes", savh.BoxRoutes())
	})
	return r
}
