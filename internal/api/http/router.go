package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rentman-backend/internal/security"
)

// NewRouter wires the reservation API. Literal segments are registered
// before the /{id} routes so mux matches them first.
func NewRouter(reservations *ReservationHandler, reports *ReportHandler, tokens security.TokenManager) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(AuthMiddleware(tokens))

	res := api.PathPrefix("/reservations").Subrouter()

	res.HandleFunc("", reservations.Create).Methods(http.MethodPost)

	res.HandleFunc("/active", reports.Active).Methods(http.MethodGet)
	res.HandleFunc("/upcoming", reports.Upcoming).Methods(http.MethodGet)
	res.HandleFunc("/overdue", reports.Overdue).Methods(http.MethodGet)
	res.HandleFunc("/today/pickups", reports.TodayPickups).Methods(http.MethodGet)
	res.HandleFunc("/today/returns", reports.TodayReturns).Methods(http.MethodGet)
	res.HandleFunc("/stats", reports.Statistics).Methods(http.MethodGet)

	res.HandleFunc("/number/{number}", reservations.GetByNumber).Methods(http.MethodGet)
	res.HandleFunc("/customer/{customerId:[0-9]+}", reservations.ListByCustomer).Methods(http.MethodGet)
	res.HandleFunc("/vehicle/{vehicleId:[0-9]+}", reservations.ListByVehicle).Methods(http.MethodGet)
	res.HandleFunc("/vehicle/{vehicleId:[0-9]+}/availability", reservations.CheckAvailability).Methods(http.MethodGet)
	res.HandleFunc("/status/{status}", reservations.ListByStatus).Methods(http.MethodGet)

	res.HandleFunc("/{id:[0-9]+}", reservations.Get).Methods(http.MethodGet)
	res.HandleFunc("/{id:[0-9]+}", reservations.Update).Methods(http.MethodPut)
	res.HandleFunc("/{id:[0-9]+}", reservations.Delete).Methods(http.MethodDelete)
	res.HandleFunc("/{id:[0-9]+}/confirm", reservations.Confirm).Methods(http.MethodPost)
	res.HandleFunc("/{id:[0-9]+}/start", reservations.Start).Methods(http.MethodPost)
	res.HandleFunc("/{id:[0-9]+}/complete", reservations.Complete).Methods(http.MethodPost)
	res.HandleFunc("/{id:[0-9]+}/cancel", reservations.Cancel).Methods(http.MethodPost)

	return r
}
