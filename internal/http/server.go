package http

import (
	"net/http"

	"github.com/mauv0809/pitchside/internal/config"
	"github.com/mauv0809/pitchside/internal/metrics"
	"github.com/mauv0809/pitchside/internal/orchestrator"
	"github.com/mauv0809/pitchside/internal/store"
)

func NewServer(store store.ReservationStore, orch *orchestrator.Orchestrator, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Store:          store,
		Orchestrator:   orch,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/pitches", Chain(s.ListPitchesHandler(), paramsMiddleware))
	s.Router.Handle("/reservations", Chain(s.ListReservationsHandler(), paramsMiddleware))
	s.Router.Handle("/suspensions", Chain(s.ListSuspensionsHandler(), paramsMiddleware))
	s.Router.Handle("/join", Chain(s.JoinGameHandler(), paramsMiddleware))
	s.Router.Handle("/leave", Chain(s.LeaveGameHandler(), paramsMiddleware))
	s.Router.Handle("/waitlist/join", Chain(s.JoinWaitlistHandler(), paramsMiddleware))
	s.Router.Handle("/waitlist/leave", Chain(s.LeaveWaitlistHandler(), paramsMiddleware))
	s.Router.Handle("/admin/reservations/create", Chain(s.CreateReservationHandler(), paramsMiddleware))
	s.Router.Handle("/admin/reservations/delete", Chain(s.DeleteReservationHandler(), paramsMiddleware))
	s.Router.Handle("/admin/kick", Chain(s.KickPlayerHandler(), paramsMiddleware))
	s.Router.Handle("/admin/suspend", Chain(s.SuspendPlayerHandler(), paramsMiddleware))
	s.Router.Handle("/admin/summary", Chain(s.GameSummaryHandler(), paramsMiddleware))
	s.Router.Handle("/admin/pitches/create", Chain(s.CreatePitchHandler(), paramsMiddleware))
	s.Router.Handle("/admin/pitches/delete", Chain(s.DeletePitchHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
