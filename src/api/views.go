package api

import (
	"net/http"
	"time"

	"fingenius/src/api/controllers"
	"fingenius/src/api/handlers"
	"fingenius/src/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler
	config  *config.Config
	logger  *logrus.Logger
}

func NewServer(cfg *config.Config, controller controllers.IController, logger *logrus.Logger) *Server {
	server := &Server{
		Router:  chi.NewRouter(),
		Handler: handlers.NewHandler(cfg, controller, logger),
		config:  cfg,
		logger:  logger,
	}
	server.InitRoutes()
	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Use(middleware.RequestID)
	s.Router.Use(middleware.RealIP)
	s.Router.Use(RequestLogger(s.logger))
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(ProcessTime)
	s.Router.Use(SecurityHeaders)
	s.Router.Use(CORS(s.config.CORS.AllowedOrigins))
	s.Router.Use(Metrics)

	s.Router.Get("/alive", handlers.Healthcheck)
	s.Router.Get("/health", s.Handler.Health)
	s.Router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	s.Router.Get("/", s.Handler.HomePage)
	s.Router.Get("/about", s.Handler.AboutPage)
	s.Router.Route("/dashboard", func(r chi.Router) {
		r.Get("/", s.Handler.DashboardPage)
		r.Get("/allocation", s.Handler.AllocationChart)
		r.Get("/export.pdf", s.Handler.ExportDashboardPDF)
	})

	s.Router.Route("/api/v1", func(r chi.Router) {
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", s.Handler.GetDashboard)
			r.Get("/wealth", s.Handler.GetWealth)
			r.Get("/holdings", s.Handler.GetHoldings)
			r.Get("/holdings.csv", s.Handler.GetHoldingsCSV)
			r.Get("/activities", s.Handler.GetActivities)
			r.Get("/insights", s.Handler.GetInsights)
			r.Post("/refresh", s.Handler.RefreshDashboard)
		})
		r.Post("/subscribe", s.Handler.Subscribe)
		r.Get("/format/{kind}", s.Handler.Format)
	})
}

func NewHTTPServer(cfg *config.Config, server *Server) *http.Server {
	httpServer := &http.Server{
		Addr:              ":" + cfg.Service.Port,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		Handler:           server,
	}
	return httpServer
}
