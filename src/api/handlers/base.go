package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fingenius/src/api/controllers"
	"fingenius/src/config"
	"fingenius/src/schemas"
	"fingenius/src/utils"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

const requestTimeout = 10 * time.Second

type Handler struct {
	Controller controllers.IController
	Logger     *logrus.Logger
	Service    config.ServiceConfig
}

func NewHandler(cfg *config.Config, controller controllers.IController, logger *logrus.Logger) *Handler {
	return &Handler{Controller: controller, Logger: logger, Service: cfg.Service}
}

// requestContext bounds the request and carries a logger tagged with the
// request id.
func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	return utils.WithLogger(ctx, h.Logger), cancel
}

func (h *Handler) log(r *http.Request) *logrus.Entry {
	return h.Logger.WithField("requestId", middleware.GetReqID(r.Context()))
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

// HandleErrors writes err as a JSON error. Errors that are not HTTPErrors
// become a 500, except timeouts which become a 504.
func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		err = utils.NewHTTPError(http.StatusGatewayTimeout, "request timed out")
	}
	var httpErr *utils.HTTPError
	if errors.As(err, &httpErr) {
		h.Logger.WithField("status", httpErr.Code).Warn(httpErr.Message)
	} else {
		h.Logger.WithError(err).Error("unhandled error")
	}
	utils.WriteError(w, err)
}

func Healthcheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("alive"))
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, schemas.HealthResponse{
		Status:    "healthy",
		Service:   h.Service.Name,
		Version:   h.Service.Version,
		Timestamp: float64(time.Now().UnixMilli()) / 1000,
	}, http.StatusOK)
}
