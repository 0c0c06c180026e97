package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/mechafix/dispatch/internal/pkg/middleware"
	"github.com/mechafix/dispatch/internal/pkg/models"
	"github.com/mechafix/dispatch/services/dispatch"
	httpHandler "github.com/mechafix/dispatch/services/dispatch/handler/http"
	nsqHandler "github.com/mechafix/dispatch/services/dispatch/handler/nsq"
)

// Handler combines all handlers for the dispatch service
type Handler struct {
	cfg          *models.Config
	dispatchHTTP *httpHandler.DispatchHandler
	dispatchNSQ  *nsqHandler.DispatchHandler
}

// NewHandler creates a new combined handler
func NewHandler(dispatchUC dispatch.DispatchUC, cfg *models.Config) *Handler {
	return &Handler{
		cfg:          cfg,
		dispatchHTTP: httpHandler.NewDispatchHandler(dispatchUC),
		dispatchNSQ:  nsqHandler.NewDispatchHandler(dispatchUC, cfg),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))

	requests := v1.Group("/requests")
	requests.POST("", h.dispatchHTTP.CreateRequest, middleware.RequireRole(middleware.RoleRequester))
	requests.GET("/:requestID", h.dispatchHTTP.GetRequest)
	requests.POST("/:requestID/cancel", h.dispatchHTTP.CancelRequest, middleware.RequireRole(middleware.RoleRequester))
	requests.POST("/:requestID/accept", h.dispatchHTTP.AcceptRequest, middleware.RequireRole(middleware.RoleMechanic))
	requests.POST("/:requestID/reject", h.dispatchHTTP.RejectRequest, middleware.RequireRole(middleware.RoleMechanic))
	requests.POST("/:requestID/assign", h.dispatchHTTP.AssignWorker, middleware.RequireRole(middleware.RoleMechanic))
	requests.POST("/:requestID/complete", h.dispatchHTTP.CompleteRequest, middleware.RequireRole(middleware.RoleMechanic))

	mechanics := v1.Group("/mechanics")
	mechanics.GET("/candidates", h.dispatchHTTP.FindCandidates)
	mechanics.GET("/:mechanicID/requests", h.dispatchHTTP.ListPendingRequests, middleware.RequireRole(middleware.RoleMechanic))
	mechanics.GET("/:mechanicID/workers", h.dispatchHTTP.ListWorkers, middleware.RequireRole(middleware.RoleMechanic))
	mechanics.POST("/:mechanicID/workers", h.dispatchHTTP.RegisterWorker, middleware.RequireRole(middleware.RoleMechanic))

	requesters := v1.Group("/requesters")
	requesters.GET("/:requesterID/active-request", h.dispatchHTTP.ActiveRequest, middleware.RequireRole(middleware.RoleRequester))
}

// InitNSQConsumers starts the NSQ consumers
func (h *Handler) InitNSQConsumers() error {
	return h.dispatchNSQ.InitConsumers()
}

// Stop shuts down the handler's background consumers
func (h *Handler) Stop() {
	h.dispatchNSQ.Stop()
}
