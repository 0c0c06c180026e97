package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/lib/pq"

	"github.com/mechafix/dispatch/internal/pkg/apperrors"
	"github.com/mechafix/dispatch/internal/pkg/models"
	"github.com/mechafix/dispatch/internal/utils"
	"github.com/mechafix/dispatch/services/dispatch"
)

// DispatchHandler handles HTTP requests for dispatch operations
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewDispatchHandler creates a new dispatch HTTP handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: dispatchUC,
	}
}

// CreateRequestBody is the payload for opening a breakdown request
type CreateRequestBody struct {
	RequesterName  string  `json:"requester_name"`
	RequesterPhone string  `json:"requester_phone"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	IssueType      string  `json:"issue_type"`
	Description    string  `json:"description"`
	ImageRef       string  `json:"image_ref"`
	SOS            bool    `json:"sos"`
}

// AssignWorkerBody is the payload for binding a worker to a request
type AssignWorkerBody struct {
	WorkerID string `json:"worker_id"`
}

// RegisterWorkerBody is the payload for adding a field worker
type RegisterWorkerBody struct {
	Name   string   `json:"name"`
	Phone  string   `json:"phone"`
	Skills []string `json:"skills"`
}

// CreateRequest handles POST /v1/requests
func (h *DispatchHandler) CreateRequest(c echo.Context) error {
	var body CreateRequestBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	requesterID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	req := &models.ServiceRequest{
		RequesterID:    requesterID,
		RequesterName:  body.RequesterName,
		RequesterPhone: body.RequesterPhone,
		Origin: models.Location{
			Latitude:  body.Latitude,
			Longitude: body.Longitude,
			Timestamp: time.Now(),
		},
		IssueType:   body.IssueType,
		Description: body.Description,
		ImageRef:    body.ImageRef,
		SOS:         body.SOS,
	}

	created, err := h.dispatchUC.CreateRequest(c.Request().Context(), req)
	if err != nil {
		return mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Request created", created)
}

// GetRequest handles GET /v1/requests/:requestID
func (h *DispatchHandler) GetRequest(c echo.Context) error {
	requestID := c.Param("requestID")
	if requestID == "" {
		return utils.BadRequestResponse(c, "Request ID is required")
	}

	req, err := h.dispatchUC.GetRequest(c.Request().Context(), requestID)
	if err != nil {
		return mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Request retrieved", req)
}

// CancelRequest handles POST /v1/requests/:requestID/cancel
func (h *DispatchHandler) CancelRequest(c echo.Context) error {
	requestID := c.Param("requestID")
	if requestID == "" {
		return utils.BadRequestResponse(c, "Request ID is required")
	}

	req, err := h.dispatchUC.GetRequest(c.Request().Context(), requestID)
	if err != nil {
		return mapError(c, err)
	}
	requesterID, _ := c.Get("user_id").(uuid.UUID)
	if req.RequesterID != requesterID {
		return utils.ForbiddenResponse(c, "only the requester may cancel this request")
	}

	cancelled, err := h.dispatchUC.CancelRequest(c.Request().Context(), requestID)
	if err != nil {
		return mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Request cancelled", cancelled)
}

// AcceptRequest handles POST /v1/requests/:requestID/accept
func (h *DispatchHandler) AcceptRequest(c echo.Context) error {
	requestID := c.Param("requestID")
	mechanicID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	req, err := h.dispatchUC.AcceptRequest(c.Request().Context(), requestID, mechanicID.String())
	if err != nil {
		return mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Request accepted", req)
}

// RejectRequest handles POST /v1/requests/:requestID/reject
func (h *DispatchHandler) RejectRequest(c echo.Context) error {
	requestID := c.Param("requestID")
	mechanicID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	req, err := h.dispatchUC.RejectRequest(c.Request().Context(), requestID, mechanicID.String())
	if err != nil {
		return mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Request rejected", req)
}

// AssignWorker handles POST /v1/requests/:requestID/assign
func (h *DispatchHandler) AssignWorker(c echo.Context) error {
	requestID := c.Param("requestID")
	mechanicID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var body AssignWorkerBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if body.WorkerID == "" {
		return utils.BadRequestResponse(c, "Worker ID is required")
	}

	req, err := h.dispatchUC.AssignWorker(c.Request().Context(), requestID, mechanicID.String(), body.WorkerID)
	if err != nil {
		return mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Worker assigned", req)
}

// CompleteRequest handles POST /v1/requests/:requestID/complete
func (h *DispatchHandler) CompleteRequest(c echo.Context) error {
	requestID := c.Param("requestID")
	mechanicID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	req, err := h.dispatchUC.CompleteRequest(c.Request().Context(), requestID, mechanicID.String())
	if err != nil {
		return mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Request completed", req)
}

// FindCandidates handles GET /v1/mechanics/candidates
func (h *DispatchHandler) FindCandidates(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lat is required")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "lon is required")
	}

	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	issueType := c.QueryParam("issue_type")

	origin := &models.Location{Latitude: lat, Longitude: lng, Timestamp: time.Now()}
	candidates, err := h.dispatchUC.FindCandidates(c.Request().Context(), origin, issueType, offset, limit)
	if err != nil {
		return mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Candidates retrieved", candidates)
}

// ListPendingRequests handles GET /v1/mechanics/:mechanicID/requests
func (h *DispatchHandler) ListPendingRequests(c echo.Context) error {
	mechanicID := c.Param("mechanicID")
	if err := h.requireSelf(c, mechanicID); err != nil {
		return err
	}

	requests, err := h.dispatchUC.ListPendingRequests(c.Request().Context(), mechanicID)
	if err != nil {
		return mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Pending requests retrieved", requests)
}

// ListWorkers handles GET /v1/mechanics/:mechanicID/workers
func (h *DispatchHandler) ListWorkers(c echo.Context) error {
	mechanicID := c.Param("mechanicID")
	if err := h.requireSelf(c, mechanicID); err != nil {
		return err
	}

	workers, err := h.dispatchUC.ListWorkers(c.Request().Context(), mechanicID)
	if err != nil {
		return mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Workers retrieved", workers)
}

// RegisterWorker handles POST /v1/mechanics/:mechanicID/workers
func (h *DispatchHandler) RegisterWorker(c echo.Context) error {
	mechanicID := c.Param("mechanicID")
	if err := h.requireSelf(c, mechanicID); err != nil {
		return err
	}

	var body RegisterWorkerBody
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	worker := &models.Worker{Name: body.Name, Phone: body.Phone, Skills: pq.StringArray(body.Skills)}
	created, err := h.dispatchUC.RegisterWorker(c.Request().Context(), mechanicID, worker)
	if err != nil {
		return mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Worker registered", created)
}

// ActiveRequest handles GET /v1/requesters/:requesterID/active-request
func (h *DispatchHandler) ActiveRequest(c echo.Context) error {
	requesterID := c.Param("requesterID")
	if err := h.requireSelf(c, requesterID); err != nil {
		return err
	}

	requestID, err := h.dispatchUC.ActiveRequestID(c.Request().Context(), requesterID)
	if err != nil {
		return mapError(c, err)
	}
	if requestID == "" {
		return utils.SuccessResponse(c, http.StatusOK, "No active request", nil)
	}

	req, err := h.dispatchUC.GetRequest(c.Request().Context(), requestID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// stale pointer, report no active request
			return utils.SuccessResponse(c, http.StatusOK, "No active request", nil)
		}
		return mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Active request retrieved", req)
}

// requireSelf restricts a path to the authenticated actor's own resources
func (h *DispatchHandler) requireSelf(c echo.Context, pathID string) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	if userID.String() != pathID {
		return utils.ForbiddenResponse(c, "cannot act on another account's resources")
	}
	return nil
}

// mapError translates the error taxonomy to HTTP statuses
func mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrInvalidLocation), errors.Is(err, apperrors.ErrValidation):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrTimeout), errors.Is(err, apperrors.ErrTransient):
		return utils.ServiceUnavailableResponse(c, err.Error())
	default:
		return utils.InternalServerErrorResponse(c, err.Error())
	}
}
