package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mechafix/dispatch/internal/pkg/apperrors"
	"github.com/mechafix/dispatch/internal/pkg/models"
	"github.com/mechafix/dispatch/services/dispatch/mocks"
)

func setupContext(method, target, body string, userID uuid.UUID, role string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("user_role", role)
	return c, rec
}

func TestCreateRequest_Created(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockDispatchUC(ctrl)
	h := NewDispatchHandler(uc)

	requesterID := uuid.New()
	body := `{"requester_name":"Asha","latitude":22.99,"longitude":72.49,"issue_type":"battery"}`
	c, rec := setupContext(http.MethodPost, "/v1/requests", body, requesterID, "requester")

	uc.EXPECT().
		CreateRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.ServiceRequest) (*models.ServiceRequest, error) {
			assert.Equal(t, requesterID, req.RequesterID)
			assert.Equal(t, "battery", req.IssueType)
			req.ID = uuid.New()
			req.Status = models.RequestStatusBroadcasting
			return req, nil
		})

	// Act
	err := h.CreateRequest(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool                  `json:"success"`
		Data    models.ServiceRequest `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, models.RequestStatusBroadcasting, resp.Data.Status)
}

func TestCreateRequest_InvalidOriginIsBadRequest(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockDispatchUC(ctrl)
	h := NewDispatchHandler(uc)

	body := `{"latitude":200,"longitude":72.49,"issue_type":"battery"}`
	c, rec := setupContext(http.MethodPost, "/v1/requests", body, uuid.New(), "requester")

	uc.EXPECT().
		CreateRequest(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("origin rejected: %w", apperrors.ErrInvalidLocation))

	// Act
	err := h.CreateRequest(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAcceptRequest_ConflictMapsTo409(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockDispatchUC(ctrl)
	h := NewDispatchHandler(uc)

	mechanicID := uuid.New()
	requestID := uuid.NewString()
	c, rec := setupContext(http.MethodPost, "/v1/requests/"+requestID+"/accept", "", mechanicID, "mechanic")
	c.SetParamNames("requestID")
	c.SetParamValues(requestID)

	uc.EXPECT().
		AcceptRequest(gomock.Any(), requestID, mechanicID.String()).
		Return(nil, fmt.Errorf("already claimed: %w", apperrors.ErrConflict))

	// Act
	err := h.AcceptRequest(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetRequest_NotFoundMapsTo404(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockDispatchUC(ctrl)
	h := NewDispatchHandler(uc)

	requestID := uuid.NewString()
	c, rec := setupContext(http.MethodGet, "/v1/requests/"+requestID, "", uuid.New(), "requester")
	c.SetParamNames("requestID")
	c.SetParamValues(requestID)

	uc.EXPECT().
		GetRequest(gomock.Any(), requestID).
		Return(nil, fmt.Errorf("request %s: %w", requestID, apperrors.ErrNotFound))

	// Act
	err := h.GetRequest(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelRequest_ForeignRequesterForbidden(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockDispatchUC(ctrl)
	h := NewDispatchHandler(uc)

	requestID := uuid.New()
	owner := uuid.New()
	caller := uuid.New()
	c, rec := setupContext(http.MethodPost, "/v1/requests/"+requestID.String()+"/cancel", "", caller, "requester")
	c.SetParamNames("requestID")
	c.SetParamValues(requestID.String())

	uc.EXPECT().
		GetRequest(gomock.Any(), requestID.String()).
		Return(&models.ServiceRequest{ID: requestID, RequesterID: owner, Status: models.RequestStatusBroadcasting}, nil)

	// Act
	err := h.CancelRequest(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAssignWorker_RequiresWorkerID(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockDispatchUC(ctrl)
	h := NewDispatchHandler(uc)

	requestID := uuid.NewString()
	c, rec := setupContext(http.MethodPost, "/v1/requests/"+requestID+"/assign", `{}`, uuid.New(), "mechanic")
	c.SetParamNames("requestID")
	c.SetParamValues(requestID)

	// Act
	err := h.AssignWorker(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFindCandidates_ParsesQueryParams(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockDispatchUC(ctrl)
	h := NewDispatchHandler(uc)

	c, rec := setupContext(http.MethodGet,
		"/v1/mechanics/candidates?lat=22.99&lon=72.49&issue_type=battery&offset=5&limit=5",
		"", uuid.New(), "requester")

	uc.EXPECT().
		FindCandidates(gomock.Any(), gomock.Any(), "battery", 5, 5).
		DoAndReturn(func(_ interface{}, origin *models.Location, _ string, _, _ int) ([]models.CandidateMatch, error) {
			assert.InDelta(t, 22.99, origin.Latitude, 0.0001)
			assert.InDelta(t, 72.49, origin.Longitude, 0.0001)
			return []models.CandidateMatch{}, nil
		})

	// Act
	err := h.FindCandidates(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFindCandidates_MissingCoordinates(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockDispatchUC(ctrl)
	h := NewDispatchHandler(uc)

	c, rec := setupContext(http.MethodGet, "/v1/mechanics/candidates", "", uuid.New(), "requester")

	// Act
	err := h.FindCandidates(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListWorkers_OtherMechanicForbidden(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockDispatchUC(ctrl)
	h := NewDispatchHandler(uc)

	other := uuid.NewString()
	c, rec := setupContext(http.MethodGet, "/v1/mechanics/"+other+"/workers", "", uuid.New(), "mechanic")
	c.SetParamNames("mechanicID")
	c.SetParamValues(other)

	// Act
	err := h.ListWorkers(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestActiveRequest_NoActivePointer(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockDispatchUC(ctrl)
	h := NewDispatchHandler(uc)

	requesterID := uuid.New()
	c, rec := setupContext(http.MethodGet, "/v1/requesters/"+requesterID.String()+"/active-request", "", requesterID, "requester")
	c.SetParamNames("requesterID")
	c.SetParamValues(requesterID.String())

	uc.EXPECT().
		ActiveRequestID(gomock.Any(), requesterID.String()).
		Return("", nil)

	// Act
	err := h.ActiveRequest(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool        `json:"success"`
		Message string      `json:"message"`
		Data    interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Data)
}
