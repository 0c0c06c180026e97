package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus represents the current status of a service request
type RequestStatus string

const (
	RequestStatusCreated          RequestStatus = "CREATED"
	RequestStatusBroadcasting     RequestStatus = "BROADCASTING"
	RequestStatusMechanicAccepted RequestStatus = "MECHANIC_ACCEPTED"
	RequestStatusTimedOut         RequestStatus = "TIMED_OUT"
	RequestStatusWorkerAssigned   RequestStatus = "WORKER_ASSIGNED"
	RequestStatusCompleted        RequestStatus = "COMPLETED"
	RequestStatusCancelled        RequestStatus = "CANCELLED"
)

// IsTerminal reports whether the status allows no further transitions
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusCancelled
}

// requestTransitions is the fixed partial order of the request lifecycle.
// CANCELLED is reachable from any non-terminal state and is handled
// separately in CanTransition.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusCreated:          {RequestStatusBroadcasting},
	RequestStatusBroadcasting:     {RequestStatusMechanicAccepted, RequestStatusTimedOut},
	RequestStatusTimedOut:         {RequestStatusMechanicAccepted},
	RequestStatusMechanicAccepted: {RequestStatusWorkerAssigned},
	RequestStatusWorkerAssigned:   {RequestStatusCompleted},
}

// CanTransition reports whether moving from to next is a legal forward step
func (s RequestStatus) CanTransition(next RequestStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == RequestStatusCancelled {
		return true
	}
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CandidateStatus represents a mechanic organization's response status
// against a specific request
type CandidateStatus string

const (
	CandidateStatusPending   CandidateStatus = "PENDING"
	CandidateStatusAccepted  CandidateStatus = "ACCEPTED"
	CandidateStatusRejected  CandidateStatus = "REJECTED"
	CandidateStatusCompleted CandidateStatus = "COMPLETED"
)

// CandidateMatch is one mechanic's slot in a request's candidate list.
// Rank preserves search order (insertion order = search rank).
type CandidateMatch struct {
	RequestID    uuid.UUID       `json:"request_id" db:"request_id"`
	MechanicID   uuid.UUID       `json:"mechanic_id" db:"mechanic_id"`
	MechanicName string          `json:"mechanic_name" db:"mechanic_name"`
	DistanceKm   float64         `json:"distance_km" db:"distance_km"`
	Rating       float64         `json:"rating" db:"rating"`
	Status       CandidateStatus `json:"status" db:"status"`
	Rank         int             `json:"rank" db:"rank"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// Assignment binds an accepted request to a specific field worker.
// OTPCode is generated exactly once and is stable for the request's lifetime.
type Assignment struct {
	RequestID  uuid.UUID `json:"request_id" db:"request_id"`
	WorkerID   uuid.UUID `json:"worker_id" db:"worker_id"`
	OTPCode    string    `json:"otp_code" db:"otp_code"`
	AssignedAt time.Time `json:"assigned_at" db:"assigned_at"`
}

// ServiceRequest is the persisted record of one breakdown-assistance
// request. It is the single source of truth shared by all actors.
type ServiceRequest struct {
	ID             uuid.UUID        `json:"request_id"`
	RequesterID    uuid.UUID        `json:"requester_id"`
	RequesterName  string           `json:"requester_name"`
	RequesterPhone string           `json:"requester_phone"`
	Origin         Location         `json:"origin"`
	IssueType      string           `json:"issue_type"`
	Description    string           `json:"description,omitempty"`
	ImageRef       string           `json:"image_ref,omitempty"`
	SOS            bool             `json:"sos,omitempty"`
	Status         RequestStatus    `json:"status"`
	Candidates     []CandidateMatch `json:"candidates"`
	Assignment     *Assignment      `json:"assignment,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	BroadcastAt    *time.Time       `json:"broadcast_at,omitempty"`
	AcceptedAt     *time.Time       `json:"accepted_at,omitempty"`
	CompletedAt    *time.Time       `json:"completed_at,omitempty"`
	CancelledAt    *time.Time       `json:"cancelled_at,omitempty"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// AcceptedCandidate returns the candidate holding the accepted slot, if any
func (r *ServiceRequest) AcceptedCandidate() *CandidateMatch {
	for i := range r.Candidates {
		if r.Candidates[i].Status == CandidateStatusAccepted ||
			r.Candidates[i].Status == CandidateStatusCompleted {
			return &r.Candidates[i]
		}
	}
	return nil
}

// Candidate returns the candidate slot for the given mechanic, if present
func (r *ServiceRequest) Candidate(mechanicID uuid.UUID) *CandidateMatch {
	for i := range r.Candidates {
		if r.Candidates[i].MechanicID == mechanicID {
			return &r.Candidates[i]
		}
	}
	return nil
}

// ServiceRequestDTO flattens ServiceRequest for database operations
type ServiceRequestDTO struct {
	ID               uuid.UUID     `db:"id"`
	RequesterID      uuid.UUID     `db:"requester_id"`
	RequesterName    string        `db:"requester_name"`
	RequesterPhone   string        `db:"requester_phone"`
	OriginLatitude   float64       `db:"origin_latitude"`
	OriginLongitude  float64       `db:"origin_longitude"`
	IssueType        string        `db:"issue_type"`
	Description      string        `db:"description"`
	ImageRef         string        `db:"image_ref"`
	SOS              bool          `db:"sos"`
	Status           RequestStatus `db:"status"`
	AssignedWorkerID *uuid.UUID    `db:"assigned_worker_id"`
	OTPCode          *string       `db:"otp_code"`
	AssignedAt       *time.Time    `db:"assigned_at"`
	CreatedAt        time.Time     `db:"created_at"`
	BroadcastAt      *time.Time    `db:"broadcast_at"`
	AcceptedAt       *time.Time    `db:"accepted_at"`
	CompletedAt      *time.Time    `db:"completed_at"`
	CancelledAt      *time.Time    `db:"cancelled_at"`
	UpdatedAt        time.Time     `db:"updated_at"`
}

// ToDTO converts a ServiceRequest to its flattened database form
func (r *ServiceRequest) ToDTO() *ServiceRequestDTO {
	dto := &ServiceRequestDTO{
		ID:              r.ID,
		RequesterID:     r.RequesterID,
		RequesterName:   r.RequesterName,
		RequesterPhone:  r.RequesterPhone,
		OriginLatitude:  r.Origin.Latitude,
		OriginLongitude: r.Origin.Longitude,
		IssueType:       r.IssueType,
		Description:     r.Description,
		ImageRef:        r.ImageRef,
		SOS:             r.SOS,
		Status:          r.Status,
		CreatedAt:       r.CreatedAt,
		BroadcastAt:     r.BroadcastAt,
		AcceptedAt:      r.AcceptedAt,
		CompletedAt:     r.CompletedAt,
		CancelledAt:     r.CancelledAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.Assignment != nil {
		dto.AssignedWorkerID = &r.Assignment.WorkerID
		dto.OTPCode = &r.Assignment.OTPCode
		dto.AssignedAt = &r.Assignment.AssignedAt
	}
	return dto
}

// ToRequest converts a flattened database row back to a ServiceRequest
func (dto *ServiceRequestDTO) ToRequest() *ServiceRequest {
	req := &ServiceRequest{
		ID:             dto.ID,
		RequesterID:    dto.RequesterID,
		RequesterName:  dto.RequesterName,
		RequesterPhone: dto.RequesterPhone,
		Origin: Location{
			Latitude:  dto.OriginLatitude,
			Longitude: dto.OriginLongitude,
			Timestamp: dto.CreatedAt,
		},
		IssueType:   dto.IssueType,
		Description: dto.Description,
		ImageRef:    dto.ImageRef,
		SOS:         dto.SOS,
		Status:      dto.Status,
		CreatedAt:   dto.CreatedAt,
		BroadcastAt: dto.BroadcastAt,
		AcceptedAt:  dto.AcceptedAt,
		CompletedAt: dto.CompletedAt,
		CancelledAt: dto.CancelledAt,
		UpdatedAt:   dto.UpdatedAt,
	}
	if dto.AssignedWorkerID != nil && dto.OTPCode != nil && dto.AssignedAt != nil {
		req.Assignment = &Assignment{
			RequestID:  dto.ID,
			WorkerID:   *dto.AssignedWorkerID,
			OTPCode:    *dto.OTPCode,
			AssignedAt: *dto.AssignedAt,
		}
	}
	return req
}

// NearbyMechanic represents an available mechanic with its current
// location as returned by the geo pool
type NearbyMechanic struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Rating   float64  `json:"rating"`
	Location Location `json:"location"`
}
