package models

import "time"

// RequestBroadcastEvent notifies candidate mechanics that a new request
// is open for accept/reject
type RequestBroadcastEvent struct {
	RequestID   string    `json:"request_id"`
	RequesterID string    `json:"requester_id"`
	IssueType   string    `json:"issue_type"`
	Origin      Location  `json:"origin"`
	MechanicIDs []string  `json:"mechanic_ids"`
	Timestamp   time.Time `json:"timestamp"`
}

// RequestStatusEvent announces a lifecycle transition to interested parties
type RequestStatusEvent struct {
	RequestID  string        `json:"request_id"`
	MechanicID string        `json:"mechanic_id,omitempty"`
	WorkerID   string        `json:"worker_id,omitempty"`
	Status     RequestStatus `json:"status"`
	Timestamp  time.Time     `json:"timestamp"`
}

// MechanicPoolEvent carries a mechanic organization's availability and
// location beacon, consumed to keep the geo pool current
type MechanicPoolEvent struct {
	MechanicID string    `json:"mechanic_id"`
	Name       string    `json:"name"`
	Rating     float64   `json:"rating"`
	IssueTypes []string  `json:"issue_types"`
	Location   Location  `json:"location"`
	Available  bool      `json:"available"`
	Timestamp  time.Time `json:"timestamp"`
}

// EmergencyEvent is a fire-and-forget notification to a requester's
// emergency contacts; delivery is handled by an external collaborator
type EmergencyEvent struct {
	RequestID      string    `json:"request_id"`
	RequesterID    string    `json:"requester_id"`
	RequesterName  string    `json:"requester_name"`
	RequesterPhone string    `json:"requester_phone"`
	Origin         Location  `json:"origin"`
	Timestamp      time.Time `json:"timestamp"`
}
