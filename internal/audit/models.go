package audit

import "time"

// Event records one state change made by an operator.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Subject   string    `json:"subject"`
	Action    string    `json:"action"`
	Resource  string    `json:"resource"`
	RequestID string    `json:"request_id,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}

// Actions emitted by the registry services.
const (
	ActionDirectorRegistered    = "director.registered"
	ActionDirectorStatusChanged = "director.status_changed"
	ActionDirectorDisqualified  = "director.disqualified"
	ActionResolutionFiled       = "resolution.filed"
	ActionEvidenceRecorded      = "evidence.recorded"
)
