package health

import "time"

type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
)

// ServiceID identifies this service in health responses.
const ServiceID = "formvalidator"

// Checker names registered by the server. They double as componentId values.
const (
	RulesComponent    = "signup_rules"
	StorageComponent  = "storage"
	DatabaseComponent = "postgres"
	UpstreamComponent = "upstream"
)

type LivenessResponse struct {
	Status        Status    `json:"status"`
	ServiceId     string    `json:"serviceId"`
	Version       string    `json:"version,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	Uptime        string    `json:"uptime"`
	UptimeSeconds int64     `json:"uptimeSeconds"`
}

type ReadinessResponse struct {
	Status    Status                   `json:"status"`
	ServiceId string                   `json:"serviceId"`
	Version   string                   `json:"version"`
	ReleaseId string                   `json:"releaseId,omitempty"`
	Notes     []string                 `json:"notes,omitempty"`
	Output    string                   `json:"output,omitempty"`
	Checks    map[string][]CheckDetail `json:"checks,omitempty"`
}

type CheckDetail struct {
	ComponentId   string    `json:"componentId,omitempty"`
	ComponentType string    `json:"componentType,omitempty"`
	Status        Status    `json:"status"`
	Time          time.Time `json:"time"`
	ObservedValue int64     `json:"observedValue"`
	ObservedUnit  string    `json:"observedUnit,omitempty"`
	Output        string    `json:"output,omitempty"`
}
