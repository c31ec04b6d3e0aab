package models

import (
	"encoding/json"
	"time"
)

// Descriptors recorded for every workflow trigger attempt
const (
	WorkflowLogEndpoint = "DocuSign Maestro Trigger"
	WorkflowLogMethod   = "POST"
)

// APILogEntry records a single attempt to trigger the external workflow
type APILogEntry struct {
	ID             string          `json:"id"`
	Timestamp      time.Time       `json:"timestamp"`
	PermitID       string          `json:"permitId"`
	ProjectName    string          `json:"projectName"`
	Endpoint       string          `json:"endpoint"`
	Method         string          `json:"method"`
	RequestPayload json.RawMessage `json:"requestPayload"`
	ResponseStatus *int            `json:"responseStatus"`
	ResponseBody   json.RawMessage `json:"responseBody"`
	Success        bool            `json:"success"`
	SimulationMode bool            `json:"simulationMode"`
}
