package models

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// PermitStatus is the review stage a permit is currently in
type PermitStatus string

const (
	StatusInIntake        PermitStatus = "In Intake"
	StatusMaestroWorkflow PermitStatus = "Maestro Workflow"
	StatusEPAReview       PermitStatus = "EPA Review"
	StatusFinalSignOff    PermitStatus = "Final Sign-off"
	StatusApproved        PermitStatus = "Approved"
	StatusArchived        PermitStatus = "Archived"
)

// Defaults applied to a submission that omits status or progress
const (
	DefaultPermitStatus   = StatusMaestroWorkflow
	DefaultPermitProgress = 15
)

// DemoProjectName is the title used by the intake demo. Resetting the demo
// removes every permit carrying exactly this project name.
const DemoProjectName = "The San Antonio Connectivity Hub & Green Energy Grid"

// PermitStatuses lists every valid status in workflow order
var PermitStatuses = []PermitStatus{
	StatusInIntake,
	StatusMaestroWorkflow,
	StatusEPAReview,
	StatusFinalSignOff,
	StatusApproved,
	StatusArchived,
}

// Permit represents a permit application routed through interagency review
type Permit struct {
	ID            string       `json:"id" db:"id"`
	ProjectName   string       `json:"project_name" db:"project_name"`
	Location      string       `json:"location" db:"location"`
	Applicant     string       `json:"applicant" db:"applicant"`
	SubmittedDate string       `json:"submitted_date" db:"submitted_date"`
	Status        PermitStatus `json:"status" db:"status"`
	Progress      int          `json:"progress" db:"progress"`
	AgencyRouting []string     `json:"agency_routing" db:"agency_routing"`
}

// PermitForm represents the request body for submitting a new permit
type PermitForm struct {
	ProjectName   string       `json:"project_name"`
	Location      string       `json:"location"`
	Applicant     string       `json:"applicant"`
	Status        PermitStatus `json:"status,omitempty"`
	Progress      *int         `json:"progress,omitempty"`
	AgencyRouting []string     `json:"agency_routing"`

	// explicit holds optional fields as the body sent them, null included
	explicit map[string]interface{}
}

// optionalFormFields are defaulted only when absent from the body
var optionalFormFields = []string{"status", "progress"}

// UnmarshalJSON decodes the form and remembers which optional fields the
// body set, so an empty or null value is validated instead of defaulted.
func (f *PermitForm) UnmarshalJSON(data []byte) error {
	type plain PermitForm
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*f = PermitForm(p)
	f.explicit = nil
	for _, name := range optionalFormFields {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		var value interface{}
		if err := json.Unmarshal(raw, &value); err != nil {
			return err
		}
		if f.explicit == nil {
			f.explicit = make(map[string]interface{}, len(optionalFormFields))
		}
		f.explicit[name] = value
	}
	return nil
}

const permitFormSchema = `{
	"type": "object",
	"required": ["project_name", "location", "applicant", "agency_routing"],
	"properties": {
		"project_name": {"type": "string", "minLength": 1, "pattern": "\\S"},
		"location": {"type": "string", "minLength": 1, "pattern": "\\S"},
		"applicant": {"type": "string", "minLength": 1, "pattern": "\\S"},
		"status": {
			"type": "string",
			"enum": ["In Intake", "Maestro Workflow", "EPA Review", "Final Sign-off", "Approved", "Archived"]
		},
		"progress": {"type": "integer", "minimum": 0, "maximum": 100},
		"agency_routing": {
			"type": "array",
			"minItems": 1,
			"items": {"type": "string"}
		}
	}
}`

var permitFormSchemaLoader = gojsonschema.NewStringLoader(permitFormSchema)

// Validate checks the form against the permit creation schema
func (f *PermitForm) Validate() ValidationErrors {
	// Optional fields are left out of the document when not supplied so the
	// schema reports them as missing rather than as the wrong type.
	doc := map[string]interface{}{
		"project_name": f.ProjectName,
		"location":     f.Location,
		"applicant":    f.Applicant,
	}
	if f.Status != "" {
		doc["status"] = string(f.Status)
	}
	if f.Progress != nil {
		doc["progress"] = *f.Progress
	}
	for name, value := range f.explicit {
		doc[name] = value
	}
	if f.AgencyRouting != nil {
		agencies := make([]interface{}, len(f.AgencyRouting))
		for i, agency := range f.AgencyRouting {
			agencies[i] = agency
		}
		doc["agency_routing"] = agencies
	}

	result, err := gojsonschema.Validate(permitFormSchemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return ValidationErrors{{Field: "(root)", Message: fmt.Sprintf("schema validation failed: %v", err)}}
	}

	var errs ValidationErrors
	for _, re := range result.Errors() {
		field := re.Field()
		if re.Type() == "required" {
			if property, ok := re.Details()["property"].(string); ok {
				field = property
			}
		}
		errs = append(errs, ValidationError{Field: field, Message: re.Description()})
	}
	return errs
}

// ApplyDefaults fills in the optional fields the caller left out
func (f *PermitForm) ApplyDefaults() {
	if f.Status == "" {
		f.Status = DefaultPermitStatus
	}
	if f.Progress == nil {
		progress := DefaultPermitProgress
		f.Progress = &progress
	}
}

// ToPermit builds an unsaved permit from a validated form
func (f *PermitForm) ToPermit() *Permit {
	f.ApplyDefaults()

	agencies := make([]string, len(f.AgencyRouting))
	copy(agencies, f.AgencyRouting)

	return &Permit{
		ProjectName:   f.ProjectName,
		Location:      f.Location,
		Applicant:     f.Applicant,
		Status:        f.Status,
		Progress:      *f.Progress,
		AgencyRouting: agencies,
	}
}

// MaestroSummary tells the caller what happened to the workflow trigger
type MaestroSummary struct {
	Triggered      bool   `json:"triggered"`
	InstanceID     string `json:"instanceId"`
	SimulationMode bool   `json:"simulationMode"`
}

// SubmissionResult is the stored permit plus the workflow trigger summary
type SubmissionResult struct {
	*Permit
	Maestro MaestroSummary `json:"maestro"`
}
