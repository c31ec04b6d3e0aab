package workflow

// SubmitterRole is the participant role the Maestro workflow definition expects
const SubmitterRole = "Submitter Email"

// Participant identifies a person taking part in a workflow instance
type Participant struct {
	Email string `json:"email"`
}

// Variables are the workflow input variables derived from a permit
type Variables struct {
	OriginatingApplicant  string   `json:"originating_applicant"`
	ProjectName           string   `json:"project_name"`
	ParticipatingAgencies []string `json:"participating_agencies"`
}

// Payload is the body sent to the workflow trigger endpoint
type Payload struct {
	InstanceName string                 `json:"instance_name"`
	Participants map[string]Participant `json:"participants"`
	Payload      Variables              `json:"payload"`
}

// TriggerRequest carries the permit data a workflow instance is started with
type TriggerRequest struct {
	ProjectName    string
	Applicant      string
	Agencies       []string
	SubmitterEmail string
}

func buildPayload(instanceName string, req TriggerRequest) Payload {
	agencies := make([]string, len(req.Agencies))
	copy(agencies, req.Agencies)

	return Payload{
		InstanceName: instanceName,
		Participants: map[string]Participant{
			SubmitterRole: {Email: req.SubmitterEmail},
		},
		Payload: Variables{
			OriginatingApplicant:  req.Applicant,
			ProjectName:           req.ProjectName,
			ParticipatingAgencies: agencies,
		},
	}
}
