package repositories

import (
	"context"
	"fmt"

	"github.com/blogem/permit-tracker/models"
)

// initialPermits are listed newest first, the order the permit list shows them in
var initialPermits = []models.Permit{
	{
		ID:            "PMT-2024-8921",
		ProjectName:   "Potomac River Bridge Repair",
		Location:      "Arlington, VA",
		Applicant:     "Infrastructure Corp LLC",
		SubmittedDate: "2024-01-24",
		Status:        models.StatusMaestroWorkflow,
		Progress:      35,
		AgencyRouting: []string{"DOT", "EPA", "USACE"},
	},
	{
		ID:            "PMT-2024-8922",
		ProjectName:   "Solar Farm Expansion - Zone B",
		Location:      "Mojave, CA",
		Applicant:     "GreenGrid Energy",
		SubmittedDate: "2024-01-25",
		Status:        models.StatusEPAReview,
		Progress:      60,
		AgencyRouting: []string{"EPA", "BLM"},
	},
	{
		ID:            "PMT-2024-8923",
		ProjectName:   "Coastal Barrier Reinforcement",
		Location:      "Miami, FL",
		Applicant:     "Resilient Shores Inc",
		SubmittedDate: "2024-01-26",
		Status:        models.StatusApproved,
		Progress:      100,
		AgencyRouting: []string{"FEMA", "USACE", "NOAA"},
	},
	{
		ID:            "PMT-2024-8924",
		ProjectName:   "Urban Wetland Restoration",
		Location:      "Seattle, WA",
		Applicant:     "City of Seattle",
		SubmittedDate: "2024-01-27",
		Status:        models.StatusInIntake,
		Progress:      10,
		AgencyRouting: []string{"EPA", "FWS"},
	},
	{
		ID:            "PMT-2024-8925",
		ProjectName:   "High-Speed Rail Connector",
		Location:      "Dallas, TX",
		Applicant:     "Texas Transport Authority",
		SubmittedDate: "2024-01-22",
		Status:        models.StatusFinalSignOff,
		Progress:      90,
		AgencyRouting: []string{"DOT", "FRA"},
	},
}

// SeedPermits inserts the initial permit set into an empty store.
// Returns the number of permits inserted.
func SeedPermits(ctx context.Context, repo PermitRepository) (int, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	// Insert oldest first so the newest-first listing matches initialPermits
	for i := len(initialPermits) - 1; i >= 0; i-- {
		permit := initialPermits[i]
		permit.AgencyRouting = append([]string(nil), permit.AgencyRouting...)
		if err := repo.Create(ctx, &permit); err != nil {
			return 0, fmt.Errorf("failed to seed permit %s: %w", permit.ID, err)
		}
	}

	return len(initialPermits), nil
}
