package app

import (
	"time"

	"github.com/google/uuid"

	"github.com/example/journeymap/internal/models"
)

// NewID returns a fresh entity id.
func NewID() string {
	return uuid.NewString()
}

// DemoState builds a small workspace: one client, two projects, three journeys.
// newID is called for every entity so tests can supply deterministic ids.
func DemoState(newID func() string, now time.Time) *models.AppState {
	s := &models.AppState{}

	client := models.Client{
		ID:          newID(),
		Name:        "Northwind Bank",
		Description: "Retail bank modernising its account journeys",
		Website:     "https://northwind.example",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.Clients = append(s.Clients, client)

	high, medium := models.PriorityHigh, models.PriorityMedium
	jobs := []models.Job{
		{Name: "Open an account without visiting a branch", Tag: models.JobTagFunctional, Priority: &high},
		{Name: "Feel confident my money is safe", Tag: models.JobTagEmotional, Priority: &medium},
		{Name: "Look financially organised to my partner", Tag: models.JobTagSocial},
	}
	for i := range jobs {
		jobs[i].ID = newID()
		jobs[i].ClientID = client.ID
		jobs[i].CreatedAt = now
		jobs[i].UpdatedAt = now
	}
	s.Jobs = jobs

	first, second := 0, 1
	s.Insights = []models.Insight{
		{ID: newID(), ClientID: client.ID, Title: "Identity checks stall on mobile", Priority: models.PriorityHigh, Order: &first},
		{ID: newID(), ClientID: client.ID, Title: "Customers compare fees before switching", Priority: models.PriorityLow, Order: &second},
	}

	onboarding := models.Project{ID: newID(), ClientID: client.ID, Name: "Onboarding", CreatedAt: now, UpdatedAt: now}
	servicing := models.Project{ID: newID(), ClientID: client.ID, Name: "Servicing", CreatedAt: now, UpdatedAt: now}
	s.Projects = append(s.Projects, onboarding, servicing)

	noteRow := newID()
	opening := models.Journey{
		ID:         newID(),
		ProjectID:  onboarding.ID,
		Name:       "Account opening",
		CustomRows: []models.CustomRow{{ID: noteRow, Label: "Research notes"}},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	switching := models.Journey{ID: newID(), ProjectID: onboarding.ID, Name: "Switching banks", CreatedAt: now, UpdatedAt: now}
	support := models.Journey{
		ID:        newID(),
		ProjectID: servicing.ID,
		Name:      "Card replacement",
		RowOrder:  []string{"customerJobs", "struggles", "channels", "opportunities", "phaseHealth"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	opening.RowOrder = []string{
		"customerJobs", "struggles", "internalStruggles", noteRow, "frontStageActions",
		"backStageActions", "systems", "relatedProcesses", "channels", "relatedDocuments",
		"opportunities", "phaseHealth",
	}
	s.Journeys = append(s.Journeys, opening, switching, support)

	phase := func(j models.Journey, order int, title string) models.Phase {
		return models.Phase{ID: newID(), JourneyID: j.ID, Order: order, Title: title, CreatedAt: now, UpdatedAt: now}
	}

	discover := phase(opening, 0, "Discover")
	discover.FrontStageActions = "Compares offers online\nReads reviews"
	discover.Channels = []string{"Web", "Social"}
	discover.JobIDs = []string{jobs[0].ID}

	apply := phase(opening, 1, "Apply")
	apply.Struggles = "Uploading ID documents fails, \"try again\" loops"
	apply.InternalStruggles = "Manual review backlog"
	apply.Systems = []string{"Core banking", "KYC provider"}
	apply.Channels = []string{"Mobile app"}
	apply.JobIDs = []string{jobs[0].ID, jobs[1].ID}
	apply.CustomRowValues = map[string]string{noteRow: "  Five of eight participants abandoned here  "}

	activate := phase(opening, 2, "Activate")
	activate.RelatedDocuments = "Welcome pack v3"

	compare := phase(switching, 0, "Compare")
	compare.Struggles = "Hidden fees"
	compare.JobIDs = []string{jobs[2].ID}

	report := phase(support, 0, "Report lost card")
	report.Channels = []string{"Phone", "Mobile app"}
	report.JobIDs = []string{jobs[1].ID}

	receive := phase(support, 1, "Receive new card")
	receive.Struggles = "No delivery tracking"

	s.Phases = append(s.Phases, discover, apply, activate, compare, report, receive)

	opportunity := func(p models.Phase, project models.Project, name string, prio models.Priority, stage models.Stage) models.Opportunity {
		return models.Opportunity{
			ID:         newID(),
			ClientID:   client.ID,
			ProjectID:  project.ID,
			JourneyID:  p.JourneyID,
			PhaseID:    p.ID,
			Stage:      stage,
			StageOrder: models.StageOrder(stage),
			Name:       name,
			Priority:   prio,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	}
	s.Opportunities = []models.Opportunity{
		opportunity(apply, onboarding, "In-app document capture", models.PriorityHigh, models.StageHorizon1),
		opportunity(apply, onboarding, "Status page for pending reviews", models.PriorityMedium, models.StageBacklog),
		opportunity(discover, onboarding, "Fee calculator", models.PriorityLow, models.StageInDiscovery),
		opportunity(receive, servicing, "Courier tracking link", models.PriorityHigh, models.StageHorizon2),
	}

	s.CellComments = []models.CellComment{
		{ID: newID(), PhaseID: apply.ID, RowID: "struggles", Author: "research", Body: "Seen in 5/8 sessions", CreatedAt: now},
	}
	return s
}
