package health

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/journeymap/internal/models"
)

func opp(id string, p models.Priority) models.Opportunity {
	return models.Opportunity{ID: id, PhaseID: "ph-1", Name: id, Priority: p}
}

func job(id string) models.Job {
	return models.Job{ID: id, Name: id, Tag: models.JobTagFunctional}
}

func TestPhaseScore(t *testing.T) {
	tests := []struct {
		name  string
		phase models.Phase
		opps  []models.Opportunity
		jobs  []models.Job
		want  int
	}{
		{
			name:  "clean phase with a job",
			phase: models.Phase{ID: "ph-1"},
			jobs:  []models.Job{job("j1")},
			want:  100,
		},
		{
			name:  "no jobs linked",
			phase: models.Phase{ID: "ph-1"},
			want:  80,
		},
		{
			name:  "struggles recorded",
			phase: models.Phase{ID: "ph-1", Struggles: "Too many forms"},
			jobs:  []models.Job{job("j1")},
			want:  80,
		},
		{
			name:  "whitespace struggles ignored",
			phase: models.Phase{ID: "ph-1", Struggles: "  \n", InternalStruggles: "\t"},
			jobs:  []models.Job{job("j1")},
			want:  100,
		},
		{
			name:  "internal struggles recorded",
			phase: models.Phase{ID: "ph-1", InternalStruggles: "Manual hand-off"},
			jobs:  []models.Job{job("j1")},
			want:  90,
		},
		{
			name:  "single high opportunity",
			phase: models.Phase{ID: "ph-1"},
			opps:  []models.Opportunity{opp("o1", models.PriorityHigh)},
			jobs:  []models.Job{job("j1")},
			want:  60,
		},
		{
			name:  "single high opportunity and no jobs",
			phase: models.Phase{ID: "ph-1"},
			opps:  []models.Opportunity{opp("o1", models.PriorityHigh)},
			want:  40,
		},
		{
			name:  "mixed priorities",
			phase: models.Phase{ID: "ph-1"},
			opps: []models.Opportunity{
				opp("o1", models.PriorityHigh),
				opp("o2", models.PriorityMedium),
				opp("o3", models.PriorityLow),
			},
			jobs: []models.Job{job("j1")},
			want: 77,
		},
		{
			name:  "unknown priority counts as low",
			phase: models.Phase{ID: "ph-1"},
			opps:  []models.Opportunity{opp("o1", "")},
			jobs:  []models.Job{job("j1")},
			want:  90,
		},
		{
			name:  "everything wrong",
			phase: models.Phase{ID: "ph-1", Struggles: "a", InternalStruggles: "b"},
			opps:  []models.Opportunity{opp("o1", models.PriorityHigh), opp("o2", models.PriorityHigh)},
			want:  10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PhaseScore(tt.phase, tt.opps, tt.jobs)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestPhaseScore_OrderIndependent(t *testing.T) {
	phase := models.Phase{ID: "ph-1", Struggles: "slow"}
	opps := []models.Opportunity{
		opp("o1", models.PriorityHigh),
		opp("o2", models.PriorityLow),
		opp("o3", models.PriorityMedium),
		opp("o4", models.PriorityLow),
	}
	jobs := []models.Job{job("j1"), job("j2"), job("j3")}

	want := PhaseScore(phase, opps, jobs)

	reversedOpps := make([]models.Opportunity, len(opps))
	for i, o := range opps {
		reversedOpps[len(opps)-1-i] = o
	}
	reversedJobs := []models.Job{jobs[2], jobs[0], jobs[1]}

	assert.Equal(t, want, PhaseScore(phase, reversedOpps, reversedJobs))
	assert.Equal(t, want, PhaseScore(phase, opps, jobs), "repeat call must be stable")
}

func TestPhaseScore_Bounds(t *testing.T) {
	priorities := []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow, ""}
	phases := []models.Phase{
		{ID: "ph-1"},
		{ID: "ph-1", Struggles: "x"},
		{ID: "ph-1", InternalStruggles: "y"},
		{ID: "ph-1", Struggles: "x", InternalStruggles: "y"},
	}

	for _, phase := range phases {
		for n := 0; n < 6; n++ {
			for _, p := range priorities {
				var opps []models.Opportunity
				for i := 0; i < n; i++ {
					opps = append(opps, opp("o", p))
				}
				for _, jobs := range [][]models.Job{nil, {job("j1")}} {
					got := PhaseScore(phase, opps, jobs)
					if got < 0 || got > 100 {
						t.Fatalf("score %d out of bounds for %+v / %d %s opps", got, phase, n, p)
					}
				}
			}
		}
	}
}

func TestExplain(t *testing.T) {
	b := Explain(
		models.Phase{ID: "ph-1", Struggles: "x"},
		[]models.Opportunity{opp("o1", models.PriorityMedium), opp("o2", models.PriorityHigh)},
		nil,
	)

	assert.Equal(t, 20, b.Struggles)
	assert.Equal(t, 0, b.InternalStruggles)
	assert.Equal(t, 20, b.NoJobs)
	assert.Equal(t, 30, b.OpportunityPenalty)
	assert.Equal(t, PriorityMix{High: 1, Medium: 1}, b.Opportunities)
	assert.Equal(t, 30, b.Score)
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		score int
		want  Band
	}{
		{100, BandGood},
		{60, BandGood},
		{59, BandMid},
		{40, BandMid},
		{39, BandBad},
		{0, BandBad},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BandFor(tt.score), "score %d", tt.score)
	}
}
