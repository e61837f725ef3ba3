package rows

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/journeymap/internal/models"
)

func ids(ds []Descriptor) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.ID
	}
	return out
}

func TestTitleFromKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"frontStageActions", "Front Stage Actions"},
		{"struggles", "Struggles"},
		{"customerJobs", "Customer Jobs"},
		{"phaseHealth", "Phase Health"},
		{"a", "A"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleFromKey(tt.key))
		})
	}
}

func TestResolveRowOrder_NilJourney(t *testing.T) {
	got := ResolveRowOrder(nil)

	require.Len(t, got, len(Canonical()))
	for i, k := range Canonical() {
		assert.Equal(t, string(k), got[i].ID)
		assert.Equal(t, k, got[i].Key)
		assert.False(t, got[i].IsCustom)
	}
	assert.Equal(t, "Front Stage Actions", got[3].Label)
}

func TestResolveRowOrder_NoStoredOrder(t *testing.T) {
	journey := &models.Journey{
		ID:         "jr-1",
		CustomRows: []models.CustomRow{{ID: "c1", Label: "Emotions"}},
	}

	got := ResolveRowOrder(journey)

	// Custom rows only appear when a stored order places them.
	assert.Equal(t, ids(ResolveRowOrder(nil)), ids(got))
}

func TestResolveRowOrder_FiltersGarbageAndAppendsMissing(t *testing.T) {
	journey := &models.Journey{
		RowOrder: []string{
			"phaseHealth", "bogus", "c1", "struggles", "removed-custom", "c2", "struggles",
		},
		CustomRows: []models.CustomRow{
			{ID: "c1", Label: "Emotions"},
			{ID: "c2", Label: "  "},
		},
	}

	got := ResolveRowOrder(journey)

	want := []Descriptor{
		{ID: "phaseHealth", Key: KeyPhaseHealth, Label: "Phase Health"},
		{ID: "c1", Key: "c1", Label: "Emotions", IsCustom: true},
		{ID: "struggles", Key: KeyStruggles, Label: "Struggles"},
		{ID: "c2", Key: "c2", Label: DefaultCustomLabel, IsCustom: true},
		{ID: "customerJobs", Key: KeyCustomerJobs, Label: "Customer Jobs"},
		{ID: "internalStruggles", Key: KeyInternalStruggles, Label: "Internal Struggles"},
		{ID: "frontStageActions", Key: KeyFrontStageActions, Label: "Front Stage Actions"},
		{ID: "backStageActions", Key: KeyBackStageActions, Label: "Back Stage Actions"},
		{ID: "systems", Key: KeySystems, Label: "Systems"},
		{ID: "relatedProcesses", Key: KeyRelatedProcesses, Label: "Related Processes"},
		{ID: "channels", Key: KeyChannels, Label: "Channels"},
		{ID: "relatedDocuments", Key: KeyRelatedDocuments, Label: "Related Documents"},
		{ID: "opportunities", Key: KeyOpportunities, Label: "Opportunities"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ResolveRowOrder mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveRowOrder_EmptyStoredOrder(t *testing.T) {
	got := ResolveRowOrder(&models.Journey{RowOrder: []string{}})

	assert.Equal(t, ids(ResolveRowOrder(nil)), ids(got))
}

func TestResolveRowOrder_PermutationWithGarbage(t *testing.T) {
	perm := []string{"channels", "systems", "opportunities", "customerJobs"}
	withGarbage := []string{"x", "channels", "y", "systems", "", "opportunities", "z", "customerJobs", "c9"}

	got := ResolveRowOrder(&models.Journey{RowOrder: withGarbage})
	gotIDs := ids(got)

	require.Len(t, gotIDs, len(Canonical()))
	assert.Equal(t, perm, gotIDs[:len(perm)])

	seen := map[string]bool{}
	for _, id := range gotIDs {
		assert.True(t, IsBuiltIn(id), "unexpected id %q", id)
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestCanonicalIsACopy(t *testing.T) {
	c := Canonical()
	c[0] = "mutated"

	assert.Equal(t, KeyCustomerJobs, Canonical()[0])
}
