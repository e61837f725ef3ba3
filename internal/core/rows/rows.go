// Package rows resolves the ordered row layout of a journey map.
// Resolution is pure: the same journey always yields the same descriptors.
package rows

import (
	"strings"
	"unicode"

	"github.com/example/journeymap/internal/models"
)

// RowKey identifies a built-in row.
type RowKey string

const (
	KeyCustomerJobs      RowKey = "customerJobs"
	KeyStruggles         RowKey = "struggles"
	KeyInternalStruggles RowKey = "internalStruggles"
	KeyFrontStageActions RowKey = "frontStageActions"
	KeyBackStageActions  RowKey = "backStageActions"
	KeySystems           RowKey = "systems"
	KeyRelatedProcesses  RowKey = "relatedProcesses"
	KeyChannels          RowKey = "channels"
	KeyRelatedDocuments  RowKey = "relatedDocuments"
	KeyOpportunities     RowKey = "opportunities"
	KeyPhaseHealth       RowKey = "phaseHealth"
)

// DefaultCustomLabel is used when a custom row id has no label.
const DefaultCustomLabel = "Row"

var canonical = []RowKey{
	KeyCustomerJobs,
	KeyStruggles,
	KeyInternalStruggles,
	KeyFrontStageActions,
	KeyBackStageActions,
	KeySystems,
	KeyRelatedProcesses,
	KeyChannels,
	KeyRelatedDocuments,
	KeyOpportunities,
	KeyPhaseHealth,
}

// Descriptor is one resolved row. For built-in rows Key equals ID.
type Descriptor struct {
	ID       string
	Key      RowKey
	Label    string
	IsCustom bool
}

// Canonical returns the built-in rows in their fixed order.
func Canonical() []RowKey {
	out := make([]RowKey, len(canonical))
	copy(out, canonical)
	return out
}

// IsBuiltIn reports whether id names a built-in row.
func IsBuiltIn(id string) bool {
	for _, k := range canonical {
		if string(k) == id {
			return true
		}
	}
	return false
}

// TitleFromKey turns a camel-case key into a label: "frontStageActions" -> "Front Stage Actions".
func TitleFromKey(key string) string {
	if key == "" {
		return ""
	}
	var b strings.Builder
	for i, r := range key {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ResolveRowOrder returns the rows to display for a journey.
//
// The stored RowOrder is filtered down to known ids (built-in keys and the journey's
// custom rows), duplicates are dropped, and any built-in row the order lost is appended
// in canonical order. A nil journey, or one without a stored order, gets the canonical list.
func ResolveRowOrder(journey *models.Journey) []Descriptor {
	if journey == nil {
		return builtIns(canonical)
	}

	candidate := journey.RowOrder
	if candidate == nil {
		candidate = keysToIDs(canonical)
	}

	custom := make(map[string]string, len(journey.CustomRows))
	for _, r := range journey.CustomRows {
		custom[r.ID] = r.Label
	}

	seen := make(map[string]bool, len(candidate))
	out := make([]Descriptor, 0, len(candidate)+len(canonical))
	for _, id := range candidate {
		if seen[id] {
			continue
		}
		if IsBuiltIn(id) {
			seen[id] = true
			out = append(out, builtIn(RowKey(id)))
			continue
		}
		label, ok := custom[id]
		if !ok {
			continue
		}
		seen[id] = true
		if strings.TrimSpace(label) == "" {
			label = DefaultCustomLabel
		}
		out = append(out, Descriptor{ID: id, Key: RowKey(id), Label: label, IsCustom: true})
	}

	for _, k := range canonical {
		if !seen[string(k)] {
			out = append(out, builtIn(k))
		}
	}
	return out
}

func builtIn(k RowKey) Descriptor {
	return Descriptor{ID: string(k), Key: k, Label: TitleFromKey(string(k))}
}

func builtIns(keys []RowKey) []Descriptor {
	out := make([]Descriptor, len(keys))
	for i, k := range keys {
		out[i] = builtIn(k)
	}
	return out
}

func keysToIDs(keys []RowKey) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}
