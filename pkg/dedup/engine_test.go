package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellyes/catalog-csv-filtering/pkg/models"
)

func TestAdmitExactDuplicate(t *testing.T) {
	engine := NewEngine()

	first := &models.CanonicalRecord{ExternalID: "p-1", Name: "Old Name"}
	second := &models.CanonicalRecord{ExternalID: "p-2", Name: "Other"}
	replacement := &models.CanonicalRecord{ExternalID: "p-1", Name: "New Name", Size: "1 g"}

	out := engine.Admit(first, 2)
	assert.Equal(t, 0, out.Position)
	assert.Empty(t, out.Reason)

	engine.Admit(second, 3)

	out = engine.Admit(replacement, 4)
	assert.Equal(t, 0, out.Position)
	assert.Equal(t, models.RejectReasonDuplicateExternalID, out.Reason)
	require.NotNil(t, out.Replaced)
	assert.Equal(t, "Old Name", out.Replaced.Name)
	assert.Equal(t, 2, out.ReplacedRow)

	// Replacement keeps the first occurrence's position with the last
	// occurrence's content
	records := engine.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "New Name", records[0].Name)
	assert.Equal(t, "Other", records[1].Name)
}

func TestAdmitFuzzyDuplicate(t *testing.T) {
	engine := NewEngine()

	first := &models.CanonicalRecord{Name: "Blue Dream", Size: "3.5 g", StrainPrevalence: "Hybrid"}
	replacement := &models.CanonicalRecord{Name: "  blue dream ", Size: "3.5 G", StrainPrevalence: "hybrid", Brand: "Acme"}

	engine.Admit(first, 2)
	out := engine.Admit(replacement, 3)

	assert.Equal(t, 0, out.Position)
	assert.Equal(t, models.RejectReasonLikelyDuplicate, out.Reason)
	assert.Equal(t, 2, out.ReplacedRow)
	require.Equal(t, 1, engine.Len())
	assert.Equal(t, "Acme", engine.Records()[0].Brand)
}

func TestAdmitFuzzyRequiresNameMatch(t *testing.T) {
	engine := NewEngine()

	engine.Admit(&models.CanonicalRecord{Name: "Blue Dream", Size: "3.5 g"}, 2)
	out := engine.Admit(&models.CanonicalRecord{Name: "Blue Dream", Size: "7 g"}, 3)

	assert.Empty(t, out.Reason)
	assert.Equal(t, 2, engine.Len())
}

func TestAdmitExternalIDWinsOverFuzzy(t *testing.T) {
	engine := NewEngine()

	engine.Admit(&models.CanonicalRecord{ExternalID: "p-1", Name: "Blue Dream", Size: "3.5 g"}, 2)
	out := engine.Admit(&models.CanonicalRecord{ExternalID: "p-1", Name: "Renamed Entirely"}, 3)

	assert.Equal(t, models.RejectReasonDuplicateExternalID, out.Reason)
}

func TestAdmitEmptyExternalIDNeverMatches(t *testing.T) {
	engine := NewEngine()

	engine.Admit(&models.CanonicalRecord{Name: "First"}, 2)
	out := engine.Admit(&models.CanonicalRecord{Name: "Second"}, 3)

	assert.Empty(t, out.Reason)
	assert.Equal(t, 2, engine.Len())
}

func TestAdmitEmptyNameNeverFuzzyIndexed(t *testing.T) {
	engine := NewEngine()

	engine.Admit(&models.CanonicalRecord{ExternalID: "p-1", Size: "3.5 g"}, 2)
	out := engine.Admit(&models.CanonicalRecord{ExternalID: "p-2", Size: "3.5 g"}, 3)

	assert.Empty(t, out.Reason)
	assert.Equal(t, 2, engine.Len())
}

func TestReplacementDoesNotReindex(t *testing.T) {
	engine := NewEngine()

	engine.Admit(&models.CanonicalRecord{ExternalID: "p-1", Name: "Blue Dream", Size: "3.5 g"}, 2)
	// Replacement carries a different fuzzy identity
	engine.Admit(&models.CanonicalRecord{ExternalID: "p-1", Name: "Green Crack", Size: "1 g"}, 3)

	// The slot keeps its original keys: the replacement's new fuzzy identity
	// was never indexed, so a third record with that identity is new
	out := engine.Admit(&models.CanonicalRecord{Name: "Green Crack", Size: "1 g"}, 4)
	assert.Empty(t, out.Reason)
	assert.Equal(t, 2, engine.Len())
}
