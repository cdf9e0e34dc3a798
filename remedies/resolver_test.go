package remedies

import (
	"testing"

	"github.com/Khatixer/farmguard-ai/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(remedyID, disease string) models.DiagnosisRecord {
	return models.DiagnosisRecord{
		ID:       "rec-1",
		Disease:  disease,
		RemedyID: remedyID,
	}
}

func TestResolveExactMatchIsCaseInsensitive(t *testing.T) {
	remedy, ok := Resolve(Catalog, record("Baking-Soda-Spray", "anything at all"))
	require.True(t, ok)
	assert.Equal(t, BakingSodaSpray, remedy.ID)

	remedy, ok = Resolve(Catalog, record("  NEEM-OIL-MIX  ", "whatever"))
	require.True(t, ok)
	assert.Equal(t, NeemOilMix, remedy.ID)
}

func TestResolveFuzzyMatch(t *testing.T) {
	// catalog id embedded in the hint
	remedy, ok := Resolve(Catalog, record("try the neem-oil-mix remedy", ""))
	require.True(t, ok)
	assert.Equal(t, NeemOilMix, remedy.ID)

	// hint contained in the catalog name
	remedy, ok = Resolve(Catalog, record("garlic", ""))
	require.True(t, ok)
	assert.Equal(t, GarlicChiliSpray, remedy.ID)
}

func TestResolveKeywordFallback(t *testing.T) {
	cases := []struct {
		disease string
		want    string
	}{
		{"Powdery Mildew on leaves", BakingSodaSpray},
		{"Early Blight", BakingSodaSpray},
		{"Leaf rust infestation", NeemOilMix},
		{"Severe pest damage", NeemOilMix},
		{"Aphid colony", GarlicChiliSpray},
		{"Spider mites", GarlicChiliSpray},
	}
	for _, tc := range cases {
		remedy, ok := Resolve(Catalog, record("", tc.disease))
		require.True(t, ok, "disease %q", tc.disease)
		assert.Equal(t, tc.want, remedy.ID, "disease %q", tc.disease)
	}
}

func TestResolveEmptyHintDoesNotFuzzyMatch(t *testing.T) {
	// An empty hint must fall through to the keyword rules, not match the
	// first remedy whose name "contains" the empty string.
	remedy, ok := Resolve(Catalog, record("", "spider mite outbreak"))
	require.True(t, ok)
	assert.Equal(t, GarlicChiliSpray, remedy.ID)
}

func TestResolveHealthySentinelSuppressesDefault(t *testing.T) {
	_, ok := Resolve(Catalog, record("xyz", "Healthy"))
	assert.False(t, ok)

	_, ok = Resolve(Catalog, record("", "None"))
	assert.False(t, ok)
}

func TestResolveGenericDefaultForUnmatchedDisease(t *testing.T) {
	remedy, ok := Resolve(Catalog, record("xyz", "Leaf spot"))
	require.True(t, ok)
	assert.Equal(t, Catalog[0].ID, remedy.ID)
}

func TestResolveNeverLeavesTheCatalog(t *testing.T) {
	inputs := []models.DiagnosisRecord{
		record("baking-soda-spray", "Blight"),
		record("something-unknown", "mildew"),
		record("", "rust"),
		record("xyz", "Leaf spot"),
		record("", "Healthy"),
	}
	for _, in := range inputs {
		remedy, ok := Resolve(Catalog, in)
		if !ok {
			continue
		}
		found := false
		for i := range Catalog {
			if Catalog[i].ID == remedy.ID {
				found = true
			}
		}
		assert.True(t, found, "remedy %q not in catalog", remedy.ID)
	}
}

func TestResolveWithSmallCatalog(t *testing.T) {
	small := []models.Remedy{{ID: "neem-oil-mix", Name: "Organic Neem Oil Solution"}}

	// keyword rule points at a slug the catalog lacks; the generic default
	// still applies for a non-sentinel disease
	remedy, ok := Resolve(small, record("", "powdery mildew"))
	require.True(t, ok)
	assert.Equal(t, "neem-oil-mix", remedy.ID)

	// sentinel still suppresses the default
	_, ok = Resolve(small, record("xyz", "Healthy"))
	assert.False(t, ok)
}

func TestResolveEmptyCatalog(t *testing.T) {
	_, ok := Resolve(nil, record("baking-soda-spray", "Blight"))
	assert.False(t, ok)
}
