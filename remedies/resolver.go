package remedies

import (
	"strings"

	"github.com/Khatixer/farmguard-ai/models"
)

// Resolve maps a diagnosis to at most one remedy from the catalog. The
// fallback chain is strictly ordered and first match wins; reordering it
// changes user-visible suggestions.
//
//  1. exact match on the normalized remedy id
//  2. fuzzy match: catalog id contained in the hint, or catalog name
//     containing the hint (skipped for an empty hint, which would match
//     every name)
//  3. keyword fallback on the disease text
//  4. first catalog entry, unless the disease is a "healthy"/"none"
//     sentinel
//
// Pure function of (catalog, record); no side effects.
func Resolve(catalog []models.Remedy, record models.DiagnosisRecord) (*models.Remedy, bool) {
	rid := strings.TrimSpace(strings.ToLower(record.RemedyID))
	disease := strings.ToLower(record.Disease)

	for i := range catalog {
		if strings.ToLower(catalog[i].ID) == rid {
			return &catalog[i], true
		}
	}

	if rid != "" {
		for i := range catalog {
			id := strings.ToLower(catalog[i].ID)
			name := strings.ToLower(catalog[i].Name)
			if strings.Contains(rid, id) || strings.Contains(name, rid) {
				return &catalog[i], true
			}
		}
	}

	if slug := keywordSlug(disease); slug != "" {
		for i := range catalog {
			if catalog[i].ID == slug {
				return &catalog[i], true
			}
		}
	}

	if disease != "healthy" && disease != "none" && len(catalog) > 0 {
		return &catalog[0], true
	}
	return nil, false
}

// keywordSlug applies the disease keyword rules; first rule wins.
func keywordSlug(disease string) string {
	switch {
	case strings.Contains(disease, "mildew") || strings.Contains(disease, "blight"):
		return BakingSodaSpray
	case strings.Contains(disease, "pest") || strings.Contains(disease, "rust"):
		return NeemOilMix
	case strings.Contains(disease, "aphid") || strings.Contains(disease, "mite"):
		return GarlicChiliSpray
	}
	return ""
}
