package remedies

import "github.com/Khatixer/farmguard-ai/models"

// Slugs referenced by the disease keyword fallback.
const (
	BakingSodaSpray  = "baking-soda-spray"
	NeemOilMix       = "neem-oil-mix"
	GarlicChiliSpray = "garlic-chili-spray"
)

// Catalog is the fixed set of organic remedy recipes, loaded once at
// startup. Nothing may assume its current size.
var Catalog = []models.Remedy{
	{
		ID:          BakingSodaSpray,
		Name:        "Baking Soda Antifungal Spray",
		Description: "An effective, non-toxic remedy for powdery mildew and early blight.",
		Ingredients: []string{
			"1 tablespoon baking soda",
			"1/2 teaspoon liquid soap (non-detergent)",
			"1 gallon of water",
		},
		Steps: []string{
			"Mix baking soda and liquid soap into the water.",
			"Pour the mixture into a clean spray bottle.",
			"Spray affected leaves thoroughly in the early morning or late evening.",
			"Repeat every 7-10 days until resolved.",
		},
		TargetDisease: "Powdery Mildew / Blight",
	},
	{
		ID:          NeemOilMix,
		Name:        "Organic Neem Oil Solution",
		Description: "Natural insecticide and fungicide suitable for almost all garden pests.",
		Ingredients: []string{
			"2 teaspoons pure neem oil",
			"1 teaspoon mild dish soap",
			"1 liter of warm water",
		},
		Steps: []string{
			"Add dish soap to warm water to act as an emulsifier.",
			"Slowly add neem oil and shake well.",
			"Apply to all plant surfaces including the undersides of leaves.",
			"Avoid application during direct sunlight to prevent leaf burn.",
		},
		TargetDisease: "Pests / Rust / Mildew",
	},
	{
		ID:          GarlicChiliSpray,
		Name:        "Garlic & Chili Pest Repellent",
		Description: "Strong repellent for aphids, mites, and caterpillars.",
		Ingredients: []string{
			"2 heads of garlic",
			"2 teaspoons hot pepper powder (or fresh chilis)",
			"1 liter of water",
			"1 teaspoon dish soap",
		},
		Steps: []string{
			"Blend garlic and chilis with a small amount of water.",
			"Let sit overnight, then strain through cheesecloth.",
			"Mix with the rest of the water and soap.",
			"Spray on affected areas twice a week.",
		},
		TargetDisease: "Aphids / Mites",
	},
}
