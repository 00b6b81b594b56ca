package offers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fr4nk3nst1ner/offerboard/internal/models"
)

var (
	sampleCategories = []string{"Technique", "Administratif", "Marketing", "Design", "Support"}
	sampleLocations  = []string{"Marseille", "Télétravail", "Aix-en-Provence", "Hyères", "Nice"}
	sampleTypes      = []string{"Mission Temporaire", "CDI", "CDD", "Stage"}
	sampleSkills     = []string{"JavaScript", "Google Sheets", "No-code", "Gestion", "RH", "UX", "Figma", "Node.js", "SQL", "Communication"}
)

// SampleOffer builds the i-th demo offer. Output depends only on i and now.
func SampleOffer(i int, now time.Time) models.Offer {
	cat := sampleCategories[i%len(sampleCategories)]
	loc := sampleLocations[i%len(sampleLocations)]

	return models.Offer{
		ID:          i,
		Title:       fmt.Sprintf("%s - Projet #%d", cat, i),
		Date:        now.Add(-time.Duration(i) * 24 * time.Hour),
		Description: fmt.Sprintf("Participation au projet %d pour réaliser des tâches liées à %s.", i, strings.ToLower(cat)),
		Skills: []string{
			sampleSkills[i%len(sampleSkills)],
			sampleSkills[(i+3)%len(sampleSkills)],
		},
		Location: loc,
		Type:     sampleTypes[i%len(sampleTypes)],
		Category: cat,
		Remote:   loc == "Télétravail",
	}
}

// GenerateSample returns n demo offers with ids 1..n
func GenerateSample(n int, now time.Time) []models.Offer {
	out := make([]models.Offer, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, SampleOffer(i, now))
	}
	return out
}
