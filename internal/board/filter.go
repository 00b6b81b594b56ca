package board

import (
	"strings"

	"github.com/fr4nk3nst1ner/offerboard/internal/models"
)

// Matches reports whether o satisfies every active criterion
func Matches(o models.Offer, c models.Criteria) bool {
	if c.Category != "" && o.Category != c.Category {
		return false
	}
	if c.Type != "" && o.Type != c.Type {
		return false
	}
	if q := c.Query(); q != "" && !strings.Contains(o.Haystack(), q) {
		return false
	}
	return true
}

// Filter returns the offers matching c, in source order. The result never
// aliases offers.
func Filter(offers []models.Offer, c models.Criteria) []models.Offer {
	out := make([]models.Offer, 0, len(offers))
	for _, o := range offers {
		if Matches(o, c) {
			out = append(out, o)
		}
	}
	return out
}
