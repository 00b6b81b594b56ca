package board

import (
	"github.com/fr4nk3nst1ner/offerboard/internal/models"
	"github.com/fr4nk3nst1ner/offerboard/internal/utils"
)

// FilterOptions lists the values offered by the category and type selects
type FilterOptions struct {
	Categories []string
	Types      []string
}

// CollectOptions derives the distinct non-empty categories and types, sorted
func CollectOptions(offers []models.Offer) FilterOptions {
	cats := make([]string, 0, len(offers))
	types := make([]string, 0, len(offers))
	for _, o := range offers {
		cats = append(cats, o.Category)
		types = append(types, o.Type)
	}
	return FilterOptions{
		Categories: utils.SortedUniq(cats),
		Types:      utils.SortedUniq(types),
	}
}
