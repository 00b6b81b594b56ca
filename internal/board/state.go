package board

import (
	"github.com/fr4nk3nst1ner/offerboard/internal/models"
)

// State is the board's view state: the current filtered subset and how much
// of it has been revealed.
type State struct {
	Criteria models.Criteria
	Filtered []models.Offer
	Page     int
	PageSize int
}

// Visible returns every offer revealed so far, pages 0..Page
func (s State) Visible() []models.Offer {
	_, end := PageBounds(s.Page, s.PageSize, len(s.Filtered))
	return s.Filtered[:end]
}

// Current returns the offers on the current page only
func (s State) Current() []models.Offer {
	return PageOf(s.Filtered, s.Page, s.PageSize)
}

// HasMore reports whether the load-more control should be shown
func (s State) HasMore() bool {
	return HasMore(s.Page, s.PageSize, len(s.Filtered))
}

func (s State) clone() State {
	s.Filtered = append([]models.Offer(nil), s.Filtered...)
	return s
}
