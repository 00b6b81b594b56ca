// Package board implements the offer list: filtering, pagination, option
// population and the controller that binds them to a document.
package board

import (
	"fmt"
	"html/template"
	"sync"
	"time"

	"github.com/fr4nk3nst1ner/offerboard/internal/logging"
	"github.com/fr4nk3nst1ner/offerboard/internal/models"
	"github.com/fr4nk3nst1ner/offerboard/internal/render"
)

const (
	DefaultPageSize = 100
	DefaultDebounce = 250 * time.Millisecond
)

// Document is the page the controller renders into. Elements are addressed by id.
type Document interface {
	Has(id string) bool
	Clear(id string) error
	Append(id string, fragment template.HTML) error
	SetVisible(id string, visible bool) error
	SetValue(id, value string) error
}

// Elements names the ids of the controls the board drives
type Elements struct {
	Grid           string
	Search         string
	CategoryFilter string
	TypeFilter     string
	LoadMore       string
	ClearFilters   string
}

// DefaultElements matches the ids of render.Page
func DefaultElements() Elements {
	return Elements{
		Grid:           "offersGrid",
		Search:         "searchInput",
		CategoryFilter: "categoryFilter",
		TypeFilter:     "typeFilter",
		LoadMore:       "loadMore",
		ClearFilters:   "clearFilters",
	}
}

func (e Elements) ids() []string {
	return []string{e.Grid, e.Search, e.CategoryFilter, e.TypeFilter, e.LoadMore, e.ClearFilters}
}

// Options configures a Controller. Zero fields take defaults.
type Options struct {
	PageSize int
	Debounce time.Duration
	Elements Elements
	Logger   *logging.Logger
}

// Controller owns the board state and is the only writer of the document.
// Its methods are safe to call from any goroutine; debounced searches run on
// a timer goroutine and are serialised with everything else.
type Controller struct {
	mu       sync.Mutex
	doc      Document
	ids      Elements
	offers   []models.Offer
	options  FilterOptions
	state    State
	input    models.Criteria // what the inputs hold; state.Criteria is what was applied
	debounce *Debouncer
	log      *logging.Logger
}

// New binds offers to doc, fills the filter selects and renders the first page
func New(doc Document, offers []models.Offer, opts Options) (*Controller, error) {
	if opts.PageSize < 1 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Elements == (Elements{}) {
		opts.Elements = DefaultElements()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}

	for _, id := range opts.Elements.ids() {
		if !doc.Has(id) {
			return nil, fmt.Errorf("document has no #%s element", id)
		}
	}

	c := &Controller{
		doc:      doc,
		ids:      opts.Elements,
		offers:   append([]models.Offer(nil), offers...),
		state:    State{PageSize: opts.PageSize},
		debounce: NewDebouncer(opts.Debounce),
		log:      opts.Logger.With("component", "board"),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.populateOptions(); err != nil {
		return nil, err
	}
	if err := c.applyFilters(); err != nil {
		return nil, err
	}
	return c, nil
}

// ApplyFilters recomputes the filtered list from the current criteria and
// re-renders from the first page
func (c *Controller) ApplyFilters() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applyFilters()
}

// SetSearch records new search text and schedules a re-filter once typing pauses.
// Until the re-filter runs, Snapshot still reports the previously applied criteria.
func (c *Controller) SetSearch(text string) {
	c.mu.Lock()
	c.input.Search = text
	if err := c.doc.SetValue(c.ids.Search, text); err != nil {
		c.log.Warn("reflect search input", "err", err)
	}
	c.mu.Unlock()

	c.debounce.Trigger(func() {
		if err := c.ApplyFilters(); err != nil {
			c.log.Error("debounced filter failed", "err", err)
		}
	})
}

// SetSearchNow records new search text and re-filters immediately
func (c *Controller) SetSearchNow(text string) error {
	c.debounce.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.input.Search = text
	if err := c.doc.SetValue(c.ids.Search, text); err != nil {
		return err
	}
	return c.applyFilters()
}

// SetCategory selects a category ("" for all) and re-filters
func (c *Controller) SetCategory(category string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input.Category = category
	if err := c.doc.SetValue(c.ids.CategoryFilter, category); err != nil {
		return err
	}
	return c.applyFilters()
}

// SetType selects an offer type ("" for all) and re-filters
func (c *Controller) SetType(offerType string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input.Type = offerType
	if err := c.doc.SetValue(c.ids.TypeFilter, offerType); err != nil {
		return err
	}
	return c.applyFilters()
}

// SetCriteria replaces every filter at once and re-filters
func (c *Controller) SetCriteria(criteria models.Criteria) error {
	c.debounce.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.reflect(criteria); err != nil {
		return err
	}
	c.input = criteria
	return c.applyFilters()
}

// ClearFilters empties search, category and type and shows the full list
func (c *Controller) ClearFilters() error {
	return c.SetCriteria(models.Criteria{})
}

// LoadMore reveals the next page, appending it to what is already rendered
func (c *Controller) LoadMore() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.HasMore() {
		return nil
	}
	c.state.Page++
	return c.render(true)
}

// Flush runs a pending debounced search immediately
func (c *Controller) Flush() {
	c.debounce.Flush()
}

// Close cancels any pending debounced search
func (c *Controller) Close() {
	c.debounce.Stop()
}

// Snapshot returns a copy of the current state
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// FilterOptions returns the values the selects were populated with
func (c *Controller) FilterOptions() FilterOptions {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.options
}

func (c *Controller) applyFilters() error {
	c.state.Criteria = c.input
	c.state.Page = 0
	c.state.Filtered = Filter(c.offers, c.state.Criteria)

	c.log.Debug("filters applied",
		"search", c.state.Criteria.Query(),
		"category", c.state.Criteria.Category,
		"type", c.state.Criteria.Type,
		"matched", len(c.state.Filtered),
		"total", len(c.offers),
	)

	return c.render(false)
}

func (c *Controller) render(appendPage bool) error {
	if !appendPage {
		if err := c.doc.Clear(c.ids.Grid); err != nil {
			return err
		}
	}

	cards, err := render.Cards(c.state.Current())
	if err != nil {
		c.log.Error("render cards", "page", c.state.Page, "err", err)
		return err
	}
	if err := c.doc.Append(c.ids.Grid, cards); err != nil {
		return err
	}

	return c.doc.SetVisible(c.ids.LoadMore, c.state.HasMore())
}

func (c *Controller) populateOptions() error {
	c.options = CollectOptions(c.offers)

	cats, err := render.Options(c.options.Categories)
	if err != nil {
		return err
	}
	types, err := render.Options(c.options.Types)
	if err != nil {
		return err
	}

	if err := c.doc.Append(c.ids.CategoryFilter, cats); err != nil {
		return err
	}
	return c.doc.Append(c.ids.TypeFilter, types)
}

func (c *Controller) reflect(criteria models.Criteria) error {
	if err := c.doc.SetValue(c.ids.Search, criteria.Search); err != nil {
		return err
	}
	if err := c.doc.SetValue(c.ids.CategoryFilter, criteria.Category); err != nil {
		return err
	}
	return c.doc.SetValue(c.ids.TypeFilter, criteria.Type)
}
