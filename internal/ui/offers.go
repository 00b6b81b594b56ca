package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/offerboard/internal/board"
	"github.com/fr4nk3nst1ner/offerboard/internal/models"
	"github.com/fr4nk3nst1ner/offerboard/internal/render"
	"github.com/fr4nk3nst1ner/offerboard/internal/utils"
)

// OffersTable renders offers as a terminal table, ages relative to now
func OffersTable(list []models.Offer, now time.Time) (string, error) {
	data := pterm.TableData{{"ID", "Title", "Category", "Type", "Location", "Published"}}
	for _, o := range list {
		data = append(data, []string{
			fmt.Sprintf("%d", o.ID),
			utils.TruncateString(o.Title, 48),
			o.Category,
			o.Type,
			render.LocationLabel(o),
			humanize.RelTime(o.Date, now, "ago", "from now"),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// Summary describes how much of the filtered list is on screen
func Summary(s board.State, total int) string {
	shown := len(s.Visible())
	line := fmt.Sprintf("Showing %s of %s matching offers (%s in catalogue)",
		humanize.Comma(int64(shown)),
		humanize.Comma(int64(len(s.Filtered))),
		humanize.Comma(int64(total)))
	if s.HasMore() {
		line += " - more available"
	}
	return line
}

// OptionsList renders the category and type options as bullet lists
func OptionsList(opts board.FilterOptions) (string, error) {
	items := []pterm.BulletListItem{{Level: 0, Text: "Categories"}}
	for _, c := range opts.Categories {
		items = append(items, pterm.BulletListItem{Level: 1, Text: c})
	}
	items = append(items, pterm.BulletListItem{Level: 0, Text: "Types"})
	for _, t := range opts.Types {
		items = append(items, pterm.BulletListItem{Level: 1, Text: t})
	}
	return pterm.DefaultBulletList.WithItems(items).Srender()
}

// DescribeCriteria renders active filters for log lines and headers
func DescribeCriteria(c models.Criteria) string {
	if c.IsEmpty() {
		return "no filters"
	}
	var parts []string
	if q := c.Query(); q != "" {
		parts = append(parts, fmt.Sprintf("search=%q", q))
	}
	if c.Category != "" {
		parts = append(parts, "category="+c.Category)
	}
	if c.Type != "" {
		parts = append(parts, "type="+c.Type)
	}
	return strings.Join(parts, ", ")
}
