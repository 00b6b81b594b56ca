// Package render turns offers into HTML fragments. All markup goes through
// html/template so every data-derived string is escaped for its context.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/goodsign/monday"

	"github.com/fr4nk3nst1ner/offerboard/internal/models"
)

const (
	// RemoteLabel is shown instead of the location for remote offers.
	RemoteLabel = "Télétravail"
	detailPage  = "offre-detail.html"
	dateLayout  = "02 January 2006"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("offerboard").Funcs(template.FuncMap{
	"date":          FormatDate,
	"locationLabel": LocationLabel,
	"link":          Link,
}).ParseFS(templateFS, "templates/*.html"))

// PageData feeds the page skeleton
type PageData struct {
	Title      string
	Stylesheet string
}

// FormatDate formats t as a fr-FR long date, e.g. "19 novembre 2025"
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return monday.Format(t, dateLayout, monday.LocaleFrFR)
}

// LocationLabel returns the location line of a card
func LocationLabel(o models.Offer) string {
	if o.Remote {
		return RemoteLabel
	}
	return o.Location
}

// Link returns the offer's own url, or the detail page for its id
func Link(o models.Offer) string {
	if o.URL != "" {
		return o.URL
	}
	return detailPage + "?id=" + strconv.Itoa(o.ID)
}

// Card renders a single offer card
func Card(o models.Offer) (template.HTML, error) {
	return execute("card", o)
}

// Cards renders offers in order as consecutive cards
func Cards(list []models.Offer) (template.HTML, error) {
	return execute("cards", list)
}

// Options renders one <option> per value
func Options(values []string) (template.HTML, error) {
	return execute("options", values)
}

// Page renders the empty board skeleton the controller fills in
func Page(data PageData) (string, error) {
	if data.Title == "" {
		data.Title = "Offres"
	}
	out, err := execute("page", data)
	return string(out), err
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
