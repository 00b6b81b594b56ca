package offers

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/fr4nk3nst1ner/offerboard/internal/models"
)

var validate = validator.New()

// Layouts without an offset are read as local wall-clock time.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// record mirrors models.Offer with a free-form date so that YAML timestamps,
// quoted ISO strings and JSON documents all decode the same way.
type record struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Description string   `yaml:"description"`
	Skills      []string `yaml:"skills"`
	Location    string   `yaml:"location"`
	Type        string   `yaml:"type"`
	Category    string   `yaml:"category"`
	Remote      bool     `yaml:"remote"`
	URL         string   `yaml:"url"`
}

type document struct {
	Offers []record `yaml:"offers"`
}

// Decode parses a YAML or JSON catalogue and validates every offer
func Decode(data []byte) ([]models.Offer, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}

	out := make([]models.Offer, 0, len(doc.Offers))
	for i, r := range doc.Offers {
		date, err := parseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("offer #%d (id %d): %w", i, r.ID, err)
		}
		out = append(out, models.Offer{
			ID:          r.ID,
			Title:       strings.TrimSpace(r.Title),
			Date:        date,
			Description: r.Description,
			Skills:      r.Skills,
			Location:    r.Location,
			Type:        r.Type,
			Category:    r.Category,
			Remote:      r.Remote,
			URL:         r.URL,
		})
	}

	if err := Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Encode renders offers as a YAML catalogue accepted by Decode
func Encode(list []models.Offer) ([]byte, error) {
	doc := document{Offers: make([]record, 0, len(list))}
	for _, o := range list {
		doc.Offers = append(doc.Offers, record{
			ID:          o.ID,
			Title:       o.Title,
			Date:        o.Date.Format(time.RFC3339Nano),
			Description: o.Description,
			Skills:      o.Skills,
			Location:    o.Location,
			Type:        o.Type,
			Category:    o.Category,
			Remote:      o.Remote,
			URL:         o.URL,
		})
	}
	return yaml.Marshal(doc)
}

// Validate checks field constraints and id uniqueness
func Validate(list []models.Offer) error {
	if err := validate.Struct(models.Catalogue{Offers: list}); err != nil {
		return fmt.Errorf("invalid catalogue: %w", err)
	}

	seen := make(map[int]bool, len(list))
	for _, o := range list {
		if seen[o.ID] {
			return fmt.Errorf("invalid catalogue: duplicate offer id %d", o.ID)
		}
		seen[o.ID] = true
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}
