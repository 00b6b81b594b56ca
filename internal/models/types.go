package models

import (
	"strings"
	"time"
)

// Offer represents a single job or mission listing
type Offer struct {
	ID          int       `json:"id" yaml:"id" validate:"gt=0"`
	Title       string    `json:"title" yaml:"title" validate:"required"`
	Date        time.Time `json:"date" yaml:"date"`
	Description string    `json:"description" yaml:"description"`
	Skills      []string  `json:"skills,omitempty" yaml:"skills,omitempty"`
	Location    string    `json:"location,omitempty" yaml:"location,omitempty"`
	Type        string    `json:"type" yaml:"type"`
	Category    string    `json:"category" yaml:"category"`
	Remote      bool      `json:"remote" yaml:"remote"`
	URL         string    `json:"url,omitempty" yaml:"url,omitempty"`
}

// Haystack returns the lower-cased text searched by free-text queries
func (o Offer) Haystack() string {
	return strings.ToLower(o.Title + " " + o.Description + " " + strings.Join(o.Skills, " "))
}

// Criteria holds the user's filter selections. The zero value matches everything.
type Criteria struct {
	Search   string `json:"search,omitempty"`
	Category string `json:"category,omitempty"`
	Type     string `json:"type,omitempty"`
}

// Query returns the normalized search text
func (c Criteria) Query() string {
	return strings.ToLower(strings.TrimSpace(c.Search))
}

// IsEmpty reports whether no filter is active
func (c Criteria) IsEmpty() bool {
	return c.Query() == "" && c.Category == "" && c.Type == ""
}

// Catalogue is the on-disk shape of an offer collection
type Catalogue struct {
	Offers []Offer `json:"offers" yaml:"offers" validate:"dive"`
}
