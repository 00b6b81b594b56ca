// Package dom provides an in-memory HTML document addressed by element id.
package dom

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Page is a parsed HTML document. It is not safe for concurrent use.
type Page struct {
	doc *goquery.Document
}

// Parse builds a Page from HTML markup
func Parse(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &Page{doc: doc}, nil
}

// ParseString is Parse for in-memory markup
func ParseString(html string) (*Page, error) {
	return Parse(strings.NewReader(html))
}

func (p *Page) byID(id string) (*goquery.Selection, error) {
	sel := p.doc.Find("#" + id)
	if sel.Length() == 0 {
		return nil, fmt.Errorf("element #%s not found", id)
	}
	return sel.First(), nil
}

// Has reports whether an element with the given id exists
func (p *Page) Has(id string) bool {
	return p.doc.Find("#"+id).Length() > 0
}

// Clear removes every child of the element
func (p *Page) Clear(id string) error {
	sel, err := p.byID(id)
	if err != nil {
		return err
	}
	sel.Empty()
	return nil
}

// Append parses fragment and appends it as the element's last children
func (p *Page) Append(id string, fragment template.HTML) error {
	sel, err := p.byID(id)
	if err != nil {
		return err
	}
	sel.AppendHtml(string(fragment))
	return nil
}

// SetVisible toggles the element's inline display style
func (p *Page) SetVisible(id string, visible bool) error {
	sel, err := p.byID(id)
	if err != nil {
		return err
	}
	if visible {
		sel.SetAttr("style", "display:inline-block")
	} else {
		sel.SetAttr("style", "display:none")
	}
	return nil
}

// Visible reports whether the element is displayed
func (p *Page) Visible(id string) bool {
	sel, err := p.byID(id)
	if err != nil {
		return false
	}
	style, _ := sel.Attr("style")
	return !strings.Contains(strings.ReplaceAll(style, " ", ""), "display:none")
}

// SetValue reflects a form control's value. Inputs get a value attribute,
// selects mark the matching option as selected.
func (p *Page) SetValue(id, value string) error {
	sel, err := p.byID(id)
	if err != nil {
		return err
	}

	if goquery.NodeName(sel) != "select" {
		sel.SetAttr("value", value)
		return nil
	}

	sel.Find("option").Each(func(_ int, opt *goquery.Selection) {
		v, ok := opt.Attr("value")
		if !ok {
			v = opt.Text()
		}
		if v == value {
			opt.SetAttr("selected", "selected")
		} else {
			opt.RemoveAttr("selected")
		}
	})
	return nil
}

// Value returns a form control's current value
func (p *Page) Value(id string) string {
	sel, err := p.byID(id)
	if err != nil {
		return ""
	}
	if goquery.NodeName(sel) != "select" {
		v, _ := sel.Attr("value")
		return v
	}
	opt := sel.Find("option[selected]").First()
	if opt.Length() == 0 {
		opt = sel.Find("option").First()
	}
	if v, ok := opt.Attr("value"); ok {
		return v
	}
	return opt.Text()
}

// Find exposes a goquery selection for read-only inspection
func (p *Page) Find(selector string) *goquery.Selection {
	return p.doc.Find(selector)
}

// HTML serialises the whole document
func (p *Page) HTML() (string, error) {
	return goquery.OuterHtml(p.doc.Selection)
}

// WriteTo writes the serialised document to w
func (p *Page) WriteTo(w io.Writer) (int64, error) {
	html, err := p.HTML()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, html)
	return int64(n), err
}
