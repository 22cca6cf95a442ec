package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/pokefetch/pokefetch/internal/dataset"
)

// Fixed structural queries against a Pokémon detail page.
const (
	// headingSelector locates the Pokémon's display name.
	headingSelector = "#main > h1"

	// tableSelector matches the attribute tables inside the basic-info tab
	// panels. Each generation/form gets its own "tab-basic-*" panel.
	tableSelector = `[id^="tab-basic-"] table`
)

// ExtractAttributes flattens one detail page into an ordered attribute map.
//
// The reserved "Pokemon Name" key is set first from the page heading; a page
// without a heading yields a *MissingFieldError. Every basic-info table is
// then walked row by row: a row contributes a key/value pair only when it has
// both a header cell and a data cell. Later tables overwrite earlier ones on
// key collision, so multi-form pages keep the last form's values.
//
// A fresh map is returned for every call; nothing is shared across pages.
func ExtractAttributes(doc *goquery.Document) (*dataset.AttributeMap, error) {
	heading := doc.Find(headingSelector).First()
	if heading.Length() == 0 {
		return nil, &MissingFieldError{Field: "name heading", Selector: headingSelector}
	}
	name := strings.TrimSpace(heading.Text())
	if name == "" {
		return nil, &MissingFieldError{Field: "name heading", Selector: headingSelector}
	}

	attrs := dataset.NewAttributeMap()
	attrs.Set(dataset.NameColumn, name)

	doc.Find(tableSelector).Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			th := row.Find("th").First()
			td := row.Find("td").First()
			if th.Length() == 0 || td.Length() == 0 {
				return
			}
			attrs.Set(strings.TrimSpace(th.Text()), joinedText(td))
		})
	})

	return attrs, nil
}

// joinedText returns the text of sel with its descendant text nodes trimmed,
// empties dropped, and the remainder joined by single spaces. This keeps a
// space between adjacent inline elements ("Grass" and "Poison" links become
// "Grass Poison", not "GrassPoison") without preserving layout whitespace.
func joinedText(sel *goquery.Selection) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}
