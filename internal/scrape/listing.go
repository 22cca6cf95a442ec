package scrape

import "github.com/PuerkitoBio/goquery"

// listingSelector matches the anchor inside each Pokémon info card on the
// national Pokédex listing page.
const listingSelector = "div.infocard > span.infocard-lg-img > a"

// ExtractEntityLinks returns the href of every Pokémon card anchor on the
// listing page, in document order. The hrefs are relative suffixes
// (e.g. "/pokedex/bulbasaur") to be joined with the site's base origin.
//
// An empty result is not an error: the caller decides whether a listing with
// no entries is fatal. Links are neither deduplicated nor validated.
func ExtractEntityLinks(doc *goquery.Document) []string {
	links := make([]string, 0)
	doc.Find(listingSelector).Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok {
			links = append(links, href)
		}
	})
	return links
}
