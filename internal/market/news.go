package market

import "strings"

// DefaultNewsCount is the cap applied when the caller asks for none.
const DefaultNewsCount = 20

// NewsArticle keeps only the fields a news card displays.
type NewsArticle struct {
	ID       string `json:"id"`
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	Image    string `json:"image"`
	URL      string `json:"url"`
}

// CurateNews keeps, in input order, at most count articles that carry an
// image. Every other provider field is dropped. count <= 0 means
// DefaultNewsCount.
func CurateNews(articles []Record, count int) []NewsArticle {
	if count <= 0 {
		count = DefaultNewsCount
	}
	out := make([]NewsArticle, 0, min(count, len(articles)))
	for _, a := range articles {
		if len(out) == count {
			break
		}
		image := strings.TrimSpace(a.String("image"))
		if image == "" {
			continue
		}
		out = append(out, NewsArticle{
			ID:       a.String("id"),
			Headline: a.String("headline"),
			Summary:  a.String("summary"),
			Image:    image,
			URL:      a.String("url"),
		})
	}
	return out
}
