package site

import (
	"encoding/xml"
	"time"

	"github.com/incrediblerust/sitegen/internal/content"
	siteerrors "github.com/incrediblerust/sitegen/internal/errors"
)

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	AtomNS  string     `xml:"xmlns:atom,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Description   string    `xml:"description"`
	Link          string    `xml:"link"`
	AtomLink      atomLink  `xml:"atom:link"`
	PubDate       string    `xml:"pubDate"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Generator     string    `xml:"generator"`
	Items         []rssItem `xml:"item"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	Description string `xml:"description,omitempty"`
}

const feedDescriptionLimit = 280

// buildFeed produces the RSS document. Items cover the default-language
// collection pages; descriptions are plain text extracted from the rendered
// bodies.
func (b *Builder) buildFeed(files []*content.ContentFile, now time.Time) ([]byte, error) {
	stamp := now.Format(time.RFC1123Z)
	feed := rssFeed{
		Version: "2.0",
		AtomNS:  "http://www.w3.org/2005/Atom",
		Channel: rssChannel{
			Title:         b.cfg.Title,
			Description:   b.cfg.Description,
			Link:          b.cfg.URL,
			AtomLink:      atomLink{Href: b.cfg.URL + "/feed.xml", Rel: "self", Type: "application/rss+xml"},
			PubDate:       stamp,
			LastBuildDate: stamp,
			Generator:     "sitegen",
		},
	}

	for _, cf := range files {
		if cf.Collection == "" || cf.Language != b.cfg.DefaultLang() || cf.IsIndex() {
			continue
		}
		title := cf.FrontMatter.Title
		if title == "" {
			title = cf.Stem()
		}
		link := b.cfg.URL + b.resolver.OutputPath(cf)
		feed.Channel.Items = append(feed.Channel.Items, rssItem{
			Title:       title,
			Link:        link,
			GUID:        link,
			Description: summarize(cf.HTML, feedDescriptionLimit),
		})
	}

	out, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return nil, siteerrors.Wrap(err, siteerrors.CategoryInternal, "failed to marshal feed")
	}
	return append([]byte(xml.Header), out...), nil
}
