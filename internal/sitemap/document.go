package sitemap

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// DocumentKind discriminates the root element of a sitemap document.
type DocumentKind int

const (
	// KindIndex is a <sitemapindex> whose <loc> entries point to child sitemaps.
	KindIndex DocumentKind = iota
	// KindURLSet is a leaf <urlset> whose <loc> entries are page URLs.
	KindURLSet
	// KindUnknown is any other root element. Its <loc> entries, if present,
	// are treated as page URLs.
	KindUnknown
)

// String returns string representation of DocumentKind
func (dk DocumentKind) String() string {
	switch dk {
	case KindIndex:
		return "sitemapindex"
	case KindURLSet:
		return "urlset"
	default:
		return "unknown"
	}
}

// Document is the parsed form of a single sitemap XML payload. It is
// transient: it only exists between fetching and flattening.
type Document struct {
	Kind DocumentKind
	Locs []string
}

// ParseDocument parses a sitemap XML payload, classifying the root element
// and collecting the text of every <loc> element in document order.
// Namespaces are ignored: only local element names matter, matching how
// the sitemap protocol is used in the wild.
func ParseDocument(data []byte) (*Document, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charset.NewReaderLabel

	doc := &Document{Kind: KindUnknown}
	rootSeen := false
	inLoc := false
	var locText strings.Builder

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			local := strings.ToLower(tok.Name.Local)
			if !rootSeen {
				rootSeen = true
				switch local {
				case "sitemapindex":
					doc.Kind = KindIndex
				case "urlset":
					doc.Kind = KindURLSet
				}
			}
			if local == "loc" {
				inLoc = true
				locText.Reset()
			}
		case xml.CharData:
			if inLoc {
				locText.Write(tok)
			}
		case xml.EndElement:
			if inLoc && strings.ToLower(tok.Name.Local) == "loc" {
				inLoc = false
				if loc := strings.TrimSpace(locText.String()); loc != "" {
					doc.Locs = append(doc.Locs, loc)
				}
			}
		}
	}

	if !rootSeen {
		return nil, xml.UnmarshalError("document has no root element")
	}

	return doc, nil
}
