package index

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/bmatcuk/doublestar/v4"
)

// SearchOptions configures a metadata search.
type SearchOptions struct {
	Query      string
	Format     string // Exact format name filter (e.g. "JPEG")
	PathGlob   string // Optional doublestar glob applied to image paths
	MaxResults int
}

// Search performs a full-text search over indexed image metadata.
// Query format:
//   - Plain text: match query (word-level matching over name, path, dir)
//   - "quoted text": phrase query (exact phrase match)
//   - /regex/: regexp query
//
// Results come back in Bleve relevance order.
func (mi *MetaIndex) Search(options SearchOptions) ([]*ImageFile, error) {
	mi.mu.RLock()
	defer mi.mu.RUnlock()

	if options.MaxResults <= 0 {
		options.MaxResults = 50
	}

	bleveQuery := buildQuery(options.Query)

	searchRequest := bleve.NewSearchRequest(bleveQuery)
	// Ask for extra hits because format and glob filters are applied after
	// the Bleve query.
	searchRequest.Size = options.MaxResults * 5

	searchResults, err := mi.index.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}

	normalizedGlob := strings.ReplaceAll(options.PathGlob, "\\", "/")

	var results []*ImageFile
	for _, hit := range searchResults.Hits {
		image, ok := mi.images[hit.ID]
		if !ok {
			continue
		}

		if options.Format != "" && !strings.EqualFold(image.Format, options.Format) {
			continue
		}

		if normalizedGlob != "" {
			matched, err := doublestar.Match(normalizedGlob, strings.ReplaceAll(image.Path, "\\", "/"))
			if err != nil || !matched {
				continue
			}
		}

		results = append(results, image)
		if len(results) >= options.MaxResults {
			break
		}
	}

	return results, nil
}

// buildQuery parses the query string into a Bleve query.
func buildQuery(queryString string) query.Query {
	queryString = strings.TrimSpace(queryString)

	// Regex query: /pattern/
	if strings.HasPrefix(queryString, "/") && strings.HasSuffix(queryString, "/") && len(queryString) > 2 {
		regexPattern := queryString[1 : len(queryString)-1]
		return bleve.NewRegexpQuery(regexPattern)
	}

	// Phrase query: "exact phrase"
	if strings.HasPrefix(queryString, "\"") && strings.HasSuffix(queryString, "\"") && len(queryString) > 2 {
		phrase := queryString[1 : len(queryString)-1]
		return bleve.NewMatchPhraseQuery(phrase)
	}

	// Default: match query (word-level)
	return bleve.NewMatchQuery(queryString)
}
