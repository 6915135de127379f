package knowledge

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Entry is one reference document ingested from the knowledge CSV.
type Entry struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// SearchResult is a ranked retrieval hit.
type SearchResult struct {
	Entry Entry `json:"entry"`
	Score int   `json:"score"`
}

// maxResults caps how many hits a single search returns.
const maxResults = 5

// Column mapping of the crawler export format.
const (
	columnURL      = "url"
	columnTitle    = "metadata/title"
	columnContent  = "text"
	columnCategory = "crawl/depth"
)

// Base holds the immutable knowledge corpus. It is read-only after
// construction, so concurrent searches need no locking.
type Base struct {
	entries []Entry
}

// New loads the corpus from a CSV export. A leading UTF-8 BOM is stripped
// and rows with missing or extra columns are tolerated; a missing value
// simply becomes an empty field. Ingestion order is preserved because it is
// the tie-break key during ranking.
func New(path string) (*Base, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base: %w", err)
	}

	content := strings.TrimPrefix(string(raw), "\ufeff")

	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1 // relax column count per row
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse knowledge base: %w", err)
	}
	if len(records) == 0 {
		return &Base{}, nil
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	field := func(row []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	entries := make([]Entry, 0, len(records)-1)
	for _, row := range records[1:] {
		if len(row) == 0 {
			continue
		}
		entries = append(entries, Entry{
			URL:      field(row, columnURL),
			Title:    field(row, columnTitle),
			Content:  field(row, columnContent),
			Category: field(row, columnCategory),
		})
	}

	return &Base{entries: entries}, nil
}

// Len reports how many entries were ingested.
func (b *Base) Len() int {
	return len(b.entries)
}

// Search ranks entries against the query and returns at most five hits,
// most relevant first. Title matches weigh double against content matches.
// Entries with identical scores keep their ingestion order.
func (b *Base) Search(query string) []SearchResult {
	if strings.TrimSpace(query) == "" || len(b.entries) == 0 {
		return nil
	}

	queryWords := strings.Fields(strings.ToLower(query))

	var results []SearchResult
	for _, entry := range b.entries {
		titleScore := fieldScore(entry.Title, queryWords)
		contentScore := fieldScore(entry.Content, queryWords)
		score := titleScore*2 + contentScore
		if score > 0 {
			results = append(results, SearchResult{Entry: entry, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// fieldScore counts how many query words appear in the field as a
// substring. Each word contributes at most one point per field, no matter
// how often it occurs in the text.
func fieldScore(text string, queryWords []string) int {
	lowered := strings.ToLower(text)
	score := 0
	for _, word := range queryWords {
		if strings.Contains(lowered, word) {
			score++
		}
	}
	return score
}

// RelevantKnowledge runs a search and formats the hits as a context blob
// for the generation prompt. An empty string means no hits, not an error.
func (b *Base) RelevantKnowledge(query string) string {
	var sb strings.Builder
	for _, result := range b.Search(query) {
		writeEntry(&sb, result.Entry)
	}
	return sb.String()
}

// Dump renders the whole corpus in the same block format.
func (b *Base) Dump() string {
	var sb strings.Builder
	for _, entry := range b.entries {
		writeEntry(&sb, entry)
	}
	return sb.String()
}

func writeEntry(sb *strings.Builder, entry Entry) {
	sb.WriteString("Title: " + entry.Title + "\n")
	sb.WriteString("Content: " + entry.Content + "\n")
	sb.WriteString("Category: " + entry.Category + "\n")
	sb.WriteString("URL: " + entry.URL + "\n\n")
}
