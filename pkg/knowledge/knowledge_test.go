package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kb.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewStripsBOMAndToleratesShortRows(t *testing.T) {
	csv := "\ufeffurl,metadata/title,text,crawl/depth\n" +
		"https://example.com/a,Pricing Plans,details,1\n" +
		"https://example.com/b,Other\n" // short row, missing columns

	kb, err := New(writeCSV(t, csv))
	require.NoError(t, err)
	require.Equal(t, 2, kb.Len())

	results := kb.Search("pricing")
	require.Len(t, results, 1)
	assert.Equal(t, "Pricing Plans", results[0].Entry.Title)
	assert.Equal(t, "https://example.com/a", results[0].Entry.URL)
	assert.Equal(t, "1", results[0].Entry.Category)

	// Missing columns default to empty, not an ingestion failure.
	dump := kb.Dump()
	assert.Contains(t, dump, "Title: Other\nContent: \n")
}

func TestSearchRanking(t *testing.T) {
	csv := "url,metadata/title,text,crawl/depth\n" +
		"u1,Pricing Plans,details,1\n" +
		"u2,Other,pricing info,1\n"

	kb, err := New(writeCSV(t, csv))
	require.NoError(t, err)

	results := kb.Search("pricing")
	require.Len(t, results, 2)

	// Title match weighs double: 2*1+0=2 beats 0*2+1=1.
	assert.Equal(t, "Pricing Plans", results[0].Entry.Title)
	assert.Equal(t, 2, results[0].Score)
	assert.Equal(t, "Other", results[1].Entry.Title)
	assert.Equal(t, 1, results[1].Score)
}

func TestSearchTieBreakKeepsIngestionOrder(t *testing.T) {
	csv := "url,metadata/title,text,crawl/depth\n" +
		"u1,Billing FAQ,how billing works,1\n" +
		"u2,Billing Guide,how billing works,1\n"

	kb, err := New(writeCSV(t, csv))
	require.NoError(t, err)

	results := kb.Search("billing")
	require.Len(t, results, 2)
	assert.Equal(t, "u1", results[0].Entry.URL)
	assert.Equal(t, "u2", results[1].Entry.URL)
}

func TestSearchCapsResults(t *testing.T) {
	csv := "url,metadata/title,text,crawl/depth\n"
	for i := 0; i < 8; i++ {
		csv += "u,Export Guide,export steps,1\n"
	}

	kb, err := New(writeCSV(t, csv))
	require.NoError(t, err)

	assert.Len(t, kb.Search("export"), 5)
}

func TestSearchRejectsBlankQuery(t *testing.T) {
	csv := "url,metadata/title,text,crawl/depth\nu,Title,content,1\n"
	kb, err := New(writeCSV(t, csv))
	require.NoError(t, err)

	assert.Empty(t, kb.Search(""))
	assert.Empty(t, kb.Search("   "))
}

func TestSearchEmptyCorpus(t *testing.T) {
	kb, err := New(writeCSV(t, "url,metadata/title,text,crawl/depth\n"))
	require.NoError(t, err)

	assert.Empty(t, kb.Search("anything"))
	assert.Empty(t, kb.RelevantKnowledge("anything"))
}

func TestRepeatedWordScoring(t *testing.T) {
	csv := "url,metadata/title,text,crawl/depth\n" +
		"u1,Pricing,pricing pricing pricing,1\n"

	kb, err := New(writeCSV(t, csv))
	require.NoError(t, err)

	// Two occurrences of the same word in the query each contribute a
	// point; repeats inside the text do not.
	results := kb.Search("pricing pricing")
	require.Len(t, results, 1)
	assert.Equal(t, 6, results[0].Score) // (2 title hits)*2 + 2 content hits
}

func TestRelevantKnowledgeFormat(t *testing.T) {
	csv := "url,metadata/title,text,crawl/depth\n" +
		"https://example.com/faq,Account FAQ,reset your password,2\n"

	kb, err := New(writeCSV(t, csv))
	require.NoError(t, err)

	blob := kb.RelevantKnowledge("password")
	assert.Equal(t,
		"Title: Account FAQ\nContent: reset your password\nCategory: 2\nURL: https://example.com/faq\n\n",
		blob)
}
