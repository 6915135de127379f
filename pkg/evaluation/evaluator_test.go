package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateRelevanceExample(t *testing.T) {
	e := NewEvaluator()

	// Keywords longer than three chars: {what, price, apollo} vs
	// {apollo, pricing, starts}; only "apollo" overlaps.
	m := e.Evaluate("What is the price of Apollo?", "Apollo pricing starts now", 120)

	assert.Equal(t, int64(120), m.ResponseTime)
	assert.Equal(t, len("Apollo pricing starts now"), m.ResponseLength)
	assert.InDelta(t, 100.0/3.0, m.RelevanceScore, 0.01)
}

func TestEvaluateEmptyUserKeywords(t *testing.T) {
	e := NewEvaluator()

	m := e.Evaluate("a is to be", "some long assistant answer", 10)
	assert.Zero(t, m.RelevanceScore)
	assert.Equal(t, len("some long assistant answer"), m.ResponseLength)
}

func TestEvaluateStripsPunctuation(t *testing.T) {
	e := NewEvaluator()

	m := e.Evaluate("export contacts?!", "To export, open contacts.", 5)
	assert.InDelta(t, 100.0, m.RelevanceScore, 0.01)
}

func TestEvaluateMatchingIsExact(t *testing.T) {
	e := NewEvaluator()

	// "integrations" vs "integration" do not match; no stemming.
	m := e.Evaluate("integrations works", "the integration works", 5)
	assert.InDelta(t, 50.0, m.RelevanceScore, 0.01)
}

func TestEvaluateEmptyAnswer(t *testing.T) {
	e := NewEvaluator()

	m := e.Evaluate("where is billing", "", 7)
	assert.Equal(t, int64(7), m.ResponseTime)
	assert.Zero(t, m.ResponseLength)
	assert.Zero(t, m.RelevanceScore)
}
