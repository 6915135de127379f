package evaluation

import (
	"regexp"
	"strings"
)

// Metrics is the quality measurement of one answered turn.
type Metrics struct {
	ResponseTime   int64   `json:"responseTime"`
	ResponseLength int     `json:"responseLength"`
	RelevanceScore float64 `json:"relevanceScore"`
}

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// Evaluator scores a produced answer against the triggering question. It is
// stateless; one shared instance serves all turns.
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate computes metrics for one turn. Scoring must never fail a turn,
// so any internal panic degrades to zeroed length and relevance.
func (e *Evaluator) Evaluate(userText, assistantText string, responseTime int64) (m Metrics) {
	m = Metrics{ResponseTime: responseTime}
	defer func() {
		if r := recover(); r != nil {
			m = Metrics{ResponseTime: responseTime}
		}
	}()

	m.ResponseLength = len(assistantText)
	m.RelevanceScore = relevanceScore(userText, assistantText)
	return m
}

// relevanceScore is the percentage of user keywords echoed verbatim in the
// answer. Matching is exact string equality, not stemmed or fuzzy.
func relevanceScore(userText, assistantText string) float64 {
	userKeywords := extractKeywords(userText)
	if len(userKeywords) == 0 {
		return 0
	}

	assistantKeywords := make(map[string]struct{})
	for _, word := range extractKeywords(assistantText) {
		assistantKeywords[word] = struct{}{}
	}

	common := 0
	for _, word := range userKeywords {
		if _, ok := assistantKeywords[word]; ok {
			common++
		}
	}
	return float64(common) / float64(len(userKeywords)) * 100
}

// extractKeywords lowercases the text, strips punctuation and keeps tokens
// longer than three characters.
func extractKeywords(text string) []string {
	cleaned := nonWordPattern.ReplaceAllString(strings.ToLower(text), "")
	var keywords []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) > 3 {
			keywords = append(keywords, word)
		}
	}
	return keywords
}
