// Package analysis derives sentiment, timeframe and theme signals for content at ingestion time.
package analysis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/umputun/makro/pkg/domain"
	"github.com/umputun/makro/pkg/lexicon"
)

// Analyze runs all lexicon scorers over the same text and merges their results.
// Empty text yields a neutral result with no themes.
func Analyze(text string) domain.AnalysisResult {
	if strings.TrimSpace(text) == "" {
		return domain.AnalysisResult{Sentiment: domain.SentimentNeutral, Themes: []string{}}
	}

	sentiment := lexicon.AnalyzeSentiment(text)
	return domain.AnalysisResult{
		Sentiment:           sentiment.Sentiment,
		SentimentConfidence: sentiment.Confidence,
		Timeframe:           lexicon.ExtractTimeframe(text),
		Themes:              lexicon.ExtractMacroThemes(text),
	}
}

// Apply copies analysis results into the item, keeping values the user already set.
// Themes are merged, user themes first.
func Apply(item *domain.ContentItem, res domain.AnalysisResult) {
	if item.Sentiment == "" {
		item.Sentiment = res.Sentiment
		item.SentimentConfidence = res.SentimentConfidence
	}
	if item.Timeframe == domain.TimeframeUnknown {
		item.Timeframe = res.Timeframe
	}

	themes := make([]string, 0, len(item.Themes)+len(res.Themes))
	seen := make(map[string]bool, cap(themes))
	for _, th := range append(append([]string{}, item.Themes...), res.Themes...) {
		if th == "" || seen[th] {
			continue
		}
		seen[th] = true
		themes = append(themes, th)
	}
	item.Themes = themes
}

// FilterMacroRelevant scores each article on title, description and extracted text,
// keeps those scoring at least minScore and orders them by score, highest first
func FilterMacroRelevant(articles []domain.Article, minScore int) []domain.Article {
	res := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		a.MacroRelevanceScore = lexicon.ScoreMacroRelevance(a.Title + " " + a.Description + " " + a.ExtractedText)
		if a.MacroRelevanceScore >= minScore {
			res = append(res, a)
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].MacroRelevanceScore > res[j].MacroRelevanceScore })
	return res
}

var spacesRe = regexp.MustCompile(`\s+`)

// CleanText collapses whitespace in user input. Links are returned untouched.
func CleanText(input string, contentType domain.ContentType) string {
	if input == "" {
		return ""
	}
	if contentType == domain.ContentLink && (strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")) {
		return input
	}
	return strings.TrimSpace(spacesRe.ReplaceAllString(input, " "))
}

// Truncate cuts text to maxLen runes and appends an ellipsis
func Truncate(text string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = 150
	}
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}
