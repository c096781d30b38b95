package responder

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"portfolio-assistant/internal/domain"
)

const (
	titleScore        = 10
	keywordScore      = 5
	minWordLength     = 3
	minSentenceLength = 20
	maxRelated        = 2
)

// Match is a content index entry with its relevance score.
type Match struct {
	Page  domain.PageContent
	Score int
}

// Rank scores every page against userMessage and returns the ones with a
// positive score, best first. Equal scores keep index order.
func (m *Matcher) Rank(userMessage string) []Match {
	return rank(m.pages, normalize(userMessage))
}

func rank(pages []domain.PageContent, normalized string) []Match {
	words := significantWords(normalized)
	counters := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		counters = append(counters, regexp.MustCompile("(?i)"+regexp.QuoteMeta(w)))
	}

	var matches []Match
	for _, page := range pages {
		score := 0
		if strings.Contains(normalized, strings.ToLower(page.Title)) {
			score += titleScore
		}
		for _, kw := range page.Keywords {
			kw = strings.ToLower(kw)
			if strings.Contains(normalized, kw) || strings.Contains(kw, normalized) {
				score += keywordScore
			}
		}
		for _, re := range counters {
			score += len(re.FindAllStringIndex(page.Content, -1))
		}
		if score > 0 {
			matches = append(matches, Match{Page: page, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

func (m *Matcher) fromContent(normalized string) string {
	matches := rank(m.pages, normalized)
	if len(matches) == 0 {
		return m.pick(m.fallbacks)
	}

	top := matches[0].Page
	var b strings.Builder
	fmt.Fprintf(&b, "Based on the %s page: %s.", top.Title, bestSentence(top.Content, significantWords(normalized)))

	if len(matches) > 1 {
		related := make([]string, 0, maxRelated)
		for _, match := range matches[1:min(len(matches), maxRelated+1)] {
			related = append(related, match.Page.Title)
		}
		fmt.Fprintf(&b, " You might also be interested in: %s.", strings.Join(related, ", "))
	}

	b.WriteString(" Would you like to know more about anything specific?")
	return b.String()
}

// bestSentence returns the first sentence of content long enough to be
// useful that mentions one of words, or the first long sentence otherwise.
func bestSentence(content string, words []string) string {
	var sentences []string
	for _, s := range strings.FieldsFunc(content, isSentenceEnd) {
		s = strings.TrimSpace(s)
		if utf8.RuneCountInString(s) >= minSentenceLength {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) == 0 {
		return strings.TrimSpace(content)
	}

	for _, s := range sentences {
		lower := strings.ToLower(s)
		for _, w := range words {
			if strings.Contains(lower, w) {
				return s
			}
		}
	}
	return sentences[0]
}

func significantWords(normalized string) []string {
	var words []string
	for _, w := range strings.Fields(normalized) {
		if utf8.RuneCountInString(w) >= minWordLength {
			words = append(words, w)
		}
	}
	return words
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
