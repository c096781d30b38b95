package responder

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"portfolio-assistant/internal/domain"
)

// Matcher maps a visitor message to a single reply. It holds only read-only
// tables after construction and is safe for concurrent use when its Rand is.
type Matcher struct {
	rules     []Rule
	pages     []domain.PageContent
	fallbacks []string
	rng       Rand
}

type Option func(*Matcher)

// WithRand replaces the random source used to pick canned responses and
// fallbacks.
func WithRand(r Rand) Option {
	return func(m *Matcher) {
		if r != nil {
			m.rng = r
		}
	}
}

// New creates a Matcher over the given rule table and content index. Both are
// copied; callers may not mutate them through the Matcher afterwards.
func New(rules []Rule, pages []domain.PageContent, fallbacks []string, opts ...Option) (*Matcher, error) {
	if len(fallbacks) == 0 {
		return nil, errors.New("responder: fallbacks must not be empty")
	}
	for i, r := range rules {
		for _, p := range r.Patterns {
			if p == nil {
				return nil, fmt.Errorf("responder: rule %d (%s) has a nil pattern", i, r.Name)
			}
		}
	}
	m := &Matcher{
		rules:     slices.Clone(rules),
		pages:     clonePages(pages),
		fallbacks: slices.Clone(fallbacks),
		rng:       globalRand{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Reply answers userMessage. The history is accepted for callers that keep
// one but does not influence matching. Reply never fails: a message nothing
// recognises gets one of the fallbacks.
func (m *Matcher) Reply(userMessage string, _ []domain.ChatMessage) string {
	normalized := normalize(userMessage)

	for _, rule := range m.rules {
		if !rule.matches(normalized) {
			continue
		}
		if rule.Action != nil {
			return rule.Action(userMessage)
		}
		if len(rule.Responses) > 0 {
			return m.pick(rule.Responses)
		}
		// Matched with nothing to say: later rules still get a chance.
	}

	return m.fromContent(normalized)
}

func (m *Matcher) pick(options []string) string {
	return options[m.rng.IntN(len(options))]
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func clonePages(pages []domain.PageContent) []domain.PageContent {
	out := make([]domain.PageContent, len(pages))
	for i, p := range pages {
		p.Keywords = slices.Clone(p.Keywords)
		out[i] = p
	}
	return out
}
