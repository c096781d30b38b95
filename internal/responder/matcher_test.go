package responder

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"portfolio-assistant/internal/domain"
)

// fixedRand always returns idx (clamped to n-1) and records the n it saw.
type fixedRand struct {
	idx  int
	seen []int
}

func (f *fixedRand) IntN(n int) int {
	f.seen = append(f.seen, n)
	if f.idx >= n {
		return n - 1
	}
	return f.idx
}

var testPages = []domain.PageContent{
	{
		Path:     "/",
		Title:    "Home",
		Content:  "Welcome to the site. This is the landing page with an overview of everything here.",
		Keywords: []string{"home", "landing"},
	},
	{
		Path:     "/garden",
		Title:    "Garden",
		Content:  "Short one. Tomatoes and peppers grow along the southern fence every summer. Basil likes shade!",
		Keywords: []string{"garden", "plants", "vegetables"},
	},
	{
		Path:     "/kitchen",
		Title:    "Kitchen",
		Content:  "Recipes for tomatoes, peppers and basil live here. Tomatoes taste best in a sauce.",
		Keywords: []string{"recipes", "cooking"},
	},
}

var testFallbacks = []string{"fallback one", "fallback two", "fallback three"}

func newTestMatcher(t *testing.T, rules []Rule, r Rand) *Matcher {
	t.Helper()
	m, err := New(rules, testPages, testFallbacks, WithRand(r))
	require.NoError(t, err)
	return m
}

func TestNew_Validates(t *testing.T) {
	_, err := New(nil, testPages, nil)
	require.ErrorContains(t, err, "fallbacks must not be empty")

	_, err = New([]Rule{{Name: "broken", Patterns: []*regexp.Regexp{nil}}}, testPages, testFallbacks)
	require.ErrorContains(t, err, "nil pattern")

	m, err := New(nil, nil, testFallbacks)
	require.NoError(t, err)
	require.Contains(t, testFallbacks, m.Reply("anything at all", nil))
}

func TestReply_CannedResponseIsFromRule(t *testing.T) {
	greetings := []string{"hi one", "hi two", "hi three"}
	rules := []Rule{Canned("greeting", []string{`^(hi|hello)\b`}, greetings...)}

	for i := range greetings {
		r := &fixedRand{idx: i}
		m := newTestMatcher(t, rules, r)
		require.Equal(t, greetings[i], m.Reply("  HELLO there ", nil))
		require.Equal(t, []int{len(greetings)}, r.seen)
	}
}

func TestReply_ActionGetsOriginalMessage(t *testing.T) {
	var got string
	rules := []Rule{
		Synthesized("echo", []string{`\becho\b`}, func(msg string) string {
			got = msg
			return "echoed: " + msg
		}),
	}
	m := newTestMatcher(t, rules, &fixedRand{})

	require.Equal(t, "echoed:   Echo THIS  ", m.Reply("  Echo THIS  ", nil))
	require.Equal(t, "  Echo THIS  ", got)
}

func TestReply_ActionWinsOverResponses(t *testing.T) {
	rules := []Rule{{
		Name:      "both",
		Patterns:  compile([]string{`both`}),
		Responses: []string{"static"},
		Action:    func(string) string { return "dynamic" },
	}}
	m := newTestMatcher(t, rules, &fixedRand{})
	require.Equal(t, "dynamic", m.Reply("both", nil))
}

func TestReply_FirstMatchingRuleWins(t *testing.T) {
	rules := []Rule{
		Canned("first", []string{`apple`}, "from first"),
		Canned("second", []string{`apple`, `pear`}, "from second"),
	}
	m := newTestMatcher(t, rules, &fixedRand{})

	require.Equal(t, "from first", m.Reply("apple and pear", nil))
	require.Equal(t, "from second", m.Reply("just a pear", nil))
}

func TestReply_AnyPatternInRuleMatches(t *testing.T) {
	rules := []Rule{Canned("fruit", []string{`apple`, `pear`, `plum`}, "fruit")}
	m := newTestMatcher(t, rules, &fixedRand{})

	for _, in := range []string{"apple", "a ripe PLUM", "pear?"} {
		require.Equal(t, "fruit", m.Reply(in, nil), in)
	}
}

func TestReply_RuleWithNothingToSayFallsThrough(t *testing.T) {
	rules := []Rule{
		{Name: "empty", Patterns: compile([]string{`apple`})},
		Canned("later", []string{`apple`}, "later rule"),
	}
	m := newTestMatcher(t, rules, &fixedRand{})
	require.Equal(t, "later rule", m.Reply("apple", nil))

	// With no later rule, content scoring takes over.
	m = newTestMatcher(t, rules[:1], &fixedRand{})
	require.Equal(t, "fallback one", m.Reply("apple", nil))
}

func TestReply_HistoryDoesNotChangeReply(t *testing.T) {
	rules := []Rule{Canned("greeting", []string{`^hello`}, "hi")}
	m := newTestMatcher(t, rules, &fixedRand{})
	history := []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "tomatoes"},
		{Role: domain.RoleAssistant, Content: "Based on the Garden page"},
	}

	require.Equal(t, m.Reply("hello", nil), m.Reply("hello", history))
	require.Equal(t, m.Reply("zzqx", nil), m.Reply("zzqx", history))
}

func TestReply_FallbackWhenNothingScores(t *testing.T) {
	for i, want := range testFallbacks {
		r := &fixedRand{idx: i}
		m := newTestMatcher(t, nil, r)
		require.Equal(t, want, m.Reply("xyzzy plugh", nil))
		require.Equal(t, []int{3}, r.seen)
	}
}

func TestReply_ContentReplyFormat(t *testing.T) {
	m := newTestMatcher(t, nil, &fixedRand{})

	// garden scores title, keyword and "the" twice; home only "the" twice.
	got := m.Reply("Show me the garden", nil)
	require.Equal(t,
		"Based on the Garden page: Tomatoes and peppers grow along the southern fence every summer."+
			" You might also be interested in: Home."+
			" Would you like to know more about anything specific?",
		got)
}

func TestReply_ContentReplyWithoutRelated(t *testing.T) {
	m := newTestMatcher(t, nil, &fixedRand{})

	got := m.Reply("vegetables", nil)
	require.Equal(t,
		"Based on the Garden page: Tomatoes and peppers grow along the southern fence every summer."+
			" Would you like to know more about anything specific?",
		got)
}

func TestReply_SentencePrefersWordOverlap(t *testing.T) {
	m := newTestMatcher(t, nil, &fixedRand{})

	got := m.Reply("sauce", nil)
	require.True(t, strings.HasPrefix(got, "Based on the Kitchen page: Tomatoes taste best in a sauce."), got)
}

func TestReply_EmptyMessageIsAnswered(t *testing.T) {
	m := newTestMatcher(t, nil, &fixedRand{})

	// An empty message sits inside every keyword, so garden's three keywords win.

	for _, in := range []string{"", "   "} {
		got := m.Reply(in, nil)
		require.True(t, strings.HasPrefix(got, "Based on the Garden page:"), got)
		require.True(t, strings.HasSuffix(got, "Would you like to know more about anything specific?"), got)
	}
}

func TestNew_CopiesTables(t *testing.T) {
	pages := []domain.PageContent{{Title: "Alpha", Content: "Alpha content that is long enough.", Keywords: []string{"alpha"}}}
	m, err := New(nil, pages, testFallbacks, WithRand(&fixedRand{}))
	require.NoError(t, err)

	pages[0].Title = "Mutated"
	pages[0].Keywords[0] = "mutated"

	ranked := m.Rank("alpha")
	require.Len(t, ranked, 1)
	require.Equal(t, "Alpha", ranked[0].Page.Title)
	require.Equal(t, []string{"alpha"}, ranked[0].Page.Keywords)
}
