package responder

import "regexp"

// Rule pairs trigger patterns with a reply. Any pattern matching the
// normalised message selects the rule. Action, when set, wins over Responses
// and receives the message exactly as the visitor typed it.
type Rule struct {
	Name      string
	Patterns  []*regexp.Regexp
	Responses []string
	Action    func(message string) string
}

// Canned builds a rule answered by a random pick from responses.
func Canned(name string, patterns []string, responses ...string) Rule {
	return Rule{Name: name, Patterns: compile(patterns), Responses: responses}
}

// Synthesized builds a rule answered by action.
func Synthesized(name string, patterns []string, action func(message string) string) Rule {
	return Rule{Name: name, Patterns: compile(patterns), Action: action}
}

func (r Rule) matches(normalized string) bool {
	for _, p := range r.Patterns {
		if p.MatchString(normalized) {
			return true
		}
	}
	return false
}

func compile(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}
