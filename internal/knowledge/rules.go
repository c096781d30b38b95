package knowledge

import (
	"fmt"
	"strings"

	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/responder"
)

// Fallbacks are used when neither a rule nor the content index recognises a
// message.
var Fallbacks = []string{
	"I'm not sure I understood that. You can ask me about skills, projects, the blog or how to get in touch.",
	"Hmm, I don't have an answer for that yet. Try asking about projects, experience or contact details.",
	"Could you rephrase that? I know most about this site's projects, skills and blog.",
}

// Rules returns the ordered rule table. Earlier rules win.
func Rules(p domain.Profile) []responder.Rule {
	return []responder.Rule{
		responder.Canned("greeting",
			[]string{`^(hi|hello|hey|greetings|howdy)\b`, `^good (morning|afternoon|evening)\b`},
			"Hello! I'm the assistant for this portfolio. Ask me about skills, projects or the blog.",
			"Hi there! How can I help you explore the site today?",
			"Hey! Want to hear about recent projects or how to get in touch?",
		),
		responder.Canned("thanks",
			[]string{`\b(thanks|thank you|thx|cheers)\b`, `\bappreciate it\b`},
			"You're welcome! Anything else you'd like to know?",
			"Happy to help! Feel free to ask anything else.",
			"Glad I could help!",
		),
		responder.Canned("farewell",
			[]string{`\b(bye|goodbye|see you|farewell)\b`},
			"Goodbye! Thanks for stopping by.",
			"See you soon! Don't forget to check out the blog.",
		),
		responder.Synthesized("skills",
			[]string{`\bskills?\b`, `\btechnolog(y|ies)\b`, `\btech stack\b`, `\b(programming )?languages?\b`, `\bframeworks?\b`},
			func(string) string { return skillsReply(p) },
		),
		responder.Synthesized("projects",
			[]string{`\bprojects?\b`, `\bwhat have you (built|made)\b`, `\bwork samples?\b`},
			func(string) string { return projectsReply(p) },
		),
		responder.Synthesized("contact",
			[]string{`\bcontact\b`, `\be-?mail\b`, `\breach (you|out)\b`, `\bget in touch\b`, `\bhire\b`},
			func(string) string { return contactReply(p) },
		),
		responder.Canned("help",
			[]string{`\bhelp\b`, `\bwhat can you do\b`},
			"I can tell you about skills, projects, experience, the blog and how to get in touch. Just ask!",
		),
		responder.Canned("identity",
			[]string{`\bwho are you\b`, `\byour name\b`, `\bare you (a )?(bot|robot|human|ai)\b`},
			fmt.Sprintf("I'm a simple assistant for %s's portfolio. I match your question against the site's content.", p.Name),
		),
	}
}

func skillsReply(p domain.Profile) string {
	if len(p.Skills) == 0 {
		return "Skills are listed on the Skills & Experience page."
	}
	parts := make([]string, 0, len(p.Skills))
	for _, g := range p.Skills {
		parts = append(parts, fmt.Sprintf("%s: %s", g.Category, strings.Join(g.Items, ", ")))
	}
	return fmt.Sprintf("%s works with %s. Check the Skills & Experience page for details.", p.Name, strings.Join(parts, "; "))
}

func projectsReply(p domain.Profile) string {
	if len(p.Projects) == 0 {
		return "Take a look at the Projects page for recent work."
	}
	parts := make([]string, 0, len(p.Projects))
	for _, pr := range p.Projects {
		parts = append(parts, fmt.Sprintf("%s (%s)", pr.Name, pr.Description))
	}
	return fmt.Sprintf("Featured projects include %s. The Projects page has the full list.", strings.Join(parts, ", "))
}

func contactReply(p domain.Profile) string {
	var b strings.Builder
	b.WriteString("You can use the form on the Contact page")
	if p.Email != "" {
		fmt.Fprintf(&b, " or email %s", p.Email)
	}
	b.WriteString(".")
	if len(p.Links) > 0 {
		labels := make([]string, 0, len(p.Links))
		for _, l := range p.Links {
			labels = append(labels, fmt.Sprintf("%s (%s)", l.Label, l.URL))
		}
		fmt.Fprintf(&b, " You'll also find %s on %s.", p.Name, strings.Join(labels, ", "))
	}
	return b.String()
}

// NewMatcher builds a matcher over the default pages and the rule table for p.
func NewMatcher(p domain.Profile, opts ...responder.Option) (*responder.Matcher, error) {
	return responder.New(Rules(p), DefaultPages(), Fallbacks, opts...)
}
