package knowledge

import "portfolio-assistant/internal/domain"

// DefaultProfile is used when no profile is configured.
func DefaultProfile() domain.Profile {
	return domain.Profile{
		Name:     "Alex Morgan",
		Role:     "full-stack developer",
		Email:    "hello@alexmorgan.dev",
		Location: "Lisbon, Portugal",
		Skills: []domain.SkillGroup{
			{Category: "Frontend", Items: []string{"JavaScript", "TypeScript", "React", "Tailwind CSS"}},
			{Category: "Backend", Items: []string{"Node.js", "Go", "PostgreSQL", "REST APIs"}},
			{Category: "Tooling", Items: []string{"Git", "Docker", "AWS", "CI/CD"}},
		},
		Projects: []domain.Project{
			{Name: "Portfolio CMS", Description: "a content management dashboard for projects, posts and comments"},
			{Name: "ChatRoom", Description: "a realtime chat app with presence and typing indicators"},
			{Name: "FocusFlow", Description: "a browser extension that blocks distractions during deep work"},
		},
		Links: []domain.Link{
			{Label: "GitHub", URL: "https://github.com/alexmorgan"},
			{Label: "LinkedIn", URL: "https://www.linkedin.com/in/alexmorgan"},
		},
	}
}
