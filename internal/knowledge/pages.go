// Package knowledge holds the assistant's built-in tables: the site's content
// index, the owner profile and the ordered rule table.
package knowledge

import "portfolio-assistant/internal/domain"

// DefaultPages returns the content index for the site's main routes. A fresh
// slice is returned on every call.
func DefaultPages() []domain.PageContent {
	return []domain.PageContent{
		{
			Path:  "/",
			Title: "Home",
			Content: "Welcome to my portfolio. I am a full-stack developer who builds fast, accessible web applications. " +
				"Browse featured projects, recent writing and ways to get in touch from here!",
			Keywords: []string{"home", "welcome", "portfolio", "developer", "overview"},
		},
		{
			Path:  "/about",
			Title: "About Me",
			Content: "I started programming in high school and turned it into a career in software engineering. " +
				"My background covers product teams, startups and freelance work for small businesses. " +
				"Outside of work I enjoy hiking, photography and mentoring new developers.",
			Keywords: []string{"background", "biography", "career", "education", "hobbies", "personal"},
		},
		{
			Path:  "/projects",
			Title: "Projects",
			Content: "A collection of web applications, open source libraries and experiments. " +
				"Each project lists its goals, stack and lessons learned. " +
				"Highlights include a content management dashboard, a realtime chat app and a developer productivity extension.",
			Keywords: []string{"projects", "portfolio", "apps", "open source", "case study", "github"},
		},
		{
			Path:  "/blog",
			Title: "Blog",
			Content: "The blog is where I write about web development, performance tuning and lessons from shipping software. " +
				"Posts are tagged by category so you can follow the blog topics you care about. " +
				"Readers can leave comments on every blog post.",
			Keywords: []string{"blog", "articles", "posts", "writing", "tutorials", "comments"},
		},
		{
			Path:  "/contact",
			Title: "Contact",
			Content: "Use the contact form to send a message about freelance work, collaborations or speaking. " +
				"I usually reply within two business days. " +
				"You can also reach me on GitHub and LinkedIn.",
			Keywords: []string{"contact", "email", "message", "hire", "freelance", "collaboration"},
		},
		{
			Path:  "/skills",
			Title: "Skills & Experience",
			Content: "Professional experience spans frontend engineering, backend services and cloud infrastructure. " +
				"Day to day I work with JavaScript, TypeScript, React, Node.js and PostgreSQL. " +
				"Previous roles include senior developer and technical lead positions.",
			Keywords: []string{"experience", "resume", "work history", "roles", "expertise"},
		},
	}
}
