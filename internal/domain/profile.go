package domain

// Profile is the site owner's public information used by synthesised replies.
type Profile struct {
	Name     string       `json:"name" mapstructure:"name"`
	Role     string       `json:"role" mapstructure:"role"`
	Email    string       `json:"email" mapstructure:"email"`
	Location string       `json:"location" mapstructure:"location"`
	Skills   []SkillGroup `json:"skills" mapstructure:"skills"`
	Projects []Project    `json:"projects" mapstructure:"projects"`
	Links    []Link       `json:"links" mapstructure:"links"`
}

type SkillGroup struct {
	Category string   `json:"category" mapstructure:"category"`
	Items    []string `json:"items" mapstructure:"items"`
}

type Project struct {
	Name        string `json:"name" mapstructure:"name"`
	Description string `json:"description" mapstructure:"description"`
}

type Link struct {
	Label string `json:"label" mapstructure:"label"`
	URL   string `json:"url" mapstructure:"url"`
}
