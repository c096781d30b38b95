package domain

// PageContent describes one site route for keyword lookup.
type PageContent struct {
	Path     string   `json:"path"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Keywords []string `json:"keywords"`
}
