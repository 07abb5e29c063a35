package models

// SearchResult holds the resources matching a search text.
type SearchResult struct {
	Notebooks []Notebook    `json:"notebooks"`
	Tags      []Tag         `json:"tags"`
	Notes     []NoteSummary `json:"notes"`
}
