package dto

// TemplateInfo describes one downloadable spreadsheet template.
type TemplateInfo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
