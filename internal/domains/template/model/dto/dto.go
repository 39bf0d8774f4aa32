package dto

import (
	"strings"

	"hotelinv/internal/domains/template/model"
)

type MessageResponse struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

type CategoryResponse struct {
	Name     string            `json:"name"`
	Messages []MessageResponse `json:"messages"`
}

type TemplatesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Total      int                `json:"total"`
}

func (r *TemplatesResponse) FromModel(t model.Templates) {
	r.Total = t.Len()
	r.Categories = make([]CategoryResponse, 0, len(t))

	for _, c := range t {
		category := CategoryResponse{Name: c.Name, Messages: make([]MessageResponse, 0, len(c.Messages))}
		for _, m := range c.Messages {
			category.Messages = append(category.Messages, MessageResponse{Label: m.Label, Text: m.Text})
		}
		r.Categories = append(r.Categories, category)
	}
}

// ReplaceTemplatesRequest carries a whole template file.
type ReplaceTemplatesRequest struct {
	Content string `json:"content" validate:"required,max=200000"`
}

type UpsertTemplateRequest struct {
	Category string `json:"category" validate:"required,max=100"`
	Label    string `json:"label"    validate:"omitempty,max=100"`
	Message  string `json:"message"  validate:"required"`
}

// Normalize upper-cases the category and falls back to the main message label.
func (r *UpsertTemplateRequest) Normalize() {
	r.Category = strings.ToUpper(strings.TrimSpace(r.Category))
	r.Label = strings.TrimSpace(r.Label)
	if r.Label == "" {
		r.Label = model.DefaultLabel
	}
	r.Message = strings.TrimSpace(r.Message)
}

type DeleteTemplateRequest struct {
	Category string `json:"category" validate:"required"`
	Label    string `json:"label"`
}
