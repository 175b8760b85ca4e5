package dto

import "timo-intelligence-be/internal/model"

// UpdateFieldRequest carries one field edit for a named section.
type UpdateFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

// UpdateSolutionRequest edits one field of one solution card.
type UpdateSolutionRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

// ReplaceContentRequest overwrites the whole document, used by the
// admin restore flow.
type ReplaceContentRequest struct {
	Content model.ContentDocument `json:"content" validate:"required"`
}

// SnapshotSummary lists one stored history entry.
type SnapshotSummary struct {
	Id      string `json:"id"`
	SavedAt string `json:"saved_at"`
}

type SaveStatusResponse struct {
	IsSaving  bool    `json:"is_saving"`
	LastSaved *string `json:"last_saved"`
	Error     string  `json:"error,omitempty"`
}
