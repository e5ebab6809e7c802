// Package domain holds DTOs for analyze http and service contracts
package domain

import (
	"encoding/json"

	"sentilex/internal/core/sentiment"
)

// Input formats
const (
	FormatPlain    = "plain"
	FormatMarkdown = "markdown"
)

// AnalyzeInput asks for one text to be scored and recorded.
// Text stays raw so a non-string value gets the same message as a missing one
type AnalyzeInput struct {
	Text   json.RawMessage `json:"text"   validate:"required" swaggertype:"string" example:"o produto é bom e o atendimento foi ótimo"`
	Format string          `json:"format,omitempty" validate:"omitempty,oneof=plain markdown" example:"plain"`
}

// AnalyzeOutput is the scored text and the id it was recorded under
type AnalyzeOutput struct {
	ID     string           `json:"id" example:"4b8f0a0e-6c3a-4a0f-9d7c-2f9e0f3b1a11"`
	Result sentiment.Result `json:"result"`
}

// BatchInput scores up to MaxBatch texts without recording them
type BatchInput struct {
	Texts  json.RawMessage `json:"texts"  validate:"required" swaggertype:"array,string"`
	Format string          `json:"format,omitempty" validate:"omitempty,oneof=plain markdown" example:"plain"`
}

// BatchItem is one batch entry, either a result or an error
type BatchItem struct {
	Index  int               `json:"index" example:"0"`
	Text   string            `json:"text,omitempty" example:"o produto é bom e o atendimento foi ótimo..."`
	Result *sentiment.Result `json:"result,omitempty"`
	Error  string            `json:"error,omitempty" example:"Texto deve ser uma string"`
}
