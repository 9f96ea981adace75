package types

import (
	"github.com/sashabaranov/go-openai/jsonschema"
)

// AnswerRequest is the payload sent to the answer-generation backend.
// The full text of every processed document rides along with each
// question; there is no retrieval step.
type AnswerRequest struct {
	Question string   `json:"question"`
	PDFTexts []string `json:"pdfTexts"`
}

// AnswerResponse is the structured output expected back from the
// answer-generation backend.
type AnswerResponse struct {
	Answer string `json:"answer"`
}

// AnswerRequestSchema is the structural contract an AnswerRequest must
// satisfy before it crosses the service boundary.
var AnswerRequestSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"question": {
			Type:        jsonschema.String,
			Description: "The question to answer based on the PDF documents.",
		},
		"pdfTexts": {
			Type:        jsonschema.Array,
			Description: "The extracted text content from the uploaded PDF documents.",
			Items: &jsonschema.Definition{
				Type: jsonschema.String,
			},
		},
	},
	Required:             []string{"question", "pdfTexts"},
	AdditionalProperties: false,
}

// AnswerResponseSchema is the structural contract the backend's output
// must satisfy before it is used. A violation is a failed call, not a
// partial result.
var AnswerResponseSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"answer": {
			Type:        jsonschema.String,
			Description: "The generated answer to the question based on the PDF documents.",
		},
	},
	Required:             []string{"answer"},
	AdditionalProperties: false,
}
