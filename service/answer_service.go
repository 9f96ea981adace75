package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/pdfchat/pdfchat-be/types"
)

// AnswerService generates one structured answer per question from the
// supplied document texts. Implementations must treat a response that
// violates the output schema as a failed call.
type AnswerService interface {
	GenerateAnswer(ctx context.Context, req types.AnswerRequest) (types.AnswerResponse, error)
}

// answerSystemPrompt constrains the model to answer only from the
// supplied texts.
const answerSystemPrompt = `You are an AI assistant that answers questions based on the content of PDF documents.

You will receive a question and a set of text extracts from PDF documents. Your goal is to provide a concise and accurate answer to the question, using only the information provided in the documents.`

// BuildAnswerPrompt renders the user-facing part of the instruction by
// plain concatenation of the question and every document text. The
// structural schema is the contract with the backend, not string
// formatting.
func BuildAnswerPrompt(req types.AnswerRequest) string {
	var b strings.Builder
	b.WriteString("Question: ")
	b.WriteString(req.Question)
	b.WriteString("\n\nPDF Texts:\n")
	for _, text := range req.PDFTexts {
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String()
}

// ValidateAnswerRequest checks a request against its schema before it
// crosses the service boundary.
func ValidateAnswerRequest(req types.AnswerRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return &types.AnswerError{Reason: "failed to encode answer request", Err: err}
	}
	var checked types.AnswerRequest
	if err := jsonschema.VerifySchemaAndUnmarshal(types.AnswerRequestSchema, payload, &checked); err != nil {
		return &types.AnswerError{Reason: "answer request violates schema", Err: err}
	}
	return nil
}

// ParseAnswerResponse validates raw backend output against the
// response schema. A missing or mistyped field is a terminal error for
// the call, never a partial result.
func ParseAnswerResponse(raw []byte) (types.AnswerResponse, error) {
	var resp types.AnswerResponse
	if err := jsonschema.VerifySchemaAndUnmarshal(types.AnswerResponseSchema, raw, &resp); err != nil {
		return types.AnswerResponse{}, &types.AnswerError{Reason: "answer response violates schema", Err: err}
	}
	return resp, nil
}
