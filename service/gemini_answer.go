package service

import (
	"context"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/pdfchat/pdfchat-be/types"
)

// GeminiAnswerService answers questions through the Gemini API. The
// model is configured to emit JSON matching the answer schema.
type GeminiAnswerService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiAnswerService(ctx context.Context, apiKey, modelName string) (*GeminiAnswerService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(answerSystemPrompt)},
	}
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"answer": {Type: genai.TypeString},
		},
		Required: []string{"answer"},
	}

	return &GeminiAnswerService{
		client: client,
		model:  model,
	}, nil
}

func (s *GeminiAnswerService) GenerateAnswer(ctx context.Context, req types.AnswerRequest) (types.AnswerResponse, error) {
	if err := ValidateAnswerRequest(req); err != nil {
		return types.AnswerResponse{}, err
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(BuildAnswerPrompt(req)))
	if err != nil {
		return types.AnswerResponse{}, &types.AnswerError{Reason: "answer service call failed", Err: err}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return types.AnswerResponse{}, &types.AnswerError{Reason: "no response generated"}
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return types.AnswerResponse{}, &types.AnswerError{Reason: "unexpected response part"}
	}

	return ParseAnswerResponse([]byte(text))
}

// Close releases the underlying API client.
func (s *GeminiAnswerService) Close() error {
	return s.client.Close()
}
