package service

import (
	"context"

	"github.com/sashabaranov/go-openai"

	"github.com/pdfchat/pdfchat-be/types"
)

// OpenAIAnswerService answers questions through an OpenAI-compatible
// chat completion endpoint using structured output.
type OpenAIAnswerService struct {
	client *openai.Client
	model  string
}

func NewOpenAIAnswerService(baseURL, apiKey, model string) *OpenAIAnswerService {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL // Set this to your local LLM server URL
	}
	client := openai.NewClientWithConfig(config)
	return &OpenAIAnswerService{
		client: client,
		model:  model,
	}
}

func (s *OpenAIAnswerService) GenerateAnswer(ctx context.Context, req types.AnswerRequest) (types.AnswerResponse, error) {
	if err := ValidateAnswerRequest(req); err != nil {
		return types.AnswerResponse{}, err
	}

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: answerSystemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: BuildAnswerPrompt(req),
				},
			},
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
				JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
					Name:   "answer",
					Schema: &types.AnswerResponseSchema,
					Strict: true,
				},
			},
		},
	)
	if err != nil {
		return types.AnswerResponse{}, &types.AnswerError{Reason: "answer service call failed", Err: err}
	}

	if len(resp.Choices) == 0 {
		return types.AnswerResponse{}, &types.AnswerError{Reason: "no response generated"}
	}

	return ParseAnswerResponse([]byte(resp.Choices[0].Message.Content))
}
