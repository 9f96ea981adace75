package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdfchat/pdfchat-be/types"
)

func TestValidateAnswerRequest(t *testing.T) {
	err := ValidateAnswerRequest(types.AnswerRequest{
		Question: "What is the total?",
		PDFTexts: []string{"text a", "text b"},
	})

	assert.NoError(t, err)
}

func TestValidateAnswerRequestNilTexts(t *testing.T) {
	// nil marshals to JSON null, which violates the array schema
	err := ValidateAnswerRequest(types.AnswerRequest{
		Question: "anything",
		PDFTexts: nil,
	})

	require.Error(t, err)
	assert.True(t, types.IsAnswerError(err))
}

func TestParseAnswerResponse(t *testing.T) {
	resp, err := ParseAnswerResponse([]byte(`{"answer":"$42"}`))

	require.NoError(t, err)
	assert.Equal(t, "$42", resp.Answer)
}

func TestParseAnswerResponseMissingField(t *testing.T) {
	_, err := ParseAnswerResponse([]byte(`{"result":"$42"}`))

	require.Error(t, err)
	assert.True(t, types.IsAnswerError(err))
}

func TestParseAnswerResponseMistypedField(t *testing.T) {
	_, err := ParseAnswerResponse([]byte(`{"answer":42}`))

	require.Error(t, err)
	assert.True(t, types.IsAnswerError(err))
}

func TestParseAnswerResponseNotJSON(t *testing.T) {
	_, err := ParseAnswerResponse([]byte(`the answer is 42`))

	require.Error(t, err)
	assert.True(t, types.IsAnswerError(err))
}

func TestBuildAnswerPrompt(t *testing.T) {
	prompt := BuildAnswerPrompt(types.AnswerRequest{
		Question: "What is the total?",
		PDFTexts: []string{"[Content of file: a.pdf]\nalpha\n\n", "[Content of file: b.pdf]\nbeta\n\n"},
	})

	assert.Contains(t, prompt, "Question: What is the total?")
	assert.Contains(t, prompt, "[Content of file: a.pdf]")
	assert.Contains(t, prompt, "[Content of file: b.pdf]")
}
