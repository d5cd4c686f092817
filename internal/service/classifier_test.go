package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/labellens/backend/internal/mocks"
	"github.com/pageza/labellens/backend/internal/service"
	"github.com/pageza/labellens/backend/internal/taxonomy"
)

func TestBuildClassificationPromptListsTaxonomy(t *testing.T) {
	tax := taxonomy.Default()
	prompt := service.BuildClassificationPrompt(tax, scenarioText)

	for _, p := range tax.Primaries() {
		assert.Contains(t, prompt, p)
	}
	assert.Contains(t, prompt, "Potato Chips")
	assert.Contains(t, prompt, scenarioText)
}

func TestLLMClassifierParsesFencedReply(t *testing.T) {
	client := new(mocks.MockChatCompleter)
	client.On("CreateChatCompletion", mock.Anything, mock.MatchedBy(func(req openai.ChatCompletionRequest) bool {
		return req.Model == "test-model" && len(req.Messages) == 2 && strings.Contains(req.Messages[1].Content, scenarioText)
	})).Return(mocks.ChatReply("<think>chips, clearly</think>\n```json\n{\"primary\": \"Snacks & Savouries\", \"secondary\": \" Potato Chips \"}\n```"), nil)

	classifier := service.NewLLMClassifierWithClient(client, "test-model", taxonomy.Default(), zap.NewNop())
	primary, secondary, err := classifier.Classify(context.Background(), scenarioText)
	require.NoError(t, err)
	assert.Equal(t, "Snacks & Savouries", primary)
	assert.Equal(t, "Potato Chips", secondary)
	client.AssertExpectations(t)
}

func TestLLMClassifierErrors(t *testing.T) {
	tests := []struct {
		name  string
		reply openai.ChatCompletionResponse
		err   error
	}{
		{name: "transport", err: errors.New("connection reset")},
		{name: "no choices", reply: openai.ChatCompletionResponse{}},
		{name: "prose only", reply: mocks.ChatReply("I think this is a snack.")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mocks.MockChatCompleter)
			client.On("CreateChatCompletion", mock.Anything, mock.Anything).Return(tt.reply, tt.err).Once()

			classifier := service.NewLLMClassifierWithClient(client, "test-model", taxonomy.Default(), zap.NewNop())
			_, _, err := classifier.Classify(context.Background(), scenarioText)
			assert.Error(t, err)
		})
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "bare object", input: `{"primary":"Beverages"}`, want: `{"primary":"Beverages"}`},
		{name: "surrounded by prose", input: "Sure! {\"a\": {\"b\": \"}\"}} hope that helps", want: `{"a": {"b": "}"}}`},
		{name: "think tags", input: "<think>{not json}</think>{\"ok\":true}", want: `{"ok":true}`},
		{name: "nothing", input: "no json here", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ExtractJSON(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
