package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/pageza/labellens/backend/internal/taxonomy"
)

// Classifier guesses a product's category pair from label text. Guesses are
// untrusted until checked against the taxonomy.
type Classifier interface {
	Classify(ctx context.Context, text string) (primary, secondary string, err error)
}

// ChatCompleter is the slice of the go-openai client the classifier uses.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// LLMClassifier asks an OpenAI-compatible chat endpoint for a category.
type LLMClassifier struct {
	client   ChatCompleter
	model    string
	taxonomy *taxonomy.Taxonomy
	logger   *zap.Logger
}

// NewLLMClassifier builds a classifier for baseURL (empty means the OpenAI API).
func NewLLMClassifier(baseURL, apiKey, model string, tax *taxonomy.Taxonomy, logger *zap.Logger) *LLMClassifier {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
	return NewLLMClassifierWithClient(openai.NewClientWithConfig(clientConfig), model, tax, logger)
}

func NewLLMClassifierWithClient(client ChatCompleter, model string, tax *taxonomy.Taxonomy, logger *zap.Logger) *LLMClassifier {
	return &LLMClassifier{
		client:   client,
		model:    model,
		taxonomy: tax,
		logger:   logger.Named("classifier"),
	}
}

const classifierSystemMessage = "You classify packaged food products. Reply with a single JSON object and nothing else."

// maxPromptText bounds how much label text is sent.
const maxPromptText = 2000

// BuildClassificationPrompt lists the closed taxonomy and the label text.
func BuildClassificationPrompt(tax *taxonomy.Taxonomy, text string) string {
	var b strings.Builder
	b.WriteString("Classify the product described by this ingredient label into exactly one primary category and one secondary category from the list below.\n\n")
	for _, g := range tax.Groups() {
		fmt.Fprintf(&b, "- %s: %s\n", g.Primary, strings.Join(g.Secondaries, ", "))
	}
	if len(text) > maxPromptText {
		text = text[:maxPromptText]
	}
	b.WriteString("\nLabel text:\n")
	b.WriteString(text)
	b.WriteString("\n\nRespond as {\"primary\": \"...\", \"secondary\": \"...\"} using the names exactly as listed.")
	return b.String()
}

type classification struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// Classify makes a single attempt. The caller owns the deadline.
func (c *LLMClassifier) Classify(ctx context.Context, text string) (string, string, error) {
	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: classifierSystemMessage},
			{Role: openai.ChatMessageRoleUser, Content: BuildClassificationPrompt(c.taxonomy, text)},
		},
		Temperature: 0,
	})
	if err != nil {
		c.logger.Warn("Classification request failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", "", fmt.Errorf("classification request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", "", fmt.Errorf("no choices in response")
	}

	raw, err := ExtractJSON(resp.Choices[0].Message.Content)
	if err != nil {
		return "", "", err
	}
	var out classification
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return "", "", fmt.Errorf("unmarshal classification: %w", err)
	}

	c.logger.Debug("Classification completed",
		zap.String("primary", out.Primary),
		zap.String("secondary", out.Secondary),
		zap.Duration("elapsed", time.Since(start)))
	return strings.TrimSpace(out.Primary), strings.TrimSpace(out.Secondary), nil
}
