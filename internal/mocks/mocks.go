package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/labellens/backend/internal/models"
	"github.com/pageza/labellens/backend/internal/service"
	"github.com/pageza/labellens/backend/internal/types"
)

// MockAnalysisService is a mock implementation of the AnalysisService interface
type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) Analyze(ctx context.Context, req types.AnalyzeRequest, userID *uuid.UUID) (*types.AnalysisResult, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.AnalysisResult), args.Error(1)
}

// MockCategoryResolver is a mock implementation of the CategoryResolver interface
type MockCategoryResolver struct {
	mock.Mock
}

func (m *MockCategoryResolver) Resolve(ctx context.Context, text, overridePrimary, overrideSecondary string) types.CategoryResolution {
	args := m.Called(ctx, text, overridePrimary, overrideSecondary)
	return args.Get(0).(types.CategoryResolution)
}

// MockAlternativeService is a mock implementation of the AlternativeService interface
type MockAlternativeService struct {
	mock.Mock
}

func (m *MockAlternativeService) ForCategory(ctx context.Context, req types.CategoryAlternativesRequest) (types.AlternativeSet, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(types.AlternativeSet), args.Error(1)
}

func (m *MockAlternativeService) ForThreshold(ctx context.Context, req types.ThresholdAlternativesRequest) (types.ThresholdResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(types.ThresholdResult), args.Error(1)
}

func (m *MockAlternativeService) Search(ctx context.Context, category types.CategoryResolution, baseline, limit int) (types.AlternativeSet, error) {
	args := m.Called(ctx, category, baseline, limit)
	return args.Get(0).(types.AlternativeSet), args.Error(1)
}

func (m *MockAlternativeService) DefaultLimit() int {
	args := m.Called()
	return args.Int(0)
}

// MockPreferenceService is a mock implementation of the PreferenceService interface
type MockPreferenceService struct {
	mock.Mock
}

func (m *MockPreferenceService) GetProfile(ctx context.Context, userID uuid.UUID) (types.PreferenceProfile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(types.PreferenceProfile), args.Error(1)
}

func (m *MockPreferenceService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdatePreferencesRequest) (types.PreferenceProfile, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(types.PreferenceProfile), args.Error(1)
}

// MockHistoryService is a mock implementation of the HistoryService interface
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) Record(ctx context.Context, userID uuid.UUID, productName, text string, result *types.AnalysisResult) error {
	args := m.Called(ctx, userID, productName, text, result)
	return args.Error(0)
}

func (m *MockHistoryService) List(ctx context.Context, userID uuid.UUID, limit int) ([]models.ScanHistory, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ScanHistory), args.Error(1)
}

// MockCatalogAdminService is a mock implementation of the CatalogAdminService interface
type MockCatalogAdminService struct {
	mock.Mock
}

func (m *MockCatalogAdminService) Status() service.CatalogStatus {
	args := m.Called()
	return args.Get(0).(service.CatalogStatus)
}

func (m *MockCatalogAdminService) Reload(ctx context.Context) (service.CatalogStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(service.CatalogStatus), args.Error(1)
}

// MockClassifier is a mock implementation of the Classifier interface
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, text string) (string, string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.String(1), args.Error(2)
}

// MockChatCompleter stands in for the go-openai client
type MockChatCompleter struct {
	mock.Mock
}

func (m *MockChatCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(openai.ChatCompletionResponse), args.Error(1)
}

// ChatReply builds a one-choice completion response.
func ChatReply(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}},
		},
	}
}
