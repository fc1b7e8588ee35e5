package dashboard

import (
	"github.com/pulseview/cli/pkg/api"
)

// Backend is the slice of the analysis backend the view model depends on.
// Production code uses the REST implementation; tests substitute a fake.
type Backend interface {
	LookupAccount(handle string) (*api.Account, error)
	GetPosts(accountID string, opts api.PostsOptions) (*api.PostsResponse, error)
	AnalyzeSentiment(texts []string) (*api.SentimentResult, error)
	AnalyzeWithAI(texts []string) (*api.AIAnalysis, error)
	Chat(texts []string, history, message string) (*api.ChatResponse, error)
	GetHistoricalMetrics(accountID string, postIDs []string, window api.HistoricalWindow) (*api.HistoricalResponse, error)
	IsHealthy() bool
}

type restBackend struct{}

// NewRESTBackend returns the Backend backed by pkg/api
func NewRESTBackend() Backend {
	return restBackend{}
}

func (restBackend) LookupAccount(handle string) (*api.Account, error) {
	return api.LookupAccount(handle)
}

func (restBackend) GetPosts(accountID string, opts api.PostsOptions) (*api.PostsResponse, error) {
	return api.GetPosts(accountID, opts)
}

func (restBackend) AnalyzeSentiment(texts []string) (*api.SentimentResult, error) {
	return api.AnalyzeSentiment(texts)
}

func (restBackend) AnalyzeWithAI(texts []string) (*api.AIAnalysis, error) {
	return api.AnalyzeWithAI(texts)
}

func (restBackend) Chat(texts []string, history, message string) (*api.ChatResponse, error) {
	return api.Chat(texts, history, message)
}

func (restBackend) GetHistoricalMetrics(accountID string, postIDs []string, window api.HistoricalWindow) (*api.HistoricalResponse, error) {
	return api.GetHistoricalMetrics(accountID, postIDs, window)
}

func (restBackend) IsHealthy() bool {
	return api.IsHealthy()
}
