package api

import (
	"github.com/pulseview/cli/pkg/client"
	"github.com/pulseview/cli/pkg/logger"
)

// AnalyzeSentiment scores a batch of post texts on the backend
func AnalyzeSentiment(texts []string) (*SentimentResult, error) {
	logger.Debug("Analyzing sentiment", "count", len(texts))

	var response SentimentResult

	resp, err := client.GetClient().R().
		SetBody(SentimentRequest{Tweets: texts}).
		SetResult(&response).
		Post("/analyze/sentiment")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return &response, nil
}

// AnalyzeWithAI requests a narrative analysis of a batch of post texts
func AnalyzeWithAI(texts []string) (*AIAnalysis, error) {
	logger.Debug("Requesting AI analysis", "count", len(texts))

	var response AIAnalysis

	resp, err := client.GetClient().R().
		SetBody(SentimentRequest{Tweets: texts}).
		SetResult(&response).
		Post("/analyze/tweets/ai")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return &response, nil
}

// Chat sends a conversational query about a post set along with the
// serialized prior transcript
func Chat(texts []string, history, message string) (*ChatResponse, error) {
	logger.Debug("Sending chat message", "history_len", len(history))

	var response ChatResponse

	resp, err := client.GetClient().R().
		SetBody(ChatRequest{
			Tweets:      texts,
			ChatHistory: history,
			UserMessage: message,
		}).
		SetResult(&response).
		Post("/analyze/tweets/chat")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	return &response, nil
}
