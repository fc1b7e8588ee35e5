package api

import "time"

// Account Types

type AccountMetrics struct {
	FollowersCount int `json:"followers_count"`
	FollowingCount int `json:"following_count"`
	TweetCount     int `json:"tweet_count"`
}

type Account struct {
	ID              string          `json:"id"`
	Username        string          `json:"username"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	ProfileImageURL string          `json:"profile_image_url,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	PublicMetrics   *AccountMetrics `json:"public_metrics,omitempty"`
}

type UserResponse struct {
	Data   *Account        `json:"data,omitempty"`
	Errors []UpstreamError `json:"errors,omitempty"`
}

// Post Types

type PostMetrics struct {
	LikeCount    int `json:"like_count"`
	RetweetCount int `json:"retweet_count"`
	ReplyCount   int `json:"reply_count"`
	QuoteCount   int `json:"quote_count"`
}

type Post struct {
	ID            string       `json:"id"`
	AuthorID      string       `json:"author_id,omitempty"`
	Text          string       `json:"text"`
	CreatedAt     time.Time    `json:"created_at"`
	PublicMetrics *PostMetrics `json:"public_metrics,omitempty"`

	// Synthetic marks placeholder metrics backfilled client-side when the
	// raw payload carried none.
	Synthetic bool `json:"-"`
}

type PostsMeta struct {
	NextToken   string `json:"next_token,omitempty"`
	ResultCount int    `json:"result_count,omitempty"`
}

type PostsIncludes struct {
	Users []Account `json:"users,omitempty"`
}

type PostsResponse struct {
	Data     []Post          `json:"data,omitempty"`
	Meta     *PostsMeta      `json:"meta,omitempty"`
	Includes *PostsIncludes  `json:"includes,omitempty"`
	Errors   []UpstreamError `json:"errors,omitempty"`
}

// UpstreamError is an entry of the platform API's errors array, passed
// through by the backend proxy
type UpstreamError struct {
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
	Status int    `json:"status,omitempty"`
}

// Sentiment Types (shapes match the backend's sentiment endpoint)

type SentimentScores struct {
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Positive float64 `json:"positive"`
}

type SentimentOverall struct {
	Sentiment string          `json:"sentiment"`
	Scores    SentimentScores `json:"scores"`
}

type SentimentPost struct {
	Text      string          `json:"text"`
	Sentiment string          `json:"sentiment"`
	Scores    SentimentScores `json:"scores"`
}

type SentimentResult struct {
	Overall    SentimentOverall `json:"overall"`
	Individual []SentimentPost  `json:"individual"`
}

type SentimentRequest struct {
	Tweets []string `json:"tweets"`
}

// AI Analysis Types

type AIAnalysis struct {
	Analysis string `json:"analysis"`
	Context  string `json:"context,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Flagged reports whether the analysis is an error placeholder rather
// than a real result
func (a *AIAnalysis) Flagged() bool {
	return a != nil && a.Error != ""
}

// Chat Types

type ChatRequest struct {
	Tweets      []string `json:"tweets"`
	ChatHistory string   `json:"chat_history"`
	UserMessage string   `json:"user_message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// Historical Metrics Types

type MetricValue struct {
	MetricType  string  `json:"metric_type"`
	MetricValue float64 `json:"metric_value"`
}

type SeriesEntry struct {
	Timestamp    string        `json:"timestamp"`
	MetricValues []MetricValue `json:"metric_values"`
}

type PostSeries struct {
	TweetID string        `json:"tweet_id"`
	Entries []SeriesEntry `json:"entries"`
}

type HistoricalResponse struct {
	Data   []PostSeries    `json:"data,omitempty"`
	Errors []UpstreamError `json:"errors,omitempty"`
}

// Health Types

type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}
