package service

import (
	"fmt"
	"strings"

	"github.com/pulseview/cli/pkg/api"
	"github.com/pulseview/cli/pkg/dashboard"
	"github.com/pulseview/cli/pkg/formatter"
	"github.com/pulseview/cli/pkg/markdown"
)

const chartBarWidth = 40

// renderAccount prints the profile card
func renderAccount(account *api.Account) {
	fmt.Printf("\n")
	keyValues := map[string]interface{}{
		"Handle":       "@" + account.Username,
		"Display Name": account.Name,
		"Bio":          account.Description,
		"Joined":       account.CreatedAt.Format("2006-01-02"),
	}
	if account.PublicMetrics != nil {
		keyValues["Followers"] = account.PublicMetrics.FollowersCount
		keyValues["Following"] = account.PublicMetrics.FollowingCount
		keyValues["Posts"] = account.PublicMetrics.TweetCount
	}
	formatter.PrintKeyValue(keyValues)
}

// renderPosts prints the visible posts as a table
func renderPosts(snap dashboard.Snapshot) {
	posts := snap.VisiblePosts()
	if len(posts) == 0 {
		formatter.PrintInfo("No posts loaded")
		return
	}

	fmt.Printf("\n")
	headers := []string{"Date", "Likes", "Reposts", "Replies", "Quotes", "Text"}
	rows := make([][]string, 0, len(posts))
	for _, post := range posts {
		likes, reposts, replies, quotes := "-", "-", "-", "-"
		if m := post.PublicMetrics; m != nil {
			likes = fmt.Sprintf("%d", m.LikeCount)
			reposts = fmt.Sprintf("%d", m.RetweetCount)
			replies = fmt.Sprintf("%d", m.ReplyCount)
			quotes = fmt.Sprintf("%d", m.QuoteCount)
			if post.Synthetic {
				likes += "*"
			}
		}
		rows = append(rows, []string{
			post.CreatedAt.Format("2006-01-02"),
			likes, reposts, replies, quotes,
			truncate(post.Text, 60),
		})
	}
	formatter.PrintTable(headers, rows)

	if snap.HasMore() {
		formatter.PrintInfo("More posts available (type 'more' to load the next page)")
	}
}

// renderSummary prints the derived engagement totals and averages
func renderSummary(posts []api.Post) {
	summary := dashboard.SummarizeEngagement(posts)
	if summary == nil {
		formatter.PrintInfo("No engagement metrics available")
		return
	}

	fmt.Printf("\n")
	formatter.Bold.Println("Engagement summary")
	formatter.PrintKeyValue(map[string]interface{}{
		"Posts counted": summary.Posts,
		"Likes":         fmt.Sprintf("%d total, %.1f avg", summary.TotalLikes, summary.AvgLikes),
		"Reposts":       fmt.Sprintf("%d total, %.1f avg", summary.TotalReposts, summary.AvgReposts),
		"Replies":       fmt.Sprintf("%d total, %.1f avg", summary.TotalReplies, summary.AvgReplies),
		"Quotes":        fmt.Sprintf("%d total, %.1f avg", summary.TotalQuotes, summary.AvgQuotes),
	})
}

// renderSentiment prints the three-way distribution plus per-post labels
func renderSentiment(result *api.SentimentResult) {
	fmt.Printf("\n")
	formatter.Bold.Println("Sentiment")
	fmt.Printf("Overall: %s\n", result.Overall.Sentiment)
	renderScoreBar("negative", result.Overall.Scores.Negative, formatter.Error)
	renderScoreBar("neutral ", result.Overall.Scores.Neutral, formatter.Warning)
	renderScoreBar("positive", result.Overall.Scores.Positive, formatter.Success)

	if len(result.Individual) > 0 {
		fmt.Printf("\n")
		for _, post := range result.Individual {
			fmt.Printf("  [%s] %s\n", post.Sentiment, truncate(post.Text, 70))
		}
	}
}

func renderScoreBar(label string, score float64, paint interface{ Printf(string, ...interface{}) (int, error) }) {
	width := int(score * float64(chartBarWidth))
	if width > chartBarWidth {
		width = chartBarWidth
	}
	paint.Printf("  %s %s %.2f\n", label, strings.Repeat("█", width), score)
}

// renderAI prints the narrative analysis, formatting markdown, or the
// inline failure when the result is error-flagged
func renderAI(analysis *api.AIAnalysis) {
	fmt.Printf("\n")
	formatter.Bold.Println("AI analysis")
	if analysis.Flagged() {
		formatter.PrintWarning("Analysis unavailable: %s", analysis.Error)
		return
	}
	fmt.Print(markdown.Render(analysis.Analysis))
	if analysis.Context != "" {
		formatter.PrintInfo("Context: %s", analysis.Context)
	}
}

// renderChart prints the 7-day engagement series as per-metric bar rows
func renderChart(chart *dashboard.DayChart) {
	fmt.Printf("\n")
	formatter.Bold.Println("Engagement over the last 7 days")

	for _, metric := range chart.MetricTypes() {
		values := chart.Series[metric]
		max := 0.0
		for _, v := range values {
			if v > max {
				max = v
			}
		}

		fmt.Printf("\n%s\n", metric)
		for i, day := range chart.Days {
			width := 0
			if max > 0 {
				width = int(values[i] / max * float64(chartBarWidth))
			}
			fmt.Printf("  %s %s %.0f\n", day, strings.Repeat("▇", width), values[i])
		}
	}
}

// renderTranscript prints the chat history
func renderTranscript(transcript []dashboard.ChatTurn) {
	for _, turn := range transcript {
		if turn.Role == dashboard.RoleUser {
			formatter.Info.Printf("You: ")
			fmt.Println(turn.Content)
		} else {
			formatter.Success.Printf("AI:  ")
			fmt.Println(turn.Content)
		}
	}
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
