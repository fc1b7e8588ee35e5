package dashboard

import (
	"errors"
	"testing"

	"github.com/pulseview/cli/pkg/api"
)

func TestSummarizeEngagement(t *testing.T) {
	posts := []api.Post{
		{ID: "1", PublicMetrics: &api.PostMetrics{LikeCount: 10, RetweetCount: 2, ReplyCount: 1, QuoteCount: 0}},
		{ID: "2", PublicMetrics: &api.PostMetrics{LikeCount: 20, RetweetCount: 4, ReplyCount: 3, QuoteCount: 1}},
	}

	summary := SummarizeEngagement(posts)
	if summary == nil {
		t.Fatal("Summary should be defined")
	}

	if summary.TotalLikes != 30 {
		t.Errorf("Expected totalLikes=30, got %d", summary.TotalLikes)
	}
	if summary.AvgLikes != 15.0 {
		t.Errorf("Expected avgLikes=15.0, got %f", summary.AvgLikes)
	}
	if summary.TotalReposts != 6 || summary.AvgReposts != 3.0 {
		t.Errorf("Repost aggregates wrong: %d total, %f avg", summary.TotalReposts, summary.AvgReposts)
	}
	if summary.TotalReplies != 4 || summary.AvgReplies != 2.0 {
		t.Errorf("Reply aggregates wrong: %d total, %f avg", summary.TotalReplies, summary.AvgReplies)
	}
	if summary.TotalQuotes != 1 || summary.AvgQuotes != 0.5 {
		t.Errorf("Quote aggregates wrong: %d total, %f avg", summary.TotalQuotes, summary.AvgQuotes)
	}
}

func TestSummarizeEngagement_Undefined(t *testing.T) {
	if SummarizeEngagement(nil) != nil {
		t.Error("Empty post list should yield no summary")
	}

	noMetrics := []api.Post{{ID: "1"}, {ID: "2"}}
	if SummarizeEngagement(noMetrics) != nil {
		t.Error("Posts without metrics should yield no summary")
	}
}

func TestSummarizeEngagement_SkipsPostsWithoutMetrics(t *testing.T) {
	posts := []api.Post{
		{ID: "1", PublicMetrics: &api.PostMetrics{LikeCount: 10}},
		{ID: "2"},
	}

	summary := SummarizeEngagement(posts)
	if summary == nil {
		t.Fatal("Summary should be defined")
	}
	if summary.Posts != 1 {
		t.Errorf("Only posts with metrics count, got %d", summary.Posts)
	}
	if summary.AvgLikes != 10.0 {
		t.Errorf("Average should use the counted posts, got %f", summary.AvgLikes)
	}
}

func TestSummarizeEngagement_ExcludesBackfilledPosts(t *testing.T) {
	posts := []api.Post{
		{ID: "1", PublicMetrics: &api.PostMetrics{LikeCount: 10, RetweetCount: 2}},
		{ID: "2", PublicMetrics: &api.PostMetrics{}, Synthetic: true},
	}

	summary := SummarizeEngagement(posts)
	if summary == nil {
		t.Fatal("Summary should be defined")
	}
	if summary.Posts != 1 {
		t.Errorf("Backfilled posts must not count, got %d", summary.Posts)
	}
	if summary.AvgLikes != 10.0 {
		t.Errorf("Backfilled zeros must not dilute averages, got %f", summary.AvgLikes)
	}

	allSynthetic := []api.Post{
		{ID: "1", PublicMetrics: &api.PostMetrics{}, Synthetic: true},
	}
	if SummarizeEngagement(allSynthetic) != nil {
		t.Error("A list of only backfilled posts should yield no summary")
	}
}

func TestGroupHistoricalByDay_SumsSameDayValues(t *testing.T) {
	entries := []api.SeriesEntry{
		{Timestamp: "2025-08-20T08:00:00Z", MetricValues: []api.MetricValue{
			{MetricType: "like_count", MetricValue: 3},
			{MetricType: "impression_count", MetricValue: 100},
		}},
		{Timestamp: "2025-08-20T18:30:00Z", MetricValues: []api.MetricValue{
			{MetricType: "like_count", MetricValue: 2},
		}},
		{Timestamp: "2025-08-21T09:00:00Z", MetricValues: []api.MetricValue{
			{MetricType: "like_count", MetricValue: 7},
		}},
	}

	chart, err := GroupHistoricalByDay(entries)
	if err != nil {
		t.Fatalf("GroupHistoricalByDay failed: %v", err)
	}

	wantDays := []string{"2025-08-20", "2025-08-21"}
	if len(chart.Days) != 2 || chart.Days[0] != wantDays[0] || chart.Days[1] != wantDays[1] {
		t.Errorf("Expected ordered days %v, got %v", wantDays, chart.Days)
	}

	likes := chart.Series["like_count"]
	if len(likes) != 2 || likes[0] != 5 || likes[1] != 7 {
		t.Errorf("Same-day values should be summed, got %v", likes)
	}

	impressions := chart.Series["impression_count"]
	if len(impressions) != 2 || impressions[0] != 100 || impressions[1] != 0 {
		t.Errorf("Days without a metric should be zero-filled, got %v", impressions)
	}
}

func TestGroupHistoricalByDay_SkipsMalformedEntries(t *testing.T) {
	entries := []api.SeriesEntry{
		{MetricValues: []api.MetricValue{{MetricType: "like_count", MetricValue: 3}}}, // no timestamp
		{Timestamp: "2025-08-20T08:00:00Z"},                                           // no metric values
		{Timestamp: "not-a-time", MetricValues: []api.MetricValue{{MetricType: "like_count", MetricValue: 1}}},
		{Timestamp: "2025-08-21T10:00:00Z", MetricValues: []api.MetricValue{{MetricType: "like_count", MetricValue: 4}}},
	}

	chart, err := GroupHistoricalByDay(entries)
	if err != nil {
		t.Fatalf("Malformed entries should be skipped, not fatal: %v", err)
	}

	if len(chart.Days) != 1 || chart.Days[0] != "2025-08-21" {
		t.Errorf("Only the valid entry should be grouped, got %v", chart.Days)
	}
	if chart.Series["like_count"][0] != 4 {
		t.Errorf("Expected value 4, got %v", chart.Series["like_count"])
	}
}

func TestGroupHistoricalByDay_NoValidEntries(t *testing.T) {
	entries := []api.SeriesEntry{
		{MetricValues: []api.MetricValue{{MetricType: "like_count", MetricValue: 3}}},
		{Timestamp: "2025-08-20T08:00:00Z"},
	}

	_, err := GroupHistoricalByDay(entries)
	if !errors.Is(err, ErrNoChartData) {
		t.Errorf("Expected ErrNoChartData, got %v", err)
	}

	if _, err := GroupHistoricalByDay(nil); !errors.Is(err, ErrNoChartData) {
		t.Errorf("Expected ErrNoChartData for empty input, got %v", err)
	}
}

func TestGroupHistoricalByDay_BareDateTimestamps(t *testing.T) {
	entries := []api.SeriesEntry{
		{Timestamp: "2025-08-19", MetricValues: []api.MetricValue{{MetricType: "reply_count", MetricValue: 2}}},
	}

	chart, err := GroupHistoricalByDay(entries)
	if err != nil {
		t.Fatalf("Bare dates should be accepted: %v", err)
	}
	if chart.Days[0] != "2025-08-19" {
		t.Errorf("Expected day label 2025-08-19, got %s", chart.Days[0])
	}
}

func TestDayChart_MetricTypesSorted(t *testing.T) {
	chart := &DayChart{
		Series: map[string][]float64{
			"retweet_count":    {1},
			"impression_count": {2},
			"like_count":       {3},
		},
	}

	types := chart.MetricTypes()
	want := []string{"impression_count", "like_count", "retweet_count"}
	for i, metric := range want {
		if types[i] != metric {
			t.Errorf("Expected %s at %d, got %s", metric, i, types[i])
		}
	}
}
