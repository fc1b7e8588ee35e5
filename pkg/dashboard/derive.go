package dashboard

import (
	"errors"
	"sort"
	"time"

	"github.com/pulseview/cli/pkg/api"
)

// ErrNoChartData signals that a historical series contained no valid
// entries to group
var ErrNoChartData = errors.New("no chartable data")

// EngagementSummary holds the totals and per-post averages of the four
// engagement counts, derived from the currently loaded posts
type EngagementSummary struct {
	Posts int

	TotalLikes   int
	TotalReposts int
	TotalReplies int
	TotalQuotes  int

	AvgLikes   float64
	AvgReposts float64
	AvgReplies float64
	AvgQuotes  float64
}

// SummarizeEngagement recomputes the summary from the given posts. Posts
// without real metrics are excluded, including those carrying synthetic
// zero backfill; with none left the summary is undefined and nil is
// returned.
func SummarizeEngagement(posts []api.Post) *EngagementSummary {
	var s EngagementSummary
	for _, p := range posts {
		if p.PublicMetrics == nil || p.Synthetic {
			continue
		}
		s.Posts++
		s.TotalLikes += p.PublicMetrics.LikeCount
		s.TotalReposts += p.PublicMetrics.RetweetCount
		s.TotalReplies += p.PublicMetrics.ReplyCount
		s.TotalQuotes += p.PublicMetrics.QuoteCount
	}

	if s.Posts == 0 {
		return nil
	}

	n := float64(s.Posts)
	s.AvgLikes = float64(s.TotalLikes) / n
	s.AvgReposts = float64(s.TotalReposts) / n
	s.AvgReplies = float64(s.TotalReplies) / n
	s.AvgQuotes = float64(s.TotalQuotes) / n
	return &s
}

// DayChart is a historical series grouped by calendar day, ready for
// rendering: Days are ordered labels, Series maps each metric type to one
// value per day aligned with Days.
type DayChart struct {
	Days   []string
	Series map[string][]float64
}

// GroupHistoricalByDay buckets series entries by the calendar day of their
// timestamp, summing same-day values per metric type. Entries missing a
// timestamp or metric values are skipped; with zero valid entries it
// returns ErrNoChartData.
func GroupHistoricalByDay(entries []api.SeriesEntry) (*DayChart, error) {
	perDay := make(map[string]map[string]float64)
	metricTypes := make(map[string]struct{})

	for _, entry := range entries {
		if entry.Timestamp == "" || len(entry.MetricValues) == 0 {
			continue
		}
		day, ok := dayLabel(entry.Timestamp)
		if !ok {
			continue
		}

		bucket := perDay[day]
		if bucket == nil {
			bucket = make(map[string]float64)
			perDay[day] = bucket
		}
		for _, mv := range entry.MetricValues {
			if mv.MetricType == "" {
				continue
			}
			bucket[mv.MetricType] += mv.MetricValue
			metricTypes[mv.MetricType] = struct{}{}
		}
	}

	if len(perDay) == 0 {
		return nil, ErrNoChartData
	}

	days := make([]string, 0, len(perDay))
	for day := range perDay {
		days = append(days, day)
	}
	// ISO day labels sort chronologically as strings.
	sort.Strings(days)

	chart := &DayChart{
		Days:   days,
		Series: make(map[string][]float64, len(metricTypes)),
	}
	for metric := range metricTypes {
		values := make([]float64, len(days))
		for i, day := range days {
			values[i] = perDay[day][metric]
		}
		chart.Series[metric] = values
	}

	return chart, nil
}

// MetricTypes returns the chart's metric types in stable order
func (c *DayChart) MetricTypes() []string {
	types := make([]string, 0, len(c.Series))
	for metric := range c.Series {
		types = append(types, metric)
	}
	sort.Strings(types)
	return types
}

// dayLabel derives the calendar-day label from a timestamp, tolerating
// both RFC 3339 and bare dates
func dayLabel(ts string) (string, bool) {
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t.UTC().Format("2006-01-02"), true
	}
	if t, err := time.Parse("2006-01-02", ts); err == nil {
		return t.Format("2006-01-02"), true
	}
	return "", false
}
