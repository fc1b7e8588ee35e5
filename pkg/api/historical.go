package api

import (
	"fmt"
	"net/url"
	"time"

	"github.com/pulseview/cli/pkg/client"
	"github.com/pulseview/cli/pkg/logger"
)

// isoTimestamp is ISO 8601 without fractional seconds, the only timestamp
// form the historical endpoint accepts
const isoTimestamp = "2006-01-02T15:04:05Z"

// HistoricalMetricTypes are the per-post metric series requested for the
// engagement chart
var HistoricalMetricTypes = []string{
	"impression_count",
	"like_count",
	"retweet_count",
	"reply_count",
}

// HistoricalWindow is the time range of a metric series request
type HistoricalWindow struct {
	Start time.Time
	End   time.Time
}

// LastSevenDays returns the fixed 7-day window ending now
func LastSevenDays() HistoricalWindow {
	end := time.Now().UTC()
	return HistoricalWindow{Start: end.Add(-7 * 24 * time.Hour), End: end}
}

// GetHistoricalMetrics fetches day-granularity metric series for a set of
// post ids
func GetHistoricalMetrics(accountID string, postIDs []string, window HistoricalWindow) (*HistoricalResponse, error) {
	logger.Debug("Fetching historical metrics", "account_id", accountID, "posts", len(postIDs))

	params := url.Values{}
	for _, id := range postIDs {
		params.Add("tweet_ids", id)
	}
	for _, metric := range HistoricalMetricTypes {
		params.Add("requested_metrics", metric)
	}
	params.Set("start_time", window.Start.UTC().Format(isoTimestamp))
	params.Set("end_time", window.End.UTC().Format(isoTimestamp))
	params.Set("granularity", "day")

	var response HistoricalResponse

	resp, err := client.GetClient().R().
		SetQueryParamsFromValues(params).
		SetResult(&response).
		Get(fmt.Sprintf("/users/%s/historical", accountID))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, ParseError(resp)
	}

	if len(response.Errors) > 0 {
		return nil, FromUpstream(resp.StatusCode(), response.Errors)
	}

	return &response, nil
}
