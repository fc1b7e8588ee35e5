package api

import (
	"strings"
	"testing"
	"time"
)

func TestLastSevenDays_WindowSpan(t *testing.T) {
	window := LastSevenDays()

	span := window.End.Sub(window.Start)
	if span != 7*24*time.Hour {
		t.Errorf("Expected a 7-day window, got %v", span)
	}
	if window.End.After(time.Now().UTC().Add(time.Minute)) {
		t.Error("Window should end at roughly now")
	}
}

func TestISOTimestamp_NoFractionalSeconds(t *testing.T) {
	ts := time.Date(2025, 8, 20, 14, 30, 45, 123456789, time.UTC).Format(isoTimestamp)

	if ts != "2025-08-20T14:30:45Z" {
		t.Errorf("Expected second precision, got %s", ts)
	}
	if strings.Contains(ts, ".") {
		t.Error("Historical endpoint rejects fractional seconds")
	}
}

func TestHistoricalMetricTypes(t *testing.T) {
	want := map[string]bool{
		"impression_count": true,
		"like_count":       true,
		"retweet_count":    true,
		"reply_count":      true,
	}

	if len(HistoricalMetricTypes) != len(want) {
		t.Fatalf("Expected %d metric types, got %d", len(want), len(HistoricalMetricTypes))
	}
	for _, metric := range HistoricalMetricTypes {
		if !want[metric] {
			t.Errorf("Unexpected metric type %s", metric)
		}
	}
}
