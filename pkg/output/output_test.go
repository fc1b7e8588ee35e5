package output

import (
	"strings"
	"testing"
)

func TestGetOutputFormat(t *testing.T) {
	format := GetOutputFormat()
	if format != FormatJSON && format != FormatText && format != FormatTable {
		t.Errorf("Invalid output format: %v", format)
	}
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		isValid bool
	}{
		{"json", true},
		{"text", true},
		{"table", true},
		{"invalid", false},
		{"", false},
	}

	for _, tt := range tests {
		result := ValidateOutputFormat(tt.format)
		if result != tt.isValid {
			t.Errorf("ValidateOutputFormat(%s): got %v, want %v", tt.format, result, tt.isValid)
		}
	}
}

func TestPrintFunctions_NoNilPointers(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Print function panicked: %v", r)
		}
	}()

	data := map[string]interface{}{
		"handle": "testuser",
		"id":     123,
		"tags":   []string{"a", "b"},
	}

	Print("Test Data", data)
	PrintRecord("Record", data)
	PrintSuccess("Operation completed")
	PrintError("Operation failed")
	PrintInfo("Informational")
	PrintWarning("Heads up")

	rows := [][]string{
		{"one", "1"},
		{"two", "2"},
	}
	PrintList("Items", rows, []string{"name", "value"})
}

func TestFormatAsJSON(t *testing.T) {
	data := map[string]interface{}{"handle": "testuser"}

	jsonStr, err := FormatAsJSON(data)
	if err != nil {
		t.Fatalf("FormatAsJSON failed: %v", err)
	}
	if !strings.Contains(jsonStr, "testuser") {
		t.Errorf("JSON should contain the value, got %s", jsonStr)
	}
}

func TestFormatAsPrettyJSON(t *testing.T) {
	data := map[string]interface{}{"handle": "testuser", "posts": 5}

	jsonStr, err := FormatAsPrettyJSON(data)
	if err != nil {
		t.Fatalf("FormatAsPrettyJSON failed: %v", err)
	}
	if !strings.Contains(jsonStr, "\n") {
		t.Error("Pretty JSON should be indented")
	}
}

func TestRowsToRecords(t *testing.T) {
	records := rowsToRecords([]string{"name", "value"}, [][]string{
		{"likes", "30"},
		{"reposts"},
	})

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0]["value"] != "30" {
		t.Errorf("Expected value 30, got %s", records[0]["value"])
	}
	if _, ok := records[1]["value"]; ok {
		t.Error("Short rows should omit missing columns")
	}
}
