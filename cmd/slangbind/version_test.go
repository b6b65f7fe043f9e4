package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestRenderVersionPrettyIncludesHashAndDateOnlyWhenRequested(t *testing.T) {
	var out bytes.Buffer
	renderVersionPretty(&out, false, false)
	if strings.Contains(out.String(), "commit:") || strings.Contains(out.String(), "built:") {
		t.Fatalf("renderVersionPretty(false, false) unexpectedly included hash/date: %q", out.String())
	}

	out.Reset()
	renderVersionPretty(&out, true, true)
	if !strings.Contains(out.String(), "commit:") || !strings.Contains(out.String(), "built:") {
		t.Fatalf("renderVersionPretty(true, true) missing hash/date: %q", out.String())
	}
}

func TestRenderVersionJSONRoundTrips(t *testing.T) {
	var out bytes.Buffer
	if err := renderVersionJSON(&out, true, false); err != nil {
		t.Fatalf("renderVersionJSON: %v", err)
	}
	var payload versionPayload
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("decoding JSON output: %v", err)
	}
	if payload.Tool != "slangbind" {
		t.Errorf("Tool = %q, want slangbind", payload.Tool)
	}
	if payload.GitCommit != "unknown" {
		t.Errorf("GitCommit = %q, want \"unknown\" placeholder", payload.GitCommit)
	}
	if payload.BuildDate != "" {
		t.Errorf("BuildDate = %q, want empty (not requested)", payload.BuildDate)
	}
}

func TestValueOrUnknown(t *testing.T) {
	if got := valueOrUnknown(""); got != "unknown" {
		t.Errorf("valueOrUnknown(\"\") = %q, want unknown", got)
	}
	if got := valueOrUnknown("abc123"); got != "abc123" {
		t.Errorf("valueOrUnknown(%q) = %q, want unchanged", "abc123", got)
	}
}
