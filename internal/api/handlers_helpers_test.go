// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerateETag(t *testing.T) {
	a := generateETag([]byte(`{"status":"success"}`))
	if a == "" {
		t.Fatal("generateETag() returned empty string")
	}
	if b := generateETag([]byte(`{"status":"success"}`)); a != b {
		t.Errorf("generateETag() not deterministic: %s != %s", a, b)
	}
	if c := generateETag([]byte(`{"status":"error"}`)); a == c {
		t.Error("different inputs produced the same ETag")
	}
}

func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"line\nbreak", `line\x0abreak`},
		{"tab\there", `tab\x09here`},
		{"del\x7f", `del\x7f`},
		{"Amélie", "Amélie"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := sanitizeLogValue(tt.in); got != tt.want {
				t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGetIntParam(t *testing.T) {
	tests := []struct {
		query   string
		want    int
		wantErr bool
	}{
		{"", 7, false},
		{"n=3", 3, false},
		{"n=%203%20", 3, false},
		{"n=-1", -1, false},
		{"n=abc", 0, true},
		{"n=2.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			got, err := getIntParam(r, "n", 7)
			if (err != nil) != tt.wantErr {
				t.Fatalf("getIntParam() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("getIntParam() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRespondError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, http.StatusBadRequest, "VALIDATION_ERROR", "bad input", nil)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if rec.Header().Get("ETag") == "" {
		t.Error("ETag header missing")
	}
}
