package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSONSetsContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]string{"k": "v"}, nil)

	if rec.Header().Get("Content-Type") != "application/json" {
		t.Fatalf("expected json content type, got %q", rec.Header().Get("Content-Type"))
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestWriteErrorIncludesRequestID(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/players/lookup", nil)
	req.Header.Set("X-Request-ID", "req-42")

	writeError(rec, req, http.StatusBadRequest, "bad input", nil)

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "bad input" {
		t.Fatalf("expected error message, got %q", body["error"])
	}
	if body["requestId"] != "req-42" {
		t.Fatalf("expected request id echoed, got %q", body["requestId"])
	}
}

func TestWriteErrorWithoutRequestID(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/players/lookup", nil)

	writeError(rec, req, http.StatusNotFound, "missing", nil)

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := body["requestId"]; ok {
		t.Fatalf("expected no request id field, got %+v", body)
	}
}
