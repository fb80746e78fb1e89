package probe

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestCheckHealthSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("path = %q, want /health", r.URL.Path)
		}
		if r.Header.Get("X-Tenant") != "loja1" {
			t.Errorf("X-Tenant header = %q, want loja1", r.Header.Get("X-Tenant"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", time.Second, map[string]string{"X-Tenant": "loja1"})
	res := client.CheckHealth(context.Background())

	if !res.Success {
		t.Fatalf("expected success, got error %q", res.Error)
	}
	if res.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", res.StatusCode)
	}
	raw, ok := res.Data.(json.RawMessage)
	if !ok || string(raw) != `{"status":"ok"}` {
		t.Errorf("Data = %v, want raw JSON body", res.Data)
	}
	if res.Timestamp.IsZero() {
		t.Errorf("Timestamp not set")
	}
}

func TestCheckHealthNon2xxIsCaptured(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("down for maintenance"))
	}))
	defer server.Close()

	res := NewClient(server.URL, time.Second, nil).CheckHealth(context.Background())

	if res.Success {
		t.Fatalf("expected failure")
	}
	if res.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("StatusCode = %d, want 503", res.StatusCode)
	}
	if res.Error == "" {
		t.Errorf("expected error message")
	}
	if res.Data != "down for maintenance" {
		t.Errorf("Data = %v, want text body", res.Data)
	}
}

func TestCheckHealthTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer server.Close()

	res := NewClient(server.URL, 20*time.Millisecond, nil).CheckHealth(context.Background())

	if res.Success {
		t.Fatalf("expected timeout to be reported as failure")
	}
	if res.StatusCode != 0 {
		t.Errorf("StatusCode = %d, want 0", res.StatusCode)
	}
	if res.Error == "" {
		t.Errorf("expected error message")
	}
}

func TestCheckEndpointsContinuesAfterFailure(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	results := NewClient(server.URL, time.Second, nil).CheckEndpoints(context.Background(), nil)

	if len(results) != len(DefaultEndpoints) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(DefaultEndpoints))
	}
	if results[0].Success {
		t.Errorf("expected /health to fail")
	}
	if !results[1].Success {
		t.Errorf("expected %s to succeed, got %q", results[1].Endpoint, results[1].Error)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestCheckEndpointsUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	results := NewClient(url, time.Second, nil).CheckEndpoints(context.Background(), []string{"health", "/status"})

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	for _, r := range results {
		if r.Success || r.Error == "" {
			t.Errorf("endpoint %s: expected captured failure, got %+v", r.Endpoint, r)
		}
	}
	if results[0].Endpoint != "/health" {
		t.Errorf("Endpoint = %q, want normalized /health", results[0].Endpoint)
	}
}
