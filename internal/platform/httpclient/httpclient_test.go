package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDoJSON_HeadersAndDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "secret" || r.URL.Path != "/v1/ping" {
			http.Error(w, "nope", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL+"/", time.Second, WithHeader("X-Api-Key", "secret"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	var out struct {
		OK bool `json:"ok"`
	}
	if err := c.DoJSON(context.Background(), http.MethodGet, "v1/ping", nil, &out); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !out.OK {
		t.Fatalf("expected ok=true")
	}
}

func TestDoJSON_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c, _ := New(srv.URL, time.Second)
	err := c.DoJSON(context.Background(), http.MethodGet, "/x", nil, nil)
	if StatusCode(err) != http.StatusBadGateway {
		t.Fatalf("expected 502 HTTPError, got %v", err)
	}
}

func TestNew_RejectsBadBaseURL(t *testing.T) {
	if _, err := New("not a url", 0); err == nil {
		t.Fatalf("expected error")
	}
	c, _ := New("", 0)
	if err := c.DoJSON(context.Background(), http.MethodGet, "/rel", nil, nil); err == nil {
		t.Fatalf("relative path without base url should fail")
	}
}
