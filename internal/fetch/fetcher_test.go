package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// TestClientFetch tests the production fetcher against a local server.
func TestClientFetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the body of a successful response", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html><body>merhaba</body></html>"))
		}))
		defer srv.Close()

		c := NewClient(5 * time.Second)
		body, err := c.Fetch(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(body, "merhaba") {
			t.Errorf("expected body content, got %q", body)
		}
	})

	t.Run("sends the configured user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte("ok"))
		}))
		defer srv.Close()

		c := NewClient(5*time.Second, WithUserAgent("custom-agent/2.0"))
		if _, err := c.Fetch(context.Background(), srv.URL); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotUA != "custom-agent/2.0" {
			t.Errorf("expected custom user agent, got %q", gotUA)
		}
	})

	t.Run("non-2xx status yields a status error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer srv.Close()

		c := NewClient(5 * time.Second)
		_, err := c.Fetch(context.Background(), srv.URL)

		var fe *Error
		if !errors.As(err, &fe) {
			t.Fatalf("expected *Error, got %T: %v", err, err)
		}
		if fe.Kind != KindHTTPStatus {
			t.Errorf("expected kind %q, got %q", KindHTTPStatus, fe.Kind)
		}
		if fe.StatusCode != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", fe.StatusCode)
		}
	})

	t.Run("invalid UTF-8 body yields a decode error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte{0xff, 0xfe, 0xfd})
		}))
		defer srv.Close()

		c := NewClient(5 * time.Second)
		_, err := c.Fetch(context.Background(), srv.URL)

		var fe *Error
		if !errors.As(err, &fe) {
			t.Fatalf("expected *Error, got %T: %v", err, err)
		}
		if fe.Kind != KindDecode {
			t.Errorf("expected kind %q, got %q", KindDecode, fe.Kind)
		}
	})

	t.Run("unreachable server yields a transport error", func(t *testing.T) {
		t.Parallel()

		// A server that is already closed refuses connections.
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		url := srv.URL
		srv.Close()

		c := NewClient(2 * time.Second)
		_, err := c.Fetch(context.Background(), url)

		var fe *Error
		if !errors.As(err, &fe) {
			t.Fatalf("expected *Error, got %T: %v", err, err)
		}
		if fe.Kind != KindTransport {
			t.Errorf("expected kind %q, got %q", KindTransport, fe.Kind)
		}
		if fe.Unwrap() == nil {
			t.Error("expected a wrapped transport error")
		}
	})

	t.Run("cancelled context yields a transport error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		c := NewClient(5 * time.Second)
		_, err := c.Fetch(ctx, srv.URL)

		var fe *Error
		if !errors.As(err, &fe) {
			t.Fatalf("expected *Error, got %T: %v", err, err)
		}
		if fe.Kind != KindTransport {
			t.Errorf("expected kind %q, got %q", KindTransport, fe.Kind)
		}
	})

	t.Run("body is capped at the configured size", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("a", 1024)))
		}))
		defer srv.Close()

		c := NewClient(5*time.Second, WithMaxBodySize(16))
		body, err := c.Fetch(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(body) != 16 {
			t.Errorf("expected 16 bytes, got %d", len(body))
		}
	})

	t.Run("malformed URL yields a transport error", func(t *testing.T) {
		t.Parallel()

		c := NewClient(time.Second)
		_, err := c.Fetch(context.Background(), "http://missing port: 80/")

		var fe *Error
		if !errors.As(err, &fe) {
			t.Fatalf("expected *Error, got %T: %v", err, err)
		}
		if fe.Kind != KindTransport {
			t.Errorf("expected kind %q, got %q", KindTransport, fe.Kind)
		}
	})
}

// TestErrorString tests the error message shapes.
func TestErrorString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "http status",
			err:  &Error{Kind: KindHTTPStatus, URL: "https://example.com/a", StatusCode: 503},
			want: "fetch https://example.com/a: http status 503",
		},
		{
			name: "decode",
			err:  &Error{Kind: KindDecode, URL: "https://example.com/b"},
			want: "fetch https://example.com/b: response is not valid UTF-8",
		},
		{
			name: "transport",
			err:  &Error{Kind: KindTransport, URL: "https://example.com/c", Err: errors.New("boom")},
			want: "fetch https://example.com/c: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
