package remote

import (
	"BlogStudio/pkg/response"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestGetDecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("Accept = %q", r.Header.Get("Accept"))
		}
		w.Write([]byte(`{"title":"hello"}`))
	}))
	defer server.Close()

	client := NewWithClient(newTestLogger(), server.URL, server.Client())

	var out struct {
		Title string `json:"title"`
	}
	if err := client.Get(context.Background(), "/blogs/b1", &out); err != nil {
		t.Fatalf("Get() returned error: %v", err)
	}
	if out.Title != "hello" {
		t.Errorf("Title = %q", out.Title)
	}
}

func TestErrorResponseSurfacesMessageEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Blog not found"}`))
	}))
	defer server.Close()

	client := NewWithClient(newTestLogger(), server.URL, server.Client())

	err := client.Get(context.Background(), "/blogs/missing", nil)
	if err == nil {
		t.Fatal("Get() should fail on 404")
	}

	var respErr *response.Error
	if !errors.As(err, &respErr) {
		t.Fatalf("error type = %T, want *response.Error", err)
	}
	if respErr.Code != http.StatusNotFound || err.Error() != "Blog not found" {
		t.Errorf("error = (%d, %q)", respErr.Code, err.Error())
	}
}

func TestErrorResponseFallsBackToGenericMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"non-JSON body", "<html>gateway error</html>"},
		{"envelope without message", `{"error":"nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewWithClient(newTestLogger(), server.URL, server.Client())

			err := client.Get(context.Background(), "/blogs", nil)
			if err == nil {
				t.Fatal("Get() should fail on 502")
			}
			if err.Error() != genericFailureMessage {
				t.Errorf("message = %q, want generic fallback", err.Error())
			}
		})
	}
}

func TestTransportFailureIsServiceUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewWithClient(newTestLogger(), server.URL, nil)

	err := client.Get(context.Background(), "/blogs", nil)
	if err != ErrServiceUnreachable {
		t.Errorf("Get() = %v, want %v", err, ErrServiceUnreachable)
	}
}

func TestMalformedSuccessBodyIsServiceUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"broken`))
	}))
	defer server.Close()

	client := NewWithClient(newTestLogger(), server.URL, server.Client())

	var out map[string]interface{}
	if err := client.Get(context.Background(), "/blogs", &out); err != ErrServiceUnreachable {
		t.Errorf("Get() = %v, want %v", err, ErrServiceUnreachable)
	}
}

func TestPostEncodesJSONBody(t *testing.T) {
	var gotContentType, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewWithClient(newTestLogger(), server.URL, server.Client())

	body := map[string]string{"name": "Nutrition"}
	if err := client.Post(context.Background(), "/blogs/categories", body, nil); err != nil {
		t.Fatalf("Post() returned error: %v", err)
	}

	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotBody != `{"name":"Nutrition"}` {
		t.Errorf("body = %q", gotBody)
	}
}

func TestDeleteToleratesEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewWithClient(newTestLogger(), server.URL, server.Client())

	if err := client.Delete(context.Background(), "/blogs/b1"); err != nil {
		t.Errorf("Delete() returned error: %v", err)
	}
}

func TestBaseURLTrailingSlashNormalized(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewWithClient(newTestLogger(), server.URL+"/", server.Client())

	client.Get(context.Background(), "/blogs", nil)
	if strings.Contains(gotPath, "//") {
		t.Errorf("path = %q, double slash not collapsed", gotPath)
	}
}
