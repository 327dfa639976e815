package remote

import (
	"BlogStudio/pkg/response"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// IRemote is the HTTP wrapper around the blog API. Every call is bound to the
// base URL configured at startup; responses are decoded into out when out is
// non-nil.
type IRemote interface {
	Get(ctx context.Context, path string, out interface{}) error
	Post(ctx context.Context, path string, body interface{}, out interface{}) error
	Put(ctx context.Context, path string, body interface{}, out interface{}) error
	Delete(ctx context.Context, path string) error
	PostMultipart(ctx context.Context, path string, contentType string, body io.Reader, out interface{}) error
	PutMultipart(ctx context.Context, path string, contentType string, body io.Reader, out interface{}) error
}

type remoteClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

func New(log *logrus.Logger) (IRemote, error) {
	baseURL := os.Getenv("BLOG_API_BASE_URL")
	if baseURL == "" {
		return nil, fmt.Errorf("BLOG_API_BASE_URL is not set")
	}

	return &remoteClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}, nil
}

// NewWithClient binds an explicit base URL and http.Client. Used by tests to
// point the wrapper at a local server.
func NewWithClient(log *logrus.Logger, baseURL string, httpClient *http.Client) IRemote {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &remoteClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        log,
	}
}

func (r *remoteClient) Get(ctx context.Context, path string, out interface{}) error {
	return r.do(ctx, http.MethodGet, path, "", nil, out)
}

func (r *remoteClient) Post(ctx context.Context, path string, body interface{}, out interface{}) error {
	reader, err := encodeJSONBody(body)
	if err != nil {
		return err
	}
	return r.do(ctx, http.MethodPost, path, "application/json", reader, out)
}

func (r *remoteClient) Put(ctx context.Context, path string, body interface{}, out interface{}) error {
	reader, err := encodeJSONBody(body)
	if err != nil {
		return err
	}
	return r.do(ctx, http.MethodPut, path, "application/json", reader, out)
}

func (r *remoteClient) Delete(ctx context.Context, path string) error {
	return r.do(ctx, http.MethodDelete, path, "", nil, nil)
}

func (r *remoteClient) PostMultipart(ctx context.Context, path string, contentType string, body io.Reader, out interface{}) error {
	return r.do(ctx, http.MethodPost, path, contentType, body, out)
}

func (r *remoteClient) PutMultipart(ctx context.Context, path string, contentType string, body io.Reader, out interface{}) error {
	return r.do(ctx, http.MethodPut, path, contentType, body, out)
}

func encodeJSONBody(body interface{}) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	encoded, err := jsoniter.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return bytes.NewReader(encoded), nil
}

func (r *remoteClient) do(ctx context.Context, method, path, contentType string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"error":  err.Error(),
		}).Error("Blog API request failed")
		return ErrServiceUnreachable
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"error":  err.Error(),
		}).Error("Failed to read blog API response")
		return ErrServiceUnreachable
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return r.errorFromBody(method, path, resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	if err := jsoniter.Unmarshal(raw, out); err != nil {
		r.log.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"error":  err.Error(),
		}).Error("Failed to decode blog API response")
		return ErrServiceUnreachable
	}

	return nil
}

// errorFromBody surfaces the API's {message} envelope when present and falls
// back to a generic transport message otherwise.
func (r *remoteClient) errorFromBody(method, path string, status int, raw []byte) error {
	var envelope struct {
		Message string `json:"message"`
	}
	message := ""
	if err := jsoniter.Unmarshal(raw, &envelope); err == nil {
		message = strings.TrimSpace(envelope.Message)
	}

	r.log.WithFields(logrus.Fields{
		"method":  method,
		"path":    path,
		"status":  status,
		"message": message,
	}).Warn("Blog API returned an error response")

	if message == "" {
		return response.NewError(status, genericFailureMessage)
	}
	return response.NewError(status, message)
}
