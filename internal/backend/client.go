// Package backend is the HTTP client for the wallet backend. Every operation
// speaks the backend's JSON envelope ({success, data, message}) and
// normalizes any transport or backend failure into an *APIError before it
// reaches the callers, so no raw error ever surfaces to the web layer.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/Aryanshah010/payhive-web-application/internal/config"
)

type contextKey string

const tokenContextKey contextKey = "backend_auth_token"

// WithToken returns a context carrying the bearer token to attach to
// outgoing backend requests
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// TokenFromContext retrieves the bearer token set by WithToken, if any
func TokenFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(tokenContextKey).(string); ok {
		return token
	}
	return ""
}

// Client calls the wallet backend REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a backend client from the application configuration
func NewClient(logger *slog.Logger, cfg *config.BackendConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// envelope is the backend's uniform response body. Login additionally
// carries the bearer token at the top level.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
}

// Upload is an in-memory file attached to a multipart request
type Upload struct {
	FileName    string
	ContentType string
	Content     []byte
}

// doJSON performs a JSON request and returns the decoded success envelope.
// Any failure comes back as an *APIError carrying the backend message when
// one was received and the per-operation fallback otherwise.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body interface{}, header http.Header, fallback string) (*envelope, error) {
	var reader io.Reader
	contentType := ""
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, &APIError{Message: fallback}
		}
		reader = bytes.NewReader(encoded)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, query, reader, contentType, header, fallback)
}

// doMultipart performs a multipart/form-data request. Blank fields are
// omitted; file may be nil.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, fileField string, file *Upload, fallback string) (*envelope, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := writer.WriteField(name, value); err != nil {
			return nil, &APIError{Message: fallback}
		}
	}

	if file != nil {
		partHeader := make(textproto.MIMEHeader)
		partHeader.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, file.FileName))
		if file.ContentType != "" {
			partHeader.Set("Content-Type", file.ContentType)
		}
		part, err := writer.CreatePart(partHeader)
		if err != nil {
			return nil, &APIError{Message: fallback}
		}
		if _, err := part.Write(file.Content); err != nil {
			return nil, &APIError{Message: fallback}
		}
	}

	if err := writer.Close(); err != nil {
		return nil, &APIError{Message: fallback}
	}

	return c.do(ctx, method, path, nil, buf, writer.FormDataContentType(), nil, fallback)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, header http.Header, fallback string) (*envelope, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, &APIError{Message: fallback}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for name, values := range header {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Backend request failed", "method", method, "path", path, "error", err)
		return nil, &APIError{Message: fallback}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Failed to read backend response", "method", method, "path", path, "error", err)
		return nil, &APIError{Message: fallback}
	}

	var env envelope
	// A non-JSON body (e.g. a proxy error page) leaves the envelope zeroed
	// and is reported through the fallback message below
	_ = json.Unmarshal(raw, &env)

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !ok || !env.Success {
		message := env.Message
		if message == "" {
			message = fallback
		}

		var details interface{}
		if len(env.Data) > 0 {
			_ = json.Unmarshal(env.Data, &details)
		}

		status := 0
		if !ok {
			status = resp.StatusCode
		}

		c.logger.Warn("Backend call rejected",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"message", message,
		)
		return nil, &APIError{Message: message, Status: status, Details: details}
	}

	return &env, nil
}

// decodeData unmarshals the envelope payload into out, normalizing decode
// failures like any other backend fault
func decodeData(env *envelope, out interface{}, fallback string) error {
	if len(env.Data) == 0 {
		return &APIError{Message: fallback}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &APIError{Message: fallback}
	}
	return nil
}
