package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second

	// tope de lectura de respuestas
	maxResponseBytes = 1 << 20
)

// Client habla JSON con la API de people/pets (errores como {"error": ..., "fields": [...]}).
type Client struct {
	HTTP    *http.Client
	BaseURL string // opcional; con BaseURL se aceptan paths relativos
}

func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{HTTP: &http.Client{Timeout: timeout}}
}

func NewWithBaseURL(baseURL string, timeout time.Duration) (*Client, error) {
	c := New(timeout)
	if strings.TrimSpace(baseURL) == "" {
		return c, nil
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	c.BaseURL = strings.TrimRight(baseURL, "/")
	return c, nil
}

// FieldError es un error de validación sobre un campo, tal como lo devuelve la API.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// HTTPError es una respuesta no-2xx. Message y Fields se completan si el body es un error JSON de la API.
type HTTPError struct {
	StatusCode int
	Body       string
	Message    string
	Fields     []FieldError
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		if e.Body == "" {
			return fmt.Sprintf("http error: status=%d", e.StatusCode)
		}
		return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "http error: status=%d error=%s", e.StatusCode, e.Message)
	for _, f := range e.Fields {
		fmt.Fprintf(&b, " [%s: %s]", f.Field, f.Message)
	}
	return b.String()
}

// StatusCode devuelve el status de err si es (o envuelve) un *HTTPError; 0 si no.
func StatusCode(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.DoJSON(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.DoJSON(ctx, http.MethodPost, path, in, out)
}

func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.DoJSON(ctx, http.MethodPut, path, in, out)
}

// DoJSON envía in (si no es nil) como JSON y decodifica la respuesta en out (si no es nil).
// Un status fuera de 2xx se devuelve como *HTTPError.
func (c *Client) DoJSON(ctx context.Context, method, pathOrURL string, in, out any) error {
	if c == nil || c.HTTP == nil {
		return errors.New("httpclient: nil client")
	}

	target, err := c.resolveURL(pathOrURL)
	if err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("httpclient: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: %s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(resp.StatusCode, raw)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

func apiError(status int, raw []byte) *HTTPError {
	he := &HTTPError{StatusCode: status, Body: strings.TrimSpace(string(raw))}

	var payload struct {
		Error  string       `json:"error"`
		Fields []FieldError `json:"fields"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		he.Message = payload.Error
		he.Fields = payload.Fields
	}
	return he
}

func (c *Client) resolveURL(pathOrURL string) (string, error) {
	pathOrURL = strings.TrimSpace(pathOrURL)
	switch {
	case pathOrURL == "":
		return "", errors.New("httpclient: empty url")
	case strings.HasPrefix(pathOrURL, "http://"), strings.HasPrefix(pathOrURL, "https://"):
		return pathOrURL, nil
	case c.BaseURL == "":
		return "", errors.New("httpclient: relative path requires BaseURL")
	}

	if !strings.HasPrefix(pathOrURL, "/") {
		pathOrURL = "/" + pathOrURL
	}
	return c.BaseURL + pathOrURL, nil
}
