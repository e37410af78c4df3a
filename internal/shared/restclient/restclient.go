package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Errores centinela compartidos por todos los adaptadores REST del gateway.
var (
	ErrNoAutorizado     = errors.New("backend rejected credentials")
	ErrProhibido        = errors.New("backend forbade the operation")
	ErrNoEncontrado     = errors.New("resource not found")
	ErrPeticionInvalida = errors.New("backend rejected the request")
	ErrBackend          = errors.New("backend unavailable")
)

// APIError conserva el estado HTTP y los errores de campo que devuelve el
// backend en respuestas 400, para que la capa de interfaz los muestre tal cual.
type APIError struct {
	Status  int
	Mensaje string
	Campos  map[string]string
}

func (e *APIError) Error() string {
	if e.Mensaje != "" {
		return fmt.Sprintf("backend responded %d: %s", e.Status, e.Mensaje)
	}
	return fmt.Sprintf("backend responded %d", e.Status)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrNoAutorizado
	case http.StatusForbidden:
		return ErrProhibido
	case http.StatusNotFound:
		return ErrNoEncontrado
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusConflict:
		return ErrPeticionInvalida
	default:
		return ErrBackend
	}
}

// Cliente wraps http.Client with base URL handling to avoid duplicating
// boilerplate in adapters.
type Cliente struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

func New(baseURL string, timeout time.Duration, client *http.Client) *Cliente {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = "http://localhost:8080"
	}
	trimmed = strings.TrimRight(trimmed, "/")
	if client == nil {
		client = &http.Client{Timeout: timeoutOrDefault(timeout)}
	} else if timeout > 0 {
		client.Timeout = timeout
	}
	return &Cliente{baseURL: trimmed, client: client, timeout: timeoutOrDefault(timeout)}
}

// GetJSON issues a GET and decodes the JSON body into out when out is non-nil.
func (c *Cliente) GetJSON(ctx context.Context, token, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, token, path, query, nil, out)
}

// SendJSON issues a request with a JSON body (POST, PUT...) decoding the
// response into out when out is non-nil.
func (c *Cliente) SendJSON(ctx context.Context, method, token, path string, body, out any) error {
	return c.do(ctx, method, token, path, nil, body, out)
}

// Delete issues a DELETE discarding any response body.
func (c *Cliente) Delete(ctx context.Context, token, path string) error {
	return c.do(ctx, http.MethodDelete, token, path, nil, nil, nil)
}

func (c *Cliente) do(ctx context.Context, method, token, path string, query url.Values, body, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		slog.Error("backend request build failed", slog.String("path", path), slog.Any("error", err))
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if trimmed := strings.TrimSpace(token); trimmed != "" {
		req.Header.Set("Authorization", "Bearer "+trimmed)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	slog.Debug("backend request", slog.String("method", method), slog.String("url", req.URL.String()))

	res, err := c.client.Do(req)
	if err != nil {
		slog.Error("backend request error", slog.String("method", method), slog.String("path", path), slog.Any("error", err))
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer res.Body.Close()

	slog.Debug("backend response", slog.Int("status", res.StatusCode), slog.String("url", req.URL.String()))

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(res)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 4096))
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode backend response: %w", err)
	}
	return nil
}

func decodeAPIError(res *http.Response) error {
	apiErr := &APIError{Status: res.StatusCode}

	raw, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return apiErr
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		apiErr.Mensaje = trimmed
		return apiErr
	}

	if message, ok := payload["message"].(string); ok && strings.TrimSpace(message) != "" {
		apiErr.Mensaje = strings.TrimSpace(message)
	}
	if message, ok := payload["error"].(string); ok && apiErr.Mensaje == "" {
		apiErr.Mensaje = strings.TrimSpace(message)
	}

	// 400s de validación llegan como pares campo → detalle.
	if res.StatusCode == http.StatusBadRequest {
		campos := make(map[string]string)
		for key, value := range payload {
			if key == "message" || key == "error" {
				continue
			}
			if detail, ok := value.(string); ok && strings.TrimSpace(detail) != "" {
				campos[key] = strings.TrimSpace(detail)
			}
		}
		if len(campos) > 0 {
			apiErr.Campos = campos
		}
	}
	return apiErr
}

func timeoutOrDefault(value time.Duration) time.Duration {
	if value <= 0 {
		return 10 * time.Second
	}
	return value
}
