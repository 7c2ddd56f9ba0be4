package financeflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// formPayload carries a pre-encoded multipart form body. The executor sends it
// verbatim with the form's own content type instead of JSON-encoding it.
type formPayload struct {
	reader      io.Reader
	contentType string
}

// apiRequest describes a single backend call: where it goes, what it carries
// and where the response decodes into. One value is built per call and
// discarded after use.
type apiRequest struct {
	method  string
	path    string
	query   url.Values
	body    any
	form    *formPayload
	headers map[string]string
	out     any
}

// do performs one authenticated HTTP call and normalizes the outcome.
//
// A non-blank client token is attached as a bearer credential. A structured
// body is JSON-encoded with a JSON content type unless the caller supplied its
// own; no-body reads never advertise a JSON payload. HTTP 204 resolves to an
// empty result. Any non-2xx response becomes an *APIError, using the server's
// message/code when the error body parses and the HTTP status otherwise.
// There is no retry, backoff or timeout policy beyond the HTTP client's own.
func (c *Client) do(ctx context.Context, r apiRequest) error {
	requestURL := c.baseURL + r.path
	if len(r.query) > 0 {
		requestURL += "?" + r.query.Encode()
	}

	var reqBody io.Reader
	var contentType string
	switch {
	case r.form != nil:
		reqBody = r.form.reader
		contentType = r.form.contentType
	case r.body != nil:
		buf, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.method, requestURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", uuid.NewString())
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}
	if contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentType)
	}
	if reqBody == nil && strings.HasPrefix(req.Header.Get("Content-Type"), "application/json") {
		// A JSON content type on a bodyless read confuses some proxies.
		req.Header.Del("Content-Type")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := normalizeError(resp.StatusCode, data)
		c.logger.Debug().
			Str("method", r.method).
			Str("path", r.path).
			Int("status", resp.StatusCode).
			Str("message", apiErr.Message).
			Msg("API request failed")
		return apiErr
	}

	if r.out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, r.out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// normalizeError converts a non-2xx response body into an *APIError. A body
// that does not parse as the server's error envelope yields a generic message
// with the HTTP status as its code.
func normalizeError(status int, body []byte) *APIError {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		if apiErr.Code == 0 {
			apiErr.Code = status
		}
		return &apiErr
	}
	return &APIError{
		Message: fmt.Sprintf("request failed with status %d", status),
		Code:    status,
	}
}
