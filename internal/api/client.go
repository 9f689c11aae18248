// Package api implements the HTTP client for the Nightshift case API:
// a generic request executor plus thin resource clients built on top of it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nightshift/casefile/internal/logging"
)

// DefaultBaseURL is the local development endpoint used when no override
// is configured.
const DefaultBaseURL = "http://localhost:8000/api/v1"

// fallbackMessage is used when neither the response body nor the status
// line yields a usable error message.
const fallbackMessage = "Request failed"

// Client executes requests against the API. All resource clients share one
// Client so they share its base URL, timeout and logger.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// New constructs a Client for the given base URL. A zero timeout leaves
// cancellation entirely to the caller's context.
func New(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Request describes a single outbound call.
//
// Body handling:
//   - nil: no body
//   - url.Values: form-urlencoded
//   - string, []byte, io.Reader: passed through unchanged
//   - anything else: serialized to JSON with a JSON content type
type Request struct {
	Method string // defaults to GET
	Path   string // relative to the base URL
	Header http.Header
	Body   any
	Token  string // attached as a bearer token when non-empty
}

// Do executes req and decodes the response into out. A JSON response body
// is unmarshalled into out; a non-JSON body requires out to be a *string
// (or nil to discard). Non-2xx responses return an *Error and leave out
// untouched.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return fmt.Errorf("encoding request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+req.Path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	if contentType != "" && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}
	if httpReq.Header.Get("X-Request-Id") == "" {
		httpReq.Header.Set("X-Request-Id", uuid.NewString())
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, req.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp.StatusCode, raw, isJSON)
		c.log.Warn(ctx, "request failed",
			"method", method, "path", req.Path, "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if isJSON {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decoding response body: %w", err)
		}
		return nil
	}
	if sp, ok := out.(*string); ok {
		*sp = string(raw)
		return nil
	}
	return fmt.Errorf("unexpected content type %q for %s %s", resp.Header.Get("Content-Type"), method, req.Path)
}

// encodeBody turns the Request.Body variants into a reader plus the content
// type to declare for it. Pre-encoded payloads declare no content type here;
// the caller's headers win.
func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case url.Values:
		return strings.NewReader(b.Encode()), "application/x-www-form-urlencoded", nil
	case string:
		return strings.NewReader(b), "", nil
	case []byte:
		return bytes.NewReader(b), "", nil
	case io.Reader:
		return b, "", nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
}

// decodeError builds the *Error for a non-success response. The decoded
// body is attached as Details regardless of shape.
func decodeError(status int, raw []byte, isJSON bool) *Error {
	var details any
	message := ""

	if isJSON {
		var payload map[string]any
		if err := json.Unmarshal(raw, &payload); err == nil {
			details = payload
			if detail, ok := payload["detail"].(string); ok {
				message = detail
			}
		} else {
			// JSON content type but not an object; keep whatever it was.
			var v any
			if err := json.Unmarshal(raw, &v); err == nil {
				details = v
			} else {
				details = string(raw)
			}
		}
	} else {
		details = string(raw)
	}

	if message == "" {
		message = http.StatusText(status)
	}
	if message == "" {
		message = fallbackMessage
	}
	return &Error{Message: message, Status: status, Details: details}
}
