package client

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
	"unicode/utf8"

	"github.com/dmitrijs2005/divergentflow/internal/client/schema"
	"github.com/dmitrijs2005/divergentflow/internal/common"
	"github.com/dmitrijs2005/divergentflow/internal/logging"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// maxDetailLen caps how much of an error body ends up in Error.Detail.
const maxDetailLen = 512

// RequestOptions configures a single call made through Do.
type RequestOptions struct {
	// Method defaults to GET.
	Method string

	// Body is JSON encoded when non-nil.
	Body any

	// Headers are applied after the standard headers and may override them.
	Headers map[string]string

	// Token, when set, is sent as "Authorization: Bearer <token>".
	Token string
}

// HTTPClient talks to the capture API over HTTP/JSON.
type HTTPClient struct {
	baseURL      string
	httpClient   *http.Client
	log          logging.Logger
	newRequestID func() string
}

// NewHTTPClient returns a client rooted at baseURL. A nil httpClient means a
// plain &http.Client{} with no timeout.
func NewHTTPClient(baseURL string, httpClient *http.Client, log logging.Logger) *HTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &HTTPClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   httpClient,
		log:          log,
		newRequestID: uuid.NewString,
	}
}

// Do performs one round trip and returns the response body validated against
// shape. It never retries.
func Do[T any](ctx context.Context, c *HTTPClient, path string, shape schema.Shape[T], opts RequestOptions) (T, error) {
	var zero T

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if opts.Body != nil {
		b, err := json.Marshal(opts.Body)
		if err != nil {
			return zero, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return zero, fmt.Errorf("build request: %w", err)
	}

	requestID := c.newRequestID()

	req.Header.Set(common.ContentTypeHeaderName, common.JSONContentType)
	req.Header.Set(common.CacheControlHeaderName, common.NoCache)
	req.Header.Set(common.PragmaHeaderName, common.NoCache)
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if opts.Token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+opts.Token)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	log := c.log.With("method", method, "path", path, "request_id", requestID)
	log.Debug(ctx, "api request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, "api request failed", "error", err)
		return zero, &Error{Kind: KindTransport, Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn(ctx, "reading api response failed", "status", resp.StatusCode, "error", err)
		return zero, &Error{Kind: KindTransport, Method: method, Path: path, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := extractDetail(data, resp.StatusCode)
		log.Warn(ctx, "api error", "status", resp.StatusCode, "detail", detail)
		return zero, &Error{Kind: KindAPI, Method: method, Path: path, Status: resp.StatusCode, Detail: detail}
	}

	out, err := shape.Decode(data)
	if err != nil {
		e := &Error{Kind: KindValidation, Method: method, Path: path, Status: resp.StatusCode, Err: err}
		fields := []string{}
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			e.Fields = verr.Fields
			fields = verr.Paths()
		}
		log.Error(ctx, "invalid server data", "shape", shape.Name, "status", resp.StatusCode,
			"fields", strings.Join(fields, ","), "error", err)
		return zero, e
	}

	log.Debug(ctx, "api response", "status", resp.StatusCode)
	return out, nil
}

// detailPaths are tried in order against a JSON error body.
var detailPaths = []string{"message", "error", "error.message", "detail"}

// extractDetail pulls a human readable message out of an error body: the
// first non-empty string at detailPaths in a JSON object, else the trimmed
// text, else the status text.
func extractDetail(body []byte, status int) string {
	if gjson.ValidBytes(body) {
		if doc := gjson.ParseBytes(body); doc.IsObject() {
			for _, p := range detailPaths {
				if v := doc.Get(p); v.Type == gjson.String && v.Str != "" {
					return truncate(v.Str)
				}
			}
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return truncate(text)
	}
	return http.StatusText(status)
}

// truncate caps s at maxDetailLen bytes without splitting a rune.
func truncate(s string) string {
	if len(s) <= maxDetailLen {
		return s
	}
	cut := maxDetailLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// escapeSegment escapes s for use as a single path segment the way
// encodeURIComponent does it: "@", "+" and "/" are all percent-encoded and a
// space becomes %20.
func escapeSegment(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
