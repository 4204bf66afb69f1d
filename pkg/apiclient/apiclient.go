// Package apiclient performs the JSON-over-HTTPS calls to the remote
// auth, orders and telegram functions.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"maison/internal/structs"
	"maison/pkg/config"
	"maison/pkg/logger"
	"maison/pkg/metrics"
)

var Module = fx.Provide(New)

const (
	HeaderAuthToken = "X-Auth-Token"
	HeaderRequestID = "X-Request-ID"
)

type Params struct {
	fx.In

	Config  config.IConfig
	Logger  logger.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

type Client struct {
	http    *http.Client
	logger  logger.Logger
	metrics *metrics.Metrics
}

func New(p Params) *Client {
	return NewWithHTTP(&http.Client{
		Timeout:   p.Config.GetDuration("http.timeout"),
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}, p.Logger, p.Metrics)
}

func NewWithHTTP(hc *http.Client, log logger.Logger, m *metrics.Metrics) *Client {
	return &Client{http: hc, logger: log, metrics: m}
}

type Request struct {
	Service string
	Op      string
	Method  string
	BaseURL string
	Query   url.Values
	Header  http.Header
	Body    any

	// Fallback is the error text used when the service gives none.
	Fallback string
}

// Do sends req and decodes a 2xx JSON body into out (when out is non-nil and
// the body is not empty). Any other status becomes a *structs.RemoteError.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	u, err := url.Parse(req.BaseURL)
	if err != nil {
		return fmt.Errorf("%s %s: bad url: %w", req.Service, req.Op, err)
	}
	if len(req.Query) > 0 {
		q := u.Query()
		for k, vs := range req.Query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("%s %s: marshal: %w", req.Service, req.Op, err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), body)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Service, req.Op, err)
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(HeaderRequestID, uuid.NewString())

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.metrics.ObserveRemote(req.Service, req.Op, 0, time.Since(start))
		c.logger.Error(ctx, "remote call failed", zap.String("service", req.Service), zap.String("op", req.Op), zap.Error(err))
		return fmt.Errorf("%s %s: %w", req.Service, req.Op, err)
	}
	defer resp.Body.Close()

	c.metrics.ObserveRemote(req.Service, req.Op, resp.StatusCode, time.Since(start))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", req.Service, req.Op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn(ctx, "remote returned non-2xx",
			zap.String("service", req.Service),
			zap.String("op", req.Op),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw),
		)
		return &structs.RemoteError{
			Service: req.Service,
			Op:      req.Op,
			Status:  resp.StatusCode,
			Message: errorMessage(raw, req.Fallback),
		}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.Error(ctx, "failed to decode remote response", zap.String("service", req.Service), zap.String("op", req.Op), zap.Error(err))
		return fmt.Errorf("%s %s: decode: %w", req.Service, req.Op, err)
	}
	return nil
}

func errorMessage(raw []byte, fallback string) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	if fallback == "" {
		return "request failed"
	}
	return fallback
}

// IsStatus reports whether err is a remote error with the given status.
func IsStatus(err error, status int) bool {
	var remote *structs.RemoteError
	return errors.As(err, &remote) && remote.Status == status
}
