package esveikata

import (
	"context"
	"esveikata-finder/internal/app/config"
	"esveikata-finder/internal/pkg/constvars"
	"esveikata-finder/internal/pkg/exceptions"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Requester performs GET requests against the portal. All clients built
// from one Requester share its outbound rate limiter.
type Requester struct {
	BaseUrl    string
	UserAgent  string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
	// Observe, if set, is called once per request with the resource name,
	// the HTTP status (0 when no response) and the elapsed time.
	Observe func(resource string, statusCode int, elapsed time.Duration)
}

func NewRequester(cfg config.Esveikata, logger *zap.Logger) *Requester {
	limit := rate.Inf
	burst := 1
	if cfg.MaxRequestsPerSecond > 0 {
		limit = rate.Limit(cfg.MaxRequestsPerSecond)
		if int(cfg.MaxRequestsPerSecond) > burst {
			burst = int(cfg.MaxRequestsPerSecond)
		}
	}

	return &Requester{
		BaseUrl:   strings.TrimRight(cfg.BaseUrl, "/"),
		UserAgent: cfg.UserAgent,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeoutInSeconds) * time.Second,
		},
		Limiter: rate.NewLimiter(limit, burst),
		Log:     logger,
	}
}

func (r *Requester) getJSON(ctx context.Context, path string, params url.Values, resource string, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	endpoint := r.BaseUrl + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	if err := r.Limiter.Wait(ctx); err != nil {
		r.Log.Warn("esveikata.Requester rate limiter wait aborted",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, resource),
			zap.Error(err),
		)
		return exceptions.ErrOutboundRateLimit(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if r.UserAgent != "" {
		req.Header.Set(constvars.HeaderUserAgent, r.UserAgent)
	}

	r.Log.Debug("esveikata.Requester sending request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingURLKey, endpoint),
	)

	start := time.Now()
	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		r.observe(resource, 0, time.Since(start))
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()
	r.observe(resource, resp.StatusCode, time.Since(start))

	if resp.StatusCode != constvars.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return exceptions.ErrRemoteUnexpectedStatus(resp.StatusCode, resource)
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return exceptions.ErrDecodeResponse(err, resource)
	}

	return nil
}

func (r *Requester) observe(resource string, statusCode int, elapsed time.Duration) {
	if r.Observe != nil {
		r.Observe(resource, statusCode, elapsed)
	}
}
