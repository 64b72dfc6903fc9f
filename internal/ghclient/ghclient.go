// Package ghclient builds the HTTP client used for GitHub requests: optional
// token auth, a request timeout and proactive rate limiting.
package ghclient

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/spachava753/tutorials/internal/config"
)

// DefaultAPIHost is the host tokens are sent to when no api_url is configured.
const DefaultAPIHost = "api.github.com"

// NewHTTPClient returns an *http.Client for GitHub. When the environment
// variable named by cfg.TokenEnv is set, requests to the configured API host
// carry it as a bearer token. Requests to any other host go out without it.
func NewHTTPClient(ctx context.Context, cfg config.GitHubConfig) *http.Client {
	var base http.RoundTripper = http.DefaultTransport

	if cfg.TokenEnv != "" {
		if token := os.Getenv(cfg.TokenEnv); token != "" {
			host := apiHost(cfg.APIURL)
			slog.Debug("using github token", "env", cfg.TokenEnv, "host", host)
			ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
			base = &hostAuthTransport{
				host:   host,
				authed: oauth2.NewClient(ctx, ts).Transport,
				plain:  base,
			}
		}
	}

	return &http.Client{
		Transport: NewRateLimitedTransport(base, cfg.RatePerSec, cfg.Burst),
		Timeout:   time.Duration(cfg.TimeoutSec * float64(time.Second)),
	}
}

// apiHost returns the host[:port] of apiURL, or DefaultAPIHost when unset.
func apiHost(apiURL string) string {
	if apiURL == "" {
		return DefaultAPIHost
	}
	u, err := url.Parse(apiURL)
	if err != nil || u.Host == "" {
		return DefaultAPIHost
	}
	return u.Host
}

// hostAuthTransport sends requests for host through authed and everything
// else through plain.
type hostAuthTransport struct {
	host   string
	authed http.RoundTripper
	plain  http.RoundTripper
}

func (t *hostAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if strings.EqualFold(req.URL.Host, t.host) {
		return t.authed.RoundTrip(req)
	}
	return t.plain.RoundTrip(req)
}

// RateLimitedTransport waits on a token bucket before every request.
type RateLimitedTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

// NewRateLimitedTransport wraps base. A non-positive perSec disables limiting.
func NewRateLimitedTransport(base http.RoundTripper, perSec float64, burst int) *RateLimitedTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	limit := rate.Inf
	if perSec > 0 {
		limit = rate.Limit(perSec)
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedTransport{
		base:    base,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (t *RateLimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}
