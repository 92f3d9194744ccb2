// internal/codegen/randomorg.go
//
// Client for a random.org-compatible integer service.
//
// Request:  GET <URL>?num=N&min=0&max=R-1&col=1&base=10&format=plain&rnd=new
// Response: N integers in plain text, one per line.
//
// Retries:
//   - Network errors, 5xx and 429 are retried with exponential backoff.
//   - Other 4xx responses and malformed bodies fail immediately.
//   - Each attempt is bounded by Timeout; the whole call by the caller's ctx.

package codegen

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog/log"
)

// RandomOrgConfig configures the remote source.
type RandomOrgConfig struct {
	URL           string
	Timeout       time.Duration // per attempt
	MaxTries      uint
	RetryInterval time.Duration // initial backoff interval
	Client        *http.Client
}

// RandomOrg fetches codes from a random.org-compatible service.
type RandomOrg struct {
	shape Shape
	cfg   RandomOrgConfig
}

// NewRandomOrg fills in defaults for zero config fields.
func NewRandomOrg(shape Shape, cfg RandomOrgConfig) *RandomOrg {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.MaxTries == 0 {
		cfg.MaxTries = 1
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = 200 * time.Millisecond
	}
	if cfg.Client == nil {
		cfg.Client = http.DefaultClient
	}
	return &RandomOrg{shape: shape, cfg: cfg}
}

// FetchCode requests a code sized for difficulty.
func (r *RandomOrg) FetchCode(ctx context.Context, difficulty int) (string, error) {
	n := r.shape.Length(difficulty)
	if n <= 0 {
		return "", fmt.Errorf("%w: length %d", ErrBadResponse, n)
	}
	reqURL, err := r.requestURL(n)
	if err != nil {
		return "", err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.cfg.RetryInterval

	code, err := backoff.Retry(ctx, func() (string, error) {
		return r.fetchOnce(ctx, reqURL, n)
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(r.cfg.MaxTries),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.Debug().Err(err).Dur("next", next).Msg("random source retry")
		}),
	)
	if err != nil {
		return "", fmt.Errorf("fetch code: %w", err)
	}
	return code, nil
}

func (r *RandomOrg) requestURL(n int) (string, error) {
	u, err := url.Parse(r.cfg.URL)
	if err != nil {
		return "", fmt.Errorf("parse rng url: %w", err)
	}
	q := u.Query()
	q.Set("num", strconv.Itoa(n))
	q.Set("min", "0")
	q.Set("max", strconv.Itoa(r.shape.Radix-1))
	q.Set("col", "1")
	q.Set("base", "10")
	q.Set("format", "plain")
	q.Set("rnd", "new")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (r *RandomOrg) fetchOnce(ctx context.Context, reqURL string, n int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", backoff.Permanent(err)
	}
	resp, err := r.cfg.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return "", err
		}
		return "", backoff.Permanent(err)
	}

	code, err := parsePlain(io.LimitReader(resp.Body, 4096), n, r.shape.Radix)
	if err != nil {
		return "", backoff.Permanent(err)
	}
	return code, nil
}

// parsePlain joins one integer per line into a digit string.
func parsePlain(body io.Reader, n, radix int) (string, error) {
	var sb strings.Builder
	sc := bufio.NewScanner(body)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.Atoi(line)
		if err != nil || v < 0 || v >= radix {
			return "", fmt.Errorf("%w: value %q", ErrBadResponse, line)
		}
		sb.WriteByte(byte('0' + v))
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	if sb.Len() != n {
		return "", fmt.Errorf("%w: got %d digits, want %d", ErrBadResponse, sb.Len(), n)
	}
	return sb.String(), nil
}
