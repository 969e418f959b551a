// Package cosmetics fetches user cosmetics from the 7TV GraphQL API.
package cosmetics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/time/rate"

	"github.com/Fiszh/7TVPaintsViewer/internal/paint"
	"github.com/Fiszh/7TVPaintsViewer/internal/security"
	httputil "github.com/Fiszh/7TVPaintsViewer/internal/util/http"
)

var (
	// ErrUserNotFound is returned when the service knows no such user.
	ErrUserNotFound = errors.New("user not found")

	// ErrPaintNotFound is returned when a paint id resolves to nothing.
	ErrPaintNotFound = errors.New("paint not found")
)

// Options configures a Client.
type Options struct {
	Endpoint string
	Timeout  time.Duration

	// RequestsPerSecond paces outbound requests. Zero disables pacing.
	RequestsPerSecond float64
	Burst             int

	HTTPClient *http.Client
	Logger     hclog.Logger
}

// Client talks to the cosmetics GraphQL service.
type Client struct {
	endpoint string
	fetch    httputil.FetchOptions
	limiter  *rate.Limiter
	logger   hclog.Logger
}

// NewClient creates a client for the given options.
func NewClient(opts Options) *Client {
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	return &Client{
		endpoint: endpoint,
		fetch: httputil.FetchOptions{
			Timeout: opts.Timeout,
			Client:  opts.HTTPClient,
		},
		limiter: limiter,
		logger:  logger.Named("cosmetics"),
	}
}

// CurrentCosmetics returns the cosmetics a user currently has equipped.
func (c *Client) CurrentCosmetics(ctx context.Context, userID string) (*UserCosmetics, error) {
	var resp userResponse
	err := c.do(ctx, request{
		OperationName: "GetUserCurrentCosmetics",
		Query:         userCosmeticsQuery,
		Variables:     map[string]any{"id": userID},
	}, &resp)
	if err != nil {
		return nil, err
	}
	if err := joinErrors(resp.Errors); err != nil {
		return nil, err
	}

	user := resp.Data.User
	if user == nil {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}

	uc := &UserCosmetics{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
	}
	if user.Style != nil {
		uc.Paint = user.Style.Paint
		uc.Badge = user.Style.Badge
	}
	return uc, nil
}

// Paint returns the full definition of a paint.
func (c *Client) Paint(ctx context.Context, paintID string) (*paint.Paint, error) {
	var resp cosmeticsResponse
	err := c.do(ctx, request{
		OperationName: "GetCosmetics",
		Query:         cosmeticsQuery,
		Variables:     map[string]any{"list": []string{paintID}},
	}, &resp)
	if err != nil {
		return nil, err
	}
	if err := joinErrors(resp.Errors); err != nil {
		return nil, err
	}

	if resp.Data.Cosmetics == nil || len(resp.Data.Cosmetics.Paints) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrPaintNotFound, paintID)
	}

	p := resp.Data.Cosmetics.Paints[0]
	if p.ImageURL != "" {
		// An unusable image drops back to the paint's gradient, if any.
		if err := security.ValidateImageURL(p.ImageURL); err != nil {
			c.logger.Warn("ignoring paint image", "paint", paintID, "image_url", p.ImageURL, "error", err)
			p.ImageURL = ""
		}
	}
	return &p, nil
}

// ResolvePaint looks up the paint a user has equipped and fetches it.
// It returns a nil paint and no error when the user wears none.
func (c *Client) ResolvePaint(ctx context.Context, userID string) (*paint.Paint, error) {
	uc, err := c.CurrentCosmetics(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch current cosmetics: %w", err)
	}
	if uc.Paint == nil || uc.Paint.ID == "" {
		c.logger.Debug("no paint equipped", "user", userID)
		return nil, nil
	}

	c.logger.Debug("resolving paint", "user", userID, "paint", uc.Paint.ID, "name", uc.Paint.Name)

	p, err := c.Paint(ctx, uc.Paint.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch paint %s: %w", uc.Paint.ID, err)
	}
	return p, nil
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	start := time.Now()
	data, err := httputil.PostJSON(ctx, c.endpoint, req, c.fetch)
	if err != nil {
		return fmt.Errorf("%s: %w", req.OperationName, err)
	}
	c.logger.Trace("query complete", "operation", req.OperationName, "bytes", len(data), "elapsed", time.Since(start))

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: failed to parse response: %w", req.OperationName, err)
	}
	return nil
}

func joinErrors(errs []gqlError) error {
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Message
	}
	return fmt.Errorf("graphql: %s", strings.Join(msgs, "; "))
}
