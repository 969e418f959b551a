// Package viewer loads paints for a list of users and styles their nodes.
package viewer

import (
	"context"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/Fiszh/7TVPaintsViewer/internal/page"
	"github.com/Fiszh/7TVPaintsViewer/internal/paint"
)

// DefaultConcurrency bounds the number of users loaded at once.
const DefaultConcurrency = 4

// Resolver returns the paint a user has equipped, or nil if none.
type Resolver interface {
	ResolvePaint(ctx context.Context, userID string) (*paint.Paint, error)
}

// User is an entry in the list of users to display.
type User struct {
	ID   string
	Note string
}

// Viewer styles one node per user.
type Viewer struct {
	resolver    Resolver
	concurrency int
	logger      hclog.Logger
}

// New creates a viewer. A concurrency below one uses DefaultConcurrency.
func New(resolver Resolver, concurrency int, logger hclog.Logger) *Viewer {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Viewer{
		resolver:    resolver,
		concurrency: concurrency,
		logger:      logger.Named("viewer"),
	}
}

// Result is the outcome of resolving one user.
type Result struct {
	User  User
	Paint *paint.Paint
	Style paint.StyleResult
	Err   error
}

// Resolve fetches and derives the style of every user. Results keep input
// order; each user is fetched independently and a failure only marks its
// own result.
func (v *Viewer) Resolve(ctx context.Context, users []User) []Result {
	results := make([]Result, len(users))

	var g errgroup.Group
	g.SetLimit(v.concurrency)

	for i, u := range users {
		res := &results[i]
		res.User = u
		g.Go(func() error {
			v.resolve(ctx, res)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Load returns one node per user in input order. A failed fetch is logged
// and leaves that node as the placeholder without affecting the others.
func (v *Viewer) Load(ctx context.Context, users []User) []*page.Node {
	return Nodes(v.Resolve(ctx, users))
}

// Nodes applies each successful result to a fresh node.
func Nodes(results []Result) []*page.Node {
	nodes := make([]*page.Node, len(results))
	for i, res := range results {
		node := page.NewNode(res.User.ID)
		node.Note = res.User.Note
		if res.Err == nil {
			node.Apply(res.Style)
		}
		nodes[i] = node
	}
	return nodes
}

func (v *Viewer) resolve(ctx context.Context, res *Result) {
	logger := v.logger.With("user", res.User.ID)
	if res.User.Note != "" {
		logger = logger.With("note", res.User.Note)
	}

	p, err := v.resolver.ResolvePaint(ctx, res.User.ID)
	if err != nil {
		logger.Error("failed to load paint", "error", err)
		res.Err = err
		return
	}

	res.Paint = p
	res.Style = paint.DeriveStyle(p)
	logger.Debug("derived style", "label", res.Style.Label)
}
