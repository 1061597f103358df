// Package export pages through a GitHub listing without a UI, driving the
// same Browser the interactive view uses, and collects the result.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stahnma/gh-explore/internal/browse"
	ghub "github.com/stahnma/gh-explore/internal/github"
	"github.com/stahnma/gh-explore/internal/present"
)

// DateFormat is the layout used for Snapshot.Date.
const DateFormat = "2006-Jan-02"

// Snapshot is one export run.
type Snapshot struct {
	ID    string         `json:"id"`
	Kind  string         `json:"kind"`
	Date  string         `json:"date"`
	Pages int            `json:"pages"`
	Items []present.Item `json:"items"`
}

// Options controls an export run.
type Options struct {
	Kind     browse.Kind
	PageSize int
	// MaxPages stops the export after this many pages. Zero means page until
	// the listing is exhausted.
	MaxPages int
	Logger   *slog.Logger
	Now      func() time.Time
}

// Error is returned when a page fails. Message is what the interactive view
// would have shown.
type Error struct {
	Page    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("page %d: %s", e.Page, e.Message)
}

type event struct {
	items   []present.Item
	message string
	failed  bool
}

// collector is the View the Browser reports to during an export.
type collector struct {
	ctx    context.Context
	events chan event
}

func (c *collector) send(e event) {
	select {
	case c.events <- e:
	case <-c.ctx.Done():
	}
}

func (c *collector) DisplayList(items []present.Item, _ bool) {
	c.send(event{items: items})
}

// DisplaySingleResult is never reached: an export does not search.
func (c *collector) DisplaySingleResult(present.Item) {}

func (c *collector) DisplayError(message string) {
	c.send(event{message: message, failed: true})
}

// Run pages through opts.Kind and returns everything collected.
func Run(ctx context.Context, client ghub.Client, opts Options) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(ctx)
	col := &collector{ctx: ctx, events: make(chan event)}
	b := browse.New(client, col, browse.Options{
		Kind:     opts.Kind,
		PageSize: opts.PageSize,
		Logger:   opts.Logger,
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = b.Run(ctx)
	}()
	defer func() {
		cancel()
		<-done
	}()

	snap := &Snapshot{
		ID:   uuid.NewString(),
		Kind: opts.Kind.String(),
		Date: opts.Now().Format(DateFormat),
	}

	b.LoadInitial()
	for {
		var ev event
		select {
		case ev = <-col.events:
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		if ev.failed {
			return nil, &Error{Page: snap.Pages + 1, Message: ev.message}
		}

		// An empty page leaves the accumulated list unchanged.
		if len(ev.items) == len(snap.Items) {
			break
		}
		snap.Items = ev.items
		snap.Pages++
		opts.Logger.Debug("exported page",
			slog.String("kind", snap.Kind),
			slog.Int("page", snap.Pages),
			slog.Int("total", len(snap.Items)))

		if opts.MaxPages > 0 && snap.Pages >= opts.MaxPages {
			break
		}
		b.ScrollNearBottom()
	}

	if snap.Items == nil {
		snap.Items = []present.Item{}
	}
	return snap, nil
}
