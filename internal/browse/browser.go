// Package browse drives a paginated GitHub list and the single-result search
// that can replace it.
//
// A Browser owns all mutable state (page cursor, query mode, displayed list)
// and mutates it only on the goroutine running Run. Public methods enqueue
// work and return immediately. Fetches run on their own goroutines and post
// their completion back onto the loop, where results belonging to an older
// mode or reset are dropped.
package browse

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	ghub "github.com/stahnma/gh-explore/internal/github"
	"github.com/stahnma/gh-explore/internal/present"
)

// DefaultDebounce is the quiet interval before a changed query is searched.
const DefaultDebounce = 500 * time.Millisecond

// DefaultPageSize matches the page size used by both tabs.
const DefaultPageSize = 5

// Kind selects which resource a Browser lists.
type Kind int

const (
	Repositories Kind = iota
	Users
)

func (k Kind) String() string {
	if k == Users {
		return "users"
	}
	return "repositories"
}

// Mode is the query mode.
type Mode int

const (
	Browsing Mode = iota
	Searching
)

func (m Mode) String() string {
	if m == Searching {
		return "searching"
	}
	return "browsing"
}

// Display is what the view currently shows. Exactly one is current.
type Display int

const (
	ShowNothing Display = iota
	ShowList
	ShowResult
	ShowError
)

// View receives display updates. Calls arrive on the Browser loop goroutine,
// one at a time.
type View interface {
	// DisplayList shows the accumulated list. firstPage is true when the
	// list was just reset, false when a page was appended to it.
	DisplayList(items []present.Item, firstPage bool)
	DisplaySingleResult(item present.Item)
	DisplayError(message string)
}

// Options configures a Browser.
type Options struct {
	Kind     Kind
	PageSize int
	Debounce time.Duration
	Logger   *slog.Logger
}

// State is a point-in-time copy of a Browser's state.
type State struct {
	Kind       Kind
	Mode       Mode
	Query      string
	Page       int
	HasMore    bool
	PagerState PagerState
	Display    Display
	Items      []present.Item
	Result     present.Item
	Message    string
}

// Browser is the paginated list plus search controller for one Kind.
type Browser struct {
	client ghub.Client
	view   View
	kind   Kind
	wait   time.Duration
	logger *slog.Logger

	queue    *queue
	inflight sync.WaitGroup

	// Owned by the Run goroutine.
	ctx         context.Context
	pager       *Pager
	mode        Mode
	query       string
	epoch       uint64
	items       []present.Item
	result      present.Item
	message     string
	display     Display
	timer       *time.Timer
	debounceSeq uint64

	mu       sync.Mutex
	snapshot State
}

// New creates a Browser. Nothing happens until Run is started and an
// operation such as LoadInitial is called.
func New(client ghub.Client, view View, opts Options) *Browser {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Debounce < 0 {
		opts.Debounce = 0
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	b := &Browser{
		client: client,
		view:   view,
		kind:   opts.Kind,
		wait:   opts.Debounce,
		logger: opts.Logger.With(slog.String("tab", opts.Kind.String())),
		queue:  newQueue(),
		pager:  NewPager(opts.PageSize),
	}
	b.publish()
	return b
}

// Kind returns the resource this Browser lists.
func (b *Browser) Kind() Kind { return b.kind }

// Run processes events until ctx is done. Fetches started by the Browser use
// ctx; Run waits for them before returning.
func (b *Browser) Run(ctx context.Context) error {
	b.ctx = ctx
	defer b.inflight.Wait()
	for {
		select {
		case <-ctx.Done():
			if b.timer != nil {
				b.timer.Stop()
			}
			return ctx.Err()
		case <-b.queue.signal:
			for _, fn := range b.queue.drain() {
				fn()
				b.publish()
			}
		}
	}
}

// LoadInitial switches to browsing and fetches page 1.
func (b *Browser) LoadInitial() {
	b.queue.push(func() {
		b.cancelDebounce()
		b.browse()
	})
}

// ScrollNearBottom fetches the next page when browsing. It is a no-op while a
// page is loading, once the list is exhausted, or while searching.
func (b *Browser) ScrollNearBottom() {
	b.queue.push(b.loadNext)
}

// QueryChanged records new input and searches once it has been stable for
// the debounce interval.
func (b *Browser) QueryChanged(text string) {
	b.queue.push(func() {
		b.query = text
		b.scheduleDebounce(text)
	})
}

// QuerySubmitted searches for text immediately, dropping any pending debounce.
func (b *Browser) QuerySubmitted(text string) {
	b.queue.push(func() {
		b.cancelDebounce()
		b.query = text
		b.apply(text)
	})
}

// LookupRepository searches for a single repository by owner and name.
func (b *Browser) LookupRepository(owner, name string) {
	b.queue.push(func() {
		b.cancelDebounce()
		owner, name = strings.TrimSpace(owner), strings.TrimSpace(name)
		b.query = owner + "/" + name
		b.lookupRepository(owner, name)
	})
}

// Snapshot returns a copy of the state as of the last processed event.
func (b *Browser) Snapshot() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.snapshot
	s.Items = append([]present.Item(nil), s.Items...)
	return s
}

func (b *Browser) publish() {
	s := State{
		Kind:       b.kind,
		Mode:       b.mode,
		Query:      b.query,
		Page:       b.pager.Page(),
		HasMore:    b.pager.HasMore(),
		PagerState: b.pager.State(),
		Display:    b.display,
		Items:      append([]present.Item(nil), b.items...),
		Result:     b.result,
		Message:    b.message,
	}
	b.mu.Lock()
	b.snapshot = s
	b.mu.Unlock()
}

func (b *Browser) scheduleDebounce(text string) {
	if b.timer != nil {
		b.timer.Stop()
	}
	b.debounceSeq++
	seq := b.debounceSeq
	if b.wait == 0 {
		b.timer = nil
		b.apply(text)
		return
	}
	b.timer = time.AfterFunc(b.wait, func() {
		b.queue.push(func() {
			// A Stop that lost the race with the timer firing leaves a
			// stale callback behind; only the latest schedule may apply.
			if seq != b.debounceSeq {
				return
			}
			b.timer = nil
			b.apply(text)
		})
	})
}

func (b *Browser) cancelDebounce() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.debounceSeq++
}

// apply resolves a settled query: empty means browse, anything else searches.
func (b *Browser) apply(text string) {
	q := strings.TrimSpace(text)
	if q == "" {
		b.browse()
		return
	}
	if b.kind == Repositories {
		if owner, name, ok := splitRepo(q); ok {
			b.lookupRepository(owner, name)
			return
		}
	}
	b.searchUser(q)
}

// browse resets pagination and fetches page 1.
func (b *Browser) browse() {
	b.mode = Browsing
	b.query = ""
	b.epoch++
	b.items = nil
	b.result = nil
	b.message = ""
	b.display = ShowNothing
	b.pager.Reset()
	b.loadNext()
}

func (b *Browser) loadNext() {
	if b.mode != Browsing {
		return
	}
	page, ok := b.pager.Begin()
	if !ok {
		return
	}
	epoch, size := b.epoch, b.pager.Size()
	b.logger.Debug("loading page", slog.Int("page", page), slog.Int("per_page", size))
	b.spawn(func(ctx context.Context) func() {
		items, err := b.fetchPage(ctx, page, size)
		return func() { b.applyPage(epoch, page, items, err) }
	})
}

func (b *Browser) fetchPage(ctx context.Context, page, size int) ([]present.Item, error) {
	switch b.kind {
	case Users:
		users, err := b.client.ListUsers(ctx, page, size)
		if err != nil {
			return nil, err
		}
		return present.Users(users), nil
	default:
		repos, err := b.client.ListRepositories(ctx, page, size)
		if err != nil {
			return nil, err
		}
		return present.Repositories(repos), nil
	}
}

func (b *Browser) applyPage(epoch uint64, page int, items []present.Item, err error) {
	if b.stale(epoch, "page") {
		return
	}
	b.pager.Complete(len(items), err)
	if err != nil {
		b.showError(err)
		return
	}
	first := page == 1
	if first {
		b.items = items
	} else {
		b.items = append(b.items, items...)
	}
	b.display = ShowList
	b.message = ""
	b.view.DisplayList(append([]present.Item(nil), b.items...), first)
}

// enterSearch discards the list and clears the view before a search fetch.
func (b *Browser) enterSearch() uint64 {
	b.mode = Searching
	b.epoch++
	b.items = nil
	b.result = nil
	b.message = ""
	b.display = ShowNothing
	b.pager.Reset()
	b.view.DisplayList(nil, true)
	return b.epoch
}

func (b *Browser) searchUser(login string) {
	epoch := b.enterSearch()
	b.logger.Debug("searching user", slog.String("login", login))
	b.spawn(func(ctx context.Context) func() {
		user, err := b.client.GetUser(ctx, login)
		var item present.Item
		if err == nil {
			item = present.FromUser(user)
		}
		return func() { b.applyResult(epoch, item, err) }
	})
}

func (b *Browser) lookupRepository(owner, name string) {
	epoch := b.enterSearch()
	b.logger.Debug("looking up repository", slog.String("owner", owner), slog.String("name", name))
	b.spawn(func(ctx context.Context) func() {
		repo, err := b.client.GetRepository(ctx, owner, name)
		var item present.Item
		if err == nil {
			item = present.FromRepository(repo)
		}
		return func() { b.applyResult(epoch, item, err) }
	})
}

func (b *Browser) applyResult(epoch uint64, item present.Item, err error) {
	if b.stale(epoch, "search") {
		return
	}
	if err != nil {
		b.showError(err)
		return
	}
	b.result = item
	b.display = ShowResult
	b.message = ""
	b.view.DisplaySingleResult(item)
}

func (b *Browser) showError(err error) {
	b.message = present.Message(err)
	b.display = ShowError
	b.view.DisplayError(b.message)
}

func (b *Browser) stale(epoch uint64, what string) bool {
	if epoch == b.epoch {
		return false
	}
	b.logger.Debug("discarding stale completion",
		slog.String("kind", what),
		slog.Uint64("epoch", epoch),
		slog.Uint64("current", b.epoch))
	return true
}

// spawn runs fetch off the loop and queues the completion it returns.
func (b *Browser) spawn(fetch func(ctx context.Context) func()) {
	ctx := b.ctx
	b.inflight.Add(1)
	go func() {
		defer b.inflight.Done()
		b.queue.push(fetch(ctx))
	}()
}

// splitRepo parses "owner/name".
func splitRepo(q string) (owner, name string, ok bool) {
	owner, name, found := strings.Cut(q, "/")
	owner, name = strings.TrimSpace(owner), strings.TrimSpace(name)
	if !found || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", false
	}
	return owner, name, true
}
