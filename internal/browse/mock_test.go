package browse

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	ghub "github.com/stahnma/gh-explore/internal/github"
	"github.com/stahnma/gh-explore/internal/present"
)

// mockClient implements ghub.Client for testing and records every call.
type mockClient struct {
	listRepositoriesFn func(ctx context.Context, page, perPage int) ([]*ghub.RepositoryRecord, error)
	listUsersFn        func(ctx context.Context, page, perPage int) ([]*ghub.UserRecord, error)
	getUserFn          func(ctx context.Context, login string) (*ghub.UserRecord, error)
	getRepositoryFn    func(ctx context.Context, owner, name string) (*ghub.RepositoryRecord, error)

	mu        sync.Mutex
	repoPages []int
	userPages []int
	logins    []string
	lookups   []string
}

func (m *mockClient) ListRepositories(ctx context.Context, page, perPage int) ([]*ghub.RepositoryRecord, error) {
	m.mu.Lock()
	m.repoPages = append(m.repoPages, page)
	m.mu.Unlock()
	if m.listRepositoriesFn == nil {
		return nil, nil
	}
	return m.listRepositoriesFn(ctx, page, perPage)
}

func (m *mockClient) ListUsers(ctx context.Context, page, perPage int) ([]*ghub.UserRecord, error) {
	m.mu.Lock()
	m.userPages = append(m.userPages, page)
	m.mu.Unlock()
	if m.listUsersFn == nil {
		return nil, nil
	}
	return m.listUsersFn(ctx, page, perPage)
}

func (m *mockClient) GetUser(ctx context.Context, login string) (*ghub.UserRecord, error) {
	m.mu.Lock()
	m.logins = append(m.logins, login)
	m.mu.Unlock()
	if m.getUserFn == nil {
		return &ghub.UserRecord{Login: login}, nil
	}
	return m.getUserFn(ctx, login)
}

func (m *mockClient) GetRepository(ctx context.Context, owner, name string) (*ghub.RepositoryRecord, error) {
	m.mu.Lock()
	m.lookups = append(m.lookups, owner+"/"+name)
	m.mu.Unlock()
	if m.getRepositoryFn == nil {
		return &ghub.RepositoryRecord{Name: name, FullName: owner + "/" + name, Owner: &ghub.Owner{Login: owner}}, nil
	}
	return m.getRepositoryFn(ctx, owner, name)
}

func (m *mockClient) calls() (repoPages, userPages []int, logins, lookups []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.repoPages...),
		append([]int(nil), m.userPages...),
		append([]string(nil), m.logins...),
		append([]string(nil), m.lookups...)
}

// pagesOf serves pages from sizes: page n returns sizes[n-1] repositories,
// numbered so order can be checked across pages.
func pagesOf(sizes ...int) func(context.Context, int, int) ([]*ghub.RepositoryRecord, error) {
	return func(_ context.Context, page, _ int) ([]*ghub.RepositoryRecord, error) {
		if page > len(sizes) {
			return nil, nil
		}
		start := 0
		for _, n := range sizes[:page-1] {
			start += n
		}
		return makeRepos(start, sizes[page-1]), nil
	}
}

func makeRepos(start, n int) []*ghub.RepositoryRecord {
	repos := make([]*ghub.RepositoryRecord, 0, n)
	for i := start; i < start+n; i++ {
		repos = append(repos, &ghub.RepositoryRecord{
			ID:       int64(i),
			Name:     fmt.Sprintf("repo-%d", i),
			FullName: fmt.Sprintf("owner/repo-%d", i),
			Owner:    &ghub.Owner{Login: "owner"},
		})
	}
	return repos
}

type viewEvent struct {
	kind    string // "list", "result" or "error"
	items   []present.Item
	first   bool
	item    present.Item
	message string
}

// recordingView implements View and keeps every call in order.
type recordingView struct {
	mu     sync.Mutex
	events []viewEvent
}

func (v *recordingView) DisplayList(items []present.Item, firstPage bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.events = append(v.events, viewEvent{kind: "list", items: items, first: firstPage})
}

func (v *recordingView) DisplaySingleResult(item present.Item) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.events = append(v.events, viewEvent{kind: "result", item: item})
}

func (v *recordingView) DisplayError(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.events = append(v.events, viewEvent{kind: "error", message: message})
}

func (v *recordingView) all() []viewEvent {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]viewEvent(nil), v.events...)
}

func (v *recordingView) last() (viewEvent, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.events) == 0 {
		return viewEvent{}, false
	}
	return v.events[len(v.events)-1], true
}

// startBrowser runs a Browser until the test ends.
func startBrowser(t *testing.T, client ghub.Client, opts Options) (*Browser, *recordingView) {
	t.Helper()
	view := &recordingView{}
	b := New(client, view, opts)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		b.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return b, view
}

// flush waits until every event queued so far has been processed.
func flush(t *testing.T, b *Browser) {
	t.Helper()
	done := make(chan struct{})
	b.queue.push(func() { close(done) })
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("browser loop did not drain")
	}
}

func keys(items []present.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Key()
	}
	return out
}
