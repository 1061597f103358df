package tui

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stahnma/gh-explore/internal/browse"
	ghub "github.com/stahnma/gh-explore/internal/github"
)

// Options configures Run.
type Options struct {
	Start        browse.Kind
	RepoPageSize int
	UserPageSize int
	Debounce     time.Duration
	Logger       *slog.Logger
}

// Run starts a Browser per kind and the bubbletea program on top of them, and
// blocks until the user quits or ctx is done.
func Run(ctx context.Context, client ghub.Client, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var p *tea.Program
	send := func(msg tea.Msg) { p.Send(msg) }

	kinds := []browse.Kind{browse.Repositories, browse.Users}
	if opts.Start == browse.Users {
		kinds = []browse.Kind{browse.Users, browse.Repositories}
	}
	browsers := make([]*browse.Browser, 0, len(kinds))
	ctrls := make([]Controller, 0, len(kinds))
	for _, k := range kinds {
		size := opts.RepoPageSize
		if k == browse.Users {
			size = opts.UserPageSize
		}
		b := browse.New(client, programView{kind: k, send: send}, browse.Options{
			Kind:     k,
			PageSize: size,
			Debounce: opts.Debounce,
			Logger:   opts.Logger,
		})
		browsers = append(browsers, b)
		ctrls = append(ctrls, b)
	}

	p = tea.NewProgram(NewModel(nil, ctrls...), tea.WithContext(ctx), tea.WithAltScreen())

	var wg sync.WaitGroup
	for _, b := range browsers {
		b := b
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = b.Run(ctx)
		}()
	}

	_, err := p.Run()
	cancel()
	wg.Wait()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
