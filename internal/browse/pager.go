package browse

// PagerState is the load state of a Pager.
type PagerState int

const (
	Idle PagerState = iota
	Loading
	Loaded
)

func (s PagerState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// Pager tracks the page cursor for a paginated list. The cursor is the page
// that the next Begin will hand out. It only advances after a successful,
// non-empty page; an empty page clears HasMore until Reset.
//
// Pager is not safe for concurrent use; the Browser loop owns it.
type Pager struct {
	page    int
	size    int
	hasMore bool
	state   PagerState
}

// NewPager returns a reset pager with the given page size.
func NewPager(size int) *Pager {
	p := &Pager{size: size}
	p.Reset()
	return p
}

// Reset moves the cursor back to page 1 with more pages assumed.
func (p *Pager) Reset() {
	p.page = 1
	p.hasMore = true
	p.state = Idle
}

// Begin claims the current page for fetching. It reports false while a fetch
// is outstanding or once the list is exhausted.
func (p *Pager) Begin() (page int, ok bool) {
	if p.state == Loading || !p.hasMore {
		return 0, false
	}
	p.state = Loading
	return p.page, true
}

// Complete records the outcome of the fetch claimed by Begin. A failed fetch
// leaves the cursor and HasMore untouched so the same page is tried next time.
func (p *Pager) Complete(count int, err error) {
	if p.state != Loading {
		return
	}
	p.state = Loaded
	if err != nil {
		return
	}
	if count > 0 {
		p.page++
	} else {
		p.hasMore = false
	}
}

func (p *Pager) Page() int         { return p.page }
func (p *Pager) Size() int         { return p.size }
func (p *Pager) HasMore() bool     { return p.hasMore }
func (p *Pager) State() PagerState { return p.state }
