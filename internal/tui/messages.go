package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stahnma/gh-explore/internal/browse"
	"github.com/stahnma/gh-explore/internal/present"
)

// listMsg carries DisplayList into the bubbletea loop.
type listMsg struct {
	kind      browse.Kind
	items     []present.Item
	firstPage bool
}

// resultMsg carries DisplaySingleResult.
type resultMsg struct {
	kind browse.Kind
	item present.Item
}

// errorMsg carries DisplayError.
type errorMsg struct {
	kind    browse.Kind
	message string
}

// programView is the browse.View for one tab. Browser callbacks arrive on the
// browser's goroutine and are handed to the program as messages, so the model
// is only ever touched from Update.
type programView struct {
	kind browse.Kind
	send func(tea.Msg)
}

func (v programView) DisplayList(items []present.Item, firstPage bool) {
	v.send(listMsg{kind: v.kind, items: items, firstPage: firstPage})
}

func (v programView) DisplaySingleResult(item present.Item) {
	v.send(resultMsg{kind: v.kind, item: item})
}

func (v programView) DisplayError(message string) {
	v.send(errorMsg{kind: v.kind, message: message})
}
