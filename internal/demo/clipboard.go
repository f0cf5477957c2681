package demo

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardMsg reports the outcome of a copy.
type clipboardMsg struct {
	text string
	err  error
}

// copyNumberCmd copies a formatted number off the UI goroutine.
func copyNumberCmd(formatted string) tea.Cmd {
	if formatted == "" {
		return func() tea.Msg {
			return clipboardMsg{err: fmt.Errorf("nothing to copy: no formatted number yet")}
		}
	}
	return func() tea.Msg {
		if clipboard.Unsupported {
			return clipboardMsg{text: formatted, err: fmt.Errorf("no clipboard tool found (install xclip, xsel or wl-clipboard)")}
		}
		return clipboardMsg{text: formatted, err: clipboard.WriteAll(formatted)}
	}
}
