package ui

import (
	"github.com/atomicstack/nvim-ui-mirror/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.filtering {
		return m.handleFilterKey(keyMsg)
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Highlights):
		m.showHl = !m.showHl
		events.UI.Toggle("highlights", m.showHl)
		m.refresh()
	case key.Matches(keyMsg, m.keys.Filter):
		if !m.showHl {
			return nil
		}
		m.filtering = true
		m.filter.SetValue(m.highlights.Filter)
		m.filter.CursorEnd()
		return m.filter.Focus()
	case key.Matches(keyMsg, m.keys.Up):
		m.scroll(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.scroll(1)
	case key.Matches(keyMsg, m.keys.PageUp):
		m.scroll(-m.body.Height)
	case key.Matches(keyMsg, m.keys.PageDown):
		m.scroll(m.body.Height)
	case key.Matches(keyMsg, m.keys.Home):
		if m.showHl {
			m.highlights.MoveCursorHome()
			m.refresh()
		} else {
			m.body.GotoTop()
		}
	case key.Matches(keyMsg, m.keys.End):
		if m.showHl {
			m.highlights.MoveCursorEnd()
			m.refresh()
		} else {
			m.body.GotoBottom()
		}
	}
	return nil
}

func (m *Model) scroll(delta int) {
	if m.showHl {
		if m.highlights.MoveCursorBy(delta) {
			m.refresh()
		}
		return
	}
	if delta < 0 {
		m.body.LineUp(-delta)
	} else {
		m.body.LineDown(delta)
	}
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.filtering = false
		m.filter.Blur()
		m.filter.Reset()
		m.highlights.SetFilter("")
		events.Filter.Cleared(m.highlights.ID)
		m.refresh()
		return nil
	case key.Matches(msg, m.keys.Accept):
		m.filtering = false
		m.filter.Blur()
		return nil
	case msg.Type == tea.KeyCtrlC:
		return tea.Quit
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if query := m.filter.Value(); query != m.highlights.Filter {
		m.highlights.SetFilter(query)
		events.Filter.Set(m.highlights.ID, query, len(m.highlights.Items))
		m.refresh()
	}
	return cmd
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = size.Width
	m.height = size.Height
	events.UI.Resize(size.Width, size.Height, m.fixedSize)
	if !m.fixedSize && size.Width > 0 && size.Height > 0 {
		m.state.SetSurfaceSize(float64(size.Width), float64(size.Height))
	}
	m.layout()
	m.refresh()
	return nil
}
