package ui

import (
	"github.com/atomicstack/nvim-ui-mirror/internal/backend"
	"github.com/atomicstack/nvim-ui-mirror/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(ch <-chan backend.Event) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-ch
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyBackendEvent(eventMsg.event)
	if m.events == nil || m.exited {
		return cmd
	}
	waitCmd := waitForBackendEvent(m.events)
	if cmd != nil {
		return tea.Batch(cmd, waitCmd)
	}
	return waitCmd
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.events = nil
	if m.exited {
		return nil
	}
	m.exited = true
	return tea.Quit
}

func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	res := m.dispatcher.Handle(evt)
	if res.Err != nil {
		m.errMsg = res.Err.Error()
		events.UI.BackendError(res.Err)
	}
	if res.Exited {
		m.exited = true
		m.backendErr = res.Err
		return tea.Quit
	}
	if res.Flushed {
		m.frames++
		if res.Err == nil {
			m.errMsg = ""
		}
		m.refresh()
	}
	return nil
}

// Err returns the error the editor session ended with, if any.
func (m *Model) Err() error {
	return m.backendErr
}
