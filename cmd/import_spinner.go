package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type importFetchDoneMsg struct {
	data []byte
	err  error
}

type importFetchSpinnerModel struct {
	spinner spinner.Model
	label   string
	fetch   tea.Cmd
	data    []byte
	err     error
	done    bool
}

func newImportFetchSpinnerModel(label string, fetch tea.Cmd) importFetchSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return importFetchSpinnerModel{
		spinner: s,
		label:   label,
		fetch:   fetch,
	}
}

func (m importFetchSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch)
}

func (m importFetchSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case importFetchDoneMsg:
		m.done = true
		m.data = msg.data
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m importFetchSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runImportFetchSpinner shows a spinner on output while fetch runs and
// returns what fetch produced.
func runImportFetchSpinner(ctx context.Context, output io.Writer, label string, fetch func(context.Context) ([]byte, error)) ([]byte, error) {
	fetchCmd := func() tea.Msg {
		data, err := fetch(ctx)
		return importFetchDoneMsg{data: data, err: err}
	}

	p := tea.NewProgram(
		newImportFetchSpinnerModel(label, fetchCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	result, ok := finalModel.(importFetchSpinnerModel)
	if !ok {
		return nil, fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.data, result.err
}
