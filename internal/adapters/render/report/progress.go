package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type taskDoneMsg struct {
	err error
}

// progressModel animates a spinner next to label while task runs, then leaves
// one summary line behind.
type progressModel struct {
	spinner spinner.Model
	styles  styles
	label   string
	task    tea.Cmd
	started time.Time
	elapsed time.Duration
	err     error
	done    bool
}

func newProgressModel(label string, task tea.Cmd, started time.Time) progressModel {
	st := newStyles()
	return progressModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(st.planned)),
		styles:  st,
		label:   label,
		task:    task,
		started: started,
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.task)
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		m.elapsed = msg.Time.Sub(m.started)
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case taskDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m progressModel) View() string {
	elapsed := m.styles.header.Render(fmt.Sprintf("(%s)", m.elapsed.Truncate(time.Second)))
	switch {
	case !m.done:
		return fmt.Sprintf("%s %s %s", m.spinner.View(), m.styles.detail.Render(m.label), elapsed)
	case m.err != nil:
		return m.styles.failure.Render("✗ "+m.label) + "\n"
	default:
		return m.styles.ok.Render("✓ "+m.label) + "\n"
	}
}

// Progress runs task while showing label on output and returns the task's error.
func Progress(ctx context.Context, output io.Writer, label string, task func(context.Context) error) error {
	taskCmd := func() tea.Msg {
		return taskDoneMsg{err: task(ctx)}
	}

	p := tea.NewProgram(
		newProgressModel(label, taskCmd, time.Now()),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(progressModel)
	if !ok {
		return ErrUnexpectedRenderModel
	}

	return result.err
}
