package play

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizterm/internal/modules/quiz/domain"
	"quizterm/internal/platform/clock"
	apperrors "quizterm/internal/platform/errors"
	"quizterm/internal/ui/theme"
)

// Model plays a question set in a Bubble Tea program. All session state is
// mutated from Update, one message at a time.
type Model struct {
	session  *domain.Session
	clock    clock.Clock
	input    textinput.Model
	feedback string
	done     bool
	aborted  bool
	width    int
}

// New builds a model and starts the timer of the first question.
func New(set domain.QuestionSet, clk clock.Clock) Model {
	ti := textinput.New()
	ti.Placeholder = "option number"
	ti.CharLimit = 8
	ti.Prompt = "› "
	ti.Focus()

	session := domain.NewSession(set)
	session.Begin(clk.Now())
	return Model{session: session, clock: clk, input: ti, done: session.Done()}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			if !m.done {
				m.aborted = true
			}
			return m, tea.Quit
		case tea.KeyEnter:
			if m.done {
				return m, tea.Quit
			}
			return m.submit(), nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() Model {
	line := m.input.Value()
	m.input.Reset()
	outcome, err := m.session.Submit(line, m.clock.Now())
	if err != nil {
		m.feedback = theme.Hot.Render(err.Error())
		return m
	}
	if outcome.Correct {
		m.feedback = theme.Correct.Render("Correct!")
	} else {
		m.feedback = theme.Wrong.Render("Wrong.") + " Correct answer was: " + outcome.CorrectText
	}
	if m.session.Done() {
		m.done = true
		m.input.Blur()
		return m
	}
	m.session.Begin(m.clock.Now())
	return m
}

func (m Model) View() string {
	if m.done {
		body := lipgloss.JoinVertical(lipgloss.Left,
			m.feedback,
			"",
			theme.Title.Render("=== Quiz Summary ==="),
			m.session.Summary().String(),
			"",
			theme.Muted.Render("enter: quit"),
		)
		return theme.App.Render(body)
	}

	q, pos, _ := m.session.Current()
	var choices strings.Builder
	for i, choice := range q.Choices {
		fmt.Fprintf(&choices, "%d. %s\n", i+1, theme.Choice.Render(choice))
	}
	pane := theme.Pane
	if m.width > 8 {
		pane = pane.Width(m.width - 8)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.Muted.Render(fmt.Sprintf("Question %d / %d", pos+1, m.session.Total())),
		pane.Render(theme.Title.Render(q.Text)+"\n\n"+strings.TrimRight(choices.String(), "\n")),
		m.input.View(),
		m.feedback,
		theme.Muted.Render(fmt.Sprintf("enter: answer (1-%d) • esc: quit", len(q.Choices))),
	)
	return theme.App.Render(body)
}

func (m Model) Summary() domain.Summary { return m.session.Summary() }

func (m Model) Done() bool { return m.done }

func (m Model) Aborted() bool { return m.aborted }

// Run plays the set to completion and returns the final summary.
func Run(ctx context.Context, set domain.QuestionSet, clk clock.Clock, in io.Reader, out io.Writer) (domain.Summary, error) {
	program := tea.NewProgram(New(set, clk),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	final, err := program.Run()
	if err != nil {
		return domain.Summary{}, fmt.Errorf("run quiz ui: %w", err)
	}
	model, ok := final.(Model)
	if !ok {
		return domain.Summary{}, fmt.Errorf("run quiz ui: unexpected model %T", final)
	}
	if model.Aborted() {
		return model.Summary(), apperrors.ErrInputClosed
	}
	return model.Summary(), nil
}
