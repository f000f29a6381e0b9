package out

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizterm/internal/modules/quiz/domain"
	quizout "quizterm/internal/modules/quiz/port/out"
	apperrors "quizterm/internal/platform/errors"
	"quizterm/internal/ui/theme"
)

const (
	WelcomeBanner = "=== Welcome to the Terminal Quiz Game ==="
	SummaryBanner = "=== Quiz Summary ==="
	Farewell      = "Thank you for playing!"
)

// Console plays the quiz over a line-based reader and writer. Styling is
// applied only when styled is set, so piped output stays plain text.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	styled bool
}

func NewConsole(in io.Reader, out io.Writer, styled bool) quizout.Console {
	return &Console{in: bufio.NewReader(in), out: out, styled: styled}
}

func (c *Console) render(style lipgloss.Style, text string) string {
	if !c.styled {
		return text
	}
	return style.Render(text)
}

func (c *Console) Welcome() error {
	_, err := fmt.Fprintln(c.out, c.render(theme.Title, WelcomeBanner))
	return err
}

func (c *Console) ShowQuestion(position, total int, q domain.Question) error {
	header := fmt.Sprintf("Question %d / %d", position, total)
	if _, err := fmt.Fprintf(c.out, "\n%s\n%s\n", c.render(theme.Muted, header), c.render(theme.Title, q.Text)); err != nil {
		return err
	}
	for i, choice := range q.Choices {
		if _, err := fmt.Fprintf(c.out, "%d. %s\n", i+1, c.render(theme.Choice, choice)); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) Prompt(choices int) error {
	_, err := fmt.Fprintf(c.out, "Your answer (enter option number 1-%d): ", choices)
	return err
}

func (c *Console) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	// Lines are read whole regardless of length; an oversized answer is
	// still just invalid input for the session to reject.
	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read answer: %w", err)
	}
	if err != nil && line == "" {
		return "", apperrors.ErrInputClosed
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) ShowInputError(err error) error {
	_, werr := fmt.Fprintln(c.out, c.render(theme.Hot, err.Error()))
	return werr
}

func (c *Console) ShowOutcome(outcome domain.Outcome) error {
	if outcome.Correct {
		_, err := fmt.Fprintln(c.out, c.render(theme.Correct, "Correct!"))
		return err
	}
	_, err := fmt.Fprintf(c.out, "%s Correct answer was: %s\n", c.render(theme.Wrong, "Wrong."), outcome.CorrectText)
	return err
}

func (c *Console) ShowSummary(summary domain.Summary) error {
	_, err := fmt.Fprintf(c.out, "\n%s\n%s\n%s\n", c.render(theme.Title, SummaryBanner), summary.String(), Farewell)
	return err
}
