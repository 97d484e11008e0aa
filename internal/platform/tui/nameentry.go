package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/highscore"
)

// nameForm collects one name per local player after a game ends.
type nameForm struct {
	inputs []textinput.Model
	focus  int
	score  int
	err    error
}

func newNameForm(players, score int) nameForm {
	f := nameForm{score: score}
	for i := range max(players, 1) {
		in := textinput.New()
		in.Prompt = fmt.Sprintf("P%d > ", i+1)
		in.Placeholder = core.PlayerID(i + 1).Name()
		in.CharLimit = highscore.MaxNameLength
		in.Width = highscore.MaxNameLength + 1
		f.inputs = append(f.inputs, in)
	}
	f.inputs[0].Focus()
	return f
}

func (f nameForm) mode() highscore.Mode {
	if len(f.inputs) > 1 {
		return highscore.ModeMulti
	}
	return highscore.ModeSingle
}

// formResult is what the player did with the form this update.
type formResult int

const (
	formEditing formResult = iota
	formSubmitted
	formSkipped
)

func (f nameForm) update(msg tea.Msg) (nameForm, formResult, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return f, formSkipped, nil
		case "tab", "down":
			return f.setFocus(f.focus + 1), formEditing, nil
		case "shift+tab", "up":
			return f.setFocus(f.focus - 1), formEditing, nil
		case "enter":
			if f.focus < len(f.inputs)-1 {
				return f.setFocus(f.focus + 1), formEditing, nil
			}
			if _, err := f.names(); err != nil {
				f.err = err
				return f, formEditing, nil
			}
			return f, formSubmitted, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	f.err = nil
	return f, formEditing, cmd
}

func (f nameForm) setFocus(i int) nameForm {
	n := len(f.inputs)
	f.focus = ((i % n) + n) % n
	for j := range f.inputs {
		if j == f.focus {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return f
}

// names returns validated, trimmed names in player order.
func (f nameForm) names() ([]string, error) {
	out := make([]string, len(f.inputs))
	for i, in := range f.inputs {
		name, err := highscore.ValidateName(in.Value())
		if err != nil {
			return nil, fmt.Errorf("P%d: %w", i+1, err)
		}
		out[i] = name
	}
	return out, nil
}

func (f nameForm) view(best int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("GAME OVER"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Score: %d", f.score)
	if best > 0 {
		fmt.Fprintf(&b, "   Best: %d", best)
	}
	b.WriteString("\n\n")
	for _, in := range f.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if f.err != nil {
		b.WriteString(errorStyle.Render(strings.ReplaceAll(f.err.Error(), "highscore: ", "")))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("Enter: save  |  Tab: next name  |  Esc: skip"))
	return b.String()
}

func (f nameForm) init() tea.Cmd {
	return textinput.Blink
}
