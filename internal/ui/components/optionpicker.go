package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizup/internal/ui/theme"
)

// PickMode controls how an OptionPicker collects choices.
type PickMode int

const (
	// PickOne selects a single option; enter submits it.
	PickOne PickMode = iota
	// PickMany toggles options with space; enter submits the set.
	PickMany
	// PickOrdered numbers options in the order they are picked; enter
	// submits once every option has a position.
	PickOrdered
)

// OptionPicker is a keyboard-driven option selector used for quiz
// questions. Rendering of correct/incorrect state is left to the
// screen; the picker only collects a choice.
type OptionPicker struct {
	Options   []string
	Mode      PickMode
	Cursor    int
	Submitted bool

	toggled map[int]bool // PickMany
	order   []int        // PickOrdered, option indexes in pick order
}

// NewOptionPicker creates a picker over options in the given mode.
func NewOptionPicker(options []string, mode PickMode) OptionPicker {
	return OptionPicker{
		Options: options,
		Mode:    mode,
		toggled: make(map[int]bool),
	}
}

// SubmitMsg is emitted when the user confirms their choice.
type SubmitMsg struct {
	Values []string
}

// Init returns nil.
func (p OptionPicker) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (p OptionPicker) Update(msg tea.Msg) (OptionPicker, tea.Cmd) {
	if p.Submitted {
		return p, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.Cursor > 0 {
			p.Cursor--
		}
	case "down", "j":
		if p.Cursor < len(p.Options)-1 {
			p.Cursor++
		}
	case "space", " ":
		switch p.Mode {
		case PickMany:
			p.toggled[p.Cursor] = !p.toggled[p.Cursor]
		case PickOrdered:
			p.togglePick(p.Cursor)
		}
	case "enter":
		return p.submit()
	}

	return p, nil
}

// togglePick appends the index to the pick order, or removes it when
// already picked so a mistake can be undone.
func (p *OptionPicker) togglePick(idx int) {
	for i, picked := range p.order {
		if picked == idx {
			p.order = append(p.order[:i], p.order[i+1:]...)
			return
		}
	}
	p.order = append(p.order, idx)
}

func (p OptionPicker) submit() (OptionPicker, tea.Cmd) {
	switch p.Mode {
	case PickOne:
		p.Submitted = true
	case PickMany:
		if len(p.Values()) == 0 {
			return p, nil
		}
		p.Submitted = true
	case PickOrdered:
		if len(p.order) != len(p.Options) {
			return p, nil
		}
		p.Submitted = true
	}

	values := p.Values()
	return p, func() tea.Msg { return SubmitMsg{Values: values} }
}

// Values returns the current choice: one option for PickOne, the
// toggled set for PickMany, the picked sequence for PickOrdered.
func (p OptionPicker) Values() []string {
	switch p.Mode {
	case PickMany:
		var vals []string
		for i, opt := range p.Options {
			if p.toggled[i] {
				vals = append(vals, opt)
			}
		}
		return vals
	case PickOrdered:
		vals := make([]string, 0, len(p.order))
		for _, idx := range p.order {
			vals = append(vals, p.Options[idx])
		}
		return vals
	default:
		if p.Cursor >= 0 && p.Cursor < len(p.Options) {
			return []string{p.Options[p.Cursor]}
		}
		return nil
	}
}

// orderPosition returns the 1-based pick position of idx, 0 if unpicked.
func (p OptionPicker) orderPosition(idx int) int {
	for i, picked := range p.order {
		if picked == idx {
			return i + 1
		}
	}
	return 0
}

// View renders the option list with cursor and selection markers.
func (p OptionPicker) View() string {
	var s string
	for i, opt := range p.Options {
		cursor := "  "
		if i == p.Cursor && !p.Submitted {
			cursor = "▸ "
		}

		marker := ""
		switch p.Mode {
		case PickMany:
			if p.toggled[i] {
				marker = "[x] "
			} else {
				marker = "[ ] "
			}
		case PickOrdered:
			if pos := p.orderPosition(i); pos > 0 {
				marker = fmt.Sprintf("%d. ", pos)
			} else {
				marker = "·  "
			}
		}

		line := cursor + marker + opt

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == p.Cursor && !p.Submitted {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		s += style.Render(line) + "\n"
	}
	return s
}
