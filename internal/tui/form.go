package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type formFocus int

const (
	focusTitle formFocus = iota
	focusDescription
	focusPeople
)

// formModel collects the three new-project fields. Submission is handled by
// the app model (it owns the Board); the form only manages input state and
// focus. A rejected submission keeps every field as typed; only a successful
// one clears them.
type formModel struct {
	title       textinput.Model
	description textinput.Model
	people      textinput.Model
	focus       formFocus
}

func newFormModel() formModel {
	f := formModel{}

	f.title = textinput.New()
	f.title.Placeholder = "Title"
	f.title.CharLimit = 200
	f.title.Width = 40

	f.description = textinput.New()
	f.description.Placeholder = "Description (min. 5 characters)"
	f.description.CharLimit = 500
	f.description.Width = 40

	f.people = textinput.New()
	f.people.Placeholder = "People (1-5)"
	f.people.CharLimit = 2
	f.people.Width = 6

	f.title.Focus()
	return f
}

func (f *formModel) inputs() []*textinput.Model {
	return []*textinput.Model{&f.title, &f.description, &f.people}
}

func (f *formModel) setFocus(focus formFocus) {
	f.focus = focus
	for i, in := range f.inputs() {
		if formFocus(i) == focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (f *formModel) cycleFocus(delta int) {
	n := len(f.inputs())
	f.setFocus(formFocus((int(f.focus) + delta + n) % n))
}

// clear resets all three fields and refocuses the title. Called only after a
// successful submission.
func (f *formModel) clear() {
	for _, in := range f.inputs() {
		in.SetValue("")
	}
	f.setFocus(focusTitle)
}

func (f *formModel) update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, in := range f.inputs() {
		if formFocus(i) != f.focus {
			continue
		}
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (f *formModel) view(width int) string {
	label := lipgloss.NewStyle().Foreground(colorSurfaceFg).Bold(true)

	rows := []string{
		label.Render("New project"),
		"",
		label.Render("Title"),
		renderInputLine(width-4, f.title.View()),
		label.Render("Description"),
		renderInputLine(width-4, f.description.View()),
		label.Render("People"),
		renderInputLine(width-4, f.people.View()),
		"",
		styleMuted().Render("enter: add  tab: next field  esc: close"),
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(1, 2).
		Render(strings.Join(rows, "\n"))
	return box
}

// renderInputLine renders a text input as a single visual line. If the view
// ever contains newlines (or overflows due to ANSI/cursor styling), it can
// trigger wrapping that looks like "newline insertion" while typing.
func renderInputLine(bodyW int, inputView string) string {
	if bodyW < 10 {
		bodyW = 10
	}
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	line := lipgloss.PlaceHorizontal(
		bodyW,
		lipgloss.Left,
		" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > bodyW {
		// Never exceed the modal body width; terminate ANSI styling to
		// prevent bleed.
		line = xansi.Cut(line, 0, bodyW) + "\x1b[0m"
	}
	return line
}
