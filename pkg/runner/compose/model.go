package compose

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/eod/pkg/clip"
	"tableflip.dev/eod/pkg/journal"
	"tableflip.dev/eod/pkg/session"
)

const (
	fieldName = iota
	fieldDate
	fieldTitle
	fieldDetails
	fieldCount
)

const (
	formWidth    = 48
	previewWidth = 52
	helpText     = "tab next • ctrl+s save • ctrl+t template • ctrl+y copy • ctrl+o theme • esc cancel/quit"
)

type model struct {
	ctx     context.Context
	journal *journal.Store
	session *session.Session
	themes  *session.Themes
	copier  *clip.Copier

	inputs  [fieldDetails]textinput.Model
	details textarea.Model
	focus   int

	theme  session.Theme
	styles styles
	status string
	err    error
}

func newModel(ctx context.Context, j *journal.Store, s *session.Session, themes *session.Themes, c *clip.Copier, theme session.Theme) model {
	m := model{
		ctx:     ctx,
		journal: j,
		session: s,
		themes:  themes,
		copier:  c,
		theme:   theme,
		styles:  stylesFor(theme),
	}
	placeholders := [fieldDetails]string{"Your Name", "YYYY-MM-DD", "Today's Tasks & Progress"}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.Width = formWidth
		m.inputs[i] = in
	}
	m.details = textarea.New()
	m.details.Placeholder = "1. ..."
	m.details.ShowLineNumbers = false
	m.details.CharLimit = 0
	m.details.SetWidth(formWidth)
	m.details.SetHeight(10)

	m.loadForm()
	m.setFocus(fieldName)
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// loadForm copies the session's form into the widgets.
func (m *model) loadForm() {
	f := m.session.Form
	m.inputs[fieldName].SetValue(f.Name)
	m.inputs[fieldDate].SetValue(f.Date)
	m.inputs[fieldTitle].SetValue(f.Title)
	m.details.SetValue(f.Details)
}

// syncForm copies the widgets back into the session's form.
func (m *model) syncForm() {
	m.session.Form.Name = m.inputs[fieldName].Value()
	m.session.Form.Date = m.inputs[fieldDate].Value()
	m.session.Form.Title = m.inputs[fieldTitle].Value()
	m.session.Form.Details = m.details.Value()
}

func (m *model) setFocus(i int) tea.Cmd {
	m.focus = (i + fieldCount) % fieldCount
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.details.Blur()
	if m.focus == fieldDetails {
		return m.details.Focus()
	}
	return m.inputs[m.focus].Focus()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.session.Editing() {
				m.session.EndEdit(m.journal.Now())
				m.loadForm()
				m.status, m.err = "Edit cancelled", nil
				return m, nil
			}
			return m, tea.Quit
		case "tab":
			return m, m.setFocus(m.focus + 1)
		case "shift+tab":
			return m, m.setFocus(m.focus - 1)
		case "ctrl+s":
			m.save()
			return m, nil
		case "ctrl+t":
			m.syncForm()
			if m.session.GenerateTemplate() {
				m.details.SetValue(m.session.Form.Details)
				m.status, m.err = "Template inserted", nil
			}
			return m, nil
		case "ctrl+y":
			m.syncForm()
			if m.copier != nil && m.copier.Copy(m.session.Preview(m.journal.Now())) {
				m.status, m.err = "Preview copied", nil
			} else {
				m.status, m.err = "", errors.New("copy failed")
			}
			return m, nil
		case "ctrl+o":
			m.toggleTheme()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == fieldDetails {
		m.details, cmd = m.details.Update(msg)
	} else {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	m.syncForm()
	return m, cmd
}

func (m *model) save() {
	m.syncForm()
	editing := m.session.Editing()
	e, err := m.session.Save(m.ctx, m.journal)
	if err != nil {
		m.status, m.err = "", err
		return
	}
	m.loadForm()
	if editing {
		m.status = "Updated " + e.Heading()
	} else {
		m.status = "Saved " + e.Heading()
	}
	m.err = nil
}

func (m *model) toggleTheme() {
	if m.themes == nil {
		m.theme = m.theme.Other()
	} else {
		t, err := m.themes.Toggle(m.ctx)
		if err != nil {
			m.err = err
			return
		}
		m.theme = t
	}
	m.styles = stylesFor(m.theme)
}

func (m model) View() string {
	labels := [fieldCount]string{"Name", "Date", "Title", "Details"}
	var form strings.Builder

	heading := "New entry"
	if m.session.Editing() {
		heading = "Editing " + m.session.EditingID
	}
	form.WriteString(m.styles.focused.Render(heading) + "  " + m.theme.Icon() + "\n\n")

	for i := 0; i < fieldCount; i++ {
		label := m.styles.label
		if i == m.focus {
			label = m.styles.focused
		}
		form.WriteString(label.Render(labels[i]) + "\n")
		if i == fieldDetails {
			form.WriteString(m.details.View())
		} else {
			form.WriteString(m.inputs[i].View())
		}
		form.WriteString("\n\n")
	}

	preview := m.styles.preview.Render(m.session.Preview(m.journal.Now()))
	body := lipgloss.JoinHorizontal(lipgloss.Top, form.String(), "  ", preview)

	var footer string
	switch {
	case m.err != nil:
		footer = m.styles.err.Render(fmt.Sprintf("error: %v", m.err))
	case m.status != "":
		footer = m.styles.status.Render(m.status)
	}
	return body + "\n" + footer + "\n" + m.styles.help.Render(helpText) + "\n"
}
