package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/physcalc/internal/config"
	"github.com/san-kum/physcalc/internal/formula"
	"github.com/san-kum/physcalc/internal/topic"
	"github.com/san-kum/physcalc/internal/viz"
)

type state int

const (
	stateMenu state = iota
	stateForm
)

// Model is the interactive calculator: a topic menu and a form per topic.
type Model struct {
	state  state
	cursor int
	reg    *topic.Registry
	topics []*topic.Topic

	selected *topic.Topic
	fields   []textinput.Model
	field    int
	presets  []string
	preset   int

	result *formula.Result
	err    error

	theme     viz.Theme
	precision int
	renderer  *viz.Renderer

	width  int
	height int
}

func New(reg *topic.Registry, theme viz.Theme, precision int) Model {
	return Model{
		state:     stateMenu,
		reg:       reg,
		topics:    reg.Topics(),
		theme:     theme,
		precision: precision,
		renderer:  viz.NewRenderer(theme, precision),
		width:     80,
		height:    24,
	}
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(reg *topic.Registry, theme viz.Theme, precision int) error {
	_, err := tea.NewProgram(New(reg, theme, precision), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.state {
		case stateMenu:
			return m.menuKey(msg)
		case stateForm:
			return m.formKey(msg)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	if m.state == stateForm {
		var cmd tea.Cmd
		m.fields[m.field], cmd = m.fields[m.field].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) menuKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.topics)-1 {
			m.cursor++
		}
	case "t":
		m.cycleTheme()
	case "enter", " ":
		cmd := m.open(m.topics[m.cursor])
		return m, cmd
	}
	return m, nil
}

func (m Model) formKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.state = stateMenu
		m.clearOutcome()
		return m, nil
	case "up", "shift+tab":
		var cmd tea.Cmd
		if m.field > 0 {
			cmd = m.focus(m.field - 1)
		}
		return m, cmd
	case "down", "tab":
		var cmd tea.Cmd
		if m.field < len(m.fields)-1 {
			cmd = m.focus(m.field + 1)
		}
		return m, cmd
	case "enter":
		m.solve()
		return m, nil
	case "p":
		m.applyNextPreset()
		return m, nil
	case "t":
		m.cycleTheme()
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		msg.Runes = numberRunes(msg.Runes)
		if len(msg.Runes) == 0 {
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.fields[m.field], cmd = m.fields[m.field].Update(msg)
	return m, cmd
}

var errNotNumeric = errors.New("only digits, sign, point and exponent are allowed")

func isNumberRune(c rune) bool {
	return (c >= '0' && c <= '9') || strings.ContainsRune(".-+eE", c)
}

func numberRunes(rs []rune) []rune {
	out := make([]rune, 0, len(rs))
	for _, c := range rs {
		if isNumberRune(c) {
			out = append(out, c)
		}
	}
	return out
}

func validateNumber(s string) error {
	for _, c := range s {
		if !isNumberRune(c) {
			return errNotNumeric
		}
	}
	return nil
}

func newField(p topic.Param) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 32
	ti.Width = 24
	ti.Validate = validateNumber
	if p.Optional {
		ti.Placeholder = "absent"
	}
	return ti
}

// setField replaces the text of field i and moves its cursor to the end.
func (m *Model) setField(i int, s string) {
	m.fields[i].SetValue(s)
	m.fields[i].CursorEnd()
}

// focus moves keyboard focus to field i.
func (m *Model) focus(i int) tea.Cmd {
	m.fields[m.field].Blur()
	m.field = i
	return m.fields[i].Focus()
}

// values returns the current text of every field.
func (m Model) values() []string {
	out := make([]string, len(m.fields))
	for i, f := range m.fields {
		out[i] = f.Value()
	}
	return out
}

// open prepares the form for t, filled with the parameter defaults. Optional
// parameters start blank.
func (m *Model) open(t *topic.Topic) tea.Cmd {
	m.selected = t
	m.state = stateForm
	m.field = 0
	m.preset = -1
	m.presets = config.ListPresets(t.Name)
	m.fields = make([]textinput.Model, len(t.Params))
	for i, p := range t.Params {
		m.fields[i] = newField(p)
		if !p.Optional {
			m.setField(i, topic.FormatValue(p.Default))
		}
	}
	m.clearOutcome()
	if len(m.fields) == 0 {
		return nil
	}
	return m.fields[0].Focus()
}

func (m *Model) applyNextPreset() {
	if len(m.presets) == 0 {
		return
	}
	m.preset = (m.preset + 1) % len(m.presets)
	in := config.GetPreset(m.selected.Name, m.presets[m.preset])
	for i, p := range m.selected.Params {
		if v, ok := in[p.Name]; ok {
			m.setField(i, topic.FormatValue(v))
		} else {
			m.setField(i, "")
		}
	}
	m.clearOutcome()
}

func (m *Model) cycleTheme() {
	m.theme = m.theme.Next()
	m.renderer = viz.NewRenderer(m.theme, m.precision)
}

func (m *Model) solve() {
	m.clearOutcome()
	raw := make(map[string]string, len(m.fields))
	for i, p := range m.selected.Params {
		raw[p.Name] = m.fields[i].Value()
	}

	in, err := topic.ParseInputs(m.selected, raw)
	if err != nil {
		m.err = err
		return
	}
	res, err := m.reg.Solve(m.selected.Name, in)
	if err != nil {
		m.err = err
		return
	}
	m.result = &res
}

func (m *Model) clearOutcome() {
	m.result = nil
	m.err = nil
}

func (m Model) View() string {
	switch m.state {
	case stateForm:
		return m.formView()
	default:
		return m.menuView()
	}
}

func (m Model) menuView() string {
	st := m.renderer.Styles()
	var b strings.Builder

	b.WriteString(viz.GradientText("physcalc", m.theme.Primary, m.theme.Secondary))
	b.WriteString("\n\n")

	nameWidth := 0
	for _, t := range m.topics {
		if w := lipgloss.Width(t.Title); w > nameWidth {
			nameWidth = w
		}
	}

	for i, t := range m.topics {
		title := lipgloss.NewStyle().Width(nameWidth).Render(t.Title)
		if i == m.cursor {
			b.WriteString(st.Selected.Render("▸ " + title))
		} else {
			b.WriteString("  " + title)
		}
		b.WriteString("  " + st.Muted.Render(t.Summary) + "\n")
	}

	b.WriteString("\n" + st.KeyHint.Render("↑/↓ select · enter open · t theme · q quit"))
	return b.String()
}

func (m Model) formView() string {
	st := m.renderer.Styles()
	var b strings.Builder

	b.WriteString(st.Title.Render(m.selected.Title))
	b.WriteString("  " + st.Muted.Render(m.selected.Summary) + "\n\n")

	labelWidth := 0
	for _, p := range m.selected.Params {
		if w := lipgloss.Width(p.Display()); w > labelWidth {
			labelWidth = w
		}
	}

	for i, p := range m.selected.Params {
		label := lipgloss.NewStyle().Width(labelWidth).Render(p.Display())
		if i == m.field {
			b.WriteString(st.Selected.Render("▸ "+label) + "  " + m.fields[i].View())
		} else {
			b.WriteString("  " + st.Label.Render(label) + "  " + m.fields[i].View())
		}
		b.WriteString("\n")
	}

	if m.preset >= 0 && m.preset < len(m.presets) {
		b.WriteString("\n" + st.Muted.Render("preset: "+m.presets[m.preset]) + "\n")
	}

	switch {
	case m.err != nil:
		b.WriteString("\n" + m.renderer.RenderError(m.err) + "\n")
	case m.result != nil:
		b.WriteString("\n" + m.renderer.RenderResult(*m.result) + "\n")
	}

	b.WriteString("\n" + st.KeyHint.Render("↑/↓ field · ←/→ cursor · enter solve · p preset · esc back"))
	return b.String()
}
