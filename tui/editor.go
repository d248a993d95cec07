package tui

import (
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmuldo/hexref/colorspace"
	"github.com/mmuldo/hexref/naming"
	"github.com/mmuldo/hexref/palette"
)

// EditorModel edits one colour. The input accepts hex, rgb(...) or
// hsl(...); every valid value updates the preview.
type EditorModel struct {
	input    textinput.Model
	color    colorspace.RGB
	resolver *naming.Resolver
	rng      *rand.Rand
	invalid  bool
	width    int

	accepted  bool
	cancelled bool
}

// NewEditorModel starts the editor on initial.
func NewEditorModel(initial colorspace.RGB, r *naming.Resolver, rng *rand.Rand) EditorModel {
	in := textinput.New()
	in.Placeholder = "#RRGGBB, rgb(r, g, b) or hsl(h, s%, l%)"
	in.CharLimit = 32
	in.Width = 40
	in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	in.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	in.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	in.SetValue(initial.Hex())
	in.Focus()

	if r == nil {
		r = naming.NewResolver(nil)
	}
	return EditorModel{input: in, color: initial, resolver: r, rng: rng}
}

// Color is the last valid colour entered.
func (m EditorModel) Color() colorspace.RGB {
	return m.color
}

// Accepted reports whether the user confirmed with enter.
func (m EditorModel) Accepted() bool {
	return m.accepted
}

// Cancelled reports whether the user quit with esc or ctrl+c.
func (m EditorModel) Cancelled() bool {
	return m.cancelled
}

func (m EditorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if !m.invalid {
				m.accepted = true
				return m, tea.Quit
			}
			return m, nil
		case "ctrl+r":
			if m.rng != nil {
				m.setColor(colorspace.Random(m.rng))
			}
			return m, nil
		case "ctrl+n":
			if c, err := colorspace.ParseHex(m.resolver.Resolve(m.color).NearestHex); err == nil {
				m.setColor(c)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.parse()
	return m, cmd
}

func (m *EditorModel) setColor(c colorspace.RGB) {
	m.color = c
	m.invalid = false
	m.input.SetValue(c.Hex())
	m.input.CursorEnd()
}

func (m *EditorModel) parse() {
	v := strings.TrimSpace(m.input.Value())
	if v == "" {
		m.invalid = true
		return
	}
	lower := strings.ToLower(v)
	if !strings.HasPrefix(lower, "rgb(") && !strings.HasPrefix(lower, "hsl(") {
		v = colorspace.NormalizeHex(v)
	}
	c, err := colorspace.Parse(v)
	if err != nil {
		m.invalid = true
		return
	}
	m.color = c
	m.invalid = false
}

func (m EditorModel) View() string {
	c := m.color
	res := m.resolver.Resolve(c)

	width := 40
	if m.width > 0 && m.width < width {
		width = m.width
	}
	hero := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(c.OverlayText().Hex())).
		Width(width).
		Padding(1, 2).
		Render(res.DisplayName() + "\n" + c.Hex())

	input := m.input.View()
	if m.invalid {
		input += "  " + errorStyle.Render("not a colour")
	}

	rows := [][2]string{
		{"RGB", c.String()},
		{"HSL", c.HSL().Round().String()},
		{"CMYK", c.CMYK().Round().String()},
		{"OKLCH", c.OKLCH().Round().String()},
		{"Name", res.Name},
		{"Descriptor", res.Descriptor},
		{"On white", Badges(colorspace.RateContrast(colorspace.ContrastRatio(c, colorspace.White)))},
		{"On black", Badges(colorspace.RateContrast(colorspace.ContrastRatio(c, colorspace.Black)))},
	}

	var b strings.Builder
	b.WriteString(hero + "\n\n")
	b.WriteString(input + "\n\n")
	b.WriteString(Card("Formats", rows) + "\n")
	b.WriteString(labelStyle.Render("Tints") + "\n" + Strip(palette.Tints(c)) + "\n")
	b.WriteString(labelStyle.Render("Shades") + "\n" + Strip(palette.Shades(c)) + "\n")
	comp := palette.Harmonies(c)[palette.Complementary]
	b.WriteString(labelStyle.Render("Complementary") + "\n" + Strip(comp) + "\n")
	if palette.HasVibration(c, comp) {
		b.WriteString(Warn("this pair may vibrate when placed side by side") + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("enter accept • ctrl+r random • ctrl+n snap to name • esc quit"))
	return b.String()
}

// RunEditor runs the editor and returns the chosen colour. ok is false if
// the user quit without accepting.
func RunEditor(initial colorspace.RGB, r *naming.Resolver, rng *rand.Rand) (c colorspace.RGB, ok bool, err error) {
	p := tea.NewProgram(NewEditorModel(initial, r, rng), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return initial, false, err
	}
	m, _ := final.(EditorModel)
	return m.Color(), m.Accepted(), nil
}
