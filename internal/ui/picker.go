package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/OZORDI/spring-animations/internal/spring"
	"github.com/OZORDI/spring-animations/internal/util"
)

// PickerResult holds the outcome of the spring picker.
type PickerResult struct {
	Spec      string
	Cancelled bool
}

type presetItem struct {
	name     string
	duration float64
	bounce   float64
}

func (i presetItem) Title() string { return i.name }
func (i presetItem) Description() string {
	return fmt.Sprintf("duration %s, bounce %s",
		util.FormatSeconds(i.duration), util.FormatNumber(i.bounce))
}
func (i presetItem) FilterValue() string { return i.name }

type customItem struct{}

func (i customItem) Title() string       { return "Custom spring..." }
func (i customItem) Description() string { return "enter duration/bounce or physics parameters" }
func (i customItem) FilterValue() string { return "custom" }

// PickerModel is the Bubbletea model for the spring picker screen.
type PickerModel struct {
	list       list.Model
	input      textinput.Model
	customMode bool
	inputErr   string
	result     *PickerResult
}

// NewPicker creates a picker listing the preset table plus a custom entry.
func NewPicker() PickerModel {
	items := []list.Item{customItem{}}
	for _, name := range spring.PresetNames() {
		d, b, _ := spring.PresetParams(name)
		items = append(items, presetItem{name: name, duration: d, bounce: b})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	l := list.New(items, delegate, 80, 20)
	l.Title = "springs"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = headerStyle

	ti := textinput.New()
	ti.Placeholder = "duration:0.5, bounce:0.3"
	ti.CharLimit = 256
	ti.Width = 48

	return PickerModel{list: l, input: ti}
}

// Result returns the picker result after the program finishes.
func (m PickerModel) Result() PickerResult {
	if m.result != nil {
		return *m.result
	}
	return PickerResult{Cancelled: true}
}

func (m PickerModel) Init() tea.Cmd {
	return tea.SetWindowTitle("springs")
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.customMode {
		return m.updateCustomInput(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Don't intercept keys when filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			switch item := m.list.SelectedItem().(type) {
			case customItem:
				m.customMode = true
				m.input.Focus()
				return m, tea.Batch(textinput.Blink, tea.SetWindowTitle("springs — custom"))
			case presetItem:
				m.result = &PickerResult{Spec: item.name}
				return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
			}
		case "q", "esc", "ctrl+c":
			m.result = &PickerResult{Cancelled: true}
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}

	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m PickerModel) updateCustomInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			spec := strings.TrimSpace(m.input.Value())
			if err := validateSpec(spec); err != nil {
				m.inputErr = err.Error()
				return m, nil
			}
			m.result = &PickerResult{Spec: spec}
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		case "esc":
			m.customMode = false
			m.inputErr = ""
			m.input.Reset()
			m.input.Blur()
			return m, tea.SetWindowTitle("springs")
		case "ctrl+c":
			m.result = &PickerResult{Cancelled: true}
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// validateSpec resolves the spec once so the picker rejects bad input before
// handing it to the playground.
func validateSpec(spec string) error {
	cfg, err := spring.Parse(spec)
	if err != nil {
		return err
	}
	_, err = spring.Resolve(cfg)
	return err
}

func (m PickerModel) View() string {
	if m.customMode {
		s := "\n"
		s += "  " + headerStyle.Render("springs") + "\n"
		s += "\n"
		s += "  " + statusStyle.Render("Enter spring spec:") + "\n"
		s += "  " + m.input.View() + "\n"
		if m.inputErr != "" {
			s += "  " + helpStyle.Render(m.inputErr) + "\n"
		}
		s += "\n"
		s += "  " + helpStyle.Render("enter confirm  esc back  ctrl+c quit") + "\n"
		return s
	}
	return m.list.View()
}
