package ui

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/openzeppelin/ui-builder-cli/internal/adapter"
	"github.com/openzeppelin/ui-builder-cli/internal/builder"
	"github.com/openzeppelin/ui-builder-cli/internal/network"
)

// WizardResult holds everything the build wizard collected: the target
// network, the loaded contract, and the form configuration ready for export.
type WizardResult struct {
	Network     *network.Config
	Schema      *builder.ContractSchema
	Form        *builder.BuilderFormConfig
	Environment string
	ProjectName string
}

// --- Bubble Tea model ---

type wizardStep int

const (
	stepNetwork wizardStep = iota
	stepContract
	stepLoading
	stepFunction
	stepFields
	stepEnvironment
	stepProjectName
	stepDone
)

var environments = []string{"production", "staging", "local"}

type contractLoadedMsg struct {
	schema *builder.ContractSchema
	err    error
}

// AdapterFactory builds the adapter registry for a chosen network, so
// network-specific providers (block explorers) target the right chain.
type AdapterFactory func(net *network.Config) *adapter.Registry

type wizardModel struct {
	networks *network.Registry
	adapters AdapterFactory

	step      wizardStep
	cursor    int
	input     string
	inputMode bool
	errText   string

	netChoices []network.Config
	functions  []builder.ContractFunction
	current    adapter.Adapter

	result WizardResult
	done   bool
}

func initialWizard(networks *network.Registry, adapters AdapterFactory) wizardModel {
	return wizardModel{
		networks:   networks,
		adapters:   adapters,
		step:       stepNetwork,
		netChoices: networks.All(),
	}
}

func (m wizardModel) Init() tea.Cmd { return nil }

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case contractLoadedMsg:
		if msg.err != nil {
			m.errText = msg.err.Error()
			m.step = stepContract
			m.inputMode = true
			return m, nil
		}
		m.result.Schema = msg.schema
		m.functions = m.current.GetWritableFunctions(msg.schema)
		if len(m.functions) == 0 {
			m.errText = "contract has no writable functions"
			m.step = stepContract
			m.inputMode = true
			return m, nil
		}
		m.step = stepFunction
		m.cursor = 0
		return m, nil

	case tea.KeyMsg:
		key := msg.String()

		if m.inputMode {
			switch key {
			case "ctrl+c":
				return m, tea.Quit
			case "enter":
				return m.confirm()
			case "backspace":
				if len(m.input) > 0 {
					m.input = m.input[:len(m.input)-1]
				}
			default:
				if len([]rune(key)) == 1 {
					m.input += key
				}
			}
			return m, nil
		}

		switch key {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < m.choiceCount()-1 {
				m.cursor++
			}

		case " ":
			if m.step == stepFields && m.cursor < len(m.result.Form.Fields) {
				f := &m.result.Form.Fields[m.cursor]
				f.Validation.Required = !f.Validation.Required
			}

		case "h":
			if m.step == stepFields && m.cursor < len(m.result.Form.Fields) {
				f := &m.result.Form.Fields[m.cursor]
				f.IsHidden = !f.IsHidden
			}

		case "enter":
			return m.confirm()
		}
	}

	return m, nil
}

func (m wizardModel) choiceCount() int {
	switch m.step {
	case stepNetwork:
		return len(m.netChoices)
	case stepFunction:
		return len(m.functions)
	case stepFields:
		return len(m.result.Form.Fields)
	case stepEnvironment:
		return len(environments)
	}
	return 0
}

func (m wizardModel) confirm() (tea.Model, tea.Cmd) {
	m.errText = ""
	switch m.step {
	case stepNetwork:
		net := m.netChoices[m.cursor]
		a, err := m.adapters(&net).Get(net.Ecosystem)
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.result.Network = &net
		m.current = a
		m.step = stepContract
		m.inputMode = true
		m.input = ""

	case stepContract:
		source := strings.TrimSpace(m.input)
		if source == "" {
			m.errText = "enter a contract address or definition (or @path to a file)"
			return m, nil
		}
		m.inputMode = false
		m.step = stepLoading
		return m, loadContractCmd(m.current, source)

	case stepFunction:
		fn := m.functions[m.cursor]
		fields := make([]builder.FormField, len(fn.Inputs))
		for i, in := range fn.Inputs {
			fields[i] = m.current.GenerateDefaultField(in)
		}
		m.result.Form = builder.DefaultFormConfig(&fn, fields)
		m.step = stepFields
		m.cursor = 0

	case stepFields:
		m.step = stepEnvironment
		m.cursor = 0

	case stepEnvironment:
		m.result.Environment = environments[m.cursor]
		m.step = stepProjectName
		m.inputMode = true
		m.input = ""

	case stepProjectName:
		m.result.ProjectName = strings.TrimSpace(m.input)
		m.inputMode = false
		m.step = stepDone
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// loadContractCmd loads the contract off the UI goroutine. "@path" sources
// read a local definition file first.
func loadContractCmd(a adapter.Adapter, source string) tea.Cmd {
	return func() tea.Msg {
		if strings.HasPrefix(source, "@") {
			data, err := os.ReadFile(strings.TrimPrefix(source, "@"))
			if err != nil {
				return contractLoadedMsg{err: fmt.Errorf("reading definition file: %w", err)}
			}
			source = string(data)
		}
		schema, err := a.LoadContract(context.Background(), source)
		return contractLoadedMsg{schema: schema, err: err}
	}
}

func (m wizardModel) View() string {
	var s string

	switch m.step {
	case stepNetwork:
		items := make([]string, len(m.netChoices))
		for i, n := range m.netChoices {
			items[i] = fmt.Sprintf("%-18s %s", n.DisplayName, StyleMeta.Render(string(n.Ecosystem)))
		}
		s = renderMenu("Select target network:", items, m.cursor)

	case stepContract:
		s = StyleTitle.Render("Load a contract") + "\n\n"
		s += StyleMeta.Render("Enter an address, a raw definition, or @path/to/definition:") + "\n"
		s += "> " + StyleAddress.Render(m.input) + "█\n"

	case stepLoading:
		s = StyleTitle.Render("Loading contract…") + "\n"

	case stepFunction:
		items := make([]string, len(m.functions))
		for i, fn := range m.functions {
			items[i] = fmt.Sprintf("%-24s %s", fn.DisplayName, StyleMeta.Render(fmt.Sprintf("%d params", len(fn.Inputs))))
		}
		s = renderMenu("Select a function:", items, m.cursor)

	case stepFields:
		items := make([]string, len(m.result.Form.Fields))
		for i, f := range m.result.Form.Fields {
			flags := ""
			if f.Validation.Required {
				flags += " required"
			}
			if f.IsHidden {
				flags += " hidden"
			}
			items[i] = fmt.Sprintf("%-16s %-20s%s", f.Label, StyleMeta.Render(string(f.Type)), StyleWarning.Render(flags))
		}
		s = renderMenu("Review fields:", items, m.cursor)
		s += "\n" + StyleMeta.Render("Space toggle required · h toggle hidden · Enter continue")

	case stepEnvironment:
		s = renderMenu("Select export environment:", environments, m.cursor)

	case stepProjectName:
		s = StyleTitle.Render("Project name (optional)") + "\n\n"
		s += StyleMeta.Render("Enter a name, or press Enter for a derived one:") + "\n"
		s += "> " + StyleValue.Render(m.input) + "█\n"

	case stepDone:
		s = Success("Form configured — exporting.") + "\n"
	}

	if m.errText != "" {
		s += "\n" + Err(m.errText) + "\n"
	}
	return StyleBorder.Render(s) + "\n"
}

func renderMenu(title string, items []string, cursor int) string {
	s := StyleTitle.Render(title) + "\n\n"
	for i, item := range items {
		icon := "  "
		style := lipgloss.NewStyle().Foreground(ColorValue)
		if i == cursor {
			icon = "▸ "
			style = StyleSelected
		}
		s += icon + style.Render(item) + "\n"
	}
	s += "\n" + StyleMeta.Render("↑/↓ navigate · Enter select · q quit")
	return s
}

// RunWizard launches the interactive build wizard and returns the collected
// result, or nil if the user quit before finishing.
func RunWizard(networks *network.Registry, adapters AdapterFactory) (*WizardResult, error) {
	m := initialWizard(networks, adapters)
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard error: %w", err)
	}
	fm := final.(wizardModel)
	if !fm.done {
		return nil, nil
	}
	result := fm.result
	return &result, nil
}
