package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AskPort is the TUI-facing subset of the assistant.
type AskPort interface {
	Answer(ctx context.Context, question string, topK int) (string, error)
}

// Model is the Bubble Tea model for the question/answer loop.
type Model struct {
	assistant AskPort
	input     textinput.Model
	viewport  viewport.Model
	summary   string
	provider  string
	status    string
	topK      int
	ready     bool
}

// New creates a new TUI model. summary describes the ingested corpus and
// provider names the selected LLM backend.
func New(assistant AskPort, summary, provider string, topK int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a question, or 'quit' to exit"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		assistant: assistant,
		input:     ti,
		viewport:  vp,
		summary:   summary,
		provider:  provider,
		status:    "Ready. Type a question and press Enter.",
		topK:      topK,
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, ah := answerBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 3 + qh + 1 // header + summary + status, query box, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-ah)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		if msg.String() == "enter" {
			q := strings.TrimSpace(m.input.Value())
			if q == "" {
				return m, nil
			}
			if strings.EqualFold(q, "quit") {
				return m, tea.Quit
			}
			m.status = "Thinking..."
			answer, err := m.assistant.Answer(context.Background(), q, m.topK)
			if err != nil {
				m.status = "Error: " + err.Error()
				m.viewport.SetContent("")
			} else {
				m.status = fmt.Sprintf("Answered via %s", m.provider)
				m.viewport.SetContent(questionStyle.Render(q) + "\n\n" + answer)
			}
			m.input.SetValue("")
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("RAG Assistant")
	summary := summaryStyle.Render(m.summary)
	answer := answerBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + summary + "\n" + answer + "\n" + input + "\n" + status
}

var (
	answerBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	summaryStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	questionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
