package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vigcrack/internal/domain"
	"vigcrack/internal/history"
	"vigcrack/internal/oracle"
)

// Outcome is the final state of the crack goroutine.
type Outcome struct {
	Result domain.Result
	Err    error
}

type (
	requestMsg    oracle.Request
	candidatesMsg []int
	doneMsg       Outcome
)

// Reporter forwards the candidate report into the TUI event stream. Attempts
// and the final outcome reach the TUI through the oracle and result channels,
// so those hooks are no-ops here.
type Reporter struct {
	events chan<- tea.Msg
}

// NewReporter wraps a buffered event channel consumed by the Model.
func NewReporter(events chan<- tea.Msg) *Reporter { return &Reporter{events: events} }

func (r *Reporter) Candidates(lengths []int) { r.events <- candidatesMsg(lengths) }
func (r *Reporter) Attempt(domain.Attempt)   {}
func (r *Reporter) Outcome(domain.Result)    {}

// Model is the Bubble Tea model for the interactive crack session. It shows
// each candidate key and decryption preview and relays the user's y/n verdict
// back to the orchestrator.
type Model struct {
	ch          *oracle.Channel
	events      <-chan tea.Msg
	results     <-chan Outcome
	hist        *history.Log
	viewport    viewport.Model
	candidates  []int
	current     *oracle.Request
	outcome     *Outcome
	status      string
	ready       bool
	showHistory bool
}

// New creates a TUI model wired to a running crack goroutine.
func New(ch *oracle.Channel, events <-chan tea.Msg, results <-chan Outcome, hist *history.Log) Model {
	vp := viewport.New(0, 0)
	return Model{
		ch:       ch,
		events:   events,
		results:  results,
		hist:     hist,
		viewport: vp,
		status:   "Analyzing ciphertext...",
	}
}

func (m Model) Init() tea.Cmd { return m.nextEvent() }

// nextEvent blocks until the crack goroutine produces something to show.
// The reporter channel is drained first so the candidate report is not
// displayed after the attempt it precedes.
func (m Model) nextEvent() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-m.events:
			return msg
		default:
		}
		select {
		case msg := <-m.events:
			return msg
		case req := <-m.ch.Requests():
			return requestMsg(req)
		case out := <-m.results:
			return doneMsg(out)
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, fh := previewBoxStyle.GetFrameSize()
		reserved := 4 + fh // header, candidates, status, help
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width-4)
		m.viewport.Height = vh
		m.viewport.SetContent(m.renderBody())
		return m, nil
	case candidatesMsg:
		m.candidates = []int(msg)
		if len(m.candidates) == 0 {
			m.status = "No repeated trigrams; falling back to manual key lengths."
		} else {
			m.status = "Candidate key lengths ranked."
		}
		return m, m.nextEvent()
	case requestMsg:
		req := oracle.Request(msg)
		m.current = &req
		m.status = "Does this look correct? (y/n)"
		m.viewport.SetContent(m.renderBody())
		return m, nil
	case doneMsg:
		out := Outcome(msg)
		m.outcome = &out
		m.current = nil
		switch {
		case out.Err != nil:
			m.status = "Error: " + out.Err.Error()
		case out.Result.Found:
			m.status = "Key accepted. Press q to exit."
		default:
			m.status = "No candidate accepted. Press q to exit."
		}
		m.viewport.SetContent(m.renderBody())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			m.ch.Abort()
			return m, tea.Quit
		}
		switch msg.String() {
		case "q":
			m.ch.Abort()
			return m, tea.Quit
		case "y", "n":
			if m.current != nil {
				m.ch.Answer(msg.String() == "y")
				m.current = nil
				m.status = "Working..."
				m.viewport.SetContent(m.renderBody())
				return m, m.nextEvent()
			}
		case "h":
			m.showHistory = !m.showHistory
			m.viewport.SetContent(m.renderBody())
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := titleStyle.Render("vigcrack — Vigenère cracker")
	candidates := faintStyle.Render(m.renderCandidates())
	body := previewBoxStyle.Render(m.viewport.View())
	status := statusStyle.Render(m.status)
	help := faintStyle.Render("y accept · n reject · h history · q quit")
	return header + "\n" + candidates + "\n" + body + "\n" + status + "\n" + help
}

func (m Model) renderCandidates() string {
	if m.candidates == nil {
		return "Possible key lengths: ..."
	}
	if len(m.candidates) == 0 {
		return "Possible key lengths: none (manual range only)"
	}
	parts := make([]string, len(m.candidates))
	for i, n := range m.candidates {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return "Possible key lengths: " + strings.Join(parts, ", ")
}

func (m Model) renderBody() string {
	var b strings.Builder
	switch {
	case m.outcome != nil && m.outcome.Err == nil && m.outcome.Result.Found:
		b.WriteString("Key: " + keyStyle.Render(m.outcome.Result.Key) + "\n\n")
		b.WriteString(m.outcome.Result.Plaintext)
	case m.outcome != nil:
		b.WriteString("No key was accepted.")
	case m.current != nil:
		b.WriteString(fmt.Sprintf("Trying key length %d\n", len(m.current.Key)))
		b.WriteString("Potential key: " + keyStyle.Render(m.current.Key) + "\n\n")
		b.WriteString(m.current.Preview)
	default:
		b.WriteString("Waiting for the next candidate...")
	}
	if m.showHistory {
		b.WriteString("\n\n" + titleStyle.Render("Attempts") + "\n")
		for _, a := range m.hist.All() {
			verdict := "rejected"
			if a.Accepted {
				verdict = "accepted"
			}
			b.WriteString(fmt.Sprintf("length %-2d  key %-15s  %s\n", a.Length, a.Key, verdict))
		}
	}
	return b.String()
}

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	keyStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	previewBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	faintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
