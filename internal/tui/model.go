package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"usbcopy/internal/app"
	"usbcopy/internal/domain"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseScanning Phase = iota
	PhaseExecuting
	PhaseDone
	PhaseError
)

// Messages for the TUI
type (
	PlanReadyMsg struct {
		Plan domain.CopyPlan
	}
	CopyProgressMsg struct {
		Done  int
		Total int
		File  string
	}
	CopyDoneMsg struct {
		Result app.ExecResult
	}
	ErrorMsg struct {
		Err error
	}
	tickMsg time.Time
)

// ExecuteCopyFunc starts the copy for a finished plan. It should run the
// executor in the returned command and send progress/done messages.
type ExecuteCopyFunc func(plan domain.CopyPlan) tea.Cmd

// Config for the TUI
type Config struct {
	SourceDir   string
	DestRoot    string
	DryRun      bool
	Verbose     bool
	BuildPlan   tea.Cmd
	ExecuteCopy ExecuteCopyFunc
}

// Model is the main TUI model
type Model struct {
	config       Config
	Phase        Phase
	Plan         domain.CopyPlan
	Result       app.ExecResult
	Err          error
	Quitting     bool
	spinner      spinner.Model
	progress     progress.Model
	copyProgress int
	copyTotal    int
	currentFile  string
	width        int
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	return Model{
		config:   cfg,
		Phase:    PhaseScanning,
		spinner:  s,
		progress: p,
		width:    80,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.config.BuildPlan)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-20, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		case "enter":
			if m.Phase == PhaseDone || m.Phase == PhaseError {
				return m, tea.Quit
			}
		}

	case PlanReadyMsg:
		m.Plan = msg.Plan
		if m.config.DryRun {
			m.Phase = PhaseDone
			return m, nil
		}
		m.Phase = PhaseExecuting
		m.copyTotal = len(m.Plan.Items)
		if m.config.ExecuteCopy != nil {
			return m, tea.Batch(tickCmd(), m.config.ExecuteCopy(m.Plan))
		}
		return m, nil

	case CopyProgressMsg:
		m.copyProgress = msg.Done
		m.copyTotal = msg.Total
		m.currentFile = msg.File
		return m, nil

	case CopyDoneMsg:
		m.Phase = PhaseDone
		m.Result = msg.Result
		return m, nil

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.Phase == PhaseScanning || m.Phase == PhaseExecuting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case tickMsg:
		if m.Phase == PhaseExecuting {
			var cmds []tea.Cmd
			if m.copyTotal > 0 {
				cmds = append(cmds, m.progress.SetPercent(float64(m.copyProgress)/float64(m.copyTotal)))
			}
			cmds = append(cmds, tickCmd(), m.spinner.Tick)
			return m, tea.Batch(cmds...)
		}
	}

	return m, nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseScanning:
		b.WriteString(fmt.Sprintf("%s Scanning source tree...", m.spinner.View()))
	case PhaseExecuting:
		b.WriteString(m.renderExecution())
	case PhaseDone:
		b.WriteString(m.renderDone())
	case PhaseError:
		b.WriteString(m.renderError())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("usbcopy")
	subtitle := subtitleStyle.Render("Smart copy to removable storage")

	dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		dimStyle.Render("Source: "+shortenPath(m.config.SourceDir, m.width-10)),
		dimStyle.Render("Target: "+shortenPath(m.config.DestRoot, m.width-10)),
	)
}

func (m Model) renderExecution() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s Copying files...\n\n", m.spinner.View()))
	b.WriteString("  " + m.progress.View() + "\n")

	countStyle := lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	b.WriteString("  " + countStyle.Render(fmt.Sprintf("%d/%d", m.copyProgress, m.copyTotal)))
	if m.currentFile != "" {
		b.WriteString("  " + fileStyle.Render(m.currentFile))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderDone() string {
	var b strings.Builder

	if m.config.DryRun {
		b.WriteString(successStyle.Render(fmt.Sprintf("%s Simulation complete", iconSuccess)))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  Would copy %d files (%s)\n", len(m.Plan.Items), formatMB(m.Plan.CopiedBytes)))
	} else {
		b.WriteString(successStyle.Render(fmt.Sprintf("%s Copy complete", iconSuccess)))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  Copied %d files (%s)\n", m.Result.Copied, formatMB(m.Result.CopiedBytes)))
		if m.Result.Failed > 0 {
			b.WriteString("  " + errorStyle.Render(fmt.Sprintf("%s %d files failed", iconError, m.Result.Failed)) + "\n")
		}
	}
	b.WriteString(fmt.Sprintf("  Ignored %s across %d pruned directories\n", formatMB(m.Plan.IgnoredBytes), len(m.Plan.PrunedDirs)))

	if m.config.Verbose && len(m.Plan.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render("Warnings:"))
		b.WriteString("\n")
		for _, w := range m.Plan.Warnings {
			b.WriteString("  " + w + "\n")
		}
	}

	return b.String()
}

func (m Model) renderError() string {
	return errorStyle.Render(fmt.Sprintf("%s %v", iconError, m.Err))
}

func (m Model) renderHelp() string {
	if m.Phase == PhaseDone || m.Phase == PhaseError {
		return helpStyle.Render("enter/q: quit")
	}
	return helpStyle.Render("q: abort")
}

func formatMB(b int64) string {
	return fmt.Sprintf("%.2f MB", float64(b)/(1024*1024))
}

func shortenPath(path string, max int) string {
	if max < 10 {
		max = 10
	}
	if len(path) <= max {
		return path
	}
	return "..." + path[len(path)-max+3:]
}
