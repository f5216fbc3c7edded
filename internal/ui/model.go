// Package ui is the terminal shell around the simulation. It renders
// snapshots and forwards key presses; no game rule lives here.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/soni-n14/V-Pet-SLC-Zoom/internal/game"
	"github.com/soni-n14/V-Pet-SLC-Zoom/internal/pet"
	"github.com/soni-n14/V-Pet-SLC-Zoom/internal/report"
)

type menuItem struct {
	label string
	kind  pet.ActionKind
}

var menu = []menuItem{
	{"Feed", pet.ActionFeed},
	{"Water", pet.ActionWater},
	{"Walk", pet.ActionExercise},
	{"Play", pet.ActionPlay},
	{"Bath", pet.ActionBath},
	{"Groom", pet.ActionGroom},
	{"Vet visit", pet.ActionVetVisit},
	{"Buy toy", pet.ActionBuyToy},
	{"Report card", ""},
	{"Quit", ""},
}

const (
	menuReportIndex = 8
	menuQuitIndex   = 9
)

// Model is the bubbletea state for the shell.
type Model struct {
	Session *game.Session

	view           game.View
	choice         int
	quitting       bool
	showingReport  bool
	reportRange    report.Range
	card           report.Card
	message        string
	messageExpires time.Time
}

type tickMsg time.Time

// NewModel wraps a running session.
func NewModel(s *game.Session) Model {
	return Model{Session: s, view: s.Snapshot()}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showingReport {
			switch msg.String() {
			case "ctrl+c", "q":
				m.quitting = true
				return m, tea.Quit
			case "tab", "r":
				m.reportRange = (m.reportRange + 1) % 4
				m.card = m.Session.Report(m.reportRange)
			default:
				m.showingReport = false
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.choice > 0 {
				m.choice--
			}
		case "down", "j":
			if m.choice < len(menu)-1 {
				m.choice++
			}
		case "enter", " ":
			switch m.choice {
			case menuQuitIndex:
				m.quitting = true
				return m, tea.Quit
			case menuReportIndex:
				m.reportRange = report.RangeWeek
				m.card = m.Session.Report(m.reportRange)
				m.showingReport = true
			default:
				m.attempt(menu[m.choice].kind)
			}
		}

	case tickMsg:
		m.view = m.Session.Snapshot()
		if m.message != "" && time.Time(msg).After(m.messageExpires) {
			m.message = ""
		}
		return m, tick()
	}

	return m, nil
}

func (m *Model) attempt(kind pet.ActionKind) {
	res := m.Session.Attempt(kind)
	m.view = m.Session.Snapshot()
	if res.OK {
		m.setMessage(startMessage(kind))
		return
	}
	m.setMessage(rejectMessage(res.Reason))
}

func (m *Model) setMessage(msg string) {
	m.message = msg
	m.messageExpires = time.Now().Add(4 * time.Second)
}

func startMessage(kind pet.ActionKind) string {
	switch kind {
	case pet.ActionFeed:
		return "🍖 Dinner is served..."
	case pet.ActionWater:
		return "💧 Refilling the bowl..."
	case pet.ActionExercise:
		return "🐾 Off for a walk!"
	case pet.ActionPlay:
		return "🎾 Play time!"
	case pet.ActionBath:
		return "🛁 Bath time..."
	case pet.ActionGroom:
		return "✂️ Grooming..."
	case pet.ActionVetVisit:
		return "🩺 Heading to the vet..."
	case pet.ActionBuyToy:
		return "🧸 Shopping for a toy..."
	default:
		return "..."
	}
}

func rejectMessage(reason pet.RejectReason) string {
	switch reason {
	case pet.ReasonActionInProgress:
		return "⏳ Something is already happening!"
	case pet.ReasonSleeping:
		return "😴 Shh... they're sleeping."
	case pet.ReasonNotNeeded:
		return "🙅 Not needed right now."
	case pet.ReasonTooTired:
		return "🥱 Too tired for that."
	case pet.ReasonOnCooldown:
		return "⏰ Too soon, still on cooldown."
	case pet.ReasonNeedsToy:
		return "🧸 They need a toy first!"
	case pet.ReasonAlreadyOwned:
		return "🧸 They already have a toy."
	default:
		return "🤔 Can't do that."
	}
}
