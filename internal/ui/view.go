package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/soni-n14/V-Pet-SLC-Zoom/internal/pet"
	"github.com/soni-n14/V-Pet-SLC-Zoom/internal/report"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF75B5")).
			MarginBottom(1)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6ACCD")).
			Width(11)

	barFullStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7FD88F"))
	barLowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6E6E"))
	barEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B4261"))

	menuStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF75B5"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4"))
	messageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F1FA8C"))
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BE9FD"))
)

var archetypeEmoji = map[pet.Archetype]string{
	pet.Dog:    "🐕",
	pet.Cat:    "🐈",
	pet.Parrot: "🦜",
	pet.Rabbit: "🐇",
}

var moodEmoji = map[pet.Mood]string{
	pet.MoodHappy:    "😸",
	pet.MoodOkay:     "🙂",
	pet.MoodSad:      "😿",
	pet.MoodGrumpy:   "😾",
	pet.MoodNeutral:  "😐",
	pet.MoodSleeping: "😴",
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return "Thanks for taking good care of them!\n"
	}
	if m.showingReport {
		return m.reportView()
	}

	v := m.view
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s %s", archetypeEmoji[v.Archetype], v.Name, moodEmoji[v.Mood])))
	b.WriteString("\n\n")

	b.WriteString(statLine("Hunger", v.Stats.Hunger))
	b.WriteString(statLine("Thirst", v.Stats.Thirst))
	b.WriteString(statLine("Happiness", v.Stats.Happiness))
	b.WriteString(statLine("Hygiene", v.Stats.Hygiene))
	b.WriteString(statLine("Energy", v.Stats.Energy))

	b.WriteString(fmt.Sprintf("\nMood: %s    Spent: %d coins", v.Mood, v.TotalSpent))
	if v.HasToy {
		b.WriteString("    🧸")
	}
	b.WriteString("\n")

	if v.RunKind != "" {
		b.WriteString(messageStyle.Render(fmt.Sprintf("⏳ %s in progress... %s left", v.RunKind, formatDuration(v.RunRemaining))))
		b.WriteString("\n")
	}
	if m.message != "" {
		b.WriteString(messageStyle.Render(m.message))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range menu {
		cursor := " "
		if m.choice == i {
			cursor = ">"
		}
		line := fmt.Sprintf("%s %s", cursor, item.label)
		if d, ok := v.Countdowns[item.kind]; ok && d > 0 {
			line += dimStyle.Render(fmt.Sprintf("  (ready in %s)", formatDuration(d)))
		}
		b.WriteString(menuStyle.Render(line))
		b.WriteString("\n")
	}

	if len(v.Events) > 0 {
		b.WriteString("\n" + headingStyle.Render("Recent:") + "\n")
		for i, e := range v.Events {
			if i >= 5 {
				break
			}
			b.WriteString(dimStyle.Render("  • " + e.Message))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n" + dimStyle.Render("↑/↓ select · enter confirm · q quit"))
	return b.String()
}

func statLine(label string, value float64) string {
	const width = 20
	filled := int(value / 100 * width)
	if filled > width {
		filled = width
	}
	style := barFullStyle
	if value < 40 {
		style = barLowStyle
	}
	bar := style.Render(strings.Repeat("█", filled)) + barEmptyStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %s %3.0f%%\n", statLabelStyle.Render(label), bar, value)
}

func (m Model) reportView() string {
	c := m.card
	var b strings.Builder

	b.WriteString(titleStyle.Render("📋 Report Card · " + rangeLabel(m.reportRange)))
	b.WriteString("\n\n")
	b.WriteString(headingStyle.Render(fmt.Sprintf("Score: %d   Grade: %s", c.Score, c.Grade)))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  (variety bonus +%d)", c.VarietyBonus)))
	b.WriteString("\n\n")

	for _, name := range []string{"hunger", "thirst", "happiness", "hygiene", "energy"} {
		sr := c.Stats[name]
		b.WriteString(fmt.Sprintf("%s avg %5.1f  [%s]  %s\n",
			statLabelStyle.Render(name), sr.Average, sr.Assessment, dimStyle.Render(sr.Tip)))
	}

	b.WriteString("\n" + headingStyle.Render("Mood: ") + c.MoodSummary + "\n")
	for _, tip := range c.MoodTips {
		b.WriteString(dimStyle.Render("  · " + tip))
		b.WriteString("\n")
	}

	b.WriteString("\n" + headingStyle.Render("Improvements:") + "\n")
	for _, imp := range c.Improvements {
		b.WriteString("  • " + imp.Problem + "\n")
		b.WriteString(dimStyle.Render("    → " + imp.Suggestion))
		b.WriteString("\n")
	}

	b.WriteString("\n" + dimStyle.Render("tab cycle range · any key back · q quit"))
	return b.String()
}

func rangeLabel(r report.Range) string {
	switch r {
	case report.RangeDay:
		return "last day"
	case report.RangeWeek:
		return "last 7 days"
	case report.RangeMonth:
		return "last 30 days"
	default:
		return "all time"
	}
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d >= time.Hour {
		return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
	}
	if d >= time.Minute {
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}
