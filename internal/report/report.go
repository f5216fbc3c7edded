// Package report grades the owner's care after the fact. Everything here is
// a pure function over accumulated history; nothing mutates pet state.
package report

import (
	"math"
	"strings"
	"time"

	"github.com/soni-n14/V-Pet-SLC-Zoom/internal/pet"
)

// Range selects how far back the report looks.
type Range int

const (
	RangeDay Range = iota
	RangeWeek
	RangeMonth
	RangeAllTime
)

// Days returns the lower-bound window in days; 0 means unbounded.
func (r Range) Days() int {
	switch r {
	case RangeDay:
		return 1
	case RangeWeek:
		return 7
	case RangeMonth:
		return 30
	default:
		return 0
	}
}

// ActionCounts tallies care actions detected in the filtered event log.
type ActionCounts struct {
	Feed  int
	Water int
	Walk  int
	Play  int
	Bath  int
	Vet   int
	Groom int
}

// Distinct returns how many action kinds were used at least once.
func (c ActionCounts) Distinct() int {
	n := 0
	for _, v := range []int{c.Feed, c.Water, c.Walk, c.Play, c.Bath, c.Vet, c.Groom} {
		if v > 0 {
			n++
		}
	}
	return n
}

// StatReport carries one stat's averaged value and its feedback strings.
type StatReport struct {
	Average    float64
	Assessment string
	Tip        string
}

// Improvement pairs a spotted problem with a suggestion.
type Improvement struct {
	Problem    string
	Suggestion string
}

// Card is the full graded report.
type Card struct {
	Score        int // 0–100
	Grade        string
	VarietyBonus int
	Counts       ActionCounts
	Stats        map[string]StatReport
	MoodSummary  string
	MoodTips     []string
	Improvements []Improvement // ≤4
	Averages     pet.Stats
}

// Inputs bundles the read-side view the report consumes.
type Inputs struct {
	Current    pet.Stats
	Mood       pet.Mood
	Events     []pet.Entry
	TotalSpent int
	History    []pet.Snapshot
	Range      Range
	Now        time.Time
}

// Build produces a report card. It never mutates its inputs.
func Build(in Inputs) Card {
	events, snaps := filterByRange(in.Events, in.History, in.Range, in.Now)
	counts := countActions(events)
	averages := averageStats(snaps, in.Current)

	variety := 2 * counts.Distinct()
	if variety > 10 {
		variety = 10
	}
	score := int(math.Round(in.Current.Average())) + variety
	if score > 100 {
		score = 100
	}

	card := Card{
		Score:        score,
		Grade:        letterGrade(score),
		VarietyBonus: variety,
		Counts:       counts,
		Averages:     averages,
		Stats:        statFeedback(averages),
	}
	card.MoodSummary, card.MoodTips = moodFeedback(in.Mood)
	card.Improvements = improvements(in.Current, counts)
	return card
}

func filterByRange(events []pet.Entry, snaps []pet.Snapshot, r Range, now time.Time) ([]pet.Entry, []pet.Snapshot) {
	days := r.Days()
	if days == 0 {
		return events, snaps
	}
	cutoff := now.AddDate(0, 0, -days)

	var fe []pet.Entry
	for _, e := range events {
		if !e.Time.Before(cutoff) {
			fe = append(fe, e)
		}
	}
	var fs []pet.Snapshot
	for _, s := range snaps {
		if !s.Time.Before(cutoff) {
			fs = append(fs, s)
		}
	}
	return fe, fs
}

// countActions buckets events by case-insensitive keyword matching against
// the message text. One message may land in several buckets; that
// overcounting is accepted, not a bug to fix here. The typed Kind tag on
// entries exists for an eventual structured migration.
func countActions(events []pet.Entry) ActionCounts {
	var c ActionCounts
	for _, e := range events {
		msg := strings.ToLower(e.Message)
		if containsAny(msg, "fed", "feed", "meal") {
			c.Feed++
		}
		if strings.Contains(msg, "water") {
			c.Water++
		}
		if strings.Contains(msg, "walk") {
			c.Walk++
		}
		if strings.Contains(msg, "play") {
			c.Play++
		}
		if strings.Contains(msg, "bath") {
			c.Bath++
		}
		if strings.Contains(msg, "vet") {
			c.Vet++
		}
		if containsAny(msg, "groom", "nails") {
			c.Groom++
		}
	}
	return c
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// averageStats means each stat over the filtered snapshots, falling back to
// the live value when no snapshots are in range.
func averageStats(snaps []pet.Snapshot, current pet.Stats) pet.Stats {
	if len(snaps) == 0 {
		return current
	}
	var sum pet.Stats
	for _, s := range snaps {
		sum.Hunger += s.Stats.Hunger
		sum.Thirst += s.Stats.Thirst
		sum.Happiness += s.Stats.Happiness
		sum.Hygiene += s.Stats.Hygiene
		sum.Energy += s.Stats.Energy
	}
	n := float64(len(snaps))
	return pet.Stats{
		Hunger:    sum.Hunger / n,
		Thirst:    sum.Thirst / n,
		Happiness: sum.Happiness / n,
		Hygiene:   sum.Hygiene / n,
		Energy:    sum.Energy / n,
	}
}

var gradeTable = []struct {
	Min   int
	Grade string
}{
	{97, "A+"}, {93, "A"}, {90, "A-"},
	{87, "B+"}, {83, "B"}, {80, "B-"},
	{77, "C+"}, {73, "C"}, {70, "C-"},
	{67, "D+"}, {63, "D"}, {60, "D-"},
}

func letterGrade(score int) string {
	for _, row := range gradeTable {
		if score >= row.Min {
			return row.Grade
		}
	}
	return "F"
}

// Assessment bands: ≥70 good, <40 low, else middling. Independent of the
// grade computation.
const (
	goodBand = 70
	lowBand  = 40
)

func statFeedback(avg pet.Stats) map[string]StatReport {
	return map[string]StatReport{
		"hunger":    oneStat(avg.Hunger, "Well fed!", "Running on empty — feed more often.", "Could eat a little more regularly."),
		"thirst":    oneStat(avg.Thirst, "Nicely hydrated!", "Parched — keep the water bowl full.", "Hydration could be steadier."),
		"happiness": oneStat(avg.Happiness, "A genuinely happy pet!", "Feeling down — more play and walks.", "Mood is so-so; mix in more fun."),
		"hygiene":   oneStat(avg.Hygiene, "Squeaky clean!", "Getting grimy — time for a bath.", "Could be cleaner; grooming helps."),
		"energy":    oneStat(avg.Energy, "Full of beans!", "Exhausted — let them rest.", "Energy dips now and then."),
	}
}

func oneStat(v float64, good, low, middling string) StatReport {
	r := StatReport{Average: v}
	switch {
	case v >= goodBand:
		r.Assessment = "good"
		r.Tip = good
	case v < lowBand:
		r.Assessment = "low"
		r.Tip = low
	default:
		r.Assessment = "middling"
		r.Tip = middling
	}
	return r
}

func moodFeedback(m pet.Mood) (string, []string) {
	switch m {
	case pet.MoodHappy:
		return "Beaming — whatever you're doing, keep it up.", []string{"Maintain the routine.", "A new toy keeps things fresh."}
	case pet.MoodOkay:
		return "Content, but there's room to brighten the day.", []string{"An extra play session goes a long way.", "Check the countdowns for what's due."}
	case pet.MoodSad:
		return "Feeling blue lately.", []string{"Prioritize play and walks.", "Make sure basics are covered before treats."}
	case pet.MoodGrumpy:
		return "Grumpy — needs are going unmet.", []string{"Start with food and water.", "A bath and some attention can turn this around."}
	case pet.MoodSleeping:
		return "Fast asleep — check back in the morning.", []string{"Let them rest; energy recovers overnight."}
	default:
		return "Settling in.", []string{"Keep an eye on the stats as you get to know each other."}
	}
}

// improvements walks a fixed, ordered condition list and keeps at most four
// findings; a positive default fills in when nothing triggers.
func improvements(current pet.Stats, c ActionCounts) []Improvement {
	var out []Improvement
	add := func(problem, suggestion string) {
		if len(out) < 4 {
			out = append(out, Improvement{Problem: problem, Suggestion: suggestion})
		}
	}

	if current.Hunger < lowBand && c.Feed < 2 {
		add("Hunger has been running low with few feedings.", "Feed before hunger drops below 40.")
	}
	if current.Thirst < lowBand && c.Water < 2 {
		add("The water bowl has been neglected.", "Refill water whenever the countdown hits zero.")
	}
	if current.Happiness < lowBand && c.Play+c.Walk < 2 {
		add("Not much play or exercise lately.", "Schedule a daily walk or play session.")
	}
	if current.Hygiene < lowBand && c.Bath+c.Groom == 0 {
		add("Hygiene is slipping with no baths or grooming.", "A bath restores hygiene quickly.")
	}
	if current.Energy < 20 {
		add("Energy is critically low.", "Hold off on exercise and let them sleep.")
	}

	if len(out) == 0 {
		out = append(out, Improvement{
			Problem:    "No real problems spotted.",
			Suggestion: "Great care! Keep the variety up.",
		})
	}
	return out
}
