package briefing

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/lumenhq/lumen/internal/domain/calendar"
	"github.com/lumenhq/lumen/internal/domain/commute"
	"github.com/lumenhq/lumen/internal/domain/liturgy"
	"github.com/lumenhq/lumen/internal/domain/weather"
	"github.com/lumenhq/lumen/internal/shared/biztime"
)

// Context is what the briefing may talk about. Nil or empty parts are skipped.
type Context struct {
	Now     time.Time
	Weather *weather.Report
	Events  []calendar.Event
	Commute []commute.Estimate
	Feast   *liturgy.Day
}

// Summary is the payload of the AI summary widget.
type Summary struct {
	Summary     string    `json:"summary"`
	HTML        string    `json:"html"`
	GeneratedAt time.Time `json:"generatedAt"`
	IsDemo      bool      `json:"isDemo"`
}

// Scope drops the parts of c the preferences exclude.
func (c Context) Scope(p Preferences) Context {
	if !p.IncludeWeather {
		c.Weather = nil
	}
	if !p.IncludeCalendar {
		c.Events = nil
	}
	if !p.IncludeCommute {
		c.Commute = nil
	}
	return c
}

func greeting(now time.Time) string {
	switch h := biztime.Local(now).Hour(); {
	case h < 12:
		return "Good morning"
	case h < 17:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func clock(t time.Time) string {
	return biztime.Local(t).Format("3:04 PM")
}

func degrees(v float64) string {
	return fmt.Sprintf("%d°", int(math.Round(v)))
}

func (c Context) weatherLine() string {
	w := c.Weather
	if w == nil {
		return ""
	}
	line := fmt.Sprintf("It's %s and %s in %s", degrees(w.Current.Temperature), strings.ToLower(w.Current.Condition), w.Location)
	if len(w.Daily) > 0 {
		line += fmt.Sprintf(", with a high of %s and a low of %s", degrees(w.Daily[0].High), degrees(w.Daily[0].Low))
	}
	return line + "."
}

func (c Context) todaysEvents() []calendar.Event {
	start := biztime.StartOfDay(c.Now)
	end := start.AddDate(0, 0, 1)
	out := make([]calendar.Event, 0, len(c.Events))
	for _, e := range c.Events {
		if e.Overlaps(start, end) {
			out = append(out, e)
		}
	}
	return out
}

func (c Context) calendarLine() string {
	events := c.todaysEvents()
	switch len(events) {
	case 0:
		if c.Events == nil {
			return ""
		}
		return "Your calendar is clear today."
	case 1:
		return "You have one event today: " + describeEvent(events[0]) + "."
	}
	parts := make([]string, 0, 3)
	for i, e := range events {
		if i == 3 {
			break
		}
		parts = append(parts, describeEvent(e))
	}
	line := fmt.Sprintf("You have %d events today: %s", len(events), strings.Join(parts, ", "))
	if len(events) > 3 {
		line += fmt.Sprintf(" and %d more", len(events)-3)
	}
	return line + "."
}

func describeEvent(e calendar.Event) string {
	if e.AllDay {
		return e.Title + " (all day)"
	}
	return e.Title + " at " + clock(e.Start)
}

func (c Context) commuteLine() string {
	if len(c.Commute) == 0 {
		return ""
	}
	lines := make([]string, 0, len(c.Commute))
	for _, est := range c.Commute {
		line := fmt.Sprintf("Leave by %s for %s (%d min", clock(est.LeaveBy), est.RouteName, est.DurationMinutes)
		if est.TrafficDelayMinutes > 0 {
			line += fmt.Sprintf(", %d min of traffic", est.TrafficDelayMinutes)
		}
		line += ")."
		lines = append(lines, line)
	}
	return strings.Join(lines, " ")
}

func (c Context) feastLine() string {
	if c.Feast == nil || c.Feast.Feast == "" {
		return ""
	}
	return "Today is " + c.Feast.Feast + "."
}

// Compose writes the briefing locally as Markdown.
func Compose(c Context, p Preferences) string {
	c = c.Scope(p)

	var lines []string
	for _, l := range []string{c.weatherLine(), c.calendarLine(), c.commuteLine(), c.feastLine()} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		lines = append(lines, "Have a great day.")
	}

	body := strings.Join(lines, " ")
	switch p.Tone {
	case ToneConcise:
		return body
	case ToneFormal:
		return greeting(c.Now) + ". " + body
	default:
		return "**" + greeting(c.Now) + "!** " + body
	}
}

// Prompt returns the system and user messages for an assistant.
func Prompt(c Context, p Preferences) (system, user string) {
	c = c.Scope(p)

	switch p.Tone {
	case ToneConcise:
		system = "You write very short morning briefings for a wall display. Two sentences at most. No greeting."
	case ToneFormal:
		system = "You write courteous, formal morning briefings for a wall display. Three sentences at most."
	default:
		system = "You write warm, upbeat morning briefings for a wall display. Three sentences at most."
	}
	system += " Use Markdown sparingly; bold is allowed, headings and lists are not."

	var b strings.Builder
	fmt.Fprintf(&b, "Local time: %s.\n", biztime.Local(c.Now).Format("Monday, January 2, 3:04 PM"))
	for _, l := range []string{c.weatherLine(), c.calendarLine(), c.commuteLine(), c.feastLine()} {
		if l != "" {
			b.WriteString(l)
			b.WriteByte('\n')
		}
	}
	if p.CustomPrompt != "" {
		b.WriteString("\nAdditional instructions: ")
		b.WriteString(p.CustomPrompt)
		b.WriteByte('\n')
	}
	return system, b.String()
}
