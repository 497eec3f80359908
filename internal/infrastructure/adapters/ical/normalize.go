package ical

import (
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/lumenhq/lumen/internal/domain/calendar"
	"github.com/lumenhq/lumen/internal/shared/biztime"
)

const dateLayout = "20060102"

var textUnescaper = strings.NewReplacer(`\,`, ",", `\;`, ";", `\n`, " ", `\N`, " ", `\\`, `\`)

// Normalize converts VEVENTs into events overlapping [from, to), expanding
// recurrences. Events without a usable start are skipped.
func Normalize(cal *ics.Calendar, from, to time.Time) []calendar.Event {
	var out []calendar.Event
	for _, ev := range cal.Events() {
		if strings.EqualFold(propValue(ev, ics.ComponentPropertyStatus), "CANCELLED") {
			continue
		}

		start, end, allDay, ok := eventTimes(ev)
		if !ok {
			continue
		}
		duration := end.Sub(start)
		if duration < 0 {
			duration = 0
		}

		base := calendar.Event{
			ID:       propValue(ev, ics.ComponentPropertyUniqueId),
			Title:    text(propValue(ev, ics.ComponentPropertySummary)),
			Location: text(propValue(ev, ics.ComponentPropertyLocation)),
			AllDay:   allDay,
		}
		if base.Title == "" {
			base.Title = "(No title)"
		}

		starts := []time.Time{start}
		if set, ok := recurrence(propValue(ev, ics.ComponentPropertyRrule), start, exdates(ev, start.Location())); ok {
			starts = set.Between(from.Add(-duration), to, true)
		}

		for _, s := range starts {
			e := base
			e.Start, e.End = s, s.Add(duration)
			if e.Overlaps(from, to) {
				out = append(out, e)
			}
		}
	}
	calendar.SortEvents(out)
	return out
}

func eventTimes(ev *ics.VEvent) (start, end time.Time, allDay, ok bool) {
	dtstart := ev.GetProperty(ics.ComponentPropertyDtStart)
	if dtstart == nil {
		return time.Time{}, time.Time{}, false, false
	}

	if isDateValue(dtstart) {
		start, err := time.ParseInLocation(dateLayout, dtstart.Value, biztime.Location())
		if err != nil {
			return time.Time{}, time.Time{}, false, false
		}
		end := start.AddDate(0, 0, 1)
		if dtend := ev.GetProperty(ics.ComponentPropertyDtEnd); dtend != nil {
			if e, err := time.ParseInLocation(dateLayout, dtend.Value, biztime.Location()); err == nil && e.After(start) {
				end = e
			}
		}
		return start, end, true, true
	}

	start, err := ev.GetStartAt()
	if err != nil {
		return time.Time{}, time.Time{}, false, false
	}
	end, err = ev.GetEndAt()
	if err != nil || end.Before(start) {
		end = start
	}
	return start, end, false, true
}

func isDateValue(p *ics.IANAProperty) bool {
	for _, v := range p.ICalParameters["VALUE"] {
		if strings.EqualFold(v, "DATE") {
			return true
		}
	}
	return len(p.Value) == len(dateLayout)
}

// recurrence anchors an RRULE value at start. Rules finer than hourly are
// not expanded and the event shows once.
func recurrence(value string, start time.Time, excluded []time.Time) (*rrule.Set, bool) {
	if value == "" {
		return nil, false
	}
	opt, err := rrule.StrToROptionInLocation(value, start.Location())
	if err != nil {
		return nil, false
	}
	if opt.Freq == rrule.MINUTELY || opt.Freq == rrule.SECONDLY {
		return nil, false
	}
	opt.Dtstart = start
	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, false
	}

	set := &rrule.Set{}
	set.RRule(r)
	for _, t := range excluded {
		set.ExDate(t)
	}
	return set, true
}

func exdates(ev *ics.VEvent, loc *time.Location) []time.Time {
	var out []time.Time
	for _, p := range ev.Properties {
		if p.IANAToken != string(ics.ComponentPropertyExdate) {
			continue
		}
		for _, raw := range strings.Split(p.Value, ",") {
			if t, ok := parseDateTime(raw, loc); ok {
				out = append(out, t)
			}
		}
	}
	return out
}

func parseDateTime(v string, loc *time.Location) (time.Time, bool) {
	v = strings.TrimSpace(v)
	if strings.HasSuffix(v, "Z") {
		if t, err := time.Parse("20060102T150405Z", v); err == nil {
			return t, true
		}
	}
	if t, err := time.ParseInLocation("20060102T150405", v, loc); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation(dateLayout, v, loc); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func propValue(ev *ics.VEvent, p ics.ComponentProperty) string {
	prop := ev.GetProperty(p)
	if prop == nil {
		return ""
	}
	return prop.Value
}

func text(v string) string {
	return strings.TrimSpace(textUnescaper.Replace(v))
}
