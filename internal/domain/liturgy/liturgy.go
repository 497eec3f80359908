// Package liturgy computes the liturgical day (season, feast and vestment
// color) of the Roman general calendar for a civil date.
package liturgy

import (
	"fmt"
	"time"
)

type Season string

const (
	SeasonAdvent    Season = "advent"
	SeasonChristmas Season = "christmas"
	SeasonOrdinary  Season = "ordinary"
	SeasonLent      Season = "lent"
	SeasonTriduum   Season = "triduum"
	SeasonEaster    Season = "easter"
)

// Name returns the display name of the season.
func (s Season) Name() string {
	switch s {
	case SeasonAdvent:
		return "Advent"
	case SeasonChristmas:
		return "Christmas"
	case SeasonLent:
		return "Lent"
	case SeasonTriduum:
		return "Easter Triduum"
	case SeasonEaster:
		return "Easter"
	default:
		return "Ordinary Time"
	}
}

type Color string

const (
	ColorGreen  Color = "green"
	ColorViolet Color = "violet"
	ColorRose   Color = "rose"
	ColorWhite  Color = "white"
	ColorRed    Color = "red"
)

type Rank string

const (
	RankSolemnity Rank = "solemnity"
	RankFeast     Rank = "feast"
	RankMemorial  Rank = "memorial"
	RankSunday    Rank = "sunday"
	RankWeekday   Rank = "weekday"
)

// Day is the liturgical description of one civil date.
type Day struct {
	Date   time.Time
	Season Season
	Week   int
	Feast  string
	Rank   Rank
	Color  Color
}

// Easter returns Easter Sunday of year using the anonymous Gregorian algorithm.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return date(year, time.Month(month), day)
}

// AdventStart returns the first Sunday of Advent in year.
func AdventStart(year int) time.Time {
	christmas := date(year, time.December, 25)
	offset := int(christmas.Weekday())
	if offset == 0 {
		offset = 7
	}
	return christmas.AddDate(0, 0, -offset-21)
}

// BaptismOfTheLord returns the Sunday after January 6, which closes Christmas.
func BaptismOfTheLord(year int) time.Time {
	d := date(year, time.January, 7)
	for d.Weekday() != time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// DayFor returns the liturgical day of t's civil date in t's location.
func DayFor(t time.Time) Day {
	d := date(t.Year(), t.Month(), t.Day())
	day := Day{Date: d}
	day.Season, day.Week, day.Color = seasonOf(d)
	day.Rank = RankWeekday
	if d.Weekday() == time.Sunday {
		day.Rank = RankSunday
		if day.Week > 0 {
			day.Feast = fmt.Sprintf("%s Sunday %s", ordinal(day.Week), seasonPhrase(day.Season))
		}
	}

	if f, ok := moveableFeast(d); ok {
		day.apply(f)
		return day
	}
	if f, ok := fixedFeasts[monthDay{d.Month(), d.Day()}]; ok && day.admits(f) {
		day.apply(f)
	}
	if day.isRoseSunday() {
		day.Color = ColorRose
	}
	return day
}

type feast struct {
	name  string
	rank  Rank
	color Color
}

type monthDay struct {
	month time.Month
	day   int
}

var fixedFeasts = map[monthDay]feast{
	{time.January, 1}:    {"Mary, Mother of God", RankSolemnity, ColorWhite},
	{time.January, 6}:    {"Epiphany of the Lord", RankSolemnity, ColorWhite},
	{time.February, 2}:   {"Presentation of the Lord", RankFeast, ColorWhite},
	{time.March, 17}:     {"Saint Patrick", RankMemorial, ColorWhite},
	{time.March, 19}:     {"Saint Joseph", RankSolemnity, ColorWhite},
	{time.March, 25}:     {"Annunciation of the Lord", RankSolemnity, ColorWhite},
	{time.June, 24}:      {"Nativity of Saint John the Baptist", RankSolemnity, ColorWhite},
	{time.June, 29}:      {"Saints Peter and Paul", RankSolemnity, ColorRed},
	{time.August, 6}:     {"Transfiguration of the Lord", RankFeast, ColorWhite},
	{time.August, 15}:    {"Assumption of the Blessed Virgin Mary", RankSolemnity, ColorWhite},
	{time.September, 14}: {"Exaltation of the Holy Cross", RankFeast, ColorRed},
	{time.October, 4}:    {"Saint Francis of Assisi", RankMemorial, ColorWhite},
	{time.November, 1}:   {"All Saints", RankSolemnity, ColorWhite},
	{time.November, 2}:   {"All Souls", RankFeast, ColorViolet},
	{time.December, 8}:   {"Immaculate Conception", RankSolemnity, ColorWhite},
	{time.December, 25}:  {"Nativity of the Lord", RankSolemnity, ColorWhite},
	{time.December, 26}:  {"Saint Stephen", RankFeast, ColorRed},
}

func (d *Day) apply(f feast) {
	d.Feast = f.name
	d.Rank = f.rank
	d.Color = f.color
}

// admits reports whether a fixed celebration displaces the day. Holy Week,
// the Easter octave and the Sundays of Advent, Lent and Easter outrank every
// fixed date; memorials also yield to other Sundays and to Lent.
func (d *Day) admits(f feast) bool {
	if offset := daysBetween(Easter(d.Date.Year()), d.Date); offset >= -7 && offset <= 7 {
		return false
	}
	if d.Rank == RankSunday {
		switch d.Season {
		case SeasonAdvent, SeasonLent, SeasonEaster:
			return false
		}
		if f.rank == RankMemorial {
			return false
		}
	}
	if f.rank == RankMemorial && d.Season == SeasonLent {
		return false
	}
	return true
}

func (d *Day) isRoseSunday() bool {
	if d.Rank != RankSunday {
		return false
	}
	return d.Season == SeasonAdvent && d.Week == 3 || d.Season == SeasonLent && d.Week == 4
}

func seasonOf(d time.Time) (Season, int, Color) {
	year := d.Year()
	easter := Easter(year)
	ash := easter.AddDate(0, 0, -46)
	holyThursday := easter.AddDate(0, 0, -3)
	pentecost := easter.AddDate(0, 0, 49)
	advent := AdventStart(year)
	baptism := BaptismOfTheLord(year)

	switch {
	case !d.Before(advent) && d.Before(date(year, time.December, 25)):
		return SeasonAdvent, daysBetween(advent, d)/7 + 1, ColorViolet
	case !d.Before(date(year, time.December, 25)) || !d.After(baptism):
		return SeasonChristmas, 0, ColorWhite
	case !d.Before(ash) && d.Before(holyThursday):
		// Week 1 starts on the first Sunday of Lent; Ash Wednesday to
		// Saturday is week 0.
		return SeasonLent, weekFrom(ash.AddDate(0, 0, 4), d), ColorViolet
	case !d.Before(holyThursday) && d.Before(easter):
		return SeasonTriduum, 0, ColorWhite
	case !d.Before(easter) && !d.After(pentecost):
		return SeasonEaster, daysBetween(easter, d)/7 + 1, ColorWhite
	case d.Before(ash):
		return SeasonOrdinary, daysBetween(baptism, d)/7 + 1, ColorGreen
	default:
		return SeasonOrdinary, 34 - (daysBetween(d, advent)-1)/7, ColorGreen
	}
}

func moveableFeast(d time.Time) (feast, bool) {
	easter := Easter(d.Year())
	switch offset := daysBetween(easter, d); offset {
	case -46:
		return feast{"Ash Wednesday", RankWeekday, ColorViolet}, true
	case -7:
		return feast{"Palm Sunday of the Passion of the Lord", RankSunday, ColorRed}, true
	case -3:
		return feast{"Holy Thursday", RankSolemnity, ColorWhite}, true
	case -2:
		return feast{"Good Friday of the Passion of the Lord", RankSolemnity, ColorRed}, true
	case -1:
		return feast{"Holy Saturday", RankSolemnity, ColorViolet}, true
	case 0:
		return feast{"Easter Sunday of the Resurrection of the Lord", RankSolemnity, ColorWhite}, true
	case 39:
		return feast{"Ascension of the Lord", RankSolemnity, ColorWhite}, true
	case 49:
		return feast{"Pentecost Sunday", RankSolemnity, ColorRed}, true
	case 56:
		return feast{"Most Holy Trinity", RankSolemnity, ColorWhite}, true
	case 60:
		return feast{"Most Holy Body and Blood of Christ", RankSolemnity, ColorWhite}, true
	case 68:
		return feast{"Most Sacred Heart of Jesus", RankSolemnity, ColorWhite}, true
	}
	if d.Equal(AdventStart(d.Year()).AddDate(0, 0, -7)) {
		return feast{"Our Lord Jesus Christ, King of the Universe", RankSolemnity, ColorWhite}, true
	}
	if d.Equal(BaptismOfTheLord(d.Year())) {
		return feast{"Baptism of the Lord", RankFeast, ColorWhite}, true
	}
	return feast{}, false
}

func seasonPhrase(s Season) string {
	switch s {
	case SeasonOrdinary:
		return "in Ordinary Time"
	default:
		return "of " + s.Name()
	}
}

func weekFrom(start, d time.Time) int {
	if d.Before(start) {
		return 0
	}
	return daysBetween(start, d)/7 + 1
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
