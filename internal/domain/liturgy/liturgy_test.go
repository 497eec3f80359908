package liturgy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEaster(t *testing.T) {
	tests := map[int]string{
		1818: "1818-03-22",
		2000: "2000-04-23",
		2019: "2019-04-21",
		2024: "2024-03-31",
		2025: "2025-04-20",
		2026: "2026-04-05",
		2038: "2038-04-25",
	}
	for year, want := range tests {
		assert.Equal(t, want, Easter(year).Format(time.DateOnly), year)
	}
}

func TestAdventStart(t *testing.T) {
	tests := map[int]string{
		2022: "2022-11-27",
		2024: "2024-12-01",
		2025: "2025-11-30",
		2026: "2026-11-29",
	}
	for year, want := range tests {
		assert.Equal(t, want, AdventStart(year).Format(time.DateOnly), year)
	}
}

func TestDayFor(t *testing.T) {
	tests := []struct {
		date   string
		season Season
		feast  string
		rank   Rank
		color  Color
	}{
		{"2026-12-13", SeasonAdvent, "3rd Sunday of Advent", RankSunday, ColorRose},
		{"2026-12-08", SeasonAdvent, "Immaculate Conception", RankSolemnity, ColorWhite},
		{"2026-12-25", SeasonChristmas, "Nativity of the Lord", RankSolemnity, ColorWhite},
		{"2026-01-11", SeasonChristmas, "Baptism of the Lord", RankFeast, ColorWhite},
		{"2026-01-18", SeasonOrdinary, "2nd Sunday in Ordinary Time", RankSunday, ColorGreen},
		{"2026-02-18", SeasonLent, "Ash Wednesday", RankWeekday, ColorViolet},
		{"2026-03-15", SeasonLent, "4th Sunday of Lent", RankSunday, ColorRose},
		{"2026-03-17", SeasonLent, "", RankWeekday, ColorViolet},
		{"2026-03-29", SeasonLent, "Palm Sunday of the Passion of the Lord", RankSunday, ColorRed},
		{"2026-04-03", SeasonTriduum, "Good Friday of the Passion of the Lord", RankSolemnity, ColorRed},
		{"2026-04-05", SeasonEaster, "Easter Sunday of the Resurrection of the Lord", RankSolemnity, ColorWhite},
		{"2026-04-12", SeasonEaster, "2nd Sunday of Easter", RankSunday, ColorWhite},
		{"2026-05-24", SeasonEaster, "Pentecost Sunday", RankSolemnity, ColorRed},
		{"2026-07-12", SeasonOrdinary, "15th Sunday in Ordinary Time", RankSunday, ColorGreen},
		{"2026-07-14", SeasonOrdinary, "", RankWeekday, ColorGreen},
		{"2026-08-15", SeasonOrdinary, "Assumption of the Blessed Virgin Mary", RankSolemnity, ColorWhite},
		{"2026-11-22", SeasonOrdinary, "Our Lord Jesus Christ, King of the Universe", RankSolemnity, ColorWhite},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d, err := time.Parse(time.DateOnly, tt.date)
			assert.NoError(t, err)

			day := DayFor(d)
			assert.Equal(t, tt.season, day.Season)
			assert.Equal(t, tt.feast, day.Feast)
			assert.Equal(t, tt.rank, day.Rank)
			assert.Equal(t, tt.color, day.Color)
		})
	}
}

func TestDayFor_UsesLocalDate(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	// 02:00 UTC on Easter Monday is still Easter Sunday evening in New York.
	instant := time.Date(2026, 4, 6, 2, 0, 0, 0, time.UTC).In(ny)
	assert.Equal(t, "Easter Sunday of the Resurrection of the Lord", DayFor(instant).Feast)
}

func TestOrdinal(t *testing.T) {
	assert.Equal(t, "1st", ordinal(1))
	assert.Equal(t, "2nd", ordinal(2))
	assert.Equal(t, "3rd", ordinal(3))
	assert.Equal(t, "11th", ordinal(11))
	assert.Equal(t, "22nd", ordinal(22))
	assert.Equal(t, "34th", ordinal(34))
}
