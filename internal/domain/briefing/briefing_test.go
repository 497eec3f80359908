package briefing

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenhq/lumen/internal/domain/calendar"
	"github.com/lumenhq/lumen/internal/domain/commute"
	"github.com/lumenhq/lumen/internal/domain/liturgy"
	"github.com/lumenhq/lumen/internal/domain/weather"
	"github.com/lumenhq/lumen/internal/shared/biztime"
)

func TestMain(m *testing.M) {
	if err := biztime.Init("UTC"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func sampleContext() Context {
	now := time.Date(2026, 3, 19, 7, 30, 0, 0, time.UTC)
	report := weather.DemoReport(weather.DefaultSettings(), now)
	return Context{
		Now:     now,
		Weather: &report,
		Events: []calendar.Event{
			{Title: "Standup", Start: now.Add(90 * time.Minute), End: now.Add(2 * time.Hour)},
			{Title: "Tomorrow", Start: now.Add(26 * time.Hour)},
		},
		Commute: []commute.Estimate{
			{RouteName: "Work", DurationMinutes: 25, TrafficDelayMinutes: 5, LeaveBy: now.Add(30 * time.Minute)},
		},
		Feast: &liturgy.Day{Feast: "Saint Joseph, Spouse of the Blessed Virgin Mary"},
	}
}

func TestCompose(t *testing.T) {
	got := Compose(sampleContext(), DefaultPreferences())

	assert.Contains(t, got, "**Good morning!**")
	assert.Contains(t, got, "It's 68° and mainly clear in New York, NY, with a high of 72° and a low of 58°.")
	assert.Contains(t, got, "You have one event today: Standup at 9:00 AM.")
	assert.Contains(t, got, "Leave by 8:00 AM for Work (25 min, 5 min of traffic).")
	assert.Contains(t, got, "Today is Saint Joseph")
	assert.NotContains(t, got, "Tomorrow")
}

func TestCompose_RespectsToggles(t *testing.T) {
	p := DefaultPreferences()
	p.IncludeWeather = false
	p.IncludeCommute = false
	p.Tone = ToneConcise

	got := Compose(sampleContext(), p)
	assert.NotContains(t, got, "Good morning")
	assert.NotContains(t, got, "68°")
	assert.NotContains(t, got, "Leave by")
	assert.Contains(t, got, "Standup")
}

func TestCompose_EmptyContext(t *testing.T) {
	got := Compose(Context{Now: time.Date(2026, 3, 19, 19, 0, 0, 0, time.UTC)}, Preferences{Tone: ToneFormal})
	assert.Equal(t, "Good evening. Have a great day.", got)
}

func TestCompose_ClearCalendar(t *testing.T) {
	c := Context{Now: time.Date(2026, 3, 19, 13, 0, 0, 0, time.UTC), Events: []calendar.Event{}}
	assert.Equal(t, "Your calendar is clear today.", Compose(c, Preferences{Tone: ToneConcise, IncludeCalendar: true}))
}

func TestPrompt(t *testing.T) {
	p := DefaultPreferences()
	p.CustomPrompt = "Mention the recycling pickup."
	system, user := Prompt(sampleContext(), p)

	assert.Contains(t, system, "warm")
	assert.Contains(t, user, "Thursday, March 19, 7:30 AM")
	assert.Contains(t, user, "Standup")
	assert.Contains(t, user, "Additional instructions: Mention the recycling pickup.")
}

func TestPreferences(t *testing.T) {
	p := PreferencesFromMap(map[string]string{
		KeyIncludeWeather:  "false",
		KeyIncludeCalendar: "garbage",
		KeyTone:            "formal",
		KeyCustomPrompt:    "Be brief.",
	})
	assert.False(t, p.IncludeWeather)
	assert.True(t, p.IncludeCalendar)
	assert.True(t, p.IncludeCommute)
	assert.Equal(t, ToneFormal, p.Tone)
	require.NoError(t, p.Validate())

	assert.Equal(t, p, PreferencesFromMap(p.Map()))

	assert.Equal(t, ToneFriendly, PreferencesFromMap(map[string]string{KeyTone: "sarcastic"}).Tone)

	p.Tone = "sarcastic"
	assert.ErrorIs(t, p.Validate(), ErrInvalidTone)

	long := make([]rune, MaxCustomPromptLength+1)
	for i := range long {
		long[i] = 'é'
	}
	q := DefaultPreferences()
	q.CustomPrompt = string(long)
	assert.ErrorIs(t, q.Validate(), ErrCustomPromptTooLong)
	q.CustomPrompt = string(long[:MaxCustomPromptLength])
	assert.NoError(t, q.Validate())
}
