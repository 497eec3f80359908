package news

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFeeds(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"https://a.example/rss", []string{"https://a.example/rss"}},
		{" https://a.example/rss , https://b.example/rss,,", []string{"https://a.example/rss", "https://b.example/rss"}},
		{`["https://a.example/rss","https://a.example/rss","https://c.example/rss"]`, []string{"https://a.example/rss", "https://c.example/rss"}},
		{`[broken`, []string{"[broken"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseFeeds(tt.in), tt.in)
	}
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, ParseLimit(""))
	assert.Equal(t, DefaultLimit, ParseLimit("zero"))
	assert.Equal(t, DefaultLimit, ParseLimit("-3"))
	assert.Equal(t, 4, ParseLimit(" 4 "))
	assert.Equal(t, MaxLimit, ParseLimit("500"))
}

func TestNewest(t *testing.T) {
	t1 := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	items := []Item{
		{Title: "undated"},
		{Title: "older", PublishedAt: &t1},
		{Title: "newer", PublishedAt: &t2},
	}

	got := Newest(items, 2)
	assert.Len(t, got, 2)
	assert.Equal(t, "newer", got[0].Title)
	assert.Equal(t, "older", got[1].Title)
}

func TestDemoHeadlines(t *testing.T) {
	h := DemoHeadlines(time.Now())
	assert.True(t, h.IsDemo)
	assert.NotEmpty(t, h.Items)
}
