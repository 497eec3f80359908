package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	s := NewMarkdownService()

	out, err := s.ToHTMLSanitized("**Good morning!** Rain after *noon*.")
	require.NoError(t, err)
	assert.Equal(t, "<p><strong>Good morning!</strong> Rain after <em>noon</em>.</p>", strings.TrimSpace(out))
}

func TestToHTMLSanitized_StripsUnsafeMarkup(t *testing.T) {
	s := NewMarkdownService()

	out, err := s.ToHTMLSanitized("Hello <script>alert(1)</script><img src=x onerror=alert(1)> [site](https://evil.example)")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "<img")
	assert.NotContains(t, out, "<a ")
	assert.Contains(t, out, "site")
}
