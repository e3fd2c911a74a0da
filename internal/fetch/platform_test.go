package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url  string
		want Platform
	}{
		{"https://boards.greenhouse.io/acme/jobs/1", PlatformGreenhouse},
		{"https://job-boards.greenhouse.io/acme/jobs/1", PlatformGreenhouse},
		{"https://jobs.lever.co/acme/abc", PlatformLever},
		{"https://acme.wd1.myworkdayjobs.com/careers", PlatformWorkday},
		{"https://example.com/careers/1", PlatformUnknown},
		{"://bad", PlatformUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectPlatform(tt.url), tt.url)
	}
}

func TestExtractMainText_SelectorPriority(t *testing.T) {
	html := `<html><body>
		<nav>Menu</nav>
		<div class="job__description body"><p>The real posting.</p></div>
		<footer>Legal</footer>
	</body></html>`

	text, err := ExtractMainText(html, PlatformContentSelectors(PlatformGreenhouse))
	require.NoError(t, err)
	assert.Equal(t, "The real posting.", text)
}

func TestExtractMainText_BodyFallback(t *testing.T) {
	html := `<html><body><p>Plain page text</p><script>x()</script></body></html>`

	text, err := ExtractMainText(html, []string{".does-not-exist"})
	require.NoError(t, err)
	assert.Equal(t, "Plain page text", text)
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser("   short   "))

	long := make([]byte, MinContentLength)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, ShouldUseBrowser(string(long)))
}
