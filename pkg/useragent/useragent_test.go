package useragent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ers-returns/fileupload/pkg/useragent"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ua      string
		browser string
		major   int
		legacy  bool
	}{
		{
			name:    "IE 8",
			ua:      "Mozilla/4.0 (compatible; MSIE 8.0; Windows NT 6.1; Trident/4.0)",
			browser: useragent.BrowserIE,
			major:   8,
			legacy:  true,
		},
		{
			name:    "IE 9",
			ua:      "Mozilla/5.0 (compatible; MSIE 9.0; Windows NT 6.1; Trident/5.0)",
			browser: useragent.BrowserIE,
			major:   9,
			legacy:  true,
		},
		{
			name:    "IE 10",
			ua:      "Mozilla/5.0 (compatible; MSIE 10.0; Windows NT 6.2; Trident/6.0)",
			browser: useragent.BrowserIE,
			major:   10,
		},
		{
			name:    "IE 11",
			ua:      "Mozilla/5.0 (Windows NT 10.0; Trident/7.0; rv:11.0) like Gecko",
			browser: useragent.BrowserIE,
			major:   11,
		},
		{
			name:    "edge",
			ua:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.2210.91",
			browser: useragent.BrowserEdge,
			major:   120,
		},
		{
			name:    "chrome",
			ua:      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
			browser: useragent.BrowserChrome,
			major:   121,
		},
		{
			name:    "firefox",
			ua:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:122.0) Gecko/20100101 Firefox/122.0",
			browser: useragent.BrowserFirefox,
			major:   122,
		},
		{
			name:    "safari",
			ua:      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Safari/605.1.15",
			browser: useragent.BrowserSafari,
			major:   17,
		},
		{
			name:    "opera",
			ua:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36 OPR/105.0.0.0",
			browser: useragent.BrowserOpera,
			major:   105,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := useragent.Parse(tt.ua)
			require.NoError(t, err)
			assert.Equal(t, tt.browser, b.Name)
			assert.Equal(t, tt.major, b.Major())
			assert.Equal(t, tt.legacy, b.IsLegacyIE())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	b, err := useragent.Parse("")
	assert.ErrorIs(t, err, useragent.ErrEmptyUserAgent)
	assert.Equal(t, useragent.BrowserUnknown, b.Name)

	b, err = useragent.Parse("curl/8.4.0")
	assert.ErrorIs(t, err, useragent.ErrUnsupportedBrowser)
	assert.Equal(t, useragent.BrowserUnknown, b.Name)
	assert.False(t, b.IsLegacyIE())
}

func TestBrowser_Major(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, useragent.Browser{}.Major())
	assert.Equal(t, 0, useragent.Browser{Version: "x.1"}.Major())
	assert.Equal(t, 7, useragent.Browser{Version: "7"}.Major())
}
