package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/harvest"
	"github.com/fwojciec/harvest/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("minimal page", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Example</title></head><body><h1>Hi</h1><p>This paragraph has exactly twenty chars</p></body></html>`

		fields, err := goquery.NewExtractor().Extract(html, "https://example.com")
		require.NoError(t, err)

		assert.Equal(t, "Example", fields.Title)
		assert.Equal(t, []string{"Hi"}, fields.Headings.H1)
		assert.Equal(t, []string{"This paragraph has exactly twenty chars"}, fields.Paragraphs)
	})

	t.Run("title falls back to first h1 then placeholder", func(t *testing.T) {
		t.Parallel()

		fields, err := goquery.NewExtractor().Extract(
			`<html><body><h1>Fallback Title</h1></body></html>`, "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "Fallback Title", fields.Title)

		fields, err = goquery.NewExtractor().Extract(
			`<html><body><div>nothing</div></body></html>`, "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "No title found", fields.Title)
	})

	t.Run("description prefers meta tags in order", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			head string
			want string
		}{
			{
				name: "meta description wins",
				head: `<meta name="description" content="meta desc"><meta property="og:description" content="og desc">`,
				want: "meta desc",
			},
			{
				name: "og description second",
				head: `<meta property="og:description" content="og desc"><meta name="twitter:description" content="tw desc">`,
				want: "og desc",
			},
			{
				name: "twitter description third",
				head: `<meta name="twitter:description" content="tw desc">`,
				want: "tw desc",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				html := fmt.Sprintf(`<html><head>%s</head><body><p>first paragraph body text</p></body></html>`, tt.head)
				fields, err := goquery.NewExtractor().Extract(html, "https://example.com")
				require.NoError(t, err)
				assert.Equal(t, tt.want, fields.Description)
			})
		}
	})

	t.Run("description falls back to first paragraph truncated to 200", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("x", 300)
		html := fmt.Sprintf(`<html><body><p>%s</p></body></html>`, long)

		fields, err := goquery.NewExtractor().Extract(html, "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("x", 200), fields.Description)
	})

	t.Run("description placeholder when nothing available", func(t *testing.T) {
		t.Parallel()

		fields, err := goquery.NewExtractor().Extract(`<html><body></body></html>`, "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "No description found", fields.Description)
	})

	t.Run("headings filter empty and oversized entries", func(t *testing.T) {
		t.Parallel()

		html := fmt.Sprintf(`<html><body>
			<h1>Keep</h1>
			<h1>   </h1>
			<h1>%s</h1>
			<h2>Second</h2>
			<h3>Third</h3>
		</body></html>`, strings.Repeat("y", 200))

		fields, err := goquery.NewExtractor().Extract(html, "https://example.com")
		require.NoError(t, err)

		assert.Equal(t, []string{"Keep"}, fields.Headings.H1)
		assert.Equal(t, []string{"Second"}, fields.Headings.H2)
		assert.Equal(t, []string{"Third"}, fields.Headings.H3)
	})

	t.Run("links resolve to absolute URLs in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/about">About</a>
			<a href="https://other.com/page">External</a>
			<a href="contact.html"></a>
			<a>No href at all</a>
			<a href="">Empty href</a>
		</body></html>`

		fields, err := goquery.NewExtractor().Extract(html, "https://site.com/x")
		require.NoError(t, err)

		require.Len(t, fields.Links, 3)
		assert.Equal(t, harvest.Link{Text: "About", Href: "https://site.com/about"}, fields.Links[0])
		assert.Equal(t, harvest.Link{Text: "External", Href: "https://other.com/page"}, fields.Links[1])
		assert.Equal(t, harvest.Link{Text: "No text", Href: "https://site.com/contact.html"}, fields.Links[2])
	})

	t.Run("images use src then data-src and default alt", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<img src="/logo.png" alt="Logo">
			<img data-src="/lazy.png">
			<img alt="no source">
		</body></html>`

		fields, err := goquery.NewExtractor().Extract(html, "https://site.com")
		require.NoError(t, err)

		require.Len(t, fields.Images, 2)
		assert.Equal(t, harvest.Image{Alt: "Logo", Src: "https://site.com/logo.png"}, fields.Images[0])
		assert.Equal(t, harvest.Image{Alt: "No alt text", Src: "https://site.com/lazy.png"}, fields.Images[1])
	})

	t.Run("paragraph length bounds are inclusive", func(t *testing.T) {
		t.Parallel()

		p19 := strings.Repeat("a", 19)
		p20 := strings.Repeat("b", 20)
		p1000 := strings.Repeat("c", 1000)
		p1001 := strings.Repeat("d", 1001)
		html := fmt.Sprintf(`<html><body><p>%s</p><p>%s</p><p>%s</p><p>%s</p></body></html>`,
			p19, p20, p1000, p1001)

		fields, err := goquery.NewExtractor().Extract(html, "https://example.com")
		require.NoError(t, err)

		assert.Equal(t, []string{p20, p1000}, fields.Paragraphs)
	})

	t.Run("script style noscript and iframe content is stripped", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
			<title></title>
			<script>var ignored = "script text that is long enough";</script>
			<style>.x { color: red }</style>
		</head><body>
			<noscript><p>noscript paragraph that is long enough to pass</p></noscript>
			<iframe><p>iframe paragraph that is long enough to pass</p></iframe>
			<p>real paragraph kept for the extraction</p>
		</body></html>`

		fields, err := goquery.NewExtractor().Extract(html, "https://example.com")
		require.NoError(t, err)

		assert.Equal(t, []string{"real paragraph kept for the extraction"}, fields.Paragraphs)
		assert.Equal(t, "No title found", fields.Title)
	})

	t.Run("does not bound collection sizes", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		b.WriteString("<html><body>")
		for i := 0; i < 60; i++ {
			fmt.Fprintf(&b, `<a href="/p%d">link %d</a>`, i, i)
		}
		b.WriteString("</body></html>")

		fields, err := goquery.NewExtractor().Extract(b.String(), "https://site.com")
		require.NoError(t, err)
		assert.Len(t, fields.Links, 60)
	})
}
