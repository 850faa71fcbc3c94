package preload_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/preload"
)

func newPreloader(t *testing.T, register func(r *preload.Registry), opts ...preload.Option) *preload.Preloader {
	t.Helper()
	r := preload.NewRegistry()
	register(r)
	p, err := preload.New(r, opts...)
	require.NoError(t, err)
	return p
}

func siteRegistry(t *testing.T) func(r *preload.Registry) {
	return func(r *preload.Registry) {
		require.NoError(t, r.RegisterScript("app", "/dist/scripts/main.js"))
		require.NoError(t, r.RegisterScript("vendor", "/dist/scripts/vendor.js"))
		require.NoError(t, r.RegisterStyle("main", "/dist/styles/main.css", false))
		require.NoError(t, r.RegisterStyle("fonts", "/dist/styles/fonts.css", true))
		require.NoError(t, r.RegisterStyle("print", "/dist/styles/print.css", true))
	}
}

func TestNew_NilRegistry(t *testing.T) {
	t.Parallel()
	_, err := preload.New(nil)
	assert.ErrorIs(t, err, preload.ErrNilRegistry)
}

func TestNew_InvalidCookiePrefix(t *testing.T) {
	t.Parallel()
	_, err := preload.New(preload.NewRegistry(), preload.WithCookiePrefix("css cached;"))
	assert.ErrorIs(t, err, preload.ErrInvalidName)
}

func TestNew_FreezesRegistry(t *testing.T) {
	t.Parallel()
	p := newPreloader(t, siteRegistry(t))
	assert.True(t, p.Registry().Frozen())
	assert.ErrorIs(t, p.Registry().RegisterStyle("late", "/late.css", false), preload.ErrFrozen)
}

func TestPage_Begin(t *testing.T) {
	t.Parallel()
	p := newPreloader(t, siteRegistry(t))

	t.Run("first visit sets a cookie per lazy style", func(t *testing.T) {
		t.Parallel()
		jar := newMemJar()
		page := p.Begin(jar)

		require.Len(t, jar.ops, 2)
		assert.Equal(t, "CSS_CACHED_FONTS", jar.ops[0].name)
		assert.Equal(t, preload.Fingerprint("/dist/styles/fonts.css"), jar.ops[0].value)
		assert.Equal(t, "CSS_CACHED_PRINT", jar.ops[1].name)

		for name, want := range map[string]preload.Decision{
			"app":    preload.EagerPreload,
			"vendor": preload.EagerPreload,
			"main":   preload.EagerPreload,
			"fonts":  preload.LazyPreloadPending,
			"print":  preload.LazyPreloadPending,
		} {
			got, ok := page.Decision(name)
			require.True(t, ok, name)
			assert.Equal(t, want, got, name)
		}
	})

	t.Run("repeat visit is fresh", func(t *testing.T) {
		t.Parallel()
		jar := newMemJar(
			"CSS_CACHED_FONTS", preload.Fingerprint("/dist/styles/fonts.css"),
			"CSS_CACHED_PRINT", "stale",
		)
		page := p.Begin(jar)

		d, _ := page.Decision("fonts")
		assert.Equal(t, preload.LazyPreloadFresh, d)
		d, _ = page.Decision("print")
		assert.Equal(t, preload.LazyPreloadPending, d)

		require.Len(t, jar.ops, 1)
		assert.Equal(t, jarOp{op: "expire", name: "CSS_CACHED_PRINT"}, jar.ops[0])
	})

	t.Run("decisions are computed once", func(t *testing.T) {
		t.Parallel()
		jar := newMemJar()
		page := p.Begin(jar)
		_ = page.Head()
		_ = page.StyleTag("fonts", "")
		_ = page.Head()
		assert.Len(t, jar.ops, 2)

		d, _ := page.Decision("fonts")
		assert.Equal(t, preload.LazyPreloadPending, d)
	})
}

func TestPage_Head(t *testing.T) {
	t.Parallel()
	p := newPreloader(t, siteRegistry(t))
	head := p.Begin(newMemJar()).Head()

	lines := strings.Split(head, "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, `<link rel="preload" href="/dist/scripts/main.js" as="script">`, lines[0])
	assert.Equal(t, `<link rel="preload" href="/dist/scripts/vendor.js" as="script">`, lines[1])
	assert.Equal(t, `<link rel="preload" href="/dist/styles/main.css" as="style">`, lines[2])
	assert.Contains(t, lines[3], `href="/dist/styles/fonts.css"`)
	assert.Contains(t, lines[3], `onload="this.rel='stylesheet'"`)
	assert.Equal(t, `<noscript><link rel="stylesheet" href="/dist/styles/fonts.css"></noscript>`, lines[4])
	assert.Contains(t, lines[5], `href="/dist/styles/print.css"`)
	assert.NotContains(t, head, "<script")
}

func TestPage_ScriptTags(t *testing.T) {
	t.Parallel()
	p := newPreloader(t, func(r *preload.Registry) {
		require.NoError(t, r.RegisterScript("app", "/app.js"))
	})
	out := p.Begin(newMemJar()).ScriptTags()
	assert.Equal(t, `<link rel="preload" href="/app.js" as="script">`, out)
}

func TestPage_StyleTag(t *testing.T) {
	t.Parallel()
	p := newPreloader(t, siteRegistry(t))
	page := p.Begin(newMemJar())

	out := page.StyleTag("fonts", "print")
	assert.Contains(t, out, `rel="preload"`)
	assert.Contains(t, out, `as="style"`)
	assert.Contains(t, out, `onload=`)
	assert.Contains(t, out, `media="print"`)
	assert.Contains(t, out, `<noscript><link rel="stylesheet" href="/dist/styles/fonts.css"></noscript>`)

	assert.Equal(t, `<link rel="preload" href="/dist/styles/main.css" as="style">`, page.StyleTag("main", ""))
	assert.Empty(t, page.StyleTag("app", ""), "scripts are not styles")
	assert.Empty(t, page.StyleTag("missing", ""))
}

func TestPage_FilterStyleTag(t *testing.T) {
	t.Parallel()
	p := newPreloader(t, siteRegistry(t))
	page := p.Begin(newMemJar())

	original := `<link rel="stylesheet" id="other-css" href="/other.css" media="all">`
	assert.Equal(t, original, page.FilterStyleTag(original, "other", "/other.css", "all"))
	assert.Equal(t, original, page.FilterStyleTag(original, "app", "/dist/scripts/main.js", "all"))

	out := page.FilterStyleTag(original, "main", "/dist/styles/main.css?ver=5", "all")
	assert.Equal(t, `<link rel="preload" href="/dist/styles/main.css?ver=5" as="style">`, out)

	out = page.FilterStyleTag(original, "fonts", "", "screen")
	assert.Contains(t, out, `href="/dist/styles/fonts.css"`)
	assert.Contains(t, out, `media="screen"`)
}

func TestPage_Footer(t *testing.T) {
	t.Parallel()

	t.Run("no lazy styles never emits", func(t *testing.T) {
		t.Parallel()
		p := newPreloader(t, func(r *preload.Registry) {
			require.NoError(t, r.RegisterScript("app", "/app.js"))
			require.NoError(t, r.RegisterStyle("main", "/main.css", false))
		})
		page := p.Begin(newMemJar())
		assert.Empty(t, page.Footer())
		assert.Empty(t, page.Footer())
	})

	t.Run("many lazy styles emit once", func(t *testing.T) {
		t.Parallel()
		p := newPreloader(t, siteRegistry(t))
		page := p.Begin(newMemJar())

		var out strings.Builder
		for range 3 {
			out.WriteString(page.Footer())
		}
		assert.Equal(t, 1, strings.Count(out.String(), "<!-- Start loadCSS scripts -->"))
		assert.Equal(t, preload.FooterScript(), out.String())
	})

	t.Run("each page emits its own", func(t *testing.T) {
		t.Parallel()
		p := newPreloader(t, siteRegistry(t))
		assert.NotEmpty(t, p.Begin(newMemJar()).Footer())
		assert.NotEmpty(t, p.Begin(newMemJar()).Footer())
	})

	t.Run("polyfill disabled", func(t *testing.T) {
		t.Parallel()
		p := newPreloader(t, siteRegistry(t), preload.WithPolyfill(false))
		assert.Empty(t, p.Begin(newMemJar()).Footer())
	})
}

func TestPage_Nil(t *testing.T) {
	t.Parallel()
	var page *preload.Page

	assert.Empty(t, page.Head())
	assert.Empty(t, page.ScriptTags())
	assert.Empty(t, page.StyleTag("main", ""))
	assert.Empty(t, page.Footer())
	assert.Equal(t, "<link>", page.FilterStyleTag("<link>", "main", "/main.css", "all"))
	_, ok := page.Decision("main")
	assert.False(t, ok)

	var buf bytes.Buffer
	require.NoError(t, page.HeadComponent().Render(context.Background(), &buf))
	require.NoError(t, page.FooterComponent().Render(context.Background(), &buf))
	assert.Empty(t, buf.String())
}

func TestPage_ZeroValue(t *testing.T) {
	t.Parallel()
	var page preload.Page

	assert.NotPanics(t, func() {
		assert.Empty(t, page.StyleTag("missing", ""))
		assert.Empty(t, page.Head())
		assert.Empty(t, page.Footer())
		assert.Equal(t, "<link>", page.FilterStyleTag("<link>", "main", "", ""))
	})
}

func TestPage_Components(t *testing.T) {
	t.Parallel()
	p := newPreloader(t, siteRegistry(t))
	page := p.Begin(newMemJar())
	head := page.Head()

	var buf bytes.Buffer
	require.NoError(t, page.HeadComponent().Render(context.Background(), &buf))
	assert.Equal(t, head, buf.String())

	buf.Reset()
	require.NoError(t, page.FooterComponent().Render(context.Background(), &buf))
	assert.Equal(t, preload.FooterScript(), buf.String())
}

func TestPreloader_Resolver(t *testing.T) {
	t.Parallel()
	p := newPreloader(t, func(r *preload.Registry) {
		require.NoError(t, r.RegisterStyle("main", "styles/main.css", true))
	}, preload.WithResolver(preload.ResolverFunc(func(path string) (string, error) {
		return "https://cdn.example.com/" + path, nil
	})))

	jar := newMemJar()
	out := p.Begin(jar).StyleTag("main", "")
	assert.Contains(t, out, `href="https://cdn.example.com/styles/main.css"`)
	require.Len(t, jar.ops, 1)
	assert.Equal(t, preload.Fingerprint("https://cdn.example.com/styles/main.css"), jar.ops[0].value)
}
