package preload

import (
	"embed"
	"strings"
	"sync"

	"github.com/a-h/templ"
)

//go:embed static/loadcss.min.js static/cssrelpreload.min.js
var polyfillFS embed.FS

const defaultMedia = "all"

var footerScript = sync.OnceValue(func() string {
	loadCSS := mustReadPolyfill("static/loadcss.min.js")
	relPreload := mustReadPolyfill("static/cssrelpreload.min.js")

	var b strings.Builder
	b.WriteString("<!-- Start loadCSS scripts -->\n")
	b.WriteString(`<script type="text/javascript" charset="utf-8">`)
	b.WriteString(loadCSS)
	b.WriteString("\n")
	b.WriteString(relPreload)
	b.WriteString("</script>\n")
	b.WriteString("<!-- End loadCSS scripts -->")
	return b.String()
})

func mustReadPolyfill(name string) string {
	data, err := polyfillFS.ReadFile(name)
	if err != nil {
		// Embedded at build time; a miss means a broken build.
		panic(err)
	}
	return strings.TrimSpace(string(data))
}

// FooterScript returns the inline loadCSS polyfill that performs the
// preload-to-stylesheet swap in browsers without native rel=preload support.
func FooterScript() string {
	return footerScript()
}

// RenderTag returns the resource hint for entry at href.
// media is only used by the pending lazy tag and defaults to "all".
// An unknown decision or kind renders nothing.
func RenderTag(entry Entry, href, media string, d Decision) string {
	if href == "" {
		return ""
	}
	href = templ.EscapeString(href)

	switch d {
	case EagerPreload:
		if entry.Kind != KindScript && entry.Kind != KindStyle {
			return ""
		}
		return `<link rel="preload" href="` + href + `" as="` + entry.Kind.String() + `">`
	case LazyPreloadPending:
		if media == "" {
			media = defaultMedia
		}
		return `<link rel="preload" href="` + href + `" as="style" type="text/css" onload="this.rel='stylesheet'" media="` +
			templ.EscapeString(media) + `">` + "\n" +
			`<noscript><link rel="stylesheet" href="` + href + `"></noscript>`
	case LazyPreloadFresh:
		return `<link rel="preload" href="` + href + `" as="style">`
	default:
		return ""
	}
}
