package preload

import (
	"context"
	"io"
	"strings"
	"sync/atomic"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/preload/pkg/logger"
)

type resolved struct {
	entry    Entry
	href     string
	decision Decision
}

// Page holds the decisions made for one request.
// All methods are safe on a nil *Page and render nothing.
type Page struct {
	preloader  *Preloader
	scripts    []resolved
	styles     []resolved
	index      map[string]resolved
	lazy       bool
	footerDone atomic.Bool
}

func (p *Page) add(r resolved) {
	p.index[r.entry.Name] = r
	if r.entry.Kind == KindScript {
		p.scripts = append(p.scripts, r)
		return
	}
	p.styles = append(p.styles, r)
}

// Decision returns the decision computed for name.
func (p *Page) Decision(name string) (Decision, bool) {
	if p == nil {
		return 0, false
	}
	r, ok := p.index[name]
	return r.decision, ok
}

// ScriptTags returns preload hints for all scripts in registration order.
func (p *Page) ScriptTags() string {
	if p == nil {
		return ""
	}
	tags := make([]string, 0, len(p.scripts))
	for _, r := range p.scripts {
		if tag := RenderTag(r.entry, r.href, "", r.decision); tag != "" {
			tags = append(tags, tag)
		}
	}
	return strings.Join(tags, "\n")
}

// StyleTag returns the hint for a single registered style.
// Unknown names render nothing.
func (p *Page) StyleTag(name, media string) string {
	if p == nil {
		return ""
	}
	r, ok := p.index[name]
	if !ok || r.entry.Kind != KindStyle {
		if p.preloader == nil {
			return ""
		}
		p.preloader.logger.Debug("style not registered for preload", logger.Resource(name))
		return ""
	}
	return RenderTag(r.entry, r.href, media, r.decision)
}

// FilterStyleTag rewrites a stylesheet tag produced elsewhere.
// When name is a registered style the preload hint is returned, using href if
// given; otherwise html is returned unchanged.
func (p *Page) FilterStyleTag(html, name, href, media string) string {
	if p == nil {
		return html
	}
	r, ok := p.index[name]
	if !ok || r.entry.Kind != KindStyle {
		return html
	}
	if href == "" {
		href = r.href
	}
	if tag := RenderTag(r.entry, href, media, r.decision); tag != "" {
		return tag
	}
	return html
}

// Head returns script hints followed by style hints.
func (p *Page) Head() string {
	if p == nil {
		return ""
	}
	tags := make([]string, 0, 2)
	if s := p.ScriptTags(); s != "" {
		tags = append(tags, s)
	}
	for _, r := range p.styles {
		if tag := RenderTag(r.entry, r.href, "", r.decision); tag != "" {
			tags = append(tags, tag)
		}
	}
	return strings.Join(tags, "\n")
}

// Footer returns the polyfill script when at least one lazy style is registered.
// It is emitted at most once per page; later calls return an empty string.
func (p *Page) Footer() string {
	if p == nil || !p.lazy {
		return ""
	}
	if !p.footerDone.CompareAndSwap(false, true) {
		return ""
	}
	return FooterScript()
}

// HeadComponent wraps Head for templ layouts.
func (p *Page) HeadComponent() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, p.Head())
		return err
	})
}

// FooterComponent wraps Footer for templ layouts.
func (p *Page) FooterComponent() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, p.Footer())
		return err
	})
}
