package preload

import "context"

type pageContextKey struct{}

// WithPage stores page in ctx.
func WithPage(ctx context.Context, page *Page) context.Context {
	return context.WithValue(ctx, pageContextKey{}, page)
}

// FromContext returns the page stored by Middleware, or nil.
// A nil page renders nothing, so callers can use the result directly.
func FromContext(ctx context.Context) *Page {
	if ctx == nil {
		return nil
	}
	page, _ := ctx.Value(pageContextKey{}).(*Page)
	return page
}
