// Package logger builds *slog.Logger instances with functional options,
// consistent attribute helpers and context-driven attributes.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and wraps it so that registered ContextExtractor callbacks add
// attributes (for example the request id) to every record logged with a
// context.
//
// # Usage
//
//	import "github.com/dmitrymomot/preload/pkg/logger"
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "preload"),
//	    logger.WithContextExtractors(requestid.Extractor),
//	)
//	log.InfoContext(ctx, "tracking cookie set", logger.Resource("main"))
//
// From the environment:
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//	log, err := logger.NewFromConfig(cfg)
//
// # Attributes
//
// Helpers such as Error, Resource, Cookie and AssetPath keep attribute keys
// consistent. Error and RequestID return an empty slog.Attr for empty input,
// which slog drops.
package logger
