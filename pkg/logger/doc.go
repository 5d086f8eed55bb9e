// Package logger builds *slog.Logger instances for the upload service.
//
// New applies functional options (format, level, output, static attributes)
// and wraps the chosen slog handler with a decorator that copies
// request-scoped values, such as the request id, from context.Context into
// every record.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "ers-file-upload"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.DebugContext(ctx, "selection rejected",
//		logger.Flow("csv"),
//		logger.InputID("file-0"),
//		logger.Error(err),
//	)
//
// The helpers in attr.go keep attribute keys consistent between packages.
package logger
