package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/ers-returns/fileupload/pkg/logger"
	"github.com/ers-returns/fileupload/pkg/requestid"
)

// ErrorPageParams contains data for rendering error pages.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams contains data for rendering error toasts.
type ErrorToastParams struct {
	Message   string
	Type      string // "error", "warning", "info"
	RequestID string
}

// ErrorHandlerConfig configures the default error handler.
type ErrorHandlerConfig struct {
	// ErrorPage renders the full error page for plain requests.
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders the toast for datastar requests.
	ErrorToast func(ErrorToastParams) templ.Component

	// Translate resolves error keys. Keys are shown as-is when nil.
	Translate func(ctx context.Context, key string) string

	// ToastTarget defaults to "#toast-container".
	ToastTarget string

	// ToastMode defaults to PatchPrepend.
	ToastMode datastar.ElementPatchMode
}

// ErrorInfo contains classified error information.
type ErrorInfo struct {
	StatusCode int
	Message    string
	Type       string
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

func determineErrorType(statusCode int) string {
	switch {
	case isClientError(statusCode):
		return "warning"
	case statusCode >= http.StatusInternalServerError:
		return "error"
	default:
		return "info"
	}
}

func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

func setConfigDefaults(cfg ErrorHandlerConfig) ErrorHandlerConfig {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	if cfg.Translate == nil {
		cfg.Translate = func(_ context.Context, key string) string { return key }
	}
	return cfg
}

// classifyError maps err to a status and a message key.
// ValidationError wins over HTTPError when both are present.
func classifyError(ctx context.Context, cfg ErrorHandlerConfig, err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: ErrInternalServerError.Code,
		Message:    cfg.Translate(ctx, ErrInternalServerError.Key),
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = cfg.Translate(ctx, httpErr.Key)
	}

	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		info.StatusCode = http.StatusBadRequest
		messages := make([]string, 0, len(validationErr))
		for _, field := range validationErr.Fields() {
			for _, key := range validationErr[field] {
				messages = append(messages, cfg.Translate(ctx, key))
			}
		}
		if len(messages) > 0 {
			info.Message = strings.Join(messages, "; ")
		} else {
			info.Message = cfg.Translate(ctx, ErrBadRequest.Key)
		}
	}

	info.Type = determineErrorType(info.StatusCode)
	info.LogLevel = determineLogLevel(info.StatusCode)
	return info
}

func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	r := ctx.Request()
	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Bool("is_datastar", IsDataStar(r)),
		logger.Component("error_handler"),
	)
}

func renderToast(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, requestID string, log *slog.Logger) {
	if cfg.ErrorToast == nil {
		log.Warn("no error toast component configured",
			logger.RequestID(requestID),
			logger.Component("error_handler"),
		)
		return
	}

	toast := cfg.ErrorToast(ErrorToastParams{
		Message:   info.Message,
		Type:      info.Type,
		RequestID: requestID,
	})

	// SSE responses keep status 200.
	err := Templ(toast, WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode)).
		Render(ctx.ResponseWriter(), ctx.Request())
	if err != nil {
		log.Error("failed to render error toast",
			logger.RequestID(requestID),
			logger.Error(err),
			logger.Event("render_error_toast"),
		)
	}
}

func renderPage(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, requestID string, log *slog.Logger) {
	if cfg.ErrorPage == nil {
		http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
		return
	}

	page := cfg.ErrorPage(ErrorPageParams{
		Error:      info.Message,
		StatusCode: info.StatusCode,
		RequestID:  requestID,
		RetryURL:   ctx.Request().URL.Path,
	})

	if err := TemplStatus(info.StatusCode, page).Render(ctx.ResponseWriter(), ctx.Request()); err != nil {
		log.Error("failed to render error page",
			logger.RequestID(requestID),
			logger.Error(err),
			logger.Event("render_error_page"),
		)
	}
}

// NewErrorHandler creates the error handler shared by all modules.
// Plain requests get a full error page, datastar requests get a toast patch.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	cfg = setConfigDefaults(cfg)
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		requestID := requestid.FromContext(ctx.Request().Context())
		info := classifyError(ctx.Request().Context(), cfg, err)
		logError(log, ctx, err, info)

		if IsDataStar(ctx.Request()) {
			renderToast(ctx, cfg, info, requestID, log)
			return
		}
		renderPage(ctx, cfg, info, requestID, log)
	}
}
