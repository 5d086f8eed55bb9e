package fileselect

import (
	"context"
	"log/slog"

	"github.com/ers-returns/fileupload/pkg/file"
	"github.com/ers-returns/fileupload/pkg/i18n"
	"github.com/ers-returns/fileupload/pkg/logger"
	"github.com/ers-returns/fileupload/pkg/validator"
)

const field = "file"

var kindByRule = map[string]Kind{
	"validation.file_name":      KindInvalidFileName,
	"validation.max_length":     KindNameTooLong,
	"validation.file_extension": KindWrongExtension,
	"validation.file_size":      KindFileTooLarge,
	"validation.in_list":        KindUnexpectedFile,
}

// Validator runs the selection pipeline and renders messages in the
// language stored in the context.
type Validator struct {
	tr     *i18n.Translator
	logger *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used for rejection records.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// NewValidator creates a Validator translating messages with tr.
func NewValidator(tr *i18n.Translator, opts ...Option) (*Validator, error) {
	if tr == nil {
		return nil, ErrNilTranslator
	}
	v := &Validator{tr: tr, logger: logger.Discard()}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = v.logger.With(logger.Component("fileselect"))
	return v, nil
}

// Validate checks f against flow. The first failing step wins.
func (v *Validator) Validate(ctx context.Context, flow Flow, f SelectedFile) Outcome {
	verr := validator.First(
		validator.FileName(field, f.Name),
		validator.MaxLen(field, f.Name, flow.MaxNameLength).Skip(flow.MaxNameLength <= 0),
		validator.FileExtension(field, f.Name, flow.Extension),
		validator.MaxFileSize(field, f.Size, flow.MaxSizeBytes).Skip(!f.SizeKnown || flow.MaxSizeBytes <= 0),
		validator.InListString(field, f.Name, flow.ExpectedFiles).Skip(flow.ExpectedFiles == nil),
	)
	if verr == nil {
		return Outcome{File: f}
	}

	kind := kindByRule[verr.TranslationKey]
	args := append(verr.TranslationArgs(), "email", flow.SupportEmail)
	msg := v.tr.Td(i18n.GetLocale(ctx), "upload."+flow.Name+"."+kind.String(), verr.Message, args...)

	v.logger.DebugContext(ctx, "file selection rejected",
		logger.Flow(flow.Name),
		logger.FileName(file.SanitizeFilename(f.Name)),
		slog.String("kind", kind.String()),
	)
	return Outcome{File: f, Rejection: &Rejection{Kind: kind, Message: msg}}
}

// ValidateBatch validates every input with a selection and collects the
// outcomes. Inputs with nothing selected are skipped.
func (v *Validator) ValidateBatch(ctx context.Context, flow Flow, ext Extractor, inputs []Input) *Batch {
	b := newBatch(flow)

	selected := make([]Result, 0, len(inputs))
	for _, in := range inputs {
		f, ok := ext.Extract(in)
		if !ok {
			continue
		}
		selected = append(selected, Result{InputID: in.ID, Outcome: Outcome{File: f}})
	}

	counts := make(map[string]int, len(selected))
	for _, r := range selected {
		counts[r.File.Name]++
	}

	for _, r := range selected {
		r.Outcome = v.Validate(ctx, flow, r.File)
		b.add(r)

		if flow.ExpectedFiles != nil && reachedDeclaredCheck(r.Outcome) && counts[r.File.Name] > 1 {
			b.markDuplicates(r.File.Name, selected)
			v.logger.DebugContext(ctx, "duplicate file selected",
				logger.Flow(flow.Name),
				logger.InputID(r.InputID),
				logger.FileName(file.SanitizeFilename(r.File.Name)),
			)
		}
	}

	if b.Errors > 0 {
		v.logger.DebugContext(ctx, "file selection batch rejected",
			logger.Flow(flow.Name),
			logger.Rejections(b.Errors),
		)
	}
	return b
}

func reachedDeclaredCheck(o Outcome) bool {
	return o.Ok() || o.Rejection.Kind == KindUnexpectedFile
}
