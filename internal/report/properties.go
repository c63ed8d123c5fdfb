package report

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/shinji-kodama/docker-entrypoint/internal/model"
	"github.com/shinji-kodama/docker-entrypoint/internal/result"
)

// FormatOption configures FormatProperties and LogProperties.
type FormatOption func(*formatOptions)

type formatOptions struct {
	title     string
	indent    int
	indentSet bool
	err       *result.Detail
}

// WithTitle adds a "title:" header line. A blank or whitespace-only title
// is the same as no title.
func WithTitle(title string) FormatOption {
	return func(o *formatOptions) { o.title = title }
}

// WithTitleValue is WithTitle for titles of unknown type, such as values
// decoded from configuration. nil means no title; anything other than a
// string makes the format fail with a validation error.
func WithTitleValue(title any) FormatOption {
	return func(o *formatOptions) {
		switch v := title.(type) {
		case nil:
			o.title = ""
		case string:
			o.title = v
		default:
			o.err = result.NewValidationError(MsgTitleNotString, result.WithMoreData(title))
		}
	}
}

// WithIndent sets how many tabs prefix each property line. By default that
// is one tab under a title and none without one.
func WithIndent(level int) FormatOption {
	return func(o *formatOptions) {
		if level < 0 {
			level = 0
		}
		o.indent = level
		o.indentSet = true
	}
}

// FormatProperties renders obj's properties as "name: value" lines in the
// order obj reports them, each line ending with a newline:
//
//	title:
//		prop1: value1
//		prop2: value2
//
// The header and default indentation appear only for a non-blank title.
// A nil obj (including a typed nil) fails with a validation error.
func FormatProperties(obj model.Propertied, opts ...FormatOption) *result.Result[string] {
	if result.IsNil(obj) {
		return result.Fail[string](result.NewValidationError(MsgObjectRequired))
	}

	var o formatOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return result.Fail[string](o.err)
	}

	title := strings.TrimSpace(o.title)
	indent := o.indent
	if !o.indentSet && title != "" {
		indent = 1
	}
	prefix := strings.Repeat("\t", indent)

	var b strings.Builder
	if title != "" {
		b.WriteString(title + ":\n")
	}
	for _, p := range obj.Properties() {
		b.WriteString(prefix + p.String() + "\n")
	}
	return result.Ok(b.String())
}

// LogProperties formats obj like FormatProperties and logs the text at
// level. A nil logger fails with the same validation error as LogResult.
func LogProperties(logger Logger, level logrus.Level, obj model.Propertied, opts ...FormatOption) *result.Result[result.None] {
	if result.IsNil(logger) {
		return result.Fail[result.None](result.NewValidationError(MsgLoggerRequired))
	}
	return result.Then(FormatProperties(obj, opts...), func(text string) *result.Result[result.None] {
		logger.Log(level, text)
		return result.Done()
	})
}
