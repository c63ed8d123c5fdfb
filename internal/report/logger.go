package report

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/shinji-kodama/docker-entrypoint/internal/environ"
	"github.com/shinji-kodama/docker-entrypoint/internal/result"
)

// Logger is the logging boundary. *logrus.Logger and *logrus.Entry both
// satisfy it.
type Logger interface {
	Info(args ...any)
	Error(args ...any)
	Log(level logrus.Level, args ...any)
}

// EnvironmentSource supplies the support metadata. *environ.Reader
// satisfies it.
type EnvironmentSource interface {
	Environments() *result.Result[environ.Info]
}

// Validation messages returned for bad arguments. The wording is matched by
// log scrapers and tests.
const (
	MsgLoggerRequired   = "The logger is required."
	MsgResultInvalid    = "The result parameter is required and must be an instance of Result."
	TitleResultInvalid  = "The result parameter is not valid."
	MsgExpectedFailure  = "Expected failure result but got success result!"
	MsgObjectRequired   = "The class object is required."
	MsgTitleNotString   = "The message must be a string."
	MsgNoEnvironment    = "The environment information is not available."
	MsgSupportFailed    = "The support message could not be built."
	errorPrefix         = "An error occurred:"
	reportBugInvitation = "Please report this error to help others who use this program."
)

// Option configures LogResult and LogError.
type Option func(*options)

type options struct {
	env EnvironmentSource
}

// WithEnvironment selects where the support message reads its metadata.
// Without it, environ.Default() is used.
func WithEnvironment(env EnvironmentSource) Option {
	return func(o *options) { o.env = env }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// validateArgs returns the validation detail for a missing logger or
// result, or nil when both are usable. A typed nil inside the Logger
// interface counts as missing.
func validateArgs[T any](logger Logger, r *result.Result[T]) *result.Detail {
	if result.IsNil(logger) {
		return result.NewValidationError(MsgLoggerRequired)
	}
	if r == nil {
		return result.NewValidationError(MsgResultInvalid, result.WithTitle(TitleResultInvalid))
	}
	return nil
}

// LogResult logs the outcome of r and returns r unchanged, so it can sit in
// the middle of a chain.
//
// A success with a value logs the value at info level; a success without
// one logs nothing. A failure is handed to LogError. If logger or r is
// missing, a validation failure is returned and nothing is logged.
func LogResult[T any](logger Logger, r *result.Result[T], opts ...Option) *result.Result[T] {
	if d := validateArgs(logger, r); d != nil {
		return result.Fail[T](d)
	}

	return r.
		OnValue(func(value T) { logger.Info(value) }).
		OnFailure(func(failed *result.Result[T]) { LogError(logger, failed, opts...) })
}

// LogError logs a failed Result at error level followed by the support
// message at info level.
//
// It returns success once both lines are logged, whatever the original
// failure was: its job is to report, not to propagate. When the support
// message cannot be built, the result is a failure whose Causes hold the
// underlying detail; the error line has been logged by then. Passing a
// successful Result is a contract violation and yields a validation failure
// carrying that Result in MoreData.
func LogError[T any](logger Logger, r *result.Result[T], opts ...Option) *result.Result[result.None] {
	if d := validateArgs(logger, r); d != nil {
		return result.Fail[result.None](d)
	}
	if r.Success() {
		return result.Fail[result.None](
			result.NewValidationError(MsgExpectedFailure, result.WithMoreData(r)),
		)
	}

	logger.Error(fmt.Sprintf("%s\n%s\n", errorPrefix, r))

	o := buildOptions(opts)
	support := SupportMessage(o.env)
	if !support.Success() {
		return result.Fail[result.None](
			result.NewError(MsgSupportFailed, result.WithCauses(support.Detail())),
		)
	}
	message, _ := support.Value()
	logger.Info(reportBugInvitation + "\n" + message)
	return result.Done()
}
