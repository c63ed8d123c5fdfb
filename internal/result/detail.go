package result

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind categorizes a failure Detail. It mirrors the three detail shapes the
// entrypoint produces: generic errors, caller validation errors, and wrapped
// process exit codes.
type Kind string

const (
	// KindError is a generic, unexpected failure.
	KindError Kind = "ErrorDetail"

	// KindValidation signals invalid caller input. Always code 400.
	KindValidation Kind = "ValidationError"

	// KindExitCode wraps a non-zero process exit code for propagation.
	KindExitCode Kind = "FailResult"
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	return string(k)
}

const (
	// DefaultErrorTitle is used by NewError when no title is given.
	DefaultErrorTitle = "An error occurred"

	// DefaultErrorCode is the HTTP-style code of a generic error detail.
	DefaultErrorCode = 500

	// DefaultValidationTitle is the title of every validation detail unless
	// WithTitle overrides it.
	DefaultValidationTitle = "One or more validation errors occurred"

	// ValidationCode is the HTTP-style code carried by validation details.
	ValidationCode = 400
)

// Detail describes why a Result failed.
//
// Fields are exported for reading and for struct-literal comparisons in
// tests. A Detail must not be modified after it has been attached to a
// Result; the constructors below are the intended way to build one.
type Detail struct {
	// Kind is the category of the failure.
	Kind Kind

	// Title is a short, human-readable summary.
	Title string

	// Message is the longer explanation. May be empty.
	Message string

	// Code is a numeric failure code: HTTP-style for errors and
	// validation failures, the raw process exit code for KindExitCode.
	Code int

	// MoreData holds supporting values (for example the Result that caused
	// a contract violation). Rendered with %v.
	MoreData []any

	// Causes holds nested failure details, outermost first.
	Causes []*Detail

	// stack is the call site that constructed the detail. Excluded from
	// KindExitCode renderings, which are expected outcomes.
	stack errors.StackTrace
}

// DetailOption customizes a Detail at construction time.
type DetailOption func(*Detail)

// WithTitle replaces the default title.
func WithTitle(title string) DetailOption {
	return func(d *Detail) { d.Title = title }
}

// WithMoreData attaches supporting values.
func WithMoreData(data ...any) DetailOption {
	return func(d *Detail) { d.MoreData = append(d.MoreData, data...) }
}

// WithCauses attaches nested failure details.
func WithCauses(causes ...*Detail) DetailOption {
	return func(d *Detail) { d.Causes = append(d.Causes, causes...) }
}

// NewError builds a generic failure detail with code 500 and the default
// title unless overridden.
func NewError(message string, opts ...DetailOption) *Detail {
	return newDetail(KindError, DefaultErrorTitle, message, DefaultErrorCode, opts)
}

// NewValidationError builds a validation failure detail (code 400).
func NewValidationError(message string, opts ...DetailOption) *Detail {
	return newDetail(KindValidation, DefaultValidationTitle, message, ValidationCode, opts)
}

// NewExitCode builds the detail for a process that exited with code.
// The title always names the code; message is optional extra context.
func NewExitCode(code int, message string) *Detail {
	title := fmt.Sprintf("Operation failed with code %d.", code)
	return newDetail(KindExitCode, title, message, code, nil)
}

// FromError converts a plain Go error into a generic failure detail. A
// *Detail anywhere in err's chain is returned as-is.
func FromError(err error, opts ...DetailOption) *Detail {
	if err == nil {
		return nil
	}
	var d *Detail
	if errors.As(err, &d) {
		return d
	}
	return newDetail(KindError, DefaultErrorTitle, err.Error(), DefaultErrorCode, opts)
}

//go:noinline
func newDetail(kind Kind, title, message string, code int, opts []DetailOption) *Detail {
	d := &Detail{
		Kind:    kind,
		Title:   title,
		Message: message,
		Code:    code,
		stack:   captureStack(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// captureStack records the caller of the exported constructor. errors.New
// starts at its own caller, so three frames (captureStack, newDetail and the
// constructor) are dropped.
//
//go:noinline
func captureStack() errors.StackTrace {
	st, ok := errors.New("").(stackTracer)
	if !ok {
		return nil
	}
	frames := st.StackTrace()
	if len(frames) > 3 {
		frames = frames[3:]
	}
	return frames
}

// Error satisfies the error interface with a one-line summary, so a Detail
// can travel through ordinary error returns.
func (d *Detail) Error() string {
	if d.Message == "" {
		return d.Title
	}
	return d.Title + ": " + d.Message
}

// String returns the full multi-line representation used when a failure is
// logged for the user.
//
// Exit-code details render as the title followed by the optional message:
//
//	Operation failed with code 5.
//	message
//
// All other kinds render as labelled lines ending with the stack trace:
//
//	Title: <title>
//	Message: <message>      (omitted when empty)
//	Code: <code>
//	More data: [<data>]     (omitted when empty)
//	Causes:                 (omitted when empty)
//		<nested detail, tab-indented>
//	Stack trace:<frames>
func (d *Detail) String() string {
	if d == nil {
		return "<nil>"
	}
	if d.Kind == KindExitCode {
		if d.Message == "" {
			return d.Title
		}
		return d.Title + "\n" + d.Message
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", d.Title)
	if d.Message != "" {
		fmt.Fprintf(&b, "Message: %s\n", d.Message)
	}
	fmt.Fprintf(&b, "Code: %d\n", d.Code)
	if len(d.MoreData) > 0 {
		fmt.Fprintf(&b, "More data: %v\n", d.MoreData)
	}
	if len(d.Causes) > 0 {
		b.WriteString("Causes:\n")
		for _, cause := range d.Causes {
			for _, line := range strings.Split(cause.String(), "\n") {
				b.WriteString("\t" + line + "\n")
			}
		}
	}
	fmt.Fprintf(&b, "Stack trace:%+v", d.stack)
	return b.String()
}

