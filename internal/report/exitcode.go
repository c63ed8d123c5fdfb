package report

import (
	"github.com/shinji-kodama/docker-entrypoint/internal/result"
)

// FromExitCode converts a process exit code into a Result. Zero is an
// empty success; any other value, negative ones included, is a failure whose
// detail is a result.KindExitCode carrying code unchanged.
func FromExitCode(code int) *result.Result[result.None] {
	if code == 0 {
		return result.Done()
	}
	return result.Fail[result.None](result.NewExitCode(code, ""))
}
