package report

import (
	"fmt"

	"github.com/shinji-kodama/docker-entrypoint/internal/environ"
	"github.com/shinji-kodama/docker-entrypoint/internal/result"
)

// SupportMessage formats the support block shown after an unexpected
// failure:
//
//	Support:
//		Maintainer: <maintainer>
//		Docker Version: <version>
//		Build Date: <build date>
//		Repository: <repository url>
//		Report Bug: <bug report>
//
// Every line ends with a newline. A nil src reads the process environment
// through environ.Default(). A failure from src is returned as-is; a
// success without an Info is a failure as well.
func SupportMessage(src EnvironmentSource) *result.Result[string] {
	if result.IsNil(src) {
		src = environ.Default()
	}
	envs := src.Environments()
	if _, ok := envs.Value(); envs.Success() && !ok {
		return result.Fail[string](result.NewError(MsgNoEnvironment))
	}
	return result.Map(envs, formatSupportMessage)
}

func formatSupportMessage(info environ.Info) string {
	return fmt.Sprintf("Support:\n"+
		"\tMaintainer: %s\n"+
		"\tDocker Version: %s\n"+
		"\tBuild Date: %s\n"+
		"\tRepository: %s\n"+
		"\tReport Bug: %s\n",
		info.Maintainer,
		info.DockerVersion,
		info.BuildDate,
		info.RepositoryURL,
		info.BugReport,
	)
}
