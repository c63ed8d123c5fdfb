// Package report turns Results into user-facing output.
//
// It provides:
//   - LogResult / LogError: log a Result's outcome and, for failures, append
//     a support message inviting the user to report the problem
//   - SupportMessage: the fixed maintainer/version/build/report block
//   - FormatProperties / LogProperties: "name: value" dumps of records that
//     implement model.Propertied
//   - FromExitCode: converts a process exit code into a Result
//
// The helpers never construct or configure a logger. They accept anything
// satisfying Logger (in practice a *logrus.Logger or *logrus.Entry), and
// argument problems are returned as validation failures rather than logged.
package report
