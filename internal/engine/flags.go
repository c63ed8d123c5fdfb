// Package engine holds what the entrypoint knows about the JavaScript engine
// shell it launches: the reference table of debug/trace flags worth
// suggesting to users, and a thin runner that starts the engine and reports
// its exit code.
package engine

import (
	"fmt"
	"sort"
	"strings"
)

// RecommendedOptions maps engine command-line flags to one-sentence
// descriptions. It is used to build help text and to warn about
// configured flags the entrypoint does not recognize.
//
// The map is read-only after package initialization.
var RecommendedOptions = map[string]string{
	"--harmony":              "Enables support for some of the experimental ES6 features that are not yet fully standardized",
	"--allow-natives-syntax": "Enables the use of V8-specific syntax in JavaScript code",
	"--trace-opt":            "Enables logging of V8's optimization process",
	"--print-bytecode":       "Prints the generated bytecode for JavaScript functions",
	"--print-opt-code":       "Prints the generated optimized machine code for JavaScript functions",
	"--trace":                "Enables detailed logging of V8 internals",
	"--log-timer-events":     "Enables logging of timer events",
	"--log-gc":               "Enables logging of garbage collection events",
	"--prof":                 "Enables CPU profiling",
	"--trace-deopt":          "Enables logging of V8's deoptimization process",
	"--trace-ic":             "Enables logging of inline caching events",
}

// Describe returns the description of flag. Only the flag name is matched:
// a value attached with "=" (e.g. "--trace=1") is ignored.
func Describe(flag string) (string, bool) {
	name, _, _ := strings.Cut(flag, "=")
	desc, ok := RecommendedOptions[name]
	return desc, ok
}

// Flags returns the known flags sorted alphabetically, giving help output a
// stable order.
func Flags() []string {
	flags := make([]string, 0, len(RecommendedOptions))
	for flag := range RecommendedOptions {
		flags = append(flags, flag)
	}
	sort.Strings(flags)
	return flags
}

// Unknown returns the flags in args that look like options (start with
// "--") but are not in RecommendedOptions, in their original order.
// Positional arguments such as script paths are skipped.
func Unknown(args []string) []string {
	var unknown []string
	for _, arg := range args {
		if !strings.HasPrefix(arg, "--") {
			continue
		}
		if _, ok := Describe(arg); !ok {
			unknown = append(unknown, arg)
		}
	}
	return unknown
}

// HelpText renders the table as two aligned columns, one flag per line.
func HelpText() string {
	flags := Flags()

	width := 0
	for _, flag := range flags {
		if len(flag) > width {
			width = len(flag)
		}
	}

	var b strings.Builder
	for _, flag := range flags {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, flag, RecommendedOptions[flag])
	}
	return b.String()
}
