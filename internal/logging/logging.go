/*
Package logging provides kotoba's structured loggers, built on
github.com/charmbracelet/log. Default gives every package a
prefix-scoped logger that starts at the process-wide log level current when
it is built; WithConfig lets a caller set level, caller reporting and
formatting explicitly.
*/
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// Default returns a logger scoped to prefix whose level is copied from
// log.GetLevel() (by default, Info) at the time of the call. A later
// log.SetLevel does not change it; use the returned logger's SetLevel.
func Default(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// WithConfig returns a logger scoped to prefix with explicit overrides, for
// callers that read level/format from a Config or CLI flag rather than the
// package-global level.
func WithConfig(prefix string, level log.Level, reportCaller, reportTimestamp bool, formatter log.Formatter) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    reportCaller,
		ReportTimestamp: reportTimestamp,
		Formatter:       formatter,
	})
}
