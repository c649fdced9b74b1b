package splitter

import "github.com/sirupsen/logrus"

// resolveLogger picks the first non-nil logger passed in, falling back to
// the package-level standard logger — the optional-logger shape the
// teacher's cli/cmd/up.go and config.go use (a logrus.FieldLogger threaded
// through, nil meaning "use the default"), expressed here as a variadic
// parameter so existing callers that don't care about logging aren't forced
// to pass one.
func resolveLogger(loggers ...logrus.FieldLogger) logrus.FieldLogger {
	for _, l := range loggers {
		if l != nil {
			return l
		}
	}
	return logrus.StandardLogger()
}
