package loader

import "github.com/sirupsen/logrus"

// resolveLogger picks the first non-nil logger passed in, falling back to
// the package-level standard logger (mirrors splitter.resolveLogger — kept
// as its own unexported copy since the two packages don't share internals).
func resolveLogger(loggers ...logrus.FieldLogger) logrus.FieldLogger {
	for _, l := range loggers {
		if l != nil {
			return l
		}
	}
	return logrus.StandardLogger()
}
