package scheduler

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// fixedDelay fires every period counted from the previous fire,
// or from the moment the entry is added for the first fire.
// Unlike cron.Every, the period is not rounded to the second.
type fixedDelay time.Duration

func (d fixedDelay) Next(t time.Time) time.Time {
	return t.Add(time.Duration(d))
}

// cronLogger adapts the scheduler logger to the cron.Logger interface.
type cronLogger struct {
	logger Logger
}

var _ cron.Logger = (*cronLogger)(nil)

func (c *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.logger.Debug(formatKeysAndValues(msg, keysAndValues))
}

func (c *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.logger.Error(formatKeysAndValues(msg, keysAndValues) + ": " + err.Error())
}

func formatKeysAndValues(msg string, keysAndValues []interface{}) string {
	var b strings.Builder
	b.WriteString("cron " + msg)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fmt.Fprintf(&b, " %v=%v", keysAndValues[i], keysAndValues[i+1])
	}
	return b.String()
}
