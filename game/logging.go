package game

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log message.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// logPerfStats writes a one-line summary of per-phase timings, slowest
// phase first.
func logPerfStats(p *PerfStats) {
	names := p.SortedNames()
	if len(names) == 0 {
		return
	}
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%s", name, p.Avg(name).Round(time.Microsecond)))
	}
	Logf("perf total=%s %s", p.Total().Round(time.Microsecond), strings.Join(parts, " "))
}
