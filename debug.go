package tendril

import (
	"fmt"
	"log"
	"os"
	"time"
)

// warnf logs a degradation warning. Failures in this package are per-element
// configuration or geometry states, never fatal: the dispatcher keeps
// running for every other trigger.
func warnf(format string, args ...any) {
	log.Printf("tendril: "+format, args...)
}

// frameStats holds per-frame dispatch metrics.
// Only populated when Context debug mode is on.
type frameStats struct {
	evaluated  int
	recomputed int
	frameTime  time.Duration
}

// debugLog prints dispatch stats to stderr.
func (c *Context) debugLog() {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[tendril] triggers: %d | evaluated: %d | recomputed: %d | frame: %v\n",
		len(c.triggers), c.stats.evaluated, c.stats.recomputed, c.stats.frameTime)
}
