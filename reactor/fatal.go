// File: reactor/fatal.go
// Author: coreactor contributors
// License: Apache-2.0
//
// Fatal-path handling for the capacity and invariant violations this
// package classifies as unrecoverable: pool exhaustion, a full queue
// that must accept, and a poller that cannot be re-enqueued. Grounded
// on the original source's RTE_VERIFY / exit(EXIT_FAILURE) discipline
// (original_source/lib/event/reactor.c), translated to an idiomatic Go
// hook instead of an unconditional os.Exit so tests can intercept it.

package reactor

import (
	"fmt"
	"log"
	"os"
)

// FatalAbort logs reason and context, then terminates the process. It
// is the package default and is exported so other packages (e.g.
// lifecycle) can chain their own diagnostics in front of the same
// abort behavior rather than reimplementing it.
func FatalAbort(reason string, context map[string]any) {
	if len(context) == 0 {
		log.Printf("reactor: fatal: %s", reason)
	} else {
		log.Printf("reactor: fatal: %s (context: %s)", reason, fmt.Sprint(context))
	}
	os.Exit(1)
}

func defaultFatalHandler(reason string, context map[string]any) {
	FatalAbort(reason, context)
}
