//go:build debug

package ecs

import (
	"fmt"
	"log/slog"
	"strings"
)

// defect panics in debug builds so broken preconditions surface immediately.
func defect(log *slog.Logger, msg string, args ...any) {
	log.Error("defect: "+msg, args...)
	panic(defectMessage(msg, args))
}

// defectMessage renders msg followed by args as key=value pairs.
func defectMessage(msg string, args []any) string {
	var b strings.Builder
	b.WriteString("ecs: " + msg)
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(&b, " %v=%v", args[i], args[i+1])
	}
	if len(args)%2 == 1 {
		fmt.Fprintf(&b, " %v", args[len(args)-1])
	}
	return b.String()
}
