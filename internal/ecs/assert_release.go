//go:build !debug

package ecs

import "log/slog"

// defect reports a broken precondition. Release builds log it and carry on;
// the caller skips the offending operation.
func defect(log *slog.Logger, msg string, args ...any) {
	log.Error("defect: "+msg, args...)
}
