package board

import "github.com/rs/zerolog"

// DebugMoveValidation gates expensive consistency checks (king bitboard
// sanity, side-to-move agreement) that are cheap to skip in a release
// build but valuable while chasing a movegen bug.
var DebugMoveValidation = false

var assertionLogger = zerolog.Nop()

// SetAssertionLogger installs the sink for programming-error assertions
// (setPiece onto an occupied square, a missing king in IsCastleLegal or
// after MakeMove, a side to move that MakeMove left unchanged). The default is
// a disabled logger; callers that want diagnostics wire in their own, e.g.
// a console or file logger from the surrounding process.
func SetAssertionLogger(logger zerolog.Logger) {
	assertionLogger = logger
}

func assertf(condition bool, msg string, args ...interface{}) {
	if condition {
		return
	}
	assertionLogger.Error().Msgf(msg, args...)
}
