package vedictok

import (
	"github.com/rs/zerolog"
)

// logger is the package-level logger. It defaults to a no-op logger so
// that importing this module never produces output a caller didn't ask
// for; call SetLogger to receive the engine's diagnostic events (most
// notably verifier fallbacks, see Statistics).
var logger zerolog.Logger = zerolog.Nop()

// SetLogger installs l as the package-level logger used by every Engine
// instance.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Logger returns the currently installed package-level logger.
func Logger() zerolog.Logger {
	return logger
}
