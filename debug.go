package mandala

import "fmt"

// debugMode selects the contract-violation policy for every Mandala and
// Transition in the process. Set it once at startup; it is not synchronized.
var debugMode bool

// SetDebugMode enables or disables debug mode. When enabled, contract
// violations (a clock read before its start time, a non-finite transition
// target, a negative duration) panic with a descriptive message. When
// disabled they are clamped or ignored so a live render loop keeps running.
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

// DebugMode reports whether debug mode is enabled.
func DebugMode() bool {
	return debugMode
}

// contractViolation panics in debug mode and otherwise returns an error
// wrapping ErrContract.
func contractViolation(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if debugMode {
		panic("mandala debug: " + msg)
	}
	return fmt.Errorf("%w: %s", ErrContract, msg)
}
