package mines

import "fmt"

// ConfigError reports an invalid game setup. A constructor or reset that
// returns it leaves the board untouched.
type ConfigError struct {
	message string
}

// [ConfigError] implements [error]
func (e ConfigError) Error() string {
	return e.message
}

// BoundsError reports a coordinate outside the current field boundary.
type BoundsError struct {
	Cell Cell
}

// [BoundsError] implements [error]
func (e BoundsError) Error() string {
	return fmt.Sprintf("cell %d:%d is outside the field boundary", e.Cell.X, e.Cell.Y)
}
