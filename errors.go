package neuronet

import "fmt"

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned.
var (
	ErrTooFewLayers      = Error{"Network needs at least 2 layers"}
	ErrNoHiddenLayer     = Error{"Network has no hidden layer"}
	ErrNotConnected      = Error{"Layer has not been connected to a source"}
	ErrUnknownNoise      = Error{"Noise type is not registered"}
	ErrUnknownPreset     = Error{"Preset is not recognized"}
	ErrRegisterDuplicate = Error{"Type is already registered"}
	ErrRegisterNilReturn = Error{"Function return is nil"}
	ErrNoData            = Error{"No data given"}
)

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}

// SizeMismatchError is returned whenever the number of values given does not match the number
// that was expected, for example when setting the inputs of a network or applying a preset to a
// Layer whose size does not fit its source.
type SizeMismatchError struct {
	Expected, Got int

	// what was being counted
	What string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("Size mismatch for %s: expected %d, got %d", err.What, err.Expected, err.Got)
}

// FormatError is returned by Import when the exported text does not describe the network it is
// being read into. Line is 1-indexed; it is 0 if the error is about the end of the input.
type FormatError struct {
	Line int
	Msg  string
}

func (err FormatError) Error() string {
	if err.Line == 0 {
		return "Bad export format at end of input: " + err.Msg
	}

	return fmt.Sprintf("Bad export format on line %d: %s", err.Line, err.Msg)
}
