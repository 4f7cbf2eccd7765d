package preferred

import "fmt"

// ErrNotInDict is returned when a headword has no dictionary entries. Callers
// are expected to check the dictionary first.
type ErrNotInDict struct {
	Headword string
}

func (e *ErrNotInDict) Error() string {
	return fmt.Sprintf("%q is not in the dictionary", e.Headword)
}

// ErrErhuaUnderflow is returned when an erhua redirect is found on a headword
// too short to drop its final character.
type ErrErhuaUnderflow struct {
	Headword string
}

func (e *ErrErhuaUnderflow) Error() string {
	return fmt.Sprintf("erhua variant %q has no shorter headword to redirect to", e.Headword)
}
