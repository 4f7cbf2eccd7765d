package dbinterface

import "fmt"

// ErrNotFound is returned when no stored note matches a GUID or search term.
type ErrNotFound struct {
	term string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("no note matches %q", e.term)
}

// ErrUnexpectedLanguage is returned by Find for search terms that are not
// written in Han characters.
type ErrUnexpectedLanguage struct {
	expectedLanguage string
	term             string
}

func (e *ErrUnexpectedLanguage) Error() string {
	return fmt.Sprintf("%q is not in expected language of %s", e.term, e.expectedLanguage)
}
