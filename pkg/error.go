package structhash

import "fmt"

type parseError struct {
	error error
}

func (e *parseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.error.Error())
}

type badValueError struct {
	typeKey string
	error   error
}

func (e *badValueError) Error() string {
	return fmt.Sprintf("bad value for type %s: %s", e.typeKey, e.error.Error())
}

type corruptIndexError struct {
	id    string
	error error
}

func (e *corruptIndexError) Error() string {
	return fmt.Sprintf("corrupt index entry %s: %s", e.id, e.error.Error())
}
