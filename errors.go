package adt

import "fmt"

// InvalidArgument - Custom error to inform that a constructor or configuration argument is malformed
type InvalidArgument struct {
	msg string
}

// NewInvalidArgument - Returns an InvalidArgument error with a formatted message
func NewInvalidArgument(format string, a ...any) InvalidArgument {
	return InvalidArgument{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that an argument is invalid
func (E InvalidArgument) Error() string {
	if E.msg == "" {
		return "invalid argument"
	}
	return E.msg
}

// Is - Matches any InvalidArgument regardless of message
func (E InvalidArgument) Is(target error) bool {
	_, ok := target.(InvalidArgument)
	return ok
}

// LengthMismatch - Custom error to inform that parallel key and value sequences differ in length.
// It is a special case of InvalidArgument and errors.Is reports it as both.
type LengthMismatch struct {
	msg string
}

// NewLengthMismatch - Returns a LengthMismatch error describing the two lengths
func NewLengthMismatch(nKeys, nValues int) LengthMismatch {
	return LengthMismatch{msg: fmt.Sprintf("cannot initialize %d keys with %d values", nKeys, nValues)}
}

// Error - Used to notify that keys and values differ in length
func (E LengthMismatch) Error() string {
	if E.msg == "" {
		return "length mismatch"
	}
	return E.msg
}

// Is - Matches any LengthMismatch or InvalidArgument
func (E LengthMismatch) Is(target error) bool {
	switch target.(type) {
	case LengthMismatch, InvalidArgument:
		return true
	}
	return false
}

// IndexOutOfRange - Custom error to inform that an index is outside the permitted range
type IndexOutOfRange struct {
	msg string
}

// NewIndexOutOfRange - Returns an IndexOutOfRange error with a formatted message
func NewIndexOutOfRange(format string, a ...any) IndexOutOfRange {
	return IndexOutOfRange{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that an index is out of range
func (E IndexOutOfRange) Error() string {
	if E.msg == "" {
		return "index out of range"
	}
	return E.msg
}

// Is - Matches any IndexOutOfRange regardless of message
func (E IndexOutOfRange) Is(target error) bool {
	_, ok := target.(IndexOutOfRange)
	return ok
}

// KeyNotFound - Custom error to inform that no entry was found for a key (or item)
type KeyNotFound struct {
	msg string
}

// NewKeyNotFound - Returns a KeyNotFound error with a formatted message
func NewKeyNotFound(format string, a ...any) KeyNotFound {
	return KeyNotFound{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that no entry was found
func (E KeyNotFound) Error() string {
	if E.msg == "" {
		return "key not found"
	}
	return E.msg
}

// Is - Matches any KeyNotFound regardless of message
func (E KeyNotFound) Is(target error) bool {
	_, ok := target.(KeyNotFound)
	return ok
}

// TypeMismatch - Custom error to inform that a key can not be hashed or compared by the hasher in use
type TypeMismatch struct {
	msg string
}

// NewTypeMismatch - Returns a TypeMismatch error with a formatted message
func NewTypeMismatch(format string, a ...any) TypeMismatch {
	return TypeMismatch{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that a key type is not supported
func (E TypeMismatch) Error() string {
	if E.msg == "" {
		return "type mismatch"
	}
	return E.msg
}

// Is - Matches any TypeMismatch regardless of message
func (E TypeMismatch) Is(target error) bool {
	_, ok := target.(TypeMismatch)
	return ok
}
