/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Decoder error types
 */

package goipp

import "fmt"

// InvalidStringLengthError is returned when a bounded string is
// constructed, narrowed, or decoded from a byte sequence longer than
// the maximum its tier allows, and when the encoder meets an attribute
// name too long for its uint16 length prefix. Widening (Expand) never
// returns it.
type InvalidStringLengthError struct {
	Len int // The offending length, in bytes
	Max int // The maximum the tier allows
}

func (e *InvalidStringLengthError) Error() string {
	return fmt.Sprintf("invalid string length %d, max %d", e.Len, e.Max)
}

// InvalidTagError is returned when TagZero (0x00) appears where the
// decoder expects a group tag or an attribute's value tag.
type InvalidTagError struct {
	Tag Tag
}

func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("invalid tag %s", e.Tag)
}

// InvalidDelimiterTagError is returned when one of the reserved
// delimiter tags 0x0b-0x0f is used to open an attribute group.
type InvalidDelimiterTagError struct {
	Tag Tag
}

func (e *InvalidDelimiterTagError) Error() string {
	return fmt.Sprintf("invalid delimiter tag %s", e.Tag)
}

// UnexpectedContinuationError is returned when a nameless (array
// continuation) value appears without a preceding named attribute.
type UnexpectedContinuationError struct{}

func (e *UnexpectedContinuationError) Error() string {
	return "unexpected additional value without a preceding attribute"
}

// UnterminatedCollectionError is returned when the input ends, at a
// point where a member or TagEndCollection tag is expected, before a
// TagBeginCollection value is closed by a matching TagEndCollection.
// Other unexpected tags inside a collection yield a plain error.
type UnterminatedCollectionError struct{}

func (e *UnterminatedCollectionError) Error() string {
	return "unterminated collection"
}

// TruncatedError is returned when the input ends before a
// length-prefixed attribute name or value is complete, and when a
// TagExtension value is shorter than its 4-byte tag: Available bytes
// remained where Needed were required. Input that ends inside the
// message header, a tag byte or a length prefix yields the reader's
// own error (such as io.EOF) instead.
type TruncatedError struct {
	Needed    int
	Available int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated: need %d bytes, have %d", e.Needed, e.Available)
}

// LimitExceededError is returned when a DecoderLimits ceiling is hit.
type LimitExceededError struct {
	Limit string // Which limit was hit
	Value int    // The value that triggered it
	Max   int    // The configured ceiling
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("%s limit exceeded: %d > %d", e.Limit, e.Value, e.Max)
}
