/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Length-bounded string values
 */

package goipp

import (
	"fmt"
	"math"
	"strings"
)

// Canonical BoundedString maxima, per RFC 8010's per-tag string-length
// ceilings.
const (
	BoundedStringKeyword = 255  // TagName, TagKeyword, TagMimeType, TagMemberName
	BoundedStringCharset = 63   // TagCharset, TagLanguage
	BoundedStringGeneric = 1023 // TagURI, TagURIScheme, TagReservedString
)

// BoundedString is a UTF-8 string value that carries its maximum byte
// length as part of its identity. Unlike plain String, a BoundedString
// can never hold more bytes than its Max allows: construction,
// widening past a smaller tier, and narrowing into a smaller one are
// all checked.
//
// Use with: TagName, TagKeyword, TagMimeType, TagMemberName (max 255),
// TagCharset, TagLanguage (max 63), TagURI, TagURIScheme,
// TagReservedString (max 1023).
type BoundedString struct {
	max int
	s   string
}

// NewBoundedString constructs a BoundedString, rejecting s if it
// exceeds max bytes, or if it wouldn't fit a uint16 wire length prefix
// regardless of max.
func NewBoundedString(max int, s string) (BoundedString, error) {
	if len(s) > max {
		return BoundedString{}, &InvalidStringLengthError{Len: len(s), Max: max}
	}
	if len(s) > math.MaxUint16 {
		return BoundedString{}, &InvalidStringLengthError{Len: len(s), Max: math.MaxUint16}
	}

	return BoundedString{max: max, s: s}, nil
}

// Max returns the maximum byte length this BoundedString's tier allows.
func (b BoundedString) Max() int { return b.max }

// Len returns the byte length of the current content.
func (b BoundedString) Len() int { return len(b.s) }

// Expand widens b to a larger tier. Widening can never overflow, so it
// doesn't return an error; it panics if max2 is narrower than b's
// current Max, since that would silently lose the bound the caller
// asked for.
func (b BoundedString) Expand(max2 int) BoundedString {
	if max2 < b.max {
		panic(fmt.Sprintf("BoundedString.Expand: %d narrower than current max %d", max2, b.max))
	}

	return BoundedString{max: max2, s: b.s}
}

// Shrink narrows b to a smaller tier, failing if the current content
// no longer fits within max2.
func (b BoundedString) Shrink(max2 int) (BoundedString, error) {
	if len(b.s) > max2 {
		return BoundedString{}, &InvalidStringLengthError{Len: len(b.s), Max: max2}
	}

	return BoundedString{max: max2, s: b.s}, nil
}

// String returns the underlying string content.
func (b BoundedString) String() string { return b.s }

// Type returns type of Value
func (BoundedString) Type() Type { return TypeString }

// Encode BoundedString Value into wire format
func (b BoundedString) encode() ([]byte, error) {
	return []byte(b.s), nil
}

// Decode BoundedString Value from wire format, enforcing b's Max
// against the decoded content. Invalid UTF-8 sequences are replaced
// with U+FFFD before the bound is checked.
func (b BoundedString) decode(data []byte) (Value, error) {
	v, err := NewBoundedString(b.max, strings.ToValidUTF8(string(data), "�"))
	if err != nil {
		return nil, err
	}

	return v, nil
}

// TextValue tiers: the narrowest class whose bound contains the input
// is selected at construction time.
const (
	textValueShort  = 127
	textValueMedium = 255
	textValueLong   = 1023
)

// TextValue is a three-tier string value {Short≤127, Medium≤255,
// Long≤1023}, used for TagText (and, via the Other/Binary split
// already pinned for TagString, not for TagString). Construction picks
// the narrowest tier that fits; reading exposes a uniform string view
// regardless of which tier was chosen, by way of the embedded
// BoundedString.
//
// Use with: TagText
type TextValue struct {
	BoundedString
}

// NewTextValue constructs a TextValue, selecting the narrowest of the
// three tiers that fits s. Inputs longer than 1023 bytes are rejected.
func NewTextValue(s string) (TextValue, error) {
	max := textValueLong
	switch {
	case len(s) <= textValueShort:
		max = textValueShort
	case len(s) <= textValueMedium:
		max = textValueMedium
	case len(s) <= textValueLong:
		max = textValueLong
	default:
		return TextValue{}, &InvalidStringLengthError{Len: len(s), Max: textValueLong}
	}

	bs, err := NewBoundedString(max, s)
	if err != nil {
		return TextValue{}, err
	}

	return TextValue{bs}, nil
}

// AsBoundedString converts v into a BoundedString of the given tier,
// failing if v's content doesn't fit within max.
func (v TextValue) AsBoundedString(max int) (BoundedString, error) {
	return NewBoundedString(max, v.String())
}

// NewTextValueFromBoundedString converts a BoundedString into a
// TextValue, auto-selecting the narrowest TextValue tier that holds
// its content. Fails if the content exceeds 1023 bytes.
func NewTextValueFromBoundedString(b BoundedString) (TextValue, error) {
	return NewTextValue(b.String())
}

// Decode TextValue from wire format, re-running tier selection against
// the decoded content (the zero-value TextValue used as a decode
// prototype carries no useful Max of its own).
func (TextValue) decode(data []byte) (Value, error) {
	v, err := NewTextValue(strings.ToValidUTF8(string(data), "�"))
	if err != nil {
		return nil, err
	}

	return v, nil
}
