/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Decoder resource limits
 */

package goipp

// DecoderLimits bounds the resources a messageDecoder will allocate
// while parsing a message from an untrusted peer. Each field is a
// ceiling; a zero field means "no limit" for that field, except that
// a DecoderLimits with all fields zero selects DefaultDecoderLimits.
type DecoderLimits struct {
	// MaxStringLength bounds the length, in bytes, of any single
	// name/value string read off the wire.
	MaxStringLength int

	// MaxAttributes bounds the total number of attributes (across
	// all groups and nested collections) a single message may
	// contain.
	MaxAttributes int

	// MaxCollectionDepth bounds how deeply TagBeginCollection
	// values may nest.
	MaxCollectionDepth int
}

// DefaultDecoderLimits is applied by Decode/DecodeBytes, and by
// DecodeEx/DecodeBytesEx when the caller passes a zero DecoderOptions.
var DefaultDecoderLimits = DecoderLimits{
	MaxStringLength:    65535,
	MaxAttributes:      65536,
	MaxCollectionDepth: 32,
}
