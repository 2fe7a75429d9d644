/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Decoder diagnostics
 */

package goipp

// Logger receives diagnostic messages from the decoder. Debugf is
// called once for each attribute group the decoder opens; Warnf is
// called for each value whose tag is not a known tag, which the
// decoder keeps as a Binary value rather than rejecting.
//
// A nil Logger (the default) is equivalent to a Logger that drops
// everything.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// nopLogger is the default, silent Logger.
type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...interface{}) {}
func (nopLogger) Warnf(format string, args ...interface{})  {}

// DecoderOptions customizes Message.DecodeEx/DecodeBytesEx.
type DecoderOptions struct {
	// Limits bounds decoder allocations. A zero value selects
	// DefaultDecoderLimits.
	Limits DecoderLimits

	// Logger receives diagnostic output. A nil value is silent.
	Logger Logger
}
