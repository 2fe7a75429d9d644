/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * IPP Message decoder
 */

package goipp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Type messageDecoder represents Message decoder
type messageDecoder struct {
	in        io.Reader      // Input stream
	opt       DecoderOptions // Decoder options (limits, logger)
	off       int            // Offset of last read
	cnt       int            // Count of read bytes
	attrCount int            // Total attributes decoded so far
}

// limits returns the effective DecoderLimits, falling back to
// DefaultDecoderLimits when the caller didn't supply any.
func (md *messageDecoder) limits() DecoderLimits {
	if md.opt.Limits == (DecoderLimits{}) {
		return DefaultDecoderLimits
	}
	return md.opt.Limits
}

// logger returns the effective Logger, falling back to a no-op
// implementation when the caller didn't supply one.
func (md *messageDecoder) logger() Logger {
	if md.opt.Logger != nil {
		return md.opt.Logger
	}
	return nopLogger{}
}

// Decode the message
func (md *messageDecoder) decode(m *Message) error {
	/*
	   1 byte:   VersionMajor
	   1 byte:   VersionMinor
	   2 bytes:  operation-id or status-code
	   4 bytes:  request-id
	   variable: attributes
	   1 byte:   end-of-attributes-tag
	*/

	// Parse message header
	var err error
	m.Version, err = md.decodeVersion()
	if err == nil {
		m.Code, err = md.decodeCode()
	}
	if err == nil {
		m.RequestID, err = md.decodeU32()
	}

	// Now parse attributes
	done := false
	var namedGroup *Attributes
	var groupIdx = -1
	var attr Attribute
	var prev *Attribute

	for err == nil && !done {
		var tag Tag
		tag, err = md.decodeTag()
		if err != nil {
			break
		}

		if tag.IsDelimiter() {
			if tag.IsReserved() {
				err = &InvalidDelimiterTagError{Tag: tag}
				break
			}
			prev = nil
		}

		if tag.IsGroup() {
			m.Groups = append(m.Groups, Group{Tag: tag})
			groupIdx = len(m.Groups) - 1
			namedGroup = m.namedGroupPtr(tag)
			md.logger().Debugf("%s opened at 0x%x", tag, md.off)
			continue
		}

		switch tag {
		case TagZero:
			err = &InvalidTagError{Tag: tag}
		case TagEnd:
			done = true

		default:
			// Decode attribute
			if tag == TagMemberName || tag == TagEndCollection {
				err = fmt.Errorf("Unexpected tag %s", tag)
			} else {
				attr, err = md.decodeAttribute(tag)
			}

			if err == nil && tag == TagBeginCollection {
				attr.Values[0].V, err = md.decodeCollection(1)
			}

			if err == nil {
				err = md.countAttribute()
			}

			// If everything is OK, save attribute
			switch {
			case err != nil:
			case attr.Name == "":
				if prev != nil {
					prev.Values.Add(attr.Values[0].T, attr.Values[0].V)
					if namedGroup != nil {
						if last := namedGroup.Find(prev.Name); last != nil {
							last.Values.Add(attr.Values[0].T, attr.Values[0].V)
						}
					}
				} else {
					err = &UnexpectedContinuationError{}
				}
			case groupIdx >= 0:
				m.Groups[groupIdx].Add(attr)
				prev = m.Groups[groupIdx].Attrs.Find(attr.Name)
				if namedGroup != nil {
					namedGroup.addReplacing(attr)
				}
			default:
				err = errors.New("Attribute without a group")
			}
		}
	}

	if err != nil {
		err = fmt.Errorf("%w at 0x%x", err, md.off)
	}

	return err
}

// countAttribute accounts for one more decoded attribute, enforcing
// DecoderLimits.MaxAttributes against runaway or hostile input.
func (md *messageDecoder) countAttribute() error {
	md.attrCount++
	if max := md.limits().MaxAttributes; max > 0 && md.attrCount > max {
		return &LimitExceededError{
			Limit: "attribute count",
			Value: md.attrCount,
			Max:   max,
		}
	}
	return nil
}

// Decode a Collection. depth is the current nesting level, used to
// enforce DecoderLimits.MaxCollectionDepth.
func (md *messageDecoder) decodeCollection(depth int) (Collection, error) {
	if max := md.limits().MaxCollectionDepth; max > 0 && depth > max {
		return nil, &LimitExceededError{
			Limit: "collection depth",
			Value: depth,
			Max:   max,
		}
	}

	collection := make(Collection, 0)

	for {
		// Decode next TagEndCollection or next TagMemberName
		tag, err := md.decodeTag()
		if err == io.EOF {
			return nil, &UnterminatedCollectionError{}
		}
		if err != nil {
			return nil, err
		}

		if tag != TagEndCollection && tag != TagMemberName {
			err = fmt.Errorf(
				"Collection: expected %s or %s, got %s",
				TagMemberName, TagEndCollection, tag)
			return nil, err
		}

		attrName, err := md.decodeAttribute(tag)
		if err != nil {
			return nil, err
		}

		if tag == TagEndCollection {
			return collection, nil
		}

		// Decode member value
		tag, err = md.decodeTag()
		if err != nil {
			return nil, err
		}

		if tag.IsDelimiter() ||
			tag == TagEndCollection || tag == TagMemberName {
			err = fmt.Errorf("Collection: unexpected %s", tag)
			return nil, err
		}

		attr, err := md.decodeAttribute(tag)
		if err != nil {
			return nil, err
		}

		attr.Name = attrName.Values[0].V.String()
		if err == nil && tag == TagBeginCollection {
			attr.Values[0].V, err = md.decodeCollection(depth + 1)
		}

		if err != nil {
			return nil, err
		}

		if err = md.countAttribute(); err != nil {
			return nil, err
		}

		collection = append(collection, attr)
	}
}

// Decode a tag
func (md *messageDecoder) decodeTag() (Tag, error) {
	t, err := md.decodeU8()
	return Tag(t), err
}

// Decode a Version
func (md *messageDecoder) decodeVersion() (Version, error) {
	code, err := md.decodeU16()
	return Version(code), err
}

// Decode a Code
func (md *messageDecoder) decodeCode() (Code, error) {
	code, err := md.decodeU16()
	return Code(code), err
}

// Decode a single attribute
func (md *messageDecoder) decodeAttribute(tag Tag) (Attribute, error) {
	var attr Attribute
	var value []byte
	var err error

	// Obtain attribute name and raw value
	attr.Name, err = md.decodeString()
	if err != nil {
		goto ERROR
	}

	value, err = md.decodeBytes()
	if err != nil {
		goto ERROR
	}

	// Handle TagExtension
	if tag == TagExtension {
		if len(value) < 4 {
			err = &TruncatedError{Needed: 4, Available: len(value)}
			goto ERROR
		}

		t := binary.BigEndian.Uint32(value[:4])
		value = value[4:]

		if t > 0x7fffffff {
			err = errors.New("Extension tag out of range")
			goto ERROR
		}

		tag = Tag(t)
	}

	if _, known := tagNames[tag]; !known {
		md.logger().Warnf("unknown tag %s kept as binary value at 0x%x", tag, md.off)
	}

	// Unpack value
	err = attr.unpack(tag, value)
	if err != nil {
		goto ERROR
	}

	return attr, nil

	// Return a error
ERROR:
	return Attribute{}, err
}

// Decode a 8-bit integer
func (md *messageDecoder) decodeU8() (uint8, error) {
	buf := make([]byte, 1)
	err := md.read(buf)
	return buf[0], err
}

// Decode a 16-bit integer
func (md *messageDecoder) decodeU16() (uint16, error) {
	buf := make([]byte, 2)
	err := md.read(buf)
	return binary.BigEndian.Uint16(buf[:]), err
}

// Decode a 32-bit integer
func (md *messageDecoder) decodeU32() (uint32, error) {
	buf := make([]byte, 4)
	err := md.read(buf)
	return binary.BigEndian.Uint32(buf[:]), err
}

// Decode sequence of bytes
func (md *messageDecoder) decodeBytes() ([]byte, error) {
	length, err := md.decodeU16()
	if err != nil {
		return nil, err
	}

	if max := md.limits().MaxStringLength; max > 0 && int(length) > max {
		return nil, &LimitExceededError{
			Limit: "string length",
			Value: int(length),
			Max:   max,
		}
	}

	data := make([]byte, length)
	start := md.cnt
	err = md.read(data)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, &TruncatedError{Needed: int(length), Available: md.cnt - start}
	}
	if err != nil {
		return nil, err
	}

	return data, nil
}

// Decode string
func (md *messageDecoder) decodeString() (string, error) {
	data, err := md.decodeBytes()
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Read a piece of raw data from input stream
func (md *messageDecoder) read(data []byte) error {
	md.off = md.cnt

	for len(data) > 0 {
		n, err := md.in.Read(data)
		if err != nil {
			md.off = md.cnt
			return err
		}

		md.cnt += n
		data = data[n:]
	}

	return nil
}
