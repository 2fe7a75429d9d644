/* Go IPP - IPP core protocol implementation in pure Go
 *
 * Copyright (C) 2020 and up by Alexander Pevzner (pzz@apevzner.com)
 * See LICENSE for license terms and conditions
 *
 * Message attributes
 */

package goipp

import (
	"fmt"
	"sort"
)

// Attribute represents a single attribute
type Attribute struct {
	Name   string // Attribute name
	Values Values // Slice of values
}

// MakeAttribute makes a single-valued Attribute
func MakeAttribute(name string, tag Tag, value Value) Attribute {
	return Attribute{Name: name, Values: Values{{tag, value}}}
}

// MakeAttr makes an Attribute with one or more values sharing the same tag
func MakeAttr(name string, tag Tag, values ...Value) Attribute {
	attr := Attribute{Name: name}
	for _, v := range values {
		attr.Values.Add(tag, v)
	}
	return attr
}

// MakeAttrCollection makes a single Collection-valued Attribute out of
// its member attributes
func MakeAttrCollection(name string, members ...Attribute) Attribute {
	return Attribute{Name: name, Values: Values{{TagBeginCollection, Collection(members)}}}
}

// MakeAttrNoValue makes a no-value Attribute (TagUnsupportedValue,
// TagDefault, TagUnknown, TagNotSettable, TagDeleteAttr, TagAdminDefine)
func MakeAttrNoValue(name string, tag Tag) Attribute {
	return Attribute{Name: name, Values: Values{{tag, Void{}}}}
}

// Equal checks that two Attributes are equal
func (a Attribute) Equal(a2 Attribute) bool {
	return a.Name == a2.Name && a.Values.Equal(a2.Values)
}

// Similar checks that two Attributes are logically equal
func (a Attribute) Similar(a2 Attribute) bool {
	return a.Name == a2.Name && a.Values.Similar(a2.Values)
}

// Clone creates a shallow copy of Attribute
func (a Attribute) Clone() Attribute {
	return Attribute{Name: a.Name, Values: a.Values.Clone()}
}

// DeepCopy creates a deep copy of Attribute
func (a Attribute) DeepCopy() Attribute {
	return Attribute{Name: a.Name, Values: a.Values.DeepCopy()}
}

// Attributes represents a slice of attributes
type Attributes []Attribute

// Add Attribute to Attributes
func (attrs *Attributes) Add(attr Attribute) {
	*attrs = append(*attrs, attr)
}

// Equal checks that two Attributes slices are equal
func (attrs Attributes) Equal(attrs2 Attributes) bool {
	if (attrs == nil) != (attrs2 == nil) {
		return false
	}

	if len(attrs) != len(attrs2) {
		return false
	}

	for i, a := range attrs {
		if !a.Equal(attrs2[i]) {
			return false
		}
	}

	return true
}

// Similar checks that two Attributes slices are logically equal,
// tolerating a different ordering of attributes with different names.
// Attributes that share the same name must appear in the same relative
// order in both slices.
func (attrs Attributes) Similar(attrs2 Attributes) bool {
	if len(attrs) != len(attrs2) {
		return false
	}

	s1 := attrs.sortedByName()
	s2 := attrs2.sortedByName()

	for i, a := range s1 {
		if !a.Similar(s2[i]) {
			return false
		}
	}

	return true
}

func (attrs Attributes) sortedByName() Attributes {
	s := attrs.Clone()
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Name < s[j].Name
	})
	return s
}

// Clone creates a shallow copy of Attributes
func (attrs Attributes) Clone() Attributes {
	if attrs == nil {
		return nil
	}

	attrs2 := make(Attributes, len(attrs))
	copy(attrs2, attrs)
	return attrs2
}

// DeepCopy creates a deep copy of Attributes
func (attrs Attributes) DeepCopy() Attributes {
	if attrs == nil {
		return nil
	}

	attrs2 := make(Attributes, len(attrs))
	for i, a := range attrs {
		attrs2[i] = a.DeepCopy()
	}
	return attrs2
}

// AddValue adds value to attribute's values
func (a *Attribute) AddValue(tag Tag, val Value) {
	a.Values.Add(tag, val)
}

// Find returns a pointer to the attribute named name, or nil if attrs
// contains no such attribute.
func (attrs Attributes) Find(name string) *Attribute {
	for i := range attrs {
		if attrs[i].Name == name {
			return &attrs[i]
		}
	}
	return nil
}

// addReplacing adds attr to attrs, replacing a prior attribute of the
// same name in place (last writer wins) rather than appending a
// duplicate, matching map semantics while preserving wire order.
func (attrs *Attributes) addReplacing(attr Attribute) {
	if prior := attrs.Find(attr.Name); prior != nil {
		*prior = attr
		return
	}
	attrs.Add(attr)
}

// zeroStringValue returns the bounded-string-family decode prototype
// for tag, per the per-tag tiers of the Bounded String and Text Value
// models, or ok=false if tag isn't one of the string-family tags.
func zeroStringValue(tag Tag) (proto Value, ok bool) {
	switch tag {
	case TagName, TagKeyword, TagMimeType, TagMemberName:
		return BoundedString{max: BoundedStringKeyword}, true
	case TagCharset, TagLanguage:
		return BoundedString{max: BoundedStringCharset}, true
	case TagURI, TagURIScheme, TagReservedString:
		return BoundedString{max: BoundedStringGeneric}, true
	case TagText:
		return TextValue{}, true
	}

	return nil, false
}

// zeroValue returns a zero-value instance of the Value type that
// corresponds to tag, used as a decode prototype.
func zeroValue(tag Tag) Value {
	if proto, ok := zeroStringValue(tag); ok {
		return proto
	}

	switch tag.Type() {
	case TypeInteger:
		return Integer(0)
	case TypeBoolean:
		return Boolean(false)
	case TypeDateTime:
		return Time{}
	case TypeResolution:
		return Resolution{}
	case TypeRange:
		return Range{}
	case TypeTextWithLang:
		return TextWithLang{}
	case TypeVoid:
		return Void{}
	default:
		// TypeCollection falls here too: TagBeginCollection carries no
		// inline value, the collection itself is decoded separately
		// by messageDecoder and then substituted into attr.Values[0].V.
		// TagString (octetString) also falls here, decoding as Binary.
		return Binary(nil)
	}
}

// Unpack attribute value
func (a *Attribute) unpack(tag Tag, value []byte) error {
	if tag.IsDelimiter() {
		panic(fmt.Sprintf("Attribute.unpack: %s is a delimiter tag", tag))
	}

	proto := zeroValue(tag)
	v, err := proto.decode(value)
	if err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}

	a.AddValue(tag, v)
	return nil
}
