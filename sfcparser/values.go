package sfcparser

import (
	"strings"
	"unicode"
)

// debug re-validates trusted constructions when flipped on. The trusted
// constructors are only reachable from the tag grammar and the scan engine,
// which guarantee the predicates by construction.
const debug = false

// Forbidden character sets, per the WHATWG tag-name and attribute-name
// tokenizer states. All members are ASCII, so byte scans are safe on UTF-8.
const (
	blockNameForbidden = "\t\n\f />"
	attrNameForbidden  = "\t\n\f /=>"
)

// BlockName is the validated, ASCII-lower-cased name of a block,
// i.e. "script" in <script lang="ts">. The zero value is not a valid name;
// obtain one via NewBlockName.
type BlockName struct {
	name string
}

// NewBlockName validates and normalizes a block name. The name must start
// with an ASCII letter and contain none of TAB, LF, FF, SPACE, '/', '>'.
// ASCII uppercase letters are lower-cased.
func NewBlockName(s string) (BlockName, error) {
	if s == "" || !isASCIIAlpha(s[0]) {
		return BlockName{}, ErrBlockNameStart
	}
	if i := strings.IndexAny(s, blockNameForbidden); i >= 0 {
		return BlockName{}, &IllegalCharError{Kind: "block name", Char: rune(s[i])}
	}
	return BlockName{name: asciiLower(s)}, nil
}

// String returns the normalized name.
func (n BlockName) String() string { return n.name }

// blockNameTrusted wraps a name the tag grammar has already scanned and
// lower-cased.
func blockNameTrusted(s string) BlockName {
	if debug {
		n, err := NewBlockName(s)
		if err != nil {
			panic("sfcparser: blockNameTrusted: " + err.Error())
		}
		return n
	}
	return BlockName{name: s}
}

// AttributeName is the validated, ASCII-lower-cased name of an attribute,
// i.e. "lang" in <script lang="ts">.
type AttributeName struct {
	name string
}

// NewAttributeName validates and normalizes an attribute name. The name must
// contain none of TAB, LF, FF, SPACE, '/', '=', '>'. ASCII uppercase letters
// are lower-cased.
func NewAttributeName(s string) (AttributeName, error) {
	if i := strings.IndexAny(s, attrNameForbidden); i >= 0 {
		return AttributeName{}, &IllegalCharError{Kind: "attribute name", Char: rune(s[i])}
	}
	return AttributeName{name: asciiLower(s)}, nil
}

// String returns the normalized name.
func (n AttributeName) String() string { return n.name }

func attributeNameTrusted(s string) AttributeName {
	if debug {
		n, err := NewAttributeName(s)
		if err != nil {
			panic("sfcparser: attributeNameTrusted: " + err.Error())
		}
		return n
	}
	return AttributeName{name: s}
}

// AttributeValue is the validated value of an attribute, i.e. "ts" in
// <script lang="ts">. Values are never case-normalized.
type AttributeValue struct {
	value string
}

// NewAttributeValue validates an attribute value. A value may contain a
// double quote or a single quote, but not both: such a value could not be
// rendered under either quoting style.
func NewAttributeValue(s string) (AttributeValue, error) {
	if strings.ContainsRune(s, '"') && strings.ContainsRune(s, '\'') {
		return AttributeValue{}, &IllegalCharError{Kind: "attribute value", Char: '\''}
	}
	return AttributeValue{value: s}, nil
}

// String returns the value text.
func (v AttributeValue) String() string { return v.value }

func attributeValueTrusted(s string) AttributeValue {
	if debug {
		v, err := NewAttributeValue(s)
		if err != nil {
			panic("sfcparser: attributeValueTrusted: " + err.Error())
		}
		return v
	}
	return AttributeValue{value: s}
}

// Raw is non-empty free text before, after or between blocks. The stored
// text is end-trimmed at construction.
type Raw struct {
	text string
}

// NewRaw trims trailing whitespace and validates that the remainder is
// non-empty.
func NewRaw(s string) (Raw, error) {
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if s == "" {
		return Raw{}, ErrEmptyRaw
	}
	return Raw{text: s}, nil
}

// String returns the end-trimmed text.
func (r Raw) String() string { return r.text }

// rawTrusted wraps a span the engine has already trimmed and checked
// non-empty.
func rawTrusted(s string) Raw {
	if debug {
		r, err := NewRaw(s)
		if err != nil {
			panic("sfcparser: rawTrusted: " + err.Error())
		}
		return r
	}
	return Raw{text: s}
}

func isASCIIAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isASCIIUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// asciiLower lower-cases ASCII letters only, returning s unchanged (and
// unallocated) when it contains no uppercase.
func asciiLower(s string) string {
	i := 0
	for i < len(s) && !isASCIIUpper(s[i]) {
		i++
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if isASCIIUpper(b[i]) {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
