package sfcparser

import "strings"

// tagParser recognizes start-tag and end-tag syntax at a candidate '<'
// position. Every method returns the structured result, the number of bytes
// consumed, and an ok flag; ok == false means "not a tag here" and consumes
// nothing. Grammar mismatches never commit partial input.
type tagParser struct {
	allowUnquoted bool
}

// startTag is a recognized start tag: a name plus its attribute list.
type startTag struct {
	name  BlockName
	attrs []Attribute
}

// parseStartTag recognizes '<' + name + whitespace-separated attributes +
// optional whitespace + '>'.
func (tp tagParser) parseStartTag(s string) (startTag, int, bool) {
	if len(s) == 0 || s[0] != '<' {
		return startTag{}, 0, false
	}
	name, n, ok := scanBlockName(s[1:])
	if !ok {
		return startTag{}, 0, false
	}
	pos := 1 + n

	var attrs []Attribute
	for {
		ws := skipSpace(s[pos:])
		if ws == 0 {
			break
		}
		attr, n, ok := tp.parseAttribute(s[pos+ws:])
		if !ok {
			break
		}
		attrs = append(attrs, attr)
		pos += ws + n
	}

	pos += skipSpace(s[pos:])
	if pos >= len(s) || s[pos] != '>' {
		return startTag{}, 0, false
	}
	return startTag{name: name, attrs: attrs}, pos + 1, true
}

// parseEndTag recognizes '</' + optional whitespace + name + optional
// whitespace + '>'. The returned name is normalized, so the engine's
// comparison against the open block's name is ASCII-case-insensitive.
func (tp tagParser) parseEndTag(s string) (BlockName, int, bool) {
	if len(s) < 2 || s[0] != '<' || s[1] != '/' {
		return BlockName{}, 0, false
	}
	pos := 2 + skipSpace(s[2:])
	name, n, ok := scanBlockName(s[pos:])
	if !ok {
		return BlockName{}, 0, false
	}
	pos += n
	pos += skipSpace(s[pos:])
	if pos >= len(s) || s[pos] != '>' {
		return BlockName{}, 0, false
	}
	return name, pos + 1, true
}

// parseAttribute recognizes name, or name = "value" / name = 'value' with
// whitespace allowed around '='. A name not followed by '=' is a boolean
// attribute; whitespace after it stays unconsumed so the caller can treat it
// as a separator.
func (tp tagParser) parseAttribute(s string) (Attribute, int, bool) {
	name, n, ok := scanAttrName(s)
	if !ok {
		return Attribute{}, 0, false
	}
	eq := n + skipSpace(s[n:])
	if eq >= len(s) || s[eq] != '=' {
		return Attribute{Name: name}, n, true
	}
	pos := eq + 1
	pos += skipSpace(s[pos:])
	val, vn, ok := tp.parseValue(s[pos:])
	if !ok {
		return Attribute{}, 0, false
	}
	return Attribute{Name: name, Value: &val}, pos + vn, true
}

// parseValue recognizes a quoted value, which may be empty and may span
// lines. With allowUnquoted it falls back to a non-empty run terminated by
// whitespace or '>'; such a run can carry both quote kinds, so it goes
// through the checked constructor.
func (tp tagParser) parseValue(s string) (AttributeValue, int, bool) {
	if len(s) > 0 && (s[0] == '"' || s[0] == '\'') {
		end := strings.IndexByte(s[1:], s[0])
		if end < 0 {
			return AttributeValue{}, 0, false
		}
		return attributeValueTrusted(s[1 : 1+end]), end + 2, true
	}
	if !tp.allowUnquoted {
		return AttributeValue{}, 0, false
	}
	n := strings.IndexAny(s, " \t\r\n\f>")
	if n < 0 {
		n = len(s)
	}
	if n == 0 {
		return AttributeValue{}, 0, false
	}
	val, err := NewAttributeValue(s[:n])
	if err != nil {
		return AttributeValue{}, 0, false
	}
	return val, n, true
}

// scanBlockName scans a tag name: one ASCII letter followed by any run free
// of the forbidden set. The result arrives lower-cased.
func scanBlockName(s string) (BlockName, int, bool) {
	if len(s) == 0 || !isASCIIAlpha(s[0]) {
		return BlockName{}, 0, false
	}
	n := strings.IndexAny(s, blockNameForbidden)
	if n < 0 {
		n = len(s)
	}
	return blockNameTrusted(asciiLower(s[:n])), n, true
}

// scanAttrName scans a non-empty run free of the attribute-name forbidden
// set, lower-cased.
func scanAttrName(s string) (AttributeName, int, bool) {
	n := strings.IndexAny(s, attrNameForbidden)
	if n < 0 {
		n = len(s)
	}
	if n == 0 {
		return AttributeName{}, 0, false
	}
	return attributeNameTrusted(asciiLower(s[:n])), n, true
}

// skipSpace counts leading tag whitespace: space, tab, CR, LF.
func skipSpace(s string) int {
	n := 0
	for n < len(s) && isTagSpace(s[n]) {
		n++
	}
	return n
}

func isTagSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
