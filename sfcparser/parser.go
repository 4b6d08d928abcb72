package sfcparser

import (
	"strings"
	"unicode"
)

// Parser carries parse options. The zero value is the canonical grammar.
type Parser struct {
	// AllowUnquoted accepts legacy unquoted attribute values
	// (<script lang=ts>). Canonical SFC markup quotes every value.
	AllowUnquoted bool
}

// Parse parses SFC source text with default options and returns its sections
// in source order. Returns a *MissingEndTagError or *UnexpectedEndTagError on
// failure. Empty input yields no sections.
func Parse(src string) ([]Section, error) {
	var p Parser
	return p.Parse(src)
}

// openBlock is the machine state while inside a block.
type openBlock struct {
	name    BlockName
	attrs   []Attribute
	rawText bool // content is opaque, closed only by the matching end tag
	depth   int  // same-name nesting depth, data mode only
	openAt  int  // offset of the opening tag's '<'
	start   int  // offset of the first content byte, past the start tag's '>'
}

// Parse runs one forward scan over src. Candidate '<' positions are probed
// against the tag grammar; recognized tags that open, close or depth-adjust
// a block are consumed and never re-probed, while rejected candidates stay
// ordinary text. Content and raw spans are substrings of src.
func (p Parser) Parse(src string) ([]Section, error) {
	tp := tagParser{allowUnquoted: p.AllowUnquoted}

	var (
		sections []Section
		open     *openBlock
		rawFrom  int // start of the pending raw span, outside any block
	)

	pos := 0
	for pos < len(src) {
		rel := strings.IndexByte(src[pos:], '<')
		if rel < 0 {
			break
		}
		at := pos + rel
		rest := src[at:]
		pos = at + 1 // rejected candidates advance one byte

		if open == nil {
			if name, _, ok := tp.parseEndTag(rest); ok {
				return nil, unexpectedEndTag(name, at)
			}
			tag, n, ok := tp.parseStartTag(rest)
			if !ok {
				continue
			}
			if raw, ok := trimSpan(src[rawFrom:at]); ok {
				sections = append(sections, rawTrusted(raw))
			}
			open = &openBlock{
				name:    tag.name,
				attrs:   tag.attrs,
				rawText: rawTextContent(tag.name, tag.attrs),
				openAt:  at,
				start:   at + n,
			}
			pos = at + n
			continue
		}

		if name, n, ok := tp.parseEndTag(rest); ok && name == open.name {
			if open.depth > 0 {
				open.depth--
				pos = at + n
				continue
			}
			content, _ := trimSpan(src[open.start:at])
			sections = append(sections, Block{
				Name:       open.name,
				Attributes: open.attrs,
				Content:    content,
			})
			open = nil
			rawFrom = at + n
			pos = at + n
			continue
		}
		if !open.rawText {
			if tag, n, ok := tp.parseStartTag(rest); ok && tag.name == open.name {
				open.depth++
				pos = at + n
			}
		}
	}

	if open != nil {
		return nil, missingEndTag(open.name, open.openAt)
	}
	if raw, ok := trimSpan(src[rawFrom:]); ok {
		sections = append(sections, rawTrusted(raw))
	}
	return sections, nil
}

// rawTextContent decides the content policy at block entry. Template content
// is markup that may nest same-named tags, so it is depth-tracked (data
// mode), unless a lang attribute selects a non-HTML language. Everything
// else is opaque until its literal end tag.
func rawTextContent(name BlockName, attrs []Attribute) bool {
	if name.String() != "template" {
		return true
	}
	for _, a := range attrs {
		if a.Name.String() == "lang" && a.Value != nil && a.Value.String() != "html" {
			return true
		}
	}
	return false
}

// trimSpan trims a raw or content span: leading newlines (LF/CR) are
// stripped, then trailing whitespace. ok reports a non-empty remainder.
func trimSpan(s string) (string, bool) {
	s = strings.TrimLeft(s, "\n\r")
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	return s, s != ""
}
