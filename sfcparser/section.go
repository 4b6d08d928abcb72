package sfcparser

import (
	"fmt"
	"strings"
	"unicode"
)

// Section is one part of a parsed SFC: either free text (Raw) or a delimited
// block (Block). The interface is sealed; those two are the only
// implementations.
type Section interface {
	fmt.Stringer
	section()
}

func (Raw) section()   {}
func (Block) section() {}

// Attribute is a name with an optional value. A nil Value models a boolean
// attribute such as "setup" in <script lang="ts" setup>.
type Attribute struct {
	Name  AttributeName
	Value *AttributeValue
}

// String renders the attribute as it appears inside a start tag. A value
// containing a double quote is delimited with single quotes instead.
func (a Attribute) String() string {
	if a.Value == nil {
		return a.Name.String()
	}
	v := a.Value.String()
	if strings.ContainsRune(v, '"') {
		return a.Name.String() + "='" + v + "'"
	}
	return a.Name.String() + `="` + v + `"`
}

// Block is a named, optionally-attributed region delimited by matching start
// and end tags, e.g. <script lang="ts">...</script>. Attributes keep source
// order; duplicates are permitted. Content is the span between the start
// tag's '>' and the end tag's '<', with leading newlines stripped and
// trailing whitespace trimmed.
type Block struct {
	Name       BlockName
	Attributes []Attribute
	Content    string
}

// Attr looks up an attribute by its normalized name. When the name is
// duplicated the last occurrence wins. Returns the attribute and true if
// found.
func (b Block) Attr(name string) (Attribute, bool) {
	for i := len(b.Attributes) - 1; i >= 0; i-- {
		if b.Attributes[i].Name.String() == name {
			return b.Attributes[i], true
		}
	}
	return Attribute{}, false
}

// String renders the block back to tag form. Non-empty content is framed by
// single newlines; content is end-trimmed on the way out.
func (b Block) String() string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(b.Name.String())
	for _, a := range b.Attributes {
		sb.WriteByte(' ')
		sb.WriteString(a.String())
	}
	sb.WriteByte('>')
	if content := strings.TrimRightFunc(b.Content, unicode.IsSpace); content != "" {
		sb.WriteByte('\n')
		sb.WriteString(content)
		sb.WriteByte('\n')
	}
	sb.WriteString("</")
	sb.WriteString(b.Name.String())
	sb.WriteByte('>')
	return sb.String()
}

// Render joins the rendered sections with one blank line, the conventional
// SFC layout. Re-parsing the result yields an equal section sequence.
func Render(sections []Section) string {
	parts := make([]string, len(sections))
	for i, s := range sections {
		parts[i] = s.String()
	}
	return strings.Join(parts, "\n\n")
}
