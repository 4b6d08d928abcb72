package sfcparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockNameValid(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"template", "template"},
		{"script", "script"},
		{"SCRIPT", "script"},
		{"MyDocs", "mydocs"},
		{"i18n", "i18n"},
		{"x-custom", "x-custom"},
		{"a", "a"},
	}
	for _, tt := range tests {
		name, err := NewBlockName(tt.input)
		require.NoError(t, err, "input: %s", tt.input)
		assert.Equal(t, tt.want, name.String(), "input: %s", tt.input)
	}
}

func TestBlockNameLeadingChar(t *testing.T) {
	cases := []string{"", "1abc", "-abc", "_abc", "émile"}
	for _, input := range cases {
		_, err := NewBlockName(input)
		assert.ErrorIs(t, err, ErrBlockNameStart, "input: %q", input)
	}
}

func TestBlockNameIllegalChars(t *testing.T) {
	tests := []struct {
		input string
		char  rune
	}{
		{"a\tb", '\t'},
		{"a\nb", '\n'},
		{"a\fb", '\f'},
		{"a b", ' '},
		{"a/b", '/'},
		{"a>b", '>'},
	}
	for _, tt := range tests {
		_, err := NewBlockName(tt.input)
		var illegal *IllegalCharError
		require.ErrorAs(t, err, &illegal, "input: %q", tt.input)
		assert.Equal(t, tt.char, illegal.Char, "input: %q", tt.input)
		assert.Equal(t, "block name", illegal.Kind)
	}
}

func TestBlockNameNormalizedEquality(t *testing.T) {
	upper, err := NewBlockName("SCRIPT")
	require.NoError(t, err)
	lower, err := NewBlockName("script")
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
}

func TestAttributeNameValid(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"lang", "lang"},
		{"SCOPED", "scoped"},
		{"v-slot", "v-slot"},
		{":is", ":is"},
		{"#default", "#default"},
		{"@click", "@click"},
	}
	for _, tt := range tests {
		name, err := NewAttributeName(tt.input)
		require.NoError(t, err, "input: %s", tt.input)
		assert.Equal(t, tt.want, name.String(), "input: %s", tt.input)
	}
}

func TestAttributeNameIllegalChars(t *testing.T) {
	tests := []struct {
		input string
		char  rune
	}{
		{"a b", ' '},
		{"a=b", '='},
		{"a/b", '/'},
		{"a>b", '>'},
		{"a\tb", '\t'},
		{"a\nb", '\n'},
		{"a\fb", '\f'},
	}
	for _, tt := range tests {
		_, err := NewAttributeName(tt.input)
		var illegal *IllegalCharError
		require.ErrorAs(t, err, &illegal, "input: %q", tt.input)
		assert.Equal(t, tt.char, illegal.Char, "input: %q", tt.input)
		assert.Equal(t, "attribute name", illegal.Kind)
	}
}

func TestAttributeValue(t *testing.T) {
	valid := []string{"", "ts", "HTML", "it's", `say "hi"`, "{ Component }"}
	for _, input := range valid {
		v, err := NewAttributeValue(input)
		require.NoError(t, err, "input: %q", input)
		assert.Equal(t, input, v.String(), "input: %q", input)
	}
}

func TestAttributeValueMixedQuotes(t *testing.T) {
	_, err := NewAttributeValue(`both " and '`)
	var illegal *IllegalCharError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, '\'', illegal.Char)
	assert.Equal(t, "attribute value", illegal.Kind)
}

func TestAttributeValueKeepsCase(t *testing.T) {
	v, err := NewAttributeValue("TypeScript")
	require.NoError(t, err)
	assert.Equal(t, "TypeScript", v.String())
}

func TestRaw(t *testing.T) {
	r, err := NewRaw("<!-- a comment -->\n\t ")
	require.NoError(t, err)
	assert.Equal(t, "<!-- a comment -->", r.String())

	r, err = NewRaw("  leading spaces stay")
	require.NoError(t, err)
	assert.Equal(t, "  leading spaces stay", r.String())
}

func TestRawEmpty(t *testing.T) {
	cases := []string{"", "   ", "\n\t\r ", " "}
	for _, input := range cases {
		_, err := NewRaw(input)
		assert.ErrorIs(t, err, ErrEmptyRaw, "input: %q", input)
	}
}

func TestASCIILower(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"already-lower", "already-lower"},
		{"SCRIPT", "script"},
		{"MiXeD-123", "mixed-123"},
		{"Σtemplate", "Σtemplate"}, // non-ASCII letters keep their case
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, asciiLower(tt.input), "input: %s", tt.input)
	}
}
