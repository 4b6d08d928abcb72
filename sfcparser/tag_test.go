package sfcparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attrStrings(attrs []Attribute) []string {
	out := make([]string, len(attrs))
	for i, a := range attrs {
		out[i] = a.String()
	}
	return out
}

func mustStartTag(t *testing.T, src string) (startTag, int) {
	t.Helper()
	var tp tagParser
	tag, n, ok := tp.parseStartTag(src)
	require.True(t, ok, "expected a start tag: %q", src)
	return tag, n
}

func TestStartTagPlain(t *testing.T) {
	tag, n := mustStartTag(t, "<template>rest")
	assert.Equal(t, "template", tag.name.String())
	assert.Empty(t, tag.attrs)
	assert.Equal(t, len("<template>"), n)
}

func TestStartTagAttributes(t *testing.T) {
	tests := []struct {
		input string
		name  string
		attrs []string
	}{
		{`<script lang="ts" setup>`, "script", []string{`lang="ts"`, "setup"}},
		{`<style scoped>`, "style", []string{"scoped"}},
		{`<script lang = "ts">`, "script", []string{`lang="ts"`}},
		{`<template lang>`, "template", []string{"lang"}},
		{`<style media=''>`, "style", []string{`media=""`}},
		{`<docs title='say "hi"'>`, "docs", []string{`title='say "hi"'`}},
		{`<i18n src="./locales.json">`, "i18n", []string{`src="./locales.json"`}},
		{"<script\n  generic=\"T\"\n>", "script", []string{`generic="T"`}},
		{`<template   lang="pug"   >`, "template", []string{`lang="pug"`}},
	}
	for _, tt := range tests {
		tag, n := mustStartTag(t, tt.input)
		assert.Equal(t, tt.name, tag.name.String(), "input: %s", tt.input)
		assert.Equal(t, tt.attrs, attrStrings(tag.attrs), "input: %s", tt.input)
		assert.Equal(t, len(tt.input), n, "input: %s", tt.input)
	}
}

func TestStartTagNormalizesNames(t *testing.T) {
	tag, _ := mustStartTag(t, `<SCRIPT LANG="TS">`)
	assert.Equal(t, "script", tag.name.String())
	require.Len(t, tag.attrs, 1)
	assert.Equal(t, "lang", tag.attrs[0].Name.String())
	// Values are never case-normalized.
	assert.Equal(t, "TS", tag.attrs[0].Value.String())
}

func TestStartTagMultilineValue(t *testing.T) {
	tag, _ := mustStartTag(t, "<docs note=\"line one\nline two\">")
	require.Len(t, tag.attrs, 1)
	assert.Equal(t, "line one\nline two", tag.attrs[0].Value.String())
}

func TestStartTagRejects(t *testing.T) {
	cases := []string{
		"",
		"<",
		"<>",
		"< template>",
		"</template>",
		"<1abc>",
		"<-dash>",
		"<br/>",
		"<template",
		`<a b=>`,
		`<a b="unterminated>`,
		`<a b='unterminated>`,
		`<a b="1"c="2">`,
		"<a\fb>",
		`<a ="v">`,
	}
	var tp tagParser
	for _, input := range cases {
		_, n, ok := tp.parseStartTag(input)
		assert.False(t, ok, "input: %q", input)
		assert.Zero(t, n, "input: %q", input)
	}
}

func TestEndTag(t *testing.T) {
	tests := []struct {
		input string
		name  string
	}{
		{"</template>", "template"},
		{"</ template >", "template"},
		{"</TEMPLATE>", "template"},
		{"</script>\nrest", "script"},
	}
	var tp tagParser
	for _, tt := range tests {
		name, n, ok := tp.parseEndTag(tt.input)
		require.True(t, ok, "input: %q", tt.input)
		assert.Equal(t, tt.name, name.String(), "input: %q", tt.input)
		assert.Greater(t, n, 0, "input: %q", tt.input)
	}
}

func TestEndTagRejects(t *testing.T) {
	cases := []string{
		"",
		"</",
		"</>",
		"</ >",
		"<template>",
		"</1abc>",
		"</template",
		"</template b>",
	}
	var tp tagParser
	for _, input := range cases {
		_, _, ok := tp.parseEndTag(input)
		assert.False(t, ok, "input: %q", input)
	}
}

func TestUnquotedValues(t *testing.T) {
	strict := tagParser{}
	_, _, ok := strict.parseStartTag(`<script lang=ts>`)
	assert.False(t, ok)

	permissive := tagParser{allowUnquoted: true}
	tag, n, ok := permissive.parseStartTag(`<script lang=ts setup>`)
	require.True(t, ok)
	assert.Equal(t, []string{`lang="ts"`, "setup"}, attrStrings(tag.attrs))
	assert.Equal(t, len(`<script lang=ts setup>`), n)

	// An unquoted run may not mix both quote kinds.
	_, _, ok = permissive.parseStartTag(`<a b=x"y'z>`)
	assert.False(t, ok)
}
