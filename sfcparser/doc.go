// Package sfcparser splits Vue single-file-component source into its
// sections.
//
// An SFC is an ordered sequence of sections: free text (Raw) and delimited
// blocks (Block) such as <template>, <script> and <style>, each carrying a
// validated name, an attribute list and its content span. Block contents are
// not interpreted; parsing the markup, program or stylesheet inside a block
// belongs to downstream consumers.
//
// The parser is structured in three layers:
//
//   - Validated string types: BlockName, AttributeName, AttributeValue and
//     Raw guarantee well-formedness at construction time.
//   - Tag grammar: recognizes start and end tags at a candidate position,
//     failing softly when the text is not a tag.
//   - Scan engine: one forward pass that switches between the data policy
//     (template content, same-name nesting depth-counted) and the rawtext
//     policy (script/style content, closed only by the literal end tag).
//
// Usage:
//
//	sections, err := sfcparser.Parse(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, section := range sections {
//	    if block, ok := section.(sfcparser.Block); ok {
//	        fmt.Println(block.Name, len(block.Content))
//	    }
//	}
//
// Parsing is pure: no I/O, no logging, no shared state. Failures are typed
// errors and never come with a partial section list.
package sfcparser
