package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vuesplit/vuesplit/sfcparser"
)

var blocksCmd = &cobra.Command{
	Use:   "blocks <component.vue>",
	Short: "List the sections of a component",
	Long:  "Parse a single-file component and list its sections in source order.",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlocks,
}

func init() {
	blocksCmd.Flags().Bool("json", false, "Emit JSON instead of text")

	rootCmd.AddCommand(blocksCmd)
}

// sectionJSON is the JSON shape for one parsed section.
type sectionJSON struct {
	Kind       string   `json:"kind"` // "raw" or "block"
	Name       string   `json:"name,omitempty"`
	Attributes []string `json:"attributes,omitempty"`
	Content    string   `json:"content"`
}

func runBlocks(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	sections, err := parseComponent(args[0])
	if err != nil {
		return err
	}

	if asJSON {
		out := make([]sectionJSON, 0, len(sections))
		for _, section := range sections {
			out = append(out, sectionToJSON(section))
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, section := range sections {
		switch s := section.(type) {
		case sfcparser.Block:
			line := "block " + s.Name.String()
			for _, attr := range s.Attributes {
				line += " " + attr.String()
			}
			fmt.Fprintf(os.Stdout, "%s (%d bytes)\n", line, len(s.Content))
		case sfcparser.Raw:
			fmt.Fprintf(os.Stdout, "raw (%d bytes)\n", len(s.String()))
		}
	}
	return nil
}

func sectionToJSON(section sfcparser.Section) sectionJSON {
	switch s := section.(type) {
	case sfcparser.Block:
		out := sectionJSON{Kind: "block", Name: s.Name.String(), Content: s.Content}
		for _, attr := range s.Attributes {
			out.Attributes = append(out.Attributes, attr.String())
		}
		return out
	case sfcparser.Raw:
		return sectionJSON{Kind: "raw", Content: s.String()}
	}
	return sectionJSON{}
}
