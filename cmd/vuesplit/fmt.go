package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vuesplit/vuesplit/sfcparser"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <component.vue>",
	Short: "Canonically format a component",
	Long:  "Parse a single-file component and render it back in canonical form: lowercased names, double-quoted values and one blank line between sections.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().BoolP("write", "w", false, "Rewrite the file in place instead of printing")

	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	write, _ := cmd.Flags().GetBool("write")

	sections, err := parseComponent(args[0])
	if err != nil {
		return err
	}
	formatted := sfcparser.Render(sections) + "\n"

	if write {
		info, err := os.Stat(args[0])
		if err != nil {
			return fmt.Errorf("stat component: %w", err)
		}
		if err := os.WriteFile(args[0], []byte(formatted), info.Mode().Perm()); err != nil {
			return fmt.Errorf("writing component: %w", err)
		}
		log.Info().Str("path", args[0]).Msg("rewrote component")
		return nil
	}

	_, err = io.WriteString(os.Stdout, formatted)
	return err
}
