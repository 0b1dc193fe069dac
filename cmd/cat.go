package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var colorMode string

var catCmd = &cobra.Command{
	Use:   "cat <file>",
	Short: "Print a highlighted file to stdout",
	Args:  cobra.ExactArgs(1),
	RunE:  runCat,
}

func init() {
	catCmd.Flags().StringVar(&colorMode, "color", "auto",
		"color output: auto, always, never")
	rootCmd.AddCommand(catCmd)
}

func runCat(cmd *cobra.Command, args []string) error {
	// Force the render profile before any styling happens; piped output
	// otherwise drops all color.
	switch colorMode {
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	hl, err := buildHighlighter(args[0])
	if err != nil {
		return err
	}
	if colorMode == "never" {
		hl.SetPlain(true)
	}

	out := cmd.OutOrStdout()
	for line := 0; line < hl.Buffer().LineCount(); line++ {
		fmt.Fprintln(out, hl.StyledLine(line))
	}
	return nil
}
