package main

import (
	"encoding/json"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}

// severity colors a label green, yellow or red by how far it is from the
// healthy band.
func severity(level int, label string) string {
	switch {
	case level <= 0:
		return color.New(color.Bold, color.FgGreen).Sprint(label)
	case level == 1:
		return color.New(color.Bold, color.FgYellow).Sprint(label)
	default:
		return color.New(color.Bold, color.FgRed).Sprint(label)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printList(cmd *cobra.Command, title string, items []string) {
	if len(items) == 0 {
		return
	}
	cmd.Printf("\n%s\n", bold("%s", title))
	for _, s := range items {
		cmd.Printf("  • %s\n", s)
	}
}
