package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the bundled tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range builtinTools() {
			fmt.Printf("%-8s %s\n", t.Name, t.Description)
		}
		return nil
	},
}
