package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sunholo/vhdlelab/internal/inspect"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Elaborate the demo design and open an interactive block browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		block, collab := runDemoElaboration()
		if block == nil {
			printDiagnostics(collab.Diag)
			return fmt.Errorf("elaboration failed with %d error(s)", len(collab.Diag.Diags))
		}
		printDiagnostics(collab.Diag)
		inspect.New(block).Start(os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
