package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/sunholo/vhdlelab/internal/design"
	"github.com/sunholo/vhdlelab/internal/diag"
	"github.com/sunholo/vhdlelab/internal/elaborate"
	"github.com/sunholo/vhdlelab/internal/inspect"
)

var elaborateCmd = &cobra.Command{
	Use:   "elaborate",
	Short: "Elaborate the demo design and print the resulting block tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		block, collab := runDemoElaboration()
		if block == nil {
			printDiagnostics(collab.Diag)
			return fmt.Errorf("elaboration failed with %d error(s)", len(collab.Diag.Diags))
		}
		inspect.PrintTree(os.Stdout, block)
		printDiagnostics(collab.Diag)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(elaborateCmd)
}

// runDemoElaboration wires the demo design's collaborators and runs
// ElaborateRoot, recovering the *diag.FatalError panic that a Fatal
// diagnostic raises — internal/diag documents that boundary as "to
// be recovered only at a root driver boundary", which for this CLI is
// here.
func runDemoElaboration() (block *design.Block, collab *elaborate.Collaborators) {
	d := buildDemoDesign()
	collab = d.collaborators(&cliOpts)

	if cliOpts.topUnit != "" && cliOpts.topUnit != d.top.Name.String() {
		log.Warnf("--top %q ignored; the demo build only elaborates %q", cliOpts.topUnit, d.top.Name)
	}

	defer func() {
		if r := recover(); r != nil {
			if fe, ok := r.(*diag.FatalError); ok {
				log.WithFields(logrus.Fields{"code": fe.Code}).Error(fe.Error())
				block = nil
				return
			}
			panic(r)
		}
	}()

	block = elaborate.ElaborateRoot(collab, d.top)
	return block, collab
}

func printDiagnostics(eng *diag.Engine) {
	for _, d := range eng.Diags {
		log.WithField("code", d.Code).Error(d.String())
	}
	for _, w := range eng.Warnings {
		log.WithField("code", w.Code).Warn(w.String())
	}
}
