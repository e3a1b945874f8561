package main

import (
	"github.com/spf13/cobra"

	"github.com/rhyrak/course-planner/internal/tui"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"wizard"},
	Short:   "Answer the constraint questions one by one",
	Long: `Walks through the questions of the schedule wizard (credit limit, days
off, back-to-back classes, instructor, time of day, desired courses) and then
plans with the answers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := tui.RunWizard()
		if err != nil {
			return err
		}
		return runPlan(cmd, c)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
	addSearchFlags(interactiveCmd.Flags())
}
