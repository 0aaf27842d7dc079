package main

import (
	"fmt"

	"github.com/mark3labs/ideaeval/internal/evaluation"
	"github.com/spf13/cobra"
)

var criteriaCmd = &cobra.Command{
	Use:   "criteria",
	Short: "List the evaluation criteria",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for i, name := range evaluation.CriterionNames() {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, name)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nEach criterion is rated %d-%d. Unrated criteria count as 0.\n",
			evaluation.MinScore, evaluation.MaxScore)
		return nil
	},
}
