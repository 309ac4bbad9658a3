package main

import (
	"breneo/internal/domain/matching"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Compute the full match result for a structured job and a profile",
	Long:  "Reads a fixture with a job and a profile section and prints the skills, experience and industry buckets, the overall percent and the badges.",
	RunE:  runMatch,
}

var matchFixturePath string

func init() {
	addFixtureFlag(matchCmd, &matchFixturePath)
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	var fx matchFixture
	if err := readFixture(cmd, matchFixturePath, &fx); err != nil {
		return err
	}

	res := matching.ComputeMatch(fx.Job, fx.Profile)
	return printJSON(cmd, map[string]any{
		"label":  matching.QualityLabel(&res.OverallPercent),
		"result": res,
	})
}
