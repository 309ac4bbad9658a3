package main

import (
	"breneo/internal/domain/matching"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a skill list against a job's skills and title",
	RunE:  runScore,
}

var scoreFixture string

func init() {
	addFixtureFlag(scoreCmd, &scoreFixture)
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	var fx skillFixture
	if err := readFixture(cmd, scoreFixture, &fx); err != nil {
		return err
	}

	b := matching.CalculateMatchDetails(fx.UserSkills, fx.JobSkills, fx.JobTitle)
	return printJSON(cmd, map[string]any{
		"percent":   b.Percent,
		"label":     matching.QualityLabel(&b.Percent),
		"breakdown": b,
	})
}
