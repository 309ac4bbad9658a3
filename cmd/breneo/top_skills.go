package main

import (
	"breneo/internal/domain/matching"

	"github.com/spf13/cobra"
)

var topSkillsCmd = &cobra.Command{
	Use:   "top-skills",
	Short: "Rank skills referenced by assessment answers",
	RunE:  runTopSkills,
}

var (
	topSkillsFixture string
	topSkillsLimit   int
)

func init() {
	addFixtureFlag(topSkillsCmd, &topSkillsFixture)
	topSkillsCmd.Flags().IntVarP(&topSkillsLimit, "limit", "n", 5, "Number of skills to print, 0 for all")
	rootCmd.AddCommand(topSkillsCmd)
}

func runTopSkills(cmd *cobra.Command, _ []string) error {
	var fx answersFixture
	if err := readFixture(cmd, topSkillsFixture, &fx); err != nil {
		return err
	}
	scores := matching.CalculateSkillScores(fx.Answers)
	return printJSON(cmd, map[string]any{
		"scores":     scores,
		"top_skills": matching.TopSkills(scores, topSkillsLimit),
	})
}
