package main

import (
	"breneo/internal/domain/matching"

	"github.com/spf13/cobra"
)

var industryCmd = &cobra.Command{
	Use:   "industry",
	Short: "Compare job industry tags with years of experience per industry",
	RunE:  runIndustry,
}

var industryFixturePath string

func init() {
	addFixtureFlag(industryCmd, &industryFixturePath)
	rootCmd.AddCommand(industryCmd)
}

func runIndustry(cmd *cobra.Command, _ []string) error {
	var fx industryFixture
	if err := readFixture(cmd, industryFixturePath, &fx); err != nil {
		return err
	}
	return printJSON(cmd, matching.ComputeIndustryMatchPercent(fx.JobTags, fx.UserIndustryYears))
}
