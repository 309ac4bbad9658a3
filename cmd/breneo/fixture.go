package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"breneo/internal/domain/matching"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type skillFixture struct {
	UserSkills []string `yaml:"user_skills"`
	JobSkills  []string `yaml:"job_skills"`
	JobTitle   string   `yaml:"job_title"`
}

type industryFixture struct {
	JobTags           tagList            `yaml:"job_tags"`
	UserIndustryYears map[string]float64 `yaml:"user_industry_years"`
}

type answersFixture struct {
	Answers []matching.Answer `yaml:"answers"`
}

type matchFixture struct {
	Job     matching.StructuredJob    `yaml:"job"`
	Profile matching.UserMatchProfile `yaml:"profile"`
}

// tagList accepts a comma separated string or a sequence.
type tagList []string

func (t *tagList) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			*t = nil
			return nil
		}
		s := n.Value
		*t = matching.ParseJobIndustryTags(&s)
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := n.Decode(&list); err != nil {
			return err
		}
		*t = list
		return nil
	default:
		return fmt.Errorf("line %d: job_tags must be a string or a list", n.Line)
	}
}

// readFixture decodes the YAML file at path into out. "-" reads stdin.
func readFixture(cmd *cobra.Command, path string, out any) error {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read fixture %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func addFixtureFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "fixture", "f", "", "Path to YAML fixture, - for stdin (required)")
	if err := cmd.MarkFlagRequired("fixture"); err != nil {
		panic(fmt.Sprintf("failed to mark fixture flag as required: %v", err))
	}
}
