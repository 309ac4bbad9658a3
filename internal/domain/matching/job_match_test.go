package matching

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateMatchPercentage_EmptyInputs(t *testing.T) {
	assert.Equal(t, 0, CalculateMatchPercentage(nil, []string{"Go"}, "Go Developer"))
	assert.Equal(t, 0, CalculateMatchPercentage([]string{}, []string{"Go"}, ""))
	assert.Equal(t, 0, CalculateMatchPercentage([]string{"Go"}, nil, ""))
	assert.Equal(t, 0, CalculateMatchPercentage([]string{"  "}, []string{"Go"}, ""))
}

func TestCalculateMatchPercentage_TitleBonus(t *testing.T) {
	user := []string{"React", "Node.js"}
	job := []string{"React", "Node.js", "SQL"}

	withTitle := CalculateMatchPercentage(user, job, "React Developer")
	withoutTitle := CalculateMatchPercentage(user, job, "Marketing Manager")

	assert.Equal(t, 93, withTitle)
	assert.Equal(t, 82, withoutTitle)
	assert.Greater(t, withTitle, withoutTitle)
}

func TestCalculateMatchPercentage_Weights(t *testing.T) {
	assert.Equal(t, 92, CalculateMatchPercentage([]string{"Go"}, []string{"Go"}, ""))
	assert.Equal(t, 92, CalculateMatchPercentage([]string{"Java"}, []string{"JavaScript"}, ""))
	assert.Equal(t, 0, CalculateMatchPercentage([]string{"Cooking"}, []string{"Go"}, "Backend Engineer"))
}

func TestCalculateMatchPercentage_TitleOnlyCap(t *testing.T) {
	assert.Equal(t, 75, CalculateMatchPercentage([]string{"Go"}, nil, "Go Developer"))
	assert.Equal(t, 50, CalculateMatchPercentage([]string{"Go", "Python"}, nil, "Senior Go Engineer"))
	assert.Equal(t, 0, CalculateMatchPercentage([]string{"Python"}, nil, "Senior Go Engineer"))
}

func TestCalculateMatchPercentage_ShortSkillInTitle(t *testing.T) {
	// a skill found anywhere in the title counts, however short
	assert.Equal(t, 75, CalculateMatchPercentage([]string{"C"}, nil, "Accountant"))
	assert.Equal(t, 75, CalculateMatchPercentage([]string{"R"}, nil, "Marketing Manager"))
	assert.Equal(t, 0, CalculateMatchPercentage([]string{"C"}, nil, "Marketing Manager"))
}

func TestCalculateMatchPercentage_Bounds(t *testing.T) {
	f := func(user, job []string, title string) bool {
		p := CalculateMatchPercentage(user, job, title)
		return p >= 0 && p <= 100
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestCalculateMatchDetails_Breakdown(t *testing.T) {
	bd := CalculateMatchDetails(
		[]string{"Go", "Postgres", "Kubernetes"},
		[]string{"Go", "PostgreSQL", "Redis"},
		"Go Backend Engineer",
	)

	require.Len(t, bd.ExactMatches, 1)
	assert.Equal(t, SkillPair{UserSkill: "go", JobSkill: "go", Title: true}, bd.ExactMatches[0])
	require.Len(t, bd.PartialMatches, 1)
	assert.Equal(t, "postgresql", bd.PartialMatches[0].JobSkill)
	assert.Equal(t, []string{"go"}, bd.TitleMatches)
	assert.Equal(t, []string{"postgres"}, bd.DescriptionMatches)
	assert.Equal(t, []string{"go", "postgresql"}, bd.MatchedJobSkills)
	assert.Equal(t, []string{"redis"}, bd.MissingJobSkills)
	assert.InDelta(t, 66.67, bd.Coverage, 0.01)
	assert.InDelta(t, 66.67, bd.Relevance, 0.01)
	assert.Equal(t, CalculateMatchPercentage(
		[]string{"Go", "Postgres", "Kubernetes"},
		[]string{"Go", "PostgreSQL", "Redis"},
		"Go Backend Engineer",
	), bd.Percent)
}

func TestQualityLabel(t *testing.T) {
	p := func(v int) *int { return &v }

	assert.Equal(t, "", QualityLabel(nil))
	assert.Equal(t, "", QualityLabel(p(0)))
	assert.Equal(t, "", QualityLabel(p(-5)))
	assert.Equal(t, "Poor match", QualityLabel(p(49)))
	assert.Equal(t, "Fair match", QualityLabel(p(50)))
	assert.Equal(t, "Good match", QualityLabel(p(70)))
	assert.Equal(t, "Best match", QualityLabel(p(85)))
	assert.Equal(t, "Best match", QualityLabel(p(100)))
}
