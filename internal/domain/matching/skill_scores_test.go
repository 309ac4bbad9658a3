package matching

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSkillScores_TopSkillsTieBreak(t *testing.T) {
	answers := []Answer{
		{"relatedSkills": []any{"Developer"}},
		{"relatedSkills": []any{"Developer", "Designer"}},
		{"relatedSkills": []any{"Designer"}},
	}

	scores := CalculateSkillScores(answers)
	assert.Equal(t, map[string]int{"Developer": 2, "Designer": 2}, scores.Map())
	assert.Equal(t, []string{"Developer", "Designer"}, scores.Skills())

	top := TopSkills(scores, 1)
	require.Len(t, top, 1)
	assert.Equal(t, SkillScore{Skill: "Developer", Score: 2}, top[0])
}

func TestCalculateSkillScores_FieldCasingAndBadInput(t *testing.T) {
	answers := []Answer{
		{"relatedskills": []string{"SQL", " "}},
		{"relatedSkills": "SQL"},
		{"relatedSkills": []any{"SQL", 42, nil, "Go"}},
		{"other": []any{"Ignored"}},
		nil,
	}

	scores := CalculateSkillScores(answers)
	assert.Equal(t, map[string]int{"SQL": 2, "Go": 1}, scores.Map())
	assert.Equal(t, 0, CalculateSkillScores(nil).Len())
}

func TestTopSkills_OrderAndLimit(t *testing.T) {
	scores := NewSkillScores()
	scores.Add("Go", 1)
	scores.Add("SQL", 3)
	scores.Add("Docker", 1)
	scores.Add("Redis", 2)

	all := TopSkills(scores, 0)
	assert.Equal(t, []SkillScore{
		{Skill: "SQL", Score: 3},
		{Skill: "Redis", Score: 2},
		{Skill: "Go", Score: 1},
		{Skill: "Docker", Score: 1},
	}, all)
	assert.Len(t, TopSkills(scores, 10), 4)
	assert.Empty(t, TopSkills(nil, 3))
}

func TestDecodeAnswers(t *testing.T) {
	raw := []byte(`[{"relatedSkills":["Go"]}, 7, "x", {"relatedskills":["Go","SQL"]}]`)
	answers := DecodeAnswers(raw)
	require.Len(t, answers, 2)

	scores := CalculateSkillScores(answers)
	assert.Equal(t, 2, scores.Get("Go"))
	assert.Equal(t, 1, scores.Get("SQL"))

	assert.Empty(t, DecodeAnswers([]byte(`{"relatedSkills":["Go"]}`)))
	assert.Empty(t, DecodeAnswers(nil))
}

func TestSkillScores_MarshalJSONKeepsOrder(t *testing.T) {
	scores := NewSkillScores()
	scores.Add("Zig", 1)
	scores.Add("Ada", 2)

	b, err := json.Marshal(scores)
	require.NoError(t, err)
	assert.Equal(t, `{"Zig":1,"Ada":2}`, string(b))
}
