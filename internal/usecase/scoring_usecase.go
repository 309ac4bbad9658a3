package usecase

import (
	"breneo/internal/domain/matching"
)

type SkillMatchInput struct {
	UserSkills []string
	JobSkills  []string
	JobTitle   string
}

type SkillMatchOutput struct {
	Breakdown matching.MatchBreakdown
	Label     string
}

type SkillScoresOutput struct {
	Scores *matching.SkillScores
	Top    []matching.SkillScore
}

// ScoringUsecase exposes the pure scorers to callers that hold their own
// inputs; nothing is read from storage.
type ScoringUsecase interface {
	MatchSkills(in SkillMatchInput) SkillMatchOutput
	MatchIndustry(jobTags []string, userIndustryYears map[string]float64) matching.IndustryMatchResult
	ScoreAnswers(answers []matching.Answer, limit int) SkillScoresOutput
}

type Scoring struct{}

func NewScoringUsecase() *Scoring {
	return &Scoring{}
}

func (u *Scoring) MatchSkills(in SkillMatchInput) SkillMatchOutput {
	b := matching.CalculateMatchDetails(in.UserSkills, in.JobSkills, in.JobTitle)
	percent := b.Percent
	return SkillMatchOutput{Breakdown: b, Label: matching.QualityLabel(&percent)}
}

func (u *Scoring) MatchIndustry(jobTags []string, userIndustryYears map[string]float64) matching.IndustryMatchResult {
	return matching.ComputeIndustryMatchPercent(jobTags, userIndustryYears)
}

func (u *Scoring) ScoreAnswers(answers []matching.Answer, limit int) SkillScoresOutput {
	scores := matching.CalculateSkillScores(answers)
	return SkillScoresOutput{Scores: scores, Top: matching.TopSkills(scores, limit)}
}
