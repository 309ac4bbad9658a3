package matching

import (
	"math"
	"strings"
)

const (
	exactWeight       = 1.0
	partialWeight     = 0.6
	titleMultiplier   = 1.2
	baseShare         = 0.5
	coverageShare     = 0.3
	relevanceShare    = 0.2
	maxTitleBonus     = 15.0
	titleOnlyMaxScore = 75.0
)

// SkillPair records which job skill a user skill was matched against.
type SkillPair struct {
	UserSkill string `json:"user_skill"`
	JobSkill  string `json:"job_skill"`
	Title     bool   `json:"title"`
}

// MatchBreakdown is the full trace of one CalculateMatchDetails call. All
// skills in it are normalized.
type MatchBreakdown struct {
	Percent            int         `json:"percent"`
	ExactMatches       []SkillPair `json:"exact_matches"`
	PartialMatches     []SkillPair `json:"partial_matches"`
	TitleMatches       []string    `json:"title_matches"`
	DescriptionMatches []string    `json:"description_matches"`
	MatchedJobSkills   []string    `json:"matched_job_skills"`
	MissingJobSkills   []string    `json:"missing_job_skills"`
	BaseMatch          float64     `json:"base_match"`
	Coverage           float64     `json:"coverage"`
	Relevance          float64     `json:"relevance"`
}

// CalculateMatchPercentage scores userSkills against jobSkills and an optional
// job title. The result is an integer in [0,100].
func CalculateMatchPercentage(userSkills, jobSkills []string, jobTitle string) int {
	return CalculateMatchDetails(userSkills, jobSkills, jobTitle).Percent
}

func CalculateMatchDetails(userSkills, jobSkills []string, jobTitle string) MatchBreakdown {
	users := normalizeSkills(userSkills)
	jobs := normalizeSkills(jobSkills)
	title := Normalize(jobTitle)

	out := MatchBreakdown{
		ExactMatches:       []SkillPair{},
		PartialMatches:     []SkillPair{},
		TitleMatches:       []string{},
		DescriptionMatches: []string{},
		MatchedJobSkills:   []string{},
		MissingJobSkills:   []string{},
	}
	if len(users) == 0 {
		return out
	}
	if len(jobs) == 0 && title == "" {
		return out
	}

	titleWords := strings.Fields(title)
	isTitle := make([]bool, len(users))
	for i, us := range users {
		if title == "" {
			continue
		}
		if titleRelated(us, title, titleWords) {
			isTitle[i] = true
			out.TitleMatches = append(out.TitleMatches, us)
		}
	}

	matchedJob := make([]bool, len(jobs))
	matchedUsers := 0
	weighted := 0.0
	maxPossible := 0.0

	for i, us := range users {
		for j, js := range jobs {
			kind := matchNormalized(us, js)
			if kind == MatchNone {
				continue
			}

			pair := SkillPair{UserSkill: us, JobSkill: js, Title: isTitle[i]}
			w := exactWeight
			if kind == MatchExact {
				out.ExactMatches = append(out.ExactMatches, pair)
			} else {
				w = partialWeight
				out.PartialMatches = append(out.PartialMatches, pair)
			}
			maxPossible += w * titleMultiplier
			if isTitle[i] {
				w *= titleMultiplier
			} else {
				out.DescriptionMatches = append(out.DescriptionMatches, us)
			}
			weighted += w

			matchedJob[j] = true
			matchedUsers++
			break
		}
	}

	if len(out.ExactMatches)+len(out.PartialMatches)+len(out.TitleMatches) == 0 {
		out.MissingJobSkills = collectJobSkills(jobs, matchedJob, false)
		return out
	}

	if maxPossible > 0 {
		out.BaseMatch = weighted / maxPossible * 100
	}
	matchedJobCount := 0
	for _, m := range matchedJob {
		if m {
			matchedJobCount++
		}
	}
	out.Coverage = float64(matchedJobCount) / float64(max(1, len(jobs))) * 100
	out.Relevance = float64(matchedUsers) / float64(len(users)) * 100

	combined := out.BaseMatch*baseShare + out.Coverage*coverageShare + out.Relevance*relevanceShare

	titleRatio := float64(len(out.TitleMatches)) / float64(len(users))
	if len(out.TitleMatches) > 0 {
		combined = math.Min(combined+math.Min(titleRatio*maxTitleBonus, maxTitleBonus), 100)
	}
	if len(jobs) == 0 && len(out.TitleMatches) > 0 {
		combined = math.Min(titleRatio*100, titleOnlyMaxScore)
	}

	out.Percent = clampPercent(combined)
	out.MatchedJobSkills = collectJobSkills(jobs, matchedJob, true)
	out.MissingJobSkills = collectJobSkills(jobs, matchedJob, false)
	return out
}

// QualityLabel maps a percent to the label shown next to a job. A nil or
// non-positive percent has no label.
func QualityLabel(percent *int) string {
	if percent == nil || *percent <= 0 {
		return ""
	}
	p := *percent
	switch {
	case p >= 85:
		return "Best match"
	case p >= 70:
		return "Good match"
	case p >= 50:
		return "Fair match"
	default:
		return "Poor match"
	}
}

// titleRelated reports whether a normalized skill appears in the title, either
// directly or through a title word that contains it or is contained by it.
func titleRelated(skill, title string, words []string) bool {
	if strings.Contains(title, skill) {
		return true
	}
	for _, w := range words {
		if strings.Contains(w, skill) {
			return true
		}
		if len(w) >= minPartialLen && strings.Contains(skill, w) {
			return true
		}
	}
	return false
}

// normalizeSkills drops blank entries but keeps duplicates; duplicates count
// towards relevance the same way they were submitted.
func normalizeSkills(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if n := Normalize(it); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func collectJobSkills(jobs []string, matched []bool, want bool) []string {
	out := make([]string, 0, len(jobs))
	for i, js := range jobs {
		if matched[i] != want {
			continue
		}
		out = append(out, js)
	}
	return out
}

func clampPercent(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 100 {
		return 100
	}
	return int(math.Round(v))
}
