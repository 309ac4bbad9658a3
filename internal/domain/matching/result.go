package matching

import (
	"fmt"
	"math"
	"strconv"
)

const (
	skillsWeight   = 0.6
	expLevelWeight = 0.25
	industryWeight = 0.15
)

const (
	BadgeStrongSkills       = "Strong skills"
	BadgeIndustryExperience = "Industry experience"
	BadgeExperienceFit      = "Experience fit"
	BadgeRoleInterest       = "Role interest"
)

// MatchBucket is one scored dimension. Percent is nil when the job gives no
// signal for the dimension; callers must render that as "—", not 0%.
type MatchBucket struct {
	Percent *int           `json:"percent"`
	Reasons []string       `json:"reasons"`
	Details map[string]any `json:"details"`
}

type MatchResult struct {
	ExpLevel        MatchBucket `json:"exp_level"`
	Skills          MatchBucket `json:"skills"`
	Industry        MatchBucket `json:"industry"`
	OverallPercent  int         `json:"overall_percent"`
	Badges          []string    `json:"badges"`
	MissingCritical []string    `json:"missing_critical"`
}

// ComputeMatch scores a candidate against a structured job. It is a pure
// function of its inputs; nothing is cached or mutated.
func ComputeMatch(job StructuredJob, user UserMatchProfile) MatchResult {
	res := MatchResult{Badges: []string{}, MissingCritical: []string{}}

	var skillsMissing, expMissing []string
	res.Skills, skillsMissing = skillsBucket(job, user)
	res.ExpLevel, expMissing = expLevelBucket(job, user)
	res.Industry = industryBucket(job, user)

	res.MissingCritical = append(res.MissingCritical, skillsMissing...)
	res.MissingCritical = append(res.MissingCritical, expMissing...)

	res.OverallPercent = overallPercent(res)
	res.Badges = badges(res, job, user)
	return res
}

func newBucket() MatchBucket {
	return MatchBucket{Reasons: []string{}, Details: map[string]any{}}
}

func skillsBucket(job StructuredJob, user UserMatchProfile) (MatchBucket, []string) {
	b := newBucket()
	missing := []string{}

	required := NormalizeList(job.SkillsRequired)
	jobSkills := NormalizeList(concat(job.SkillsRequired, job.SkillsPreferred, job.TechStack))
	userSkills := NormalizeList(concat(user.UserSkills, user.TechStackExperience))

	for _, r := range required {
		if !anyMatch(userSkills, r) {
			missing = append(missing, r)
		}
	}

	userLangs := NormalizeList(user.Languages)
	for _, l := range NormalizeList(job.LanguagesRequired) {
		if !contains(userLangs, l) {
			missing = append(missing, "language:"+l)
		}
	}

	if len(jobSkills) == 0 {
		return b, missing
	}

	bd := CalculateMatchDetails(userSkills, jobSkills, job.RoleCategory)
	p := bd.Percent
	b.Percent = &p
	b.Reasons = append(b.Reasons, fmt.Sprintf("Matched %d of %d skills", len(bd.MatchedJobSkills), len(jobSkills)))
	if len(bd.TitleMatches) > 0 {
		b.Reasons = append(b.Reasons, "Skills relevant to the role category")
	}
	if n := len(missing); n > 0 {
		b.Reasons = append(b.Reasons, fmt.Sprintf("Missing %d required", n))
	}
	b.Details["matched"] = bd.MatchedJobSkills
	b.Details["missing"] = bd.MissingJobSkills
	b.Details["coverage"] = math.Round(bd.Coverage)
	b.Details["relevance"] = math.Round(bd.Relevance)
	return b, missing
}

func expLevelBucket(job StructuredJob, user UserMatchProfile) (MatchBucket, []string) {
	b := newBucket()
	missing := []string{}

	var parts []float64

	if job.Seniority != nil {
		jr, jok := job.Seniority.rank()
		ur, uok := user.Seniority.rank()
		if jok && uok {
			s := seniorityScore(ur - jr)
			parts = append(parts, s)
			b.Details["seniority"] = s
			b.Reasons = append(b.Reasons, fmt.Sprintf("Seniority %s for a %s role", user.Seniority, *job.Seniority))
		}
	}

	if job.MinYearsExperience != nil && user.YearsExperienceTotal != nil {
		minYears := sanitizeYears(*job.MinYearsExperience)
		have := sanitizeYears(*user.YearsExperienceTotal)
		s := 100.0
		if minYears > 0 {
			s = math.Min(have/minYears, 1) * 100
			if have < minYears {
				missing = append(missing, fmt.Sprintf("%s+ years experience", formatYears(minYears)))
			}
		}
		parts = append(parts, s)
		b.Details["years"] = math.Round(s)
		b.Reasons = append(b.Reasons, fmt.Sprintf("%s of %s required years", formatYears(have), formatYears(minYears)))
	}

	if len(parts) == 0 {
		return b, missing
	}
	sum := 0.0
	for _, v := range parts {
		sum += v
	}
	p := clampPercent(sum / float64(len(parts)))
	b.Percent = &p
	return b, missing
}

func industryBucket(job StructuredJob, user UserMatchProfile) MatchBucket {
	b := newBucket()
	r := ComputeIndustryMatchPercent(job.IndustryTags, user.YearsExperienceByIndustry)
	b.Percent = r.Percent
	if r.Percent == nil {
		return b
	}
	for _, m := range r.MatchedExact {
		b.Reasons = append(b.Reasons, fmt.Sprintf("%s years in %s", formatYears(m.Years), m.Tag))
	}
	b.Details["matched"] = r.MatchedExact
	b.Details["missing"] = r.Missing
	return b
}

func overallPercent(res MatchResult) int {
	total, weights := 0.0, 0.0
	add := func(b MatchBucket, w float64) {
		if b.Percent == nil {
			return
		}
		total += float64(*b.Percent) * w
		weights += w
	}
	add(res.Skills, skillsWeight)
	add(res.ExpLevel, expLevelWeight)
	add(res.Industry, industryWeight)
	if weights == 0 {
		return 0
	}
	return clampPercent(total / weights)
}

func badges(res MatchResult, job StructuredJob, user UserMatchProfile) []string {
	out := []string{}
	overall := res.OverallPercent
	if l := QualityLabel(&overall); l != "" {
		out = append(out, l)
	}
	if res.Skills.Percent != nil && *res.Skills.Percent >= 85 {
		out = append(out, BadgeStrongSkills)
	}
	if m, ok := res.Industry.Details["matched"].([]IndustryTagYears); ok && len(m) > 0 {
		out = append(out, BadgeIndustryExperience)
	}
	if res.ExpLevel.Percent != nil && *res.ExpLevel.Percent == 100 {
		out = append(out, BadgeExperienceFit)
	}
	if job.RoleCategory != "" && anyMatch(NormalizeList(user.RoleInterests), Normalize(job.RoleCategory)) {
		out = append(out, BadgeRoleInterest)
	}
	return out
}

func seniorityScore(diff int) float64 {
	switch {
	case diff >= 0:
		return 100
	case diff == -1:
		return 60
	default:
		return 20
	}
}

func sanitizeYears(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func formatYears(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

func anyMatch(normalized []string, target string) bool {
	for _, s := range normalized {
		if matchNormalized(s, target) != MatchNone {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func concat(lists ...[]string) []string {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	out := make([]string, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
