package matching

import (
	"math"
	"strings"
)

const (
	industryFullBonusYears = 5.0
	industryMaxBonus       = 0.2
)

type IndustryTagYears struct {
	Tag   string  `json:"tag"`
	Years float64 `json:"years"`
}

type IndustryMatchResult struct {
	Percent      *int               `json:"percent"`
	MatchedExact []IndustryTagYears `json:"matched_exact"`
	Missing      []string           `json:"missing"`
}

// ParseJobIndustryTags splits a comma separated tag column into normalized,
// de-duplicated tags. A nil value yields an empty slice.
func ParseJobIndustryTags(tags *string) []string {
	if tags == nil {
		return []string{}
	}
	return NormalizeList(strings.Split(*tags, ","))
}

// ComputeIndustryMatchPercent compares job tags against the candidate's years
// of experience per industry. Tags match only when equal after normalization.
// Percent is nil when the job has no usable tags.
func ComputeIndustryMatchPercent(jobTags []string, userIndustryYears map[string]float64) IndustryMatchResult {
	out := IndustryMatchResult{
		MatchedExact: []IndustryTagYears{},
		Missing:      []string{},
	}

	tags := NormalizeList(jobTags)
	if len(tags) == 0 {
		return out
	}

	years := NormalizeIndustryYears(userIndustryYears)

	points := 0.0
	for _, tag := range tags {
		y := years[tag]
		if y <= 0 {
			out.Missing = append(out.Missing, tag)
			continue
		}
		bonus := clampFloat(y/industryFullBonusYears, 0, 1) * industryMaxBonus
		points += clampFloat(1.0+bonus, 0, 1)
		out.MatchedExact = append(out.MatchedExact, IndustryTagYears{Tag: tag, Years: y})
	}

	p := int(math.Round(points / float64(len(tags)) * 100))
	out.Percent = &p
	return out
}

// NormalizeIndustryYears normalizes keys and drops non-finite or negative
// values. Keys that collide after normalization keep the largest value.
func NormalizeIndustryYears(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		k = Normalize(k)
		if k == "" || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			continue
		}
		if cur, ok := out[k]; !ok || v > cur {
			out[k] = v
		}
	}
	return out
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
