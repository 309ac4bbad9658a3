package matching

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
)

// Answer is one assessment answer as delivered by the backend. Only the
// related skills field is read, under either of its known spellings.
type Answer map[string]any

var relatedSkillsKeys = []string{"relatedSkills", "relatedskills"}

// SkillScores is a frequency map that remembers the order in which skills
// were first seen. That order is the tie-break for TopSkills.
type SkillScores struct {
	order  []string
	counts map[string]int
}

type SkillScore struct {
	Skill string `json:"skill"`
	Score int    `json:"score"`
}

func NewSkillScores() *SkillScores {
	return &SkillScores{counts: map[string]int{}}
}

func (s *SkillScores) Add(skill string, n int) {
	if s.counts == nil {
		s.counts = map[string]int{}
	}
	if _, ok := s.counts[skill]; !ok {
		s.order = append(s.order, skill)
	}
	s.counts[skill] += n
}

func (s *SkillScores) Get(skill string) int {
	if s == nil {
		return 0
	}
	return s.counts[skill]
}

func (s *SkillScores) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Skills returns skills in first-seen order.
func (s *SkillScores) Skills() []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *SkillScores) Map() map[string]int {
	out := make(map[string]int, s.Len())
	if s == nil {
		return out
	}
	for k, v := range s.counts {
		out[k] = v
	}
	return out
}

// MarshalJSON writes the scores as an object whose keys keep first-seen order.
func (s *SkillScores) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range s.Skills() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, _ := json.Marshal(s.counts[k])
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CalculateSkillScores counts how often each skill is referenced across the
// answers. Answers without a usable skills array contribute nothing.
func CalculateSkillScores(answers []Answer) *SkillScores {
	scores := NewSkillScores()
	for _, a := range answers {
		for _, skill := range relatedSkills(a) {
			scores.Add(skill, 1)
		}
	}
	return scores
}

// TopSkills returns the highest scoring skills, ties broken by first-seen
// order. A non-positive limit returns every skill.
func TopSkills(scores *SkillScores, limit int) []SkillScore {
	out := make([]SkillScore, 0, scores.Len())
	for _, k := range scores.Skills() {
		out = append(out, SkillScore{Skill: k, Score: scores.Get(k)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// DecodeAnswers parses a JSON array of answers. Anything that is not an array
// of objects yields the entries it could read, possibly none.
func DecodeAnswers(raw []byte) []Answer {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []Answer{}
	}
	out := make([]Answer, 0, len(items))
	for _, it := range items {
		var a Answer
		if err := json.Unmarshal(it, &a); err != nil || a == nil {
			continue
		}
		out = append(out, a)
	}
	return out
}

func relatedSkills(a Answer) []string {
	if a == nil {
		return nil
	}
	for _, key := range relatedSkillsKeys {
		v, ok := a[key]
		if !ok || v == nil {
			continue
		}
		return stringItems(v)
	}
	return nil
}

func stringItems(v any) []string {
	switch t := v.(type) {
	case []string:
		out := make([]string, 0, len(t))
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(t))
		for _, it := range t {
			s, ok := it.(string)
			if !ok {
				continue
			}
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
