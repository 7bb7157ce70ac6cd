package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/dhruvkp2310/resume-pilot/internal/dtos"
)

// Providers answer in loosely structured text. The parsers here turn that
// into typed values and fail with ErrMalformedResponse instead of letting a
// raw decode error (or a half-decoded object) reach the handlers.

var (
	listItemRe    = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)]|[a-zA-Z][.)]|\(\d+\)|\([a-zA-Z]\))\s+(.+)$`)
	fencedJSONRe  = regexp.MustCompile("(?s)```json\\s*\\n(.*?)\\n\\s*```")
	fencedBlockRe = regexp.MustCompile("(?s)```\\s*\\n?(.*?)```")
)

// ParseSkillList extracts a flat skill list from a bulleted or numbered
// response. Non-list continuation lines are glued onto the previous item.
// When no list markers are found at all, the content is split on commas and
// semicolons as a last resort.
func ParseSkillList(content string) []string {
	var skills []string
	for _, line := range strings.Split(content, "\n") {
		if m := listItemRe.FindStringSubmatch(line); m != nil {
			skills = append(skills, strings.TrimSpace(m[1]))
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.Contains(trimmed, ":") && len(skills) > 0 {
			skills[len(skills)-1] += " " + trimmed
		}
	}
	if len(skills) > 0 {
		return skills
	}

	var out []string
	for _, part := range strings.FieldsFunc(content, func(r rune) bool { return r == ',' || r == ';' }) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// extractJSON strips an optional markdown code fence around the payload.
func extractJSON(content string) string {
	if m := fencedJSONRe.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := fencedBlockRe.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(content)
}

// DecodeMatches parses a provider match list and validates its shape: every
// entry must carry an id and a match score within 0..100.
func DecodeMatches(content string) ([]dtos.MatchResult, error) {
	var matches []dtos.MatchResult
	if err := json.Unmarshal([]byte(extractJSON(content)), &matches); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	for i, m := range matches {
		if m.JobID == "" && m.ResumeID == "" {
			return nil, fmt.Errorf("%w: match %d has no job or resume id", ErrMalformedResponse, i)
		}
		if m.MatchScore < 0 || m.MatchScore > 100 {
			return nil, fmt.Errorf("%w: match %d score %v out of range", ErrMalformedResponse, i, m.MatchScore)
		}
	}
	return matches, nil
}

// DecodeOptimization parses an optimize-resume payload. An object with none
// of the expected sections set is treated as malformed.
func DecodeOptimization(content string) (*dtos.OptimizationResult, error) {
	var result dtos.OptimizationResult
	if err := json.Unmarshal([]byte(extractJSON(content)), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if result.Summary == "" && len(result.Skills) == 0 && len(result.Keywords) == 0 &&
		len(result.Experience) == 0 && len(result.Education) == 0 && len(result.GeneralTips) == 0 {
		return nil, fmt.Errorf("%w: optimization object is empty", ErrMalformedResponse)
	}
	return &result, nil
}

// DecodeInsights parses the generate-insights payload: a JSON array of
// {content, category} objects. Entries with an unknown category are
// rejected so the suggestion inbox only ever stores valid categories.
func DecodeInsights(content string) ([]dtos.Insight, error) {
	var insights []dtos.Insight
	if err := json.Unmarshal([]byte(extractJSON(content)), &insights); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	for i, ins := range insights {
		if ins.Content == "" {
			return nil, fmt.Errorf("%w: insight %d has no content", ErrMalformedResponse, i)
		}
		switch ins.Category {
		case "Skills", "JobCategory", "ResumeOptimization", "ApplicationStrategy":
		default:
			return nil, fmt.Errorf("%w: insight %d has unknown category %q", ErrMalformedResponse, i, ins.Category)
		}
	}
	return insights, nil
}
