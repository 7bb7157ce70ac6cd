package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkillListBullets(t *testing.T) {
	content := "- Go\n- PostgreSQL\n* Docker\n• Kubernetes"
	assert.Equal(t, []string{"Go", "PostgreSQL", "Docker", "Kubernetes"}, ParseSkillList(content))
}

func TestParseSkillListNumbered(t *testing.T) {
	content := "1. Distributed systems\n2) gRPC\n(3) Terraform\na) CI/CD"
	assert.Equal(t, []string{"Distributed systems", "gRPC", "Terraform", "CI/CD"}, ParseSkillList(content))
}

func TestParseSkillListContinuationLines(t *testing.T) {
	content := "1. Event-driven\narchitecture\n2. SQL"
	assert.Equal(t, []string{"Event-driven architecture", "SQL"}, ParseSkillList(content))
}

func TestParseSkillListIgnoresPreamble(t *testing.T) {
	content := "Here are the skills I suggest:\n- REST APIs\n- Message queues"
	assert.Equal(t, []string{"REST APIs", "Message queues"}, ParseSkillList(content))
}

func TestParseSkillListCommaFallback(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL", "Redis"}, ParseSkillList("Go, SQL; Redis"))
}

func TestParseSkillListEmpty(t *testing.T) {
	assert.Empty(t, ParseSkillList(""))
}

func TestDecodeMatchesPlainJSON(t *testing.T) {
	matches, err := DecodeMatches(`[{"jobId":"1","matchScore":85,"reasons":["skills overlap"],"missingSkills":["Rust"]}]`)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "1", matches[0].JobID)
	assert.Equal(t, 85.0, matches[0].MatchScore)
	assert.Equal(t, []string{"skills overlap"}, matches[0].Reasons)
}

func TestDecodeMatchesFencedJSON(t *testing.T) {
	content := "```json\n[{\"resumeId\":\"4\",\"matchScore\":70}]\n```"
	matches, err := DecodeMatches(content)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "4", matches[0].ResumeID)
}

func TestDecodeMatchesBareFence(t *testing.T) {
	content := "```\n[{\"jobId\":\"7\",\"matchScore\":50}]```"
	matches, err := DecodeMatches(content)
	require.NoError(t, err)
	require.Len(t, matches, 1)
}

func TestDecodeMatchesMissingID(t *testing.T) {
	_, err := DecodeMatches(`[{"matchScore":85}]`)
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestDecodeMatchesScoreOutOfRange(t *testing.T) {
	_, err := DecodeMatches(`[{"jobId":"1","matchScore":140}]`)
	require.ErrorIs(t, err, ErrMalformedResponse)

	_, err = DecodeMatches(`[{"jobId":"1","matchScore":-5}]`)
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestDecodeMatchesNotJSON(t *testing.T) {
	_, err := DecodeMatches("I could not produce a match list, sorry.")
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestDecodeOptimization(t *testing.T) {
	result, err := DecodeOptimization("```json\n{\"summary\":\"Stronger summary\",\"skills\":[\"Go\"],\"keywords\":[\"backend\"]}\n```")
	require.NoError(t, err)
	assert.Equal(t, "Stronger summary", result.Summary)
	assert.Equal(t, []string{"Go"}, result.Skills)
}

func TestDecodeOptimizationEmptyObject(t *testing.T) {
	_, err := DecodeOptimization(`{}`)
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestDecodeInsights(t *testing.T) {
	insights, err := DecodeInsights(`[{"content":"Add cloud skills","category":"Skills"},{"content":"Target mid-size firms","category":"ApplicationStrategy"}]`)
	require.NoError(t, err)
	require.Len(t, insights, 2)
	assert.Equal(t, "Skills", insights[0].Category)
}

func TestDecodeInsightsUnknownCategory(t *testing.T) {
	_, err := DecodeInsights(`[{"content":"x","category":"Gardening"}]`)
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestDecodeInsightsMissingContent(t *testing.T) {
	_, err := DecodeInsights(`[{"category":"Skills"}]`)
	require.ErrorIs(t, err, ErrMalformedResponse)
}
