package repository

import (
	"strings"
	"testing"

	"jobboard/internal/domain/job"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListQuery_Defaults(t *testing.T) {
	query, args := BuildListQuery(job.ListFilter{})

	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY j.posted_at ASC")
	assert.Contains(t, query, "LIMIT $1 OFFSET $2")
	require.Len(t, args, 2)
	assert.Equal(t, 20, args[0])
	assert.Equal(t, 0, args[1])
}

func TestBuildListQuery_ActiveOnly(t *testing.T) {
	query, args := BuildListQuery(job.ListFilter{ActiveOnly: true})

	assert.Contains(t, query, "WHERE j.is_active")
	assert.Len(t, args, 2)
}

func TestBuildListQuery_AllFilters(t *testing.T) {
	creator := uuid.New()
	query, args := BuildListQuery(job.ListFilter{
		ActiveOnly: true,
		CreatedBy:  &creator,
		Location:   "Berlin",
		JobType:    job.TypeContract,
		Keyword:    "engineer",
		OrderBy:    job.OrderTitle,
		Descending: true,
		Limit:      10,
		Offset:     30,
	})

	assert.Contains(t, query, "j.is_active")
	assert.Contains(t, query, "j.created_by = $1")
	assert.Contains(t, query, "j.location ILIKE '%' || $2 || '%'")
	assert.Contains(t, query, "j.job_type = $3")
	assert.Contains(t, query, "c.name ILIKE '%' || $4 || '%'")
	assert.Contains(t, query, "ORDER BY j.title DESC")
	assert.Contains(t, query, "LIMIT $5 OFFSET $6")

	require.Len(t, args, 6)
	assert.Equal(t, creator, args[0])
	assert.Equal(t, "Berlin", args[1])
	assert.Equal(t, job.TypeContract, args[2])
	assert.Equal(t, "engineer", args[3])
	assert.Equal(t, 10, args[4])
	assert.Equal(t, 30, args[5])
}

func TestBuildListQuery_KeywordSpansTitleDescriptionCompany(t *testing.T) {
	query, args := BuildListQuery(job.ListFilter{Keyword: "go"})

	require.Len(t, args, 3)
	assert.Equal(t, "go", args[0])
	// one bind parameter reused across all three columns
	assert.Equal(t, 3, strings.Count(query, "$1"))
	assert.Contains(t, query, "j.title ILIKE")
	assert.Contains(t, query, "j.description ILIKE")
	assert.Contains(t, query, "c.name ILIKE")
}

func TestBuildListQuery_ConditionsAndJoined(t *testing.T) {
	query, _ := BuildListQuery(job.ListFilter{ActiveOnly: true, Location: "Berlin"})

	where := query[strings.Index(query, "WHERE"):]
	assert.Contains(t, where, "j.is_active AND j.location ILIKE")
}
