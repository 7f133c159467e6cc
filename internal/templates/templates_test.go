package templates

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/tracker/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandProjectTasks(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tasks := ExpandProjectTasks("p1", start)
	require.Len(t, tasks, 3)

	for _, task := range tasks {
		assert.Equal(t, "p1", task.ProjectID)
		assert.Equal(t, models.TaskStatusPending, task.Status)
		assert.Empty(t, task.AssignedToID)
		assert.NotEmpty(t, task.ID)
	}

	// Back-to-back scheduling: kickoff 1 day, requirements 5 days, then the
	// recurring weekly meeting.
	assert.Equal(t, start, tasks[0].StartDate)
	assert.Equal(t, start.AddDate(0, 0, 1), tasks[0].EndDate)

	assert.Equal(t, tasks[0].EndDate.AddDate(0, 0, 1), tasks[1].StartDate)
	assert.Equal(t, tasks[1].StartDate.AddDate(0, 0, 5), tasks[1].EndDate)

	assert.Equal(t, tasks[1].EndDate.AddDate(0, 0, 1), tasks[2].StartDate)
	assert.True(t, tasks[2].IsRecurring)
	assert.Equal(t, models.IntervalWeekly, tasks[2].RecurringInterval)
}

func TestExpandProjectTasks_RecurringInvariant(t *testing.T) {
	tasks := ExpandProjectTasks("p1", time.Now())
	for _, task := range tasks {
		if !task.IsRecurring {
			assert.Empty(t, task.RecurringInterval)
		} else {
			assert.NotEmpty(t, task.RecurringInterval)
		}
	}
}

func TestExpandProjectTasks_UniqueIDs(t *testing.T) {
	tasks := ExpandProjectTasks("p1", time.Now())
	seen := map[string]struct{}{}
	for _, task := range tasks {
		_, dup := seen[task.ID]
		assert.False(t, dup)
		seen[task.ID] = struct{}{}
	}
}
