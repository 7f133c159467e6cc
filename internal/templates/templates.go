// Package templates holds the built-in project phase templates and expands
// them into the initial task list when a project is created.
package templates

import (
	"time"

	"github.com/dmitrijs2005/tracker/internal/server/models"
	"github.com/google/uuid"
)

// TaskTemplate describes one task inside a phase. Duration is in days.
type TaskTemplate struct {
	Name              string
	Description       string
	Duration          int
	Order             int
	IsRecurring       bool
	RecurringInterval string
}

// PhaseTemplate groups task templates into an ordered project phase.
type PhaseTemplate struct {
	Name  string
	Order int
	Tasks []TaskTemplate
}

// ProjectPhases is the default template set applied to every new project.
var ProjectPhases = []PhaseTemplate{
	{
		Name:  "Planning",
		Order: 1,
		Tasks: []TaskTemplate{
			{
				Name:        "Project Kickoff",
				Description: "Initial project meeting with stakeholders",
				Duration:    1,
				Order:       1,
			},
			{
				Name:        "Requirements Gathering",
				Description: "Document project requirements",
				Duration:    5,
				Order:       2,
			},
		},
	},
	{
		Name:  "Execution",
		Order: 2,
		Tasks: []TaskTemplate{
			{
				Name:              "Weekly Status Meeting",
				Description:       "Team status update",
				Duration:          1,
				Order:             1,
				IsRecurring:       true,
				RecurringInterval: models.IntervalWeekly,
			},
		},
	},
}

// ExpandProjectTasks turns the template set into concrete pending tasks for
// the given project. Tasks are scheduled back to back starting at startDate:
// each task ends Duration days after it starts and the next one starts the
// day after that.
func ExpandProjectTasks(projectID string, startDate time.Time) []*models.Task {
	var tasks []*models.Task
	current := startDate

	for _, phase := range ProjectPhases {
		for _, tpl := range phase.Tasks {
			end := current.AddDate(0, 0, tpl.Duration)

			tasks = append(tasks, &models.Task{
				ID:                uuid.NewString(),
				ProjectID:         projectID,
				Name:              tpl.Name,
				Description:       tpl.Description,
				Status:            models.TaskStatusPending,
				StartDate:         current,
				EndDate:           end,
				IsRecurring:       tpl.IsRecurring,
				RecurringInterval: tpl.RecurringInterval,
			})

			current = end.AddDate(0, 0, 1)
		}
	}

	return tasks
}
