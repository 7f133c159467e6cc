package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/dmitrijs2005/tracker/internal/client/models"
	"github.com/dmitrijs2005/tracker/internal/common"
)

// ListTasks prints the tasks of a project.
//
// Usage: tasks <projectID>
func (a *App) ListTasks(ctx context.Context, args []string) error {
	if len(args) < 1 {
		printlnFn("Usage: tasks <projectID>")
		return nil
	}

	list, err := a.taskService.ListByProject(ctx, args[0])
	if err != nil {
		log.Println(err.Error())
		return err
	}

	now := time.Now()
	for _, t := range list {
		assignee := "-"
		if t.AssignedTo != nil {
			assignee = t.AssignedTo.Username
		}
		line := fmt.Sprintf("%s  %-30s  %-14s  %s", t.ID, t.Name, t.Status, assignee)
		if t.IsRecurring {
			line += "  next: " + models.NextOccurrence(t.StartDate, t.RecurringInterval, now).Format(time.DateOnly)
		}
		printlnFn(line)
	}
	return nil
}

// SetTaskStatus moves a task to a new status.
//
// Usage: status <taskID> <pending|in-progress|pending-review|completed>
func (a *App) SetTaskStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: status <taskID> <status>")
		return nil
	}
	taskID, newStatus := args[0], args[1]

	task := &models.Task{ID: taskID}
	if err := a.taskService.AttemptTransition(ctx, task, newStatus); err != nil {
		switch {
		case errors.Is(err, common.ErrAuthorization):
			printlnFn("You are not allowed to complete tasks")
		case errors.Is(err, common.ErrPersistence):
			printlnFn("Status change was not saved:", err.Error())
		default:
			log.Println(err.Error())
		}
		return err
	}

	printlnFn(fmt.Sprintf("Task %s is now %s", task.ID, task.Status))
	return nil
}

// AssignTask sets a task's assignee.
//
// Usage: assign <taskID> <userID>
func (a *App) AssignTask(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: assign <taskID> <userID>")
		return nil
	}

	task := &models.Task{ID: args[0]}
	if err := a.taskService.Assign(ctx, task, args[1]); err != nil {
		log.Println(err.Error())
		return err
	}

	printlnFn("Task", task.ID, "assigned")
	return nil
}

// AddComment adds a comment to a task.
//
// Usage: comment <taskID> <text...>
func (a *App) AddComment(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: comment <taskID> <text>")
		return nil
	}

	comment, err := a.taskService.AddComment(ctx, args[0], strings.Join(args[1:], " "))
	if err != nil {
		log.Println(err.Error())
		return err
	}

	printlnFn("Comment", comment.ID, "added")
	return nil
}

// ListComments prints a task's comments.
//
// Usage: comments <taskID>
func (a *App) ListComments(ctx context.Context, args []string) error {
	if len(args) < 1 {
		printlnFn("Usage: comments <taskID>")
		return nil
	}

	list, err := a.taskService.ListComments(ctx, args[0])
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, c := range list {
		printlnFn(fmt.Sprintf("[%s] %s: %s", c.CreatedAt.Format(time.RFC3339), c.UserID, c.Content))
	}
	return nil
}

// ListActivities prints a task's activity log.
//
// Usage: activity <taskID>
func (a *App) ListActivities(ctx context.Context, args []string) error {
	if len(args) < 1 {
		printlnFn("Usage: activity <taskID>")
		return nil
	}

	list, err := a.taskService.ListActivities(ctx, args[0])
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, item := range list {
		printlnFn(fmt.Sprintf("[%s] %-13s %s", item.CreatedAt.Format(time.RFC3339), item.Type, item.Description))
	}
	return nil
}
