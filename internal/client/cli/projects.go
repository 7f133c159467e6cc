package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dmitrijs2005/tracker/internal/common"
)

// ListProjects prints the project list, optionally filtered.
//
// Usage: projects [search] [status]
func (a *App) ListProjects(ctx context.Context, args []string) error {
	var search, status string
	if len(args) > 0 {
		search = args[0]
	}
	if len(args) > 1 {
		status = args[1]
	}

	list, err := a.projService.List(ctx, search, status)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, p := range list {
		printlnFn(fmt.Sprintf("%s  %-30s  %-10s  %3d%%  %s .. %s",
			p.ID, p.Name, p.Status, p.Progress,
			p.StartDate.Format(time.DateOnly), p.EndDate.Format(time.DateOnly)))
	}
	return nil
}

// CreateProject interactively collects the project fields and creates the
// project. Requires the project managers role.
func (a *App) CreateProject(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Project name", os.Stdout)
	if err != nil {
		return err
	}

	startDate, err := a.getDate("Start date (YYYY-MM-DD)")
	if err != nil {
		return err
	}

	endDate, err := a.getDate("End date (YYYY-MM-DD)")
	if err != nil {
		return err
	}

	managerID, err := getSimpleText(a.reader, "Project manager user ID", os.Stdout)
	if err != nil {
		return err
	}

	project, err := a.projService.Create(ctx, name, startDate, endDate, managerID)
	if err != nil {
		if errors.Is(err, common.ErrAuthorization) {
			printlnFn("You are not allowed to create projects")
			return err
		}
		log.Println(err.Error())
		return err
	}

	printlnFn("Created project", project.ID)
	return nil
}

func (a *App) getDate(prompt string) (time.Time, error) {
	s, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return time.Time{}, err
	}
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		printlnFn("Invalid date:", s)
		return time.Time{}, err
	}
	return d, nil
}
