package cli

import (
	"context"
	"fmt"
	"log"
)

// ListUsers prints all registered users, for picking assignees and project
// managers.
func (a *App) ListUsers(ctx context.Context) error {
	list, err := a.client.ListUsers(ctx)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	for _, u := range list {
		printlnFn(fmt.Sprintf("%s  %-20s  %-25s  %s", u.ID, u.Username, u.Name, u.Email))
	}
	return nil
}
