package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	allow(view string) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ListProjects(ctx context.Context, args []string) error
	CreateProject(ctx context.Context) error
	ListTasks(ctx context.Context, args []string) error
	SetTaskStatus(ctx context.Context, args []string) error
	AssignTask(ctx context.Context, args []string) error
	AddComment(ctx context.Context, args []string) error
	ListComments(ctx context.Context, args []string) error
	ListActivities(ctx context.Context, args []string) error
	ListNotifications(ctx context.Context, args []string) error
	MarkNotificationRead(ctx context.Context, args []string) error
	AttachmentUploadURL(ctx context.Context, args []string) error
	AttachmentDownloadURL(ctx context.Context, args []string) error
	ListUsers(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the tracker CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Every command bound to a protected view asks the guard (via a.allow) before
// running; the guard decides fresh on every navigation, so a session or
// configuration change takes effect on the next command.
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("trk> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: projects, newproject, tasks, status, assign, comment, comments, activity, notifications, read, upload, download, users, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "projects":
			if a.allow(viewDashboard) {
				_ = a.ListProjects(ctx, args)
			}

		case "newproject":
			if a.allow(viewDashboard) {
				_ = a.CreateProject(ctx)
			}

		case "tasks":
			if a.allow(viewProjectTasks) {
				_ = a.ListTasks(ctx, args)
			}

		case "status":
			if a.allow(viewProjectTasks) {
				_ = a.SetTaskStatus(ctx, args)
			}

		case "assign":
			if a.allow(viewProjectTasks) {
				_ = a.AssignTask(ctx, args)
			}

		case "comment":
			if a.allow(viewProjectTasks) {
				_ = a.AddComment(ctx, args)
			}

		case "comments":
			if a.allow(viewProjectTasks) {
				_ = a.ListComments(ctx, args)
			}

		case "activity":
			if a.allow(viewProjectTasks) {
				_ = a.ListActivities(ctx, args)
			}

		case "notifications":
			if a.allow(viewNotifications) {
				_ = a.ListNotifications(ctx, args)
			}

		case "read":
			if a.allow(viewNotifications) {
				_ = a.MarkNotificationRead(ctx, args)
			}

		case "upload":
			if a.allow(viewProjectTasks) {
				_ = a.AttachmentUploadURL(ctx, args)
			}

		case "download":
			if a.allow(viewProjectTasks) {
				_ = a.AttachmentDownloadURL(ctx, args)
			}

		case "users":
			if a.allow(viewDashboard) {
				_ = a.ListUsers(ctx)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
