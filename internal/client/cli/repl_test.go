package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn    bool
	configError bool

	calls   []string
	blocked []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) allow(view string) bool {
	if f.configError || !f.loggedIn {
		f.blocked = append(f.blocked, view)
		return false
	}
	return true
}

func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) ListProjects(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "projects")
	return nil
}
func (f *fakeExec) CreateProject(ctx context.Context) error {
	f.calls = append(f.calls, "newproject")
	return nil
}
func (f *fakeExec) ListTasks(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "tasks")
	return nil
}
func (f *fakeExec) SetTaskStatus(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "status")
	return nil
}
func (f *fakeExec) AssignTask(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "assign")
	return nil
}
func (f *fakeExec) AddComment(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "comment")
	return nil
}
func (f *fakeExec) ListComments(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "comments")
	return nil
}
func (f *fakeExec) ListActivities(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "activity")
	return nil
}
func (f *fakeExec) ListNotifications(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "notifications")
	return nil
}
func (f *fakeExec) MarkNotificationRead(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "read")
	return nil
}
func (f *fakeExec) AttachmentUploadURL(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "upload")
	return nil
}
func (f *fakeExec) AttachmentDownloadURL(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "download")
	return nil
}
func (f *fakeExec) ListUsers(ctx context.Context) error {
	f.calls = append(f.calls, "users")
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"projects",
		"tasks p1",
		"status t1 in-progress",
		"notifications unread",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "projects", "tasks", "status", "notifications"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_GuardBlocksProtectedCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("projects\ntasks p1\nnotifications\nquit\n")
	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	wantBlocked := []string{"dashboard", "project-tasks", "notifications"}
	if len(exec.blocked) != len(wantBlocked) {
		t.Fatalf("blocked views mismatch: got %v, want %v", exec.blocked, wantBlocked)
	}
	for i, v := range wantBlocked {
		if exec.blocked[i] != v {
			t.Fatalf("blocked views mismatch: got %v, want %v", exec.blocked, wantBlocked)
		}
	}
}

func TestRunREPL_ConfigErrorBlocksEvenWhenLoggedIn(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("projects\nexit\n")
	exec := &fakeExec{loggedIn: true, configError: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if len(exec.blocked) != 1 || exec.blocked[0] != "dashboard" {
		t.Fatalf("blocked views mismatch: %v", exec.blocked)
	}
}

func TestRunREPL_EmptyLinesAndQuit(t *testing.T) {
	silencePrintln(t)

	input := strings.NewReader("\n\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
