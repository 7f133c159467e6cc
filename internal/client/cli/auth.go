package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dmitrijs2005/tracker/internal/client/session"
	"github.com/dmitrijs2005/tracker/internal/common"
	"github.com/dmitrijs2005/tracker/internal/cryptox"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

const saltSize = 16

// Register prompts for a username, name, email, optional roles and a
// password, and creates the account. The password never leaves the process:
// only a salted verifier derived from it is sent to the server. The password
// byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	rolesLine, err := getSimpleText(a.reader, "Enter roles (comma-separated, empty for none)", os.Stdout)
	if err != nil {
		return err
	}
	var roles []string
	for _, r := range strings.Split(rolesLine, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	salt := common.GenerateRandByteArray(saltSize)
	key := cryptox.DeriveCredentialKey(password, salt)
	verifier := cryptox.MakeVerifier(key)

	if err := a.client.Register(ctx, username, name, email, salt, verifier, roles); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Login runs the bootstrapper's sign-in sequence: silent first when a cached
// account exists, falling back to the interactive credential prompt.
func (a *App) Login(ctx context.Context) error {
	if err := a.bootstrapper.Login(ctx); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	state := a.session.Snapshot()
	log.Printf("Login successful")
	printlnFn(fmt.Sprintf("Signed in as %s (create projects: %t, complete tasks: %t)",
		displayUsername(state), state.Permissions.CanCreateProject, state.Permissions.CanCompleteTask))
	return nil
}

// displayUsername names the signed-in user. A session can be authenticated
// with no account record if the server omits it from the grant.
func displayUsername(state session.State) string {
	if state.User == nil {
		return "(unknown)"
	}
	return state.User.Username
}

// Logout revokes the cached credential and clears the session. The session
// is cleared even when revocation fails.
func (a *App) Logout(ctx context.Context) error {
	a.bootstrapper.Logout(ctx)
	printlnFn("Logged out")
	return nil
}
