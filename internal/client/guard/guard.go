// Package guard gates navigation to protected views on session state and
// configuration validity.
package guard

import (
	"github.com/dmitrijs2005/tracker/internal/client/session"
)

type Decision int

const (
	// DecisionAllow admits the navigation.
	DecisionAllow Decision = iota
	// DecisionRedirectLogin sends the user to the login entry point.
	DecisionRedirectLogin
	// DecisionConfigError renders the blocking configuration-error state.
	// It takes precedence over everything, including an authenticated
	// session.
	DecisionConfigError
)

func (d Decision) String() string {
	switch d {
	case DecisionAllow:
		return "allow"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionConfigError:
		return "config-error"
	}
	return "unknown"
}

// Guard decides access per navigation. Decisions are never cached: the
// session can change between navigations, so every call re-reads it.
type Guard struct {
	session     *session.Store
	configCheck func() error
}

// New builds a Guard over the session store and a configuration validity
// check. configCheck returning a non-nil error marks the configuration
// invalid.
func New(s *session.Store, configCheck func() error) *Guard {
	return &Guard{session: s, configCheck: configCheck}
}

// Decide evaluates access for a navigation to the named view.
func (g *Guard) Decide(view string) Decision {
	if g.configCheck != nil && g.configCheck() != nil {
		return DecisionConfigError
	}

	if g.session.Snapshot().Authenticated {
		return DecisionAllow
	}

	return DecisionRedirectLogin
}
