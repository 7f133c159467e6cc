package guard

import (
	"fmt"
	"testing"

	"github.com/dmitrijs2005/tracker/internal/client/models"
	"github.com/dmitrijs2005/tracker/internal/client/session"
	"github.com/dmitrijs2005/tracker/internal/common"
	"github.com/stretchr/testify/assert"
)

func validConfig() error { return nil }

func brokenConfig() error {
	return fmt.Errorf("%w: endpoint not configured", common.ErrConfiguration)
}

func TestDecide_Unauthenticated(t *testing.T) {
	g := New(session.NewStore(), validConfig)
	assert.Equal(t, DecisionRedirectLogin, g.Decide("dashboard"))
}

func TestDecide_Authenticated(t *testing.T) {
	store := session.NewStore()
	store.Set(&models.User{ID: "u1"}, nil)

	g := New(store, validConfig)
	assert.Equal(t, DecisionAllow, g.Decide("dashboard"))
}

func TestDecide_ConfigErrorTakesPrecedence(t *testing.T) {
	store := session.NewStore()
	store.Set(&models.User{ID: "u1"}, []string{"Operations_Manager"})

	g := New(store, brokenConfig)
	assert.Equal(t, DecisionConfigError, g.Decide("dashboard"))
	assert.Equal(t, DecisionConfigError, g.Decide("project-tasks"))
}

func TestDecide_ReEvaluatesOnEveryNavigation(t *testing.T) {
	store := session.NewStore()
	g := New(store, validConfig)

	assert.Equal(t, DecisionRedirectLogin, g.Decide("dashboard"))

	store.Set(&models.User{ID: "u1"}, nil)
	assert.Equal(t, DecisionAllow, g.Decide("dashboard"))

	store.Clear()
	assert.Equal(t, DecisionRedirectLogin, g.Decide("dashboard"))
}
