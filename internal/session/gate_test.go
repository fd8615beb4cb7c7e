package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGate_EmptyUsernameRejected(t *testing.T) {
	var g Gate
	calls := 0
	g.OnChange = func(bool) { calls++ }

	assert.False(t, g.SignIn(""))
	assert.False(t, g.SignedIn())
	assert.Zero(t, calls)
}

func TestGate_SignInAndOut(t *testing.T) {
	var g Gate
	var states []bool
	g.OnChange = func(in bool) { states = append(states, in) }

	assert.True(t, g.SignIn("ada@example.com"))
	assert.True(t, g.SignedIn())
	assert.Equal(t, "ada@example.com", g.Username())

	assert.True(t, g.SignIn("ada"))
	assert.Equal(t, "ada", g.Username())

	g.SignOut()
	g.SignOut()
	assert.False(t, g.SignedIn())
	assert.Equal(t, "ada", g.Username())
	assert.Equal(t, []bool{true, false}, states)
}

func TestCanSignIn(t *testing.T) {
	assert.False(t, CanSignIn(""))
	assert.True(t, CanSignIn(" "))
	assert.True(t, CanSignIn("x"))
}
