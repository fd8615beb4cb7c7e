package session

import "log"

// Gate holds the signed-in state of the app. Any non-empty username is
// accepted; there is no credential check.
type Gate struct {
	username string
	signedIn bool

	// OnChange is called after the signed-in state flips.
	OnChange func(signedIn bool)
}

// CanSignIn reports whether username would be accepted by SignIn.
func CanSignIn(username string) bool { return username != "" }

// SignIn signs in as username and reports success.
func (g *Gate) SignIn(username string) bool {
	if !CanSignIn(username) {
		return false
	}
	g.username = username
	if !g.signedIn {
		g.signedIn = true
		log.Printf("[SESSION] Signed in as %q", username)
		g.notify()
	}
	return true
}

// SignOut returns to the sign-in screen. The last username is kept so the
// entry can be prefilled.
func (g *Gate) SignOut() {
	if !g.signedIn {
		return
	}
	g.signedIn = false
	log.Printf("[SESSION] %q signed out", g.username)
	g.notify()
}

func (g *Gate) SignedIn() bool   { return g.signedIn }
func (g *Gate) Username() string { return g.username }

func (g *Gate) notify() {
	if g.OnChange != nil {
		g.OnChange(g.signedIn)
	}
}
