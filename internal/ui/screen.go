package ui

// Screen identifies which page of the app is active.
type Screen int

const (
	ScreenLanding Screen = iota
	ScreenLogin
	ScreenSignUp
	ScreenDashboard
	ScreenPrep
	ScreenTest
	ScreenFeedback
)

func (s Screen) String() string {
	switch s {
	case ScreenLanding:
		return "landing"
	case ScreenLogin:
		return "login"
	case ScreenSignUp:
		return "signup"
	case ScreenDashboard:
		return "dashboard"
	case ScreenPrep:
		return "prep"
	case ScreenTest:
		return "test"
	case ScreenFeedback:
		return "feedback"
	default:
		return "unknown"
	}
}

// authScreen reports whether s is part of the unauthenticated flow. A 401
// while already on one of these must not trigger another redirect.
func authScreen(s Screen) bool {
	return s == ScreenLanding || s == ScreenLogin || s == ScreenSignUp
}
