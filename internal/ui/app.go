// Package ui is the terminal shell of the interview prep client: a small
// screen router with a prompt loop per page.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SDhinakar/Interview-Prep-Frontend/internal/api"
	"github.com/SDhinakar/Interview-Prep-Frontend/internal/auth"
	"github.com/SDhinakar/Interview-Prep-Frontend/internal/config"
	"github.com/SDhinakar/Interview-Prep-Frontend/internal/dashboard"
	"github.com/SDhinakar/Interview-Prep-Frontend/internal/domain"
	"github.com/SDhinakar/Interview-Prep-Frontend/internal/markdown"
	"github.com/SDhinakar/Interview-Prep-Frontend/internal/media"
	"github.com/SDhinakar/Interview-Prep-Frontend/internal/prep"
	"github.com/SDhinakar/Interview-Prep-Frontend/internal/testflow"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	pinStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	faintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// App wires the views to a prompt loop.
type App struct {
	cfg      *config.Config
	gw       api.Gateway
	users    *auth.Context
	renderer *markdown.Renderer

	capture  media.SpeechCapture
	playback media.SpeechPlayback
	camera   media.CameraSource

	in  *bufio.Scanner
	out io.Writer

	screen Screen
	dash   *dashboard.View
	prep   *prep.View
	test   *testflow.Controller

	// session details carried into the test flow
	testRole, testTopics, testExperience string
	feedbackID                           string

	profile *config.Profile

	quit bool
}

// New creates the app shell. in and out default to stdin/stdout when nil.
func New(cfg *config.Config, gw api.Gateway, users *auth.Context, capture media.SpeechCapture, playback media.SpeechPlayback, camera media.CameraSource, in io.Reader, out io.Writer) *App {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &App{
		cfg:      cfg,
		gw:       gw,
		users:    users,
		renderer: markdown.NewRenderer(),
		capture:  capture,
		playback: playback,
		camera:   camera,
		in:       bufio.NewScanner(in),
		out:      out,
		screen:   ScreenLanding,
	}
}

// NavigateUnauthorized is the gateway's 401 hook: route back to the landing
// screen unless an auth screen is already showing.
func (a *App) NavigateUnauthorized() {
	if authScreen(a.screen) {
		return
	}
	a.errorf("Session expired, please log in again")
	a.screen = ScreenLanding
}

// Run resolves the persisted user and enters the prompt loop.
func (a *App) Run(ctx context.Context) error {
	if err := a.users.Resolve(ctx); err == nil && a.users.State() == auth.StateAuthenticated {
		a.screen = ScreenDashboard
	}

	for !a.quit {
		var err error
		switch a.screen {
		case ScreenLanding:
			err = a.landing(ctx)
		case ScreenLogin:
			err = a.login(ctx)
		case ScreenSignUp:
			err = a.signUp(ctx)
		case ScreenDashboard:
			err = a.dashboard(ctx)
		case ScreenPrep:
			err = a.prepScreen(ctx)
		case ScreenTest:
			err = a.testScreen(ctx)
		case ScreenFeedback:
			err = a.feedback(ctx)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (a *App) landing(ctx context.Context) error {
	fmt.Fprintln(a.out, titleStyle.Render("Interview Prep AI"))
	fmt.Fprintln(a.out, "Ace interviews with AI-powered learning: role-based questions, concept deep dives and a spoken mock test.")
	fmt.Fprintln(a.out, faintStyle.Render("Commands: login | signup | quit"))

	switch a.prompt("> ") {
	case "login":
		a.screen = ScreenLogin
	case "signup":
		a.screen = ScreenSignUp
	case "quit", "":
		a.quit = true
	}
	return nil
}

func (a *App) login(ctx context.Context) error {
	form := LoginForm{
		Email:    a.prompt("Email: "),
		Password: a.prompt("Password: "),
	}
	if errs := form.Validate(); len(errs) > 0 {
		a.printFieldErrors(errs)
		a.screen = ScreenLanding
		return nil
	}

	user, err := a.gw.Login(ctx, api.Credentials{Email: strings.TrimSpace(form.Email), Password: form.Password})
	if err != nil {
		a.errorf("Login failed: %v", err)
		a.screen = ScreenLanding
		return nil
	}
	if err := a.users.UpdateUser(user); err != nil {
		a.errorf("Could not persist login: %v", err)
		a.screen = ScreenLanding
		return nil
	}

	a.successf("Welcome back, %s!", user.Name)
	a.screen = ScreenDashboard
	return nil
}

func (a *App) signUp(ctx context.Context) error {
	form := SignUpForm{
		Name:      a.prompt("Full name: "),
		Email:     a.prompt("Email: "),
		Password:  a.prompt("Password (min 8 characters): "),
		ImagePath: a.prompt("Profile image path (optional): "),
	}
	if errs := form.Validate(); len(errs) > 0 {
		a.printFieldErrors(errs)
		a.screen = ScreenLanding
		return nil
	}

	imageURL := ""
	if form.ImagePath != "" {
		f, err := os.Open(form.ImagePath)
		if err != nil {
			a.errorf("Could not open image: %v", err)
		} else {
			imageURL, err = a.gw.UploadImage(ctx, f.Name(), f)
			f.Close()
			if err != nil {
				a.errorf("Image upload failed: %v", err)
				imageURL = ""
			}
		}
	}

	user, err := a.gw.Register(ctx, api.RegisterRequest{
		Name:            strings.TrimSpace(form.Name),
		Email:           strings.TrimSpace(form.Email),
		Password:        form.Password,
		ProfileImageURL: imageURL,
	})
	if err != nil {
		a.errorf("Registration failed: %v", err)
		a.screen = ScreenLanding
		return nil
	}
	if err := a.users.UpdateUser(user); err != nil {
		a.errorf("Could not persist login: %v", err)
		a.screen = ScreenLanding
		return nil
	}

	a.successf("Account created, welcome %s!", user.Name)
	a.screen = ScreenDashboard
	return nil
}

func (a *App) dashboard(ctx context.Context) error {
	if a.dash == nil {
		a.dash = dashboard.NewView(a.gw, a.cfg.NumQuestions)
	}
	if err := a.dash.Load(ctx); err != nil {
		a.errorf("%v", err)
		if a.prompt("Try again? (y/n) ") == "y" {
			return nil
		}
		a.quit = true
		return nil
	}

	if user := a.users.User(); user != nil {
		fmt.Fprintf(a.out, "%s  %s\n", titleStyle.Render("["+Initials(user.Name)+"]"), user.Name)
	}

	sessions := a.dash.Sessions()
	if len(sessions) == 0 {
		fmt.Fprintln(a.out, "No interview sessions yet. Create your first one to get started!")
	}
	for i, s := range sessions {
		fmt.Fprintf(a.out, "%2d. %s | %s (%s, %d questions)\n",
			i+1, s.Role, s.TopicsToFocus, s.Experience, len(s.Questions))
	}
	fmt.Fprintln(a.out, faintStyle.Render("Commands: open <n> | new | delete <n> | test <n> | feedback <n> | logout | quit"))

	cmd, arg := splitCommand(a.prompt("> "))
	switch cmd {
	case "open":
		if s, ok := pick(sessions, arg); ok {
			a.prep = prep.NewView(a.gw, s.ID, a.cfg.NumQuestions)
			a.screen = ScreenPrep
		} else {
			a.errorf("No such session")
		}
	case "new":
		a.createSession(ctx)
	case "delete":
		if s, ok := pick(sessions, arg); ok {
			if a.prompt(fmt.Sprintf("Delete %q? This cannot be undone. (y/n) ", s.Role)) == "y" {
				if err := a.dash.Delete(ctx, s.ID); err != nil {
					a.errorf("%v", err)
				} else {
					a.successf("Session deleted successfully")
				}
			}
		} else {
			a.errorf("No such session")
		}
	case "test":
		if s, ok := pick(sessions, arg); ok {
			a.startTest(s.Role, s.TopicsToFocus, s.Experience)
		} else {
			a.errorf("No such session")
		}
	case "feedback":
		if a.test != nil && a.test.State() == testflow.StateSubmittedAll {
			a.feedbackID = a.test.MockID()
			a.screen = ScreenFeedback
		} else {
			a.errorf("Finish a test first")
		}
	case "logout":
		if err := a.users.Clear(); err != nil {
			a.errorf("%v", err)
		}
		a.screen = ScreenLanding
	case "quit":
		a.quit = true
	}
	return nil
}

// UseProfile pre-fills the create-session form with a saved preset.
func (a *App) UseProfile(p *config.Profile) {
	a.profile = p
}

func (a *App) createSession(ctx context.Context) {
	var preset config.Profile
	if a.profile != nil {
		preset = *a.profile
	}
	in := dashboard.CreateInput{
		Role:          a.promptDefault("Target role", preset.Role),
		Experience:    a.promptDefault("Experience level (e.g. 3 years)", preset.Experience),
		TopicsToFocus: a.promptDefault("Topics to focus (comma-separated)", preset.TopicsToFocus),
		Description:   a.promptDefault("Description (optional)", preset.Description),
	}

	fmt.Fprintln(a.out, "Generating your personalized questions...")
	session, err := a.dash.Create(ctx, in)
	if err != nil {
		a.errorf("%v", err)
		return
	}

	a.successf("Session created with %d questions", len(session.Questions))
	a.prep = prep.NewView(a.gw, session.ID, a.cfg.NumQuestions)
	a.screen = ScreenPrep
}

func (a *App) prepScreen(ctx context.Context) error {
	if err := a.prep.Load(ctx); err != nil {
		a.errorf("Failed to load session details: %v", err)
		a.screen = ScreenDashboard
		return nil
	}

	session := a.prep.Session()
	fmt.Fprintln(a.out, titleStyle.Render(session.Role))
	fmt.Fprintf(a.out, "%s | %s\n", session.TopicsToFocus, session.Experience)
	if session.Description != "" {
		fmt.Fprintln(a.out, faintStyle.Render(session.Description))
	}

	questions := a.prep.Questions()
	for i, q := range questions {
		marker := "  "
		if q.IsPinned {
			marker = pinStyle.Render("📌")
		}
		fmt.Fprintf(a.out, "%2d. %s %s\n", i+1, marker, domain.StripEmphasis(q.Question))
	}
	fmt.Fprintln(a.out, faintStyle.Render("Commands: show <n> | pin <n> | note <n> | learn <n> | more | test | back"))

	cmd, arg := splitCommand(a.prompt("> "))
	switch cmd {
	case "show":
		if q, ok := pick(questions, arg); ok {
			fmt.Fprintln(a.out, a.renderer.Render(q.Answer))
			if q.Note != "" {
				fmt.Fprintln(a.out, faintStyle.Render("Note: "+q.Note))
			}
		}
	case "pin":
		if q, ok := pick(questions, arg); ok {
			if err := a.prep.TogglePin(ctx, q.ID); err != nil {
				a.errorf("Failed to update pin status: %v", err)
			} else {
				a.successf("Pin status updated")
			}
		}
	case "note":
		if q, ok := pick(questions, arg); ok {
			note := a.prompt("Note: ")
			if err := a.prep.UpdateNote(ctx, q.ID, note); err != nil {
				a.errorf("Failed to save note: %v", err)
			}
		}
	case "learn":
		if q, ok := pick(questions, arg); ok {
			fmt.Fprintln(a.out, "Generating explanation...")
			exp, err := a.prep.Explain(ctx, domain.StripEmphasis(q.Question))
			if err != nil {
				a.errorf("%v", err)
			} else {
				fmt.Fprintln(a.out, titleStyle.Render(exp.Title))
				fmt.Fprintln(a.out, a.renderer.Render(exp.Content))
			}
			a.prep.CloseDrawer()
		}
	case "more":
		fmt.Fprintln(a.out, "Generating questions...")
		n, err := a.prep.GenerateMore(ctx)
		if err != nil {
			a.errorf("%v", err)
		} else {
			a.successf("Added %d new questions!", n)
		}
	case "test":
		a.startTest(session.Role, session.TopicsToFocus, session.Experience)
	case "back":
		a.screen = ScreenDashboard
	}
	return nil
}

func (a *App) startTest(role, topics, experience string) {
	a.testRole, a.testTopics, a.testExperience = role, topics, experience
	a.test = nil
	a.screen = ScreenTest
}

func (a *App) testScreen(ctx context.Context) error {
	if a.test == nil {
		a.test = testflow.NewController(a.gw, a.capture, a.playback, a.camera,
			a.testRole, a.testTopics, a.testExperience, func(msg string) {
				fmt.Fprintln(a.out, faintStyle.Render(msg))
			})
		fmt.Fprintln(a.out, "Generating your personalized questions...")
		if err := a.test.Load(ctx); err != nil {
			a.errorf("%v", err)
			a.test = nil
			a.screen = ScreenDashboard
			return nil
		}
	}

	if a.test.State() == testflow.StateSubmittedAll {
		a.successf("Test completed!")
		if a.prompt("View feedback? (y/n) ") == "y" {
			a.feedbackID = a.test.MockID()
			a.screen = ScreenFeedback
		} else {
			a.screen = ScreenDashboard
		}
		return nil
	}

	idx := a.test.CurrentIndex()
	total := len(a.test.Questions())
	fmt.Fprintf(a.out, "%s %d/%d\n", titleStyle.Render("Question"), idx+1, total)
	fmt.Fprintln(a.out, a.test.Question(idx))
	if transcript := a.test.Transcript(idx); transcript != "" {
		fmt.Fprintln(a.out, "Your answer: "+transcript)
	} else {
		fmt.Fprintln(a.out, faintStyle.Render("Start recording to see your answer here"))
	}
	fmt.Fprintln(a.out, faintStyle.Render("Commands: record | stop | submit | speak | camera | goto <n> | quit-test"))

	cmd, arg := splitCommand(a.prompt("> "))
	switch cmd {
	case "record":
		if err := a.test.StartListening(); err != nil {
			a.errorf("%v", err)
			break
		}
		a.dictate()
	case "stop":
		a.test.StopListening()
	case "submit":
		if err := a.test.Submit(ctx); err != nil {
			a.errorf("Failed to submit answer: %v", err)
		}
	case "speak":
		if err := a.test.ToggleSpeak(); err != nil {
			a.errorf("%v", err)
		}
	case "camera":
		if err := a.test.InitCamera(); err == nil {
			fmt.Fprintln(a.out, "Camera preview active")
		}
	case "goto":
		if n, err := strconv.Atoi(arg); err == nil {
			if err := a.test.SetIndex(n - 1); err != nil {
				a.errorf("%v", err)
			}
		}
	case "quit-test":
		a.test.StopListening()
		a.screen = ScreenDashboard
	}
	return nil
}

// dictate runs the typed-dictation loop for a console capture. Each line
// becomes a final transcript segment; a lone "stop" ends the recording. With
// a real recognizer results arrive on their own, so there is nothing to feed.
func (a *App) dictate() {
	capture, ok := a.capture.(*media.ConsoleCapture)
	if !ok {
		fmt.Fprintln(a.out, faintStyle.Render("Recording... type 'stop' to finish"))
		return
	}
	fmt.Fprintln(a.out, faintStyle.Render("Recording: type your answer line by line, 'stop' to finish"))
	for capture.Active() {
		line := a.prompt("… ")
		if line == "stop" || a.quit {
			a.test.StopListening()
			return
		}
		capture.Push(line)
	}
}

func (a *App) feedback(ctx context.Context) error {
	entries, err := a.gw.GetFeedback(ctx, a.feedbackID)
	if err != nil {
		a.errorf("Error fetching feedback: %v", err)
		a.screen = ScreenDashboard
		return nil
	}

	fmt.Fprintln(a.out, titleStyle.Render("Your Interview Feedback"))
	if len(entries) > 0 {
		fmt.Fprintf(a.out, "Average score: %s\n", successStyle.Render(fmt.Sprintf("%.1f / 10", domain.AverageRating(entries))))
	}
	for i, e := range entries {
		fmt.Fprintf(a.out, "\n%d. %s (%.1f/10)\n", i+1, e.Question, e.Rating)
		fmt.Fprintln(a.out, "Your answer: "+e.UserAnswer)
		if e.Feedback != "" {
			fmt.Fprintln(a.out, a.renderer.Render(e.Feedback))
		}
	}

	a.prompt("Press enter to return to the dashboard")
	a.screen = ScreenDashboard
	return nil
}

func (a *App) prompt(label string) string {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		a.quit = true
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

// promptDefault prompts with a pre-filled value; entering nothing keeps it.
func (a *App) promptDefault(label, def string) string {
	if def == "" {
		return a.prompt(label + ": ")
	}
	if v := a.prompt(fmt.Sprintf("%s [%s]: ", label, def)); v != "" {
		return v
	}
	return def
}

func (a *App) printFieldErrors(errs FieldErrors) {
	for field, msg := range errs {
		a.errorf("%s: %s", field, msg)
	}
}

func (a *App) successf(format string, args ...any) {
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf(format, args...)))
}

func (a *App) errorf(format string, args ...any) {
	fmt.Fprintln(a.out, errorStyle.Render(fmt.Sprintf(format, args...)))
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(line, " ", 2)
	cmd := parts[0]
	arg := ""
	if len(parts) > 1 {
		arg = strings.TrimSpace(parts[1])
	}
	return cmd, arg
}

// pick resolves a 1-based list index argument.
func pick[T any](items []T, arg string) (T, bool) {
	var zero T
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(items) {
		return zero, false
	}
	return items[n-1], true
}
