// Package welcome is the sign-in screen. A learner types a name, the
// service registers it, and the session remembers it for next time.
package welcome

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/flow"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/nav"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/notify"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/screen"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/session"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/ui/components"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/ui/layout"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/ui/theme"
)

const banner = `  _                           ____
 | |    ___  __ _ _ __ _ __ | ___|   _  ___
 | |   / _ \/ _' | '__| '_ \| _|| | | |/ _ \
 | |__|  __/ (_| | |  | | | | |_| |_| |  __/
 |_____\___|\__,_|_|  |_| |_|____\__, |\___|
                                 |___/`

// WelcomeScreen prompts for the learner's name.
type WelcomeScreen struct {
	client *api.Client
	sess   *session.Store

	input       components.TextInput
	registering bool
	token       string
	errText     string
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New(client *api.Client, sess *session.Store) *WelcomeScreen {
	return &WelcomeScreen{
		client: client,
		sess:   sess,
		input:  components.NewTextInput("your name", 40),
	}
}

func (w *WelcomeScreen) Title() string { return "Welcome" }

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.input.Init()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case registeredMsg:
		if msg.Token != w.token {
			return w, nil
		}
		w.registering = false
		w.token = ""
		if msg.Err != nil {
			w.errText = friendlyError(msg.Err)
			return w, nil
		}
		return w, tea.Batch(
			nav.Flow(flow.LearnerRegistered{Name: msg.Name}),
			nav.Toast(notify.Success("Welcome, "+msg.Name+"!")),
		)

	case tea.KeyPressMsg:
		if w.registering {
			return w, nil
		}
		if msg.String() == "enter" {
			name := w.input.Value()
			if name == "" {
				w.errText = "Tell me your name first!"
				return w, nil
			}
			w.errText = ""
			w.registering = true
			w.token = uuid.NewString()
			return w, w.register(w.token, name)
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

// register signs the learner in remotely, then persists the name so the
// next launch skips this screen.
func (w *WelcomeScreen) register(token, name string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := w.client.RegisterLearner(ctx, name)
		if err != nil {
			return registeredMsg{Token: token, Name: name, Err: err}
		}
		if err := w.sess.SetLearner(ctx, stats.Username); err != nil {
			return registeredMsg{Token: token, Name: name, Err: err}
		}
		return registeredMsg{Token: token, Name: stats.Username, Stats: stats}
	}
}

func friendlyError(err error) string {
	switch {
	case api.IsUnavailable(err):
		return "Can't reach the learning service. Is it running?"
	case api.IsValidation(err):
		return "That name won't work. Try another one."
	default:
		return "Sign-in failed. Try again in a moment."
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Primary).Render(banner),
		"",
		theme.Subtitle.Render("Learn anything, one module at a time."),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("What should I call you?"),
		"",
		w.input.View(),
	)

	if w.registering {
		sections = append(sections, "",
			theme.Hint.Render("signing you in..."))
	} else if w.errText != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render(w.errText))
	}

	content := strings.Join(sections, "\n")
	return components.CenterFrame(content, width, height)
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "enter", Description: "sign in"},
		{Key: "ctrl+c", Description: "quit"},
	}
}
