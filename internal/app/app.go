// Package app is the Bubble Tea shell. It owns the session state
// machine: screens emit flow events, the shell reduces them, persists
// what changed, and swaps the active screen.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/config"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/flow"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/nav"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/notify"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/router"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/screen"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/screens/completed"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/screens/learning"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/screens/progressdash"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/screens/quiz"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/screens/teaching"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/screens/topic"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/screens/tutorpane"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/screens/welcome"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/session"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/ui/layout"
)

const toastDuration = 4 * time.Second

// AppModel is the root Bubble Tea model.
type AppModel struct {
	cfg    config.Config
	log    *zap.SugaredLogger
	client *api.Client
	sess   *session.Store

	state  flow.State
	router *router.Router
	pane   *tutorpane.Pane

	paneOpen bool
	toast    *notify.Notice
	width    int
	height   int
}

// New builds the shell around a restored session.
func New(cfg config.Config, log *zap.SugaredLogger, client *api.Client, sess *session.Store, restored session.Session) AppModel {
	state := flow.Guard(flow.State{
		Screen:  flow.ScreenLearning,
		Learner: restored.Learner,
		Course:  restored.Course,
	})

	m := AppModel{
		cfg:    cfg,
		log:    log,
		client: client,
		sess:   sess,
		state:  state,
		pane:   tutorpane.New(client, restored.Learner),
	}
	m.router = router.New(m.screenFor(state))
	return m
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

// screenFor builds the screen a flow state names.
func (m *AppModel) screenFor(s flow.State) screen.Screen {
	switch s.Screen {
	case flow.ScreenAnonymous:
		return welcome.New(m.client, m.sess)
	case flow.ScreenTopicSelect:
		return topic.New(m.client, m.sess, s.Learner)
	case flow.ScreenLearning:
		return learning.New(m.client, s.Learner, s.Course)
	case flow.ScreenQuiz:
		return quiz.New(m.client, m.cfg.QuizRetry, s.Learner, s.Course)
	case flow.ScreenTeaching:
		return teaching.New(m.client, s.Learner, s.Course)
	case flow.ScreenCompleted:
		return completed.New(s.Course)
	case flow.ScreenProgress:
		return progressdash.New(m.client, s.Learner)
	}
	return welcome.New(m.client, m.sess)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case nav.FlowMsg:
		return m.applyEvent(msg.Event)

	case nav.CourseUpdatedMsg:
		m.state.Course = msg.Course
		m.pane.SetScope(m.state.Course, m.state.Screen.String())
		return m, m.persistCourse(msg.Course)

	case nav.ToastMsg:
		n := msg.Notice
		m.toast = &n
		return m, tea.Tick(toastDuration, func(time.Time) tea.Msg {
			return nav.ClearToastMsg{}
		})

	case nav.ClearToastMsg:
		m.toast = nil
		return m, nil

	case nav.ToggleTutorMsg:
		return m.toggleTutor()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			return m.toggleTutor()
		case "ctrl+p":
			if !m.paneOpen && m.state.Screen != flow.ScreenProgress &&
				m.state.Screen != flow.ScreenAnonymous {
				return m.applyEvent(flow.ProgressOpened{})
			}
		case "esc", "ctrl+[":
			if m.paneOpen {
				m.paneOpen = false
				return m, nil
			}
		}
		if m.paneOpen {
			return m, m.pane.Update(msg)
		}
		return m, m.router.Update(msg)
	}

	// Async results go to both the overlay and the active screen; each
	// side ignores what it does not recognize.
	paneCmd := m.pane.Update(msg)
	routerCmd := m.router.Update(msg)
	return m, tea.Batch(paneCmd, routerCmd)
}

func (m AppModel) toggleTutor() (tea.Model, tea.Cmd) {
	if m.state.Learner == "" {
		return m, nil
	}
	m.paneOpen = !m.paneOpen
	if m.paneOpen {
		m.pane.SetScope(m.state.Course, m.state.Screen.String())
	}
	return m, nil
}

// applyEvent runs the reducer, persists side effects, and routes to the
// screen the new state names.
func (m AppModel) applyEvent(ev flow.Event) (tea.Model, tea.Cmd) {
	prev := m.state
	next := flow.Guard(flow.Reduce(prev, ev))
	m.state = next

	var cmds []tea.Cmd
	if cmd := m.persistEffect(prev, ev, next); cmd != nil {
		cmds = append(cmds, cmd)
	}

	if next.Screen != prev.Screen || next.Course != prev.Course {
		m.log.Debugw("screen change",
			"from", prev.Screen.String(), "to", next.Screen.String(), "event", fmt.Sprintf("%T", ev))
		cmds = append(cmds, m.router.Replace(m.screenFor(next)))
	}
	return m, tea.Batch(cmds...)
}

// persistEffect writes the durable consequence of an event, if any.
// Failures surface as toasts, the in-memory state moves on regardless.
func (m *AppModel) persistEffect(prev flow.State, ev flow.Event, next flow.State) tea.Cmd {
	sess := m.sess
	switch ev.(type) {
	case flow.ModuleAdvanced, flow.CourseCompleted:
		course := next.Course
		if course == prev.Course || course == nil {
			return nil
		}
		return m.persistCourse(course)

	case flow.NewCourseStarted:
		return func() tea.Msg {
			if err := sess.ClearCourse(context.Background()); err != nil {
				return nav.ToastMsg{Notice: notify.Warn("Couldn't clear the finished course.")}
			}
			return nil
		}

	case flow.LoggedOut:
		return func() tea.Msg {
			if err := sess.Clear(context.Background()); err != nil {
				return nav.ToastMsg{Notice: notify.Warn("Couldn't clear the session.")}
			}
			return nil
		}
	}
	return nil
}

func (m *AppModel) persistCourse(course *api.Course) tea.Cmd {
	sess := m.sess
	log := m.log
	return func() tea.Msg {
		if err := sess.SetCourse(context.Background(), course); err != nil {
			log.Warnw("persist course failed", "error", err)
			return nav.ToastMsg{Notice: notify.Warn("Couldn't save your progress locally.")}
		}
		return nil
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	topic := ""
	if m.state.Course != nil {
		topic = m.state.Course.Topic
	}
	header := layout.RenderHeader(title, m.state.Learner, topic, m.width)

	footerHints := []layout.KeyHint{{Key: "ctrl+c", Description: "quit"}}
	if m.paneOpen {
		footerHints = []layout.KeyHint{
			{Key: "enter", Description: "ask"},
			{Key: "ctrl+t", Description: "close tutor"},
			{Key: "ctrl+c", Description: "quit"},
		}
	} else if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	toastLine := ""
	if m.toast != nil {
		toastLine = lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).
			Render(notify.Render(*m.toast))
	}

	contentHeight := m.height - headerHeight - footerHeight
	if toastLine != "" {
		contentHeight--
	}
	if contentHeight < 0 {
		contentHeight = 0
	}

	var content string
	if m.paneOpen {
		content = m.pane.View(m.width, contentHeight)
	} else {
		content = m.router.View(m.width, contentHeight)
	}
	if toastLine != "" {
		content += "\n" + toastLine
	}

	frame := layout.RenderFrame(header, content, footer, m.width, m.height)
	v.SetContent(frame)
	return v
}

// Run wires the dependencies, restores the session, and starts the
// program.
func Run(cfg config.Config, log *zap.SugaredLogger, client *api.Client, sess *session.Store) error {
	restored, err := sess.Load(context.Background())
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	p := tea.NewProgram(New(cfg, log, client, sess, restored))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
