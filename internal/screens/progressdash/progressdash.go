// Package progressdash shows the learner's history: overall counters,
// the learning path of completed modules, quiz attempts, and past
// courses.
package progressdash

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/flow"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/nav"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/progress"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/screen"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/ui/components"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/ui/layout"
	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/ui/theme"
)

type tab int

const (
	tabOverview tab = iota
	tabCourses
)

// ProgressScreen renders the progress report.
type ProgressScreen struct {
	client  *api.Client
	learner string

	loading bool
	token   string
	errText string
	vm      progress.ViewModel
	tab     tab
}

var _ screen.Screen = (*ProgressScreen)(nil)

func New(client *api.Client, learner string) *ProgressScreen {
	return &ProgressScreen{client: client, learner: learner}
}

func (p *ProgressScreen) Title() string { return "Your progress" }

func (p *ProgressScreen) Init() tea.Cmd {
	return p.fetch()
}

func (p *ProgressScreen) fetch() tea.Cmd {
	p.loading = true
	p.errText = ""
	p.token = uuid.NewString()
	token := p.token
	learner := p.learner
	return func() tea.Msg {
		report, err := p.client.FetchProgress(context.Background(), learner)
		return reportMsg{Token: token, Report: report, Err: err}
	}
}

func (p *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportMsg:
		if msg.Token != p.token {
			return p, nil
		}
		p.loading = false
		p.token = ""
		if msg.Err != nil {
			p.errText = friendlyError(msg.Err)
			return p, nil
		}
		p.vm = progress.Build(msg.Report)
		return p, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc", "q":
			return p, nav.Flow(flow.ProgressClosed{})
		case "tab", "left", "right":
			p.tab = 1 - p.tab
			return p, nil
		case "r":
			if p.errText != "" {
				return p, p.fetch()
			}
		}
	}
	return p, nil
}

func friendlyError(err error) string {
	if api.IsUnavailable(err) {
		return "Can't reach the learning service. Press r to retry."
	}
	return "Couldn't load your progress. Press r to retry."
}

func (p *ProgressScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var body string

	switch {
	case p.loading:
		body = theme.Hint.Render("gathering your history...")
	case p.errText != "":
		body = lipgloss.NewStyle().Foreground(theme.Error).Render(p.errText)
	case p.tab == tabOverview:
		body = p.overview(cw)
	default:
		body = p.courses(cw)
	}

	tabs := p.tabBar()
	card := components.Card(tabs+"\n\n"+body, cw)
	return components.CenterFrame(card, width, height)
}

func (p *ProgressScreen) tabBar() string {
	render := func(label string, active bool) string {
		if active {
			return theme.Selected.Render("[ " + label + " ]")
		}
		return theme.Unselected.Render("  " + label + "  ")
	}
	return render("Overview", p.tab == tabOverview) + "  " +
		render("Courses", p.tab == tabCourses)
}

func (p *ProgressScreen) overview(cw int) string {
	s := p.vm.Summary
	var sections []string

	counters := fmt.Sprintf("Courses %d    Modules %d    Streak %d days    Level %d",
		s.TotalCourses, s.ModulesCompleted, s.CurrentStreak, s.Level)
	sections = append(sections,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(counters))

	if len(s.Badges) > 0 {
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Accent).
				Render("Badges: "+strings.Join(s.Badges, ", ")))
	}

	if len(p.vm.Path) > 0 {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Learning path"))
		for _, pt := range p.vm.Path {
			bar := components.NewProgressBar(
				fmt.Sprintf("%-14s", pt.Label), pt.Percentage/100, true, cw-8)
			sections = append(sections, bar.View())
		}
	}

	if len(p.vm.Attempts) > 0 {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Quiz attempts"))
		for _, a := range p.vm.Attempts {
			line := fmt.Sprintf("  #%d  %d/%d (%.0f%%)", a.Attempt, a.Score, a.Total, a.Percentage)
			if a.Date != "" {
				line += "  " + a.Date
			}
			style := theme.Correct
			if a.Percentage < 60 {
				style = theme.Incorrect
			}
			sections = append(sections, style.Render(line))
		}
	}

	if len(p.vm.Path) == 0 && len(p.vm.Attempts) == 0 {
		sections = append(sections, "",
			theme.Hint.Render("nothing here yet, finish a module to see it on the path"))
	}

	return strings.Join(sections, "\n")
}

func (p *ProgressScreen) courses(cw int) string {
	if len(p.vm.Courses) == 0 {
		return theme.Hint.Render("no courses yet")
	}
	var sections []string
	for _, c := range p.vm.Courses {
		status := theme.Hint.Render("in progress")
		if c.Completed {
			status = theme.Correct.Render("completed")
		}
		line := fmt.Sprintf("%s (%s, %d modules)  ", c.Topic, c.SkillLevel, len(c.Modules))
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)+status)
	}
	return strings.Join(sections, "\n")
}

func (p *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "tab", Description: "switch view"},
		{Key: "esc", Description: "back"},
	}
}
