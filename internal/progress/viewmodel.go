// Package progress turns the raw progress report into display-ready
// data. All transforms are pure; the dashboard and the progress command
// both render from the same view model.
package progress

import (
	"fmt"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"
)

// maxTopicLabel bounds the topic part of a path point label so the
// chart axis stays readable.
const maxTopicLabel = 10

// Summary is the zero-defaulted counter row at the top of the view.
type Summary struct {
	TotalCourses     int
	ModulesCompleted int
	CurrentStreak    int
	Level            int
	Badges           []string
}

// PathPoint is one module on the learning path: every module of every
// course in the report, in course order. Percentage is how far through
// its course the module sits.
type PathPoint struct {
	Label      string
	Topic      string
	Position   int
	Percentage float64
}

// Attempt is one quiz attempt in submission order.
type Attempt struct {
	Attempt    int
	Score      int
	Total      int
	Percentage float64
	Date       string
}

// ViewModel is everything the progress views render.
type ViewModel struct {
	Summary  Summary
	Path     []PathPoint
	Attempts []Attempt
	Courses  []api.Course
}

// Build derives the view model from a report. The report is not
// modified; a nil or empty report yields zeroed sections rather than
// nils the views have to guard against.
func Build(report *api.ProgressReport) ViewModel {
	vm := ViewModel{
		Path:     []PathPoint{},
		Attempts: []Attempt{},
		Courses:  []api.Course{},
	}
	if report == nil {
		return vm
	}

	if u := report.User; u != nil {
		vm.Summary = Summary{
			TotalCourses:     u.TotalCourses,
			ModulesCompleted: u.TotalModulesCompleted,
			CurrentStreak:    u.CurrentStreak,
			Level:            u.Level,
			Badges:           append([]string(nil), u.Badges...),
		}
	}

	for _, c := range report.Courses {
		for i := range c.Modules {
			vm.Path = append(vm.Path, PathPoint{
				Label:      pathLabel(c.Topic, i+1),
				Topic:      c.Topic,
				Position:   i + 1,
				Percentage: percentage(i+1, len(c.Modules)),
			})
		}
	}
	vm.Courses = append(vm.Courses, report.Courses...)

	for i, rec := range report.Progress {
		pct := percentage(rec.QuizScore, rec.QuizTotal)

		attempt := Attempt{
			Attempt:    i + 1,
			Score:      rec.QuizScore,
			Total:      rec.QuizTotal,
			Percentage: pct,
		}
		if !rec.Timestamp.IsZero() {
			attempt.Date = rec.Timestamp.Format("Jan 2")
		}
		vm.Attempts = append(vm.Attempts, attempt)
	}

	return vm
}

func percentage(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(score) / float64(total) * 100
}

// pathLabel compacts a topic and module position into an axis label
// such as "Negotiati M2". Truncation counts runes so a multi-byte
// topic is never cut mid-character.
func pathLabel(topic string, position int) string {
	if r := []rune(topic); len(r) > maxTopicLabel {
		topic = string(r[:maxTopicLabel])
	}
	if position <= 0 {
		return topic
	}
	if topic == "" {
		return fmt.Sprintf("M%d", position)
	}
	return fmt.Sprintf("%s M%d", topic, position)
}
