package progress

import (
	"testing"
	"time"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"
)

func sampleReport() *api.ProgressReport {
	return &api.ProgressReport{
		User: &api.UserStats{
			Username:              "Alex",
			TotalCourses:          2,
			TotalModulesCompleted: 3,
			CurrentStreak:         4,
			Level:                 2,
			Badges:                []string{"First Course"},
		},
		Progress: []api.ProgressRecord{
			{CourseID: "c1", ModuleID: "m1", QuizScore: 4, QuizTotal: 5, Completed: true,
				Timestamp: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)},
			{CourseID: "c1", ModuleID: "m2", QuizScore: 2, QuizTotal: 5, Completed: false},
			{CourseID: "c1", ModuleID: "m2", QuizScore: 5, QuizTotal: 5, Completed: true,
				Timestamp: time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)},
		},
		Courses: []api.Course{
			{ID: "c1", Topic: "Negotiation Skills", Modules: []api.Module{
				{ID: "m1", Title: "Basics"},
				{ID: "m2", Title: "Tactics"},
			}},
			{ID: "c2", Topic: "Go", Modules: []api.Module{
				{ID: "m3", Title: "Syntax"},
			}},
		},
	}
}

func TestBuildSummary(t *testing.T) {
	vm := Build(sampleReport())
	if vm.Summary.TotalCourses != 2 || vm.Summary.ModulesCompleted != 3 ||
		vm.Summary.CurrentStreak != 4 || vm.Summary.Level != 2 {
		t.Errorf("summary = %+v", vm.Summary)
	}
	if len(vm.Summary.Badges) != 1 {
		t.Errorf("badges = %v", vm.Summary.Badges)
	}
}

func TestPathCoversEveryModuleOfEveryCourse(t *testing.T) {
	vm := Build(sampleReport())
	if len(vm.Path) != 3 {
		t.Fatalf("path length = %d, want 3", len(vm.Path))
	}
	if vm.Path[0].Label != "Negotiatio M1" {
		t.Errorf("label = %q", vm.Path[0].Label)
	}
	if vm.Path[0].Percentage != 50 {
		t.Errorf("percentage = %v, want 50", vm.Path[0].Percentage)
	}
	if vm.Path[1].Label != "Negotiatio M2" || vm.Path[1].Percentage != 100 {
		t.Errorf("path[1] = %+v", vm.Path[1])
	}
	if vm.Path[2].Label != "Go M1" || vm.Path[2].Position != 1 {
		t.Errorf("path[2] = %+v", vm.Path[2])
	}
}

func TestAttemptsKeepOriginalOrder(t *testing.T) {
	vm := Build(sampleReport())
	if len(vm.Attempts) != 3 {
		t.Fatalf("attempts = %d, want 3", len(vm.Attempts))
	}
	for i, a := range vm.Attempts {
		if a.Attempt != i+1 {
			t.Errorf("attempt %d numbered %d", i, a.Attempt)
		}
	}
	if vm.Attempts[1].Percentage != 40 {
		t.Errorf("failed attempt percentage = %v, want 40", vm.Attempts[1].Percentage)
	}
	if vm.Attempts[0].Date != "Mar 14" {
		t.Errorf("date = %q", vm.Attempts[0].Date)
	}
	if vm.Attempts[1].Date != "" {
		t.Errorf("zero timestamp should yield empty date, got %q", vm.Attempts[1].Date)
	}
}

func TestBuildNilReport(t *testing.T) {
	vm := Build(nil)
	if vm.Path == nil || vm.Attempts == nil || vm.Courses == nil {
		t.Error("empty view model sections should be non-nil")
	}
	if vm.Summary.TotalCourses != 0 || vm.Summary.Level != 0 {
		t.Errorf("nil report should zero the summary: %+v", vm.Summary)
	}
}

func TestBuildZeroTotalQuiz(t *testing.T) {
	vm := Build(&api.ProgressReport{
		Progress: []api.ProgressRecord{
			{CourseID: "c1", ModuleID: "m1", QuizScore: 0, QuizTotal: 0, Completed: true},
		},
	})
	if vm.Attempts[0].Percentage != 0 {
		t.Errorf("zero-total quiz should yield 0%%, got %v", vm.Attempts[0].Percentage)
	}
	if len(vm.Path) != 0 {
		t.Errorf("a report without courses has no path, got %d points", len(vm.Path))
	}
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	report := sampleReport()
	before := len(report.Progress)
	_ = Build(report)
	if len(report.Progress) != before {
		t.Error("Build must not modify the report")
	}
	if report.User.Badges[0] != "First Course" {
		t.Error("Build must not modify user badges")
	}
}

func TestPathLabel(t *testing.T) {
	cases := []struct {
		topic    string
		position int
		want     string
	}{
		{"Go", 1, "Go M1"},
		{"Negotiation Skills", 3, "Negotiatio M3"},
		{"", 2, "M2"},
		{"Go", 0, "Go"},
		{"Négociation avancée", 1, "Négociatio M1"},
		{"日本語を学ぶ", 2, "日本語を学ぶ M2"},
	}
	for _, tc := range cases {
		if got := pathLabel(tc.topic, tc.position); got != tc.want {
			t.Errorf("pathLabel(%q, %d) = %q, want %q", tc.topic, tc.position, got, tc.want)
		}
	}
}
