package session

import (
	"context"
	"encoding/json"
	"testing"

	"go.uber.org/zap"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/api"
)

// fakeRepo is an in-memory SessionRepo.
type fakeRepo struct {
	data map[string]string
}

func newFakeRepo() *fakeRepo { return &fakeRepo{data: map[string]string{}} }

func (r *fakeRepo) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := r.data[key]
	return v, ok, nil
}

func (r *fakeRepo) Put(_ context.Context, key, value string) error {
	r.data[key] = value
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, key string) error {
	delete(r.data, key)
	return nil
}

func testStore(repo *fakeRepo) *Store {
	return NewStore(repo, zap.NewNop().Sugar())
}

func sampleCourse() *api.Course {
	return &api.Course{
		ID:         "c1",
		Username:   "Alex",
		Topic:      "Negotiation",
		SkillLevel: api.SkillBeginner,
		Modules: []api.Module{
			{ID: "m1", Title: "Basics", Content: "..."},
			{ID: "m2", Title: "Tactics", Content: "..."},
		},
		CurrentModuleIndex: 1,
	}
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	s := testStore(repo)

	if err := s.SetLearner(ctx, "  Alex  "); err != nil {
		t.Fatalf("SetLearner: %v", err)
	}
	if err := s.SetCourse(ctx, sampleCourse()); err != nil {
		t.Fatalf("SetCourse: %v", err)
	}

	sess, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sess.Learner != "Alex" {
		t.Errorf("Learner = %q, want %q", sess.Learner, "Alex")
	}
	if !sess.Active() {
		t.Error("session should be active")
	}
	if sess.Course == nil {
		t.Fatal("course should survive the round trip")
	}
	if sess.Course.CurrentModuleIndex != 1 {
		t.Errorf("CurrentModuleIndex = %d, want 1", sess.Course.CurrentModuleIndex)
	}
	if len(sess.Course.Modules) != 2 {
		t.Errorf("Modules = %d, want 2", len(sess.Course.Modules))
	}
}

func TestLoadEmpty(t *testing.T) {
	sess, err := testStore(newFakeRepo()).Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sess.Active() {
		t.Error("empty store should yield an inactive session")
	}
	if sess.Course != nil {
		t.Error("empty store should yield no course")
	}
}

func TestSetLearnerRejectsBlank(t *testing.T) {
	err := testStore(newFakeRepo()).SetLearner(context.Background(), "   ")
	if err == nil {
		t.Fatal("blank learner name should be rejected")
	}
	if !api.IsValidation(err) {
		t.Errorf("error should be a validation error, got %v", err)
	}
}

func TestMalformedCourseIsDiscarded(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	s := testStore(repo)

	if err := s.SetLearner(ctx, "Alex"); err != nil {
		t.Fatal(err)
	}
	repo.data["current_course"] = "{not json"

	sess, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load should soft-fail, got %v", err)
	}
	if sess.Learner != "Alex" {
		t.Error("learner should survive a bad course value")
	}
	if sess.Course != nil {
		t.Error("malformed course should be treated as absent")
	}
	if _, ok := repo.data["current_course"]; ok {
		t.Error("bad course value should be removed from the store")
	}
}

func TestSchemaInvalidCourseIsDiscarded(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	s := testStore(repo)

	if err := s.SetLearner(ctx, "Alex"); err != nil {
		t.Fatal(err)
	}
	// Valid JSON but missing required fields.
	repo.data["current_course"] = `{"id": "c1"}`

	sess, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sess.Course != nil {
		t.Error("schema-invalid course should be treated as absent")
	}
}

func TestClearCourseKeepsLearner(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	s := testStore(repo)

	if err := s.SetLearner(ctx, "Alex"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetCourse(ctx, sampleCourse()); err != nil {
		t.Fatal(err)
	}
	if err := s.ClearCourse(ctx); err != nil {
		t.Fatal(err)
	}

	sess, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sess.Learner != "Alex" {
		t.Error("clearing the course should not sign the learner out")
	}
	if sess.Course != nil {
		t.Error("course should be gone")
	}
}

func TestClearRemovesEverything(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	s := testStore(repo)

	if err := s.SetLearner(ctx, "Alex"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetCourse(ctx, sampleCourse()); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatal(err)
	}

	sess, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sess.Active() || sess.Course != nil {
		t.Error("Clear should remove both keys")
	}
}

func TestSetCourseNilClears(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	s := testStore(repo)

	if err := s.SetCourse(ctx, sampleCourse()); err != nil {
		t.Fatal(err)
	}
	if err := s.SetCourse(ctx, nil); err != nil {
		t.Fatal(err)
	}
	if _, ok := repo.data["current_course"]; ok {
		t.Error("SetCourse(nil) should clear the stored course")
	}
}

func TestStoredCourseIsCanonicalJSON(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	s := testStore(repo)

	if err := s.SetCourse(ctx, sampleCourse()); err != nil {
		t.Fatal(err)
	}
	var decoded api.Course
	if err := json.Unmarshal([]byte(repo.data["current_course"]), &decoded); err != nil {
		t.Fatalf("stored value should be JSON: %v", err)
	}
	if decoded.ID != "c1" {
		t.Errorf("decoded ID = %q, want %q", decoded.ID, "c1")
	}
}
