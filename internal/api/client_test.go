package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/config"
)

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	cfg := config.Default()
	cfg.APIBaseURL = baseURL
	cfg.Timeout = 2 * time.Second
	return NewClient(cfg, zap.NewNop().Sugar())
}

func jsonHandler(t *testing.T, status int, body any) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if body != nil {
			require.NoError(t, json.NewEncoder(w).Encode(body))
		}
	}
}

func TestRegisterLearner(t *testing.T) {
	var gotUsername string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/user/register", r.URL.Path)
		gotUsername = r.URL.Query().Get("username")
		jsonHandler(t, http.StatusOK, UserStats{Username: gotUsername, Level: 1})(w, r)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	stats, err := c.RegisterLearner(context.Background(), "  Alex  ")
	require.NoError(t, err)
	assert.Equal(t, "Alex", gotUsername, "name should be trimmed before sending")
	assert.Equal(t, "Alex", stats.Username)
}

func TestRegisterLearnerEmptyNameNeverHitsServer(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	_, err := c.RegisterLearner(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, int32(0), hits.Load())
}

func TestGenerateCourse(t *testing.T) {
	course := Course{
		ID:         "c1",
		Topic:      "Negotiation",
		SkillLevel: SkillBeginner,
		Modules: []Module{
			{ID: "m1", Title: "Basics"},
			{ID: "m2", Title: "Tactics"},
			{ID: "m3", Title: "Practice"},
		},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/course/generate", r.URL.Path)
		var req CourseRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Negotiation", req.Topic)
		jsonHandler(t, http.StatusOK, course)(w, r)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	got, err := c.GenerateCourse(context.Background(), CourseRequest{
		Username:   "Alex",
		Topic:      " Negotiation ",
		SkillLevel: SkillBeginner,
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", got.ID)
	assert.Len(t, got.Modules, 3)
	assert.Equal(t, 0, got.CurrentModuleIndex)
	assert.False(t, got.Completed)
}

func TestGenerateCourseRejectsUnknownSkillLevel(t *testing.T) {
	c := testClient(t, "http://unused.invalid")
	_, err := c.GenerateCourse(context.Background(), CourseRequest{
		Username:   "Alex",
		Topic:      "Go",
		SkillLevel: "Expert",
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestSubmitQuizClassifiesRejected(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(t, http.StatusInternalServerError, map[string]string{"detail": "boom"}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	_, err := c.SubmitQuiz(context.Background(), QuizSubmission{
		Username: "Alex",
		CourseID: "c1",
		ModuleID: "m1",
		Answers:  []int{0, 1, 2},
	})
	require.Error(t, err)
	assert.True(t, IsRejected(err))
	assert.False(t, IsUnavailable(err))
}

func TestSubmitQuizClassifiesUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	c := testClient(t, srv.URL)
	_, err := c.SubmitQuiz(context.Background(), QuizSubmission{
		Username: "Alex",
		CourseID: "c1",
		ModuleID: "m1",
		Answers:  []int{0},
	})
	require.Error(t, err)
	assert.True(t, IsUnavailable(err))
}

func TestCheckAnswers(t *testing.T) {
	quiz := Quiz{Questions: []QuizQuestion{
		{Question: "q1", Options: []string{"a", "b"}},
		{Question: "q2", Options: []string{"a", "b", "c"}},
	}}

	assert.NoError(t, CheckAnswers(quiz, []int{1, 2}))

	err := CheckAnswers(quiz, []int{1})
	require.Error(t, err, "short answer set must be rejected")
	assert.True(t, IsValidation(err))

	err = CheckAnswers(quiz, []int{1, -1})
	require.Error(t, err, "unanswered question must be rejected")
	assert.True(t, IsValidation(err))

	err = CheckAnswers(quiz, []int{1, 3})
	require.Error(t, err, "out-of-range option must be rejected")
}

func TestSubmitTeachingRejectsEmptyExplanation(t *testing.T) {
	c := testClient(t, "http://unused.invalid")
	_, err := c.SubmitTeaching(context.Background(), TeachingSubmission{
		Username:    "Alex",
		CourseID:    "c1",
		ModuleID:    "m1",
		Explanation: "   ",
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestAdvanceModule(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/course/c1/module", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("module_index"))
		jsonHandler(t, http.StatusOK, map[string]any{"message": "Module updated", "current_index": 2})(w, r)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	require.NoError(t, c.AdvanceModule(context.Background(), "c1", 2))
}

func TestFetchProgressDecodesAggregate(t *testing.T) {
	report := ProgressReport{
		User: &UserStats{Username: "Alex", TotalCourses: 2, Level: 3},
		Progress: []ProgressRecord{
			{CourseID: "c1", ModuleID: "m1", QuizScore: 4, QuizTotal: 5},
		},
		Courses: []Course{{ID: "c1", Topic: "Go"}},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/progress/Alex", r.URL.Path)
		jsonHandler(t, http.StatusOK, report)(w, r)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	got, err := c.FetchProgress(context.Background(), "Alex")
	require.NoError(t, err)
	require.NotNil(t, got.User)
	assert.Equal(t, 2, got.User.TotalCourses)
	assert.Len(t, got.Progress, 1)
}

func TestAskTutor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg TutorMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		assert.Equal(t, "m2", msg.ModuleID)
		jsonHandler(t, http.StatusOK, TutorReply{Response: "Think of it as...", Encouragement: "Keep going!"})(w, r)
	}))
	defer srv.Close()

	c := testClient(t, srv.URL)
	reply, err := c.AskTutor(context.Background(), TutorMessage{
		Username: "Alex",
		CourseID: "c1",
		ModuleID: "m2",
		Message:  "what is anchoring?",
		Context:  "learning",
	})
	require.NoError(t, err)
	assert.Equal(t, "Keep going!", reply.Encouragement)
}

func TestCurrentModule(t *testing.T) {
	c := Course{Modules: []Module{{ID: "a"}, {ID: "b"}}}

	c.CurrentModuleIndex = 1
	m, ok := c.CurrentModule()
	require.True(t, ok)
	assert.Equal(t, "b", m.ID)

	c.CurrentModuleIndex = 2
	_, ok = c.CurrentModule()
	assert.False(t, ok)

	empty := Course{}
	_, ok = empty.CurrentModule()
	assert.False(t, ok)
}
