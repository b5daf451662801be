package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/ajith2003madhuvana/learneye-ed-platform/internal/config"
)

// Client is the typed gateway to the LearnEye service. Every operation is a
// single attempt; retrying is the caller's decision.
type Client struct {
	http     *resty.Client
	validate *validator.Validate
	log      *zap.SugaredLogger
}

// NewClient builds a Client from configuration.
func NewClient(cfg config.Config, log *zap.SugaredLogger) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.APIBaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:     rc,
		validate: validator.New(),
		log:      log,
	}
}

// RegisterLearner registers (or re-registers, idempotently) a learner by
// name and returns their profile.
func (c *Client) RegisterLearner(ctx context.Context, name string) (*UserStats, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	var out UserStats
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("username", name).
		SetResult(&out).
		Post("/user/register")
	if err := c.classify("register learner", resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateCourse asks the service for a full course. The returned course
// starts at module 0, not completed.
func (c *Client) GenerateCourse(ctx context.Context, req CourseRequest) (*Course, error) {
	req.Topic = strings.TrimSpace(req.Topic)
	req.LearningGoal = strings.TrimSpace(req.LearningGoal)
	if err := c.checkStruct(req); err != nil {
		return nil, err
	}

	var out Course
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/course/generate")
	if err := c.classify("generate course", resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateQuiz returns a fresh quiz for one module. Never cached.
func (c *Client) GenerateQuiz(ctx context.Context, courseID, moduleID string) (*Quiz, error) {
	if courseID == "" || moduleID == "" {
		return nil, &ValidationError{Field: "quiz request", Reason: "course and module ids are required"}
	}

	var out Quiz
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"course_id": courseID,
			"module_id": moduleID,
		}).
		SetResult(&out).
		Post("/quiz/generate")
	if err := c.classify("generate quiz", resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitQuiz sends an answer set for grading. The result's Passed field is
// authoritative for the next flow transition.
func (c *Client) SubmitQuiz(ctx context.Context, sub QuizSubmission) (*QuizResult, error) {
	if err := c.checkStruct(sub); err != nil {
		return nil, err
	}

	var out QuizResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(sub).
		SetResult(&out).
		Post("/quiz/submit")
	if err := c.classify("submit quiz", resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitTeaching sends the learner's explanation for evaluation.
func (c *Client) SubmitTeaching(ctx context.Context, sub TeachingSubmission) (*TeachingFeedback, error) {
	sub.Explanation = strings.TrimSpace(sub.Explanation)
	if err := c.checkStruct(sub); err != nil {
		return nil, err
	}

	var out TeachingFeedback
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(sub).
		SetResult(&out).
		Post("/teaching/submit")
	if err := c.classify("submit teaching", resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdvanceModule tells the source of truth the learner is now on
// moduleIndex. Callers update their local snapshot only after success.
func (c *Client) AdvanceModule(ctx context.Context, courseID string, moduleIndex int) error {
	if courseID == "" {
		return &ValidationError{Field: "course id", Reason: "must not be empty"}
	}
	if moduleIndex < 0 {
		return &ValidationError{Field: "module index", Reason: "must not be negative"}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("module_index", strconv.Itoa(moduleIndex)).
		Put("/course/" + url.PathEscape(courseID) + "/module")
	return c.classify("advance module", resp, err)
}

// CompleteCourse marks the course completed server-side. This is secondary
// bookkeeping: callers show completion even when it fails.
func (c *Client) CompleteCourse(ctx context.Context, courseID string) error {
	if courseID == "" {
		return &ValidationError{Field: "course id", Reason: "must not be empty"}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		Put("/course/" + url.PathEscape(courseID) + "/complete")
	return c.classify("complete course", resp, err)
}

// FetchProgress returns the learner's aggregate stats, course history and
// quiz-attempt history.
func (c *Client) FetchProgress(ctx context.Context, username string) (*ProgressReport, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &ValidationError{Field: "username", Reason: "must not be empty"}
	}

	var out ProgressReport
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/progress/" + url.PathEscape(username))
	if err := c.classify("fetch progress", resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// AskTutor sends one learner turn to the tutor, scoped to a module.
func (c *Client) AskTutor(ctx context.Context, msg TutorMessage) (*TutorReply, error) {
	msg.Message = strings.TrimSpace(msg.Message)
	if err := c.checkStruct(msg); err != nil {
		return nil, err
	}

	var out TutorReply
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(msg).
		SetResult(&out).
		Post("/tutor/ask")
	if err := c.classify("ask tutor", resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// SimplifyModule asks for a simpler rewrite of one module and returns the
// replacement.
func (c *Client) SimplifyModule(ctx context.Context, req SimplifyRequest) (*Module, error) {
	if err := c.checkStruct(req); err != nil {
		return nil, err
	}

	var out Module
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/module/simplify")
	if err := c.classify("simplify module", resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// checkStruct runs validator tags and converts the first failure into a
// ValidationError so it is surfaced locally, never sent.
func (c *Client) checkStruct(v any) error {
	err := c.validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return &ValidationError{
			Field:  strings.ToLower(f.Field()),
			Reason: fmt.Sprintf("failed %q check", f.Tag()),
		}
	}
	return &ValidationError{Field: "request", Reason: err.Error()}
}

// classify folds a resty result into the error taxonomy: transport error
// means unavailable, non-2xx means rejected, otherwise success.
func (c *Client) classify(op string, resp *resty.Response, err error) error {
	if err != nil {
		c.log.Warnw("remote call failed", "op", op, "error", err)
		return &RemoteError{Kind: KindUnavailable, Op: op, Err: err}
	}
	if resp.IsError() {
		c.log.Warnw("remote call rejected", "op", op, "status", resp.StatusCode())
		return &RemoteError{
			Kind:       KindRejected,
			Op:         op,
			StatusCode: resp.StatusCode(),
			Message:    strings.TrimSpace(resp.String()),
		}
	}
	c.log.Debugw("remote call ok", "op", op, "status", resp.StatusCode())
	return nil
}
