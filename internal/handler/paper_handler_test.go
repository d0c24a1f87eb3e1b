package handler_test

import (
	"context"
	"encoding/json"
	"testing"

	"examgen/internal/domain"
	"examgen/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaperHandler_CreatePaper(t *testing.T) {
	app, m := newTestApp()
	var gotTeacher string
	var gotReq dto.SavePaperRequest
	m.papers.SaveFunc = func(ctx context.Context, teacherID string, req dto.SavePaperRequest) (*domain.Paper, error) {
		gotTeacher, gotReq = teacherID, req
		return &domain.Paper{ID: "p1", TeacherID: teacherID, Title: req.Title, Questions: req.Questions}, nil
	}

	resp, err := app.Test(authed("POST", "/api/papers", jsonBody(t, map[string]interface{}{
		"teacherId":  "spoofed",
		"title":      "Weekly test",
		"subject":    "Physics",
		"questions":  []map[string]interface{}{{"questionText": "Q1", "marks": 2}},
		"totalMarks": 2,
	})), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "teacher-1", gotTeacher)
	assert.Equal(t, "spoofed", gotReq.TeacherID)
	assert.JSONEq(t, `[{"questionText":"Q1","marks":2}]`, string(gotReq.Questions))

	var paper map[string]interface{}
	decode(t, resp, &paper)
	assert.Equal(t, "teacher-1", paper["teacherId"])
}

func TestPaperHandler_CreatePaperServiceError(t *testing.T) {
	app, m := newTestApp()
	m.papers.SaveFunc = func(ctx context.Context, teacherID string, req dto.SavePaperRequest) (*domain.Paper, error) {
		return nil, domain.NewInternalError("Failed to save paper", nil)
	}

	resp, err := app.Test(authed("POST", "/api/papers", jsonBody(t, map[string]string{"title": "x"})), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	var body map[string]interface{}
	decode(t, resp, &body)
	assert.Equal(t, "Failed to save paper", body["message"])
}

func TestPaperHandler_ListTeacherPapers(t *testing.T) {
	app, m := newTestApp()
	m.papers.ListForTeacherFunc = func(ctx context.Context, callerID, teacherID string) ([]*domain.Paper, error) {
		if callerID != teacherID {
			return nil, domain.NewForbiddenError("Cannot view another teacher's papers")
		}
		return nil, nil
	}

	resp, err := app.Test(authed("GET", "/api/papers/teacher/teacher-1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []json.RawMessage
	decode(t, resp, &list)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	resp, err = app.Test(authed("GET", "/api/papers/teacher/teacher-2", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestPaperHandler_GetAndDelete(t *testing.T) {
	app, m := newTestApp()
	m.papers.GetFunc = func(ctx context.Context, callerID, paperID string) (*domain.Paper, error) {
		if paperID == "p1" {
			return &domain.Paper{ID: "p1", TeacherID: callerID, Questions: json.RawMessage("[]")}, nil
		}
		return nil, domain.NewNotFoundError("Paper not found")
	}
	m.papers.DeleteFunc = func(ctx context.Context, callerID, paperID string) error {
		if paperID == "p1" {
			return nil
		}
		return domain.NewNotFoundError("Paper not found")
	}

	resp, err := app.Test(authed("GET", "/api/papers/p1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(authed("GET", "/api/papers/p9", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(authed("DELETE", "/api/papers/p1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body dto.MessageResponse
	decode(t, resp, &body)
	assert.Equal(t, "Paper deleted successfully", body.Message)
}
