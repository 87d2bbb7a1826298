package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/wqy7711/e-novel-api/internal/handler"
	"github.com/wqy7711/e-novel-api/internal/model"
	"github.com/wqy7711/e-novel-api/internal/repository"
	"github.com/wqy7711/e-novel-api/internal/service"
)

type novelServiceStub struct {
	listFn   func(ctx context.Context, params service.NovelListParams) ([]model.Novel, error)
	getFn    func(ctx context.Context, novelID string) (model.Novel, error)
	createFn func(ctx context.Context, input service.NovelInput) (model.Novel, error)
	updateFn func(ctx context.Context, novelID string, delta repository.NovelDelta) (model.Novel, error)
}

func (s *novelServiceStub) List(ctx context.Context, params service.NovelListParams) ([]model.Novel, error) {
	return s.listFn(ctx, params)
}

func (s *novelServiceStub) GetByID(ctx context.Context, novelID string) (model.Novel, error) {
	return s.getFn(ctx, novelID)
}

func (s *novelServiceStub) Create(ctx context.Context, input service.NovelInput) (model.Novel, error) {
	return s.createFn(ctx, input)
}

func (s *novelServiceStub) Update(ctx context.Context, novelID string, delta repository.NovelDelta) (model.Novel, error) {
	return s.updateFn(ctx, novelID, delta)
}

func sampleNovel() model.Novel {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return model.Novel{
		NovelID:     "1",
		Title:       "Hello",
		Author:      "Jane Roe",
		Description: "A story",
		Genre:       "Drama",
		Published:   true,
		PageCount:   320,
		Rating:      4.2,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

func TestNovelHandler_List(t *testing.T) {
	stub := &novelServiceStub{
		listFn: func(ctx context.Context, params service.NovelListParams) ([]model.Novel, error) {
			require.NotNil(t, params.Author)
			require.Equal(t, "Jane Roe", *params.Author)
			require.NotNil(t, params.Published)
			require.True(t, *params.Published)
			require.Nil(t, params.Genre)
			return []model.Novel{sampleNovel()}, nil
		},
	}
	h := handler.NewNovelHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/novels?author=Jane+Roe&published=true", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []struct {
			NovelID   string `json:"novelId"`
			Title     string `json:"title"`
			CreatedAt string `json:"createdAt"`
		} `json:"data"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 1, body.Count)
	require.Equal(t, "1", body.Data[0].NovelID)
	require.Equal(t, "2025-06-01T12:00:00Z", body.Data[0].CreatedAt)
}

func TestNovelHandler_GetByIDNotFound(t *testing.T) {
	stub := &novelServiceStub{
		getFn: func(ctx context.Context, novelID string) (model.Novel, error) {
			return model.Novel{}, service.ErrNotFound
		},
	}
	h := handler.NewNovelHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/novels/:novelId")
	c.SetParamNames("novelId")
	c.SetParamValues("999")

	require.NoError(t, h.GetByID(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"novel not found"}`, rec.Body.String())
}

func TestNovelHandler_Create(t *testing.T) {
	stub := &novelServiceStub{
		createFn: func(ctx context.Context, input service.NovelInput) (model.Novel, error) {
			require.Equal(t, "Hello", input.Title)
			require.Equal(t, "Jane Roe", input.Author)
			return sampleNovel(), nil
		},
	}
	h := handler.NewNovelHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/novels",
		strings.NewReader(`{"title":"Hello","author":"Jane Roe"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestNovelHandler_CreateValidationError(t *testing.T) {
	stub := &novelServiceStub{
		createFn: func(ctx context.Context, input service.NovelInput) (model.Novel, error) {
			return model.Novel{}, service.ErrInvalid
		},
	}
	h := handler.NewNovelHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/novels", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNovelHandler_Update(t *testing.T) {
	stub := &novelServiceStub{
		updateFn: func(ctx context.Context, novelID string, delta repository.NovelDelta) (model.Novel, error) {
			require.Equal(t, "1", novelID)
			require.NotNil(t, delta.Title)
			require.Equal(t, "Renamed", *delta.Title)
			require.Nil(t, delta.Author)
			updated := sampleNovel()
			updated.Title = "Renamed"
			return updated, nil
		},
	}
	h := handler.NewNovelHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/",
		strings.NewReader(`{"title":"Renamed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/novels/:novelId")
	c.SetParamNames("novelId")
	c.SetParamValues("1")

	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNovelHandler_UpdateBodyIDMismatch(t *testing.T) {
	// The service must never be reached; nil stub functions would panic.
	h := handler.NewNovelHandler(&novelServiceStub{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/",
		strings.NewReader(`{"novelId":"2","title":"Renamed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/novels/:novelId")
	c.SetParamNames("novelId")
	c.SetParamValues("1")

	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"novel ID in body does not match path parameter"}`, rec.Body.String())
}

func TestNovelHandler_UpdateMatchingBodyIDAccepted(t *testing.T) {
	stub := &novelServiceStub{
		updateFn: func(ctx context.Context, novelID string, delta repository.NovelDelta) (model.Novel, error) {
			return sampleNovel(), nil
		},
	}
	h := handler.NewNovelHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/",
		strings.NewReader(`{"novelId":"1","title":"Renamed"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/novels/:novelId")
	c.SetParamNames("novelId")
	c.SetParamValues("1")

	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)
}
