package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anshpaul/paymentApp-backend/internal/adapter/http/handlers/mocks"
	"github.com/anshpaul/paymentApp-backend/internal/domain/entities"
	"github.com/anshpaul/paymentApp-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func multipartUpload(t *testing.T, withImage bool) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	if withImage {
		fw, err := mw.CreateFormFile("image", "cover.png")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("png-bytes")); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	_ = mw.WriteField("title", "Food drive")
	_ = mw.WriteField("description", "Meals for families")
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf, mw.FormDataContentType()
}

func TestCampaignHandler_CreateCampaign(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICampaignUseCase(ctrl)
		h := NewCampaignHandler(uc)

		r := gin.New()
		r.POST("/api/uploads", h.CreateCampaign)

		buf, contentType := multipartUpload(t, false)
		req := httptest.NewRequest(http.MethodPost, "/api/uploads", buf)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICampaignUseCase(ctrl)
		h := NewCampaignHandler(uc)

		r := gin.New()
		r.POST("/api/uploads", h.CreateCampaign)

		uc.EXPECT().CreateCampaign(gomock.Any(), gomock.Any()).Return(entities.CampaignItem{}, usecase.ErrPersistenceFailure)

		buf, contentType := multipartUpload(t, true)
		req := httptest.NewRequest(http.MethodPost, "/api/uploads", buf)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICampaignUseCase(ctrl)
		h := NewCampaignHandler(uc)

		r := gin.New()
		r.POST("/api/uploads", h.CreateCampaign)

		uc.EXPECT().CreateCampaign(gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateCampaignInput{})).DoAndReturn(
			func(_ any, in usecase.CreateCampaignInput) (entities.CampaignItem, error) {
				if in.Title != "Food drive" || in.Description != "Meals for families" {
					t.Fatalf("form fields not mapped: %+v", in)
				}
				if in.ImageName != "cover.png" {
					t.Fatalf("expected image name cover.png, got %s", in.ImageName)
				}
				data, err := io.ReadAll(in.Image)
				if err != nil || string(data) != "png-bytes" {
					t.Fatalf("image content not readable: %v", err)
				}
				return entities.CampaignItem{ID: "c-1", Title: in.Title, ImageURL: "https://bucket/uploads/x.png", CreatedAt: time.Now().UTC()}, nil
			},
		)

		buf, contentType := multipartUpload(t, true)
		req := httptest.NewRequest(http.MethodPost, "/api/uploads", buf)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Uploaded successfully" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		data := body["data"].(map[string]any)
		if data["id"] != "c-1" {
			t.Fatalf("unexpected data: %s", w.Body.String())
		}
	})
}

func TestCampaignHandler_ListCampaigns(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICampaignUseCase(ctrl)
		h := NewCampaignHandler(uc)

		r := gin.New()
		r.GET("/api/uploads", h.ListCampaigns)

		uc.EXPECT().ListCampaigns(gomock.Any()).Return(nil, usecase.ErrPersistenceFailure)

		req := httptest.NewRequest(http.MethodGet, "/api/uploads", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICampaignUseCase(ctrl)
		h := NewCampaignHandler(uc)

		r := gin.New()
		r.GET("/api/uploads", h.ListCampaigns)

		uc.EXPECT().ListCampaigns(gomock.Any()).Return([]entities.CampaignItem{
			{ID: "c-1", Title: "Food drive", TotalDonated: 500, DonorCount: 1},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/uploads", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["totalDonated"] != float64(500) || body[0]["donorCount"] != float64(1) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCampaignHandler_UpdateCampaign(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICampaignUseCase(ctrl)
		h := NewCampaignHandler(uc)

		r := gin.New()
		r.PUT("/api/uploads/:id", h.UpdateCampaign)

		req := httptest.NewRequest(http.MethodPut, "/api/uploads/c-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICampaignUseCase(ctrl)
		h := NewCampaignHandler(uc)

		r := gin.New()
		r.PUT("/api/uploads/:id", h.UpdateCampaign)

		uc.EXPECT().UpdateCampaignInfo(gomock.Any(), "ghost", "New", "Desc").Return(entities.CampaignItem{}, usecase.ErrCampaignNotFound)

		req := httptest.NewRequest(http.MethodPut, "/api/uploads/ghost", bytes.NewBufferString(`{"title":"New","description":"Desc"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICampaignUseCase(ctrl)
		h := NewCampaignHandler(uc)

		r := gin.New()
		r.PUT("/api/uploads/:id", h.UpdateCampaign)

		uc.EXPECT().UpdateCampaignInfo(gomock.Any(), "c-1", "New", "Desc").Return(entities.CampaignItem{ID: "c-1", Title: "New"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/api/uploads/c-1", bytes.NewBufferString(`{"title":"New","description":"Desc"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["title"] != "New" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCampaignHandler_DeleteCampaign(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICampaignUseCase(ctrl)
		h := NewCampaignHandler(uc)

		r := gin.New()
		r.DELETE("/api/uploads/:id", h.DeleteCampaign)

		uc.EXPECT().DeleteCampaign(gomock.Any(), "ghost").Return(usecase.ErrCampaignNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/uploads/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICampaignUseCase(ctrl)
		h := NewCampaignHandler(uc)

		r := gin.New()
		r.DELETE("/api/uploads/:id", h.DeleteCampaign)

		uc.EXPECT().DeleteCampaign(gomock.Any(), "c-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/uploads/c-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Deleted successfully" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapCampaignError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrMissingCampaignImage, http.StatusBadRequest},
		{usecase.ErrInvalidCampaignID, http.StatusBadRequest},
		{usecase.ErrCampaignNotFound, http.StatusNotFound},
		{usecase.ErrPersistenceFailure, http.StatusInternalServerError},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapCampaignError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
