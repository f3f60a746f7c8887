package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"menu-catalog-admin/internal/catalog"
	catalogHTTP "menu-catalog-admin/internal/catalog/delivery/http"
	"menu-catalog-admin/internal/catalog/notify"
	"menu-catalog-admin/internal/catalog/preview"
	"menu-catalog-admin/internal/catalog/repository"
	"menu-catalog-admin/internal/catalog/store"
	"menu-catalog-admin/internal/catalog/usecase"
	"menu-catalog-admin/internal/catalog/view"
	"menu-catalog-admin/internal/middleware"
	"menu-catalog-admin/internal/model"
	pkgLog "menu-catalog-admin/pkg/log"
)

type stubRepo struct {
	categories []model.Category
	items      []model.MenuItem

	createFunc func(ctx context.Context, opt repository.CreateMenuItemOptions) (model.MenuItem, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (s *stubRepo) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.categories, nil
}

func (s *stubRepo) ListMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	return s.items, nil
}

func (s *stubRepo) CreateMenuItem(ctx context.Context, opt repository.CreateMenuItemOptions) (model.MenuItem, error) {
	if s.createFunc != nil {
		return s.createFunc(ctx, opt)
	}
	return model.MenuItem{ID: "new"}, nil
}

func (s *stubRepo) UpdateMenuItem(ctx context.Context, opt repository.UpdateMenuItemOptions) (model.MenuItem, error) {
	return model.MenuItem{ID: opt.ID}, nil
}

func (s *stubRepo) DeleteMenuItem(ctx context.Context, id string) error {
	if s.deleteFunc != nil {
		return s.deleteFunc(ctx, id)
	}
	return nil
}

func seedItems(n int) []model.MenuItem {
	items := make([]model.MenuItem, n)
	for i := range items {
		items[i] = model.MenuItem{
			ID:       fmt.Sprintf("m%d", i+1),
			Name:     fmt.Sprintf("Menu %d", i+1),
			Price:    1000,
			Category: model.Category{ID: "c1", Name: "Makanan"},
		}
	}
	items[0].Name = "Nasi Goreng"
	items[1].Name = "Mie Goreng"
	items[2].Name = "Ayam Goreng"
	return items
}

func newTestRouter(t *testing.T, repo *stubRepo) *gin.Engine {
	t.Helper()
	ctx := context.Background()

	l := pkgLog.NewNoop()
	categories := store.NewCategories(repo, l)
	collection := store.NewCollection(repo, l)
	if err := categories.Fetch(ctx); err != nil {
		t.Fatalf("seed categories: %v", err)
	}
	if err := collection.FetchAll(ctx); err != nil {
		t.Fatalf("seed collection: %v", err)
	}

	viewState := view.NewState(10)
	previews := preview.NewManager(l, t.TempDir(), time.Minute)
	wf := usecase.New(l, repo, collection, categories, previews, notify.NewLog(l), viewState)
	h := catalogHTTP.New(l, wf, collection, categories, viewState)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	catalogHTTP.RegisterRoutes(router.Group("/api/v1/catalog"), h, middleware.New(l))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w, decoded
}

func TestListEndpoint(t *testing.T) {
	repo := &stubRepo{
		categories: []model.Category{{ID: "c1", Name: "Makanan"}},
		items:      seedItems(12),
	}
	router := newTestRouter(t, repo)

	t.Run("Search Filters And Resets Page", func(t *testing.T) {
		w, body := doJSON(t, router, http.MethodGet, "/api/v1/catalog/menu-items?search=goreng&page=5", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}
		data := body["data"].(map[string]any)
		if got := data["totalItems"].(float64); got != 3 {
			t.Errorf("totalItems = %v, want 3", got)
		}
		if got := data["currentPage"].(float64); got != 1 {
			t.Errorf("currentPage = %v, want 1 after search change", got)
		}
		if got := data["searchTerm"].(string); got != "goreng" {
			t.Errorf("searchTerm = %q", got)
		}
	})

	t.Run("Second Page", func(t *testing.T) {
		w, body := doJSON(t, router, http.MethodGet, "/api/v1/catalog/menu-items?page=2", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		data := body["data"].(map[string]any)
		if got := data["totalPages"].(float64); got != 2 {
			t.Errorf("totalPages = %v, want 2", got)
		}
		items := data["items"].([]any)
		if len(items) != 2 {
			t.Errorf("page 2 items = %d, want 2", len(items))
		}
	})
}

func TestCategoriesEndpoint(t *testing.T) {
	repo := &stubRepo{
		categories: []model.Category{{ID: "c1", Name: "Makanan"}, {ID: "c2", Name: "Minuman"}},
		items:      seedItems(3),
	}
	router := newTestRouter(t, repo)

	w, body := doJSON(t, router, http.MethodGet, "/api/v1/catalog/categories", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	data := body["data"].(map[string]any)
	cats := data["categories"].([]any)
	if len(cats) != 2 {
		t.Fatalf("categories = %d, want 2", len(cats))
	}
	first := cats[0].(map[string]any)
	if first["categoryId"] != "c1" || first["name"] != "Makanan" {
		t.Errorf("first category = %v", first)
	}
}

func TestDeleteEndpoint(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := &stubRepo{
			categories: []model.Category{{ID: "c1", Name: "Makanan"}},
			items:      seedItems(3),
		}
		router := newTestRouter(t, repo)

		w, body := doJSON(t, router, http.MethodDelete, "/api/v1/catalog/menu-items/m1", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", w.Code, w.Body.String())
		}
		data := body["data"].(map[string]any)
		if data["message"] != catalog.MsgItemDeleted {
			t.Errorf("message = %v", data["message"])
		}
	})

	t.Run("Remote Rejection Is A Gateway Error", func(t *testing.T) {
		repo := &stubRepo{
			categories: []model.Category{{ID: "c1", Name: "Makanan"}},
			items:      seedItems(3),
		}
		repo.deleteFunc = func(ctx context.Context, id string) error {
			return &repository.APIError{Status: 409, Messages: []string{"menu item in use"}}
		}
		router := newTestRouter(t, repo)

		w, body := doJSON(t, router, http.MethodDelete, "/api/v1/catalog/menu-items/m1", nil)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("status = %d, want 502", w.Code)
		}
		if body["message"] != "menu item in use" {
			t.Errorf("message = %v", body["message"])
		}
	})
}

func TestModalEndpoints(t *testing.T) {
	repo := &stubRepo{
		categories: []model.Category{{ID: "c1", Name: "Makanan"}, {ID: "c2", Name: "Minuman"}},
		items:      seedItems(3),
	}
	router := newTestRouter(t, repo)

	t.Run("Full Create Flow", func(t *testing.T) {
		w, body := doJSON(t, router, http.MethodPost, "/api/v1/catalog/modal/add", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("open add status = %d: %s", w.Code, w.Body.String())
		}
		data := body["data"].(map[string]any)
		if data["state"] != "open_for_create" {
			t.Errorf("state = %v", data["state"])
		}
		draft := data["draft"].(map[string]any)
		if draft["price"] != "0" {
			t.Errorf("default price = %v", draft["price"])
		}

		for _, upd := range []map[string]string{
			{"field": "name", "value": "Es Teh"},
			{"field": "description", "value": "Manis"},
			{"field": "price", "value": "5000"},
			{"field": "categoryId", "value": "c2"},
			{"field": "isFavorite", "value": "true"},
		} {
			w, body = doJSON(t, router, http.MethodPatch, "/api/v1/catalog/modal/draft", upd)
			if w.Code != http.StatusOK {
				t.Fatalf("draft update %v status = %d: %s", upd, w.Code, w.Body.String())
			}
		}
		data = body["data"].(map[string]any)
		draft = data["draft"].(map[string]any)
		if cat := draft["category"].(map[string]any); cat["categoryId"] != "c2" {
			t.Errorf("selected category = %v", cat)
		}

		// Attach the image as multipart.
		buf := &bytes.Buffer{}
		mw := multipart.NewWriter(buf)
		part, err := mw.CreateFormFile("image", "es-teh.jpg")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		part.Write([]byte("jpeg-bytes"))
		mw.Close()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/modal/image", buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("select image status = %d: %s", rec.Code, rec.Body.String())
		}
		var imgBody map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &imgBody); err != nil {
			t.Fatalf("decode image response: %v", err)
		}
		imgData := imgBody["data"].(map[string]any)
		if imgData["previewToken"] == nil || imgData["previewToken"] == "" {
			t.Error("no preview token after image select")
		}

		w, _ = doJSON(t, router, http.MethodPost, "/api/v1/catalog/modal/submit", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("submit status = %d: %s", w.Code, w.Body.String())
		}

		w, body = doJSON(t, router, http.MethodGet, "/api/v1/catalog/modal", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("get modal status = %d", w.Code)
		}
		data = body["data"].(map[string]any)
		if data["state"] != "closed" {
			t.Errorf("state after submit = %v", data["state"])
		}
	})

	t.Run("Validation Failure Surfaces Field", func(t *testing.T) {
		w, _ := doJSON(t, router, http.MethodPost, "/api/v1/catalog/modal/add", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("open add status = %d", w.Code)
		}

		w, body := doJSON(t, router, http.MethodPost, "/api/v1/catalog/modal/submit", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("submit status = %d, want 400", w.Code)
		}
		if body["message"] != catalog.MsgNameRequired {
			t.Errorf("message = %v", body["message"])
		}
		errs := body["errors"].(map[string]any)
		if errs["field"] != "name" {
			t.Errorf("errors.field = %v", errs["field"])
		}

		if w, _ := doJSON(t, router, http.MethodPost, "/api/v1/catalog/modal/close", nil); w.Code != http.StatusOK {
			t.Fatalf("close status = %d", w.Code)
		}
	})

	t.Run("Unknown Draft Field Rejected", func(t *testing.T) {
		w, _ := doJSON(t, router, http.MethodPost, "/api/v1/catalog/modal/add", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("open add status = %d", w.Code)
		}
		defer doJSON(t, router, http.MethodPost, "/api/v1/catalog/modal/close", nil)

		w, body := doJSON(t, router, http.MethodPatch, "/api/v1/catalog/modal/draft",
			map[string]string{"field": "rating", "value": "5"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if msg, _ := body["message"].(string); !strings.Contains(msg, "rating") {
			t.Errorf("message = %q", msg)
		}
	})

	t.Run("Second Open Conflicts", func(t *testing.T) {
		if w, _ := doJSON(t, router, http.MethodPost, "/api/v1/catalog/modal/add", nil); w.Code != http.StatusOK {
			t.Fatalf("open add status = %d", w.Code)
		}
		defer doJSON(t, router, http.MethodPost, "/api/v1/catalog/modal/close", nil)

		w, _ := doJSON(t, router, http.MethodPost, "/api/v1/catalog/modal/add", nil)
		if w.Code != http.StatusConflict {
			t.Errorf("second open status = %d, want 409", w.Code)
		}
	})
}
