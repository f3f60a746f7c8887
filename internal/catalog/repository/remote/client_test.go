package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"menu-catalog-admin/internal/catalog/repository"
	"menu-catalog-admin/internal/catalog/repository/remote"
)

func TestClientList(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/categories", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("missing bearer token, got %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": []remote.Category{{ID: "c1", Name: "Makanan"}},
		})
	})

	mux.HandleFunc("/menu-items", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": []remote.MenuItem{
				{ID: "m1", Name: "Nasi Goreng", Price: 25000, Category: remote.Category{ID: "c1", Name: "Makanan"}},
			},
		})
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := remote.NewClient(ts.URL, "test-token", 0)
	ctx := context.Background()

	t.Run("ListCategories", func(t *testing.T) {
		cats, err := client.ListCategories(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cats) != 1 || cats[0].ID != "c1" {
			t.Errorf("unexpected categories: %+v", cats)
		}
	})

	t.Run("ListMenuItems", func(t *testing.T) {
		items, err := client.ListMenuItems(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 || items[0].Name != "Nasi Goreng" {
			t.Errorf("unexpected items: %+v", items)
		}
	})

	t.Run("Server Down", func(t *testing.T) {
		badClient := remote.NewClient("http://localhost:59999", "token", 0)
		_, err := badClient.ListMenuItems(ctx)
		if err == nil {
			t.Error("expected connection refused error")
		}
	})
}

func TestClientCreateMultipart(t *testing.T) {
	var gotFields map[string]string
	var gotImage []byte

	mux := http.NewServeMux()
	mux.HandleFunc("/menu-items", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("not a multipart request: %v", err)
		}

		gotFields = map[string]string{}
		for _, k := range []string{"name", "description", "price", "categoryId", "isFavorite", "isAvailable"} {
			gotFields[k] = r.FormValue(k)
		}

		file, _, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("image part missing: %v", err)
		}
		defer file.Close()
		gotImage, _ = io.ReadAll(file)

		json.NewEncoder(w).Encode(map[string]any{
			"data": remote.MenuItem{ID: "m9", Name: r.FormValue("name")},
		})
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := remote.NewClient(ts.URL, "", 0)
	item, err := client.CreateMenuItem(context.Background(), remote.MenuItemForm{
		Name:          "Nasi Goreng",
		Description:   "Nasi goreng spesial",
		Price:         "25000",
		CategoryID:    "c1",
		IsFavorite:    true,
		IsAvailable:   false,
		ImageFilename: "nasi.jpg",
		ImageContent:  []byte("jpeg-bytes"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != "m9" {
		t.Errorf("unexpected item: %+v", item)
	}

	want := map[string]string{
		"name":        "Nasi Goreng",
		"description": "Nasi goreng spesial",
		"price":       "25000",
		"categoryId":  "c1",
		"isFavorite":  "true",
		"isAvailable": "false",
	}
	for k, v := range want {
		if gotFields[k] != v {
			t.Errorf("field %s = %q, want %q", k, gotFields[k], v)
		}
	}
	if string(gotImage) != "jpeg-bytes" {
		t.Errorf("image content = %q", gotImage)
	}
}

func TestClientUpdateOmitsImageWhenUnset(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/menu-items/m1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("not a multipart request: %v", err)
		}
		if _, _, err := r.FormFile("image"); err == nil {
			t.Error("image part sent on an update without a new file")
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": remote.MenuItem{ID: "m1", Name: r.FormValue("name")},
		})
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := remote.NewClient(ts.URL, "", 0)
	item, err := client.UpdateMenuItem(context.Background(), "m1", remote.MenuItemForm{
		Name:        "Nasi Goreng Baru",
		Description: "Updated",
		Price:       "30000",
		CategoryID:  "c1",
		IsAvailable: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Name != "Nasi Goreng Baru" {
		t.Errorf("unexpected item: %+v", item)
	}
}

func TestClientAPIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/menu-items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"message": []string{"name should not be empty", "price must be a number"},
		})
	})
	mux.HandleFunc("/menu-items/m1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{"message": "menu item in use"})
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := remote.NewClient(ts.URL, "", 0)
	ctx := context.Background()

	t.Run("Message List Joined", func(t *testing.T) {
		_, err := client.CreateMenuItem(ctx, remote.MenuItemForm{})
		var apiErr *repository.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *repository.APIError, got %v", err)
		}
		if apiErr.Status != http.StatusBadRequest {
			t.Errorf("status = %d", apiErr.Status)
		}
		if apiErr.Message() != "name should not be empty, price must be a number" {
			t.Errorf("joined message = %q", apiErr.Message())
		}
	})

	t.Run("Single Message String", func(t *testing.T) {
		err := client.DeleteMenuItem(ctx, "m1")
		var apiErr *repository.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *repository.APIError, got %v", err)
		}
		if apiErr.Message() != "menu item in use" {
			t.Errorf("message = %q", apiErr.Message())
		}
	})
}
