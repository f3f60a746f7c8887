package view_test

import (
	"fmt"
	"testing"

	"menu-catalog-admin/internal/catalog/view"
	"menu-catalog-admin/internal/model"
)

func namedItems(names ...string) []model.MenuItem {
	items := make([]model.MenuItem, len(names))
	for i, n := range names {
		items[i] = model.MenuItem{ID: fmt.Sprintf("item-%d", i+1), Name: n}
	}
	return items
}

func TestFilter(t *testing.T) {
	t.Run("Empty Term Is Identity", func(t *testing.T) {
		items := namedItems("Nasi Goreng", "Es Teh", "Sate Ayam")
		got := view.Filter(items, "")
		if len(got) != 3 {
			t.Fatalf("expected all items, got %d", len(got))
		}
		for i := range items {
			if got[i].ID != items[i].ID {
				t.Errorf("order not preserved at %d: %s", i, got[i].ID)
			}
		}
	})

	t.Run("Case Insensitive Name Match", func(t *testing.T) {
		items := namedItems("Nasi Goreng", "Mie Goreng", "Es Teh")
		got := view.Filter(items, "GORENG")
		if len(got) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(got))
		}
		if got[0].Name != "Nasi Goreng" || got[1].Name != "Mie Goreng" {
			t.Errorf("unexpected match order: %+v", got)
		}
	})

	t.Run("Matches Description And Category", func(t *testing.T) {
		items := []model.MenuItem{
			{ID: "1", Name: "Es Teh", Description: "Teh manis dingin"},
			{ID: "2", Name: "Sate Ayam", Category: model.Category{Name: "Makanan Utama"}},
			{ID: "3", Name: "Kopi"},
		}
		if got := view.Filter(items, "manis"); len(got) != 1 || got[0].ID != "1" {
			t.Errorf("description match failed: %+v", got)
		}
		if got := view.Filter(items, "utama"); len(got) != 1 || got[0].ID != "2" {
			t.Errorf("category match failed: %+v", got)
		}
	})

	t.Run("Does Not Mutate Input", func(t *testing.T) {
		items := namedItems("Nasi Goreng", "Es Teh")
		_ = view.Filter(items, "nasi")
		if items[0].Name != "Nasi Goreng" || items[1].Name != "Es Teh" {
			t.Errorf("input mutated: %+v", items)
		}
	})
}

func TestPaginationMath(t *testing.T) {
	cases := []struct {
		n, perPage, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
	}
	for _, tc := range cases {
		if got := view.TotalPages(tc.n, tc.perPage); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.n, tc.perPage, got, tc.want)
		}
	}

	t.Run("Page Never Exceeds Size", func(t *testing.T) {
		items := namedItems("a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l")
		if got := view.Page(items, 1, 10); len(got) != 10 {
			t.Errorf("page 1 size = %d, want 10", len(got))
		}
		if got := view.Page(items, 2, 10); len(got) != 2 {
			t.Errorf("page 2 size = %d, want 2", len(got))
		}
	})

	t.Run("Page Past End Is Empty", func(t *testing.T) {
		items := namedItems("a", "b", "c")
		if got := view.Page(items, 3, 10); len(got) != 0 {
			t.Errorf("expected empty page, got %d items", len(got))
		}
	})
}

func TestStateSearchResetsPage(t *testing.T) {
	s := view.NewState(10)
	s.SetPage(3)
	if s.CurrentPage() != 3 {
		t.Fatalf("page = %d, want 3", s.CurrentPage())
	}

	s.SetSearchTerm("goreng")
	if s.CurrentPage() != 1 {
		t.Errorf("page after search change = %d, want 1", s.CurrentPage())
	}

	// Re-setting the same term must not reset a page the operator picked.
	s.SetPage(2)
	s.SetSearchTerm("goreng")
	if s.CurrentPage() != 2 {
		t.Errorf("page after unchanged search = %d, want 2", s.CurrentPage())
	}
}

func TestStateClampPage(t *testing.T) {
	s := view.NewState(10)
	s.SetPage(3)

	// 12 filtered items fill two pages; page 3 starts past the end.
	s.ClampPage(12)
	if s.CurrentPage() != 1 {
		t.Errorf("page after clamp = %d, want 1", s.CurrentPage())
	}

	s.SetPage(2)
	s.ClampPage(12)
	if s.CurrentPage() != 2 {
		t.Errorf("valid page clamped: %d", s.CurrentPage())
	}
}

func TestDeriveScenario(t *testing.T) {
	// 12 items, 3 of them "Goreng" dishes; searching "goreng" must fit all
	// matches on a single page.
	items := namedItems(
		"Nasi Goreng", "Mie Goreng", "Ayam Goreng",
		"item4", "item5", "item6", "item7", "item8",
		"item9", "item10", "item11", "item12",
	)

	s := view.NewState(10)
	s.SetSearchTerm("goreng")

	snap := s.Derive(items)
	if snap.TotalPages != 1 {
		t.Errorf("totalPages = %d, want 1", snap.TotalPages)
	}
	if snap.TotalItems != 3 {
		t.Errorf("totalItems = %d, want 3", snap.TotalItems)
	}
	if len(snap.Items) != 3 {
		t.Errorf("page 1 shows %d items, want 3", len(snap.Items))
	}

	t.Run("Empty Search Shows Everything", func(t *testing.T) {
		s.SetSearchTerm("")
		snap := s.Derive(items)
		if snap.TotalItems != 12 || snap.TotalPages != 2 || len(snap.Items) != 10 {
			t.Errorf("unexpected snapshot: total=%d pages=%d page1=%d",
				snap.TotalItems, snap.TotalPages, len(snap.Items))
		}
	})
}
