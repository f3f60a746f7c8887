package model

// Category is a menu category owned by the remote catalog. Read-only here.
type Category struct {
	ID   string // remote categoryId
	Name string
}

// MenuItem is a single catalog entry. Identity is ID; created and mutated only
// through the mutation workflow, never locally.
type MenuItem struct {
	ID          string // remote menuItemId
	Name        string
	Description string
	Price       float64
	Category    Category
	Image       string // URL of the stored image on the remote catalog
	IsFavorite  bool
	IsAvailable bool
}
