package remote

// ---- Wire types for the remote catalog API ----

// Category is the catalog API category object.
type Category struct {
	ID   string `json:"categoryId"`
	Name string `json:"name"`
}

// MenuItem is the catalog API menu item object.
type MenuItem struct {
	ID          string   `json:"menuItemId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
	IsFavorite  bool     `json:"isFavorite"`
	IsAvailable bool     `json:"isAvailable"`
}

// MenuItemForm carries the multipart fields for POST /menu-items and
// PATCH /menu-items/:id. Image is required on create, optional on update.
type MenuItemForm struct {
	Name        string
	Description string
	Price       string
	CategoryID  string
	IsFavorite  bool
	IsAvailable bool

	ImageFilename string
	ImageContent  []byte
}
