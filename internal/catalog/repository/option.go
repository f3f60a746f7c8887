package repository

// ImageUpload is a pending image file attached to a create or update.
type ImageUpload struct {
	Filename string
	Content  []byte
}

// CreateMenuItemOptions holds the multipart fields for creating a menu item.
// Price is sent as the string the operator typed; the remote API parses it.
type CreateMenuItemOptions struct {
	Name        string
	Description string
	Price       string
	CategoryID  string
	IsFavorite  bool
	IsAvailable bool
	Image       *ImageUpload // required by the remote API on create
}

// UpdateMenuItemOptions holds the multipart fields for a partial update keyed
// by ID. A nil Image keeps the image already stored on the server.
type UpdateMenuItemOptions struct {
	ID          string
	Name        string
	Description string
	Price       string
	CategoryID  string
	IsFavorite  bool
	IsAvailable bool
	Image       *ImageUpload
}
