package catalog

import "errors"

// Operator-facing messages. The admin console is Indonesian.
const (
	MsgNameRequired        = "Nama menu wajib diisi"
	MsgDescriptionRequired = "Deskripsi menu wajib diisi"
	MsgCategoryRequired    = "Kategori wajib dipilih"
	MsgPriceInvalid        = "Harga harus berupa angka yang valid"
	MsgImageRequired       = "Gambar menu wajib diunggah"
	MsgGenericFailure      = "Terjadi kesalahan, silakan coba lagi"

	MsgItemCreated = "Menu berhasil ditambahkan"
	MsgItemUpdated = "Menu berhasil diperbarui"
	MsgItemDeleted = "Menu berhasil dihapus"
)

var (
	ErrModalAlreadyOpen = errors.New("a draft modal is already open")
	ErrModalClosed      = errors.New("no draft modal is open")
	ErrSubmitInFlight   = errors.New("a submit is already in flight")
	ErrUnknownCategory  = errors.New("unknown category id")
	ErrUnknownField     = errors.New("unknown draft field")
	ErrItemNotFound     = errors.New("menu item not found")
)

// ValidationError is a field-level validation failure raised before any
// network call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
