package preview

import (
	"os"
	"sync/atomic"
)

// Preview is a locally-held copy of a selected image file, written to a temp
// file so the admin UI can render it before upload. It must be released
// deterministically on modal close, file replacement, or teardown.
type Preview struct {
	token    string
	path     string
	filename string
	released atomic.Bool
}

// Token returns the opaque reference handed to the UI.
func (p *Preview) Token() string { return p.token }

// Filename returns the original name of the selected file.
func (p *Preview) Filename() string { return p.filename }

// Path returns the temp file backing the preview.
func (p *Preview) Path() string { return p.path }

// Bytes reads the selected file content for upload.
func (p *Preview) Bytes() ([]byte, error) {
	return os.ReadFile(p.path)
}

// Release removes the temp file. Safe to call more than once.
func (p *Preview) Release() error {
	if !p.released.CompareAndSwap(false, true) {
		return nil
	}
	return os.Remove(p.path)
}
