package upload

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/apna-adda/adda/internal/common/cnst"
)

// Uploader persists uploaded documents under a fixed root directory. Stored
// names are unique by convention: form field, timestamp and a random suffix.
type Uploader struct {
	root string
}

// NewUploader creates an uploader rooted at dir.
func NewUploader(dir string) *Uploader {
	return &Uploader{root: dir}
}

// EnsureDirs provisions every upload subdirectory. It is idempotent and runs
// once at startup.
func (u *Uploader) EnsureDirs() error {
	for _, sub := range []string{cnst.DirOwnershipPapers, cnst.DirTenantPhotos} {
		if err := os.MkdirAll(filepath.Join(u.root, sub), 0755); err != nil {
			return fmt.Errorf("failed to create upload directory %s: %w", sub, err)
		}
	}
	return nil
}

// Dir returns the absolute path of an upload subdirectory.
func (u *Uploader) Dir(sub string) string {
	return filepath.Join(u.root, sub)
}

// Save writes one uploaded file into the given subdirectory and returns the
// stored file name. The name is <field>-<unix millis>-<random>.<ext> with the
// extension taken from the original name.
func (u *Uploader) Save(fh *multipart.FileHeader, field, sub string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := fmt.Sprintf("%s-%d-%d%s",
		field,
		time.Now().UnixMilli(),
		rand.Int63n(1_000_000_000),
		filepath.Ext(fh.Filename),
	)

	dst, err := os.Create(filepath.Join(u.root, sub, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}
