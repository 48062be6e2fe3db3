// Package listing holds the file-backed write path for listing submissions.
// It is deliberately separate from the database-backed read path in
// internal/apiserver/database; the two stores are never reconciled.
package listing

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/apna-adda/adda/internal/common/cnst"
	"github.com/apna-adda/adda/internal/common/errorx"
)

// Entry is one listing appended to a category file.
type Entry struct {
	City      string `json:"city"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Rent      string `json:"rent"`
	DateAdded string `json:"dateAdded"`
	Area      string `json:"area"`
	Image     string `json:"image"`
}

// Appender appends listings to per-category JSON files.
type Appender struct {
	mu      sync.Mutex
	dataDir string
}

// NewAppender creates an appender writing under dataDir.
func NewAppender(dataDir string) *Appender {
	return &Appender{dataDir: dataDir}
}

// Append adds an entry to the category's JSON file. An absent or unreadable
// file is replaced by a fresh single-entry array. Unknown categories are
// rejected with errorx.ErrInvalidCategory.
func (a *Appender) Append(category string, entry Entry) error {
	file, ok := cnst.AppendCategories[category]
	if !ok {
		return errorx.ErrInvalidCategory
	}
	path := filepath.Join(a.dataDir, file)

	a.mu.Lock()
	defer a.mu.Unlock()

	var entries []Entry
	if data, err := os.ReadFile(path); err == nil {
		// A corrupt or non-array file starts over with an empty list.
		if err := json.Unmarshal(data, &entries); err != nil {
			entries = nil
		}
	}
	entries = append(entries, entry)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
