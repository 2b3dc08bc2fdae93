package model

import (
	"path"
	"strings"
	"time"
)

// DirectoryEntry is one element of the repository contents API response
type DirectoryEntry struct {
	Name        string     `json:"name"`
	Path        string     `json:"path"`
	Type        string     `json:"type"`
	Size        int64      `json:"size"`
	DownloadURL string     `json:"download_url"`
	HTMLURL     string     `json:"html_url"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// Timestamp returns updated_at, falling back to created_at. Zero when both are missing.
func (e *DirectoryEntry) Timestamp() time.Time {
	switch {
	case e.UpdatedAt != nil:
		return *e.UpdatedAt
	case e.CreatedAt != nil:
		return *e.CreatedAt
	default:
		return time.Time{}
	}
}

// imageExtensions lists the lower-cased suffixes shown in the catalog
var imageExtensions = []string{".iso", ".img"}

// IsDiskImage reports whether name ends with a disk image extension
func IsDiskImage(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// FileRecord represents one disk image displayed in the catalog
type FileRecord struct {
	Name        string    `json:"name"`
	SizeBytes   int64     `json:"size_bytes"`
	DownloadURL string    `json:"download_url"`
	MirrorURL   string    `json:"mirror_url"`
	PageURL     string    `json:"page_url"`
	LastUpdated time.Time `json:"last_updated"`
	IconKey     IconKey   `json:"icon"`
}

// NewFileRecord maps a directory entry into a FileRecord. It returns false for
// entries without a name.
func NewFileRecord(entry *DirectoryEntry, src Source) (*FileRecord, bool) {
	if entry == nil || entry.Name == "" {
		return nil, false
	}

	size := entry.Size
	if size < 0 {
		size = 0
	}

	return &FileRecord{
		Name:        entry.Name,
		SizeBytes:   size,
		DownloadURL: entry.DownloadURL,
		MirrorURL:   src.MirrorURL(entry.Name),
		PageURL:     entry.HTMLURL,
		LastUpdated: entry.Timestamp(),
		IconKey:     ClassifyIcon(entry.Name),
	}, true
}

// Extension returns the upper-cased text after the last dot of the name
func (r *FileRecord) Extension() string {
	return strings.ToUpper(strings.TrimPrefix(path.Ext(r.Name), "."))
}
