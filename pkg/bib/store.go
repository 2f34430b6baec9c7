package bib

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Store looks up bibliography entries by citation key and accepts
// fire-and-forget notifications that a key was cited by a figure.
type Store interface {
	// Entry returns the entry for key. A missing key is not an error;
	// extraction is simply skipped.
	Entry(key string) (Entry, bool)

	// MarkCited records that a figure referenced key. The engine never
	// reads this back; it exists for the bibliography system.
	MarkCited(key string)
}

// FileStore is a Store backed by .bib files read once at load time.
type FileStore struct {
	entries map[string]Entry
	cited   map[string]bool
}

// Compile-time interface check.
var _ Store = (*FileStore)(nil)

// LoadFiles builds a FileStore from the configured bib files, resolved
// relative to srcdir. When no files are configured, srcdir is walked for
// .bib files instead. Unreadable files are skipped; the build carries on
// without them.
func LoadFiles(srcdir string, files []string) *FileStore {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		if filepath.IsAbs(f) {
			paths = append(paths, f)
		} else {
			paths = append(paths, filepath.Join(srcdir, f))
		}
	}
	if len(paths) == 0 {
		paths = findBibFiles(srcdir)
	}

	var content strings.Builder
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		content.Write(data)
		content.WriteString("\n")
	}

	return &FileStore{
		entries: ParseEntries(content.String()),
		cited:   make(map[string]bool),
	}
}

// NewStore builds a FileStore from already-parsed entries. Used by tests
// and by hosts that manage bibliography content themselves.
func NewStore(entries map[string]Entry) *FileStore {
	if entries == nil {
		entries = make(map[string]Entry)
	}
	return &FileStore{entries: entries, cited: make(map[string]bool)}
}

// Entry returns the entry for key.
func (s *FileStore) Entry(key string) (Entry, bool) {
	e, ok := s.entries[key]
	return e, ok
}

// MarkCited records key as cited.
func (s *FileStore) MarkCited(key string) {
	s.cited[key] = true
}

// CitedKeys returns the keys marked as cited, sorted.
func (s *FileStore) CitedKeys() []string {
	keys := make([]string, 0, len(s.cited))
	for k := range s.cited {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of loaded entries.
func (s *FileStore) Len() int {
	return len(s.entries)
}

// findBibFiles walks root for .bib files.
func findBibFiles(root string) []string {
	var paths []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".bib") {
			paths = append(paths, path)
		}
		return nil
	})
	sort.Strings(paths)
	return paths
}
