// Package pathindex finds executables on the search path.
//
// Nothing is cached: every Search and Contains call re-reads the search-path
// variable and re-lists the directories it names. Directories that cannot be
// read simply contribute nothing.
package pathindex

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"simplesearch/internal/suggest"
)

// DefaultEnvVar is the variable holding the colon-delimited search path.
const DefaultEnvVar = "PATH"

// readBatch is how many directory entries are read per ReadDir call, so a
// scan can stop early once the result list is full.
const readBatch = 64

// Options configures an Index.
type Options struct {
	// EnvVar names the search-path variable (default PATH).
	EnvVar string

	// Getenv looks up EnvVar (default os.Getenv).
	Getenv func(string) string

	Logger *slog.Logger
}

// Index searches the directories named by the search-path variable.
type Index struct {
	envVar string
	getenv func(string) string
	logger *slog.Logger
}

// New creates an Index.
func New(opts Options) *Index {
	if opts.EnvVar == "" {
		opts.EnvVar = DefaultEnvVar
	}
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Index{
		envVar: opts.EnvVar,
		getenv: opts.Getenv,
		logger: opts.Logger,
	}
}

// Dirs returns the search-path directories in order. Empty components are
// dropped; an unset variable yields no directories.
func (ix *Index) Dirs() []string {
	return SplitPath(ix.getenv(ix.envVar))
}

// SplitPath splits a colon-delimited directory list, skipping empty entries.
func SplitPath(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool { return r == ':' })
}

// Search fills out with executables whose names start with query.
//
// Directories are scanned in search-path order and entries in the
// filesystem's own order; the first occurrence of a name wins and scanning
// stops once out is full. A name exactly equal to query is removed
// afterwards, and the selection is reset to the first entry.
func (ix *Index) Search(query string, out *suggest.List) {
	out.Clear()

	for _, dir := range ix.Dirs() {
		if out.Full() {
			break
		}
		ix.scanDir(dir, query, out)
	}

	out.Remove(query)
	out.ResetSelection()

	ix.logger.Debug("search complete", "query", query, "results", out.Len())
}

// scanDir adds matching executables from one directory.
func (ix *Index) scanDir(dir, query string, out *suggest.List) {
	f, err := os.Open(dir) //nolint:gosec // directories come from the search path
	if err != nil {
		ix.logger.Debug("skipping search path entry", "dir", dir, "error", err)
		return
	}
	defer func() { _ = f.Close() }()

	for !out.Full() {
		entries, err := f.ReadDir(readBatch)
		for _, entry := range entries {
			if out.Full() {
				return
			}
			name := entry.Name()
			if !strings.HasPrefix(name, query) {
				continue
			}
			if executableEntry(dir, entry) {
				out.Add(name)
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				ix.logger.Debug("stopped reading search path entry", "dir", dir, "error", err)
			}
			return
		}
	}
}

// Contains reports whether some search-path directory holds an executable
// named exactly name.
func (ix *Index) Contains(name string) bool {
	if name == "" || strings.ContainsRune(name, filepath.Separator) {
		return false
	}
	for _, dir := range ix.Dirs() {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if isExecutable(path, info) {
			return true
		}
	}
	return false
}

// executableEntry reports whether a directory entry is a runnable file.
// Symlinks are followed; directories never count.
func executableEntry(dir string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return false
	}
	path := filepath.Join(dir, entry.Name())

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return isExecutable(path, info)
}
