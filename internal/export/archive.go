package export

import (
	"archive/zip"
	"bytes"
	"compress/flate"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ProgressFunc receives best-effort progress during archive creation. The
// "adding" phase covers 0-50%, "compressing" 50-100%.
type ProgressFunc func(phase string, processed, total int, percent float64)

// ZipOptions configures archive creation.
type ZipOptions struct {
	// CompressionLevel is a compress/flate level; nil means
	// flate.DefaultCompression. flate.NoCompression is a valid choice and
	// yields store-only entries.
	CompressionLevel *int
	OnProgress       ProgressFunc
}

// Archive is a finished zip file plus its download name.
type Archive struct {
	Data     []byte
	FileName string
}

// CreateZipFile packs a path->content map into a zip archive. Paths are
// normalized (leading slashes stripped, backslashes converted); the file
// name gets a .zip suffix only when projectName does not already carry one,
// case-insensitively. An empty input map yields a minimal valid archive.
func CreateZipFile(files map[string][]byte, projectName string, opts *ZipOptions) (*Archive, error) {
	if opts == nil {
		opts = &ZipOptions{}
	}
	level := flate.DefaultCompression
	if opts.CompressionLevel != nil {
		level = *opts.CompressionLevel
	}

	type entry struct {
		path    string
		content []byte
	}
	entries := make([]entry, 0, len(files))
	seen := make(map[string]bool, len(files))
	i := 0
	for path, content := range files {
		norm := normalizePath(path)
		if norm == "" {
			return nil, fmt.Errorf("archive entry %q normalizes to an empty path", path)
		}
		if seen[norm] {
			return nil, fmt.Errorf("archive entries collide at %q", norm)
		}
		seen[norm] = true
		entries = append(entries, entry{path: norm, content: content})
		i++
		report(opts.OnProgress, "adding", i, len(files), 0)
	}
	sort.Slice(entries, func(a, b int) bool { return entries[a].path < entries[b].path })

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, level)
	})
	for i, e := range entries {
		w, err := zw.Create(e.path)
		if err != nil {
			return nil, fmt.Errorf("creating archive entry %s: %w", e.path, err)
		}
		if _, err := w.Write(e.content); err != nil {
			return nil, fmt.Errorf("writing archive entry %s: %w", e.path, err)
		}
		report(opts.OnProgress, "compressing", i+1, len(entries), 50)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing archive: %w", err)
	}
	if len(entries) == 0 {
		report(opts.OnProgress, "compressing", 0, 0, 50)
	}

	return &Archive{Data: buf.Bytes(), FileName: zipFileName(projectName)}, nil
}

// report maps per-phase progress onto the half of the 0-100 range the phase
// owns. Callbacks are best effort; a nil callback is fine.
func report(fn ProgressFunc, phase string, processed, total int, base float64) {
	if fn == nil {
		return
	}
	pct := base + 50
	if total > 0 {
		pct = base + 50*float64(processed)/float64(total)
	}
	fn(phase, processed, total, pct)
}

func normalizePath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	return strings.TrimLeft(p, "/")
}

func zipFileName(projectName string) string {
	if strings.HasSuffix(strings.ToLower(projectName), ".zip") {
		return projectName
	}
	return projectName + ".zip"
}
