// Package romfile loads a cartridge image from disk for the CLI front end
// described in spec.md §6. It is a thin, archive-aware wrapper around
// os.ReadFile: raw .gb/.gbc images pass through unchanged, .zip and .7z
// archives are transparently opened and their first entry extracted. None
// of this touches THE CORE; §1 scopes the loader itself as "a trivial
// read-entire-file loader" belonging to the non-core front end.
package romfile

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/pkg/errors"
)

// Load reads the ROM at path, transparently extracting it from a .zip or
// .7z archive (first entry) if the extension indicates one.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "romfile: reading rom")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return loadFromZip(data)
	case ".7z":
		return loadFromSevenZip(path, data)
	default:
		return data, nil
	}
}

func loadFromZip(data []byte) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.Wrap(err, "romfile: opening zip archive")
	}
	if len(r.File) == 0 {
		return nil, errors.New("romfile: zip archive is empty")
	}

	f, err := r.File[0].Open()
	if err != nil {
		return nil, errors.Wrap(err, "romfile: opening zip entry")
	}
	defer f.Close()

	out, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrap(err, "romfile: reading zip entry")
	}
	return out, nil
}

func loadFromSevenZip(path string, data []byte) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "romfile: reopening 7z archive")
	}
	defer f.Close()

	r, err := sevenzip.NewReader(f, int64(len(data)))
	if err != nil {
		return nil, errors.Wrap(err, "romfile: opening 7z archive")
	}
	if len(r.File) == 0 {
		return nil, errors.New("romfile: 7z archive is empty")
	}

	entry, err := r.File[0].Open()
	if err != nil {
		return nil, errors.Wrap(err, "romfile: opening 7z entry")
	}
	defer entry.Close()

	out, err := io.ReadAll(entry)
	if err != nil {
		return nil, errors.Wrap(err, "romfile: reading 7z entry")
	}
	return out, nil
}

// SavePath derives the battery-save path for a ROM path, per spec.md §6:
// the same path with its extension replaced by ".sav".
func SavePath(romPath string) string {
	ext := filepath.Ext(romPath)
	return strings.TrimSuffix(romPath, ext) + ".sav"
}
