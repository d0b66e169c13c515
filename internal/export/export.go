package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/san-kum/classkit/internal/grouping"
	"github.com/san-kum/classkit/internal/seating"
)

var ErrUnsupportedFormat = errors.New("export: unsupported format")

type Format string

const (
	JSON Format = "json"
	CSV  Format = "csv"
	XLSX Format = "xlsx"
	SVG  Format = "svg"
)

// Kinds used as the filename stem when a class has no name.
const (
	KindSeating = "klasindeling"
	KindGroups  = "groepjes"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch f := Format(ext); f {
	case JSON, CSV, XLSX, SVG:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Filename builds "<kind>-<class>.<ext>", or "<kind>.<ext>" for a blank
// class name. The class part is lowercased and every run of
// non-alphanumerics becomes a single dash.
func Filename(className, kind, ext string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(className)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			dash = false
			sb.WriteRune(r)
			continue
		}
		dash = true
	}
	ext = strings.TrimPrefix(ext, ".")
	if sb.Len() == 0 {
		return kind + "." + ext
	}
	return kind + "-" + sb.String() + "." + ext
}

// WriteGrid encodes a seating grid in the given format.
func WriteGrid(w io.Writer, g *seating.Grid, f Format) error {
	switch f {
	case JSON:
		return GridJSON(w, g)
	case CSV:
		return GridCSV(w, g)
	case XLSX:
		return GridXLSX(w, g)
	case SVG:
		_, err := io.WriteString(w, GridSVG(g, DefaultCellWidth, DefaultCellHeight))
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// WriteGroups encodes groups in the given format. SVG is not offered for
// groups.
func WriteGroups(w io.Writer, groups []grouping.Group, f Format) error {
	switch f {
	case JSON:
		return GroupsJSON(w, groups)
	case CSV:
		return GroupsCSV(w, groups)
	case XLSX:
		return GroupsXLSX(w, groups)
	}
	return fmt.Errorf("%w: %q for groups", ErrUnsupportedFormat, f)
}

// GridToFile writes g to path, choosing the format from the extension.
func GridToFile(path string, g *seating.Grid) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return toFile(path, func(w io.Writer) error { return WriteGrid(w, g, f) })
}

// GroupsToFile writes groups to path, choosing the format from the extension.
func GroupsToFile(path string, groups []grouping.Group) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return toFile(path, func(w io.Writer) error { return WriteGroups(w, groups, f) })
}

func toFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		os.Remove(path)
		return err
	}
	return file.Close()
}
