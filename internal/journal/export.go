package journal

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bw-notes/bw/internal/library"
	"github.com/bw-notes/bw/internal/store"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Export writes the whole library to w as JSON (the stored document shape)
// or YAML.
func (j *Journal) Export(w io.Writer, format string) error {
	if format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownFormat, format, FormatJSON, FormatYAML)
	}

	return j.store.View(func(lib *library.Library) error {
		switch format {
		case FormatYAML:
			return encodeYAML(w, lib)
		default:
			return encodeJSON(w, lib)
		}
	})
}

func encodeJSON(w io.Writer, lib *library.Library) error {
	data, err := store.Encode(lib)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	data = append(data, '\n')

	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("write export: %w", err)
	}

	return nil
}

func encodeYAML(w io.Writer, lib *library.Library) error {
	books := lib.Books
	if books == nil {
		books = []library.Book{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	err := enc.Encode(books)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}
