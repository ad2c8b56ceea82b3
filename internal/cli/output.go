package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/oggyb/noor-names/internal/catalog"
)

// writeNames prints one name per line in text mode, or a JSON array.
func writeNames(w io.Writer, format string, names []catalog.NameRecord) error {
	if format == "json" {
		if names == nil {
			names = []catalog.NameRecord{}
		}
		return writeJSON(w, names)
	}
	if len(names) == 0 {
		_, err := fmt.Fprintln(w, "no names found")
		return err
	}
	for _, n := range names {
		if _, err := fmt.Fprintf(w, "%-10s %-8s %-7s %3.0f  %s\n",
			n.EnglishName, n.ArabicName, n.Gender, n.Popularity, n.Meaning); err != nil {
			return err
		}
	}
	return nil
}

func writeLetters(w io.Writer, format string, letters []string) error {
	if format == "json" {
		if letters == nil {
			letters = []string{}
		}
		return writeJSON(w, letters)
	}
	_, err := fmt.Fprintln(w, strings.Join(letters, " "))
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
