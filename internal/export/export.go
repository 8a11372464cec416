// Package export writes product pages as comma separated text.
package export

import (
	"bufio"
	"catadmin/internal/catalog"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var Header = []string{"ID", "Title", "Price", "Category", "Description", "Images"}

const imageSeparator = "; "

// EscapeField quotes a field only when it holds a comma, a quote or a
// newline, doubling inner quotes.
func EscapeField(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func Record(p catalog.Product) []string {
	return []string{
		strconv.Itoa(p.ID),
		p.Title,
		catalog.FormatPrice(p.Price),
		p.CategoryName(),
		p.Description,
		strings.Join(p.DisplayImages(), imageSeparator),
	}
}

func writeRecord(w *bufio.Writer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteString(EscapeField(f))
	}
	w.WriteByte('\n')
}

func WriteCSV(w io.Writer, products []catalog.Product) error {
	bw := bufio.NewWriter(w)
	writeRecord(bw, Header)
	for _, p := range products {
		writeRecord(bw, Record(p))
	}
	return bw.Flush()
}

func FileName(page int, at time.Time) string {
	return fmt.Sprintf("products_page_%d_%d.csv", page, at.UnixMilli())
}

// WriteFile writes products into dir and returns the path of the new file.
func WriteFile(dir string, page int, at time.Time, products []catalog.Product) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(page, at))

	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return "", err
	}
	if err := WriteCSV(f, products); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return "", err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return "", err
	}
	return path, nil
}
