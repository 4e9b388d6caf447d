package reader

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/capgains/model"
)

// defaultPageHeight is the US Letter height, used when a page carries no
// resolvable MediaBox.
const defaultPageHeight = 792.0

// Reader opens a PDF file and yields positioned word tokens page by page.
type Reader struct {
	file *os.File
	pdf  *pdf.Reader
}

// Open opens the PDF at path. The returned Reader must be closed.
func Open(path string) (*Reader, error) {
	file, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open PDF %s: %w", path, err)
	}
	return &Reader{file: file, pdf: r}, nil
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}

// NumPages returns the number of pages in the document.
func (r *Reader) NumPages() int {
	return r.pdf.NumPage()
}

// Page extracts the words and plain text of the page at the given 0-based
// index. Malformed content streams are reported as errors rather than
// panics.
func (r *Reader) Page(index int) (words []model.Word, text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("extract page %d: %v", index+1, rec)
		}
	}()

	page := r.pdf.Page(index + 1)
	if page.V.IsNull() {
		return nil, "", fmt.Errorf("page %d not found", index+1)
	}

	content := page.Content()
	words, text = assembleWords(content.Text, pageHeight(page), index)
	return words, text, nil
}

// pageHeight resolves the page's MediaBox height, walking up the page tree
// since the entry is inheritable.
func pageHeight(page pdf.Page) float64 {
	v := page.V
	for !v.IsNull() {
		box := v.Key("MediaBox")
		if box.Kind() == pdf.Array && box.Len() == 4 {
			return box.Index(3).Float64() - box.Index(1).Float64()
		}
		v = v.Key("Parent")
	}
	return defaultPageHeight
}
