package services

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// CountPDFPages reads the page count from raw PDF bytes.
func CountPDFPages(data []byte) (int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("cannot create PDF reader: %w", err)
	}
	return reader.NumPage(), nil
}
