// Package export renders tabular data as downloadable files.
package export

import (
	"bytes"
	"encoding/csv"

	"github.com/pkg/errors"
)

// utf8BOM makes spreadsheet applications detect UTF-8, which matters
// for the zh-TW labels in exported files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSV renders rows as a CSV document with a UTF-8 BOM and CRLF line
// endings. Fields containing quotes, commas or newlines are quoted with
// doubled inner quotes per RFC 4180.
func CSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	w.UseCRLF = true
	if err := w.WriteAll(rows); err != nil {
		return nil, errors.Wrap(err, "failed to write csv rows")
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to flush csv writer")
	}

	return buf.Bytes(), nil
}
