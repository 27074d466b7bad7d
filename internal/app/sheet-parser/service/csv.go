package sheet_parser_service

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8Bom = []byte{0xEF, 0xBB, 0xBF}

// readCsvGrid decodes UTF-8 (with or without BOM) and falls back to
// Windows-1252 for legacy exports. The delimiter is ',' unless the first
// line has more ';' than ','.
func readCsvGrid(file []byte) ([][]string, error) {
	data := bytes.TrimPrefix(file, utf8Bom)
	if !utf8.Valid(data) {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return nil, err
		}
		data = decoded
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = detectDelimiter(data)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var grid [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		grid = append(grid, rec)
	}
	return grid, nil
}

func detectDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}
