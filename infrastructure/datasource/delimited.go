package datasource

import (
	"bytes"
	"encoding/csv"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeText devolve o conteúdo em UTF-8. Arquivos que não são UTF-8 válido
// são lidos como Windows-1254 (turco).
func decodeText(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return data, nil
	}
	return charmap.Windows1254.NewDecoder().Bytes(data)
}

func parseDelimited(data []byte, delimiter rune) ([][]string, error) {
	text, err := decodeText(data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(text))
	if delimiter != 0 {
		reader.Comma = delimiter
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	return reader.ReadAll()
}
