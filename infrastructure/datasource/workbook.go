package datasource

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

// parseWorkbook lê a primeira planilha do arquivo
func parseWorkbook(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	return f.GetRows(sheet)
}
