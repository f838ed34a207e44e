// Package datasource lê as tabelas de origem (texto delimitado ou planilha) a partir do sistema de arquivos
package datasource

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/vfg2006/commission-engine/internal/domain"
)

//go:generate mockgen -source=reader.go -destination=mocks/mock_reader.go -package=mocks

// TableReader lê uma tabela bruta com cabeçalho
type TableReader interface {
	ReadTable(path string, delimiter rune) (*domain.RawTable, error)
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

// ReadTable escolhe o leitor pela extensão; qualquer extensão diferente de planilha é texto delimitado
func (r *Reader) ReadTable(path string, delimiter rune) (*domain.RawTable, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(domain.ErrSourceUnavailable, "reading %s", path)
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	var records [][]string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		records, err = parseWorkbook(data)
	default:
		records, err = parseDelimited(data, delimiter)
	}
	if err != nil {
		return nil, errors.Wrapf(fmt.Errorf("%w: %w", domain.ErrMalformedSource, err), "parsing %s", path)
	}

	return toTable(records), nil
}

func toTable(records [][]string) *domain.RawTable {
	if len(records) == 0 {
		return &domain.RawTable{}
	}

	columns := make([]string, len(records[0]))
	for i, column := range records[0] {
		columns[i] = strings.TrimSpace(column)
	}

	return &domain.RawTable{
		Columns: columns,
		Rows:    records[1:],
	}
}
