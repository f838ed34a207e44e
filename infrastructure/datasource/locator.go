package datasource

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// Locator resolve o caminho do arquivo de origem de cada marketplace
type Locator struct {
	fs      afero.Fs
	dataDir string
	baseDir string
}

func NewLocator(fs afero.Fs, dataDir, baseDir string) *Locator {
	return &Locator{fs: fs, dataDir: dataDir, baseDir: baseDir}
}

// Resolve usa o primeiro caminho existente entre DATA_DIR/arquivo, BASE/data/arquivo
// e BASE/arquivo. Sem nenhum, fica DATA_DIR/arquivo para a recarga detectar depois.
func (l *Locator) Resolve(fileName string) string {
	if filepath.IsAbs(fileName) {
		return fileName
	}

	candidates := []string{
		filepath.Join(l.dataDir, fileName),
		filepath.Join(l.baseDir, "data", fileName),
		filepath.Join(l.baseDir, fileName),
	}
	for _, candidate := range candidates {
		if exists, err := afero.Exists(l.fs, candidate); err == nil && exists {
			return candidate
		}
	}
	return candidates[0]
}
