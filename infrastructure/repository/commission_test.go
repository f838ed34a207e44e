package repository

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/commission-engine/infrastructure/datasource"
	dsmocks "github.com/vfg2006/commission-engine/infrastructure/datasource/mocks"
	"github.com/vfg2006/commission-engine/internal/domain"
	"github.com/vfg2006/commission-engine/internal/normalizer"
	"go.uber.org/mock/gomock"
)

const trendyolPath = "/data/trendyol.csv"

func testDefinitions() []domain.MarketplaceDefinition {
	return []domain.MarketplaceDefinition{
		{
			ID:       "trendyol",
			Name:     "Trendyol",
			FileName: "trendyol.csv",
			Candidates: domain.ColumnCandidates{
				Category:     []string{"Ana Kategori", "Kategori"},
				SubCategory:  []string{"Kategori", "Alt Kategori"},
				ProductGroup: []string{"Ürün Grubu"},
				Commission:   []string{"komisyon"},
			},
		},
	}
}

func newTestCommissionRepository(fs afero.Fs) CommissionRepository {
	return NewCommissionRepository(
		fs,
		datasource.NewLocator(fs, "/data", "/app"),
		datasource.NewReader(fs),
		normalizer.New(),
		testDefinitions(),
		2,
	)
}

func writeSource(t *testing.T, fs afero.Fs, path, content string, modTime time.Time) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	require.NoError(t, fs.Chtimes(path, modTime, modTime))
}

func TestCommissionRepository_Refresh(t *testing.T) {
	first := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	fs := afero.NewMemMapFs()
	writeSource(t, fs, trendyolPath, "Ana Kategori,Kategori,Ürün Grubu,komisyon\nElektronik,Telefon,Kılıf,12\n", first)

	repo := newTestCommissionRepository(fs)

	// carga inicial
	assert.True(t, repo.Refresh(true))
	snapshot, ok := repo.Snapshot("trendyol")
	require.True(t, ok)
	assert.Equal(t, 1, snapshot.Len())
	assert.True(t, first.Equal(snapshot.ModTime))
	assert.NotEmpty(t, snapshot.Version)

	// sem mudança no arquivo nada é recarregado
	assert.False(t, repo.Refresh(false))
	same, _ := repo.Snapshot("trendyol")
	assert.Same(t, snapshot, same)

	// mtime novo troca o snapshot
	writeSource(t, fs, trendyolPath, "Ana Kategori,Kategori,Ürün Grubu,komisyon\nElektronik,Telefon,Kılıf,12\nModa,Ayakkabı,Spor,15\n", second)
	assert.True(t, repo.Refresh(false))
	reloaded, _ := repo.Snapshot("trendyol")
	assert.Equal(t, 2, reloaded.Len())
	assert.NotEqual(t, snapshot.Version, reloaded.Version)

	// o snapshot antigo continua íntegro para quem ainda o segura
	assert.Equal(t, 1, snapshot.Len())

	// forçar recarrega mesmo sem mudança
	assert.True(t, repo.Refresh(true))
}

func TestCommissionRepository_FailedReloadKeepsPreviousSnapshot(t *testing.T) {
	first := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	broken := first.Add(time.Hour)
	fixed := broken.Add(time.Hour)

	fs := afero.NewMemMapFs()
	writeSource(t, fs, trendyolPath, "Ana Kategori,Kategori,Ürün Grubu,komisyon\nEv,Mutfak,Tava,10\n", first)

	repo := newTestCommissionRepository(fs)
	require.True(t, repo.Refresh(true))
	previous, _ := repo.Snapshot("trendyol")

	// tabela sem grupo de produto: erro de resolução
	writeSource(t, fs, trendyolPath, "Kategori,komisyon\nEv,10\n", broken)
	assert.False(t, repo.Refresh(false))

	current, _ := repo.Snapshot("trendyol")
	assert.Same(t, previous, current)

	status, ok := repo.Status("trendyol")
	require.True(t, ok)
	assert.True(t, first.Equal(status.ModTime))
	assert.Contains(t, status.LastError, "resolution")

	// o mesmo arquivo quebrado não é relido
	assert.False(t, repo.Refresh(false))

	writeSource(t, fs, trendyolPath, "Ana Kategori,Kategori,Ürün Grubu,komisyon\nEv,Mutfak,Tava,11\nEv,Mutfak,Bıçak,9\n", fixed)
	assert.True(t, repo.Refresh(false))

	current, _ = repo.Snapshot("trendyol")
	assert.Equal(t, 2, current.Len())

	status, _ = repo.Status("trendyol")
	assert.Empty(t, status.LastError)
}

func TestCommissionRepository_MissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	repo := newTestCommissionRepository(fs)

	// arquivo ausente não é erro: snapshot vazio
	assert.False(t, repo.Refresh(true))
	snapshot, ok := repo.Snapshot("trendyol")
	require.True(t, ok)
	assert.Equal(t, 0, snapshot.Len())

	status, _ := repo.Status("trendyol")
	assert.False(t, status.Exists)
	assert.Equal(t, trendyolPath, status.Path)

	// arquivo aparece
	writeSource(t, fs, trendyolPath, "Ana Kategori,Kategori,Ürün Grubu,komisyon\nEv,Mutfak,Tava,10\n", time.Now())
	assert.True(t, repo.Refresh(false))

	// arquivo removido volta para vazio
	require.NoError(t, fs.Remove(trendyolPath))
	assert.True(t, repo.Refresh(false))
	snapshot, _ = repo.Snapshot("trendyol")
	assert.Equal(t, 0, snapshot.Len())
	assert.False(t, repo.Refresh(false))
}

func TestCommissionRepository_UnknownMarketplace(t *testing.T) {
	repo := newTestCommissionRepository(afero.NewMemMapFs())

	_, ok := repo.Snapshot("etsy")
	assert.False(t, ok)

	_, ok = repo.Status("etsy")
	assert.False(t, ok)
}

func trendyolTable(rows ...[]string) *domain.RawTable {
	return &domain.RawTable{
		Columns: []string{"Ana Kategori", "Kategori", "Ürün Grubu", "komisyon"},
		Rows:    rows,
	}
}

func TestCommissionRepository_ConcurrentRefresh(t *testing.T) {
	first := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)

	fs := afero.NewMemMapFs()
	writeSource(t, fs, trendyolPath, "conteúdo lido pelo mock", first)

	ctrl := gomock.NewController(t)
	reader := dsmocks.NewMockTableReader(ctrl)

	var reads atomic.Int32
	reader.EXPECT().ReadTable(trendyolPath, gomock.Any()).DoAndReturn(func(path string, delimiter rune) (*domain.RawTable, error) {
		n := reads.Add(1)
		// leitura lenta para que as chamadas concorrentes se sobreponham
		time.Sleep(20 * time.Millisecond)
		if n == 1 {
			return trendyolTable([]string{"Elektronik", "Telefon", "Kılıf", "12"}), nil
		}
		return trendyolTable(
			[]string{"Elektronik", "Telefon", "Kılıf", "12"},
			[]string{"Moda", "Ayakkabı", "Spor", "15"},
		), nil
	}).Times(2)

	repo := NewCommissionRepository(fs, datasource.NewLocator(fs, "/data", "/app"), reader, normalizer.New(), testDefinitions(), 2)
	require.True(t, repo.Refresh(false))
	initial, _ := repo.Snapshot("trendyol")
	require.Equal(t, 1, initial.Len())

	writeSource(t, fs, trendyolPath, "conteúdo lido pelo mock", first.Add(time.Hour))

	// leitores contínuos só podem ver o snapshot antigo inteiro ou o novo inteiro
	stop := make(chan struct{})
	var inconsistent atomic.Int32
	var readers sync.WaitGroup
	for i := 0; i < 4; i++ {
		readers.Add(1)
		go func() {
			defer readers.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}

				snapshot, ok := repo.Snapshot("trendyol")
				old := ok && snapshot.Version == initial.Version && snapshot.Len() == 1
				reloaded := ok && snapshot.Version != initial.Version && snapshot.Len() == 2
				if !old && !reloaded {
					inconsistent.Add(1)
				}
			}
		}()
	}

	var changed atomic.Int32
	var refreshers sync.WaitGroup
	for i := 0; i < 8; i++ {
		refreshers.Add(1)
		go func() {
			defer refreshers.Done()
			if repo.Refresh(false) {
				changed.Add(1)
			}
		}()
	}
	refreshers.Wait()
	close(stop)
	readers.Wait()

	assert.Equal(t, int32(2), reads.Load())
	assert.GreaterOrEqual(t, changed.Load(), int32(1))
	assert.Zero(t, inconsistent.Load())

	final, _ := repo.Snapshot("trendyol")
	assert.Equal(t, 2, final.Len())

	// sem nova mudança nenhuma leitura extra
	assert.False(t, repo.Refresh(false))
}

func TestCommissionRepository_TransientReadErrorIsRetried(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSource(t, fs, trendyolPath, "conteúdo lido pelo mock", time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC))

	ctrl := gomock.NewController(t)
	reader := dsmocks.NewMockTableReader(ctrl)
	gomock.InOrder(
		reader.EXPECT().ReadTable(trendyolPath, gomock.Any()).Return(nil, errors.New("read /data/trendyol.csv: i/o timeout")),
		reader.EXPECT().ReadTable(trendyolPath, gomock.Any()).Return(trendyolTable([]string{"Ev", "Mutfak", "Tava", "10"}), nil),
	)

	repo := NewCommissionRepository(fs, datasource.NewLocator(fs, "/data", "/app"), reader, normalizer.New(), testDefinitions(), 1)

	assert.False(t, repo.Refresh(false))
	status, _ := repo.Status("trendyol")
	assert.Contains(t, status.LastError, "i/o timeout")

	// mesmo mtime: falha de leitura é tentada de novo
	assert.True(t, repo.Refresh(false))
	snapshot, _ := repo.Snapshot("trendyol")
	assert.Equal(t, 1, snapshot.Len())

	status, _ = repo.Status("trendyol")
	assert.Empty(t, status.LastError)
	assert.False(t, repo.Refresh(false))
}
