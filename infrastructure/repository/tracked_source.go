package repository

import (
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/vfg2006/commission-engine/internal/domain"
)

// SourceStatus descreve o estado do arquivo de origem de um snapshot
type SourceStatus struct {
	Path      string    `json:"path"`
	Exists    bool      `json:"exists"`
	ModTime   time.Time `json:"modTime"`
	LoadedAt  time.Time `json:"loadedAt"`
	LastError string    `json:"lastError,omitempty"`
}

// trackedSource guarda o snapshot carregado de um arquivo e o mtime da última carga bem-sucedida.
// Leitores usam apenas current; mu serializa as recargas.
type trackedSource[T any] struct {
	path    string
	current atomic.Pointer[T]

	mu            sync.Mutex
	exists        bool
	loaded        bool
	modTime       time.Time
	failedModTime time.Time
	loadedAt      time.Time
	lastErr       error
}

func newTrackedSource[T any](path string, empty *T) *trackedSource[T] {
	source := &trackedSource[T]{path: path}
	source.current.Store(empty)
	return source
}

// refresh recarrega quando o mtime mudou ou quando forçado. Em caso de falha o
// snapshot e o mtime anteriores continuam valendo. Arquivo com conteúdo inválido
// só é relido quando mudar ou a recarga for forçada; falhas de leitura são
// tentadas de novo na próxima verificação.
func (s *trackedSource[T]) refresh(fs afero.Fs, force bool, load func(info os.FileInfo) (*T, error), empty func() *T) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, err := fs.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			changed := s.loaded
			s.exists = false
			s.loaded = false
			s.modTime = time.Time{}
			s.failedModTime = time.Time{}
			s.lastErr = nil
			if changed {
				s.current.Store(empty())
			}
			return changed, nil
		}
		s.lastErr = err
		return false, errors.Wrapf(err, "stat %s", s.path)
	}
	s.exists = true

	modTime := info.ModTime()
	if !force {
		if s.loaded && modTime.Equal(s.modTime) {
			return false, nil
		}
		if !s.failedModTime.IsZero() && modTime.Equal(s.failedModTime) {
			return false, nil
		}
	}

	next, err := load(info)
	if err != nil {
		s.lastErr = err
		s.failedModTime = time.Time{}
		if isContentError(err) {
			s.failedModTime = modTime
		}
		return false, err
	}

	s.current.Store(next)
	s.loaded = true
	s.modTime = modTime
	s.failedModTime = time.Time{}
	s.loadedAt = time.Now()
	s.lastErr = nil
	return true, nil
}

func (s *trackedSource[T]) snapshot() *T {
	return s.current.Load()
}

func (s *trackedSource[T]) status() SourceStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := SourceStatus{
		Path:     s.path,
		Exists:   s.exists,
		ModTime:  s.modTime,
		LoadedAt: s.loadedAt,
	}
	if s.lastErr != nil {
		status.LastError = s.lastErr.Error()
	}
	return status
}

// isContentError indica erro que não muda sem mudar o arquivo
func isContentError(err error) bool {
	return errors.Is(err, domain.ErrResolution) || errors.Is(err, domain.ErrMalformedSource)
}
