package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commission-engine/infrastructure/repository"
	"github.com/vfg2006/commission-engine/internal/config"
)

// DatasetReloadConfig representa a configuração do agendador de recarga dos dados
type DatasetReloadConfig struct {
	CronSchedule string
	Enabled      bool
}

// DatasetReloadService verifica periodicamente os arquivos de origem e recarrega o que mudou
type DatasetReloadService struct {
	scheduler             *gocron.Scheduler
	config                DatasetReloadConfig
	refresher             repository.Refresher
	reloadRunning         bool
	reloadMutex           sync.Mutex
	lastReloadStartedAt   time.Time
	lastReloadCompletedAt time.Time
	lastReloadChanged     bool
	lastReloadForced      bool
}

// NewDatasetReloadService cria uma nova instância do serviço de recarga
func NewDatasetReloadService(refresher repository.Refresher, appConfig *config.Config) *DatasetReloadService {
	reloadConfig := DatasetReloadConfig{
		CronSchedule: appConfig.Dataset.ReloadCron,
		Enabled:      appConfig.Dataset.ReloadEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reloadConfig.CronSchedule,
		"enabled":       reloadConfig.Enabled,
	}).Info("Configuração do agendador de recarga de dados carregada")

	return &DatasetReloadService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    reloadConfig,
		refresher: refresher,
	}
}

// Start inicia o agendador
func (s *DatasetReloadService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Recarga periódica de dados desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga de dados")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.reload(false)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga de dados: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga de dados")
		s.scheduler.Stop()
	}()

	return nil
}

// ForceReload recarrega todas as origens imediatamente, ignorando o mtime.
// Retorna se algum snapshot mudou e false quando outra recarga já está em andamento.
func (s *DatasetReloadService) ForceReload() (changed bool, started bool) {
	return s.reload(true)
}

// TriggerManualSync dispara uma recarga forçada em background.
// Retorna false quando já existe uma recarga em andamento.
func (s *DatasetReloadService) TriggerManualSync() bool {
	s.reloadMutex.Lock()
	if s.reloadRunning {
		s.reloadMutex.Unlock()
		logrus.Info("Recarga de dados já em andamento, ignorando solicitação manual")
		return false
	}
	s.reloadMutex.Unlock()

	logrus.Info("Iniciando recarga manual de dados")
	go s.reload(true)
	return true
}

func (s *DatasetReloadService) reload(force bool) (bool, bool) {
	s.reloadMutex.Lock()
	if s.reloadRunning {
		s.reloadMutex.Unlock()
		logrus.Info("Recarga de dados já em andamento, ignorando")
		return false, false
	}
	s.reloadRunning = true
	startTime := time.Now()
	s.lastReloadStartedAt = startTime
	s.reloadMutex.Unlock()

	changed := s.refresher.Refresh(force)

	s.reloadMutex.Lock()
	s.reloadRunning = false
	s.lastReloadCompletedAt = time.Now()
	s.lastReloadChanged = changed
	s.lastReloadForced = force
	s.reloadMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"changed":  changed,
		"forced":   force,
	}).Debug("Recarga de dados concluída")

	return changed, true
}

// GetStatus retorna o status atual do agendador
func (s *DatasetReloadService) GetStatus() map[string]any {
	s.reloadMutex.Lock()
	defer s.reloadMutex.Unlock()

	return map[string]any{
		"reload_enabled":           s.config.Enabled,
		"reload_cron":              s.config.CronSchedule,
		"reload_running":           s.reloadRunning,
		"last_reload_started_at":   s.lastReloadStartedAt,
		"last_reload_completed_at": s.lastReloadCompletedAt,
		"last_reload_changed":      s.lastReloadChanged,
		"last_reload_forced":       s.lastReloadForced,
	}
}
