package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/commission-engine/infrastructure/repository"
	"github.com/vfg2006/commission-engine/infrastructure/repository/mocks"
	"github.com/vfg2006/commission-engine/internal/config"
	"go.uber.org/mock/gomock"
)

func newTestConfig(enabled bool) *config.Config {
	cfg := &config.Config{}
	cfg.Dataset.ReloadCron = "*/5 * * * *"
	cfg.Dataset.ReloadEnabled = enabled
	return cfg
}

func TestDatasetReloadService_ForceReload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		setup    func(*mocks.MockCommissionRepository, *mocks.MockFreightRepository)
		expected bool
	}{
		{
			name: "Nenhuma origem mudou",
			setup: func(commissions *mocks.MockCommissionRepository, freight *mocks.MockFreightRepository) {
				commissions.EXPECT().Refresh(true).Return(false)
				freight.EXPECT().Refresh(true).Return(false)
			},
			expected: false,
		},
		{
			name: "Tabela de frete mudou",
			setup: func(commissions *mocks.MockCommissionRepository, freight *mocks.MockFreightRepository) {
				commissions.EXPECT().Refresh(true).Return(false)
				freight.EXPECT().Refresh(true).Return(true)
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commissions := mocks.NewMockCommissionRepository(ctrl)
			freight := mocks.NewMockFreightRepository(ctrl)
			tt.setup(commissions, freight)

			service := NewDatasetReloadService(repository.RefreshGroup{commissions, freight}, newTestConfig(true))

			changed, started := service.ForceReload()
			assert.True(t, started)
			assert.Equal(t, tt.expected, changed)

			status := service.GetStatus()
			assert.Equal(t, tt.expected, status["last_reload_changed"])
			assert.Equal(t, true, status["last_reload_forced"])
			assert.Equal(t, false, status["reload_running"])
		})
	}
}

func TestDatasetReloadService_IgnoresConcurrentReload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	commissions := mocks.NewMockCommissionRepository(ctrl)
	service := NewDatasetReloadService(commissions, newTestConfig(true))

	service.reloadRunning = true
	changed, started := service.ForceReload()

	assert.False(t, started)
	assert.False(t, changed)
}

func TestDatasetReloadService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	done := make(chan struct{})
	commissions := mocks.NewMockCommissionRepository(ctrl)
	commissions.EXPECT().Refresh(true).DoAndReturn(func(force bool) bool {
		close(done)
		return true
	})

	service := NewDatasetReloadService(commissions, newTestConfig(true))
	require.True(t, service.TriggerManualSync())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("recarga em background não foi executada")
	}

	assert.Eventually(t, func() bool {
		status := service.GetStatus()
		return status["reload_running"] == false && status["last_reload_changed"] == true
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDatasetReloadService_TriggerManualSyncWhileRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewDatasetReloadService(mocks.NewMockCommissionRepository(ctrl), newTestConfig(true))
	service.reloadRunning = true

	assert.False(t, service.TriggerManualSync())
}

func TestDatasetReloadService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	commissions := mocks.NewMockCommissionRepository(ctrl)
	service := NewDatasetReloadService(commissions, newTestConfig(false))

	require.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["reload_enabled"])
}

func TestDatasetReloadService_StartInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := newTestConfig(true)
	cfg.Dataset.ReloadCron = "invalido"

	service := NewDatasetReloadService(mocks.NewMockCommissionRepository(ctrl), cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, service.Start(ctx))
}
