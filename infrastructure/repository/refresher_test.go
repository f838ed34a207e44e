package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubRefresher struct {
	changed bool
	calls   []bool
}

func (s *stubRefresher) Refresh(force bool) bool {
	s.calls = append(s.calls, force)
	return s.changed
}

func TestRefreshGroup_Refresh(t *testing.T) {
	unchanged := &stubRefresher{}
	changed := &stubRefresher{changed: true}

	assert.True(t, RefreshGroup{unchanged, changed}.Refresh(true))
	assert.False(t, RefreshGroup{unchanged}.Refresh(false))

	// todos são chamados mesmo depois de uma mudança
	assert.Equal(t, []bool{true, false}, unchanged.calls)
	assert.Equal(t, []bool{true}, changed.calls)
}
