package domain

import "time"

// DatasetSnapshot é o conjunto imutável de linhas de um marketplace.
// É substituído inteiro a cada recarga e nunca alterado no lugar.
type DatasetSnapshot struct {
	MarketplaceID string
	Rows          []CanonicalRow
	ModTime       time.Time
	LoadedAt      time.Time
	Version       string
}

// NewDatasetSnapshot cria um snapshot a partir das linhas normalizadas
func NewDatasetSnapshot(marketplaceID string, rows []CanonicalRow, modTime time.Time, version string) *DatasetSnapshot {
	return &DatasetSnapshot{
		MarketplaceID: marketplaceID,
		Rows:          rows,
		ModTime:       modTime,
		LoadedAt:      time.Now(),
		Version:       version,
	}
}

// EmptySnapshot é o snapshot usado quando a origem não existe
func EmptySnapshot(marketplaceID string) *DatasetSnapshot {
	return &DatasetSnapshot{MarketplaceID: marketplaceID}
}

func (s *DatasetSnapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Rows)
}

// DistinctProductGroups conta os grupos de produto não vazios
func (s *DatasetSnapshot) DistinctProductGroups() int {
	if s == nil {
		return 0
	}
	seen := make(map[string]struct{}, len(s.Rows))
	for _, row := range s.Rows {
		if row.ProductGroup != "" {
			seen[row.ProductGroup] = struct{}{}
		}
	}
	return len(seen)
}
