package querying

import (
	"sort"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/vfg2006/commission-engine/infrastructure/repository"
	"github.com/vfg2006/commission-engine/internal/config"
	"github.com/vfg2006/commission-engine/internal/domain"
	"github.com/vfg2006/commission-engine/pkg/apiErrors"
	"github.com/vfg2006/commission-engine/pkg/utils"
)

const defaultCacheTTL = 10 * time.Minute

// Prioridades da busca: categoria, subcategoria e grupo de produto
const (
	priorityCategory = iota
	prioritySubCategory
	priorityProductGroup
)

type Querier interface {
	GetMarketplaces() []domain.MarketplaceInfo
	ListCategories(marketplaceID string) ([]string, error)
	ListSubCategories(marketplaceID, category string) ([]string, error)
	ListProductGroups(marketplaceID, category, subCategory string) ([]string, error)
	FindCommission(marketplaceID string, path domain.CategoryPath) (*domain.Commission, error)
	Search(marketplaceID, query string) ([]domain.SearchHit, error)
	AggregateByProductGroup(marketplaceID, query string) ([]domain.ProductGroupCommission, error)
}

type Service struct {
	repository repository.CommissionRepository
	results    *cache.Cache
}

func NewService(commissionRepository repository.CommissionRepository, cfg *config.Config) Querier {
	ttl := cfg.Query.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &Service{
		repository: commissionRepository,
		results:    cache.New(ttl, 2*ttl),
	}
}

// GetMarketplaces resume cada marketplace configurado, na ordem do catálogo
func (s *Service) GetMarketplaces() []domain.MarketplaceInfo {
	definitions := s.repository.Definitions()
	infos := make([]domain.MarketplaceInfo, 0, len(definitions))

	for _, def := range definitions {
		info := domain.MarketplaceInfo{
			ID:   def.ID,
			Name: def.Name,
		}

		if status, ok := s.repository.Status(def.ID); ok {
			info.Path = status.Path
			info.Exists = status.Exists
			info.LastError = status.LastError
			if !status.LoadedAt.IsZero() {
				loadedAt := status.LoadedAt
				info.LoadedAt = &loadedAt
			}
		}

		if snapshot, ok := s.repository.Snapshot(def.ID); ok {
			info.RowCount = snapshot.Len()
			info.Version = snapshot.Version
			info.ProductCount = snapshot.Len()
			if def.CountDistinctProductGroups {
				info.ProductCount = snapshot.DistinctProductGroups()
			}
		}

		infos = append(infos, info)
	}

	return infos
}

func (s *Service) ListCategories(marketplaceID string) ([]string, error) {
	snapshot, err := s.snapshot(marketplaceID)
	if err != nil {
		return nil, err
	}

	return distinctSorted(snapshot.Rows, func(row domain.CanonicalRow) (string, bool) {
		return row.Category, true
	}), nil
}

func (s *Service) ListSubCategories(marketplaceID, category string) ([]string, error) {
	snapshot, err := s.snapshot(marketplaceID)
	if err != nil {
		return nil, err
	}

	return distinctSorted(snapshot.Rows, func(row domain.CanonicalRow) (string, bool) {
		return row.SubCategory, row.Category == category
	}), nil
}

func (s *Service) ListProductGroups(marketplaceID, category, subCategory string) ([]string, error) {
	snapshot, err := s.snapshot(marketplaceID)
	if err != nil {
		return nil, err
	}

	return distinctSorted(snapshot.Rows, func(row domain.CanonicalRow) (string, bool) {
		return row.ProductGroup, row.Category == category && row.SubCategory == subCategory
	}), nil
}

// FindCommission busca o caminho completo exato; sem correspondência retorna ErrCommissionNotFound
func (s *Service) FindCommission(marketplaceID string, path domain.CategoryPath) (*domain.Commission, error) {
	snapshot, err := s.snapshot(marketplaceID)
	if err != nil {
		return nil, err
	}

	for _, row := range snapshot.Rows {
		if !path.Matches(row) {
			continue
		}
		if row.CommissionPercent == nil {
			break
		}
		return &domain.Commission{
			Percent: *row.CommissionPercent,
			Source:  marketplaceID,
			Path:    path,
		}, nil
	}

	return nil, NewQueryError(ErrCommissionNotFound, apiErrors.ErrCommissionNotFound, marketplaceID,
		path.Category+domain.PathSeparator+path.SubCategory+domain.PathSeparator+path.ProductGroup)
}

// Search procura o texto em categoria, subcategoria e grupo de produto, ignorando
// maiúsculas e letras turcas. Consulta vazia devolve todas as linhas na ordem original.
func (s *Service) Search(marketplaceID, query string) ([]domain.SearchHit, error) {
	snapshot, err := s.snapshot(marketplaceID)
	if err != nil {
		return nil, err
	}

	needle := utils.FoldSearchKey(query)
	key := cacheKey("search", snapshot, needle)
	if cached, found := s.results.Get(key); found {
		return append([]domain.SearchHit(nil), cached.([]domain.SearchHit)...), nil
	}

	hits := make([]domain.SearchHit, 0)
	for _, row := range snapshot.Rows {
		priority, matched := matchPriority(row, needle)
		if !matched {
			continue
		}
		hits = append(hits, domain.SearchHit{
			CanonicalRow: row,
			DisplayPath:  row.DisplayPath(),
			Priority:     priority,
		})
	}

	if needle != "" {
		sort.SliceStable(hits, func(i, j int) bool {
			if hits[i].Priority != hits[j].Priority {
				return hits[i].Priority < hits[j].Priority
			}
			return strings.ToLower(hits[i].FullPath()) < strings.ToLower(hits[j].FullPath())
		})
	}

	s.results.SetDefault(key, hits)
	return append([]domain.SearchHit(nil), hits...), nil
}

// AggregateByProductGroup agrupa por grupo de produto (filtrado pela consulta) e mantém
// a maior comissão de cada grupo; em empate fica a primeira. Comissão ausente conta como 0.
func (s *Service) AggregateByProductGroup(marketplaceID, query string) ([]domain.ProductGroupCommission, error) {
	snapshot, err := s.snapshot(marketplaceID)
	if err != nil {
		return nil, err
	}

	needle := utils.FoldSearchKey(query)
	key := cacheKey("aggregate", snapshot, needle)
	if cached, found := s.results.Get(key); found {
		return append([]domain.ProductGroupCommission(nil), cached.([]domain.ProductGroupCommission)...), nil
	}

	positions := make(map[string]int)
	entries := make([]domain.ProductGroupCommission, 0)
	for _, row := range snapshot.Rows {
		if row.ProductGroup == "" {
			continue
		}
		if needle != "" && !strings.Contains(utils.FoldSearchKey(row.ProductGroup), needle) {
			continue
		}

		position, seen := positions[row.ProductGroup]
		if !seen {
			positions[row.ProductGroup] = len(entries)
			entries = append(entries, newProductGroupCommission(row))
			continue
		}
		if commissionValue(row.CommissionPercent) > commissionValue(entries[position].CommissionPercent) {
			entries[position] = newProductGroupCommission(row)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].ProductGroup) < strings.ToLower(entries[j].ProductGroup)
	})

	s.results.SetDefault(key, entries)
	return append([]domain.ProductGroupCommission(nil), entries...), nil
}

func (s *Service) snapshot(marketplaceID string) (*domain.DatasetSnapshot, error) {
	snapshot, ok := s.repository.Snapshot(marketplaceID)
	if !ok {
		return nil, NewQueryError(ErrMarketplaceNotFound, apiErrors.ErrMarketplaceNotFound, marketplaceID, marketplaceID)
	}
	if snapshot == nil {
		return domain.EmptySnapshot(marketplaceID), nil
	}
	return snapshot, nil
}

func matchPriority(row domain.CanonicalRow, needle string) (int, bool) {
	if needle == "" {
		return priorityCategory, true
	}

	switch {
	case strings.Contains(utils.FoldSearchKey(row.Category), needle):
		return priorityCategory, true
	case strings.Contains(utils.FoldSearchKey(row.SubCategory), needle):
		return prioritySubCategory, true
	case strings.Contains(utils.FoldSearchKey(row.ProductGroup), needle):
		return priorityProductGroup, true
	}
	return 0, false
}

func newProductGroupCommission(row domain.CanonicalRow) domain.ProductGroupCommission {
	entry := domain.ProductGroupCommission{
		ProductGroup:      row.ProductGroup,
		Category:          row.Category,
		SubCategory:       row.SubCategory,
		CommissionPercent: row.CommissionPercent,
		DisplayPath:       row.DisplayPath(),
	}
	if row.CommissionPercent != nil {
		entry.CommissionText = utils.FormatPercent(*row.CommissionPercent)
	}
	return entry
}

func commissionValue(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}

// cacheKey inclui a versão do snapshot, então uma recarga invalida os resultados antigos
func cacheKey(operation string, snapshot *domain.DatasetSnapshot, needle string) string {
	return strings.Join([]string{operation, snapshot.MarketplaceID, snapshot.Version, needle}, "|")
}

func distinctSorted(rows []domain.CanonicalRow, pick func(row domain.CanonicalRow) (string, bool)) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, row := range rows {
		value, ok := pick(row)
		if !ok || value == "" {
			continue
		}
		if _, exists := seen[value]; exists {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}
	sort.Strings(values)
	return values
}
