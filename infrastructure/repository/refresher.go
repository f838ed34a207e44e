package repository

// Refresher recarrega dados cuja origem mudou
type Refresher interface {
	Refresh(force bool) bool
}

// RefreshGroup recarrega vários repositórios em sequência
type RefreshGroup []Refresher

// Refresh retorna true quando algum dos repositórios mudou
func (g RefreshGroup) Refresh(force bool) bool {
	changed := false
	for _, refresher := range g {
		if refresher.Refresh(force) {
			changed = true
		}
	}
	return changed
}
