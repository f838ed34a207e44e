package domain

// RawTable é uma tabela lida da origem, antes de qualquer normalização
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex mapeia cada nome de coluna para a primeira posição em que aparece
func (t *RawTable) ColumnIndex() map[string]int {
	index := make(map[string]int, len(t.Columns))
	for i, column := range t.Columns {
		if _, exists := index[column]; !exists {
			index[column] = i
		}
	}
	return index
}

// Cell retorna a célula da linha ou string vazia quando a linha é mais curta
func (t *RawTable) Cell(row []string, column int) string {
	if column < 0 || column >= len(row) {
		return ""
	}
	return row[column]
}
