package repository

// Operadores de filtro aceitos nas listagens.
const (
	OpEq       = "eq"
	OpContains = "contains"
)

// ListQuery parâmetros de listagem aplicados pelo adaptador de persistência.
// O caller resolve page/pageSize em Limit/Offset antes de chegar aqui.
// Filter* vazios significam listagem sem filtro.
type ListQuery struct {
	Limit       int
	Offset      int
	FilterField string
	FilterOp    string // eq | contains
	FilterValue string
}

// HasFilter informa se a consulta carrega um filtro completo.
func (q ListQuery) HasFilter() bool {
	return q.FilterField != "" && q.FilterOp != "" && q.FilterValue != ""
}
