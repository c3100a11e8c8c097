package usecase

import (
	"github.com/christian-de-ornellas/menuio-backend/internal/application/dto"
	"github.com/christian-de-ornellas/menuio-backend/internal/domain/repository"
)

// listQueryFor converte os parâmetros normalizados em consulta de listagem.
// Só repassa o filtro quando a estrutura da entidade o anuncia; filtros fora
// do metadado são ignorados em vez de rejeitados.
func listQueryFor(structure dto.Structure, p dto.ListParams) repository.ListQuery {
	q := repository.ListQuery{
		Limit:  p.PageSize,
		Offset: p.Offset(),
	}
	if p.FilterField != "" && structure.AllowsFilter(p.FilterField, p.FilterOp) && p.FilterValue != "" {
		q.FilterField = p.FilterField
		q.FilterOp = p.FilterOp
		q.FilterValue = p.FilterValue
	}
	return q
}
