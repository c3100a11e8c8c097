package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/christian-de-ornellas/menuio-backend/internal/domain/repository"
)

// isUniqueViolation verifica se o erro é violação de constraint única (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// filterSQL traduz o filtro da consulta em cláusula SQL com placeholder $1.
// columns mapeia o código do campo anunciado na estrutura para a coluna real;
// campo ou operador desconhecidos resultam em listagem sem filtro.
func filterSQL(columns map[string]string, q repository.ListQuery) (clause string, arg interface{}, ok bool) {
	if !q.HasFilter() {
		return "", nil, false
	}
	col, found := columns[q.FilterField]
	if !found {
		return "", nil, false
	}
	switch q.FilterOp {
	case repository.OpEq:
		return col + " = $1", q.FilterValue, true
	case repository.OpContains:
		return col + " ILIKE $1", "%" + q.FilterValue + "%", true
	}
	return "", nil, false
}
