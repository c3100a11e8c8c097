package dto

// Valores padrão de paginação aplicados quando a query não traz
// page/pageSize válidos. Não há limite superior para pageSize: um cliente
// pode pedir páginas arbitrariamente grandes (limitação documentada).
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Field descreve como o cliente deve renderizar um atributo do item.
type Field struct {
	Label     string `json:"label"`
	Code      string `json:"code"`
	IsVisible bool   `json:"isVisible"`
}

// Operator opção de operador de filtro oferecida ao cliente.
type Operator struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Filter descreve um filtro disponível para um campo da entidade.
type Filter struct {
	Label    string     `json:"label"`
	Field    string     `json:"field"`
	Operator []Operator `json:"operator"`
}

// Structure metadados estáticos de renderização por tipo de entidade.
// Não deriva dos dados: é idêntica em todas as páginas.
type Structure struct {
	Fields  []Field  `json:"fields"`
	Filters []Filter `json:"filters,omitempty"`
}

// AllowsFilter informa se a estrutura anuncia o par campo/operador.
// As listagens só aplicam filtros anunciados aqui; qualquer outro é ignorado.
func (s Structure) AllowsFilter(field, op string) bool {
	for _, f := range s.Filters {
		if f.Field != field {
			continue
		}
		for _, o := range f.Operator {
			if o.Value == op {
				return true
			}
		}
	}
	return false
}

// Toolbar cabeçalho exibido pelo cliente acima da listagem.
type Toolbar struct {
	Header string `json:"header"`
}

// ListResponse envelope paginado compartilhado pelos endpoints de listagem.
// Items é opaco para o envelope: qualquer tipo de entidade já paginada.
// Os campos de paginação são ponteiros: presentes em toda listagem (inclusive
// totalItems = 0 em coleção vazia), ausentes no envelope de item único.
type ListResponse struct {
	Message    string      `json:"message"`
	Items      interface{} `json:"items"`
	Structure  Structure   `json:"structure"`
	Toolbar    Toolbar     `json:"toolbar"`
	Page       *int        `json:"page,omitempty"`
	PageSize   *int        `json:"pageSize,omitempty"`
	TotalItems *int        `json:"totalItems,omitempty"`
}

// NewListResponse monta o envelope paginado. Page e pageSize inválidos
// (menores que 1) recebem os padrões; o caller é responsável por já ter
// aplicado o limit/offset correspondente na consulta — o envelope não
// refatia items. totalItems sempre sai no JSON, mesmo zerado.
func NewListResponse(message string, items interface{}, structure Structure, toolbarHeader string, page, pageSize, totalItems int) *ListResponse {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &ListResponse{
		Message:    message,
		Items:      items,
		Structure:  structure,
		Toolbar:    Toolbar{Header: toolbarHeader},
		Page:       &page,
		PageSize:   &pageSize,
		TotalItems: &totalItems,
	}
}

// NewItemResponse embrulha um único item com a mesma estrutura da listagem
// (reuso, não duplicação): os ponteiros de paginação ficam nulos e fora do
// JSON.
func NewItemResponse(message string, item interface{}, structure Structure, toolbarHeader string) *ListResponse {
	return &ListResponse{
		Message:   message,
		Items:     []interface{}{item},
		Structure: structure,
		Toolbar:   Toolbar{Header: toolbarHeader},
	}
}

// ListParams parâmetros de listagem vindos da query string.
type ListParams struct {
	Page        int
	PageSize    int
	FilterField string
	FilterOp    string // eq | contains
	FilterValue string
}

// Normalize aplica os padrões de paginação (mesma regra do envelope).
func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
}

// Offset converte page/pageSize no deslocamento da consulta.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}
