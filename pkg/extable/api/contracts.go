// Package api exposes the table queries over HTTP.
package api

// TableService is the query surface the HTTP handlers depend on.
// *extable.Processor implements it.
type TableService interface {
	Ready() bool
	ListTables() ([]string, error)
	RowLabels(table string) ([]string, error)
	RowSum(table, row string) (float64, error)
}

// Version is reported by the info endpoint.
const Version = "1.0.0"

// Title is reported by the info endpoint.
const Title = "Excel Data Processing API"

const (
	listTablesPath      = "/list_tables"
	getTableDetailsPath = "/get_table_details"
	rowSumPath          = "/row_sum"
	healthPath          = "/health"
)

// InfoResponse is the body of GET /.
type InfoResponse struct {
	Message   string   `json:"message"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// TablesResponse is the body of GET /list_tables.
type TablesResponse struct {
	Tables []string `json:"tables"`
}

// TableDetailsResponse is the body of GET /get_table_details.
type TableDetailsResponse struct {
	TableName string   `json:"table_name"`
	RowNames  []string `json:"row_names"`
}

// RowSumResponse is the body of GET /row_sum.
type RowSumResponse struct {
	TableName string  `json:"table_name"`
	RowName   string  `json:"row_name"`
	Sum       float64 `json:"sum"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status      string `json:"status"`
	Initialized bool   `json:"excel_processor_initialized"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
