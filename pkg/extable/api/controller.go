package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ukaji3/extable-go/internal/logging"
	"github.com/ukaji3/extable-go/pkg/extable"
)

// Controller serves the table endpoints.
type Controller struct {
	service TableService
	log     *logging.Logger
}

// NewController creates a Controller. A nil logger uses logging.Default.
func NewController(service TableService, log *logging.Logger) *Controller {
	if log == nil {
		log = logging.Default
	}
	return &Controller{service: service, log: log}
}

// InfoAction describes the API.
func (api *Controller) InfoAction(c *gin.Context) {
	c.JSON(http.StatusOK, InfoResponse{
		Message:   Title,
		Version:   Version,
		Endpoints: []string{listTablesPath, getTableDetailsPath, rowSumPath},
	})
}

// ListTablesAction returns every table name.
func (api *Controller) ListTablesAction(c *gin.Context) {
	tables, err := api.service.ListTables()
	if err != nil {
		api.fail(c, "listing tables", err)
		return
	}
	c.JSON(http.StatusOK, TablesResponse{Tables: tables})
}

// GetTableDetailsAction returns the row labels of a table.
func (api *Controller) GetTableDetailsAction(c *gin.Context) {
	params, ok := requiredQuery(c, "table_name")
	if !ok {
		return
	}
	tableName := params[0]

	rows, err := api.service.RowLabels(tableName)
	if err != nil {
		api.fail(c, "getting table details", err)
		return
	}
	c.JSON(http.StatusOK, TableDetailsResponse{TableName: tableName, RowNames: rows})
}

// RowSumAction returns the sum of the numeric cells of a row.
func (api *Controller) RowSumAction(c *gin.Context) {
	params, ok := requiredQuery(c, "table_name", "row_name")
	if !ok {
		return
	}
	tableName, rowName := params[0], params[1]

	sum, err := api.service.RowSum(tableName, rowName)
	if err != nil {
		api.fail(c, "calculating row sum", err)
		return
	}
	c.JSON(http.StatusOK, RowSumResponse{TableName: tableName, RowName: rowName, Sum: sum})
}

// HealthAction reports liveness and whether the workbook loaded.
func (api *Controller) HealthAction(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Initialized: api.service.Ready()})
}

// requiredQuery returns the values of the named query parameters. An empty
// value counts as present. On a missing parameter it writes a 422 response
// and returns false.
func requiredQuery(c *gin.Context, names ...string) ([]string, bool) {
	values := make([]string, len(names))
	for i, name := range names {
		value, ok := c.GetQuery(name)
		if !ok {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "missing query parameter: " + name})
			return nil, false
		}
		values[i] = value
	}
	return values, true
}

func (api *Controller) fail(c *gin.Context, action string, err error) {
	status, detail := errorStatus(action, err)
	if status == http.StatusInternalServerError {
		api.log.Error("Error %s: %v", action, err)
	}
	c.JSON(status, ErrorResponse{Detail: detail})
}

// errorStatus maps a query error to an HTTP status and response detail.
func errorStatus(action string, err error) (int, string) {
	switch {
	case errors.Is(err, extable.ErrUninitialized):
		return http.StatusInternalServerError, "Excel processor not initialized"
	case errors.Is(err, extable.ErrTableNotFound), errors.Is(err, extable.ErrRowNotFound):
		return http.StatusNotFound, err.Error()
	default:
		return http.StatusInternalServerError, "Error " + action + ": " + err.Error()
	}
}
