package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	json "github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/extable-go/internal/logging"
	"github.com/ukaji3/extable-go/pkg/extable"
)

func request(service TableService, path string, query url.Values) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := SetupRouter(NewController(service, logging.Discard), logging.Discard)

	target := path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestController_InfoAction(t *testing.T) {
	w := request(NewTableServiceMock(t), "/", nil)
	body := parseBody(t, w)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Excel Data Processing API", body["message"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.Equal(t, []interface{}{"/list_tables", "/get_table_details", "/row_sum"}, body["endpoints"])
}

func TestController_ListTablesAction(t *testing.T) {
	t.Run("should return tables", func(t *testing.T) {
		service := NewTableServiceMock(t)
		service.On("ListTables").Return([]string{"Revenue", "Costs"}, nil)

		w := request(service, "/list_tables", nil)
		body := parseBody(t, w)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []interface{}{"Revenue", "Costs"}, body["tables"])
	})

	t.Run("empty store", func(t *testing.T) {
		service := NewTableServiceMock(t)
		service.On("ListTables").Return([]string{}, nil)

		w := request(service, "/list_tables", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"tables":[]}`, w.Body.String())
	})

	t.Run("uninitialized", func(t *testing.T) {
		service := NewTableServiceMock(t)
		service.On("ListTables").Return(nil, extable.ErrUninitialized)

		w := request(service, "/list_tables", nil)
		body := parseBody(t, w)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Excel processor not initialized", body["detail"])
	})

	t.Run("unexpected error", func(t *testing.T) {
		service := NewTableServiceMock(t)
		service.On("ListTables").Return(nil, errors.New("boom"))

		w := request(service, "/list_tables", nil)
		body := parseBody(t, w)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Error listing tables: boom", body["detail"])
	})
}

func TestController_GetTableDetailsAction(t *testing.T) {
	t.Run("should return row names", func(t *testing.T) {
		service := NewTableServiceMock(t)
		service.On("RowLabels", "Revenue").Return([]string{"Revenue", "2023"}, nil)

		w := request(service, "/get_table_details", url.Values{"table_name": {"Revenue"}})
		body := parseBody(t, w)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Revenue", body["table_name"])
		assert.Equal(t, []interface{}{"Revenue", "2023"}, body["row_names"])
	})

	t.Run("table not found", func(t *testing.T) {
		service := NewTableServiceMock(t)
		service.On("RowLabels", "Nope").Return(nil, &extable.NotFoundError{Table: "Nope"})

		w := request(service, "/get_table_details", url.Values{"table_name": {"Nope"}})
		body := parseBody(t, w)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Table 'Nope' not found", body["detail"])
	})

	t.Run("uninitialized", func(t *testing.T) {
		service := NewTableServiceMock(t)
		service.On("RowLabels", "Revenue").Return(nil, extable.ErrUninitialized)

		w := request(service, "/get_table_details", url.Values{"table_name": {"Revenue"}})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("missing parameter", func(t *testing.T) {
		w := request(NewTableServiceMock(t), "/get_table_details", nil)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "missing query parameter: table_name", parseBody(t, w)["detail"])
	})

	t.Run("empty table name is looked up", func(t *testing.T) {
		service := NewTableServiceMock(t)
		service.On("RowLabels", "").Return(nil, &extable.NotFoundError{Kind: extable.ErrTableNotFound})

		w := request(service, "/get_table_details", url.Values{"table_name": {""}})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Table '' not found", parseBody(t, w)["detail"])
	})
}

func TestController_RowSumAction(t *testing.T) {
	params := url.Values{"table_name": {"Revenue"}, "row_name": {"Revenue"}}

	t.Run("should return sum", func(t *testing.T) {
		service := NewTableServiceMock(t)
		service.On("RowSum", "Revenue", "Revenue").Return(300.0, nil)

		w := request(service, "/row_sum", params)
		body := parseBody(t, w)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Revenue", body["table_name"])
		assert.Equal(t, "Revenue", body["row_name"])
		assert.Equal(t, 300.0, body["sum"])
	})

	t.Run("row name with spaces", func(t *testing.T) {
		service := NewTableServiceMock(t)
		service.On("RowSum", "Capital Budget", "Net Cash Flow").Return(-12.5, nil)

		w := request(service, "/row_sum", url.Values{"table_name": {"Capital Budget"}, "row_name": {"Net Cash Flow"}})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, -12.5, parseBody(t, w)["sum"])
	})

	t.Run("row not found", func(t *testing.T) {
		service := NewTableServiceMock(t)
		service.On("RowSum", "Revenue", "Revenue").
			Return(0.0, &extable.NotFoundError{Kind: extable.ErrRowNotFound, Table: "Revenue", Row: "Revenue"})

		w := request(service, "/row_sum", params)
		body := parseBody(t, w)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Row 'Revenue' not found in table 'Revenue'", body["detail"])
	})

	t.Run("uninitialized", func(t *testing.T) {
		service := NewTableServiceMock(t)
		service.On("RowSum", "Revenue", "Revenue").Return(0.0, extable.ErrUninitialized)

		w := request(service, "/row_sum", params)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Excel processor not initialized", parseBody(t, w)["detail"])
	})

	t.Run("missing row name", func(t *testing.T) {
		w := request(NewTableServiceMock(t), "/row_sum", url.Values{"table_name": {"Revenue"}})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "missing query parameter: row_name", parseBody(t, w)["detail"])
	})

	t.Run("empty row name is looked up", func(t *testing.T) {
		service := NewTableServiceMock(t)
		service.On("RowSum", "Revenue", "").
			Return(0.0, &extable.NotFoundError{Kind: extable.ErrRowNotFound, Table: "Revenue"})

		w := request(service, "/row_sum", url.Values{"table_name": {"Revenue"}, "row_name": {""}})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Row '' not found in table 'Revenue'", parseBody(t, w)["detail"])
	})
}

func TestController_HealthAction(t *testing.T) {
	for _, ready := range []bool{true, false} {
		service := NewTableServiceMock(t)
		service.On("Ready").Return(ready)

		w := request(service, "/health", nil)
		body := parseBody(t, w)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, ready, body["excel_processor_initialized"])
	}
}
