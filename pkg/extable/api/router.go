package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ukaji3/extable-go/internal/logging"
)

// SetupRouter registers every endpoint on a new gin engine.
func SetupRouter(controller *Controller, log *logging.Logger) *gin.Engine {
	if log == nil {
		log = logging.Default
	}

	router := gin.New()
	router.Use(RequestID(), AccessLog(log), Recovery(log))

	router.GET("/", controller.InfoAction)
	router.GET(listTablesPath, controller.ListTablesAction)
	router.GET(getTableDetailsPath, controller.GetTableDetailsAction)
	router.GET(rowSumPath, controller.RowSumAction)
	router.GET(healthPath, controller.HealthAction)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: "Not Found"})
	})

	return router
}
