package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lineinsight/lineinsight/cmd/lineinsight/controllers"
	"github.com/lineinsight/lineinsight/cmd/lineinsight/helpers"
	"github.com/lineinsight/lineinsight/cmd/lineinsight/services"
)

// SetupRestAPI builds the gin engine with all routes. The caller owns the
// http.Server around it, so tests can mount the engine directly.
func SetupRestAPI(accounts gin.Accounts, version string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Add a ginzap middleware, which:
	//   - Logs all requests, like a combined access and error log.
	//   - Logs to stdout.
	//   - RFC3339 with UTC time format.
	router.Use(ginzap.Ginzap(zap.L(), time.RFC3339, true))

	// Logs all panic to error log
	//   - stack means whether output the stack info.
	router.Use(ginzap.RecoveryWithZap(zap.L(), true))

	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "online")
	})

	apiString := fmt.Sprintf("/api/v%s", version)

	v2 := router.Group(apiString, gin.BasicAuth(accounts), facilityAccess())
	{
		// downtime reason taxonomy
		v2.GET("/:facilityName/downtime-reasons", controllers.GetDowntimeCategoriesHandler)
		v2.GET("/:facilityName/downtime-reasons/:level1Id", controllers.GetDowntimeSubcategoriesHandler)
		v2.GET("/:facilityName/downtime-reasons/:level1Id/:level2Id", controllers.GetDowntimeReasonsHandler)

		// production lines
		v2.GET("/:facilityName/machines", controllers.GetMachinesHandler)
		v2.GET("/:facilityName/machines/:machineId", controllers.GetMachineHandler)
		v2.GET("/:facilityName/machines/:machineId/timeline", controllers.GetMachineTimelineHandler)
		v2.GET("/:facilityName/machines/:machineId/kpis", controllers.GetKpisHandler)
		v2.GET("/:facilityName/machines/:machineId/kpis/:kpi", controllers.GetKpiDataHandler)

		// orders and operators
		v2.GET("/:facilityName/orders", controllers.GetOrdersHandler)
		v2.GET("/:facilityName/orders/:orderId", controllers.GetOrderHandler)
		v2.GET("/:facilityName/operators", controllers.GetOperatorsHandler)

		// alert lifecycle
		v2.GET("/:facilityName/alerts", controllers.GetAlertsHandler)
		v2.POST("/:facilityName/alerts", controllers.CreateAlertHandler)
		v2.GET("/:facilityName/alerts/:alertId", controllers.GetAlertHandler)
		v2.POST("/:facilityName/alerts/:alertId/classify", controllers.ClassifyAlertHandler)
		v2.POST("/:facilityName/alerts/:alertId/acknowledge", controllers.AcknowledgeAlertHandler)

		// facility rollup
		v2.GET("/:facilityName/facility/metrics", controllers.GetFacilityMetricsHandler)
	}

	return router
}

// facilityAccess checks that the request addresses the facility this instance
// serves and that the authenticated user may access it.
func facilityAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		facilityName := c.Param("facilityName")
		if facilityName != services.FacilityName() {
			c.AbortWithStatusJSON(
				http.StatusNotFound,
				gin.H{
					"error":  "unknown facility",
					"status": http.StatusNotFound,
				})
			return
		}
		if err := helpers.CheckIfUserIsAllowed(c, facilityName); err != nil {
			return
		}
		c.Next()
	}
}
