package main

import (
	"gridEditor/contracts"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const ApiVersion = "v1"

func SetupRouter(controller contracts.ApiController, logger logrus.FieldLogger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(logger))

	apiRouterGroup := router.Group("/api/" + ApiVersion)
	apiRouterGroup.GET("/grid", controller.GetGridAction)
	apiRouterGroup.GET("/export.xlsx", controller.ExportAction)

	apiRouterGroup.GET("/cells/:row/:col", controller.GetCellAction)
	apiRouterGroup.PUT("/cells/:row/:col", controller.SetCellAction)

	apiRouterGroup.POST("/selection/click", controller.SelectCellAction)
	apiRouterGroup.POST("/selection/drag/start", controller.StartDragAction)
	apiRouterGroup.POST("/selection/drag/extend", controller.ExtendDragAction)
	apiRouterGroup.POST("/selection/drag/end", controller.EndDragAction)

	apiRouterGroup.PUT("/formula-bar", controller.SetFormulaBarAction)
	apiRouterGroup.POST("/formula-bar/apply", controller.ApplyFormulaBarAction)

	apiRouterGroup.POST("/undo", controller.UndoAction)
	apiRouterGroup.POST("/redo", controller.RedoAction)
	apiRouterGroup.POST("/save", controller.SaveAction)
	apiRouterGroup.POST("/load", controller.LoadAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}

func RequestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start),
		}).Debug("request")
	}
}
