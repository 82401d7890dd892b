package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	GetGridAction(c *gin.Context)
	GetCellAction(c *gin.Context)
	SetCellAction(c *gin.Context)
	SelectCellAction(c *gin.Context)
	StartDragAction(c *gin.Context)
	ExtendDragAction(c *gin.Context)
	EndDragAction(c *gin.Context)
	SetFormulaBarAction(c *gin.Context)
	ApplyFormulaBarAction(c *gin.Context)
	UndoAction(c *gin.Context)
	RedoAction(c *gin.Context)
	SaveAction(c *gin.Context)
	LoadAction(c *gin.Context)
	ExportAction(c *gin.Context)
}
