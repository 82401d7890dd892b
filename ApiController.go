package main

import (
	"bytes"
	"errors"
	"gridEditor/contracts"
	"net/http"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ApiController struct {
	GridEditor contracts.GridEditor
}

type CellEndpointParams struct {
	Row int `uri:"row"`
	Col int `uri:"col"`
}

type SetCellRequest struct {
	Value *string `json:"value" binding:"required"`
}

type CoordinatesRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

type FormulaBarRequest struct {
	Text *string `json:"text" binding:"required"`
}

func NewApiController(gridEditor contracts.GridEditor) *ApiController {
	return &ApiController{GridEditor: gridEditor}
}

func (api *ApiController) GetGridAction(c *gin.Context) {
	c.JSON(http.StatusOK, api.GridEditor.State())
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var response *contracts.Cell

	err := c.ShouldBindUri(&params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err = api.GridEditor.GetCell(params.Row, params.Col)
	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SetCellRequest{}
	var response *contracts.Cell

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err = api.GridEditor.SetCellLiteral(params.Row, params.Col, *request.Value)
	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) SelectCellAction(c *gin.Context) {
	api.coordinatesAction(c, api.GridEditor.SelectCell)
}

func (api *ApiController) StartDragAction(c *gin.Context) {
	api.coordinatesAction(c, api.GridEditor.StartDrag)
}

func (api *ApiController) ExtendDragAction(c *gin.Context) {
	api.coordinatesAction(c, api.GridEditor.ExtendDrag)
}

func (api *ApiController) EndDragAction(c *gin.Context) {
	api.GridEditor.EndDrag()
	c.JSON(http.StatusOK, api.GridEditor.State())
}

func (api *ApiController) SetFormulaBarAction(c *gin.Context) {
	request := FormulaBarRequest{}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	api.GridEditor.SetFormulaBarText(*request.Text)
	c.JSON(http.StatusOK, api.GridEditor.State())
}

func (api *ApiController) ApplyFormulaBarAction(c *gin.Context) {
	cell, err := api.GridEditor.ApplyFormulaBar()
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applied": cell != nil, "cell": cell})
}

func (api *ApiController) UndoAction(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"changed": api.GridEditor.Undo()})
}

func (api *ApiController) RedoAction(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"changed": api.GridEditor.Redo()})
}

func (api *ApiController) SaveAction(c *gin.Context) {
	if err := api.GridEditor.Save(); err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"key": contracts.SnapshotKey})
}

func (api *ApiController) LoadAction(c *gin.Context) {
	loaded, err := api.GridEditor.Load()
	if err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"loaded": loaded})
}

func (api *ApiController) ExportAction(c *gin.Context) {
	buffer := &bytes.Buffer{}
	if err := api.GridEditor.Export(buffer); err != nil {
		api.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+contracts.SnapshotKey+`.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buffer.Bytes())
}

func (api *ApiController) coordinatesAction(c *gin.Context, action func(row int, col int) error) {
	request := CoordinatesRequest{}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := action(*request.Row, *request.Col); err != nil {
		api.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.GridEditor.State())
}

func (api *ApiController) respondError(c *gin.Context, err error) {
	if errors.Is(err, contracts.CellOutOfBoundsError) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else if errors.Is(err, contracts.PersistenceError) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
