package api

import (
	"net/http"

	"lendshare/internal/handler/dto/request"
	"lendshare/internal/handler/httperr"
	"lendshare/internal/handler/middleware"
	"lendshare/internal/usecase/commands"
	"lendshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	commands commands.ItemCommands
	queries  queries.ItemQueries
}

func NewItemHandler(cmd commands.ItemCommands, qry queries.ItemQueries) *ItemHandler {
	return &ItemHandler{commands: cmd, queries: qry}
}

func (h *ItemHandler) Create(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return
	}

	var req request.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	view, err := h.commands.Create(c.Request.Context(), commands.CreateItemInput{
		OwnerID:     callerID,
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *ItemHandler) Update(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	var req request.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	view, err := h.commands.Update(c.Request.Context(), itemID, callerID, req.ToPatch())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ItemHandler) Get(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), itemID, callerID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ItemHandler) ListForOwner(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return
	}

	views, err := h.queries.ListForOwner(c.Request.Context(), callerID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// Search is the one item route that needs no identity header.
func (h *ItemHandler) Search(c *gin.Context) {
	views, err := h.queries.Search(c.Request.Context(), c.Query("text"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *ItemHandler) CreateComment(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	var req request.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	view, err := h.commands.CreateComment(c.Request.Context(), itemID, callerID, req.Text)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
