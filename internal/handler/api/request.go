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

type RequestHandler struct {
	commands commands.RequestCommands
	queries  queries.RequestQueries
}

func NewRequestHandler(cmd commands.RequestCommands, qry queries.RequestQueries) *RequestHandler {
	return &RequestHandler{commands: cmd, queries: qry}
}

func (h *RequestHandler) Create(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return
	}

	var req request.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	view, err := h.commands.Create(c.Request.Context(), callerID, req.Description)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *RequestHandler) ListOwn(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return
	}

	views, err := h.queries.ListOwn(c.Request.Context(), callerID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *RequestHandler) ListOthers(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return
	}
	from, size, ok := pageParams(c)
	if !ok {
		return
	}

	views, err := h.queries.ListOthers(c.Request.Context(), callerID, from, size)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *RequestHandler) Get(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return
	}
	requestID, ok := pathID(c, "requestId")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), requestID, callerID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func pageParams(c *gin.Context) (from, size int32, ok bool) {
	fromVal, err := parseInt32(c.DefaultQuery("from", "0"))
	if err != nil || fromVal < 0 {
		httperr.BadRequest(c, "from must be a non-negative integer")
		return 0, 0, false
	}
	sizeVal, err := parseInt32(c.DefaultQuery("size", "10"))
	if err != nil || sizeVal <= 0 {
		httperr.BadRequest(c, "size must be a positive integer")
		return 0, 0, false
	}
	return fromVal, sizeVal, true
}
