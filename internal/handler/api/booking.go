package api

import (
	"net/http"
	"strconv"

	"lendshare/internal/handler/dto/request"
	"lendshare/internal/handler/httperr"
	"lendshare/internal/handler/middleware"
	"lendshare/internal/usecase/commands"
	"lendshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(cmd commands.BookingCommands, qry queries.BookingQueries) *BookingHandler {
	return &BookingHandler{commands: cmd, queries: qry}
}

func (h *BookingHandler) Create(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return
	}

	var req request.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid request body")
		return
	}

	view, err := h.commands.Create(c.Request.Context(), commands.CreateBookingInput{
		ItemID:   req.ItemID,
		BookerID: callerID,
		Start:    req.Start,
		End:      req.End,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *BookingHandler) Decide(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}

	approve, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.BadRequest(c, "approved must be true or false")
		return
	}

	view, err := h.commands.Decide(c.Request.Context(), bookingID, approve, callerID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *BookingHandler) Get(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), bookingID, callerID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *BookingHandler) ListForBooker(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return
	}
	state, from, size, ok := listParams(c)
	if !ok {
		return
	}

	views, err := h.queries.ListForBooker(c.Request.Context(), callerID, state, from, size)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *BookingHandler) ListForOwner(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return
	}
	state, from, size, ok := listParams(c)
	if !ok {
		return
	}

	views, err := h.queries.ListForOwner(c.Request.Context(), callerID, state, from, size)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func listParams(c *gin.Context) (state string, from, size int32, ok bool) {
	state = c.DefaultQuery("state", "ALL")

	fromVal, err := parseInt32(c.DefaultQuery("from", "0"))
	if err != nil || fromVal < 0 {
		httperr.BadRequest(c, "from must be a non-negative integer")
		return "", 0, 0, false
	}
	sizeVal, err := parseInt32(c.DefaultQuery("size", "10"))
	if err != nil || sizeVal <= 0 {
		httperr.BadRequest(c, "size must be a positive integer")
		return "", 0, 0, false
	}
	return state, fromVal, sizeVal, true
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	return int32(v), err
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.BadRequest(c, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}
