package session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aurodavid1986/ordering-app/internal/order"

	"github.com/gin-gonic/gin"
)

// ContextKey is where the session middleware stores the session ID.
const ContextKey = "sessionID"

type Handler struct {
	service *Service
	tokens  *Tokens
}

func NewHandler(service *Service, tokens *Tokens) *Handler {
	return &Handler{service: service, tokens: tokens}
}

// --------------------------------------------------
// POST /sessions
// --------------------------------------------------
func (h *Handler) Start(c *gin.Context) {
	sess, err := h.service.Start()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
		return
	}

	token, err := h.tokens.Generate(sess.ID)
	if err != nil {
		_ = h.service.End(sess.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue session token"})
		return
	}

	view, _ := h.service.View(sess.ID)

	c.JSON(http.StatusCreated, gin.H{
		"session_id": sess.ID,
		"token":      token,
		"view":       view,
	})
}

// --------------------------------------------------
// GET /session
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	h.respond(c)(h.service.View(c.GetString(ContextKey)))
}

// --------------------------------------------------
// DELETE /session
// --------------------------------------------------
func (h *Handler) End(c *gin.Context) {
	if err := h.service.End(c.GetString(ContextKey)); err != nil {
		writeError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// --------------------------------------------------
// PUT /session/date
// --------------------------------------------------
func (h *Handler) SelectDate(c *gin.Context) {
	var req struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.respond(c)(h.service.SelectDate(c.GetString(ContextKey), req.Date))
}

// --------------------------------------------------
// POST /session/items/:id/toggle
// --------------------------------------------------
func (h *Handler) ToggleItem(c *gin.Context) {
	itemID, ok := itemParam(c)
	if !ok {
		return
	}
	h.respond(c)(h.service.ToggleItem(c.GetString(ContextKey), itemID))
}

// --------------------------------------------------
// PUT /session/items/:id
// --------------------------------------------------
func (h *Handler) SetQuantity(c *gin.Context) {
	itemID, ok := itemParam(c)
	if !ok {
		return
	}

	var req struct {
		Quantity *int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	h.respond(c)(h.service.SetQuantity(c.GetString(ContextKey), itemID, *req.Quantity))
}

// --------------------------------------------------
// POST /session/items/:id/increment|decrement
// --------------------------------------------------
func (h *Handler) Increment(c *gin.Context) {
	itemID, ok := itemParam(c)
	if !ok {
		return
	}
	h.respond(c)(h.service.Increment(c.GetString(ContextKey), itemID))
}

func (h *Handler) Decrement(c *gin.Context) {
	itemID, ok := itemParam(c)
	if !ok {
		return
	}
	h.respond(c)(h.service.Decrement(c.GetString(ContextKey), itemID))
}

// --------------------------------------------------
// PUT /session/customer/:field
// --------------------------------------------------
func (h *Handler) SetField(c *gin.Context) {
	var req struct {
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	field := order.Field(c.Param("field"))
	h.respond(c)(h.service.SetField(c.GetString(ContextKey), field, req.Value))
}

// --------------------------------------------------
// PUT /session/payment
// --------------------------------------------------
func (h *Handler) SetCard(c *gin.Context) {
	var card order.Card
	if err := c.ShouldBindJSON(&card); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.respond(c)(h.service.SetCard(c.GetString(ContextKey), card))
}

// --------------------------------------------------
// POST /session/next, POST /session/back
// --------------------------------------------------
func (h *Handler) Next(c *gin.Context) {
	h.respond(c)(h.service.Next(c.Request.Context(), c.GetString(ContextKey)))
}

func (h *Handler) Back(c *gin.Context) {
	h.respond(c)(h.service.Back(c.GetString(ContextKey)))
}

// --------------------------------------------------
// POST /session/calendar
// --------------------------------------------------
func (h *Handler) ExportCalendar(c *gin.Context) {
	view, err := h.service.ExportCalendar(c.Request.Context(), c.GetString(ContextKey))
	if err != nil {
		writeError(c, err, &view)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "added to calendar",
		"view":    view,
	})
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func (h *Handler) respond(c *gin.Context) func(order.View, error) {
	return func(view order.View, err error) {
		if err != nil {
			writeError(c, err, &view)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func itemParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return 0, false
	}
	return id, true
}

// writeError maps domain errors to HTTP responses.
// A refused step carries its reason code and the unchanged view so the
// client can render the inline message.
func writeError(c *gin.Context, err error, view *order.View) {
	body := gin.H{"error": err.Error()}

	var te *order.TransitionError
	switch {
	case errors.As(err, &te):
		body["reason"] = te.Reason
		body["view"] = view
		status := http.StatusConflict
		if te.Reason == order.ReasonPaymentDeclined {
			status = http.StatusPaymentRequired
		}
		c.JSON(status, body)
	case errors.Is(err, ErrSessionNotFound):
		c.JSON(http.StatusNotFound, body)
	case errors.Is(err, order.ErrItemNotOnMenu):
		c.JSON(http.StatusNotFound, body)
	case errors.Is(err, order.ErrQuantityTooLarge):
		body["view"] = view
		c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, order.ErrUnknownField):
		c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, order.ErrStepLocked),
		errors.Is(err, order.ErrNoDateSelected),
		errors.Is(err, order.ErrNotConfirmed):
		body["view"] = view
		c.JSON(http.StatusConflict, body)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
