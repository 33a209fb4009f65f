package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aurodavid1986/ordering-app/internal/middleware"
	"github.com/aurodavid1986/ordering-app/internal/order"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type client struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func (c *client) call(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) order.View {
	t.Helper()
	var v order.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestMenuRoutes(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t)}

	w := c.call(http.MethodGet, "/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"key":"mon"`)

	w = c.call(http.MethodGet, "/menu/tue", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "排骨便當")

	w = c.call(http.MethodGet, "/menu/sun", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"date":"sun","items":[]}`, w.Body.String())
}

func TestSessionRoutesRequireToken(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t)}

	w := c.call(http.MethodGet, "/session", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	c.token = "garbage"
	w = c.call(http.MethodGet, "/session", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOrderingEndToEnd(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t)}

	w := c.call(http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var started struct {
		Token string     `json:"token"`
		View  order.View `json:"view"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &started))
	require.NotEmpty(t, started.Token)
	assert.Equal(t, order.StepSelectingMeals, started.View.Step)
	assert.Len(t, started.View.Dates, 3)
	c.token = started.Token

	// Advancing with nothing in the cart is refused.
	w = c.call(http.MethodPost, "/session/next", nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"reason":"EMPTY_CART"`)

	w = c.call(http.MethodPut, "/session/date", map[string]string{"date": "mon"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get(middleware.RefreshHeader))
	c.token = w.Header().Get(middleware.RefreshHeader)
	require.Len(t, decodeView(t, w).Menu, 2)

	c.call(http.MethodPost, "/session/items/1/toggle", nil)
	c.call(http.MethodPost, "/session/items/2/toggle", nil)
	c.call(http.MethodPost, "/session/items/2/increment", nil)
	w = c.call(http.MethodPost, "/session/items/2/decrement", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 155, decodeView(t, w).Total)

	w = c.call(http.MethodPost, "/session/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, order.StepEnteringInfo, decodeView(t, w).Step)

	c.call(http.MethodPut, "/session/customer/name", map[string]string{"value": "王小明"})
	w = c.call(http.MethodPost, "/session/next", nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"reason":"MISSING_INVOICE_CODE"`)

	c.call(http.MethodPut, "/session/customer/invoiceCode", map[string]string{"value": "/ABC1234"})
	w = c.call(http.MethodPost, "/session/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	v := decodeView(t, w)
	assert.Equal(t, order.StepPaying, v.Step)
	assert.Equal(t, order.ActionConfirmPayment, v.Action)

	w = c.call(http.MethodPut, "/session/payment", map[string]string{
		"number": "4111 1111 1111 1111",
		"expiry": "12/30",
		"cvv":    "123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "4111 1111")

	w = c.call(http.MethodPost, "/session/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	v = decodeView(t, w)
	assert.Equal(t, order.StepConfirmed, v.Step)
	require.NotNil(t, v.Confirmation)
	assert.Regexp(t, `^\d{6}$`, v.Confirmation.OrderNumber)
	assert.Equal(t, 155, v.Confirmation.Total)
	assert.False(t, v.CanRetreat)

	w = c.call(http.MethodPost, "/session/back", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = c.call(http.MethodPost, "/session/calendar", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = c.call(http.MethodDelete, "/session", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
