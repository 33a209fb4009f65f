package session

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aurodavid1986/ordering-app/internal/menu"
	"github.com/aurodavid1986/ordering-app/internal/order"

	"github.com/gin-gonic/gin"
)

type handlerFixture struct {
	router *gin.Engine
	token  string
}

func setupHandler(t *testing.T) handlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := NewTokens(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("failed to create tokens: %v", err)
	}
	svc := NewService(NewInMemoryRepository(), menu.DefaultCatalog(), nil)
	h := NewHandler(svc, tokens)

	r := gin.New()
	r.POST("/sessions", h.Start)

	g := r.Group("/session")
	g.Use(func(c *gin.Context) {
		sid, err := tokens.Validate(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set(ContextKey, sid)
	})
	g.GET("", h.Get)
	g.DELETE("", h.End)
	g.PUT("/date", h.SelectDate)
	g.POST("/items/:id/toggle", h.ToggleItem)
	g.PUT("/items/:id", h.SetQuantity)
	g.PUT("/customer/:field", h.SetField)
	g.POST("/next", h.Next)
	g.POST("/back", h.Back)
	g.POST("/calendar", h.ExportCalendar)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sessions", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid start response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a session token")
	}

	return handlerFixture{router: r, token: resp.Token}
}

func (f handlerFixture) do(method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+f.token)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestHandler_NextOnEmptyCartIsConflict(t *testing.T) {
	f := setupHandler(t)

	w := f.do(http.MethodPost, "/session/next", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", w.Code)
	}

	var resp struct {
		Reason string     `json:"reason"`
		View   order.View `json:"view"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.Reason != "EMPTY_CART" {
		t.Errorf("expected reason EMPTY_CART, got %q", resp.Reason)
	}
	if resp.View.Step != order.StepSelectingMeals {
		t.Errorf("expected step 1, got %d", resp.View.Step)
	}
}

func TestHandler_ToggleWithoutDate(t *testing.T) {
	f := setupHandler(t)

	w := f.do(http.MethodPost, "/session/items/1/toggle", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", w.Code)
	}
}

func TestHandler_ItemNotOnMenu(t *testing.T) {
	f := setupHandler(t)

	f.do(http.MethodPut, "/session/date", `{"date":"mon"}`)
	w := f.do(http.MethodPost, "/session/items/5/toggle", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestHandler_BadItemID(t *testing.T) {
	f := setupHandler(t)

	w := f.do(http.MethodPost, "/session/items/abc/toggle", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestHandler_SetQuantityRequiresValue(t *testing.T) {
	f := setupHandler(t)

	f.do(http.MethodPut, "/session/date", `{"date":"mon"}`)
	f.do(http.MethodPost, "/session/items/1/toggle", "")

	w := f.do(http.MethodPut, "/session/items/1", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	w = f.do(http.MethodPut, "/session/items/1", `{"quantity":3}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var view order.View
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if view.Total != 240 {
		t.Errorf("expected total 240, got %d", view.Total)
	}
}

func TestHandler_SetQuantityTooLarge(t *testing.T) {
	f := setupHandler(t)

	f.do(http.MethodPut, "/session/date", `{"date":"mon"}`)
	f.do(http.MethodPost, "/session/items/1/toggle", "")

	body := fmt.Sprintf(`{"quantity":%d}`, math.MaxInt/40)
	w := f.do(http.MethodPut, "/session/items/1", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var resp struct {
		View order.View `json:"view"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.View.Total != 80 {
		t.Errorf("expected total to stay 80, got %d", resp.View.Total)
	}
}

func TestHandler_UnknownCustomerField(t *testing.T) {
	f := setupHandler(t)

	f.do(http.MethodPut, "/session/date", `{"date":"mon"}`)
	f.do(http.MethodPost, "/session/items/1/toggle", "")
	f.do(http.MethodPost, "/session/next", "")

	w := f.do(http.MethodPut, "/session/customer/email", `{"value":"x"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	w = f.do(http.MethodPut, "/session/customer/name", `{"value":"王小明"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestHandler_BackAtFirstStep(t *testing.T) {
	f := setupHandler(t)

	w := f.do(http.MethodPost, "/session/back", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "AT_FIRST_STEP") {
		t.Errorf("expected AT_FIRST_STEP in body, got %s", w.Body.String())
	}
}

func TestHandler_CalendarBeforeConfirmation(t *testing.T) {
	f := setupHandler(t)

	w := f.do(http.MethodPost, "/session/calendar", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", w.Code)
	}
}

func TestHandler_EndSession(t *testing.T) {
	f := setupHandler(t)

	w := f.do(http.MethodDelete, "/session", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", w.Code)
	}

	w = f.do(http.MethodGet, "/session", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
