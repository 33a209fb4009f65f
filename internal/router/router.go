package router

import (
	"net/http"
	"time"

	"github.com/aurodavid1986/ordering-app/internal/menu"
	"github.com/aurodavid1986/ordering-app/internal/middleware"
	"github.com/aurodavid1986/ordering-app/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Deps struct {
	Catalog     *menu.Catalog
	Sessions    *session.Service
	Tokens      *session.Tokens
	CORSOrigins []string
	Logger      *zap.Logger
}

func NewRouter(d Deps) *gin.Engine {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	if len(d.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{middleware.RefreshHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ───────────────────────── MENU ─────────────────────────
	menuHandler := menu.NewHandler(d.Catalog)
	r.GET("/menu", menuHandler.ListDays)
	r.GET("/menu/:date", menuHandler.ListItems)

	// ───────────────────────── WIZARD ─────────────────────────
	sessionHandler := session.NewHandler(d.Sessions, d.Tokens)
	r.POST("/sessions", sessionHandler.Start)

	wizard := r.Group("/session")
	wizard.Use(middleware.SessionMiddleware(d.Tokens))
	{
		wizard.GET("", sessionHandler.Get)
		wizard.DELETE("", sessionHandler.End)

		wizard.PUT("/date", sessionHandler.SelectDate)
		wizard.POST("/items/:id/toggle", sessionHandler.ToggleItem)
		wizard.PUT("/items/:id", sessionHandler.SetQuantity)
		wizard.POST("/items/:id/increment", sessionHandler.Increment)
		wizard.POST("/items/:id/decrement", sessionHandler.Decrement)

		wizard.PUT("/customer/:field", sessionHandler.SetField)
		wizard.PUT("/payment", sessionHandler.SetCard)

		wizard.POST("/next", sessionHandler.Next)
		wizard.POST("/back", sessionHandler.Back)
		wizard.POST("/calendar", sessionHandler.ExportCalendar)
	}

	return r
}
