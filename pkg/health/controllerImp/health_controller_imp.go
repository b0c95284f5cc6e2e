package controllerImp

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const pingTimeout = 800 * time.Millisecond

var appStart = time.Now()

type HealthCtrl struct {
	db  *gorm.DB
	env string
}

func NewHealthCtrl(db *gorm.DB, env string) *HealthCtrl { return &HealthCtrl{db: db, env: env} }

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	db := h.pingDB(ctx)
	status := http.StatusOK
	if !db.OK {
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, echo.Map{
		"status":      echo.Map{"ok": db.OK},
		"uptime_sec":  int(time.Since(appStart).Seconds()),
		"environment": h.env,
		"pid":         os.Getpid(),
		"checks":      echo.Map{"database": db},
		"time":        time.Now().Format(time.RFC3339),
	})
}

func (h *HealthCtrl) Ready(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ready"})
}

func (h *HealthCtrl) pingDB(ctx context.Context) check {
	if h.db == nil {
		return check{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return check{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return check{Err: "ping: " + err.Error()}
	}
	return check{OK: true}
}
