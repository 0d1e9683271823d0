package handlers

import (
	"net/http"
	"sync"

	intconfig "backoffice/internal/config"
	intdb "backoffice/internal/db"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for /api/routes.
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

var schemaTables = []string{"trips", "passengers", "documents", "users"}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func DBCheck(c *gin.Context) {
	if err := intconfig.PingDB(c.Request.Context()); err != nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "database not reachable", err.Error())
		return
	}

	ctx := c.Request.Context()
	tables := gin.H{}
	for _, name := range schemaTables {
		tables[name] = intdb.HasTable(ctx, intconfig.DB, name)
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"database":    "reachable",
		"tables":      tables,
		"floor_label": intdb.HasColumn(ctx, intconfig.DB, "passengers", "floor_label"),
	})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		respondError(c, http.StatusServiceUnavailable, "router_not_ready", "router not ready", nil)
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
