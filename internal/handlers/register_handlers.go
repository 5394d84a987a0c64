package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	portssvc "github.com/nvallejos/contable/internal/core/ports/services"
	"github.com/nvallejos/contable/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service facades.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, dbPool *pgxpool.Pool) {
	r.GET("/health", healthHandler(cfg, dbPool))
	r.GET("/", GetHome)

	setupAPIV1Routes(r, services)
}

// healthHandler reports liveness, optionally verifying database connectivity.
func healthHandler(cfg *config.Config, dbPool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.EnableDBCheck && dbPool != nil {
			if err := dbPool.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the
// per-entity route registrations.
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	registerAccountRoutes(v1, services.Chart)
	registerEntryRoutes(v1, services.Entry)
	registerLedgerRoutes(v1, services.Ledger)
	registerReportingRoutes(v1, services.Reporting)
	registerReconciliationRoutes(v1, services.Reconciliation)
}
