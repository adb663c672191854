package api

import (
	"net/http"
	"time"

	limits "github.com/gin-contrib/size"
	"github.com/gin-gonic/gin"
	timeout "github.com/vearne/gin-timeout"

	"github.com/vectasec/tara-backend/usecases"
)

const maxEvidenceFileSize = 30 * 1024 * 1024 // 30MB

func timeoutMiddleware(duration time.Duration) gin.HandlerFunc {
	return timeout.Timeout(
		timeout.WithTimeout(duration),
		timeout.WithErrorHttpCode(http.StatusRequestTimeout),
		timeout.WithDefaultMsg("Request timeout"),
	)
}

func addRoutes(r *gin.Engine, conf Configuration, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe)

	router := r.Use(credentialsMiddleware(conf.JwtSigningSecret))

	router.GET("/credentials", handleGetCredentials())

	router.POST("/workflows", handleCreateWorkflow(uc))
	router.GET("/scopes/:scope_id/workflows", handleListWorkflows(uc))
	router.GET("/workflows/by-artifact", handleGetWorkflowByArtifact(uc))
	router.GET("/workflows/:workflow_id", handleGetWorkflow(uc))
	router.POST("/workflows/:workflow_id/transition", handleTransitionWorkflow(uc))
	router.POST("/workflows/:workflow_id/signoffs", handleCreateSignoff(uc))
	router.GET("/workflows/:workflow_id/signoffs", handleListSignoffs(uc))

	router.GET("/audit-logs", handleListAuditLogs(uc))
	router.POST("/audit-logs", handleCreateAuditEvent(uc))

	router.POST("/snapshots", timeoutMiddleware(conf.SnapshotTimeout), handleCreateSnapshot(uc))
	router.GET("/scopes/:scope_id/snapshots", handleListSnapshots(uc))
	router.GET("/snapshots/:snapshot_id", handleGetSnapshot(uc))

	router.POST("/evidence", limits.RequestSizeLimiter(maxEvidenceFileSize), handleUploadEvidence(uc))
	router.GET("/evidence", handleListEvidence(uc))
	router.GET("/evidence/:evidence_id/download", handleDownloadEvidence(uc))
	router.DELETE("/evidence/:evidence_id", handleDeleteEvidence(uc))
}
