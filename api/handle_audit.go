package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vectasec/tara-backend/dto"
	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/pure_utils"
	"github.com/vectasec/tara-backend/usecases"
)

func handleListAuditLogs(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var query dto.AuditLogFiltersQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			c.JSON(http.StatusBadRequest, APIErrorResponse{Message: err.Error()})
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewAuditUseCase()
		page, err := usecase.ListAuditLogs(ctx, models.AuditLogFilters{
			ScopeId:      query.ScopeId,
			ArtifactType: models.ArtifactTypeFromString(query.ArtifactType),
			ArtifactId:   query.ArtifactId,
			Limit:        query.Limit,
			Offset:       query.Offset,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.APIAuditLogPage{
			Logs:  pure_utils.Map(page.Logs, dto.AdaptAuditLogEntryDto),
			Total: page.Total,
		})
	}
}

func handleCreateAuditEvent(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var body dto.CreateAuditEventBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, APIErrorResponse{Message: err.Error()})
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewAuditUseCase()
		err := usecase.RecordEvent(ctx, models.CreateAuditLogAttributes{
			ScopeId:       body.ScopeId,
			ArtifactType:  models.ArtifactTypeFromString(body.ArtifactType),
			ArtifactId:    body.ArtifactId,
			Action:        models.AuditActionFromString(body.Action),
			FieldChanged:  body.FieldChanged,
			OldValue:      body.OldValue,
			NewValue:      body.NewValue,
			ChangeSummary: body.ChangeSummary,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.Status(http.StatusCreated)
	}
}
