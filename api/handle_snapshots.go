package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vectasec/tara-backend/dto"
	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/pure_utils"
	"github.com/vectasec/tara-backend/usecases"
)

type SnapshotInput struct {
	Id string `uri:"snapshot_id" binding:"required,uuid"`
}

func handleCreateSnapshot(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var body dto.CreateSnapshotBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, APIErrorResponse{Message: err.Error()})
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewSnapshotUseCase()
		snapshot, err := usecase.CreateSnapshot(ctx, models.CreateSnapshotAttributes{
			ScopeId:      body.ScopeId,
			VersionLabel: body.VersionLabel,
			Notes:        body.Notes,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, dto.AdaptSnapshotDto(snapshot))
	}
}

func handleListSnapshots(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input ScopeInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewSnapshotUseCase()
		snapshots, err := usecase.ListSnapshots(ctx, input.ScopeId)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, pure_utils.Map(snapshots, dto.AdaptSnapshotDto))
	}
}

func handleGetSnapshot(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input SnapshotInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewSnapshotUseCase()
		snapshot, err := usecase.GetSnapshotDetail(ctx, uuid.MustParse(input.Id))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptSnapshotDto(snapshot))
	}
}
