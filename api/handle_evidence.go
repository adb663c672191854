package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vectasec/tara-backend/dto"
	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/pure_utils"
	"github.com/vectasec/tara-backend/usecases"
)

type EvidenceInput struct {
	Id string `uri:"evidence_id" binding:"required,uuid"`
}

func handleUploadEvidence(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var form dto.UploadEvidenceForm
		if err := c.ShouldBind(&form); err != nil {
			c.JSON(http.StatusBadRequest, APIErrorResponse{Message: err.Error()})
			return
		}
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, APIErrorResponse{Message: "an evidence file is required"})
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewEvidenceUseCase()
		evidence, err := usecase.UploadEvidence(ctx, models.CreateEvidenceAttributes{
			ArtifactType: models.ArtifactTypeFromString(form.ArtifactType),
			ArtifactId:   form.ArtifactId,
			ScopeId:      form.ScopeId,
			EvidenceType: form.EvidenceType,
			Title:        form.Title,
		}, fileHeader)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, dto.AdaptEvidenceAttachmentDto(evidence))
	}
}

func handleListEvidence(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ref := models.ArtifactRef{
			ArtifactType: models.ArtifactTypeFromString(c.Query("artifact_type")),
			ArtifactId:   c.Query("artifact_id"),
			ScopeId:      c.Query("scope_id"),
		}

		usecase := usecasesWithCreds(ctx, uc).NewEvidenceUseCase()
		attachments, err := usecase.ListEvidence(ctx, ref)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, pure_utils.Map(attachments, dto.AdaptEvidenceAttachmentDto))
	}
}

func handleDownloadEvidence(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input EvidenceInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewEvidenceUseCase()
		evidence, blob, err := usecase.DownloadEvidence(ctx, uuid.MustParse(input.Id))
		if presentError(ctx, c, err) {
			return
		}
		defer blob.ReadCloser.Close()

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", evidence.Filename))
		c.DataFromReader(http.StatusOK, evidence.FileSize, evidence.MimeType,
			blob.ReadCloser, nil)
	}
}

func handleDeleteEvidence(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input EvidenceInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewEvidenceUseCase()
		err := usecase.DeleteEvidence(ctx, uuid.MustParse(input.Id))
		if presentError(ctx, c, err) {
			return
		}

		c.Status(http.StatusNoContent)
	}
}
