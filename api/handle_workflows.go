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

type WorkflowInput struct {
	Id string `uri:"workflow_id" binding:"required,uuid"`
}

type ScopeInput struct {
	ScopeId string `uri:"scope_id" binding:"required"`
}

func handleCreateWorkflow(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var body dto.CreateWorkflowBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, APIErrorResponse{Message: err.Error()})
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewWorkflowUseCase()
		workflow, err := usecase.CreateWorkflow(ctx, models.CreateWorkflowAttributes{
			ArtifactType:     models.ArtifactTypeFromString(body.ArtifactType),
			ArtifactId:       body.ArtifactId,
			ScopeId:          body.ScopeId,
			AssignedReviewer: body.AssignedReviewer,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, dto.AdaptWorkflowDto(workflow))
	}
}

func handleGetWorkflow(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input WorkflowInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewWorkflowUseCase()
		workflow, err := usecase.GetWorkflow(ctx, uuid.MustParse(input.Id))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptWorkflowDto(workflow))
	}
}

func handleListWorkflows(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input ScopeInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		filters := models.WorkflowFilters{
			ScopeId: input.ScopeId,
		}
		if state := c.Query("state"); state != "" {
			filters.State = models.WorkflowStateFromString(state)
		}

		usecase := usecasesWithCreds(ctx, uc).NewWorkflowUseCase()
		workflows, err := usecase.ListWorkflowsByScope(ctx, filters)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, pure_utils.Map(workflows, dto.AdaptWorkflowDto))
	}
}

func handleGetWorkflowByArtifact(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ref := models.ArtifactRef{
			ArtifactType: models.ArtifactTypeFromString(c.Query("artifact_type")),
			ArtifactId:   c.Query("artifact_id"),
			ScopeId:      c.Query("scope_id"),
		}

		usecase := usecasesWithCreds(ctx, uc).NewWorkflowUseCase()
		workflow, err := usecase.GetWorkflowByArtifact(ctx, ref)
		if presentError(ctx, c, err) {
			return
		}
		if workflow == nil {
			c.JSON(http.StatusNotFound, APIErrorResponse{
				Message: "no workflow governs this artifact",
			})
			return
		}

		c.JSON(http.StatusOK, dto.AdaptWorkflowDto(*workflow))
	}
}

func handleTransitionWorkflow(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input WorkflowInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var body dto.TransitionWorkflowBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, APIErrorResponse{Message: err.Error()})
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewWorkflowUseCase()
		workflow, err := usecase.TransitionWorkflow(ctx, uuid.MustParse(input.Id),
			models.WorkflowStateFromString(body.TargetState), body.Notes)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, dto.AdaptWorkflowDto(workflow))
	}
}

func handleCreateSignoff(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input WorkflowInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var body dto.CreateSignoffBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, APIErrorResponse{Message: err.Error()})
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewWorkflowUseCase()
		signoff, err := usecase.AddSignoff(ctx, models.CreateSignoffAttributes{
			WorkflowId: uuid.MustParse(input.Id),
			Action:     models.SignoffActionFromString(body.Action),
			Comment:    body.Comment,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, dto.AdaptSignoffDto(signoff))
	}
}

func handleListSignoffs(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var input WorkflowInput
		if err := c.ShouldBindUri(&input); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewWorkflowUseCase()
		signoffs, err := usecase.ListSignoffs(ctx, uuid.MustParse(input.Id))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, pure_utils.Map(signoffs, dto.AdaptSignoffDto))
	}
}
