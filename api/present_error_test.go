package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/vectasec/tara-backend/models"
)

func TestPresentError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"nil error writes nothing", nil, http.StatusOK},
		{"bad parameter", errors.Wrap(models.BadParameterError, "detail"), http.StatusBadRequest},
		{"illegal transition", models.ErrWorkflowTransitionNotAllowed, http.StatusBadRequest},
		{"unauthorized", models.UnAuthorizedError, http.StatusUnauthorized},
		{"forbidden", models.ForbiddenError, http.StatusForbidden},
		{"self approval", models.ErrSelfApproval, http.StatusForbidden},
		{"not found", models.NotFoundError, http.StatusNotFound},
		{"stale workflow state", models.ErrWorkflowStateStale, http.StatusConflict},
		{"snapshot version taken", models.ErrSnapshotVersionTaken, http.StatusConflict},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			handled := presentError(context.Background(), c, tc.err)

			assert.Equal(t, tc.err != nil, handled)
			assert.Equal(t, tc.status, recorder.Code)
		})
	}
}
