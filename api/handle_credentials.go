package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vectasec/tara-backend/utils"
)

type APICredentials struct {
	UserId    string `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Superuser bool   `json:"superuser"`
}

func handleGetCredentials() func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds, found := utils.CredentialsFromCtx(ctx)
		if !found {
			c.Status(http.StatusUnauthorized)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"credentials": APICredentials{
				UserId:    creds.ActorIdentity.UserId,
				Email:     creds.ActorIdentity.Email,
				Role:      creds.Role.String(),
				Superuser: creds.Superuser,
			},
		})
	}
}
