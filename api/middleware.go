package api

import (
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/vectasec/tara-backend/models"
	"github.com/vectasec/tara-backend/utils"
)

type CredentialsClaims struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	Superuser bool   `json:"superuser,omitempty"`
	jwt.RegisteredClaims
}

func ParseAuthorizationBearerHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if authorization == "" {
		return "", errors.Wrap(models.UnAuthorizedError, "missing Authorization header")
	}
	token, found := strings.CutPrefix(authorization, "Bearer ")
	if !found {
		return "", errors.Wrap(models.UnAuthorizedError, "malformed Authorization header")
	}
	return strings.TrimSpace(token), nil
}

// credentialsMiddleware resolves the caller's credentials from the bearer
// token and stores them in the request context, together with a logger
// enriched with the caller's identity. Token issuance belongs to the identity
// provider, not to this service.
func credentialsMiddleware(signingSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		tokenString, err := ParseAuthorizationBearerHeader(c.Request.Header)
		if err != nil {
			if presentError(ctx, c, err) {
				c.Abort()
			}
			return
		}

		claims := CredentialsClaims{}
		token, err := jwt.ParseWithClaims(tokenString, &claims,
			func(token *jwt.Token) (any, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.Wrapf(models.UnAuthorizedError,
						"unexpected signing method %v", token.Header["alg"])
				}
				return signingSecret, nil
			})
		if err != nil || !token.Valid {
			presentError(ctx, c, errors.Wrap(models.UnAuthorizedError, "invalid token"))
			c.Abort()
			return
		}

		creds := models.Credentials{
			ActorIdentity: models.Identity{
				UserId: claims.Subject,
				Email:  claims.Email,
			},
			Role:      models.RoleFromString(claims.Role),
			Superuser: claims.Superuser,
		}
		if creds.ActorIdentity.UserId == "" {
			presentError(ctx, c, errors.Wrap(models.UnAuthorizedError, "token has no subject"))
			c.Abort()
			return
		}

		newContext := utils.StoreCredentialsInContext(ctx, creds)
		logger := utils.LoggerFromContext(newContext).
			With("user_id", creds.ActorIdentity.UserId).
			With("role", creds.Role.String())
		newContext = utils.StoreLoggerInContext(newContext, logger)

		c.Request = c.Request.WithContext(newContext)
		c.Next()
	}
}
