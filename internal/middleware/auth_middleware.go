package middleware

import (
	"net/http"
	"strings"

	"go-attendance/internal/domain"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	identityKey     = "identity"
	AccessTokenName = "access_token"
)

var errTokenNotFound = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)

// TokenParser verifies a session token and returns the identity it carries.
type TokenParser interface {
	Parse(token string) (domain.Identity, error)
}

func AuthMiddleware(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie(AccessTokenName); err == nil {
				tokenString = cookie
			}
		}

		if strings.TrimSpace(tokenString) == "" {
			response.AbortWithError(c, errTokenNotFound)
			return
		}

		identity, err := parser.Parse(tokenString)
		if err != nil {
			response.AbortWithError(c, err)
			return
		}

		c.Set(identityKey, identity)
		c.Set("user_id", identity.UserID)
		c.Set("organization_id", identity.OrganizationID)
		c.Set("role", identity.Role.String())

		c.Next()
	}
}

// CurrentIdentity returns the identity stored by AuthMiddleware, or the zero
// Identity when the request is anonymous.
func CurrentIdentity(c *gin.Context) domain.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}
	}
	id, _ := v.(domain.Identity)
	return id
}

func RoleMiddleware(allowed ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := CurrentIdentity(c).Require(allowed...); err != nil {
			response.AbortWithError(c, err)
			return
		}
		c.Next()
	}
}
