package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/showroom-scheduler/internal/config"
	domain "github.com/BruksfildServices01/showroom-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/showroom-scheduler/internal/httperr"
)

const ContextIdentity = "identity"

// Claims accepts both locally issued tokens (role at the top level) and
// hosted auth tokens (role under app_metadata).
type Claims struct {
	Email       string      `json:"email"`
	Role        string      `json:"role"`
	AppMetadata appMetadata `json:"app_metadata"`
	jwt.RegisteredClaims
}

type appMetadata struct {
	Role string `json:"role"`
}

func (c *Claims) identity() domain.Identity {
	role := c.AppMetadata.Role
	if role == "" {
		role = c.Role
	}
	return domain.Identity{
		UserID: c.Subject,
		Email:  c.Email,
		Role:   role,
	}
}

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abort(c, http.StatusUnauthorized, "invalid_authorization_header")
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			abort(c, http.StatusUnauthorized, "invalid_token")
			return
		}

		identity := claims.identity()
		if identity.IsZero() {
			abort(c, http.StatusUnauthorized, "invalid_token_payload")
			return
		}

		c.Set(ContextIdentity, identity)
		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if IdentityFrom(c).Role != role {
			abort(c, http.StatusForbidden, "forbidden")
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the caller set by AuthMiddleware, or the zero
// identity on public routes.
func IdentityFrom(c *gin.Context) domain.Identity {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return domain.Identity{}
	}
	identity, _ := v.(domain.Identity)
	return identity
}

func abort(c *gin.Context, status int, code string) {
	c.AbortWithStatusJSON(status, httperr.HTTPError{Code: code, Message: code})
}
