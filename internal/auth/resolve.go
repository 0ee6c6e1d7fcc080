package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"musicbase/internal/user"
)

// Session is the outcome of a successful token resolution: the bearer token
// and the user row it named, re-fetched from the store.
type Session struct {
	Token string
	User  user.User
}

// ResolveError carries the HTTP status and envelope message for a failed
// resolution.
type ResolveError struct {
	Status  int
	Message string
	Err     error
}

// Detail returns the underlying failure text for the envelope's error field.
func (e *ResolveError) Detail() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}

// ExtractToken pulls the bearer token from the request. Precedence: JSON
// body field, then path parameter, then the access-token header — first
// present wins. The body is re-buffered so later binds still see it.
func ExtractToken(c *gin.Context) string {
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		raw, err := io.ReadAll(c.Request.Body)
		if err == nil {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(raw))
			var body struct {
				Token string `json:"token"`
			}
			if json.Unmarshal(raw, &body) == nil && body.Token != "" {
				return body.Token
			}
		}
	}
	if token := c.Param("token"); token != "" {
		return token
	}
	return c.GetHeader("access-token")
}

// Resolve verifies the inbound token and re-resolves its subject against
// the users table. Outcome precedence: missing token, bad signature/expiry,
// unknown subject, duplicate subject, valid.
func Resolve(database *gorm.DB, secret string, c *gin.Context) (*Session, *ResolveError) {
	tokenStr := ExtractToken(c)
	if tokenStr == "" {
		return nil, &ResolveError{Status: http.StatusBadRequest, Message: "An access token is required"}
	}

	claims, err := ParseToken(secret, tokenStr)
	if err != nil {
		return nil, &ResolveError{Status: http.StatusInternalServerError, Message: "Could not verify the access token", Err: err}
	}

	var matches []user.User
	if err := database.Where("email = ?", claims.Email).Find(&matches).Error; err != nil {
		return nil, &ResolveError{Status: http.StatusInternalServerError, Message: "Could not verify the access token", Err: err}
	}
	if len(matches) == 0 {
		return nil, &ResolveError{Status: http.StatusUnauthorized, Message: "Invalid access token"}
	}
	if len(matches) > 1 {
		return nil, &ResolveError{Status: http.StatusBadRequest, Message: "Duplicate email record"}
	}

	return &Session{Token: tokenStr, User: matches[0]}, nil
}
