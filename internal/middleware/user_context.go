package middleware

import (
	"firmlynk/internal/store"

	"github.com/gin-gonic/gin"
)

// InjectUser resolves the session's user id against the store and attaches
// the user to the request context. The session layer is only an identity
// stub; everything downstream works off the resolved User.
func InjectUser(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := SessionUserID(c); ok {
			if user, err := s.UserByID(id); err == nil && user != nil {
				c.Set(currentUserKey, user)
			}
		}
		c.Next()
	}
}
