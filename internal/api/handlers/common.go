package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"pitchhub/internal/apperrors"
	"pitchhub/internal/middleware"
	"pitchhub/internal/policy"
)

// respondError maps a taxonomy error onto the uniform failure envelope.
func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), gin.H{
		"success": false,
		"message": apperrors.Message(err),
	})
}

// identity returns the authenticated caller; routes behind RequireAuth
// always have one, so a miss is a server-side wiring bug.
func identity(c *gin.Context) (policy.Identity, bool) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		respondError(c, apperrors.New(apperrors.ErrAuth, "not authenticated"))
	}
	return id, ok
}

// pathID parses the numeric :id style path parameter.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		respondError(c, apperrors.Newf(apperrors.ErrValidation, "invalid %s", name))
		return 0, false
	}
	return uint(id), true
}
