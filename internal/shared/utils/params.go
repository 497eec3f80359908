package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/lumenhq/lumen/internal/shared/constants"
	"github.com/lumenhq/lumen/internal/shared/errors"
	"github.com/lumenhq/lumen/internal/shared/id"
)

// ParseIDParam reads a prefixed ID from a path parameter. A malformed ID
// cannot name a stored row, so it is reported with notFound like any
// unknown one.
func ParseIDParam(c *gin.Context, paramName, prefix, notFound string) (string, error) {
	v := c.Param(paramName)
	if !id.HasPrefix(v, prefix) {
		return "", errors.NewNotFoundError(notFound)
	}
	return v, nil
}

// CurrentUser returns the admin username set by the auth middleware.
func CurrentUser(c *gin.Context) string {
	v, _ := c.Get(constants.ContextKeyUserID)
	s, _ := v.(string)
	return s
}
