package middleware

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/personnel/internal/app/models/dto"
	"github.com/yigit/personnel/internal/pkg/logger"
)

// BindJSON decodes the request body into obj. On malformed JSON it writes a
// 400 response and returns false; rule checks are left to the services.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		return rejectBody(c, err)
	}
	return true
}

// BindOptionalJSON behaves like BindJSON but treats a missing body as an
// empty object, leaving obj at its zero value.
func BindOptionalJSON(c *gin.Context, obj interface{}) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(obj); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		return rejectBody(c, err)
	}
	return true
}

func rejectBody(c *gin.Context, err error) bool {
	logger.Ctx(c.Request.Context()).Debug().Err(err).Msg("Invalid request body")
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
	return false
}
