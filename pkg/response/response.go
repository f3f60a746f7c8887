package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "menu-catalog-admin/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. An *errors.HTTPError picks the status code,
// anything else is a 400.
func Error(c *gin.Context, err error, errs any) {
	status := http.StatusBadRequest
	message := err.Error()

	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Status
		message = httpErr.Message
	}

	c.JSON(status, Resp{
		ErrorCode: 1,
		Message:   message,
		Errors:    errs,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}
