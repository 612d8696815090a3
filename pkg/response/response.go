package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "intent-coordinator/pkg/errors"
)

// Resp is the standard JSON response body. ErrorCode is 0 on success and the
// HTTP status otherwise; Code is the machine-readable error code.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

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

// Error renders err. An *errors.HTTPError is sent as is; anything else
// becomes a generic 500 so causes never leak.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		InternalError(c)
		return
	}

	resp := Resp{
		ErrorCode: httpErr.StatusCode,
		Code:      httpErr.Code,
		Message:   httpErr.Message,
	}
	if len(httpErr.Details) > 0 {
		resp.Errors = httpErr.Details
	}
	c.JSON(httpErr.StatusCode, resp)
}

// Abort renders err like Error and stops the handler chain.
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Code:      InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// NotFound sends 404.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Resp{
		ErrorCode: http.StatusNotFound,
		Code:      NotFoundCode,
		Message:   "Not found.",
	})
}
