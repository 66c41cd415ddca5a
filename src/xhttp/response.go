package xhttp

import (
	"errors"
	"net/http"

	"NFTMarketBackend/src/errcode"

	"github.com/gin-gonic/gin"
)

// Response is the uniform envelope for every API reply.
type Response struct {
	Code      int         `json:"code"`
	Msg       string      `json:"msg,omitempty"`
	Retryable bool        `json:"retryable,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

func OkJson(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: http.StatusOK,
		Data: data,
	})
}

// Error maps a business error onto the envelope. Coded errors keep their
// code and retryability; anything else is reported as unexpected.
func Error(c *gin.Context, err error) {
	var coded *errcode.Err
	if !errors.As(err, &coded) {
		coded = errcode.ErrUnexpected
	}
	c.JSON(statusOf(coded), Response{
		Code:      coded.Code(),
		Msg:       coded.Msg(),
		Retryable: coded.Retryable(),
	})
}

func statusOf(e *errcode.Err) int {
	switch e.Kind() {
	case errcode.KindValidation:
		return http.StatusBadRequest
	case errcode.KindAuthorization:
		return http.StatusForbidden
	case errcode.KindStateConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
