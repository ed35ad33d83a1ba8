package httperr

import (
	"github.com/gin-gonic/gin"
)

type Kind string

const (
	KindResourceNotFound  Kind = "RESOURCE_NOT_FOUND"
	KindInvalidDate       Kind = "INVALID_DATE"
	KindDependencyFailure Kind = "DEPENDENCY_FAILURE"
	KindInvalidRequest    Kind = "INVALID_REQUEST"
	KindRateLimited       Kind = "RATE_LIMITED"
	KindInternal          Kind = "INTERNAL"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Kind    Kind   `json:"kind,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithKind(c *gin.Context, status int, kind Kind, err error, msg string) {
	AbortWithDetail(c, status, kind, err, msg, nil)
}

func AbortWithDetail(c *gin.Context, status int, kind Kind, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithKind: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Kind = kind
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
