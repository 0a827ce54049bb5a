package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cloud-wave-best-zizon/stockify-web/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeWarning NoticeKind = "warning"
	NoticeError   NoticeKind = "error"
)

// Notice is the one user-visible message of an action.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

func success(message string) *Notice {
	return &Notice{Kind: NoticeSuccess, Message: message}
}

func warning(message string) *Notice {
	return &Notice{Kind: NoticeWarning, Message: message}
}

// failure turns an action error into its status code and notice. Validation
// and not-found errors are shown as they are; anything else is logged and
// replaced by the generic message.
func failure(logger *zap.Logger, err error, notFound, generic string, fields ...zap.Field) (int, *Notice) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, warning(verr.Message)
	case errors.Is(err, service.ErrCategoryNotFound):
		return http.StatusNotFound, warning("Category not found")
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, warning(notFound)
	}

	logger.Error(generic, append(fields, zap.Error(err))...)
	return http.StatusBadGateway, &Notice{Kind: NoticeError, Message: generic}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"notice": warning("Invalid id"),
		})
		return 0, false
	}
	return id, true
}
