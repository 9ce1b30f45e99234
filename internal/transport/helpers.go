package transport

import (
	"errors"

	"github.com/UnendingLoop/ImageCompressor/internal/model"
	"github.com/wb-go/wbf/ginext"
)

func errorCodeDefiner(err error) int {
	switch {
	case errors.Is(err, model.ErrMissingType):
		return 415
	case errors.Is(err, model.ErrImageNotFound),
		errors.Is(err, model.ErrRouteNotFound):
		return 404
	case errors.Is(err, model.ErrMethodNotAllowed):
		return 405
	default:
		return 500
	}
}

// writeError - наружу уходят только известные сообщения, всё прочее превращается в общий 500
func writeError(ctx *ginext.Context, err error) {
	code := errorCodeDefiner(err)
	msg := model.ErrCompressFailed.Error()
	if code != 500 {
		msg = err.Error()
	}
	ctx.AbortWithStatusJSON(code, model.Response{Status: model.StatusError, Message: msg})
}
