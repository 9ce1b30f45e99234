// Package transport provides methods for processing requests from endpoints
package transport

import (
	"context"

	"github.com/UnendingLoop/ImageCompressor/internal/model"
	"github.com/wb-go/wbf/ginext"
)

type CompressHandler struct {
	service CompressService
}

type CompressService interface {
	Compress(ctx context.Context, req *model.CompressRequest) error // скачать, пометить, залить обратно
}

func NewCompressHandler(svc CompressService) *CompressHandler {
	return &CompressHandler{
		service: svc,
	}
}

// Healthcheck - зависимостей не проверяет, только что процесс жив
func (h CompressHandler) Healthcheck(ctx *ginext.Context) {
	ctx.JSON(200, model.HealthResponse{Status: 200, Message: model.MsgConnectionFine})
}

func (h CompressHandler) Compress(ctx *ginext.Context) {
	req := model.CompressRequest{
		ImageID:   ctx.Param("id"),
		ImageType: ctx.Query("type"),
	}

	if err := h.service.Compress(ctx.Request.Context(), &req); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(200, model.Response{Status: model.StatusOK, Message: model.MsgCompressed})
}

func (h CompressHandler) NotFound(ctx *ginext.Context) {
	writeError(ctx, model.ErrRouteNotFound)
}

func (h CompressHandler) MethodNotAllowed(ctx *ginext.Context) {
	writeError(ctx, model.ErrMethodNotAllowed)
}
