package transport

import (
	"context"

	"github.com/UnendingLoop/ImageCompressor/internal/model"
	"github.com/gin-gonic/gin"
)

type mockCompressService struct {
	compressFn func(ctx context.Context, req *model.CompressRequest) error
}

func (m *mockCompressService) Compress(ctx context.Context, req *model.CompressRequest) error {
	return m.compressFn(ctx, req)
}

func init() {
	gin.SetMode(gin.TestMode)
}
