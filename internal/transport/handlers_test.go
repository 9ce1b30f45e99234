package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/UnendingLoop/ImageCompressor/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func TestCompressHandler_Healthcheck(t *testing.T) {
	r := gin.New()
	h := NewCompressHandler(nil)

	r.GET("/healthcheck", func(c *gin.Context) {
		h.Healthcheck((*ginext.Context)(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, float64(200), body["status"])
	require.Equal(t, "Connection fine", body["message"])
}

func TestCompressHandler_Compress(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		mock       *mockCompressService
		wantStatus int
		wantBody   model.Response
	}{
		{
			name:   "success",
			target: "/compress/img123?type=jpeg",
			mock: &mockCompressService{
				compressFn: func(ctx context.Context, req *model.CompressRequest) error {
					require.Equal(t, "img123", req.ImageID)
					require.Equal(t, "jpeg", req.ImageType)
					return nil
				},
			},
			wantStatus: 200,
			wantBody:   model.Response{Status: "OK", Message: "Compression completed"},
		},
		{
			name:   "missing type",
			target: "/compress/img123",
			mock: &mockCompressService{
				compressFn: func(ctx context.Context, req *model.CompressRequest) error {
					require.Empty(t, req.ImageType)
					return model.ErrMissingType
				},
			},
			wantStatus: 415,
			wantBody:   model.Response{Status: "Error", Message: "Image type not specified"},
		},
		{
			name:   "image not found",
			target: "/compress/img123?type=jpeg",
			mock: &mockCompressService{
				compressFn: func(ctx context.Context, req *model.CompressRequest) error {
					return model.ErrImageNotFound
				},
			},
			wantStatus: 404,
			wantBody:   model.Response{Status: "Error", Message: "Image not found"},
		},
		{
			name:   "compress failed",
			target: "/compress/img123?type=jpeg",
			mock: &mockCompressService{
				compressFn: func(ctx context.Context, req *model.CompressRequest) error {
					return model.ErrCompressFailed
				},
			},
			wantStatus: 500,
			wantBody:   model.Response{Status: "Error", Message: "Failed to compress image"},
		},
		{
			name:   "unknown error is hidden",
			target: "/compress/img123?type=jpeg",
			mock: &mockCompressService{
				compressFn: func(ctx context.Context, req *model.CompressRequest) error {
					return errors.New("dial tcp 10.0.0.1:80: connection refused")
				},
			},
			wantStatus: 500,
			wantBody:   model.Response{Status: "Error", Message: "Failed to compress image"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			h := NewCompressHandler(tt.mock)

			r.GET("/compress/:id", func(c *gin.Context) {
				h.Compress((*ginext.Context)(c))
			})

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)
			require.Equal(t, tt.wantStatus, w.Code)

			var body model.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Equal(t, tt.wantBody, body)
		})
	}
}

func TestErrorCodeDefiner(t *testing.T) {
	require.Equal(t, 415, errorCodeDefiner(model.ErrMissingType))
	require.Equal(t, 404, errorCodeDefiner(model.ErrImageNotFound))
	require.Equal(t, 404, errorCodeDefiner(model.ErrRouteNotFound))
	require.Equal(t, 405, errorCodeDefiner(model.ErrMethodNotAllowed))
	require.Equal(t, 500, errorCodeDefiner(model.ErrCompressFailed))
	require.Equal(t, 500, errorCodeDefiner(errors.New("anything else")))
}
