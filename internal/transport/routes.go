package transport

import (
	"github.com/UnendingLoop/ImageCompressor/internal/model"
	"github.com/UnendingLoop/ImageCompressor/internal/mwlogger"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
)

// RegisterRoutes - вешает эндпоинты и JSON-ответы для 404/405 на движок
func RegisterRoutes(engine *ginext.Engine, h *CompressHandler) {
	// без этого gin отвечает 404 и на известный путь с чужим методом
	engine.HandleMethodNotAllowed = true
	// иначе на лишний слэш gin отдаёт 301 с HTML вместо JSON-404
	engine.RedirectTrailingSlash = false

	engine.Use(mwlogger.AccessLog(), gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger := mwlogger.LoggerFromContext(c.Request.Context())
		logger.Error().Interface("panic", recovered).Msg("Handler panicked")
		writeError(c, model.ErrCompressFailed)
	}))

	engine.GET("/healthcheck", h.Healthcheck)
	engine.GET("/compress/:id", h.Compress)

	engine.NoRoute(h.NotFound)
	engine.NoMethod(h.MethodNotAllowed)
}
