package storage

import (
	"github.com/UnendingLoop/ImageCompressor/internal/config"
	"github.com/UnendingLoop/ImageCompressor/internal/storage/imgstore"
	"github.com/wb-go/wbf/zlog"
)

// NewImgStorage - клиент хранилища картинок по настройкам приложения; соединения не держит, проверять нечего
func NewImgStorage(cfg *config.Config) *imgstore.ImageStoreClient {
	zlog.Logger.Info().
		Str("store_url", cfg.StoreURL).
		Dur("timeout", cfg.StoreTimeout).
		Msg("IMG-storage client configured")

	return imgstore.NewImageStoreClient(cfg.StoreURL, cfg.StoreTimeout)
}
