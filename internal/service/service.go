// Package service provides business-logic for the app
package service

import (
	"context"
	"errors"

	"github.com/UnendingLoop/ImageCompressor/internal/model"
	"github.com/UnendingLoop/ImageCompressor/internal/mwlogger"
)

type CompressService struct {
	storage ImageStorage
}

func NewCompressService(strg ImageStorage) *CompressService {
	return &CompressService{
		storage: strg,
	}
}

// ImageStorage - контракт для работы с хранилищем
type ImageStorage interface {
	Download(ctx context.Context, id, imageType string) (model.ImageRecord, error)
	Upload(ctx context.Context, record model.ImageRecord) error
}

// Compress - скачать запись, пометить как сжатую и залить обратно. Возвращает только ошибки из model
func (c CompressService) Compress(ctx context.Context, req *model.CompressRequest) error {
	logger := mwlogger.LoggerFromContext(ctx).With().
		Str("image_id", req.ImageID).
		Str("image_type", req.ImageType).
		Logger()

	// Валидируем параметры - до любых сетевых вызовов
	if err := validateCompressRequest(req); err != nil {
		logger.Warn().Str("kind", model.ErrorKind(err)).Msg("Compress request rejected")
		return err
	}

	// достаём исходник из хранилища
	raw, err := c.storage.Download(ctx, req.ImageID, req.ImageType)
	if err != nil {
		// любой не-200 от хранилища отдаём как 404, реальный статус остаётся в логе
		if errors.Is(err, model.ErrStoreNotFound) {
			logger.Warn().Err(err).Str("kind", model.ErrorKind(model.ErrImageNotFound)).Msg("Image not found in Storage")
			return model.ErrImageNotFound
		}
		logger.Error().Err(err).Str("kind", model.ErrorKind(model.ErrCompressFailed)).Msg("Failed to download image from Storage")
		return model.ErrCompressFailed
	}

	// "сжимаем"
	compressed := markCompressed(raw)

	// кладём результат обратно
	if err := c.storage.Upload(ctx, compressed); err != nil {
		logger.Error().Err(err).Str("kind", model.ErrorKind(model.ErrCompressFailed)).Msg("Failed to upload compressed image to Storage")
		return model.ErrCompressFailed
	}

	logger.Info().Msg("Image compressed")
	return nil
}
