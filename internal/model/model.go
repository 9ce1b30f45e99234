// Package model provides data-structs for internal app-usage
package model

import (
	"errors"
)

// ImageRecord - непрозрачная JSON-запись картинки из хранилища, структуру не интерпретируем
type ImageRecord map[string]any

type CompressRequest struct {
	ImageID   string
	ImageType string
}

const (
	TransformKey      = "transform"
	TransformCompress = "compress"
)

//---------------------

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	MsgCompressed     = "Compression completed"
	MsgConnectionFine = "Connection fine"
)

// ------------------

// Текст ошибки - это и есть сообщение, которое уходит клиенту
var (
	ErrMissingType      error = errors.New("Image type not specified") // 415
	ErrImageNotFound    error = errors.New("Image not found")          // 404
	ErrCompressFailed   error = errors.New("Failed to compress image") // 500
	ErrRouteNotFound    error = errors.New("URL not found")            // 404
	ErrMethodNotAllowed error = errors.New("Method not allowed")       // 405
)

// Ошибки слоя хранилища - сервис переводит их в ошибки выше
var (
	ErrStoreNotFound    error = errors.New("image-store answered non-200 on download")
	ErrStoreBadPayload  error = errors.New("image-store returned malformed image record")
	ErrStoreRejected    error = errors.New("image-store answered non-200 on upload")
	ErrStoreUnavailable error = errors.New("image-store request failed")
)

// ErrorKind - имя вида ошибки для логов
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrMissingType):
		return "MissingParameter"
	case errors.Is(err, ErrImageNotFound):
		return "ImageNotFound"
	case errors.Is(err, ErrRouteNotFound):
		return "RouteNotFound"
	case errors.Is(err, ErrMethodNotAllowed):
		return "MethodNotAllowed"
	default:
		return "UnexpectedFailure"
	}
}
