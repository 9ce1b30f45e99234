// Package imgstore provides a client for the external Image Storage Service REST API
package imgstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/UnendingLoop/ImageCompressor/internal/model"
	"github.com/UnendingLoop/ImageCompressor/internal/mwlogger"
	"github.com/google/uuid"
)

// ответы хранилища больше этого считаем битыми
const maxPayloadSize = 32 << 20

type ImageStoreClient struct {
	baseURL string
	client  *http.Client
}

func NewImageStoreClient(baseURL string, timeout time.Duration) *ImageStoreClient {
	return &ImageStoreClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type downloadResponse struct {
	Image json.RawMessage `json:"image"`
}

// Download - GET <base>/download/<id>?type=<type>, достаёт поле image из ответа
func (s *ImageStoreClient) Download(ctx context.Context, id, imageType string) (model.ImageRecord, error) {
	link := s.baseURL + "/download/" + url.PathEscape(id) + "?" + url.Values{"type": {imageType}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build download request: %w", model.ErrStoreUnavailable, err)
	}

	resp, err := s.do(req)
	if err != nil {
		return nil, err
	}
	defer closeBody(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d for image %q", model.ErrStoreNotFound, resp.StatusCode, id)
	}

	var body downloadResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxPayloadSize)).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode download response: %w", model.ErrStoreBadPayload, err)
	}
	if body.Image == nil {
		return nil, fmt.Errorf("%w: no `image` field in download response", model.ErrStoreBadPayload)
	}

	// UseNumber - чтобы числа из записи ушли обратно ровно такими же
	var record model.ImageRecord
	dec := json.NewDecoder(bytes.NewReader(body.Image))
	dec.UseNumber()
	if err := dec.Decode(&record); err != nil {
		return nil, fmt.Errorf("%w: `image` field is not a JSON-object: %w", model.ErrStoreBadPayload, err)
	}
	if record == nil {
		return nil, fmt.Errorf("%w: `image` field is null", model.ErrStoreBadPayload)
	}

	return record, nil
}

// Upload - POST <base>/upload с записью в теле
func (s *ImageStoreClient) Upload(ctx context.Context, record model.ImageRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: failed to encode image record: %w", model.ErrStoreBadPayload, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/upload", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to build upload request: %w", model.ErrStoreUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.do(req)
	if err != nil {
		return err
	}
	defer closeBody(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", model.ErrStoreRejected, resp.StatusCode)
	}

	return nil
}

func (s *ImageStoreClient) do(req *http.Request) (*http.Response, error) {
	reqID := mwlogger.RequestIDFromContext(req.Context())
	if reqID == "" {
		reqID = uuid.NewString()
	}
	req.Header.Set(mwlogger.RequestIDHeader, reqID)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", model.ErrStoreUnavailable, req.Method, req.URL.Path, err)
	}
	return resp, nil
}

// closeBody - дочитывает и закрывает тело, чтобы соединение вернулось в пул
func closeBody(ctx context.Context, body io.ReadCloser) {
	logger := mwlogger.LoggerFromContext(ctx)
	if _, err := io.Copy(io.Discard, io.LimitReader(body, maxPayloadSize)); err != nil {
		logger.Warn().Err(err).Msg("Failed to drain image-store response body")
	}
	if err := body.Close(); err != nil {
		logger.Warn().Err(err).Msg("Failed to close image-store response body")
	}
}
