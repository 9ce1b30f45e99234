package service

import (
	"github.com/UnendingLoop/ImageCompressor/internal/model"
)

func validateCompressRequest(req *model.CompressRequest) error {
	if req.ImageType == "" {
		return model.ErrMissingType
	}
	return nil
}

// markCompressed - новая запись: глубокая копия исходной + transform=compress; исходник не трогаем
func markCompressed(src model.ImageRecord) model.ImageRecord {
	res := make(model.ImageRecord, len(src)+1)
	for k, v := range src {
		res[k] = deepCopy(v)
	}
	res[model.TransformKey] = model.TransformCompress
	return res
}

// deepCopy - копирует значения, которые может дать encoding/json: объекты, массивы и скаляры
func deepCopy(v any) any {
	switch val := v.(type) {
	case map[string]any:
		res := make(map[string]any, len(val))
		for k, item := range val {
			res[k] = deepCopy(item)
		}
		return res
	case model.ImageRecord:
		return model.ImageRecord(deepCopy(map[string]any(val)).(map[string]any))
	case []any:
		res := make([]any, len(val))
		for i, item := range val {
			res[i] = deepCopy(item)
		}
		return res
	default:
		// string, bool, json.Number, float64, nil - неизменяемые
		return val
	}
}
