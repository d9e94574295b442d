package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// Image is a stored object reference plus its public URL.
type Image struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// ImageList is persisted as a jsonb column.
type ImageList []Image

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}

	raw, err := json.Marshal(l)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling image list")
	}

	return string(raw), nil
}

func (l *ImageList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.Errorf("unsupported image list source type %T", src)
	}

	return errors.Wrap(json.Unmarshal(raw, l), "unmarshaling image list")
}
