package birds

import (
	"encoding/base64"
	"errors"
	"strings"
)

// MaxPhotoBytes limita el tamaño de la foto decodificada.
const MaxPhotoBytes = 5 << 20

var ErrInvalidPhoto = errors.New("invalid photo")

// Photo es la imagen subida por el usuario; no se procesa, se guarda tal cual.
type Photo struct {
	ContentType string
	Data        []byte
}

// ParseDataURL decodifica "data:image/png;base64,...." (lo que manda el formulario).
func ParseDataURL(s string) (Photo, error) {
	s = strings.TrimSpace(s)
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return Photo{}, ErrInvalidPhoto
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return Photo{}, ErrInvalidPhoto
	}
	ct, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return Photo{}, ErrInvalidPhoto
	}
	ct = strings.ToLower(strings.TrimSpace(ct))
	if !strings.HasPrefix(ct, "image/") {
		return Photo{}, ErrInvalidPhoto
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Photo{}, ErrInvalidPhoto
	}
	if len(data) == 0 || len(data) > MaxPhotoBytes {
		return Photo{}, ErrInvalidPhoto
	}
	return Photo{ContentType: ct, Data: data}, nil
}

func photoKey(birdID string) string {
	return "birds/" + birdID + "/photo"
}
