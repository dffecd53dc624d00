package metadata

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

func resize(src image.Image, coverMaxWidth int) ([]byte, error) {
	dst := imaging.Resize(src, coverMaxWidth, 0, imaging.Box)

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, dst, imaging.JPEG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
