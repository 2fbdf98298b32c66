package vision

import (
	"bytes"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	// Register the formats clients actually upload.
	_ "image/gif"
	_ "image/png"
)

const captureJPEGQuality = 90

// SaveUpload writes raw upload bytes to a temp file, keeping the original
// extension so the detector can sniff the format. Defaults to .png when
// the filename carries none. The caller removes the file.
func SaveUpload(filename string, data []byte) (string, error) {
	tmp, err := os.CreateTemp("", "kifu-upload-*"+suffixFor(filename))
	if err != nil {
		return "", err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

// EncodeJPEG decodes an uploaded image and re-encodes it as a JPEG temp
// file for detection, returning the file path and the source dimensions.
// The caller removes the file.
func EncodeJPEG(data []byte) (path string, width, height int, err error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", 0, 0, err
	}
	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()

	tmp, err := os.CreateTemp("", "kifu-capture-*.jpg")
	if err != nil {
		return "", 0, 0, err
	}
	if err := jpeg.Encode(tmp, img, &jpeg.Options{Quality: captureJPEGQuality}); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", 0, 0, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", 0, 0, err
	}
	return tmp.Name(), width, height, nil
}

func suffixFor(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" || strings.ContainsAny(ext, `/\`) {
		return ".png"
	}
	return ext
}
