package vision

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func TestSaveUploadKeepsExtension(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"hand.jpg", ".jpg"},
		{"hand.png", ".png"},
		{"hand", ".png"},
	}
	for _, tt := range tests {
		path, err := SaveUpload(tt.filename, []byte("data"))
		if err != nil {
			t.Fatalf("SaveUpload(%q): %v", tt.filename, err)
		}
		defer os.Remove(path)
		if !strings.HasSuffix(path, tt.want) {
			t.Fatalf("path %q should end in %q", path, tt.want)
		}
		data, err := os.ReadFile(path)
		if err != nil || string(data) != "data" {
			t.Fatalf("payload not written: %v %q", err, data)
		}
	}
}

func TestEncodeJPEGReportsSourceDimensions(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 40), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	path, w, h, err := EncodeJPEG(buf.Bytes())
	if err != nil {
		t.Fatalf("EncodeJPEG: %v", err)
	}
	defer os.Remove(path)
	if w != 8 || h != 6 {
		t.Fatalf("dimensions = %dx%d, want 8x6", w, h)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := jpeg.Decode(f); err != nil {
		t.Fatalf("output is not a decodable JPEG: %v", err)
	}
}

func TestEncodeJPEGRejectsGarbage(t *testing.T) {
	if _, _, _, err := EncodeJPEG([]byte("not an image")); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestClientDetectUnconfigured(t *testing.T) {
	_, _, err := NewClient("", false).Detect(context.Background(), "/tmp/x.jpg")
	if err == nil || !strings.Contains(err.Error(), "not configured") {
		t.Fatalf("expected a descriptive configuration error, got %v", err)
	}
}

func TestClientDetectDecodesResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"detections":[{"class":"tile-5m","conf":0.93,"point":12.5}],"labels":["tile-5m"]}`))
	}))
	defer ts.Close()

	infos, labels, err := NewClient(ts.URL, false).Detect(context.Background(), "/tmp/x.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(infos) != 1 || infos[0].Class != "tile-5m" {
		t.Fatalf("detections = %+v", infos)
	}
	if infos[0].Conf == nil || *infos[0].Conf != 0.93 {
		t.Fatalf("conf = %v", infos[0].Conf)
	}
	if len(labels) != 1 || labels[0] != "tile-5m" {
		t.Fatalf("labels = %v", labels)
	}
}

func TestClientDetectSurfacesSidecarError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"weights not found: best.pt"}`))
	}))
	defer ts.Close()

	_, _, err := NewClient(ts.URL, false).Detect(context.Background(), "/tmp/x.jpg")
	if err == nil || err.Error() != "weights not found: best.pt" {
		t.Fatalf("expected the sidecar message verbatim, got %v", err)
	}
}
