package server

import (
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"time"

	"github.com/tidwall/gjson"

	"github.com/tatsujin/kifu-api/internal/analysis"
	"github.com/tatsujin/kifu-api/internal/kifu"
	"github.com/tatsujin/kifu-api/internal/tiles"
	"github.com/tatsujin/kifu-api/internal/vision"
)

// captureHandLimit caps how many detected tiles the capture endpoint
// reports back.
const captureHandLimit = 14

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleKifuSample(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, kifu.Sample(s.Config.SamplePath))
}

func (s *Server) handleValidateKifu(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeFailure(w, "failed to read request body")
		return
	}
	ok, errs := kifu.Validate(body)
	if errs == nil {
		errs = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":     ok,
		"errors": errs,
	})
}

func (s *Server) handleAnalyzeHand(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeFailure(w, "failed to read request body")
		return
	}
	if !gjson.ValidBytes(body) {
		writeFailure(w, "Invalid JSON body")
		return
	}
	resp := s.Analyzer.AnalyzeHand(r.Context(), analysis.ParseHandRequest(body))
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAnalyzeTenpai(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeFailure(w, "failed to read request body")
		return
	}
	if !gjson.ValidBytes(body) {
		writeFailure(w, "Invalid JSON body")
		return
	}
	resp := s.Analyzer.AnalyzeTenpai(r.Context(), analysis.ParseTenpaiRequest(body))
	writeJSON(w, http.StatusOK, resp)
}

// tilesFromImageResponse carries normalized tiles plus the raw detector
// output for clients that want to inspect it.
type tilesFromImageResponse struct {
	OK         bool               `json:"ok"`
	Tiles      []string           `json:"tiles"`
	Raw        []string           `json:"raw"`
	Detections []vision.Detection `json:"detections"`
}

func (s *Server) handleTilesFromImage(w http.ResponseWriter, r *http.Request) {
	data, filename, err := readUpload(r, "image")
	if err != nil {
		writeFailure(w, "no image uploaded")
		return
	}

	path, err := vision.SaveUpload(filename, data)
	if err != nil {
		writeFailure(w, "failed to store uploaded image")
		return
	}
	defer os.Remove(path)

	detections, labels, err := s.Detector.Detect(r.Context(), path)
	if err != nil {
		writeFailure(w, err.Error())
		return
	}
	normalized := tiles.NormalizeLabels(labels)
	if detections == nil {
		detections = []vision.Detection{}
	}
	writeJSON(w, http.StatusOK, tilesFromImageResponse{
		OK:         true,
		Tiles:      normalized,
		Raw:        labels,
		Detections: detections,
	})
}

// captureResponse is the capture endpoint payload. Debug explains where
// the tiles came from, including the fallback case.
type captureResponse struct {
	OK               bool           `json:"ok"`
	InferenceSeconds float64        `json:"inference_seconds"`
	Hand             captureHand    `json:"hand"`
	Debug            map[string]any `json:"debug"`
}

type captureHand struct {
	Tiles []string `json:"tiles"`
}

func (s *Server) handleCapture(w http.ResponseWriter, r *http.Request) {
	data, _, err := readUpload(r, "file")
	if err != nil || len(data) == 0 {
		writeFailure(w, "no image uploaded")
		return
	}

	path, width, height, err := vision.EncodeJPEG(data)
	if err != nil {
		writeFailure(w, "failed to decode uploaded image")
		return
	}
	defer os.Remove(path)

	imageSize := fmt.Sprintf("%dx%d", width, height)
	start := time.Now()
	detections, labels, err := s.Detector.Detect(r.Context(), path)
	elapsed := roundSeconds(time.Since(start))

	if err != nil {
		writeJSON(w, http.StatusOK, captureResponse{
			OK:               true,
			InferenceSeconds: elapsed,
			Hand:             captureHand{Tiles: vision.FallbackHand},
			Debug: map[string]any{
				"image_size": imageSize,
				"fallback":   err.Error(),
			},
		})
		return
	}

	normalized := tiles.NormalizeLabels(labels)
	if len(normalized) > captureHandLimit {
		normalized = normalized[:captureHandLimit]
	}
	writeJSON(w, http.StatusOK, captureResponse{
		OK:               true,
		InferenceSeconds: elapsed,
		Hand:             captureHand{Tiles: normalized},
		Debug: map[string]any{
			"image_size": imageSize,
			"raw_tiles":  labels,
			"detections": len(detections),
		},
	})
}

// readUpload pulls one multipart file field into memory.
func readUpload(r *http.Request, field string) ([]byte, string, error) {
	if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
		return nil, "", err
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, "", err
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxBodyBytes))
	if err != nil {
		return nil, "", err
	}
	return data, header.Filename, nil
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*1000) / 1000
}
