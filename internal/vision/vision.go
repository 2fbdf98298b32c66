// Package vision wraps the tile detector sidecar: it turns an uploaded
// image into detection records and raw class labels. Detector failures
// are descriptive strings surfaced to the client, never process faults.
package vision

import "context"

// Detection is one detected tile: class label, confidence and horizontal
// position. Conf and Point are nil when the detector reports unusable
// numbers.
type Detection struct {
	Class string   `json:"class"`
	Conf  *float64 `json:"conf"`
	Point *float64 `json:"point"`
}

// Detector turns an image file into detections and a parallel list of raw
// label strings.
type Detector interface {
	Detect(ctx context.Context, imagePath string) ([]Detection, []string, error)
}

// FallbackHand is returned by the capture endpoint when no detector is
// available, so clients can keep working against a fixed hand.
var FallbackHand = []string{
	"1m", "2m", "3m", "4p", "5p", "6p", "7s", "8s", "9s", "E", "E", "S", "P",
}
