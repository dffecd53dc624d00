package render

import (
	"math"

	"github.com/Jaimes-Onix/digital-flipbook-sub000/internal/document"
)

// OverlayRun is one invisible text node of the selection overlay, positioned
// in bitmap pixel coordinates with the origin at the top-left corner
type OverlayRun struct {
	Text     string  `json:"text"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	FontSize float64 `json:"fontSize"`
	// Rotation of the run around its origin, in radians
	Rotation float64 `json:"rotation"`
}

// buildOverlay converts extracted text runs into overlay nodes aligned with
// the rasterized glyphs beneath them. Run transforms are expressed with the
// page origin at the bottom-left corner, while bitmaps hang from the
// top-left one, so the vertical axis is flipped on the way
func buildOverlay(runs []document.TextRun, pageHeight, scale float64) []OverlayRun {
	if len(runs) == 0 {
		return nil
	}

	overlay := make([]OverlayRun, 0, len(runs))
	for _, run := range runs {
		a, b := run.Transform[0], run.Transform[1]
		d := run.Transform[3]
		tx, ty := run.Transform[4], run.Transform[5]

		fontSize := math.Hypot(b, d)
		if fontSize == 0 {
			continue
		}

		screenY := pageHeight - ty
		overlay = append(overlay, OverlayRun{
			Text:     run.Text,
			X:        tx * scale,
			Y:        screenY*scale - fontSize*scale,
			Width:    run.Width * scale,
			FontSize: fontSize * scale,
			Rotation: math.Atan2(b, a),
		})
	}
	return overlay
}
