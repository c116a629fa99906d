package segmentation

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/sourcegraph/conc"
	"go.uber.org/multierr"

	"github.com/paletteforge/engine/internal/imaging"
	"github.com/paletteforge/engine/internal/paletteerr"
)

const (
	semanticFitDimension = 640
	retryWait            = 50 * time.Millisecond
	binarizeThreshold    = 128
)

// Adapter implements the §4.2 segmentation contract on top of a Provider
// and an imaging.Decoder. Logger is optional; a nil Logger is replaced
// with hclog.NewNullLogger(), mirroring the teacher's narrow use of
// hclog only at the capability-call boundary.
type Adapter struct {
	Provider Provider
	Decoder  imaging.Decoder
	Logger   hclog.Logger
}

// NewAdapter constructs a segmentation Adapter.
func NewAdapter(provider Provider, decoder imaging.Decoder, logger hclog.Logger) *Adapter {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Adapter{Provider: provider, Decoder: decoder, Logger: logger}
}

// Segment implements the segmentation adapter operation. width/height
// are the dimensions of the already-decoded source image.
func (a *Adapter) Segment(ctx context.Context, imageBytes []byte, width, height int) (Result, error) {
	var (
		segments     []SegmentOut
		panopticErr  error
		categories   []string
	)

	wg := conc.NewWaitGroup()
	wg.Go(func() {
		segments, panopticErr = a.callPanopticWithRetry(ctx, imageBytes)
	})
	wg.Go(func() {
		cats, err := a.fetchCategories(ctx, imageBytes)
		if err != nil {
			a.Logger.Debug("semantic segmentation failed, categories empty", "error", err)
			return
		}
		categories = cats
	})
	wg.Wait()

	if panopticErr != nil {
		a.Logger.Warn("panoptic segmentation unavailable after retry, using fallback", "error", panopticErr)
		return Result{
			Width:        width,
			Height:       height,
			Method:       MethodFallbackLuminance,
			Quality:      QualityMedium,
			UsedFallback: true,
			Confidence:   0.4,
			Categories:   categories,
		}, nil
	}

	classes := classifySegments(segments)

	composite := make([]byte, width*height)
	merged := 0
	var decodeErrs error

	for i, seg := range segments {
		if classes[i] != classForeground && classes[i] != classUncertain {
			continue
		}
		if seg.Mask == nil {
			continue
		}
		resized, err := a.Decoder.GreyscaleResize(seg.Mask, width, height)
		if err != nil {
			decodeErrs = multierr.Append(decodeErrs, fmt.Errorf("%s: %w", seg.Label, paletteerr.ErrMaskDecode))
			continue
		}
		for idx, v := range resized {
			if v > binarizeThreshold {
				composite[idx] = 255
			}
		}
		merged++
	}

	if decodeErrs != nil {
		a.Logger.Debug("some segment masks were skipped", "error", decodeErrs)
	}

	if merged == 0 {
		return Result{
			Width:        width,
			Height:       height,
			Method:       MethodFallbackLuminance,
			Quality:      QualityMedium,
			UsedFallback: true,
			Confidence:   0.5,
			Categories:   categories,
		}, nil
	}

	fgCount := 0
	for _, v := range composite {
		if v == 255 {
			fgCount++
		}
	}
	fgPct := 100 * float64(fgCount) / float64(width*height)
	quality, confidence := scoreMaskQuality(fgPct)

	return Result{
		Mask:         composite,
		Width:        width,
		Height:       height,
		Method:       MethodPanoptic,
		Quality:      quality,
		UsedFallback: false,
		Confidence:   confidence,
		Categories:   categories,
	}, nil
}

func scoreMaskQuality(fgPct float64) (Quality, float64) {
	switch {
	case fgPct >= 5 && fgPct <= 70:
		return QualityHigh, 0.9
	case fgPct >= 1 && fgPct < 5:
		return QualityMedium, 0.75
	case fgPct > 70 && fgPct <= 90:
		return QualityMedium, 0.8
	default:
		return QualityLow, 0.6
	}
}

func (a *Adapter) callPanopticWithRetry(ctx context.Context, imageBytes []byte) ([]SegmentOut, error) {
	segs, err := a.Provider.Panoptic(ctx, imageBytes)
	if err == nil {
		return segs, nil
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(retryWait):
	}

	segs, err = a.Provider.Panoptic(ctx, imageBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", paletteerr.ErrSegmentationUnavailable, err)
	}
	return segs, nil
}

func (a *Adapter) fetchCategories(ctx context.Context, imageBytes []byte) ([]string, error) {
	resized, err := resizeFitInside(imageBytes, semanticFitDimension)
	if err != nil {
		resized = imageBytes
	}

	segs, err := a.Provider.Semantic(ctx, resized)
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(segs))
	for _, s := range segs {
		categories = append(categories, s.Label)
	}
	return categories, nil
}

// resizeFitInside nearest-neighbour scales an encoded image so its
// longest side is at most maxDim, preserving aspect ratio, and
// re-encodes it as PNG. This is an adapter-internal convenience for the
// semantic call's resize-to-fit step (§4.2.6); it is not part of the
// ImageDecoder capability contract.
func resizeFitInside(data []byte, maxDim int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return data, nil
	}

	scale := float64(maxDim) / float64(w)
	if h > w {
		scale = float64(maxDim) / float64(h)
	}
	nw := maxInt(1, int(float64(w)*scale))
	nh := maxInt(1, int(float64(h)*scale))

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	for y := 0; y < nh; y++ {
		sy := bounds.Min.Y + y*h/nh
		for x := 0; x < nw; x++ {
			sx := bounds.Min.X + x*w/nw
			dst.Set(x, y, img.At(sx, sy))
		}
	}

	var out bytes.Buffer
	if err := png.Encode(&out, dst); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
