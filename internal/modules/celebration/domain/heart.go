package domain

import (
	"time"

	"goalcheer/internal/platform/random"
)

const (
	HeartCount    = 14
	HeartInterval = 120 * time.Millisecond
)

var HeartGlyphs = [4]string{"💗", "💕", "💖", "💝"}

// Heart is a floating glyph. Its motion belongs to whoever renders it.
type Heart struct {
	Glyph string
	// LeftPercent is the horizontal start as a percentage of viewport width.
	LeftPercent float64
	// SizePx is the font size in pixels.
	SizePx float64
	// BottomPx is the start offset relative to the bottom edge; always negative.
	BottomPx float64
}

func NewHeart(rng random.Source) Heart {
	return Heart{
		Glyph:       HeartGlyphs[pick(rng, len(HeartGlyphs))],
		SizePx:      18 + rng.Float64()*24,
		LeftPercent: 10 + rng.Float64()*80,
		BottomPx:    -10 - rng.Float64()*20,
	}
}

// HeartOffsets lists when each heart appears, relative to the start.
func HeartOffsets() []time.Duration {
	offsets := make([]time.Duration, HeartCount)
	for i := range offsets {
		offsets[i] = time.Duration(i) * HeartInterval
	}
	return offsets
}
