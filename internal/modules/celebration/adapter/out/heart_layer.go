package out

import (
	"time"

	"github.com/charmbracelet/harmonica"

	"goalcheer/internal/modules/celebration/domain"
	celebrationdto "goalcheer/internal/modules/celebration/dto"
)

const (
	// HeartLifetime is how long one heart rises before removing itself.
	HeartLifetime = 2600 * time.Millisecond

	heartFrequency = 1.4
	heartDamping   = 0.8
	// heartClimb is the fraction of the viewport height a heart rises.
	heartClimb = 0.75
)

// HeartLayer is the heart container. Hearts rise on a spring and fade out;
// each drops itself from the layer when its lifetime is over.
type HeartLayer struct {
	now    func() time.Time
	spring harmonica.Spring
	hearts []*liveHeart
}

type liveHeart struct {
	heart    domain.Heart
	born     time.Time
	rise     float64
	velocity float64
}

func NewHeartLayer(frameRate int, now func() time.Time) *HeartLayer {
	if frameRate <= 0 {
		frameRate = 60
	}
	if now == nil {
		now = time.Now
	}
	return &HeartLayer{
		now:    now,
		spring: harmonica.NewSpring(harmonica.FPS(frameRate), heartFrequency, heartDamping),
	}
}

func (l *HeartLayer) Append(heart domain.Heart) {
	l.hearts = append(l.hearts, &liveHeart{heart: heart, born: l.now()})
}

func (l *HeartLayer) Clear() { l.hearts = nil }

func (l *HeartLayer) Len() int { return len(l.hearts) }

// Advance steps every heart one frame towards the top of a viewport of the
// given pixel height and removes the ones whose animation has ended.
func (l *HeartLayer) Advance(now time.Time, viewportHeight int) {
	target := float64(viewportHeight) * heartClimb
	alive := l.hearts[:0]
	for _, h := range l.hearts {
		if now.Sub(h.born) >= HeartLifetime {
			continue
		}
		h.rise, h.velocity = l.spring.Update(h.rise, h.velocity, target)
		alive = append(alive, h)
	}
	for i := len(alive); i < len(l.hearts); i++ {
		l.hearts[i] = nil
	}
	l.hearts = alive
}

func (l *HeartLayer) Sprites(now time.Time) []celebrationdto.HeartSprite {
	sprites := make([]celebrationdto.HeartSprite, 0, len(l.hearts))
	for _, h := range l.hearts {
		age := now.Sub(h.born)
		opacity := 1 - float64(age)/float64(HeartLifetime)
		if opacity < 0 {
			opacity = 0
		}
		if opacity > 1 {
			opacity = 1
		}
		sprites = append(sprites, celebrationdto.HeartSprite{
			Glyph:       h.heart.Glyph,
			LeftPercent: h.heart.LeftPercent,
			BottomPx:    h.heart.BottomPx + h.rise,
			SizePx:      h.heart.SizePx,
			Opacity:     opacity,
		})
	}
	return sprites
}
