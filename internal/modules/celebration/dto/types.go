package dto

type TriggerInput struct {
	// Completed holds one done flag per goal in the list.
	Completed []bool
}

type TriggerOutput struct {
	Started bool
	Status  StatusOutput
}

type StatusOutput struct {
	State     string
	Phase     string
	Particles int
	Hearts    int
	Visible   bool
}

// HeartSprite is a heart as currently drawn by the heart layer.
type HeartSprite struct {
	Glyph       string
	LeftPercent float64
	// BottomPx is the distance above the bottom edge; negative is below it.
	BottomPx float64
	SizePx   float64
	Opacity  float64
}
