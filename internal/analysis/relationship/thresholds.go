// Package relationship classifies a two-person conversation into one of the
// twelve relationship categories, or egg when there is too little to judge.
package relationship

// Thresholds is the classifier tuning. Values are copied into the
// classifier, so changing a Thresholds after construction has no effect.
type Thresholds struct {
	// BiasRate is the share of characters at which one participant dominates.
	BiasRate float64 `mapstructure:"bias_rate" json:"biasRate"`

	// HighSpeedMinutes is the largest gap still counted as a fast reply.
	HighSpeedMinutes float64 `mapstructure:"high_speed_minutes" json:"highSpeedMinutes"`

	// HighSpeedRate is the share of fast replies needed for highSpeed.
	HighSpeedRate float64 `mapstructure:"high_speed_rate" json:"highSpeedRate"`

	// LeisurelyAvgMinutes is reported for reference only; tempo falls back
	// to leisurely whenever HighSpeedRate is not met.
	LeisurelyAvgMinutes float64 `mapstructure:"leisurely_avg_minutes" json:"leisurelyAvgMinutes"`

	// StoryAvgChars is the average message length for story.
	StoryAvgChars float64 `mapstructure:"story_avg_chars" json:"storyAvgChars"`

	// ResonanceMediaRate is the media share for resonance.
	ResonanceMediaRate float64 `mapstructure:"resonance_media_rate" json:"resonanceMediaRate"`

	// MinMessages is the valid-message count below which the verdict is egg.
	MinMessages int `mapstructure:"min_messages" json:"minMessages"`

	// ReplyWindowMinutes bounds the gaps the tempo axis looks at.
	ReplyWindowMinutes float64 `mapstructure:"reply_window_minutes" json:"replyWindowMinutes"`
}

// DefaultThresholds returns the production tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		BiasRate:            0.6,
		HighSpeedMinutes:    10,
		HighSpeedRate:       0.7,
		LeisurelyAvgMinutes: 180,
		StoryAvgChars:       20,
		ResonanceMediaRate:  0.2,
		MinMessages:         100,
		ReplyWindowMinutes:  1440,
	}
}

// withDefaults fills zero fields from DefaultThresholds.
func (t Thresholds) withDefaults() Thresholds {
	d := DefaultThresholds()
	if t.BiasRate <= 0 {
		t.BiasRate = d.BiasRate
	}
	if t.HighSpeedMinutes <= 0 {
		t.HighSpeedMinutes = d.HighSpeedMinutes
	}
	if t.HighSpeedRate <= 0 {
		t.HighSpeedRate = d.HighSpeedRate
	}
	if t.LeisurelyAvgMinutes <= 0 {
		t.LeisurelyAvgMinutes = d.LeisurelyAvgMinutes
	}
	if t.StoryAvgChars <= 0 {
		t.StoryAvgChars = d.StoryAvgChars
	}
	if t.ResonanceMediaRate <= 0 {
		t.ResonanceMediaRate = d.ResonanceMediaRate
	}
	if t.MinMessages <= 0 {
		t.MinMessages = d.MinMessages
	}
	if t.ReplyWindowMinutes <= 0 {
		t.ReplyWindowMinutes = d.ReplyWindowMinutes
	}
	return t
}
