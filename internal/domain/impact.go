package domain

import "fmt"

// Tier is an ordered impact level.
type Tier int

const (
	TierLow Tier = iota
	TierModerate
	TierHigh
	TierVeryHigh
	TierExtreme
)

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "LOW"
	case TierModerate:
		return "MODERATE"
	case TierHigh:
		return "HIGH"
	case TierVeryHigh:
		return "VERY HIGH"
	case TierExtreme:
		return "EXTREME"
	default:
		return "UNKNOWN"
	}
}

// Rank orders tiers from 0 (LOW) upward.
func (t Tier) Rank() int { return int(t) }

// Marker is the coloured square shown before a tier label.
func (t Tier) Marker() string {
	switch t {
	case TierLow:
		return "🟩"
	case TierModerate:
		return "🟨"
	default:
		return "🟥"
	}
}

// Scale selects the threshold table used to classify a value.
type Scale int

const (
	ScaleRainProbability Scale = iota
	ScaleRainCoverage
	ScalePrecipitation
	ScaleRainRecency
	ScaleWindSpeed
	ScaleWindGust
	ScaleFeelsLike
	ScaleUVIndex
	ScaleHumidity
)

// ScaleFor returns the scale used to classify a metric's peak value.
func ScaleFor(m Metric) Scale {
	switch m {
	case RainChance:
		return ScaleRainProbability
	case Precipitation:
		return ScalePrecipitation
	case WindSpeed:
		return ScaleWindSpeed
	case WindGust:
		return ScaleWindGust
	case FeelsLike:
		return ScaleFeelsLike
	case Humidity:
		return ScaleHumidity
	default:
		return ScaleUVIndex
	}
}

// Impact is a classified value: its tier plus the guidance for that tier.
type Impact struct {
	Scale    Scale
	Tier     Tier
	Guidance string
}

// String renders the impact as it appears in reports, e.g. "🟨 MODERATE (CAUTION)".
func (i Impact) String() string {
	return fmt.Sprintf("%s %s (%s)", i.Tier.Marker(), i.Tier, i.Guidance)
}

// Bands holds inclusive upper bounds for LOW and MODERATE. Anything above
// Moderate is HIGH.
type Bands struct {
	Low      float64
	Moderate float64
}

// RecencyBands holds the minimum dry hours since the last rain for LOW and
// MODERATE. Anything below Moderate is HIGH.
type RecencyBands struct {
	Low      float64
	Moderate float64
}

// UVBands bounds the UV index tiers: LOW and MODERATE are inclusive upper
// bounds, High and VeryHigh are exclusive upper bounds.
type UVBands struct {
	Low      float64
	Moderate float64
	High     float64
	VeryHigh float64
}

// HumidityBands bounds humidity tiers: LOW and MODERATE are inclusive upper
// bounds, High is an exclusive upper bound above which humidity is EXTREME.
type HumidityBands struct {
	Low      float64
	Moderate float64
	High     float64
}

// Thresholds is the full classification table.
type Thresholds struct {
	RainProbability Bands
	RainCoverage    Bands
	Precipitation   Bands
	RainRecency     RecencyBands
	WindSpeed       Bands
	WindGust        Bands
	FeelsLike       Bands
	UVIndex         UVBands
	Humidity        HumidityBands
}

// DefaultThresholds returns the thresholds used for outdoor sports planning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		RainProbability: Bands{Low: 30, Moderate: 50},
		RainCoverage:    Bands{Low: 30, Moderate: 60},
		Precipitation:   Bands{Low: 0.5, Moderate: 2.0},
		RainRecency:     RecencyBands{Low: 3, Moderate: 2},
		WindSpeed:       Bands{Low: 15, Moderate: 25},
		WindGust:        Bands{Low: 20, Moderate: 35},
		FeelsLike:       Bands{Low: 24, Moderate: 33},
		UVIndex:         UVBands{Low: 2, Moderate: 5, High: 7, VeryHigh: 10},
		Humidity:        HumidityBands{Low: 30, Moderate: 60, High: 75},
	}
}

var (
	rainGuidance = map[Tier]string{TierLow: "PLAYABLE", TierModerate: "CAUTION", TierHigh: "UNPLAYABLE"}
	windGuidance = map[Tier]string{TierLow: "PREDICTABLE PLAY", TierModerate: "BALL SWERVE", TierHigh: "ERRATIC MOVEMENT"}

	guidance = map[Scale]map[Tier]string{
		ScaleRainProbability: rainGuidance,
		ScaleRainCoverage:    rainGuidance,
		ScalePrecipitation:   {TierLow: "VERY LIGHT RAIN", TierModerate: "LIGHT RAIN", TierHigh: "HEAVY RAIN"},
		ScaleRainRecency:     {TierLow: "PLAYABLE", TierModerate: "DELAY START", TierHigh: "POSTPONE"},
		ScaleWindSpeed:       windGuidance,
		ScaleWindGust:        windGuidance,
		ScaleFeelsLike:       {TierLow: "COMFORTABLE", TierModerate: "HEAT FATIGUE", TierHigh: "DANGEROUS HEAT"},
		ScaleUVIndex: {
			TierLow:      "60 MIN. BURN TIME",
			TierModerate: "45 MIN. BURN TIME",
			TierHigh:     "30 MIN. BURN TIME",
			TierVeryHigh: "15 MIN. BURN TIME",
			TierExtreme:  "STAY INDOORS",
		},
		ScaleHumidity: {
			TierLow:      "FAST DEHYDRATION",
			TierModerate: "COMFORTABLE",
			TierHigh:     "AIR FEELS STICKY",
			TierExtreme:  "EXHAUSTION RISK",
		},
	}
)

// Classifier maps values to impact tiers. It holds no mutable state.
type Classifier struct {
	thresholds Thresholds
}

// NewClassifier returns a classifier over the given thresholds.
func NewClassifier(t Thresholds) Classifier {
	return Classifier{thresholds: t}
}

// Classify returns the impact of value on the given scale. Every value maps
// to a tier; NaN falls into the highest tier of the scale.
func (c Classifier) Classify(s Scale, value float64) Impact {
	t := c.thresholds
	var tier Tier
	switch s {
	case ScaleRainProbability:
		tier = threeTier(value, t.RainProbability)
	case ScaleRainCoverage:
		tier = threeTier(value, t.RainCoverage)
	case ScalePrecipitation:
		tier = threeTier(value, t.Precipitation)
	case ScaleWindSpeed:
		tier = threeTier(value, t.WindSpeed)
	case ScaleWindGust:
		tier = threeTier(value, t.WindGust)
	case ScaleFeelsLike:
		tier = threeTier(value, t.FeelsLike)
	case ScaleRainRecency:
		switch {
		case value >= t.RainRecency.Low:
			tier = TierLow
		case value >= t.RainRecency.Moderate:
			tier = TierModerate
		default:
			tier = TierHigh
		}
	case ScaleUVIndex:
		switch {
		case value <= t.UVIndex.Low:
			tier = TierLow
		case value <= t.UVIndex.Moderate:
			tier = TierModerate
		case value < t.UVIndex.High:
			tier = TierHigh
		case value < t.UVIndex.VeryHigh:
			tier = TierVeryHigh
		default:
			tier = TierExtreme
		}
	case ScaleHumidity:
		switch {
		case value <= t.Humidity.Low:
			tier = TierLow
		case value <= t.Humidity.Moderate:
			tier = TierModerate
		case value < t.Humidity.High:
			tier = TierHigh
		default:
			tier = TierExtreme
		}
	default:
		panic(fmt.Sprintf("domain: unknown scale %d", s))
	}
	return Impact{Scale: s, Tier: tier, Guidance: guidance[s][tier]}
}

func threeTier(value float64, b Bands) Tier {
	switch {
	case value <= b.Low:
		return TierLow
	case value <= b.Moderate:
		return TierModerate
	default:
		return TierHigh
	}
}
