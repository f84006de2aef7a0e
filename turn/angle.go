package turn

import "math"

// AngleDegrees computes the turn angle θ in [0,360) from an incoming
// bearing and an outgoing bearing, both in degrees clockwise from north
// (§4.3). θ = 0 is a U-turn (the outgoing direction retraces the incoming
// one); θ = 180 is a straight continuation.
//
// The convention: θ = (outBearing - inBearing + 180 + 360) mod 360.
// Reasoning: continuing straight means outBearing == inBearing (you keep
// heading the same compass direction you arrived from), which this formula
// maps to 180; a literal U-turn means outBearing is the reverse of
// inBearing (differs by 180), which maps to 0.
func AngleDegrees(inBearing, outBearing float64) float64 {
	theta := math.Mod(outBearing-inBearing+180+360, 360)
	if theta < 0 {
		theta += 360
	}

	return theta
}

// Bucket classifies a turn angle into a coarse DirectionBucket using the
// §6.3 thresholds, measured as the angle's deviation from straight (180°):
// sharp >140°, regular 60-140°, slight 25-60°, straight <=25°. A deviation
// within 2° of the full 180° (i.e. θ within 2° of 0°/360°) is classified as
// UTurn rather than SharpLeft/SharpRight. With bearings clockwise from
// north, positive deviation (θ>180) is a right turn (arriving northbound and
// leaving eastbound gives θ = 270); negative is a left turn.
func Bucket(thetaDeg float64) DirectionBucket {
	theta := math.Mod(thetaDeg, 360)
	if theta < 0 {
		theta += 360
	}

	if theta <= 2 || theta >= 358 {
		return UTurn
	}

	dev := theta - 180 // (-180, 180]
	abs := math.Abs(dev)

	switch {
	case abs <= 25:
		return Straight
	case abs <= 60:
		if dev < 0 {
			return SlightLeft
		}
		return SlightRight
	case abs <= 140:
		if dev < 0 {
			return Left
		}
		return Right
	default:
		if dev < 0 {
			return SharpLeft
		}
		return SharpRight
	}
}
