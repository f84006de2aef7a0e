package artifact

import (
	"encoding/binary"
	"io"

	"github.com/meridian-routing/meridian/profile"
)

// PropertiesRecord is the .properties payload (§6.1): the profile's name
// plus its full set of §6.3 numeric constants (turn-angle buckets, CH
// lazy-update coefficients, witness-search bounds, map-matching
// parameters, alternative-route bounds) — the concrete set of
// profile-derived tuning values this module's Profile interface exposes,
// standing in for the documented example fields (max speed, turn penalty
// defaults, traffic-light penalty, left-hand-drive flag) that belong to a
// richer profile scripting environment out of this module's scope (§1).
type PropertiesRecord struct {
	Name string

	TurnAngleStraightMaxDeg float64
	TurnAngleSlightMaxDeg   float64
	TurnAngleRegularMaxDeg  float64

	CHLazyUpdateAlpha float64
	CHLazyUpdateBeta  float64
	CHLazyUpdateGamma float64

	WitnessSearchHopLimit  int32
	WitnessSearchNodeLimit int32
	CHCoreFactor           float64

	MapMatchingSigmaMeters           float64
	MapMatchingBetaMeters            float64
	MapMatchingCandidateRadiusFactor float64
	MapMatchingMaxCandidates         int32
	MapMatchingSuspiciousDeltaMeters float64
	MapMatchingMaxBrokenStates       int32

	AlternativeMaxOverheadRatio float64
	AlternativeMaxOverlapRatio  float64
}

// propertiesFixed is PropertiesRecord minus its variable-length Name
// field, laid out for direct binary.Write/Read.
type propertiesFixed struct {
	TurnAngleStraightMaxDeg          float64
	TurnAngleSlightMaxDeg            float64
	TurnAngleRegularMaxDeg           float64
	CHLazyUpdateAlpha                float64
	CHLazyUpdateBeta                 float64
	CHLazyUpdateGamma                float64
	WitnessSearchHopLimit            int32
	WitnessSearchNodeLimit           int32
	CHCoreFactor                     float64
	MapMatchingSigmaMeters           float64
	MapMatchingBetaMeters            float64
	MapMatchingCandidateRadiusFactor float64
	MapMatchingMaxCandidates         int32
	MapMatchingSuspiciousDeltaMeters float64
	MapMatchingMaxBrokenStates       int32
	AlternativeMaxOverheadRatio      float64
	AlternativeMaxOverlapRatio       float64
}

// PropertiesFromProfile reads prof's name and constants into the on-disk
// record form.
func PropertiesFromProfile(prof profile.Profile) PropertiesRecord {
	c := prof.Constants()

	return PropertiesRecord{
		Name:                             prof.Name(),
		TurnAngleStraightMaxDeg:          c.TurnAngleStraightMaxDeg,
		TurnAngleSlightMaxDeg:            c.TurnAngleSlightMaxDeg,
		TurnAngleRegularMaxDeg:           c.TurnAngleRegularMaxDeg,
		CHLazyUpdateAlpha:                c.CHLazyUpdateAlpha,
		CHLazyUpdateBeta:                 c.CHLazyUpdateBeta,
		CHLazyUpdateGamma:                c.CHLazyUpdateGamma,
		WitnessSearchHopLimit:            int32(c.WitnessSearchHopLimit),
		WitnessSearchNodeLimit:           int32(c.WitnessSearchNodeLimit),
		CHCoreFactor:                     c.CHCoreFactor,
		MapMatchingSigmaMeters:           c.MapMatchingSigmaMeters,
		MapMatchingBetaMeters:            c.MapMatchingBetaMeters,
		MapMatchingCandidateRadiusFactor: c.MapMatchingCandidateRadiusFactor,
		MapMatchingMaxCandidates:         int32(c.MapMatchingMaxCandidates),
		MapMatchingSuspiciousDeltaMeters: c.MapMatchingSuspiciousDeltaMeters,
		MapMatchingMaxBrokenStates:       int32(c.MapMatchingMaxBrokenStates),
		AlternativeMaxOverheadRatio:      c.AlternativeMaxOverheadRatio,
		AlternativeMaxOverlapRatio:       c.AlternativeMaxOverlapRatio,
	}
}

// Constants converts rec back into a profile.Constants value, e.g. for
// constructing a profile.WithConstants override after loading a dataset.
func (rec PropertiesRecord) Constants() profile.Constants {
	return profile.Constants{
		TurnAngleStraightMaxDeg:          rec.TurnAngleStraightMaxDeg,
		TurnAngleSlightMaxDeg:            rec.TurnAngleSlightMaxDeg,
		TurnAngleRegularMaxDeg:           rec.TurnAngleRegularMaxDeg,
		CHLazyUpdateAlpha:                rec.CHLazyUpdateAlpha,
		CHLazyUpdateBeta:                 rec.CHLazyUpdateBeta,
		CHLazyUpdateGamma:                rec.CHLazyUpdateGamma,
		WitnessSearchHopLimit:            int(rec.WitnessSearchHopLimit),
		WitnessSearchNodeLimit:           int(rec.WitnessSearchNodeLimit),
		CHCoreFactor:                     rec.CHCoreFactor,
		MapMatchingSigmaMeters:           rec.MapMatchingSigmaMeters,
		MapMatchingBetaMeters:            rec.MapMatchingBetaMeters,
		MapMatchingCandidateRadiusFactor: rec.MapMatchingCandidateRadiusFactor,
		MapMatchingMaxCandidates:         int(rec.MapMatchingMaxCandidates),
		MapMatchingSuspiciousDeltaMeters: rec.MapMatchingSuspiciousDeltaMeters,
		MapMatchingMaxBrokenStates:       int(rec.MapMatchingMaxBrokenStates),
		AlternativeMaxOverheadRatio:      rec.AlternativeMaxOverheadRatio,
		AlternativeMaxOverlapRatio:       rec.AlternativeMaxOverlapRatio,
	}
}

// WriteProperties writes prof's name and constants to path.
func WriteProperties(path string, prof profile.Profile) error {
	rec := PropertiesFromProfile(prof)

	return writeAtomic(path, func(w io.Writer) error {
		if err := writeString(w, rec.Name); err != nil {
			return err
		}

		return binary.Write(w, binary.LittleEndian, toFixed(rec))
	})
}

// ReadProperties reads back what WriteProperties wrote.
func ReadProperties(path string) (PropertiesRecord, error) {
	var rec PropertiesRecord
	err := readWithFingerprint(path, func(r io.Reader) error {
		name, err := readString(r)
		if err != nil {
			return err
		}

		var fixed propertiesFixed
		if err := binary.Read(r, binary.LittleEndian, &fixed); err != nil {
			return err
		}

		rec = fromFixed(name, fixed)

		return nil
	})

	return rec, err
}

func toFixed(rec PropertiesRecord) propertiesFixed {
	return propertiesFixed{
		TurnAngleStraightMaxDeg:          rec.TurnAngleStraightMaxDeg,
		TurnAngleSlightMaxDeg:            rec.TurnAngleSlightMaxDeg,
		TurnAngleRegularMaxDeg:           rec.TurnAngleRegularMaxDeg,
		CHLazyUpdateAlpha:                rec.CHLazyUpdateAlpha,
		CHLazyUpdateBeta:                 rec.CHLazyUpdateBeta,
		CHLazyUpdateGamma:                rec.CHLazyUpdateGamma,
		WitnessSearchHopLimit:            rec.WitnessSearchHopLimit,
		WitnessSearchNodeLimit:           rec.WitnessSearchNodeLimit,
		CHCoreFactor:                     rec.CHCoreFactor,
		MapMatchingSigmaMeters:           rec.MapMatchingSigmaMeters,
		MapMatchingBetaMeters:            rec.MapMatchingBetaMeters,
		MapMatchingCandidateRadiusFactor: rec.MapMatchingCandidateRadiusFactor,
		MapMatchingMaxCandidates:         rec.MapMatchingMaxCandidates,
		MapMatchingSuspiciousDeltaMeters: rec.MapMatchingSuspiciousDeltaMeters,
		MapMatchingMaxBrokenStates:       rec.MapMatchingMaxBrokenStates,
		AlternativeMaxOverheadRatio:      rec.AlternativeMaxOverheadRatio,
		AlternativeMaxOverlapRatio:       rec.AlternativeMaxOverlapRatio,
	}
}

func fromFixed(name string, fixed propertiesFixed) PropertiesRecord {
	return PropertiesRecord{
		Name:                             name,
		TurnAngleStraightMaxDeg:          fixed.TurnAngleStraightMaxDeg,
		TurnAngleSlightMaxDeg:            fixed.TurnAngleSlightMaxDeg,
		TurnAngleRegularMaxDeg:           fixed.TurnAngleRegularMaxDeg,
		CHLazyUpdateAlpha:                fixed.CHLazyUpdateAlpha,
		CHLazyUpdateBeta:                 fixed.CHLazyUpdateBeta,
		CHLazyUpdateGamma:                fixed.CHLazyUpdateGamma,
		WitnessSearchHopLimit:            fixed.WitnessSearchHopLimit,
		WitnessSearchNodeLimit:           fixed.WitnessSearchNodeLimit,
		CHCoreFactor:                     fixed.CHCoreFactor,
		MapMatchingSigmaMeters:           fixed.MapMatchingSigmaMeters,
		MapMatchingBetaMeters:            fixed.MapMatchingBetaMeters,
		MapMatchingCandidateRadiusFactor: fixed.MapMatchingCandidateRadiusFactor,
		MapMatchingMaxCandidates:         fixed.MapMatchingMaxCandidates,
		MapMatchingSuspiciousDeltaMeters: fixed.MapMatchingSuspiciousDeltaMeters,
		MapMatchingMaxBrokenStates:       fixed.MapMatchingMaxBrokenStates,
		AlternativeMaxOverheadRatio:      fixed.AlternativeMaxOverheadRatio,
		AlternativeMaxOverlapRatio:       fixed.AlternativeMaxOverlapRatio,
	}
}
