package virtuallist

// MaxStableCount is where Verified.StableCount saturates.
const MaxStableCount = 10

// MeasurementState is either Measured or Verified.
type MeasurementState interface {
	// Extent is the trusted extent along the scroll axis.
	Extent() int
	measurementState()
}

// Measured has been observed once. Validated is set once a second observation agreed.
type Measured struct {
	Value     int
	Validated bool
}

// Verified has agreed with itself across at least two cycles.
type Verified struct {
	Value       int
	StableCount int
}

func (m Measured) Extent() int { return m.Value }
func (v Verified) Extent() int { return v.Value }

func (Measured) measurementState() {}
func (Verified) measurementState() {}

// Advance folds a new observation into prev. A nil prev starts a fresh Measured state.
// Observations within tolerance keep the stored value so small noise does not move the
// layout; anything else demotes to an unvalidated measurement of the new value.
func Advance(prev MeasurementState, observed, tolerance int) MeasurementState {
	if prev == nil || abs(prev.Extent()-observed) > tolerance {
		return Measured{Value: observed}
	}
	switch s := prev.(type) {
	case Measured:
		if !s.Validated {
			return Measured{Value: s.Value, Validated: true}
		}
		return Verified{Value: s.Value, StableCount: 1}
	case Verified:
		return Verified{Value: s.Value, StableCount: min(s.StableCount+1, MaxStableCount)}
	}
	return Measured{Value: observed}
}
