package math

import (
	"fmt"

	"github.com/krazyTry/orca-go/whirlpool/shared"
)

// GetPositionStatus classifies the position range against the current tick.
// The lower bound is inclusive and the upper bound exclusive.
func GetPositionStatus(tickCurrentIndex, tickLowerIndex, tickUpperIndex int32) shared.PositionStatus {
	switch {
	case tickCurrentIndex < tickLowerIndex:
		return shared.PositionStatusBelowRange
	case tickCurrentIndex < tickUpperIndex:
		return shared.PositionStatusInRange
	default:
		return shared.PositionStatusAboveRange
	}
}

func validateTickRange(tickLowerIndex, tickUpperIndex int32) error {
	if !IsTickIndexInBounds(tickLowerIndex) || !IsTickIndexInBounds(tickUpperIndex) {
		return fmt.Errorf("%w: [%d, %d) outside [%d, %d]", shared.ErrInvalidRange,
			tickLowerIndex, tickUpperIndex, shared.MinTickIndex, shared.MaxTickIndex)
	}
	if tickLowerIndex >= tickUpperIndex {
		return fmt.Errorf("%w: lower %d >= upper %d", shared.ErrInvalidRange, tickLowerIndex, tickUpperIndex)
	}
	return nil
}
