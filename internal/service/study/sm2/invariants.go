package sm2

import "fmt"

// CheckInvariants validates the hard guarantees of a Review result.
// Used by fuzz tests to reject any state the algorithm must never produce.
func CheckInvariants(quality int, prior State, result Result) error {
	if result.EaseFactor < 1.3 {
		return fmt.Errorf("ease factor %v below floor 1.3", result.EaseFactor)
	}
	if result.Interval < 0 {
		return fmt.Errorf("negative interval %d", result.Interval)
	}
	if result.Repetitions < 0 {
		return fmt.Errorf("negative repetitions %d", result.Repetitions)
	}

	if quality < PassingQuality {
		if result.Repetitions != 0 {
			return fmt.Errorf("failed review kept repetitions = %d", result.Repetitions)
		}
		if result.Interval != 1 {
			return fmt.Errorf("failed review set interval = %d, want 1", result.Interval)
		}
		return nil
	}

	if result.Repetitions != prior.Repetitions+1 {
		return fmt.Errorf("successful review: repetitions %d -> %d", prior.Repetitions, result.Repetitions)
	}
	switch result.Repetitions {
	case 1:
		if result.Interval != 1 {
			return fmt.Errorf("first repetition interval = %d, want 1", result.Interval)
		}
	case 2:
		if result.Interval != 6 {
			return fmt.Errorf("second repetition interval = %d, want 6", result.Interval)
		}
	}
	return nil
}
