package usecase

import "time"

// SetClock pins the time and ID source used for new tasks.
func (uc *implUseCase) SetClock(clock func() time.Time, newID func() string) {
	uc.clock = clock
	uc.newID = newID
}
