package reminder

import "time"

func (n *Notifier) SetClock(clock func() time.Time) {
	n.clock = clock
}
