package fleet

// Observer receives hub activity for instrumentation.
type Observer interface {
	PingAccepted()
	PingDropped(reason string)
	FrameDropped()
	SubscribersChanged(n int)
}

// Drop reasons reported to the Observer.
const (
	DropInvalid     = "invalid"
	DropFuture      = "future"
	DropUnavailable = "unavailable"
	DropOutOfOrder  = "out_of_order"
)

type nopObserver struct{}

func (nopObserver) PingAccepted()          {}
func (nopObserver) PingDropped(string)     {}
func (nopObserver) FrameDropped()          {}
func (nopObserver) SubscribersChanged(int) {}
