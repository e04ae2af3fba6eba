package wallet

import "github.com/MKhiriev/go-wallet-keeper/models"

// progressBuffer bounds the stages queued for a slow observer. Stages that
// do not fit are dropped.
const progressBuffer = 8

// ProgressFunc observes the stages of a payment. It is called from its own
// goroutine, in order, zero or more times.
type ProgressFunc func(models.SendProgress)

type progressDispatcher struct {
	ch chan models.SendProgress
}

func newProgressDispatcher(fn ProgressFunc) *progressDispatcher {
	if fn == nil {
		return &progressDispatcher{}
	}

	d := &progressDispatcher{ch: make(chan models.SendProgress, progressBuffer)}
	go func() {
		for p := range d.ch {
			fn(p)
		}
	}()
	return d
}

// emit never blocks.
func (d *progressDispatcher) emit(stage models.SendStage, txid string) {
	if d.ch == nil {
		return
	}
	select {
	case d.ch <- models.SendProgress{Stage: stage, TxID: txid}:
	default:
	}
}

// close ends the observer goroutine once queued stages are delivered.
func (d *progressDispatcher) close() {
	if d.ch != nil {
		close(d.ch)
	}
}
