package ml

import (
	"fmt"
	"time"

	"github.com/drakos74/go-ex-machina/xmath"
)

const reportLayout = "02-Jan-2006 15:04:05"

// Report renders the training summary at the given time,
// a header line followed by the non-bias weights.
func (h *Hebbian) Report(t time.Time) string {
	weights := xmath.Vector{}
	if h.Trained() {
		weights = h.w[1:]
	}
	return fmt.Sprintf("[ %s ] HEBB: Last Weights\n%s", t.Format(reportLayout), weights.String())
}

func (h *Hebbian) String() string {
	return fmt.Sprintf("hebbian[%s]{eta:%v n_iter:%d w:%v errors:%v}", h.id, h.cfg.Eta, h.cfg.NIter, h.w, h.history)
}
