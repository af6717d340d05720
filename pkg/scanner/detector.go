package scanner

import (
	set "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"

	"markerscan/util/queue"
)

type DetectorKind string

const (
	// SetDetector rebuilds a membership set from the window on every check.
	SetDetector DetectorKind = "set"
	// CountDetector keeps per-byte counts up to date as the window slides.
	CountDetector DetectorKind = "count"
)

var ErrUnknownDetector = errors.New("unknown detector")

var detectorKinds = set.NewSet[DetectorKind](SetDetector, CountDetector)

// IsDetectorKind reports whether kind names a known detector.
func IsDetectorKind(kind string) bool {
	return detectorKinds.Contains(DetectorKind(kind))
}

// Detector decides whether a full window holds pairwise distinct bytes.
type Detector interface {
	// Observe is called for every pushed entry; evicted is set when a full
	// window dropped its oldest entry to make room.
	Observe(in Entry, out Entry, evicted bool)
	Distinct(window *queue.SlidingWindow[Entry]) bool
}

func newDetector(kind DetectorKind) (Detector, error) {
	switch kind {
	case SetDetector, "":
		return &setDetector{}, nil
	case CountDetector:
		return &countDetector{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownDetector, "%q", kind)
	}
}

type setDetector struct{}

func (d *setDetector) Observe(Entry, Entry, bool) {}

func (d *setDetector) Distinct(window *queue.SlidingWindow[Entry]) bool {
	seen := set.NewThreadUnsafeSet[byte]()
	for _, entry := range window.Items() {
		if !seen.Add(entry.Value) {
			return false
		}
	}
	return true
}

type countDetector struct {
	counts [256]int
	// number of byte values held more than once
	dupes int
}

func (d *countDetector) Observe(in Entry, out Entry, evicted bool) {
	if evicted {
		d.counts[out.Value]--
		if d.counts[out.Value] == 1 {
			d.dupes--
		}
	}
	d.counts[in.Value]++
	if d.counts[in.Value] == 2 {
		d.dupes++
	}
}

func (d *countDetector) Distinct(*queue.SlidingWindow[Entry]) bool {
	return d.dupes == 0
}
