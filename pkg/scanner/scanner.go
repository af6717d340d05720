package scanner

import (
	"bufio"
	"context"
	"io"

	"github.com/looplab/fsm"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"

	"markerscan/pkg/klog"
	"markerscan/util/queue"
)

// Scan lifecycle states.
const (
	StateFilling   = "filling"
	StateSliding   = "sliding"
	StateFound     = "found"
	StateExhausted = "exhausted"
)

const (
	eventFull     = "full"
	eventDistinct = "distinct"
	eventEOF      = "eof"
)

// Entry is a byte together with its 0-based position in the stream.
type Entry struct {
	Position int
	Value    byte
}

type Config struct {
	Size     int
	Detector DetectorKind
}

// Scanner looks for the first window of Size consecutive bytes that holds
// no duplicates. A Scanner is single use and not safe for concurrent use.
type Scanner struct {
	config   Config
	window   *queue.SlidingWindow[Entry]
	detector Detector
	fsm      *fsm.FSM
	uid      string
}

func NewScanner(cfg Config) (*Scanner, error) {
	window, err := queue.NewSlidingWindow[Entry](cfg.Size)
	if err != nil {
		return nil, errors.Wrap(err, "new scanner")
	}
	detector, err := newDetector(cfg.Detector)
	if err != nil {
		return nil, errors.Wrap(err, "new scanner")
	}
	s := &Scanner{
		config:   cfg,
		window:   window,
		detector: detector,
		uid:      uuid.NewV4().String(),
	}
	s.fsm = fsm.NewFSM(
		StateFilling,
		fsm.Events{
			{Name: eventFull, Src: []string{StateFilling}, Dst: StateSliding},
			{Name: eventDistinct, Src: []string{StateSliding}, Dst: StateFound},
			{Name: eventEOF, Src: []string{StateFilling, StateSliding}, Dst: StateExhausted},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				klog.Debugf("scan %s size %d: %s -> %s\n", s.uid, s.config.Size, e.Src, e.Dst)
			},
		},
	)
	return s, nil
}

// State returns the current lifecycle state.
func (s *Scanner) State() string {
	return s.fsm.Current()
}

// Window exposes the scanner's window, oldest entry first.
func (s *Scanner) Window() *queue.SlidingWindow[Entry] {
	return s.window
}

// Scan consumes r until the first all-distinct full window is found or r is
// exhausted. Read errors are returned, a missing marker is not an error.
func (s *Scanner) Scan(r io.Reader) (*Result, error) {
	if s.State() != StateFilling || s.window.Len() != 0 {
		return nil, errors.Errorf("scanner %s already used", s.uid)
	}
	reader := bufio.NewReader(r)
	for position := 0; ; position++ {
		value, err := reader.ReadByte()
		if err == io.EOF {
			s.event(eventEOF)
			klog.Debugf("scan %s size %d: no marker in %d bytes\n", s.uid, s.config.Size, position)
			return s.result(), nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read byte %d", position)
		}

		if s.push(Entry{Position: position, Value: value}) {
			s.event(eventDistinct)
			return s.result(), nil
		}
	}
}

// push adds entry and reports whether the window is now full and distinct.
func (s *Scanner) push(entry Entry) bool {
	oldest, evicted := Entry{}, s.window.IsFull()
	if evicted {
		oldest, _ = s.window.Get(0)
	}
	s.window.Push(entry)
	s.detector.Observe(entry, oldest, evicted)

	if !s.window.IsFull() {
		return false
	}
	if s.State() == StateFilling {
		s.event(eventFull)
	}
	return s.detector.Distinct(s.window)
}

func (s *Scanner) event(name string) {
	if err := s.fsm.Event(context.Background(), name); err != nil {
		klog.Errorf("scan %s: event %s from %s: %v\n", s.uid, name, s.State(), err)
	}
}

func (s *Scanner) result() *Result {
	res := &Result{
		UID:  s.uid,
		Size: s.config.Size,
	}
	if s.State() != StateFound {
		return res
	}
	newest, _ := s.window.Get(s.window.Len() - 1)
	window := make([]byte, 0, s.window.Len())
	for entry := range s.window.All() {
		window = append(window, entry.Value)
	}
	res.Found = true
	res.Position = newest.Position + 1
	res.Window = string(window)
	return res
}
