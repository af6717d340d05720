package scanner

// Result is the outcome of scanning one window size. Position is the 1-based
// position of the byte that completed the marker and is only set when Found.
type Result struct {
	UID      string `json:"uid" yaml:"uid"`
	Part     int    `json:"part" yaml:"part"`
	Size     int    `json:"size" yaml:"size"`
	Position int    `json:"position,omitempty" yaml:"position,omitempty"`
	Found    bool   `json:"found" yaml:"found"`
	Window   string `json:"window,omitempty" yaml:"window,omitempty"`
}
