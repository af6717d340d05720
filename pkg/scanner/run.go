package scanner

import (
	"github.com/pkg/errors"

	"markerscan/pkg/klog"
)

// Run scans src once per size, in order, each against a fresh window.
// Parts are numbered from 1 in the order of sizes.
func Run(src Source, sizes []int, kind DetectorKind) ([]*Result, error) {
	if len(sizes) == 0 {
		return nil, errors.New("no window sizes given")
	}
	results := make([]*Result, 0, len(sizes))
	for i, size := range sizes {
		res, err := scanOnce(src, Config{Size: size, Detector: kind})
		if err != nil {
			return nil, errors.Wrapf(err, "part %d", i+1)
		}
		res.Part = i + 1
		if res.Found {
			klog.Infof("part %d: marker of size %d at %d in %s\n", res.Part, size, res.Position, src.Name())
		} else {
			klog.Warnf("part %d: no marker of size %d in %s\n", res.Part, size, src.Name())
		}
		results = append(results, res)
	}
	return results, nil
}

func scanOnce(src Source, cfg Config) (res *Result, err error) {
	s, err := NewScanner(cfg)
	if err != nil {
		return nil, err
	}
	rc, err := src.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close source")
		}
	}()
	return s.Scan(rc)
}
