package app

import (
	"fmt"
	"io"

	"github.com/go-yaml/yaml"
	"github.com/pkg/errors"
	"github.com/pquerna/ffjson/ffjson"

	"markerscan/pkg/scanner"
)

const none = "<none>"

func ResultHeader() string {
	return "PART\tSIZE\tMARKER\tWINDOW\tUID\n"
}

type beautifiedResult struct {
	*scanner.Result
}

func (br beautifiedResult) marker() string {
	if !br.Found {
		return none
	}
	return fmt.Sprintf("%d", br.Position)
}

func (br beautifiedResult) ToString() string {
	window := br.Window
	if window == "" {
		window = none
	}
	return fmt.Sprintf("%d\t%d\t%s\t%s\t%s\n", br.Part, br.Size, br.marker(), window, br.UID)
}

func PrintResults(w io.Writer, format string, results []*scanner.Result) error {
	var err error
	switch format {
	case "text", "":
		for _, res := range results {
			if _, err = fmt.Fprintf(w, "part %d: %s\n", res.Part, beautifiedResult{res}.marker()); err != nil {
				break
			}
		}
	case "table":
		_, err = io.WriteString(w, ResultHeader())
		for _, res := range results {
			if err != nil {
				break
			}
			_, err = io.WriteString(w, beautifiedResult{res}.ToString())
		}
	case "json":
		var buf []byte
		if buf, err = ffjson.Marshal(results); err == nil {
			_, err = fmt.Fprintf(w, "%s\n", buf)
		}
	case "yaml":
		var buf []byte
		if buf, err = yaml.Marshal(results); err == nil {
			_, err = w.Write(buf)
		}
	default:
		return errors.Errorf("unknown output format %q", format)
	}
	return errors.Wrap(err, "print results")
}
