package file

import (
	"os"
	"reflect"

	"github.com/go-yaml/yaml"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("no files found")

// UnmarshalPaths unmarshals every existing file of paths into v, later files
// overriding earlier ones. It fails with ErrNotFound when none exists.
func UnmarshalPaths(v interface{}, paths []string) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New("bad interface")
	}

	notfound := true

	for _, p := range paths {
		if !Exist(p) {
			continue
		}
		notfound = false
		if err := UnmarshalFile(v, p); err != nil {
			return err
		}
	}

	if notfound {
		return ErrNotFound
	}

	return nil
}

func UnmarshalFile(v interface{}, file string) error {
	buf, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrapf(err, "read file %s", file)
	}

	if err = yaml.Unmarshal(buf, v); err != nil {
		return errors.Wrapf(err, "unmarshal file %s", file)
	}
	return nil
}

func Exist(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
