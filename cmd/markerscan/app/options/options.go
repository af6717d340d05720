package options

import (
	"io"
	"path/filepath"

	set "github.com/deckarep/golang-set/v2"
	"github.com/ilyakaznacheev/cleanenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"markerscan/cmd/markerscan/app/config"
	"markerscan/pkg/klog"
	"markerscan/pkg/scanner"
	"markerscan/util/file"
)

const (
	DefaultConfigName = ".markerscan.yaml"
	StdinInput        = "-"
)

// OutputFormats lists the accepted --output values.
var OutputFormats = set.NewSet[string]("text", "table", "json", "yaml")

type MarkerScanOptions struct {
	Input      string `yaml:"input" env:"MARKERSCAN_INPUT"`
	Sizes      []int  `yaml:"sizes" env:"MARKERSCAN_SIZES" env-separator:","`
	Detector   string `yaml:"detector" env:"MARKERSCAN_DETECTOR"`
	Output     string `yaml:"output" env:"MARKERSCAN_OUTPUT"`
	Debug      bool   `yaml:"debug" env:"MARKERSCAN_DEBUG"`
	LogFile    string `yaml:"logFile" env:"MARKERSCAN_LOG_FILE"`
	ConfigFile string `yaml:"-"`
}

func NewMarkerScanOptions() *MarkerScanOptions {
	options := MarkerScanOptions{}
	options.SetDefault()
	return &options
}

func (o *MarkerScanOptions) SetDefault() {
	o.Input = "input.txt"
	o.Sizes = []int{4, 14}
	o.Detector = string(scanner.SetDetector)
	o.Output = "text"
}

func (o *MarkerScanOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Input, "input", "i", o.Input,
		"File to scan, - reads standard input")
	fs.IntSliceVarP(&o.Sizes, "size", "s", o.Sizes,
		"Window sizes to search for, each evaluated independently from the start of the input")
	fs.StringVar(&o.Detector, "detector", o.Detector,
		"Duplicate detection strategy: set rebuilds a set per check, count tracks byte counts incrementally")
	fs.StringVarP(&o.Output, "output", "o", o.Output,
		"Output format: text, table, json or yaml")
	fs.StringVar(&o.ConfigFile, "config", o.ConfigFile,
		"Config file (default is $HOME/"+DefaultConfigName+")")
	fs.BoolVar(&o.Debug, "debug", o.Debug, "Log debug messages")
	fs.StringVar(&o.LogFile, "log-file", o.LogFile, "Write logs to this file instead of stderr")
}

func (o *MarkerScanOptions) Flags() *pflag.FlagSet {
	flagSet := pflag.FlagSet{}
	o.AddFlags(&flagSet)
	return &flagSet
}

// Resolve layers defaults, the config file, MARKERSCAN_* environment
// variables and the flags explicitly set on fs, later layers winning.
// o holds the parsed flag values.
func (o *MarkerScanOptions) Resolve(fs *pflag.FlagSet) (*MarkerScanOptions, error) {
	resolved := NewMarkerScanOptions()
	resolved.ConfigFile = o.ConfigFile

	if err := resolved.loadFile(); err != nil {
		return nil, err
	}
	if err := cleanenv.ReadEnv(resolved); err != nil {
		return nil, errors.Wrap(err, "read environment")
	}

	if fs.Changed("input") {
		resolved.Input = o.Input
	}
	if fs.Changed("size") {
		resolved.Sizes = o.Sizes
	}
	if fs.Changed("detector") {
		resolved.Detector = o.Detector
	}
	if fs.Changed("output") {
		resolved.Output = o.Output
	}
	if fs.Changed("debug") {
		resolved.Debug = o.Debug
	}
	if fs.Changed("log-file") {
		resolved.LogFile = o.LogFile
	}
	return resolved, nil
}

func (o *MarkerScanOptions) loadFile() error {
	if o.ConfigFile != "" {
		return file.UnmarshalFile(o, o.ConfigFile)
	}
	home, err := homedir.Dir()
	if err != nil {
		klog.Warnf("no home directory, skipping default config: %v\n", err)
		return nil
	}
	err = file.UnmarshalPaths(o, []string{filepath.Join(home, DefaultConfigName)})
	if errors.Is(err, file.ErrNotFound) {
		return nil
	}
	return err
}

func (o *MarkerScanOptions) Validate() error {
	if o.Input == "" {
		return errors.New("no input given")
	}
	if len(o.Sizes) == 0 {
		return errors.New("at least one window size is required")
	}
	for _, size := range o.Sizes {
		if size < 1 {
			return errors.Errorf("window size must be at least 1, got %d", size)
		}
	}
	if !scanner.IsDetectorKind(o.Detector) {
		return errors.Wrapf(scanner.ErrUnknownDetector, "%q", o.Detector)
	}
	if !OutputFormats.Contains(o.Output) {
		return errors.Errorf("unknown output format %q", o.Output)
	}
	return nil
}

// Config validates the options and opens the input. stdin is drained
// when the input is StdinInput.
func (o *MarkerScanOptions) Config(stdin io.Reader) (*config.Config, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	var src scanner.Source = scanner.FileSource{Path: o.Input}
	if o.Input == StdinInput {
		bs, err := scanner.ReadAllSource("stdin", stdin)
		if err != nil {
			return nil, err
		}
		src = bs
	}
	return &config.Config{
		Source:   src,
		Sizes:    o.Sizes,
		Detector: scanner.DetectorKind(o.Detector),
		Output:   o.Output,
		Log: klog.Config{
			Path:  o.LogFile,
			Debug: o.Debug,
		},
	}, nil
}
