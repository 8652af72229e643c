// Package config parses bearstats options from command-line flags and an
// optional YAML file.
package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidArgument is returned for missing, malformed, or out of range options.
var ErrInvalidArgument = errors.New("invalid argument")

// Options controls a single generator run.
type Options struct {
	Rows    int `validate:"gte=0"`
	Outfile string
	Seed    int64
	Config  string
	Verbose bool
}

// File is the YAML form of Options. Unset keys leave flag values alone.
type File struct {
	Rows    *int    `yaml:"rows"`
	Outfile *string `yaml:"outfile"`
	Seed    *int64  `yaml:"seed"`
}

var validate = validator.New()

// tag descriptions for validation messages
var tagText = map[string]string{
	"gte": "at least",
}

// Parse reads options from args. name labels the flag set in usage output,
// which goes to stderr. Explicit flags take precedence over config file values.
func Parse(name string, args []string, stderr io.Writer) (Options, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	rows := fs.Int("rows", 0, "number of records to generate (required)")
	outfile := fs.String("outfile", "", "file to write; standard output when empty")
	seed := fs.Int64("seed", 0, "random seed; 0 picks one")
	cfgPath := fs.String("config", "", "YAML file with rows, outfile and seed")
	verbose := fs.Bool("verbose", false, "log debug output to stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Options{}, err
		}
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if fs.NArg() > 0 {
		return Options{}, fmt.Errorf("%w: unexpected argument %q", ErrInvalidArgument, fs.Arg(0))
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	opts := Options{Config: *cfgPath, Verbose: *verbose}
	haveRows := set["rows"]

	if *cfgPath != "" {
		f, err := Load(*cfgPath)
		if err != nil {
			return Options{}, err
		}
		if f.Rows != nil {
			opts.Rows = *f.Rows
			haveRows = true
		}
		if f.Outfile != nil {
			opts.Outfile = *f.Outfile
		}
		if f.Seed != nil {
			opts.Seed = *f.Seed
		}
	}

	if set["rows"] {
		opts.Rows = *rows
	}
	if set["outfile"] {
		opts.Outfile = *outfile
	}
	if set["seed"] {
		opts.Seed = *seed
	}

	if !haveRows {
		return Options{}, fmt.Errorf("%w: --rows is required", ErrInvalidArgument)
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Load reads a YAML config file. Unknown keys are rejected.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("%w: read config: %w", ErrInvalidArgument, err)
	}

	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("%w: parse config %s: %w", ErrInvalidArgument, path, err)
	}
	return f, nil
}

// Validate checks option ranges.
func (o Options) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	fe := verrs[0]
	desc, ok := tagText[fe.Tag()]
	if !ok {
		desc = fe.Tag()
	}
	return fmt.Errorf("%w: %s must be %s %s, got %v",
		ErrInvalidArgument, strings.ToLower(fe.Field()), desc, fe.Param(), fe.Value())
}
