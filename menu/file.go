package menu

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/simonhull/firebird-suite/nprompt/output"
	"gopkg.in/yaml.v3"
)

// File is the YAML form of a menu.
//
//	header: Deploy
//	clear_on_show: false
//	options:
//	  - key: s
//	    label: Staging
//	    message: Deploying to staging
//	  - key: quit
type File struct {
	Header      string       `yaml:"header"`
	ClearOnShow *bool        `yaml:"clear_on_show"`
	MaxResults  int          `yaml:"max_results"`
	Options     []FileOption `yaml:"options"`
}

// FileOption is one entry of File.Options. Message, when set, is printed as
// an info line when the option is picked.
type FileOption struct {
	Key     string `yaml:"key"`
	Label   string `yaml:"label"`
	Message string `yaml:"message"`
}

// Load reads a menu file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading menu file %s", path)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "menu file %s", path)
	}
	return f, nil
}

// Parse decodes and checks a YAML menu definition.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parsing menu")
	}
	if len(f.Options) == 0 {
		return nil, errors.New("menu has no options")
	}
	for i, o := range f.Options {
		if o.Key == "" {
			return nil, errors.Newf("option %d has no key", i+1)
		}
	}
	if f.MaxResults < 0 {
		return nil, errors.Newf("max_results must not be negative, got %d", f.MaxResults)
	}
	return &f, nil
}

// Menu builds the menu described by f. Option messages are printed through
// p; with a nil p they are ignored.
func (f *File) Menu(p *output.Printer) *Menu {
	m := New(f.Header)
	if f.ClearOnShow != nil {
		m.ClearOnShow = *f.ClearOnShow
	}
	if f.MaxResults > 0 {
		m.MaxResults = f.MaxResults
	}
	for _, o := range f.Options {
		var action Action
		if o.Message != "" && p != nil {
			msg := o.Message
			action = func() { p.Info(msg) }
		}
		m.Add(o.Key, o.Label, action)
	}
	return m
}
