package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	LayoutConfig struct {
		PageWidth        int `yaml:"page_width" validate:"min=40,max=200"`
		PageHeight       int `yaml:"page_height" validate:"min=10"`
		TitleWidth       int `yaml:"title_width" validate:"min=20,ltefield=PageWidth"`
		ParagraphIndent  int `yaml:"paragraph_indent" validate:"gte=0,max=16"`
		BlockquoteIndent int `yaml:"blockquote_indent" validate:"gte=0,max=32"`
		TOCNumberWidth   int `yaml:"toc_number_width" validate:"gte=1,max=16"`
	}

	DocumentConfig struct {
		HeaderTag           string `yaml:"header_tag" validate:"required"`
		Workgroup           string `yaml:"workgroup" validate:"required"`
		TOC                 bool   `yaml:"toc"`
		TOCTitle            string `yaml:"toc_title" validate:"required_if=TOC true"`
		BoilerplateTemplate string `yaml:"boilerplate_template"`
	}

	Config struct {
		Version  int            `yaml:"version" validate:"eq=1"`
		Layout   LayoutConfig   `yaml:"layout"`
		Document DocumentConfig `yaml:"document"`
		Logging  LoggingConfig  `yaml:"logging"`
	}
)

const (
	// NOTE: must match yaml field name above
	BoilerplateTemplateFieldName TemplateFieldName = "boilerplate_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(BoilerplateTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		// table of contents puts section number and page number on the same line
		if 4*cfg.Layout.TOCNumberWidth > cfg.Layout.PageWidth {
			return nil, fmt.Errorf("invalid configuration: toc_number_width %d is too large for page_width %d",
				cfg.Layout.TOCNumberWidth, cfg.Layout.PageWidth)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := Prepare(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Default returns built-in configuration, it cannot fail unless embedded
// template is broken.
func Default() *Config {
	cfg, err := LoadConfiguration("")
	if err != nil {
		panic(fmt.Sprintf("built-in configuration is invalid: %v", err))
	}
	return cfg
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare(options ...func(*gencfg.ProcessingOptions)) ([]byte, error) {
	return gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
