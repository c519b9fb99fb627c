// Package yaml loads and writes linkharvest configuration files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/linkharvest"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// LoadConfig reads a configuration file. Keys missing from the file keep
// their defaults; an empty list replaces the default list.
// A missing file is ENOTFOUND; undecodable or invalid content is EINVALID.
func LoadConfig(path string) (linkharvest.Config, error) {
	cfg := linkharvest.DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, linkharvest.Errorf(linkharvest.ENOTFOUND, "config file %s not found", path)
	} else if err != nil {
		return cfg, err
	}

	if err := ParseConfig(data, &cfg); err != nil {
		return linkharvest.DefaultConfig(), err
	}
	return cfg, nil
}

// ParseConfig decodes data over cfg and validates the result.
func ParseConfig(data []byte, cfg *linkharvest.Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return linkharvest.Errorf(linkharvest.EINVALID, "invalid config: %v", err)
	}
	return Validate(cfg)
}

// Validate checks cfg for empty entries.
func Validate(cfg *linkharvest.Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return linkharvest.Errorf(linkharvest.EINVALID, "invalid config: %v", err)
	}
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Namespace())
	}
	return linkharvest.Errorf(linkharvest.EINVALID, "invalid config: empty entries in %s", strings.Join(fields, ", "))
}

// MarshalConfig renders cfg as YAML.
func MarshalConfig(cfg linkharvest.Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
