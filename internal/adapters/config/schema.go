package config

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Configfile represents the structure of cdb.yaml.
// All fields are validated using go-playground/validator tags.
type Configfile struct {
	Version        string   `yaml:"version" validate:"omitempty,oneof=1"`
	Output         string   `yaml:"output"`
	Deduplicate    string   `yaml:"deduplicate" validate:"omitempty,oneof=none exact"`
	PreloadLibrary string   `yaml:"preload_library"`
	Compilers      []string `yaml:"compilers" validate:"dive,required"`
	Jobs           int      `yaml:"jobs" validate:"gte=0,lte=1024"`
}

// Validate checks the decoded file against its tags.
// Field names in the reported errors use the yaml keys.
func (c *Configfile) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return validate.Struct(c)
}
