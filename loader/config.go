package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/nathoo/questtweaks/types"
)

// DefaultConfig returns the configuration every file is decoded onto. Keys a
// file leaves out keep these values: everything off and both count
// overrides disabled.
func DefaultConfig() *types.Config {
	return &types.Config{
		ExemptQuests:      []string{},
		HandoverItemCount: -1,
		EliminationCount:  -1,
		GunsmithChallenge: types.GunsmithChallenge{TargetType: "Any"},
		Locale:            "en",
	}
}

// ConfigError reports every field of a configuration that failed validation.
type ConfigError struct {
	Path     string
	Problems []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration %s:\n  %s", e.Path, strings.Join(e.Problems, "\n  "))
}

// LoadConfig reads a configuration file. The format follows the extension:
// .json, .toml or .lua.
func LoadConfig(path string) (*types.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(cfg)
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(cfg)
	case ".lua":
		err = decodeLua(path, cfg)
	default:
		return nil, fmt.Errorf("config %s: unsupported format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}

	if err := ValidateConfig(cfg); err != nil {
		var ce *ConfigError
		if errors.As(err, &ce) {
			ce.Path = path
		}
		return nil, err
	}
	return cfg, nil
}

var configValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their config key.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("questid", validateQuestID)
	return v
}

var questIDPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)

// validateQuestID accepts database object ids: 24 lowercase hex digits.
func validateQuestID(fl validator.FieldLevel) bool {
	return questIDPattern.MatchString(fl.Field().String())
}

// ValidateConfig checks a configuration against its struct tags.
func ValidateConfig(cfg *types.Config) error {
	if cfg == nil {
		return &ConfigError{Problems: []string{"configuration is missing"}}
	}
	err := configValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	ce := &ConfigError{}
	for _, fe := range fieldErrs {
		ce.Problems = append(ce.Problems, describe(fe))
	}
	return ce
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s, got %v", field, fe.Param(), fe.Value())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s, got %v", field, fe.Param(), fe.Value())
	case "questid":
		return fmt.Sprintf("%s: %q is not a quest id", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
