package workspacefinder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/advent/internal/domain"
)

// EnvPrefix prefixes every environment override (ADVENT_INPUTS_DIR, ...).
const EnvPrefix = "ADVENT"

// LoadConfig loads advent.yaml from the workspace root, applies defaults for
// anything missing, then ADVENT_* environment overrides, and validates the result.
// A missing advent.yaml is not an error: the defaults describe the usual layout.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	default:
		var y yamlConfig
		if err := yaml.Unmarshal(b, &y); err != nil {
			return cfg, &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
		y.applyTo(&cfg)
	}

	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.env",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}
	env.applyTo(&cfg)

	if err := validateConfig(cfg); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.validate",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return cfg, nil
}

type yamlConfig struct {
	Advent struct {
		Year int `yaml:"year"`

		Paths struct {
			InputsDir   string `yaml:"inputs_dir"`
			InputFile   string `yaml:"input_file"`
			AnswersFile string `yaml:"answers_file"`
		} `yaml:"paths"`

		Defaults struct {
			Format   string `yaml:"format"`
			Parallel *bool  `yaml:"parallel"`
		} `yaml:"defaults"`
	} `yaml:"advent"`
}

func (y yamlConfig) applyTo(cfg *domain.Config) {
	a := y.Advent
	if a.Year != 0 {
		cfg.Year = a.Year
	}
	if a.Paths.InputsDir != "" {
		cfg.Paths.InputsDir = a.Paths.InputsDir
	}
	if a.Paths.InputFile != "" {
		cfg.Paths.InputFile = a.Paths.InputFile
	}
	if a.Paths.AnswersFile != "" {
		cfg.Paths.AnswersFile = a.Paths.AnswersFile
	}
	if a.Defaults.Format != "" {
		cfg.Defaults.Format = a.Defaults.Format
	}
	if a.Defaults.Parallel != nil {
		cfg.Defaults.Parallel = *a.Defaults.Parallel
	}
}

type envOverrides struct {
	InputsDir   string `envconfig:"INPUTS_DIR"`
	InputFile   string `envconfig:"INPUT_FILE"`
	AnswersFile string `envconfig:"ANSWERS_FILE"`
	Format      string `envconfig:"FORMAT"`
	Parallel    *bool  `envconfig:"PARALLEL"`
}

func (e envOverrides) applyTo(cfg *domain.Config) {
	if e.InputsDir != "" {
		cfg.Paths.InputsDir = e.InputsDir
	}
	if e.InputFile != "" {
		cfg.Paths.InputFile = e.InputFile
	}
	if e.AnswersFile != "" {
		cfg.Paths.AnswersFile = e.AnswersFile
	}
	if e.Format != "" {
		cfg.Defaults.Format = e.Format
	}
	if e.Parallel != nil {
		cfg.Defaults.Parallel = *e.Parallel
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateConfig(cfg domain.Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("field %s: must satisfy %s=%s (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
		} else {
			msgs = append(msgs, fmt.Sprintf("field %s: %s", fe.Namespace(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
