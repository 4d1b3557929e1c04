package domain

// Config represents the workspace configuration loaded from advent.yaml.
type Config struct {
	Year     int `validate:"gte=2015,lte=2100"`
	Paths    PathsConfig
	Defaults DefaultsConfig
}

type PathsConfig struct {
	InputsDir   string `validate:"required"`
	InputFile   string `validate:"required"`
	AnswersFile string `validate:"required"`
}

type DefaultsConfig struct {
	Format   string `validate:"oneof=pretty json"`
	Parallel bool
}

// DefaultConfig provides sane defaults if advent.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Year: 2022,
		Paths: PathsConfig{
			InputsDir:   "days",
			InputFile:   "resources/input",
			AnswersFile: "answers.yaml",
		},
		Defaults: DefaultsConfig{
			Format:   "pretty",
			Parallel: true,
		},
	}
}
