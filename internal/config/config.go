package config

// Config is the root configuration of a patch run.
type Config struct {
	Patch PatchConfig `yaml:"patch"`
	Log   LogConfig   `yaml:"log"`
}

// PatchConfig locates the word-pair input and the patch output.
// InputFile and OutputFile are relative to WorkDir.
type PatchConfig struct {
	WorkDir    string `yaml:"work_dir"    env:"BIDIX_WORKDIR" env-default:"."`
	InputFile  string `yaml:"input_file"  env:"BIDIX_INPUT"`
	OutputFile string `yaml:"output_file" env:"BIDIX_OUTPUT"  env-default:"bidix.patches"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
