package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Words  WordsConfig  `yaml:"words"`
	Game   GameConfig   `yaml:"game"`
	Auth   AuthConfig   `yaml:"auth"`
	Store  StoreConfig  `yaml:"store"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           int           `yaml:"port"            env:"PORT"            env-default:"5175"`
	ClientOrigin   string        `yaml:"client_origin"   env:"CLIENT_ORIGIN"   env-default:"http://localhost:5173"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT" env-default:"10s"`
	Production     bool          `yaml:"production"      env:"PRODUCTION"      env-default:"false"`
}

// WordsConfig says where the word lists come from. Empty paths fall back to
// the embedded lists.
type WordsConfig struct {
	AnswersFile string `yaml:"answers_file" env:"WORDS_ANSWERS_FILE"`
	AllowedFile string `yaml:"allowed_file" env:"WORDS_ALLOWED_FILE"`
	Length      int    `yaml:"length"       env:"WORD_LENGTH"        env-default:"5"`
}

// GameConfig holds per-session rules.
type GameConfig struct {
	MaxAttempts int    `yaml:"max_attempts" env:"MAX_ATTEMPTS" env-default:"6"`
	DailySalt   string `yaml:"daily_salt"   env:"DAILY_SALT"   env-default:"local_dev_salt"`
}

// AuthConfig holds session token settings.
type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret"  env:"JWT_SECRET"  env-default:"dev_secret_change_me"`
	TokenTTL   time.Duration `yaml:"token_ttl"   env:"TOKEN_TTL"   env-default:"336h"`
	CookieName string        `yaml:"cookie_name" env:"COOKIE_NAME" env-default:"wordguess_session"`
}

// StoreConfig selects the session store.
type StoreConfig struct {
	Driver string `yaml:"driver" env:"STORE_DRIVER"  env-default:"memory"`
	Path   string `yaml:"path"   env:"DATABASE_PATH" env-default:"./data/app.db"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Store drivers.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)
