package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Provider ProviderConfig `yaml:"provider"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Vocab    VocabConfig    `yaml:"vocab"`
	Quiz     QuizConfig     `yaml:"quiz"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min" env:"SERVER_RATE_LIMIT_PER_MIN" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// ProviderConfig holds settings for the remote translation sources.
type ProviderConfig struct {
	// TranslateBaseURL is the fast coarse-translation endpoint.
	TranslateBaseURL string        `yaml:"translate_base_url" env:"PROVIDER_TRANSLATE_BASE_URL" env-default:"https://translate.googleapis.com/translate_a/single"`
	TranslateTimeout time.Duration `yaml:"translate_timeout"  env:"PROVIDER_TRANSLATE_TIMEOUT"  env-default:"10s"`

	// Gemini settings cover the deep source: analysis, synonyms, and the
	// coarse-translation fallback.
	GeminiBaseURL string        `yaml:"gemini_base_url" env:"PROVIDER_GEMINI_BASE_URL" env-default:"https://generativelanguage.googleapis.com/v1beta"`
	GeminiAPIKey  string        `yaml:"gemini_api_key"  env:"PROVIDER_GEMINI_API_KEY"  env-required:"true"`
	GeminiModel   string        `yaml:"gemini_model"    env:"PROVIDER_GEMINI_MODEL"    env-default:"gemini-2.0-flash"`
	GeminiTimeout time.Duration `yaml:"gemini_timeout"  env:"PROVIDER_GEMINI_TIMEOUT"  env-default:"30s"`
}

// PipelineConfig holds translation pipeline settings.
type PipelineConfig struct {
	// StageTimeout bounds each remote stage so a dead provider cannot park
	// the state machine in LOADING/PARTIAL_SUCCESS forever.
	StageTimeout time.Duration `yaml:"stage_timeout" env:"PIPELINE_STAGE_TIMEOUT" env-default:"30s"`

	// EnrichSegmentCap caps how many segments are sent for synonym
	// enrichment (first N segments).
	EnrichSegmentCap int `yaml:"enrich_segment_cap" env:"PIPELINE_ENRICH_SEGMENT_CAP" env-default:"8"`
}

// VocabConfig holds flashcard service settings.
type VocabConfig struct {
	MaxCardsPerFolder int `yaml:"max_cards_per_folder" env:"VOCAB_MAX_CARDS_PER_FOLDER" env-default:"2000"`
	MaxFolders        int `yaml:"max_folders"          env:"VOCAB_MAX_FOLDERS"          env-default:"100"`
	ImportChunkSize   int `yaml:"import_chunk_size"    env:"VOCAB_IMPORT_CHUNK_SIZE"    env-default:"50"`
	ExportMaxCards    int `yaml:"export_max_cards"     env:"VOCAB_EXPORT_MAX_CARDS"     env-default:"10000"`
}

// QuizConfig holds quiz sampling settings.
type QuizConfig struct {
	DefaultQuestionCount int `yaml:"default_question_count" env:"QUIZ_DEFAULT_QUESTION_COUNT" env-default:"10"`
	ChoicesPerQuestion   int `yaml:"choices_per_question"   env:"QUIZ_CHOICES_PER_QUESTION"   env-default:"4"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
