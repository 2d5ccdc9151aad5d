package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "12MB"
	defaultJWTAlgorithm       = "HS256"
	defaultJWTTTL             = 30 * time.Minute
	defaultImageMaxBytes      = 10 << 20
	defaultImageKeyPrefix     = "eventual/eventos"
	defaultNominatimURL       = "https://nominatim.openstreetmap.org"
	defaultGeocodeUserAgent   = "mimapa/1.0"
	defaultGeocodeTimeout     = 10 * time.Second
	defaultGeocodeCacheTTL    = 24 * time.Hour
	defaultMetricsPath        = "/metrics"
	defaultWorkerPort         = 8081
	defaultWorkerDedupeTTL    = 24 * time.Hour

	// EnvLocal names the development environment.
	EnvLocal = "local"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		AllowedOrigins []string         `json:"allowedOrigins" yaml:"allowedOrigins"`
		RateLimit      *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	JWT JWTConfig `json:"jwt" yaml:"jwt"`

	GoogleOAuth GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	Frontend struct {
		URL string `json:"url" yaml:"url"`
	} `json:"frontend" yaml:"frontend"`

	// Reviews configuration for listing and search bounds
	Reviews *ReviewsConfig `json:"reviews" yaml:"reviews"`

	// Images configuration for uploaded review photos
	Images *ImagesConfig `json:"images" yaml:"images"`

	// Geocoding configuration for the Nominatim client
	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// Redis configuration; optional, enables the geocode cache
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// QRCode configuration for review share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Metrics configuration for the Prometheus endpoint
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	// Worker configuration for the review event consumer
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

// JWTConfig defines how bearer credentials are signed
type JWTConfig struct {
	Secret    string        `json:"secret" yaml:"secret"`
	Algorithm string        `json:"algorithm" yaml:"algorithm"`
	TTL       time.Duration `json:"ttl" yaml:"ttl"`
}

// GoogleOAuthConfig defines the Google client used for both login flows
type GoogleOAuthConfig struct {
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string `json:"redirectUri" yaml:"redirectUri"`
	Scopes       string `json:"scopes" yaml:"scopes"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`

	// SQL statements slower than this are logged as warnings
	SlowQuery time.Duration `json:"slowQuery" yaml:"slowQuery"`
}

// RateLimitConfig defines per-client request throttling
type RateLimitConfig struct {
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int           `json:"burst" yaml:"burst"`
	ExpiresIn         time.Duration `json:"expiresIn" yaml:"expiresIn"`
}

// ReviewsConfig defines listing and search bounds
type ReviewsConfig struct {
	DefaultLimit          int     `json:"defaultLimit" yaml:"defaultLimit"`
	MaxLimit              int     `json:"maxLimit" yaml:"maxLimit"`
	DefaultRadiusKm       float64 `json:"defaultRadiusKm" yaml:"defaultRadiusKm"`
	MinRadiusKm           float64 `json:"minRadiusKm" yaml:"minRadiusKm"`
	MaxRadiusKm           float64 `json:"maxRadiusKm" yaml:"maxRadiusKm"`
	ExposeTokenInListings bool    `json:"exposeTokenInListings" yaml:"exposeTokenInListings"`
}

// ImagesConfig defines where uploaded images are written
type ImagesConfig struct {
	// Bucket URL understood by gocloud.dev/blob (mem://, file:///path, gs://bucket, s3://bucket)
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Public URL prefix prepended to object keys
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
	MaxBytes  int64  `json:"maxBytes" yaml:"maxBytes"`
}

// GeocodingConfig defines the Nominatim client
type GeocodingConfig struct {
	BaseURL           string        `json:"baseUrl" yaml:"baseUrl"`
	UserAgent         string        `json:"userAgent" yaml:"userAgent"`
	Timeout           time.Duration `json:"timeout" yaml:"timeout"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	CacheTTL          time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
}

// RedisConfig defines the redis connection
type RedisConfig struct {
	Address  string `json:"address" yaml:"address"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// MetricsConfig defines the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// WorkerConfig defines the review event push consumer
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// How long a delivered messageId is remembered for deduplication
	DedupeTTL time.Duration `json:"dedupeTtl" yaml:"dedupeTtl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills every optional section so consumers never nil-check.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.JWT.Algorithm == "" {
		cfg.JWT.Algorithm = defaultJWTAlgorithm
	}
	if cfg.JWT.TTL <= 0 {
		cfg.JWT.TTL = defaultJWTTTL
	}

	if cfg.Reviews == nil {
		cfg.Reviews = &ReviewsConfig{}
	}
	if cfg.Reviews.MaxLimit <= 0 {
		cfg.Reviews.MaxLimit = 100
	}
	if cfg.Reviews.DefaultLimit <= 0 || cfg.Reviews.DefaultLimit > cfg.Reviews.MaxLimit {
		cfg.Reviews.DefaultLimit = cfg.Reviews.MaxLimit
	}
	if cfg.Reviews.MinRadiusKm <= 0 {
		cfg.Reviews.MinRadiusKm = 0.1
	}
	if cfg.Reviews.MaxRadiusKm <= 0 {
		cfg.Reviews.MaxRadiusKm = 100
	}
	if cfg.Reviews.DefaultRadiusKm <= 0 {
		cfg.Reviews.DefaultRadiusKm = 5
	}

	if cfg.Images == nil {
		cfg.Images = &ImagesConfig{}
	}
	if cfg.Images.BucketURL == "" {
		cfg.Images.BucketURL = "mem://"
	}
	if cfg.Images.KeyPrefix == "" {
		cfg.Images.KeyPrefix = defaultImageKeyPrefix
	}
	if cfg.Images.MaxBytes <= 0 {
		cfg.Images.MaxBytes = defaultImageMaxBytes
	}

	if cfg.Geocoding == nil {
		cfg.Geocoding = &GeocodingConfig{}
	}
	if cfg.Geocoding.BaseURL == "" {
		cfg.Geocoding.BaseURL = defaultNominatimURL
	}
	if cfg.Geocoding.UserAgent == "" {
		cfg.Geocoding.UserAgent = defaultGeocodeUserAgent
	}
	if cfg.Geocoding.Timeout <= 0 {
		cfg.Geocoding.Timeout = defaultGeocodeTimeout
	}
	if cfg.Geocoding.RequestsPerSecond <= 0 {
		cfg.Geocoding.RequestsPerSecond = 1
	}
	if cfg.Geocoding.CacheTTL <= 0 {
		cfg.Geocoding.CacheTTL = defaultGeocodeCacheTTL
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{Enabled: true}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port <= 0 {
		cfg.Worker.Port = defaultWorkerPort
	}
	if cfg.Worker.DedupeTTL <= 0 {
		cfg.Worker.DedupeTTL = defaultWorkerDedupeTTL
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
