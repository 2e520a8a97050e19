package config

import "github.com/aws/aws-sdk-go-v2/service/s3"

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// StorageConfig : параметры хранилища файлов.
// Backend выбирает реализацию: "disk" (директория на диске) или "s3".
type StorageConfig struct {
	Backend   string `yaml:"backend"`
	UploadDir string `yaml:"upload_dir"`
}

type S3Config struct {
	Bucket   string `yaml:"bucket"`
	Client   *s3.Client
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
	Local    bool   `yaml:"local"`
}

type RedisConfig struct {
	Addr       string `yaml:"addr"`
	Password   string `yaml:"password"`
	DB         int    `yaml:"db"`
	TTLSeconds int    `yaml:"ttl_seconds"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}
