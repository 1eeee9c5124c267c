package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	JWT          JWTConfig          `mapstructure:"jwt"`
	OSS          OSSConfig          `mapstructure:"oss"`
	Email        EmailConfig        `mapstructure:"email"`
	CORS         CORSConfig         `mapstructure:"cors"`
	Subscription SubscriptionConfig `mapstructure:"subscription"`
	Upload       UploadConfig       `mapstructure:"upload"`
	Log          LogConfig          `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Database     string `mapstructure:"database"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

type OSSConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	AccessKeySecret string `mapstructure:"access_key_secret"`
	BucketName      string `mapstructure:"bucket_name"`
	CDNDomain       string `mapstructure:"cdn_domain"`
}

type EmailConfig struct {
	SMTPHost string `mapstructure:"smtp_host"`
	SMTPPort int    `mapstructure:"smtp_port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

// SubscriptionConfig maps each plan tier to its resource ceilings and
// pricing. Two limit tables existed historically; keeping the table in
// config means switching them is an ops change, not a rebuild.
type SubscriptionConfig struct {
	Plans map[string]PlanLevel `mapstructure:"plans"`
}

type PlanLevel struct {
	MonthlyPrice  float64 `mapstructure:"monthly_price"`
	YearlyPrice   float64 `mapstructure:"yearly_price"`
	CodesRequired int     `mapstructure:"codes_required"` // top-up codes per payment
	MaxProjects   int     `mapstructure:"max_projects"`
	MaxServices   int     `mapstructure:"max_services"`
	MaxTeam       int     `mapstructure:"max_team"`
	MaxWorks      int     `mapstructure:"max_works"`
}

type UploadConfig struct {
	MaxSize          int64    `mapstructure:"max_size"`           // bytes
	AllowedMIMETypes []string `mapstructure:"allowed_mime_types"` // image/jpeg etc.
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func Load(configPath string) (*Config, error) {
	// config.local.yaml carries real secrets and stays out of git
	dir := filepath.Dir(configPath)
	localConfigPath := filepath.Join(dir, "config.local.yaml")

	if _, err := os.Stat(localConfigPath); err == nil {
		configPath = localConfigPath
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if len(cfg.Subscription.Plans) == 0 {
		cfg.Subscription.Plans = DefaultPlans()
	}

	return &cfg, nil
}

// DefaultPlans is the built-in plan table, used when subscription.plans is
// absent from the config file. Prices are in Libyan dinar.
func DefaultPlans() map[string]PlanLevel {
	return map[string]PlanLevel{
		"basic":   {MonthlyPrice: 50, YearlyPrice: 500, CodesRequired: 1, MaxProjects: 3, MaxServices: 5, MaxTeam: 3, MaxWorks: 5},
		"premium": {MonthlyPrice: 100, YearlyPrice: 1000, CodesRequired: 2, MaxProjects: 10, MaxServices: 15, MaxTeam: 10, MaxWorks: 15},
		"pro":     {MonthlyPrice: 200, YearlyPrice: 2000, CodesRequired: 4, MaxProjects: 50, MaxServices: 50, MaxTeam: 50, MaxWorks: 50},
	}
}
