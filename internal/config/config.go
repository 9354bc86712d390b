package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Browser    Browser    `mapstructure:",squash"`
	Screenshot Screenshot `mapstructure:",squash"`
	ScrapeSync ScrapeSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Browser struct {
	Headless           bool          `mapstructure:"browser_headless"`
	UserAgent          string        `mapstructure:"browser_user_agent"`
	WindowWidth        int           `mapstructure:"browser_window_width"`
	WindowHeight       int           `mapstructure:"browser_window_height"`
	StepTimeout        time.Duration `mapstructure:"browser_step_timeout"`
	ProfileDir         string        `mapstructure:"browser_profile_dir"`
	ManualLoginEnabled bool          `mapstructure:"manual_login_enabled"`
	ManualLoginTimeout time.Duration `mapstructure:"manual_login_timeout"`
}

type Screenshot struct {
	Dir string `mapstructure:"screenshot_dir"`
}

type ScrapeSync struct {
	CronSchedule        string        `mapstructure:"scrape_sync_cron"`
	Enabled             bool          `mapstructure:"scrape_sync_enabled"`
	RequestDelaySeconds int           `mapstructure:"scrape_sync_request_delay_seconds"`
	RunTimeout          time.Duration `mapstructure:"scrape_sync_run_timeout"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/asp_revenue")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("BROWSER_HEADLESS", true)
	viper.SetDefault("BROWSER_USER_AGENT",
		"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	viper.SetDefault("BROWSER_WINDOW_WIDTH", 1280)
	viper.SetDefault("BROWSER_WINDOW_HEIGHT", 900)
	viper.SetDefault("BROWSER_STEP_TIMEOUT", "45s")
	viper.SetDefault("BROWSER_PROFILE_DIR", "./profiles")

	// Some ASPs fingerprint automation hard enough that form-fill login is
	// unreliable; a human completes the login in the opened browser instead.
	viper.SetDefault("MANUAL_LOGIN_ENABLED", true)
	viper.SetDefault("MANUAL_LOGIN_TIMEOUT", "3m")

	viper.SetDefault("SCREENSHOT_DIR", "./screenshots")

	viper.SetDefault("SCRAPE_SYNC_CRON", "0 6 * * *") // every day at 6am
	viper.SetDefault("SCRAPE_SYNC_ENABLED", false)
	viper.SetDefault("SCRAPE_SYNC_REQUEST_DELAY_SECONDS", 5)
	viper.SetDefault("SCRAPE_SYNC_RUN_TIMEOUT", "2h")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not determine working directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Loaded .env from:", location)
			return
		}
	}

	logrus.Warn("No .env file found in any known location")
}
