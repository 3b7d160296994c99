package core

import (
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store engines
const (
	StoreBadger   = "badger"
	StorePostgres = "postgres"
)

type Config struct {
	Env          string
	Build        string
	AppName      string
	Debug        bool
	TestMode     bool
	SecretKey    string
	RollbarToken string
	WorkDir      string

	Server struct {
		Host               string
		DebugHost          string
		DisableReqLogs     bool
		ShutdownTimeout    time.Duration
		JWTExpirationDelta time.Duration
	}

	Store struct {
		Engine   string
		Path     string // badger only
		InMemory bool   // badger only
	}

	// Database is used by the postgres store engine.
	Database struct {
		User       string
		Password   string
		Host       string
		Port       string
		Name       string
		DisableTLS bool
	}
}

func (conf *Config) DatabaseAddress() string {
	return net.JoinHostPort(conf.Database.Host, conf.Database.Port)
}

// NewConfig loads the configuration from the environment.
// Env vars are prefixed by the current ENV, eg. DEV_SERVER_HOST, PROD_SECRET_KEY.
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("build", "develop")
	v.SetDefault("app_name", "stdgrd")
	v.SetDefault("debug", true)
	v.SetDefault("test_mode", false)
	v.SetDefault("secret_key", "x9#t!q2w(r8&m)e4_zc0vb7ny%lk3a=p")
	v.SetDefault("rollbar_token", "")
	v.SetDefault("server.host", ":8000")
	v.SetDefault("server.debug_host", ":4000")
	v.SetDefault("server.disable_req_logs", false)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.jwt_expiration_delta", 7*24*time.Hour)
	v.SetDefault("store.engine", StoreBadger)
	v.SetDefault("store.path", filepath.Join("data", "records"))
	v.SetDefault("store.in_memory", false)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.name", "stdgrd")
	v.SetDefault("database.disable_tls", false)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("test_mode", true)
		v.SetDefault("store.in_memory", true)
		v.SetDefault("database.name", "stdgrd_test")
		v.SetDefault("database.disable_tls", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("config.os.Getwd(): %v", err)
	}

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := &Config{
		Env:          env,
		Build:        v.GetString("build"),
		AppName:      v.GetString("app_name"),
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("test_mode"),
		SecretKey:    v.GetString("secret_key"),
		RollbarToken: v.GetString("rollbar_token"),
		WorkDir:      wd,
	}
	conf.Server.Host = v.GetString("server.host")
	conf.Server.DebugHost = v.GetString("server.debug_host")
	conf.Server.DisableReqLogs = v.GetBool("server.disable_req_logs")
	conf.Server.ShutdownTimeout = v.GetDuration("server.shutdown_timeout")
	conf.Server.JWTExpirationDelta = v.GetDuration("server.jwt_expiration_delta")
	conf.Store.Engine = strings.ToLower(v.GetString("store.engine"))
	conf.Store.Path = v.GetString("store.path")
	conf.Store.InMemory = v.GetBool("store.in_memory")
	conf.Database.User = v.GetString("database.user")
	conf.Database.Password = v.GetString("database.password")
	conf.Database.Host = v.GetString("database.host")
	conf.Database.Port = v.GetString("database.port")
	conf.Database.Name = v.GetString("database.name")
	conf.Database.DisableTLS = v.GetBool("database.disable_tls")
	return conf
}
