package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port       int
	UsersFile  string
	DataFile   string
	SessionTTL time.Duration
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var ttlMinutes int

	fs := flag.NewFlagSet("member-registry", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.UsersFile, "u", "", "Credential store path")
	fs.StringVar(&cfg.DataFile, "r", "", "Registration record store path")
	fs.IntVar(&ttlMinutes, "session-ttl", 0, "Idle session lifetime in minutes")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8501 // default
		}
	}
	if cfg.UsersFile == "" {
		cfg.UsersFile = os.Getenv("USERS_FILE")
	}
	if cfg.UsersFile == "" {
		cfg.UsersFile = "users.json"
	}

	if cfg.DataFile == "" {
		cfg.DataFile = os.Getenv("DATA_FILE")
	}
	if cfg.DataFile == "" {
		cfg.DataFile = "yoka_data.csv"
	}

	if ttlMinutes == 0 {
		if ttlStr := os.Getenv("SESSION_TTL_MINUTES"); ttlStr != "" {
			minutes, err := strconv.Atoi(ttlStr)
			if err != nil {
				return Config{}, errors.New("invalid SESSION_TTL_MINUTES env variable")
			}
			ttlMinutes = minutes
		} else {
			ttlMinutes = 720 // 12 hours
		}
	}
	if ttlMinutes < 0 {
		return Config{}, errors.New("session TTL must be positive")
	}
	cfg.SessionTTL = time.Duration(ttlMinutes) * time.Minute

	return cfg, nil
}
