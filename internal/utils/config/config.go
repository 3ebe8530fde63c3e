package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/vaultpay/payout-backend/internal/types/environments"
)

type AppConfig struct {
	Environment environments.Environment
	ApiServer   ApiServerConfig
	Postgres    DBConnection
	Blockchain  BlockchainConfig
	Risk        RiskConfig
	Worker      WorkerConfig
}

type ApiServerConfig struct {
	AllowedOrigins string
}

type BlockchainConfig struct {
	RPCEndpoint        string
	VaultContractAddr  string
	OperatorPrivateKey string
	ChainID            int64
	UseFakeChain       bool
}

type DBConnection struct {
	Host string
	Port string
	User string
	Name string
	Pass string

	SSLMode string
}

// RiskConfig is loaded once at process start and treated as immutable for the
// lifetime of every tick.
type RiskConfig struct {
	MaxPerRequest string
	MaxDailyTotal string
	Denylist      []string
	Confirmations int
}

type WorkerConfig struct {
	ID            string
	LeaseDuration time.Duration
	TickPeriod    string
}

func New() *AppConfig {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// .env files never override variables that are already set
	godotenv.Load(".env." + env)

	return &AppConfig{
		Environment: environments.Environment(env),
		ApiServer: ApiServerConfig{
			AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		},
		Postgres: DBConnection{
			Host:    os.Getenv("DB_HOST"),
			Port:    os.Getenv("DB_PORT"),
			User:    os.Getenv("DB_USER"),
			Name:    os.Getenv("DB_NAME"),
			Pass:    os.Getenv("DB_PASS"),
			SSLMode: os.Getenv("DB_SSL_MODE"),
		},
		Blockchain: BlockchainConfig{
			RPCEndpoint:        os.Getenv("BLOCKCHAIN_RPC_ENDPOINT"),
			VaultContractAddr:  os.Getenv("BLOCKCHAIN_VAULT_CONTRACT_ADDR"),
			OperatorPrivateKey: os.Getenv("BLOCKCHAIN_OPERATOR_PRIVATE_KEY"),
			ChainID:            envVarAsInt64("BLOCKCHAIN_CHAIN_ID", 8453),
			UseFakeChain:       envVarAsBool("BLOCKCHAIN_USE_FAKE_CHAIN"),
		},
		Risk: RiskConfig{
			MaxPerRequest: envVarOrDefault("RISK_MAX_PER_REQUEST", "1000000000000000000000"),
			MaxDailyTotal: envVarOrDefault("RISK_MAX_DAILY_TOTAL", "10000000000000000000000"),
			Denylist:      envVarAsList("RISK_DENYLIST"),
			Confirmations: int(envVarAsInt64("RISK_CONFIRMATIONS", 3)),
		},
		Worker: WorkerConfig{
			ID:            envVarOrDefault("WORKER_ID", "worker-local"),
			LeaseDuration: envVarAsDuration("WORKER_LEASE_DURATION", 60*time.Second),
			TickPeriod:    envVarOrDefault("WORKER_TICK_PERIOD", "5s"),
		},
	}
}

func envVarOrDefault(envName, fallback string) string {
	value := os.Getenv(envName)
	if value == "" {
		return fallback
	}

	return value
}

func envVarAsInt64(envName string, fallback int64) int64 {
	valueStr := os.Getenv(envName)
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return fallback
	}

	return value
}

func envVarAsBool(envName string) bool {
	return os.Getenv(envName) == "true"
}

func envVarAsList(envName string) []string {
	valueStr := os.Getenv(envName)
	if valueStr == "" {
		return nil
	}

	parts := strings.Split(valueStr, ";")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			values = append(values, p)
		}
	}

	return values
}

func envVarAsDuration(envName string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(envName))
	if err != nil {
		return fallback
	}

	return value
}
