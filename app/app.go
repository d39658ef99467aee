package app

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"library-management-system/db"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// aliases so handlers read shorter
type Ctx = gin.Context
type H = gin.H

// App aggregates the service dependencies.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	RDB    *redis.Client
	Config Config
}

// Config comes from the environment.
type Config struct {
	RedisAddr      string
	RedisPwd       string
	WebOrigin      string
	LoanPeriodDays int
	SnapshotTTL    time.Duration
	SeedSampleData bool
}

func MustNew() *App {
	cfg := loadConfig()

	// --- DB: Postgres ---
	dbConn := db.ConnectDB()

	// --- Redis ---
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis: %v", err)
	}

	// --- Gin ---
	r := gin.Default()
	useCORS(r, cfg.WebOrigin)

	return &App{Router: r, DB: dbConn, RDB: rdb, Config: cfg}
}

func (a *App) Close() { _ = a.RDB.Close() }

func loadConfig() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}

	loanDays := db.DefaultLoanPeriodDays
	if v, err := strconv.Atoi(get("LOAN_PERIOD_DAYS", "")); err == nil &&
		v >= db.MinDueOffsetDays && v <= db.MaxDueOffsetDays {
		loanDays = v
	}

	ttl := 30 * time.Second
	if sec, err := strconv.Atoi(get("STATS_CACHE_TTL_SECONDS", "30")); err == nil && sec > 0 {
		ttl = time.Duration(sec) * time.Second
	}

	return Config{
		RedisAddr:      get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:       os.Getenv("REDIS_PASSWORD"),
		WebOrigin:      get("WEB_ORIGIN", "http://localhost:5173"),
		LoanPeriodDays: loanDays,
		SnapshotTTL:    ttl,
		SeedSampleData: get("SEED_SAMPLE_DATA", "") == "true",
	}
}
