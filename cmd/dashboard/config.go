package main

import (
	"strings"
	"time"

	"github.com/goodnatureofminers/arogya-ledger-backend/internal/model"
)

type seedConfig struct {
	TotalRecords      uint64 `long:"total-records" env:"TOTAL_RECORDS" description:"seeded total records" default:"50"`
	EncryptedRecords  uint64 `long:"encrypted-records" env:"ENCRYPTED_RECORDS" description:"seeded encrypted records" default:"50"`
	VerifiedRecords   uint64 `long:"verified-records" env:"VERIFIED_RECORDS" description:"seeded verified records" default:"50"`
	ActiveNodes       uint32 `long:"active-nodes" env:"ACTIVE_NODES" description:"seeded active nodes" default:"5"`
	TotalTransactions uint64 `long:"total-transactions" env:"TOTAL_TRANSACTIONS" description:"seeded transaction count" default:"150"`
	NetworkHealth     string `long:"network-health" env:"NETWORK_HEALTH" description:"seeded network health label" default:"Healthy"`
}

func (c seedConfig) stats() model.Stats {
	return model.Stats{
		TotalRecords:      c.TotalRecords,
		EncryptedRecords:  c.EncryptedRecords,
		VerifiedRecords:   c.VerifiedRecords,
		ActiveNodes:       c.ActiveNodes,
		TotalTransactions: c.TotalTransactions,
		NetworkHealth:     c.NetworkHealth,
	}
}

type config struct {
	Addr                string        `long:"addr" env:"PORT" description:"http listen address or bare port" default:":3000"`
	GRPCAddr            string        `long:"grpc-addr" env:"DASHBOARD_GRPC_ADDR" description:"grpc health listen address" default:":3001"`
	RecordsFile         string        `long:"records-file" env:"DASHBOARD_RECORDS_FILE" description:"JSON file with seed patient records" default:"data/mock_patients.json"`
	ActivityInterval    time.Duration `long:"activity-interval" env:"DASHBOARD_ACTIVITY_INTERVAL" description:"synthetic activity tick interval" default:"5s"`
	ActivityProbability float64       `long:"activity-probability" env:"DASHBOARD_ACTIVITY_PROBABILITY" description:"chance a tick records a synthetic transaction" default:"0.3"`
	SubscriberBuffer    int           `long:"subscriber-buffer" env:"DASHBOARD_SUBSCRIBER_BUFFER" description:"per-subscriber event buffer" default:"64"`
	ClickhouseDSN       string        `long:"clickhouse-dsn" env:"DASHBOARD_CLICKHOUSE_DSN" description:"ClickHouse DSN for the transaction archive; empty disables it"`
	ArchiveFlushSize    int           `long:"archive-flush-size" env:"DASHBOARD_ARCHIVE_FLUSH_SIZE" description:"transactions per archive batch" default:"100"`
	ArchiveFlushEvery   time.Duration `long:"archive-flush-interval" env:"DASHBOARD_ARCHIVE_FLUSH_INTERVAL" description:"archive flush interval" default:"2s"`
	LogJSON             bool          `long:"log-json" env:"DASHBOARD_LOG_JSON" description:"production JSON logging"`

	Seed seedConfig `group:"seed" namespace:"seed" env-namespace:"DASHBOARD_SEED"`
}

// listenAddr accepts "3000" as well as ":3000" or "host:3000".
func listenAddr(addr string) string {
	if addr != "" && !strings.Contains(addr, ":") {
		return ":" + addr
	}
	return addr
}
