package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mwantia/vls/log"
	"github.com/mwantia/vls/source"
	"github.com/mwantia/vls/source/consul"
	"github.com/mwantia/vls/source/local"
	"github.com/mwantia/vls/source/memory"
	"github.com/mwantia/vls/source/postgres"
	"github.com/mwantia/vls/source/s3"
	"github.com/mwantia/vls/source/sqlite"
)

// newSource builds the listing source selected by VLS_SOURCE. The value
// is "<kind>" or "<kind>:<target>"; unset defaults to the local
// filesystem.
//
//	local
//	memory
//	sqlite:<file>
//	postgres:<connection string>
//	consul:<address>/<prefix>
//	s3:<endpoint>/<bucket>
func newSource() (source.Source, error) {
	value := os.Getenv("VLS_SOURCE")
	if value == "" || value == "local" {
		return local.NewLocal(), nil
	}

	kind, target, _ := strings.Cut(value, ":")
	switch kind {
	case "memory":
		return memory.NewMemory(), nil

	case "sqlite":
		if target == "" {
			return nil, fmt.Errorf("VLS_SOURCE: sqlite requires a database path")
		}
		return sqlite.NewSQLite(target)

	case "postgres":
		if target == "" {
			return nil, fmt.Errorf("VLS_SOURCE: postgres requires a connection string")
		}
		return postgres.NewPostgres(target)

	case "consul":
		address, prefix, _ := strings.Cut(target, "/")
		return consul.NewConsul(&consul.ConsulSourceConfig{
			Address: address,
			Token:   os.Getenv("VLS_CONSUL_TOKEN"),
			Prefix:  prefix,
		})

	case "s3":
		endpoint, bucket, ok := strings.Cut(target, "/")
		if !ok || bucket == "" {
			return nil, fmt.Errorf("VLS_SOURCE: s3 requires <endpoint>/<bucket>")
		}
		return s3.NewS3(endpoint, bucket,
			os.Getenv("VLS_S3_ACCESS_KEY"),
			os.Getenv("VLS_S3_SECRET_KEY"),
			os.Getenv("VLS_S3_SSL") == "true")

	default:
		return nil, fmt.Errorf("VLS_SOURCE: unknown source '%s'", kind)
	}
}

// newLogger builds the diagnostic logger from VLS_LOG_LEVEL and
// VLS_LOG_FILE. With neither set, diagnostics are dropped so listing
// output stays clean.
func newLogger() (*log.Logger, error) {
	levelValue := os.Getenv("VLS_LOG_LEVEL")
	file := os.Getenv("VLS_LOG_FILE")

	if levelValue == "" && file == "" {
		return log.Discard(), nil
	}

	level, err := log.ParseLevel(levelValue)
	if err != nil {
		return nil, fmt.Errorf("VLS_LOG_LEVEL: %w", err)
	}

	return log.New("vls", log.Options{
		Level:      level,
		File:       file,
		NoTerminal: file != "",
	}), nil
}
