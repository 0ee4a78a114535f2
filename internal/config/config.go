package config

import (
	"github.com/rise-and-shine/filevault/internal/logger"
	"github.com/rise-and-shine/filevault/internal/pg"
	"github.com/rise-and-shine/filevault/internal/server"
	"github.com/rise-and-shine/filevault/internal/storage/minio"
)

// Config is the full service configuration, one section per component.
type Config struct {
	// ServiceName is used as the root logger name.
	ServiceName string `yaml:"service_name" default:"filevault"`

	Logger   logger.Config `yaml:"logger"`
	HTTP     server.Config `yaml:"http"`
	Postgres pg.Config     `yaml:"postgres"`
	Minio    minio.Config  `yaml:"minio"`
}
