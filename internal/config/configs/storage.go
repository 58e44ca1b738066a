package configs

import "strings"

// Storage drivers understood by Storage.DriverName.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Storage selects where the current dashboard snapshot is kept.
type Storage struct {
	Driver string `env:"DRIVER" envDefault:"memory"`
}

// DriverName normalises Driver. Unknown values fall back to "memory".
func (c Storage) DriverName() string {
	switch strings.ToLower(strings.TrimSpace(c.Driver)) {
	case DriverPostgres, "postgresql", "pg":
		return DriverPostgres
	default:
		return DriverMemory
	}
}
