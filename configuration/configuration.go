package configuration

import (
	"strings"

	"github.com/spf13/viper"
)

// Log holds logging configuration.
type Log struct {
	Level  string
	Format string
}

func NewLog() Log {
	return Log{Level: "info", Format: "json"}
}

// Fee holds fee-charging configuration consumed by the transactor's payFee
// step.
type Fee struct {
	BaseFee int64
	Admin   bool
}

func NewFee() Fee {
	return Fee{BaseFee: 10}
}

// Configuration is the top-level process configuration, loaded via viper
// onto a defaults struct and overridden by env vars.
type Configuration struct {
	Ledger Ledger
	Log    Log
	Fee    Fee
}

func NewConfiguration() Configuration {
	return Configuration{
		Ledger: NewLedger(),
		Log:    NewLog(),
		Fee:    NewFee(),
	}
}

// Load reads configuration from the given viper instance, falling back to
// defaults for anything unset. Callers set up file/env/flag precedence on v
// before calling Load (see cmd/ledgerstated).
func Load(v *viper.Viper) (Configuration, error) {
	cfg := NewConfiguration()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if v.IsSet("ledger.reservebase") {
		cfg.Ledger.ReserveBase = v.GetInt64("ledger.reservebase")
	}
	if v.IsSet("ledger.reserveincrement") {
		cfg.Ledger.ReserveIncrement = v.GetInt64("ledger.reserveincrement")
	}
	if v.IsSet("log.level") {
		cfg.Log.Level = v.GetString("log.level")
	}
	if v.IsSet("log.format") {
		cfg.Log.Format = v.GetString("log.format")
	}
	if v.IsSet("fee.basefee") {
		cfg.Fee.BaseFee = v.GetInt64("fee.basefee")
	}
	if v.IsSet("fee.admin") {
		cfg.Fee.Admin = v.GetBool("fee.admin")
	}

	return cfg, nil
}
