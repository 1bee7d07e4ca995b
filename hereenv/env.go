// Package hereenv provides a host environment configured from flags and
// environment variables, for programs that want notices to follow the
// deployment they're running in.
package hereenv

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffval"
	"github.com/peterbourgon/here"
	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvVarPrefix is the prefix of environment variables read by Parse.
const EnvVarPrefix = "HERE"

// DefaultProductionEnv is the environment name considered to be production
// when no --production-env is given.
const DefaultProductionEnv = "production"

// Environment is a [here.HostEnvironment] described by an environment name
// and an optional log file. It's in production when its name is one of the
// production names. If a log file is configured, notices that are logged
// without an explicit logger are written to it via an hclog logger.
type Environment struct {
	Name            string
	ProductionNames []string
	LogFile         string
	LogLevel        string

	file   *lumberjack.Logger
	logger hclog.Logger
}

var _ here.HostEnvironment = (*Environment)(nil)

// Parse builds an environment from the args and HERE_ environment variables.
//
//	--env             HERE_ENV             environment name (default: development)
//	--production-env  HERE_PRODUCTION_ENV  production environment name (repeatable)
//	--log-file        HERE_LOG_FILE        log file for notices that are logged
//	--log-level       HERE_LOG_LEVEL       log file level (default: debug)
//
// Additional options are passed to ff.Parse after the env var prefix.
func Parse(args []string, options ...ff.Option) (*Environment, error) {
	var (
		env = &Environment{}
		fs  = ff.NewFlagSet("hereenv")
	)
	register(fs, env)

	options = append([]ff.Option{ff.WithEnvVarPrefix(EnvVarPrefix)}, options...)
	if err := ff.Parse(fs, args, options...); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	if len(env.ProductionNames) <= 0 {
		env.ProductionNames = []string{DefaultProductionEnv}
	}

	if env.LogFile != "" {
		env.file = &lumberjack.Logger{
			Filename: env.LogFile,
			MaxSize:  here.PathDeviceMaxSizeMB,
		}
		env.logger = hclog.New(&hclog.LoggerOptions{
			Name:   "here",
			Level:  hclog.LevelFromString(env.LogLevel),
			Output: env.file,
		})
	}

	return env, nil
}

func register(fs *ff.FlagSet, env *Environment) {
	fs.AddFlag(ff.FlagConfig{
		LongName:    "env",
		Value:       ffval.NewValueDefault(&env.Name, "development"),
		Usage:       "environment name",
		Placeholder: "NAME",
	})
	fs.AddFlag(ff.FlagConfig{
		LongName:    "production-env",
		Value:       ffval.NewUniqueList(&env.ProductionNames),
		Usage:       "environment name considered to be production (repeatable, default: " + DefaultProductionEnv + ")",
		Placeholder: "NAME",
	})
	fs.AddFlag(ff.FlagConfig{
		LongName:    "log-file",
		Value:       ffval.NewValue(&env.LogFile),
		Usage:       "if set, log notices to this file",
		Placeholder: "PATH",
	})
	fs.AddFlag(ff.FlagConfig{
		LongName:    "log-level",
		Value:       ffval.NewEnum(&env.LogLevel, "debug", "trace", "info", "warn", "error", "off"),
		Usage:       "log file level: trace, debug, info, warn, error, off",
		Placeholder: "LEVEL",
	})
}

// IsProduction implements here.HostEnvironment.
func (env *Environment) IsProduction() bool {
	for _, name := range env.ProductionNames {
		if strings.EqualFold(strings.TrimSpace(name), strings.TrimSpace(env.Name)) {
			return true
		}
	}
	return false
}

// LogSink implements here.HostEnvironment. It's nil unless a log file is
// configured.
func (env *Environment) LogSink() here.Sink {
	if env.logger == nil {
		return nil
	}
	return here.HCLogSink(env.logger)
}

// Close releases the log file, if any.
func (env *Environment) Close() error {
	if env.file == nil {
		return nil
	}
	return env.file.Close()
}
