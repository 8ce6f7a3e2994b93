// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	simulatorFolder = ".arraylist-sim"
	envPrefix       = "ARRAYLIST_SIM"

	logLevelKey   = "log-level"
	logDirKey     = "log-dir"
	logDisplayKey = "log-display"
	foldKey       = "fold"
	configKey     = "config"
)

type Simulator struct {
	log  logging.Logger
	fold bool

	v          *viper.Viper
	logFactory *logFactory
}

func defaultLogDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.TempDir()
	}
	return filepath.Join(homeDir, simulatorFolder, "logs")
}

func (s *Simulator) NewRootCmd() *cobra.Command {
	s.v = viper.New()
	cmd := &cobra.Command{
		Use:   "arraylist-sim",
		Short: "Drive an array-backed list from plans, scripts or a prompt",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return s.Init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			s.Close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.DisableAutoGenTag = true
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})

	flags := cmd.PersistentFlags()
	flags.String(logLevelKey, "info", "log level")
	flags.String(logDirKey, defaultLogDir(), "directory for rotated log files")
	flags.Bool(logDisplayKey, false, "also write logs to stderr")
	flags.Bool(foldKey, false, "compare strings case-insensitively when searching or removing")
	flags.String(configKey, "", "optional YAML config file")

	s.v.SetEnvPrefix(envPrefix)
	s.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	s.v.AutomaticEnv()
	_ = s.v.BindPFlags(flags)

	cmd.AddCommand(
		newRunCmd(s),
		newInterpreterCmd(s),
		newReplCmd(s),
	)
	return cmd
}

func (s *Simulator) Init() error {
	if path := s.v.GetString(configKey); path != "" {
		s.v.SetConfigFile(path)
		s.v.SetConfigType("yaml")
		if err := s.v.ReadInConfig(); err != nil {
			return err
		}
	}

	logLevel := s.v.GetString(logLevelKey)
	level, err := logging.ToLevel(logLevel)
	if err != nil {
		return err
	}
	loggingConfig := logging.Config{}
	loggingConfig.LogLevel = level
	loggingConfig.DisplayLevel = level
	loggingConfig.LogFormat = logging.JSON
	loggingConfig.Directory = s.v.GetString(logDirKey)
	loggingConfig.MaxSize = 8
	loggingConfig.MaxFiles = 4
	loggingConfig.MaxAge = 7
	loggingConfig.DisableWriterDisplaying = !s.v.GetBool(logDisplayKey)

	s.logFactory = newLogFactory(loggingConfig)
	s.log, err = s.logFactory.Make("simulator")
	if err != nil {
		s.logFactory.Close()
		return err
	}
	s.fold = s.v.GetBool(foldKey)

	s.log.Info("simulator initialized",
		zap.String("log-level", logLevel),
		zap.String("log-dir", loggingConfig.Directory),
		zap.Bool("fold", s.fold),
	)
	return nil
}

func (s *Simulator) Close() {
	if s.logFactory != nil {
		s.logFactory.Close()
	}
}

func (s *Simulator) Execute() error {
	return s.NewRootCmd().Execute()
}
