package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fieldops/fieldforms/internal/cli"
	"github.com/fieldops/fieldforms/internal/config"
	"github.com/fieldops/fieldforms/pkg/log"
)

func main() {
	_ = godotenv.Load()

	logLevel := zap.NewAtomicLevelAt(zap.InfoLevel)
	if cfg, err := config.New(); err == nil {
		if lvl, err := zap.ParseAtomicLevel(cfg.Service.LogLevel); err == nil {
			logLevel = lvl
		}
	}
	logger := log.InitLog(logLevel)
	defer func() { _ = logger.Sync() }()
	undo := zap.ReplaceGlobals(logger)
	defer undo()

	command := NewFieldformsCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewFieldformsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fieldforms [flags] [options]",
		Short: "fieldforms manages fiber inspection forms and FSO documents.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdFill())
	cmd.AddCommand(cli.NewCmdGet())
	cmd.AddCommand(cli.NewCmdDelete())
	cmd.AddCommand(cli.NewCmdUpload())
	cmd.AddCommand(cli.NewCmdSetStatus())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
