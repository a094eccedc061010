package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	rootCmd := newRootCmd(afero.NewOsFs(), viper.New())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
