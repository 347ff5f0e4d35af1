package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/nhalm/canonlog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/yourorg/stockroom/internal/auth"
	"github.com/yourorg/stockroom/internal/catalog"
	"github.com/yourorg/stockroom/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:           "stockroom",
	Short:         "Local product-inventory manager",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logLevel := viper.GetString("LOG_LEVEL")
		if logLevel == "" {
			logLevel = "info"
		}
		logFormat := viper.GetString("LOG_FORMAT")
		if logFormat == "" {
			logFormat = "text"
		}
		canonlog.SetupGlobalLogger(logLevel, logFormat)
	},
}

func init() {
	_ = godotenv.Load()
	viper.AutomaticEnv()

	rootCmd.PersistentFlags().String("dir", "", "Directory holding the local store (default ~/.stockroom)")
	_ = viper.BindPFlag("STOCKROOM_DIR", rootCmd.PersistentFlags().Lookup("dir"))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func storeDir() (string, error) {
	if dir := viper.GetString("STOCKROOM_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".stockroom"), nil
}

func openStore() (*storage.FileStore, error) {
	dir, err := storeDir()
	if err != nil {
		return nil, err
	}
	store, err := storage.NewFileStore(dir)
	if err != nil {
		return nil, fmt.Errorf("open store at %s: %w", dir, err)
	}
	return store, nil
}

func authLatency() time.Duration {
	ms := viper.GetInt("AUTH_LATENCY_MS")
	if ms == 0 && os.Getenv("AUTH_LATENCY_MS") == "" {
		ms = 1000
	}
	return time.Duration(ms) * time.Millisecond
}

func newAuthManager() (*auth.Manager, error) {
	store, err := openStore()
	if err != nil {
		return nil, err
	}
	return auth.NewManager(store, authLatency()), nil
}

// requireSession gates product commands behind authentication the way the
// product screens sit behind the auth screen.
func requireSession() (*catalog.Manager, error) {
	store, err := openStore()
	if err != nil {
		return nil, err
	}
	session := auth.NewManager(store, authLatency())
	if !session.State().IsAuthenticated {
		return nil, fmt.Errorf("not logged in; run `stockroom login` first")
	}
	return catalog.NewManager(store), nil
}
