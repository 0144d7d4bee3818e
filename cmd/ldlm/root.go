package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pixperk/ldlm/pkg/client"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultAddress = "localhost:3144"

var (
	ldlmClient *client.Client
	logger     *slog.Logger

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "ldlm",
		Short: "client for the ldlm distributed lock manager",
		Long: `ldlm talks to an LDLM server to acquire, release and refresh named locks.

Every flag can also be set through the environment as LDLM_<FLAG>, e.g.
LDLM_ADDRESS or LDLM_RETRY_DELAY. .env and .env.local are loaded when present.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  setupClient,
		PersistentPostRunE: closeClient,
	}
)

// exitError carries a process exit status through cobra
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("address", defaultAddress, "host:port of the ldlm server")
	flags.String("password", "", "password sent as the authorization header")
	flags.String("tls-ca", "", "CA certificate used to verify the server")
	flags.String("tls-cert", "", "client certificate for mutual TLS")
	flags.String("tls-key", "", "client key for mutual TLS")
	flags.Bool("tls-insecure-skip-verify", false, "do not verify the server certificate")
	flags.Bool("tls", false, "use TLS even without a CA or client certificate")
	flags.Int("retries", client.DefaultRetries, "retries after a connection failure, -1 for unlimited")
	flags.Duration("retry-delay", client.DefaultRetryDelay, "delay between retries")
	flags.Duration("min-refresh-interval", client.DefaultMinRefreshInterval, "lower bound for the lock refresh interval")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(lockCmd, tryLockCmd, unlockCmd, renewCmd, runCmd)
}

// initConfig loads env files and sets up viper's environment lookup
func initConfig() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	viper.SetEnvPrefix("ldlm")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

// clientOptions builds client options from flags and environment
func clientOptions() ([]client.Option, error) {
	l, err := newLogger(viper.GetString("log-level"))
	if err != nil {
		return nil, err
	}
	logger = l

	opts := []client.Option{
		client.WithLogger(logger),
		client.WithRetries(viper.GetInt("retries")),
		client.WithRetryDelay(viper.GetDuration("retry-delay")),
		client.WithMinRefreshInterval(viper.GetDuration("min-refresh-interval")),
	}

	if pw := viper.GetString("password"); pw != "" {
		opts = append(opts, client.WithPassword(pw))
	}

	tlsCfg := client.TLSConfig{
		CAFile:             viper.GetString("tls-ca"),
		CertFile:           viper.GetString("tls-cert"),
		KeyFile:            viper.GetString("tls-key"),
		InsecureSkipVerify: viper.GetBool("tls-insecure-skip-verify"),
	}
	if viper.GetBool("tls") || tlsCfg != (client.TLSConfig{}) {
		opts = append(opts, client.WithTLS(tlsCfg))
	}

	return opts, nil
}

// setupClient binds flags and connects before any subcommand runs
func setupClient(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	opts, err := clientOptions()
	if err != nil {
		return err
	}

	// only run holds locks long enough to need refreshing
	opts = append(opts, client.WithAutoRefresh(cmd == runCmd))

	if ldlmClient != nil {
		ldlmClient.Close()
	}

	ldlmClient, err = client.New(viper.GetString("address"), opts...)
	return err
}

func closeClient(_ *cobra.Command, _ []string) error {
	if ldlmClient == nil {
		return nil
	}
	return ldlmClient.Close()
}

func execute(ctx context.Context) int {
	err := rootCmd.ExecuteContext(ctx)
	if ldlmClient != nil {
		ldlmClient.Close()
	}

	var exit *exitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exit):
		return exit.code
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
}
