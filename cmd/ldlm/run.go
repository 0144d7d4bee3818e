package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"time"

	"github.com/pixperk/ldlm/pkg/client"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run NAME -- COMMAND [ARGS...]",
	Short: "Run a command while holding a lock",
	Long: `Run a command while holding a lock.

The lock is acquired first, refreshed in the background while the command runs
and released when it exits. The command's exit status is passed through. The
lock name and key are exported to the command as LDLM_LOCK_NAME and
LDLM_LOCK_KEY.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runRun,
}

func init() {
	runCmd.Flags().Duration("wait-timeout", 0, "give up waiting after this long, 0 waits forever")
	runCmd.Flags().Bool("try", false, "fail at once if the lock is held")
	runCmd.Flags().String("metrics-addr", "", "serve prometheus metrics on this address while running")
	addLockFlags(runCmd)
}

func serveMetrics(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "addr", addr, "error", err)
		}
	}()
	return srv
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name, argv := args[0], args[1:]

	if addr, _ := cmd.Flags().GetString("metrics-addr"); addr != "" {
		srv := serveMetrics(addr)
		defer srv.Shutdown(context.Background())
	}

	try, _ := cmd.Flags().GetBool("try")
	scoped := ldlmClient.WithLock
	if try {
		scoped = ldlmClient.WithTryLock
	}

	var exitCode int
	err := scoped(ctx, name, func(ctx context.Context, l *client.Lock) error {
		if !l.Locked() {
			fmt.Fprintf(cmd.ErrOrStderr(), "lock %s not acquired\n", name)
			exitCode = 1
			return nil
		}

		child := exec.CommandContext(ctx, argv[0], argv[1:]...)
		child.Stdin = os.Stdin
		child.Stdout = cmd.OutOrStdout()
		child.Stderr = cmd.ErrOrStderr()
		child.Env = append(os.Environ(), "LDLM_LOCK_NAME="+l.Name(), "LDLM_LOCK_KEY="+l.Key())

		err := child.Run()
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			exitCode = exit.ExitCode()
			return nil
		}
		return err
	}, lockOptions(cmd)...)
	if err != nil {
		return err
	}
	if exitCode != 0 {
		return &exitError{code: exitCode}
	}
	return nil
}
