package main

import (
	"fmt"

	"github.com/pixperk/ldlm/pkg/client"
	"github.com/spf13/cobra"
)

var (
	lockCmd = &cobra.Command{
		Use:   "lock NAME",
		Short: "Acquire a lock, waiting for it if it is held",
		Long: `Acquire a lock, waiting for it if it is held.

The lock is not refreshed after the command exits. Use --lock-timeout so the
server releases it if it is never unlocked, or use "ldlm run" to hold the lock
for the lifetime of a command.`,
		Args: cobra.ExactArgs(1),
		RunE: runLock,
	}

	tryLockCmd = &cobra.Command{
		Use:   "try-lock NAME",
		Short: "Acquire a lock only if it is free",
		Args:  cobra.ExactArgs(1),
		RunE:  runTryLock,
	}

	unlockCmd = &cobra.Command{
		Use:   "unlock NAME KEY",
		Short: "Release a lock using the key returned by lock",
		Args:  cobra.ExactArgs(2),
		RunE:  runUnlock,
	}

	renewCmd = &cobra.Command{
		Use:   "renew NAME KEY",
		Short: "Extend the timeout of a held lock",
		Args:  cobra.ExactArgs(2),
		RunE:  runRenew,
	}
)

func init() {
	lockCmd.Flags().Duration("wait-timeout", 0, "give up waiting after this long, 0 waits forever")
	addLockFlags(lockCmd)
	addLockFlags(tryLockCmd)

	renewCmd.Flags().Duration("lock-timeout", 0, "new lock timeout")
	_ = renewCmd.MarkFlagRequired("lock-timeout")
}

func addLockFlags(cmd *cobra.Command) {
	cmd.Flags().Duration("lock-timeout", 0, "server releases the lock after this long unless refreshed")
	cmd.Flags().Int32("size", 0, "number of concurrent holders, 0 for the server default")
}

func lockOptions(cmd *cobra.Command) []client.LockOption {
	var opts []client.LockOption
	if d, err := cmd.Flags().GetDuration("wait-timeout"); err == nil && d > 0 {
		opts = append(opts, client.WithWaitTimeout(d))
	}
	if d, err := cmd.Flags().GetDuration("lock-timeout"); err == nil && d > 0 {
		opts = append(opts, client.WithLockTimeout(d))
	}
	if n, err := cmd.Flags().GetInt32("size"); err == nil && n > 0 {
		opts = append(opts, client.WithSize(n))
	}
	return opts
}

func printLock(cmd *cobra.Command, l *client.Lock) {
	fmt.Fprintf(cmd.OutOrStdout(), "locked=%t name=%s key=%s\n", l.Locked(), l.Name(), l.Key())
}

func runLock(cmd *cobra.Command, args []string) error {
	l, err := ldlmClient.Lock(cmd.Context(), args[0], lockOptions(cmd)...)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	printLock(cmd, l)
	if !l.Locked() {
		return &exitError{code: 1}
	}
	return nil
}

func runTryLock(cmd *cobra.Command, args []string) error {
	l, err := ldlmClient.TryLock(cmd.Context(), args[0], lockOptions(cmd)...)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	printLock(cmd, l)
	if !l.Locked() {
		return &exitError{code: 1}
	}
	return nil
}

func runUnlock(cmd *cobra.Command, args []string) error {
	if err := ldlmClient.Unlock(cmd.Context(), args[0], args[1]); err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "unlocked=true name=%s\n", args[0])
	return nil
}

func runRenew(cmd *cobra.Command, args []string) error {
	timeout, _ := cmd.Flags().GetDuration("lock-timeout")
	if timeout <= 0 {
		return fmt.Errorf("--lock-timeout must be positive, got %s", timeout)
	}

	l, err := ldlmClient.RefreshLock(cmd.Context(), args[0], args[1], timeout)
	if err != nil {
		return fmt.Errorf("failed to renew lock: %w", err)
	}
	printLock(cmd, l)
	return nil
}
