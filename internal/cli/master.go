package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/passkeeper/internal/gate"
)

func (c *Cli) setupCommand() *cobra.Command {
	var biometric bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Set up the master password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := c.ensureApp(ctx)
			if err != nil {
				return err
			}

			c.io.Println("=== Master Password Setup ===")
			c.io.Println()

			password, confirmation, err := c.readNewPassword("Master password: ")
			if err != nil {
				return err
			}

			if err := app.Gate.Setup(ctx, password, confirmation, biometric); err != nil {
				if errors.Is(err, gate.ErrAlreadyInitialized) {
					return fmt.Errorf("%w. Run 'passkeeper reset' to start over", err)
				}
				return err
			}

			c.io.Println("✓ Master password set up")
			return nil
		},
	}
	cmd.Flags().BoolVar(&biometric, "biometric", false, "Enable biometric unlock")
	return cmd
}

func (c *Cli) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show vault status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := c.ensureApp(ctx)
			if err != nil {
				return err
			}

			c.io.Println("=== Vault Status ===")
			c.io.Println()

			state, err := app.Gate.State(ctx)
			if err != nil {
				return fmt.Errorf("failed to get vault state: %w", err)
			}
			c.io.Printf("Status: %s\n", state)

			if state == gate.StateUninitialized {
				c.io.Println()
				c.io.Println("Run 'passkeeper setup' to create a master password.")
				return nil
			}

			record, err := app.Gate.Record(ctx)
			if err != nil {
				return fmt.Errorf("failed to get settings: %w", err)
			}

			if last := record.LastUnlock(); last.IsZero() {
				c.io.Println("Last unlock: never")
			} else {
				c.io.Printf("Last unlock: %s\n", last.Format(time.RFC3339))
			}
			if timeout := record.AutoLockTimeout(); timeout > 0 {
				c.io.Printf("Auto-lock: %s\n", timeout)
			} else {
				c.io.Println("Auto-lock: disabled")
			}
			c.io.Printf("Biometric unlock: %s\n", enabledString(record.BiometricEnabled))
			return nil
		},
	}
}

func (c *Cli) settingsCommand() *cobra.Command {
	var (
		autoLock       int
		biometric      bool
		changePassword bool
	)

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Change auto-lock, biometric unlock or the master password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			flags := cmd.Flags()

			if !flags.Changed("auto-lock") && !flags.Changed("biometric") && !changePassword {
				return fmt.Errorf("nothing to change. Use --auto-lock, --biometric or --change-password")
			}

			// Для смены пароля старый пароль проверяется в ChangePassphrase
			oldPassword, err := c.getMasterPassword()
			if err != nil {
				return fmt.Errorf("failed to get master password: %w", err)
			}

			app, err := c.ensureApp(ctx)
			if err != nil {
				return err
			}
			if err := app.Gate.Unlock(ctx, oldPassword); err != nil {
				return err
			}

			if flags.Changed("auto-lock") {
				if err := app.Gate.SetAutoLockTimeout(ctx, autoLock); err != nil {
					return fmt.Errorf("failed to set auto-lock timeout: %w", err)
				}
				if autoLock > 0 {
					c.io.Printf("✓ Auto-lock set to %d minute(s)\n", autoLock)
				} else {
					c.io.Println("✓ Auto-lock disabled")
				}
			}

			if flags.Changed("biometric") {
				if err := app.Gate.SetBiometricEnabled(ctx, biometric); err != nil {
					return fmt.Errorf("failed to set biometric unlock: %w", err)
				}
				c.io.Printf("✓ Biometric unlock %s\n", enabledString(biometric))
			}

			if changePassword {
				newPassword, confirmation, err := c.promptNewPassword("New master password: ")
				if err != nil {
					return err
				}
				if err := app.Gate.ChangePassphrase(ctx, oldPassword, newPassword, confirmation); err != nil {
					return err
				}
				c.io.Println("✓ Master password changed")
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&autoLock, "auto-lock", 0, "Auto-lock timeout in minutes (0 disables)")
	cmd.Flags().BoolVar(&biometric, "biometric", false, "Enable or disable biometric unlock")
	cmd.Flags().BoolVar(&changePassword, "change-password", false, "Change the master password")
	return cmd
}

func (c *Cli) resetCommand() *cobra.Command {
	var (
		wipe bool
		yes  bool
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove the master password (and optionally all data)",
		Long: `Remove the master password.

Without --wipe the current master password is required and stored data is kept.
With --wipe no password is needed, but all profiles, secrets and keys are deleted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Без --wipe данные остаются, значит сброс разрешен только знающему пароль.
			// Забытый пароль сбрасывается только вместе с данными и ключами.
			var (
				app *App
				err error
			)
			if wipe {
				app, err = c.ensureApp(ctx)
			} else {
				app, err = c.unlock(ctx)
				if errors.Is(err, gate.ErrAuthenticationFailed) {
					return fmt.Errorf("%w. Forgot the password? Run 'passkeeper reset --wipe' to delete all data", err)
				}
			}
			if err != nil {
				return err
			}

			c.io.Println("=== Reset ===")
			c.io.Println()
			if wipe {
				c.io.Println("⚠️  All profiles, secrets and encryption keys will be deleted.")
			} else {
				c.io.Println("⚠️  The master password will be removed. Stored data is kept.")
			}

			if !yes {
				answer, err := c.io.ReadInput("Type 'yes' to confirm: ")
				if err != nil {
					return fmt.Errorf("failed to read confirmation: %w", err)
				}
				if !strings.EqualFold(answer, "yes") {
					c.io.Println("Reset cancelled")
					return nil
				}
			}

			if wipe {
				if err := app.Vault.Wipe(ctx); err != nil {
					return fmt.Errorf("failed to wipe vault: %w", err)
				}
				for _, alias := range app.KeyAliases {
					if err := app.Keys.DeleteKey(ctx, alias); err != nil {
						return fmt.Errorf("failed to delete key %s: %w", alias, err)
					}
				}
			}

			if err := app.Gate.Reset(ctx); err != nil {
				return err
			}

			c.io.Println("✓ Reset complete")
			return nil
		},
	}

	cmd.Flags().BoolVar(&wipe, "wipe", false, "Also delete all profiles, secrets and keys")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func enabledString(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
