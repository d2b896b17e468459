package cli

import (
	"github.com/spf13/cobra"

	"github.com/iudanet/passkeeper/internal/crypto"
	"github.com/iudanet/passkeeper/internal/models"
)

func (c *Cli) generateCommand() *cobra.Command {
	var (
		policy    = crypto.DefaultPolicy()
		noUpper   bool
		noLower   bool
		noNumbers bool
		noSymbols bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password and show its strength",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			policy.Upper = !noUpper
			policy.Lower = !noLower
			policy.Numbers = !noNumbers
			policy.Symbols = !noSymbols

			password, err := crypto.GeneratePassword(policy)
			if err != nil {
				return err
			}

			c.io.Println(password)
			c.io.Printf("Strength: %s\n", crypto.ScorePassword(password))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&policy.Length, "length", "l", policy.Length, "Password length")
	flags.BoolVar(&noUpper, "no-upper", false, "Exclude uppercase letters")
	flags.BoolVar(&noLower, "no-lower", false, "Exclude lowercase letters")
	flags.BoolVar(&noNumbers, "no-numbers", false, "Exclude digits")
	flags.BoolVar(&noSymbols, "no-symbols", false, "Exclude symbols")
	return cmd
}

// deriveCommand выводит пароль без профиля, хранилище не открывается
func (c *Cli) deriveCommand() *cobra.Command {
	var (
		length     int
		passphrase string
	)

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive a deterministic password from a passphrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase, err := c.readPassphrase(passphrase)
			if err != nil {
				return err
			}

			password, err := crypto.DerivePassword(phrase, length, crypto.DeriveOptions{})
			if err != nil {
				return err
			}

			c.io.Println(password)
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", models.DefaultPasswordLength, "Password length")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "Passphrase (prompted if empty)")
	return cmd
}
