package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Command собирает дерево команд. Флаги хранилищ переопределяют значения из окружения.
func (c *Cli) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "passkeeper",
		Short: "Local password manager with deterministic password derivation",
		Long: `passkeeper keeps credential profiles and encrypted secrets locally.

Master Password Priority (highest to lowest):
  1. PASSKEEPER_MASTER_PASSWORD environment variable
  2. --master-password-file (file path)
  3. --master-password (command line)
  4. Interactive prompt (fallback)`,
		Version:       c.version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("passkeeper\nVersion:    %s\nBuild Date: %s\nGit Commit: %s\n",
		c.version.Version, c.version.BuildDate, c.version.GitCommit))
	root.SetOut(c.io)

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfg.DBPath, "db", c.cfg.DBPath, "Path to profiles database")
	flags.StringVar(&c.cfg.VaultDBPath, "vault-db", c.cfg.VaultDBPath, "Path to secrets database")
	flags.StringVar(&c.cfg.DeviceSecretFile, "device-secret", c.cfg.DeviceSecretFile, "Path to device secret file")
	flags.StringVar(&c.passwords.FromArgs, "master-password", "", "Master password (not recommended, use env var or file)")
	flags.StringVar(&c.passwords.FromFile, "master-password-file", "", "Path to file containing master password")

	root.AddCommand(
		c.setupCommand(),
		c.statusCommand(),
		c.settingsCommand(),
		c.resetCommand(),
		c.profileCommand(),
		c.secretCommand(),
		c.generateCommand(),
		c.deriveCommand(),
		c.autofillCommand(),
	)

	return root
}
