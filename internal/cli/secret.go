package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/passkeeper/internal/crypto"
	"github.com/iudanet/passkeeper/internal/models"
	"github.com/iudanet/passkeeper/internal/vault"
)

type secretFlags struct {
	title    string
	website  string
	username string
	notes    string
	category string
	generate bool
}

func (f *secretFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.title, "title", "", "Secret title")
	flags.StringVar(&f.website, "website", "", "Website address")
	flags.StringVar(&f.username, "username", "", "Login or email")
	flags.StringVar(&f.notes, "notes", "", "Notes")
	flags.StringVar(&f.category, "category", "", "Category (default \"General\")")
	flags.BoolVar(&f.generate, "generate", false, "Generate a random password instead of prompting")
}

// apply переносит явно заданные флаги во входные данные
func (f *secretFlags) apply(cmd *cobra.Command, in *vault.SecretInput) {
	flags := cmd.Flags()
	if flags.Changed("title") {
		in.Title = f.title
	}
	if flags.Changed("website") {
		in.Website = f.website
	}
	if flags.Changed("username") {
		in.Username = f.username
	}
	if flags.Changed("notes") {
		in.Notes = f.notes
	}
	if flags.Changed("category") {
		in.Category = f.category
	}
}

func (c *Cli) secretCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage stored secrets (passwords encrypted at rest)",
	}
	cmd.AddCommand(
		c.secretAddCommand(),
		c.secretListCommand(),
		c.secretGetCommand(),
		c.secretUpdateCommand(),
		c.secretRevealCommand(),
		c.secretDeleteCommand(),
	)
	return cmd
}

func (c *Cli) secretAddCommand() *cobra.Command {
	var f secretFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := c.unlock(ctx)
			if err != nil {
				return err
			}

			var in vault.SecretInput
			f.apply(cmd, &in)

			if in.Title == "" {
				title, err := c.io.ReadInput("Title: ")
				if err != nil {
					return fmt.Errorf("failed to read title: %w", err)
				}
				in.Title = title
			}

			in.Password, err = c.secretPassword(f.generate)
			if err != nil {
				return err
			}

			secret, err := app.Vault.AddSecret(ctx, in)
			if err != nil {
				return fmt.Errorf("failed to add secret: %w", err)
			}

			c.io.Println("✓ Secret saved")
			c.io.Printf("ID: %s\n", secret.ID)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func (c *Cli) secretUpdateCommand() *cobra.Command {
	var (
		f           secretFlags
		newPassword bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update secret fields given as flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := c.unlock(ctx)
			if err != nil {
				return err
			}

			secret, err := c.findSecret(ctx, app, args[0])
			if err != nil {
				return err
			}

			in := vault.SecretInput{
				Title:    secret.Title,
				Website:  secret.Website,
				Username: secret.Username,
				Notes:    secret.Notes,
				Category: secret.Category,
			}
			f.apply(cmd, &in)

			// Пустой пароль оставляет сохраненный
			if newPassword || f.generate {
				in.Password, err = c.secretPassword(f.generate)
				if err != nil {
					return err
				}
			}

			if _, err := app.Vault.UpdateSecret(ctx, secret.ID, in); err != nil {
				return fmt.Errorf("failed to update secret: %w", err)
			}

			c.io.Println("✓ Secret updated")
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVar(&newPassword, "password", false, "Prompt for a new password")
	return cmd
}

func (c *Cli) secretListCommand() *cobra.Command {
	var (
		category string
		search   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List secrets (passwords are not shown)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := c.unlock(ctx)
			if err != nil {
				return err
			}

			var secrets []*models.StoredSecret
			switch {
			case search != "":
				secrets, err = app.Vault.SearchSecrets(ctx, search)
			case category != "":
				secrets, err = app.Vault.ListSecretsByCategory(ctx, category)
			default:
				secrets, err = app.Vault.ListSecrets(ctx)
			}
			if err != nil {
				return fmt.Errorf("failed to list secrets: %w", err)
			}

			c.printSecrets(secrets)
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Show only secrets of this category")
	cmd.Flags().StringVar(&search, "search", "", "Search by title, website or username")
	return cmd
}

func (c *Cli) secretGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show secret details (without the password)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := c.unlock(ctx)
			if err != nil {
				return err
			}

			secret, err := c.findSecret(ctx, app, args[0])
			if err != nil {
				return err
			}

			c.printSecret(secret)
			return nil
		},
	}
}

func (c *Cli) secretRevealCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <id>",
		Short: "Decrypt and print the password of a secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := c.unlock(ctx)
			if err != nil {
				return err
			}

			password, found, err := app.Vault.RevealPassword(ctx, args[0])
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("secret not found: %s", args[0])
			}

			c.io.Println(password)
			return nil
		},
	}
}

func (c *Cli) secretDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := c.unlock(ctx)
			if err != nil {
				return err
			}

			found, err := app.Vault.DeleteSecret(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete secret: %w", err)
			}
			if !found {
				return fmt.Errorf("secret not found: %s", args[0])
			}

			c.io.Println("✓ Secret deleted")
			return nil
		},
	}
}

// secretPassword генерирует пароль или спрашивает его у пользователя
func (c *Cli) secretPassword(generate bool) (string, error) {
	if generate {
		password, err := crypto.GeneratePassword(crypto.DefaultPolicy())
		if err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		c.io.Println("Generated a random password")
		return password, nil
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", vault.ErrEmptyPassword
	}
	return password, nil
}

func (c *Cli) findSecret(ctx context.Context, app *App, id string) (*models.StoredSecret, error) {
	secret, found, err := app.Vault.GetSecret(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get secret: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("secret not found: %s", id)
	}
	return secret, nil
}
