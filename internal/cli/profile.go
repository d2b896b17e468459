package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/passkeeper/internal/models"
)

type profileFlags struct {
	title        string
	website      string
	username     string
	notes        string
	category     string
	specialChars string
	length       int
	useSpecial   bool
}

func (f *profileFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.title, "title", "", "Profile title (e.g. 'GitHub')")
	flags.StringVar(&f.website, "website", "", "Website domain or app identifier")
	flags.StringVar(&f.username, "username", "", "Login or email")
	flags.StringVar(&f.notes, "notes", "", "Notes")
	flags.StringVar(&f.category, "category", "", "Category (default \"General\")")
	flags.StringVar(&f.specialChars, "special-chars", models.DefaultSpecialChars, "Special characters set")
	flags.IntVar(&f.length, "length", models.DefaultPasswordLength, "Derived password length (1-128)")
	flags.BoolVar(&f.useSpecial, "use-special", true, "Use special characters")
}

// apply переносит в профиль только явно заданные флаги
func (f *profileFlags) apply(cmd *cobra.Command, p *models.CredentialProfile) {
	flags := cmd.Flags()
	if flags.Changed("title") {
		p.Title = f.title
	}
	if flags.Changed("website") {
		p.Website = f.website
	}
	if flags.Changed("username") {
		p.Username = f.username
	}
	if flags.Changed("notes") {
		p.Notes = f.notes
	}
	if flags.Changed("category") {
		p.Category = f.category
	}
	if flags.Changed("special-chars") {
		p.SpecialChars = f.specialChars
	}
	if flags.Changed("length") {
		p.PasswordLength = f.length
	}
	if flags.Changed("use-special") {
		p.UseSpecialChars = f.useSpecial
	}
}

func (c *Cli) profileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage credential profiles (passwords derived from a passphrase)",
	}
	cmd.AddCommand(
		c.profileAddCommand(),
		c.profileListCommand(),
		c.profileGetCommand(),
		c.profileSearchCommand(),
		c.profileUpdateCommand(),
		c.profileDeleteCommand(),
		c.profileDeriveCommand(),
	)
	return cmd
}

func (c *Cli) profileAddCommand() *cobra.Command {
	var f profileFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a credential profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := c.unlock(ctx)
			if err != nil {
				return err
			}

			p := models.NewCredentialProfile("", "", "")
			f.apply(cmd, p)

			if p.Title == "" {
				title, err := c.io.ReadInput("Title (e.g., 'GitHub', 'Gmail'): ")
				if err != nil {
					return fmt.Errorf("failed to read title: %w", err)
				}
				p.Title = title
			}

			if err := app.Vault.AddProfile(ctx, p); err != nil {
				return fmt.Errorf("failed to add profile: %w", err)
			}

			c.io.Println("✓ Profile saved")
			c.io.Printf("ID: %s\n", p.ID)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func (c *Cli) profileListCommand() *cobra.Command {
	var (
		category   string
		categories bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List credential profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := c.unlock(ctx)
			if err != nil {
				return err
			}

			if categories {
				names, err := app.Vault.ListCategories(ctx)
				if err != nil {
					return fmt.Errorf("failed to list categories: %w", err)
				}
				for _, name := range names {
					c.io.Println(name)
				}
				return nil
			}

			var profiles []*models.CredentialProfile
			if category != "" {
				profiles, err = app.Vault.ListProfilesByCategory(ctx, category)
			} else {
				profiles, err = app.Vault.ListProfiles(ctx)
			}
			if err != nil {
				return fmt.Errorf("failed to list profiles: %w", err)
			}

			c.printProfiles(profiles)
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Show only profiles of this category")
	cmd.Flags().BoolVar(&categories, "categories", false, "List categories instead of profiles")
	return cmd
}

func (c *Cli) profileSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search profiles by title, website or username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := c.unlock(ctx)
			if err != nil {
				return err
			}

			profiles, err := app.Vault.SearchProfiles(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to search profiles: %w", err)
			}

			c.printProfiles(profiles)
			return nil
		},
	}
}

func (c *Cli) profileGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show profile details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := c.unlock(ctx)
			if err != nil {
				return err
			}

			p, err := c.findProfile(ctx, app, args[0])
			if err != nil {
				return err
			}

			c.printProfile(p)
			return nil
		},
	}
}

func (c *Cli) profileUpdateCommand() *cobra.Command {
	var f profileFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update profile fields given as flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := c.unlock(ctx)
			if err != nil {
				return err
			}

			p, err := c.findProfile(ctx, app, args[0])
			if err != nil {
				return err
			}

			f.apply(cmd, p)
			if err := app.Vault.UpdateProfile(ctx, p); err != nil {
				return fmt.Errorf("failed to update profile: %w", err)
			}

			c.io.Println("✓ Profile updated")
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func (c *Cli) profileDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := c.unlock(ctx)
			if err != nil {
				return err
			}

			found, err := app.Vault.DeleteProfile(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete profile: %w", err)
			}
			if !found {
				return fmt.Errorf("profile not found: %s", args[0])
			}

			c.io.Println("✓ Profile deleted")
			return nil
		},
	}
}

func (c *Cli) profileDeriveCommand() *cobra.Command {
	var passphrase string

	cmd := &cobra.Command{
		Use:   "derive <id>",
		Short: "Derive the password of a profile from a passphrase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := c.unlock(ctx)
			if err != nil {
				return err
			}

			phrase, err := c.readPassphrase(passphrase)
			if err != nil {
				return err
			}

			password, err := app.Vault.DeriveForProfile(ctx, args[0], phrase)
			if err != nil {
				return fmt.Errorf("failed to derive password: %w", err)
			}

			c.io.Println(password)
			return nil
		},
	}
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "Passphrase (prompted if empty)")
	return cmd
}

func (c *Cli) findProfile(ctx context.Context, app *App, id string) (*models.CredentialProfile, error) {
	p, found, err := app.Vault.GetProfile(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("profile not found: %s", id)
	}
	return p, nil
}
