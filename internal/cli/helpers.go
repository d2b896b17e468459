package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/iudanet/passkeeper/internal/models"
)

const timeLayout = "2006-01-02 15:04"

func (c *Cli) printProfiles(profiles []*models.CredentialProfile) {
	if len(profiles) == 0 {
		c.io.Println("No profiles found.")
		return
	}

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tWEBSITE\tUSERNAME\tCATEGORY")
	for _, p := range profiles {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Title, orDash(p.Website), orDash(p.Username), p.Category)
	}
	_ = w.Flush()

	c.io.Println()
	c.io.Printf("Total: %d profile(s)\n", len(profiles))
}

func (c *Cli) printProfile(p *models.CredentialProfile) {
	c.io.Println("=== Profile ===")
	c.io.Printf("ID:              %s\n", p.ID)
	c.io.Printf("Title:           %s\n", p.Title)
	c.io.Printf("Website:         %s\n", orDash(p.Website))
	c.io.Printf("Username:        %s\n", orDash(p.Username))
	c.io.Printf("Category:        %s\n", p.Category)
	c.io.Printf("Password length: %d\n", p.PasswordLength)
	c.io.Printf("Special chars:   %t (%s)\n", p.UseSpecialChars, p.SpecialChars)
	if p.Notes != "" {
		c.io.Printf("Notes:           %s\n", p.Notes)
	}
	c.io.Printf("Created:         %s\n", formatTime(p.CreatedAt))
	c.io.Printf("Updated:         %s\n", formatTime(p.UpdatedAt))
}

func (c *Cli) printSecrets(secrets []*models.StoredSecret) {
	if len(secrets) == 0 {
		c.io.Println("No secrets found.")
		return
	}

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tWEBSITE\tUSERNAME\tCATEGORY")
	for _, s := range secrets {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Title, orDash(s.Website), orDash(s.Username), s.Category)
	}
	_ = w.Flush()

	c.io.Println()
	c.io.Printf("Total: %d secret(s)\n", len(secrets))
}

// printSecret выводит метаданные секрета, пароль показывает только reveal
func (c *Cli) printSecret(s *models.StoredSecret) {
	c.io.Println("=== Secret ===")
	c.io.Printf("ID:       %s\n", s.ID)
	c.io.Printf("Title:    %s\n", s.Title)
	c.io.Printf("Website:  %s\n", orDash(s.Website))
	c.io.Printf("Username: %s\n", orDash(s.Username))
	c.io.Printf("Category: %s\n", s.Category)
	c.io.Println("Password: ********")
	if s.Notes != "" {
		c.io.Printf("Notes:    %s\n", s.Notes)
	}
	c.io.Printf("Created:  %s\n", formatTime(s.CreatedAt))
	c.io.Printf("Updated:  %s\n", formatTime(s.UpdatedAt))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatTime(t time.Time) string {
	return t.Local().Format(timeLayout)
}
