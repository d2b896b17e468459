package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/iudanet/passkeeper/internal/autofill"
)

// fillInput описание формы: дерево узлов экрана и идентификатор приложения
type fillInput struct {
	AppID string           `json:"app_id"`
	Nodes []*autofill.Node `json:"nodes"`
}

func (c *Cli) autofillCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autofill",
		Short: "Match login forms with profiles and resolve fill values",
	}
	cmd.AddCommand(c.autofillFillCommand(), c.autofillResolveCommand())
	return cmd
}

func (c *Cli) autofillFillCommand() *cobra.Command {
	var (
		input string
		appID string
	)

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Find login fields in a form (JSON) and suggest profiles",
		Long: `Reads a form description as JSON:

  {"app_id": "com.example.app", "nodes": [{"id": "f1", "input_type": 129, "children": []}]}

and prints the detected fields and datasets with placeholder values and handles.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			req, err := readFillInput(cmd.InOrStdin(), input)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("app-id") {
				req.AppID = appID
			}

			app, err := c.ensureApp(ctx)
			if err != nil {
				return err
			}

			roots := make([]autofill.ViewNode, 0, len(req.Nodes))
			for _, n := range req.Nodes {
				if n != nil {
					roots = append(roots, n)
				}
			}

			resp, err := app.Matcher.Fill(ctx, autofill.FillRequest{AppID: req.AppID, Roots: roots})
			if err != nil {
				return err
			}
			return c.writeJSON(resp)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "Form JSON file ('-' reads stdin)")
	cmd.Flags().StringVar(&appID, "app-id", "", "Requesting application id (overrides app_id from input)")
	return cmd
}

func (c *Cli) autofillResolveCommand() *cobra.Command {
	var passphrase string

	cmd := &cobra.Command{
		Use:   "resolve <handle>",
		Short: "Unlock and resolve real fill values for a dataset handle",
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

			res, err := app.Resolver.Resolve(ctx, args[0], phrase)
			if err != nil {
				return err
			}
			return c.writeJSON(res)
		},
	}

	cmd.Flags().StringVar(&passphrase, "passphrase", "", "Profile passphrase (prompted if empty)")
	return cmd
}

func readFillInput(stdin io.Reader, path string) (*fillInput, error) {
	r := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var in fillInput
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("failed to parse form JSON: %w", err)
	}
	return &in, nil
}

func (c *Cli) writeJSON(v any) error {
	enc := json.NewEncoder(c.io)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
