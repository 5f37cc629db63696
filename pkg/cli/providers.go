package cli

import (
	"fmt"

	"github.com/getmockd/seedgen/pkg/ai"
	"github.com/getmockd/seedgen/pkg/cli/internal/output"
	"github.com/getmockd/seedgen/pkg/cliconfig"
	"github.com/spf13/cobra"
)

var providersJSON bool

// ProviderInfo describes one supported model provider.
type ProviderInfo struct {
	Name          string `json:"name"`
	DefaultModel  string `json:"defaultModel"`
	Endpoint      string `json:"endpoint"`
	CredentialKey string `json:"credentialKey,omitempty"`
}

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List supported model providers",
	Long: `List the model providers seedgen can call, with the default model and the
config key each one reads its API key from.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		infos := listProviders()

		if providersJSON {
			return output.JSON(cmd.OutOrStdout(), infos)
		}

		w := output.Table(cmd.OutOrStdout())
		fmt.Fprintln(w, "PROVIDER\tDEFAULT MODEL\tCONFIG KEY")
		for _, p := range infos {
			key := p.CredentialKey
			if key == "" {
				key = "(none)"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.DefaultModel, key)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(providersCmd)
	providersCmd.Flags().BoolVar(&providersJSON, "json", false, "Output as JSON")
}

func listProviders() []ProviderInfo {
	names := ai.SupportedProviders()
	infos := make([]ProviderInfo, 0, len(names))
	for _, name := range names {
		cfg := &ai.Config{Provider: name}
		cfg.ApplyDefaults()
		infos = append(infos, ProviderInfo{
			Name:          name,
			DefaultModel:  cfg.Model,
			Endpoint:      cfg.Endpoint,
			CredentialKey: cliconfig.CredentialKey(name),
		})
	}
	return infos
}
