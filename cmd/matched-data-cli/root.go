package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// envPrefix is prepended to upper-cased flag names when looking up
// flag defaults from the environment.
const envPrefix = "MATCHED_DATA"

// newRootCmd assembles the command tree. A fresh tree is built per
// invocation so tests can execute commands independently.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "matched-data-cli",
		Short: "Generate key pairs and decrypt firewall matched data",
		Long: `matched-data-cli works with the encrypted "matched data" blobs produced
by the firewall's payload-logging feature.

Use generate-key-pair to create the key pair payload logging encrypts
against, and decrypt to recover the logged payload from a blob using
the matching private key.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newGenerateKeyPairCmd())
	rootCmd.AddCommand(newDecryptCmd())

	for _, command := range rootCmd.Commands() {
		setFlagsFromEnv(envPrefix, command.Flags())
	}

	return rootCmd
}

// setFlagsFromEnv fills in defaults for flags that were not given on
// the command line from PREFIX_FLAG_NAME environment variables.
func setFlagsFromEnv(prefix string, fs *pflag.FlagSet) {
	set := map[string]bool{}
	fs.Visit(func(f *pflag.Flag) {
		set[f.Name] = true
	})
	fs.VisitAll(func(f *pflag.Flag) {
		if set[f.Name] {
			return
		}
		name := fmt.Sprintf("%s_%s", prefix, strings.ReplaceAll(strings.ToUpper(f.Name), "-", "_"))
		if v, ok := os.LookupEnv(name); ok {
			_ = f.Value.Set(v)
		}
	})
}
