package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"subrewriter/internal/linkrewriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "SUBREWRITE"

// NewRootCmd builds the command tree. Every flag can also be set through a
// SUBREWRITE_<FLAG> environment variable (dashes become underscores).
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "subrewrite",
		Short: "Rewrite vless subscription links",
		Long: `subrewrite reads subscription text and rewrites every vless:// link in it:
the "proxyip" and "port(<digits>)" tokens inside the path parameter can be
overridden, and links can be re-pointed at a /sub endpoint on another host.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.PersistentFlags().StringP("loglevel", "l", "warn", "Set log level. Available: debug, info, warn, error")
	_ = v.BindPFlag("loglevel", root.PersistentFlags().Lookup("loglevel"))

	root.AddCommand(newConvertCmd(v))
	return root
}

// Execute is called by main.main().
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, linkrewriter.ErrNoLinks) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}
