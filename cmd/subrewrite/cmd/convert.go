package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"subrewriter/internal/linkrewriter"
	"subrewriter/internal/logger"
	"subrewriter/internal/subscription"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newConvertCmd(v *viper.Viper) *cobra.Command {
	c := &cobra.Command{
		Use:   "convert [file|-]",
		Short: "Rewrite links read from a file, stdin or a subscription URL",
		Example: `  subrewrite convert links.txt --proxyip 1.2.3.4 --port 443
  subrewrite convert --source https://up.example/sub --host edge.example.com
  cat links.txt | subrewrite convert - --keep-duplicates`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, v, args)
		},
	}

	flags := c.Flags()
	flags.String("source", "", "Subscription URL to fetch instead of reading a file")
	flags.String("host", "", "Target host; when set links become https://<host>/sub?uuid=...")
	flags.String("proxyip", "", "Replacement for the proxyip token in path")
	flags.String("port", "", "Replacement for port(<digits>) tokens in path")
	flags.Bool("keep-duplicates", false, "Do not collapse identical output links")
	flags.Bool("require-host", false, "Fail when no target host is given")
	flags.Duration("timeout", 15*time.Second, "Fetch timeout")
	flags.Int("retry-max", 3, "Fetch retries")

	for _, name := range []string{"source", "host", "proxyip", "port", "keep-duplicates", "require-host", "timeout", "retry-max"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	return c
}

func runConvert(cmd *cobra.Command, v *viper.Viper, args []string) error {
	log := logger.New(cmd.ErrOrStderr(), v.GetString("loglevel"))

	dedup := linkrewriter.DedupUnique
	if v.GetBool("keep-duplicates") {
		dedup = linkrewriter.DedupPreserve
	}
	rewriter := linkrewriter.New(linkrewriter.Options{
		Dedup:             dedup,
		RequireTargetHost: v.GetBool("require-host"),
	})

	var (
		text string
		err  error
	)
	if source := v.GetString("source"); source != "" {
		fetcher := subscription.NewFetcher(subscription.Config{
			Timeout:  v.GetDuration("timeout"),
			RetryMax: v.GetInt("retry-max"),
		}, log)
		text, err = fetcher.Fetch(cmd.Context(), source)
	} else {
		text, err = readInput(cmd.InOrStdin(), args)
	}
	if err != nil {
		return err
	}

	links, err := rewriter.Rewrite(text, linkrewriter.Params{
		TargetHost: v.GetString("host"),
		ProxyIP:    v.GetString("proxyip"),
		Port:       v.GetString("port"),
	})
	if err != nil {
		return err
	}

	log.Debug().Int("links", len(links)).Msg("converted")

	out := cmd.OutOrStdout()
	for _, link := range links {
		if _, err := fmt.Fprintln(out, link); err != nil {
			return err
		}
	}
	return nil
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
