// Command svgpress uploads an SVG diagram to a GitHub repository and
// prints the resulting raw-content URL as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/diagramforge/svgpress"
)

// envPrefix scopes the environment variables viper binds flags to
// (e.g. SVGPRESS_OWNER, SVGPRESS_REPO).
const envPrefix = "SVGPRESS"

// output is the payload printed on success.
type output struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	HTMLURL string `json:"html_url"`
	Commit  string `json:"commit"`
	Path    string `json:"path"`
	Owner   string `json:"owner"`
	Repo    string `json:"repo"`
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "svgpress",
		Short: "Upload an SVG diagram to a GitHub repository",
		Long: `svgpress uploads SVG content to a GitHub repository through the
contents API and prints the raw-content URL for embedding.

The token is resolved from GITHUB_TOKEN, falling back to "gh auth token"
when the GitHub CLI is installed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.String("file", "-", "SVG file to upload; \"-\" reads stdin")
	flags.String("path", "", "repository path for the uploaded file (required)")
	flags.String("owner", "", "repository owner")
	flags.String("repo", "", "repository name")
	flags.StringP("message", "m", "", "commit message")
	flags.String("workdir", "", "staging directory for temporary files")
	flags.String("api-base", "", "GitHub API base URL (GitHub Enterprise)")
	flags.Duration("timeout", 30*time.Second, "per-request HTTP timeout")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	_ = cmd.MarkFlagRequired("path")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(flags)

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	// A .env in the working directory is a convenience, not a requirement.
	_ = godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if v.GetBool("verbose") {
		log = log.Level(zerolog.DebugLevel)
	}

	content, err := readContent(v.GetString("file"), cmd.InOrStdin())
	if err != nil {
		return err
	}

	opts := []svgpress.Option{
		svgpress.WithLogger(log),
		svgpress.WithTimeout(v.GetDuration("timeout")),
	}
	if base := v.GetString("api-base"); base != "" {
		opts = append(opts, svgpress.WithAPIBaseURL(base))
	}
	if dir := v.GetString("workdir"); dir != "" {
		opts = append(opts, svgpress.WithWorkDir(dir))
	}
	if owner, repo := v.GetString("owner"), v.GetString("repo"); owner != "" || repo != "" {
		opts = append(opts, svgpress.WithDefaultRepository(owner, repo))
	}

	up := svgpress.New(opts...)

	result, err := up.Upload(context.Background(), svgpress.Request{
		Content: string(content),
		Owner:   v.GetString("owner"),
		Repo:    v.GetString("repo"),
		Path:    v.GetString("path"),
		Message: v.GetString("message"),
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(output{
		Success: true,
		URL:     result.RawURL,
		HTMLURL: result.HTMLURL,
		Commit:  result.CommitSHA,
		Path:    result.Path,
		Owner:   result.Owner,
		Repo:    result.Repo,
	})
}

// readContent loads the SVG text from a file, or from stdin when name
// is "-".
func readContent(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}
