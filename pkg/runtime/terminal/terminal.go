package terminal

import (
	"io"
	"os"

	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/client"
	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/runtime/terminal/commands"
	"github.com/prajjwalacharyatvs/DeltaOptima/pkg/runtime/terminal/export"

	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	analysis client.AnalysisService
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	// Analysis overrides the HTTP client built from the --api-url flag.
	Analysis client.AnalysisService
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		analysis: opts.Analysis,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deltaoptima",
		Short: "Databricks pipeline optimization assistant",
	}

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.analysis, cli.reporter))
	cmd.AddCommand(commands.NewProfilesCmd())

	return cmd
}
