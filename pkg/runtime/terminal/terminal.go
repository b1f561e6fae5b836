package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/yzxotic23-commits/nexsight/pkg/runtime/terminal/commands"
	"github.com/yzxotic23-commits/nexsight/pkg/runtime/terminal/export"
	"github.com/yzxotic23-commits/nexsight/pkg/services/rental"
	"github.com/yzxotic23-commits/nexsight/pkg/services/wealth"
)

// CLI represents the command-line interface
type CLI struct {
	wealth   wealth.Service
	rentals  rental.Service
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Wealth  wealth.Service
	Rentals rental.Service
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		wealth:   opts.Wealth,
		rentals:  opts.Rentals,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nexsight",
		Short: "Financial operations reporting tool",
	}

	cmd.AddCommand(commands.NewWealthCmd(cli.wealth, cli.reporter))
	cmd.AddCommand(commands.NewRentalsCmd(cli.rentals, cli.reporter))

	return cmd
}
