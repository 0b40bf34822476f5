// main.go bootstraps csvtable: it builds the root cobra command and executes
// it with a signal-aware context.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"csvtable/internal/logging"
	"csvtable/internal/store"
	"csvtable/internal/store/filestore"
	"csvtable/internal/store/sqlstore"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the flag values shared by every subcommand.
type options struct {
	dir      string
	sqlite   string
	logLevel string

	logger *zap.Logger
}

// openStore picks the backend: a sqlite database when --sqlite is set,
// otherwise a directory on the local filesystem. The returned func releases
// the backend.
func (o *options) openStore() (store.Store, func() error, error) {
	if o.sqlite != "" {
		o.logger.Debug("opening sqlite store", zap.String("path", o.sqlite))
		s, err := sqlstore.Open(o.sqlite)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}
	o.logger.Debug("opening file store", zap.String("dir", o.dir))
	s, err := filestore.NewOS(o.dir)
	if err != nil {
		return nil, nil, err
	}
	return s, func() error { return nil }, nil
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "csvtable",
		Short:         "Inspect and convert CSV datasets held in a byte store",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.dir, "dir", ".", "directory holding CSV resources")
	cmd.PersistentFlags().StringVar(&opts.sqlite, "sqlite", "", "sqlite database to use instead of a directory")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newShowCommand(opts),
		newCheckCommand(opts),
		newCopyCommand(opts),
	)
	return cmd
}
