package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/fieldops/fieldforms/internal/config"
	"github.com/fieldops/fieldforms/internal/kv"
	"github.com/fieldops/fieldforms/internal/store"
)

type GlobalOptions struct {
	StorageDriver string
	StoragePath   string
}

func DefaultGlobalOptions() GlobalOptions {
	opts := GlobalOptions{
		StorageDriver: kv.DriverBadger,
	}
	if cfg, err := config.New(); err == nil {
		opts.StorageDriver = cfg.Storage.Driver
		opts.StoragePath = cfg.Storage.Path
	}
	return opts
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.StorageDriver, "storage-driver", o.StorageDriver, "Storage driver. One of: (badger, pebble, sqlite, memory).")
	fs.StringVar(&o.StoragePath, "storage-path", o.StoragePath, "Location of the local data store.")
}

func (o *GlobalOptions) Complete(cmd *cobra.Command, args []string) error {
	return nil
}

func (o *GlobalOptions) Validate(args []string) error {
	return nil
}

func (o *GlobalOptions) Store() (store.Store, error) {
	db, err := kv.Open(o.StorageDriver, o.StoragePath)
	if err != nil {
		return nil, err
	}
	return store.NewStore(db), nil
}
