package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/fieldops/fieldforms/internal/config"
	"github.com/fieldops/fieldforms/internal/service"
	"github.com/fieldops/fieldforms/internal/upload"
)

type UploadOptions struct {
	GlobalOptions
}

func DefaultUploadOptions() *UploadOptions {
	return &UploadOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdUpload() *cobra.Command {
	o := DefaultUploadOptions()
	cmd := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload an FSO document and add the processed order to the feed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *UploadOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
}

func (o *UploadOptions) Run(ctx context.Context, args []string) error {
	s, err := o.Store()
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	opts := []upload.Option{}
	if cfg, err := config.New(); err == nil {
		opts = append(opts,
			upload.WithMaxFileSize(cfg.Service.MaxUploadSize),
			upload.WithTickInterval(cfg.Service.UploadTick),
			upload.WithProcessDelay(cfg.Service.UploadProcessDelay),
		)
	}

	flow := upload.NewSession(
		&upload.FilesystemPicker{Path: args[0]},
		upload.NewMockProcessor(),
		opts...,
	)

	picked := flow.PickPDFDocument(ctx)
	if !picked.Success {
		return fmt.Errorf("%s", picked.Error)
	}
	fmt.Printf("Selected %s\n", picked.FileName)

	resp := flow.UploadFile(ctx, *flow.SelectedFile())
	if !resp.Success {
		return fmt.Errorf("%s", resp.Message)
	}

	created, err := service.NewFSOService(s, nil).ProcessUpload(ctx, resp)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", resp.Message)
	fmt.Printf("Created %s (%s, %s)\n", created.ID, created.OrderNumber, service.FormatFileSize(created.FileSize))
	return nil
}
