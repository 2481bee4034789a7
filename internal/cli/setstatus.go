package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"

	api "github.com/fieldops/fieldforms/api/v1alpha1"
	"github.com/fieldops/fieldforms/internal/service"
)

var legalFSOStatuses = []string{
	string(api.FSOStatusPending),
	string(api.FSOStatusProcessing),
	string(api.FSOStatusCompleted),
	string(api.FSOStatusFailed),
}

type SetStatusOptions struct {
	GlobalOptions
}

func DefaultSetStatusOptions() *SetStatusOptions {
	return &SetStatusOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdSetStatus() *cobra.Command {
	o := DefaultSetStatusOptions()
	cmd := &cobra.Command{
		Use:   "set-status FSO_ID STATUS",
		Short: "Change the status of an FSO record.",
		Args:  cobra.ExactArgs(2),
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

func (o *SetStatusOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
}

func (o *SetStatusOptions) Validate(args []string) error {
	if !funk.Contains(legalFSOStatuses, args[1]) {
		return fmt.Errorf("status must be one of %v", legalFSOStatuses)
	}
	return nil
}

func (o *SetStatusOptions) Run(ctx context.Context, args []string) error {
	s, err := o.Store()
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	fso, err := service.NewFSOService(s, nil).UpdateStatus(ctx, args[0], api.StringToFSOStatus(args[1]))
	if err != nil {
		return err
	}

	fmt.Printf("%s is now %s\n", fso.ID, fso.Status)
	if fso.ProcessedAt != nil {
		fmt.Printf("Processed at %s\n", service.FormatDate(*fso.ProcessedAt))
	}
	return nil
}
