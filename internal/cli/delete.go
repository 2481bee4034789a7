package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/fieldops/fieldforms/internal/service"
)

type DeleteOptions struct {
	GlobalOptions
}

func DefaultDeleteOptions() *DeleteOptions {
	return &DeleteOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdDelete() *cobra.Command {
	o := DefaultDeleteOptions()
	cmd := &cobra.Command{
		Use:   "delete TYPE/ID",
		Short: "Delete a stored form.",
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

func (o *DeleteOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)
}

func (o *DeleteOptions) Validate(args []string) error {
	kind, id, err := parseAndValidateKindId(args[0])
	if err != nil {
		return err
	}
	if kind != FormsKind {
		return fmt.Errorf("only %s can be deleted", FormsKind)
	}
	if id == "" {
		return fmt.Errorf("missing id in %q", args[0])
	}
	return nil
}

func (o *DeleteOptions) Run(ctx context.Context, args []string) error {
	s, err := o.Store()
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	_, id, err := parseAndValidateKindId(args[0])
	if err != nil {
		return err
	}

	if err := service.NewFormService(s, nil).DeleteForm(ctx, id); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", id)
	return nil
}
