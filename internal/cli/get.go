package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"

	api "github.com/fieldops/fieldforms/api/v1alpha1"
	"github.com/fieldops/fieldforms/internal/service"
)

const (
	jsonFormat = "json"
)

var (
	legalOutputTypes = []string{jsonFormat}
)

type GetOptions struct {
	GlobalOptions

	Output string
	Status string
}

func DefaultGetOptions() *GetOptions {
	return &GetOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdGet() *cobra.Command {
	o := DefaultGetOptions()
	cmd := &cobra.Command{
		Use:   "get (TYPE | TYPE/ID)",
		Short: "Display one or many resources.",
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

func (o *GetOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
	fs.StringVar(&o.Status, "status", o.Status, "Filter fso records by status (pending, processing, completed, failed).")
}

func (o *GetOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}

	_, _, err := parseAndValidateKindId(args[0])
	if err != nil {
		return err
	}

	if len(o.Output) > 0 && !funk.Contains(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}

	return nil
}

func (o *GetOptions) Run(ctx context.Context, args []string) error {
	s, err := o.Store()
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	kind, id, err := parseAndValidateKindId(args[0])
	if err != nil {
		return err
	}

	switch {
	case kind == FormsKind && id == "":
		forms, err := service.NewFormService(s, nil).ListForms(ctx)
		if err != nil {
			return err
		}
		return o.printForms(forms)
	case kind == FormsKind:
		form, err := service.NewFormService(s, nil).GetForm(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(form)
	case kind == FSOKind && id == "":
		status := api.FSOStatus("")
		if o.Status != "" {
			status = api.StringToFSOStatus(o.Status)
		}
		fsos, err := service.NewFSOService(s, nil).ListByStatus(ctx, status)
		if err != nil {
			return err
		}
		return o.printFSOs(fsos)
	default:
		detail, err := service.NewFSOService(s, nil).GetDetail(ctx, id)
		if err != nil {
			return err
		}
		return o.printFSODetail(detail)
	}
}

func (o *GetOptions) printForms(forms []api.StoredForm) error {
	if o.Output == jsonFormat {
		return printJSON(forms)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tORDER\tCLIENT\tTECHNICIAN\tSTATUS\tCREATED")
	for _, form := range forms {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			form.ID, form.OrderNumber, form.ClientName, form.TechnicianName,
			form.Status, service.FormatDate(form.CreatedAt))
	}
	return w.Flush()
}

func (o *GetOptions) printFSOs(fsos []api.FSOData) error {
	if o.Output == jsonFormat {
		return printJSON(fsos)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tORDER\tCLIENT\tSTATUS\tFILE\tSIZE\tUPLOADED")
	for _, fso := range fsos {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			fso.ID, fso.OrderNumber, fso.ClientName, fso.Status,
			fso.FileName, service.FormatFileSize(fso.FileSize), service.FormatDate(fso.UploadedAt))
	}
	return w.Flush()
}

func (o *GetOptions) printFSODetail(detail *api.FSODetailData) error {
	if o.Output == jsonFormat {
		return printJSON(detail)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%s\n", detail.ID)
	fmt.Fprintf(w, "Order:\t%s\n", detail.OrderNumber)
	fmt.Fprintf(w, "Client:\t%s\n", detail.ClientName)
	fmt.Fprintf(w, "Phone:\t%s\n", detail.ClientPhone)
	fmt.Fprintf(w, "Email:\t%s\n", detail.ClientEmail)
	fmt.Fprintf(w, "Address:\t%s\n", detail.Address)
	fmt.Fprintf(w, "Service:\t%s\n", detail.ServiceType)
	fmt.Fprintf(w, "Status:\t%s\n", detail.Status)
	fmt.Fprintf(w, "Technician:\t%s\n", detail.Technician)
	fmt.Fprintf(w, "Scheduled:\t%s\n", detail.ScheduleDate)
	fmt.Fprintf(w, "File:\t%s (%s)\n", detail.FileName, service.FormatFileSize(detail.FileSize))
	fmt.Fprintf(w, "Uploaded:\t%s\n", service.FormatDate(detail.UploadedAt))
	if detail.ProcessedAt != nil {
		fmt.Fprintf(w, "Processed:\t%s\n", service.FormatDate(*detail.ProcessedAt))
	}
	fmt.Fprintf(w, "Notes:\t%s\n", detail.Notes)
	fmt.Fprintf(w, "Attachments:\t%s\n", strings.Join(detail.Attachments, ", "))
	if detail.Coordinates != nil {
		fmt.Fprintf(w, "Coordinates:\t%f, %f\n", detail.Coordinates.Latitude, detail.Coordinates.Longitude)
	}
	return w.Flush()
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
