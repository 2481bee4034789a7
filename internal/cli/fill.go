package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/fieldops/fieldforms/internal/client"
	"github.com/fieldops/fieldforms/internal/config"
	"github.com/fieldops/fieldforms/internal/events"
	"github.com/fieldops/fieldforms/internal/service"
	"github.com/fieldops/fieldforms/internal/session"
	"github.com/fieldops/fieldforms/internal/validation"
)

type FillOptions struct {
	GlobalOptions

	Mock  bool
	Draft bool
}

func DefaultFillOptions() *FillOptions {
	o := &FillOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Mock:          true,
	}
	if cfg, err := config.New(); err == nil {
		o.Mock = cfg.Service.UseMockSubmit
	}
	return o
}

func NewCmdFill() *cobra.Command {
	o := DefaultFillOptions()
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill out an inspection form step by step and submit it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), cmd.InOrStdin())
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *FillOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.BoolVar(&o.Mock, "mock", o.Mock, "Submit against the mock backend instead of the real one.")
	fs.BoolVar(&o.Draft, "draft", o.Draft, "Save a draft instead of submitting; blank answers skip a field and only the identifying fields are required.")
}

func (o *FillOptions) Run(ctx context.Context, in io.Reader) error {
	s, err := o.Store()
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	producer := events.NewEventProducer(&events.StdoutWriter{})
	defer producer.Close()

	forms := service.NewFormService(s, producer)
	sess := session.New(o.submitter(), session.WithPersistFunc(forms.PersistHook()))
	reader := bufio.NewReader(in)

	for {
		step := session.Steps[sess.CurrentStep()-1]
		fmt.Printf("\n[%d/%d] %s\n", sess.CurrentStep(), session.StepCount(), step.Name)

		for _, name := range step.Fields {
			if err := o.promptField(sess, reader, name); err != nil {
				return err
			}
		}

		if !o.Draft && !sess.IsCurrentStepValid() {
			fmt.Println("Hay campos incompletos en este paso.")
			continue
		}
		if sess.CurrentStep() == session.StepCount() {
			break
		}
		sess.NextStep()
	}

	if o.Draft {
		return o.saveDraft(ctx, forms, sess)
	}

	fmt.Println("\nEnviando formulario...")
	if sess.SubmitForm(ctx) {
		fmt.Println(sess.SubmitResult().Message)
		return nil
	}

	if result := sess.SubmitResult(); result != nil {
		return fmt.Errorf("%s", result.Message)
	}
	// Validation failed; the session jumped back to the offending step.
	for field, msg := range sess.Errors() {
		fmt.Printf("%s: %s\n", field, msg)
	}
	return fmt.Errorf("el formulario tiene errores de validación")
}

// saveDraft stores a partial payload behind the permissive gate the wizard
// uses for drafts. Only the identifying fields are mandatory.
func (o *FillOptions) saveDraft(ctx context.Context, forms *service.FormService, sess *session.Session) error {
	if !sess.CanSubmit() {
		for field, msg := range validation.ValidateFormForSubmission(sess.FormData()) {
			fmt.Printf("%s: %s\n", field, msg)
		}
		return fmt.Errorf("faltan los campos mínimos para guardar un borrador")
	}
	form, err := forms.SaveDraft(ctx, sess.FormData())
	if err != nil {
		return fmt.Errorf("guardando borrador: %w", err)
	}
	fmt.Printf("Borrador guardado: %s\n", form.ID)
	return nil
}

func (o *FillOptions) promptField(sess *session.Session, reader *bufio.Reader, name string) error {
	field, ok := validation.FieldByName(name)
	if !ok {
		return fmt.Errorf("unknown field %q", name)
	}

	for {
		fmt.Printf("%s: ", field.Label)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return err
		}
		line = strings.TrimSpace(line)
		if o.Draft && line == "" {
			return nil
		}

		var value any
		switch field.Kind {
		case validation.KindBool:
			value = line == "y" || line == "s" || line == "si" || line == "sí"
		case validation.KindPhone:
			n, convErr := strconv.ParseInt(line, 10, 64)
			if convErr != nil && line != "" {
				fmt.Println("Formato de teléfono inválido")
				continue
			}
			value = n
		default:
			value = line
		}

		if err := sess.UpdateField(name, value); err != nil {
			return err
		}
		if sess.ValidateSingleField(name) {
			return nil
		}
		fmt.Println(sess.Errors()[name])
	}
}

func (o *FillOptions) submitter() session.Submitter {
	if o.Mock {
		return client.NewMockSubmitter()
	}
	cfg, err := config.New()
	if err != nil {
		return client.NewMockSubmitter()
	}
	return client.NewHTTPSubmitter(cfg.Service.SubmitBaseURL, cfg.Service.SubmitTimeout)
}
