package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/vetform/pkg/field"
	"github.com/dmitrymomot/vetform/pkg/livecheck"
)

// errInvalid makes the process exit with status 1 without printing it.
var errInvalid = errors.New("value is invalid")

var (
	checkKind      string
	checkNow       string
	checkJSON      bool
	checkNormalize bool
)

var checkCmd = &cobra.Command{
	Use:   "check <campo> <valor>",
	Short: "Valida un valor",
	Long: `Clasifica el campo por su nombre y tipo y valida el valor con las
mismas reglas del servidor. El tipo por defecto es el del formulario que
declara el campo, o "text".

Termina con código 1 cuando el valor bloquea el envío.`,
	Example: `  vetform check peso 150
  vetform check correo "ana@clinica" --kind email
  vetform check fecha_hora 2026-10-25T10:00 --now 2026-10-19T12:00:00-03:00`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkKind, "kind", "", "tipo del input (text, tel, email, number, datetime-local)")
	checkCmd.Flags().StringVar(&checkNow, "now", "", "hora actual en RFC3339 para validar citas")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "salida en JSON")
	checkCmd.Flags().BoolVar(&checkNormalize, "normalize", false, "aplica el formato de entrada antes de validar")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	var opts []field.Option
	if checkNow != "" {
		now, err := time.Parse(time.RFC3339, checkNow)
		if err != nil {
			return fmt.Errorf("invalid --now: %w", err)
		}
		opts = append(opts, field.WithClock(func() time.Time { return now }))
	}

	d, err := setup(cmd.Context(), opts...)
	if err != nil {
		return err
	}

	kind := checkKind
	if kind == "" {
		kind = livecheck.DefaultCatalogue().Kind(args[0])
	}
	input := field.NewInput(args[0], kind, args[1])
	if checkNormalize {
		field.Normalize(d.checker.Classify(input), input)
	}

	cat, out := d.checker.Check(input)
	message := d.translator.Outcome(d.app.Lang, out)

	if checkJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(livecheck.CheckResult{
			Field:    input.Name(),
			Category: cat.String(),
			Severity: out.Severity.String(),
			Message:  message,
			Value:    input.Value(),
		}); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %s\n", input.Name(), cat, out.Severity)
		if message != "" {
			fmt.Fprintln(cmd.OutOrStdout(), message)
		}
	}

	if out.Blocks() {
		return errInvalid
	}
	return nil
}
