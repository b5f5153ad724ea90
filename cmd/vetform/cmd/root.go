// Package cmd holds the vetform command line.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/vetform/pkg/config"
)

var envFiles []string

var rootCmd = &cobra.Command{
	Use:   "vetform",
	Short: "Validación de formularios para clínicas veterinarias",
	Long: `vetform valida campos de formularios de una clínica veterinaria:
nombres, teléfonos, emails, precios, pesos, edades, citas, códigos de
producto y stock.

Comandos:
  serve  - servidor HTTP con validación en vivo (datastar)
  check  - valida un valor desde la terminal`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadEnv(envFiles...)
	},
}

// Execute runs the root command and prints the error, if any, to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errInvalid) {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "archivos .env a cargar, en orden")
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
