package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dinet/pedidos-importacion/pkg/validate"
)

// CLI de validación estructural de un CSV de pedidos (sin base de datos).
func main() {
	inputPath := flag.String("in", "", "ruta del CSV de pedidos. Vacío = stdin.")
	flag.Parse()

	path := *inputPath
	if path == "" {
		path = "/dev/stdin"
	}

	summary, err := validate.ValidarArchivoCSV(path, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validacion: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validacion ok (%s)\n", summary)
}
