// import_catalog carga productos en el catálogo desde un CSV exportado por hojas de cálculo
// o sistemas de caja antiguos (a menudo en ISO-8859-1 o Windows-1252).
//
// Uso: go run ./cmd/import_catalog catalogo.csv [utf-8|latin1|windows-1252]
// Columnas: sku,name,description,price,stock (la cabecera es obligatoria; el orden es libre).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/pos-admin/internal/application/usecase"
	"github.com/jhoicas/pos-admin/internal/infrastructure/postgres"
	"github.com/jhoicas/pos-admin/pkg/config"
	"github.com/jhoicas/pos-admin/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: import_catalog <archivo.csv> [utf-8|latin1|windows-1252]")
		os.Exit(2)
	}
	encoding := "utf-8"
	if len(os.Args) > 2 {
		encoding = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool, log.Component("migrate")); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	productUC := usecase.NewProductUseCase(postgres.NewProductRepository(pool))
	res, err := importCatalog(ctx, f, encoding, productUC, log.Component("import"))
	if err != nil {
		log.Fatal().Err(err).Msg("importar catálogo")
	}
	fmt.Printf("Importados %d productos, %d filas rechazadas\n", res.Created, len(res.Rejected))
	for _, r := range res.Rejected {
		fmt.Printf("  fila %d: %s\n", r.Line, r.Reason)
	}
}
