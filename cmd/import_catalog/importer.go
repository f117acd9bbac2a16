package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/pos-admin/internal/application/dto"
	"github.com/jhoicas/pos-admin/internal/domain"
)

type productCreator interface {
	Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error)
}

// rejectedRow fila que no se pudo importar.
type rejectedRow struct {
	Line   int
	Reason string
}

type importResult struct {
	Created  int
	Rejected []rejectedRow
}

// decodingReader envuelve r según la codificación de origen.
// parsePrice acepta "9.99", "0,30", "1,234.50" y "1.234,50": el último separador es el decimal.
func parsePrice(raw string) (decimal.Decimal, error) {
	dot, comma := strings.LastIndex(raw, "."), strings.LastIndex(raw, ",")
	switch {
	case comma > dot:
		raw = strings.ReplaceAll(strings.ReplaceAll(raw, ".", ""), ",", ".")
	case comma >= 0:
		raw = strings.ReplaceAll(raw, ",", "")
	}
	return decimal.NewFromString(raw)
}

func decodingReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
		return r, nil
	case "latin1", "iso-8859-1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("codificación no soportada: %s", encoding)
	}
}

// importCatalog crea un producto por fila. Las filas inválidas se reportan y no detienen la carga;
// un error de la base de datos sí la detiene.
func importCatalog(ctx context.Context, r io.Reader, encoding string, products productCreator, log zerolog.Logger) (*importResult, error) {
	dr, err := decodingReader(r, encoding)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(dr)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	if _, ok := cols["name"]; !ok {
		return nil, errors.New("la cabecera debe incluir la columna name")
	}
	field := func(rec []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	res := &importResult{}
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			res.Rejected = append(res.Rejected, rejectedRow{Line: line, Reason: err.Error()})
			continue
		}

		in := dto.ProductRequest{
			SKU:         field(rec, "sku"),
			Name:        field(rec, "name"),
			Description: field(rec, "description"),
			Price:       decimal.Zero,
		}
		if raw := field(rec, "price"); raw != "" {
			price, err := parsePrice(raw)
			if err != nil {
				res.Rejected = append(res.Rejected, rejectedRow{Line: line, Reason: "price no numérico: " + raw})
				continue
			}
			in.Price = price
		}
		if raw := field(rec, "stock"); raw != "" {
			stock, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				res.Rejected = append(res.Rejected, rejectedRow{Line: line, Reason: "stock no entero: " + raw})
				continue
			}
			in.Stock = stock
		}

		if _, err := products.Create(ctx, in); err != nil {
			if errors.Is(err, domain.ErrInvalidInput) {
				res.Rejected = append(res.Rejected, rejectedRow{Line: line, Reason: "producto inválido"})
				continue
			}
			return res, fmt.Errorf("fila %d: %w", line, err)
		}
		res.Created++
	}
	log.Info().Int("creados", res.Created).Int("rechazados", len(res.Rejected)).Msg("catálogo importado")
	return res, nil
}
