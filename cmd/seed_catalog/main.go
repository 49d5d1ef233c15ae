// seed_catalog genera el script SQL que carga productos y servicios a partir
// de la planilla exportada por el sistema anterior (CSV separado por ';',
// codificación ISO-8859-1, precios en formato "R$ 1.234,56").
//
// Uso: go run ./cmd/seed_catalog [ruta/catalogo.csv]
// Por defecto busca catalogo.csv en el directorio actual.
// Escribe: migrations/002_seed_catalog.sql
//
// Columnas: tipo;nome;preco;unidade_ou_descricao
// tipo es "produto" o "servico". Filas con tipo desconocido o sin nombre se omiten.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Oficina-api/internal/domain/money"
)

type catalogRow struct {
	name  string
	price string
	extra string // unidad del producto o descripción del servicio
}

type catalog struct {
	products []catalogRow
	services []catalogRow
	skipped  int
}

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	cat, err := readCatalog(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(findModuleRoot(), "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, cat); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d productos, %d servicios, %d filas omitidas\n",
		outPath, len(cat.products), len(cat.services), cat.skipped)
}

// readCatalog lee el CSV ya decodificado a UTF-8. El precio se normaliza al
// texto canónico; un precio ilegible queda en R$ 0,00.
func readCatalog(r io.Reader) (*catalog, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	cat := &catalog{}
	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if first {
			first = false
			if len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "tipo") {
				continue
			}
		}
		if len(rec) < 3 || strings.TrimSpace(rec[1]) == "" {
			cat.skipped++
			continue
		}
		row := catalogRow{
			name:  strings.TrimSpace(rec[1]),
			price: money.Format(money.Parse(rec[2])),
		}
		if len(rec) > 3 {
			row.extra = strings.TrimSpace(rec[3])
		}
		switch strings.ToLower(strings.TrimSpace(rec[0])) {
		case "produto", "product":
			cat.products = append(cat.products, row)
		case "servico", "serviço", "service":
			cat.services = append(cat.services, row)
		default:
			cat.skipped++
		}
	}
	sort.SliceStable(cat.products, func(i, j int) bool { return cat.products[i].name < cat.products[j].name })
	sort.SliceStable(cat.services, func(i, j int) bool { return cat.services[i].name < cat.services[j].name })
	return cat, nil
}

func writeSQL(w io.Writer, cat *catalog) error {
	var b strings.Builder
	b.WriteString("-- Catálogo de productos y servicios\n")
	b.WriteString("-- Generado por cmd/seed_catalog\n\n")

	if len(cat.products) > 0 {
		b.WriteString("INSERT INTO products (name, price, unit) VALUES\n")
		for i, p := range cat.products {
			fmt.Fprintf(&b, "  ('%s', '%s', '%s')", escapeSQL(p.name), escapeSQL(p.price), escapeSQL(p.extra))
			b.WriteString(separator(i, len(cat.products)))
		}
		b.WriteString("\n")
	}
	if len(cat.services) > 0 {
		b.WriteString("INSERT INTO services (name, price, description) VALUES\n")
		for i, s := range cat.services {
			fmt.Fprintf(&b, "  ('%s', '%s', '%s')", escapeSQL(s.name), escapeSQL(s.price), escapeSQL(s.extra))
			b.WriteString(separator(i, len(cat.services)))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func separator(i, n int) string {
	if i < n-1 {
		return ",\n"
	}
	return ";\n"
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
