// seed_plans genera el script SQL que pobla la tabla plans a partir del
// export CSV del sistema comercial antiguo (Planes.csv, ISO-8859-1, separado
// por punto y coma).
//
// Uso: go run ./cmd/seed_plans [ruta/Planes.csv]
// Por defecto busca Planes.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_plans.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// plan refleja una fila del CSV legado:
// nombre;sucursales;usuarios;productos;proveedores;precio_clp
type plan struct {
	name         string
	maxBranches  int
	maxUsers     int
	maxProducts  int
	maxSuppliers int
	price        int64
}

func main() {
	csvPath := "Planes.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// El export viene en ISO-8859-1 (tildes en "Básico", "Estándar").
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	var plans []plan
	for i, rec := range records {
		if i == 0 && strings.EqualFold(rec[0], "nombre") {
			continue // fila de encabezado
		}
		if len(rec) < 6 || strings.TrimSpace(rec[0]) == "" {
			continue
		}
		p := plan{name: strings.TrimSpace(rec[0])}
		var convErr error
		if p.maxBranches, convErr = atoiField(rec[1]); convErr != nil {
			fmt.Fprintf(os.Stderr, "Fila %d: sucursales: %v\n", i+1, convErr)
			os.Exit(1)
		}
		if p.maxUsers, convErr = atoiField(rec[2]); convErr != nil {
			fmt.Fprintf(os.Stderr, "Fila %d: usuarios: %v\n", i+1, convErr)
			os.Exit(1)
		}
		if p.maxProducts, convErr = atoiField(rec[3]); convErr != nil {
			fmt.Fprintf(os.Stderr, "Fila %d: productos: %v\n", i+1, convErr)
			os.Exit(1)
		}
		if p.maxSuppliers, convErr = atoiField(rec[4]); convErr != nil {
			fmt.Fprintf(os.Stderr, "Fila %d: proveedores: %v\n", i+1, convErr)
			os.Exit(1)
		}
		if p.price, convErr = strconv.ParseInt(strings.TrimSpace(rec[5]), 10, 64); convErr != nil {
			fmt.Fprintf(os.Stderr, "Fila %d: precio: %v\n", i+1, convErr)
			os.Exit(1)
		}
		plans = append(plans, p)
	}

	if len(plans) == 0 {
		fmt.Fprintln(os.Stderr, "El CSV no contiene planes")
		os.Exit(1)
	}

	// Ruta del script de salida (relativa al módulo)
	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_plans.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Planes de suscripción con sus cupos por recurso\n")
	out.WriteString("-- Generado desde Planes.csv (sistema comercial antiguo)\n\n")
	out.WriteString("INSERT INTO plans (id, name, max_branches, max_users, max_products, max_suppliers, price) VALUES\n")
	for i, p := range plans {
		sep := ","
		if i == len(plans)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  (gen_random_uuid(), '%s', %d, %d, %d, %d, %d)%s\n",
			escapeSQL(p.name), p.maxBranches, p.maxUsers, p.maxProducts, p.maxSuppliers, p.price, sep)
	}
	out.WriteString("ON CONFLICT (name) DO UPDATE SET\n")
	out.WriteString("  max_branches  = EXCLUDED.max_branches,\n")
	out.WriteString("  max_users     = EXCLUDED.max_users,\n")
	out.WriteString("  max_products  = EXCLUDED.max_products,\n")
	out.WriteString("  max_suppliers = EXCLUDED.max_suppliers,\n")
	out.WriteString("  price         = EXCLUDED.price,\n")
	out.WriteString("  updated_at    = NOW();\n")

	fmt.Printf("Generado %s: %d planes\n", outPath, len(plans))
}

func atoiField(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
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
