// seed crea las tablas del dashboard (users, customers, invoices) y las puebla
// con datos de demostración, incluido un usuario con password bcrypt.
//
// Uso: go run ./cmd/seed
// Requiere las mismas variables de entorno de DB que el API.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/invoice-dashboard/internal/domain/entity"
	"github.com/tu-usuario/invoice-dashboard/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS customers (
	id UUID PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	image_url VARCHAR(255) NOT NULL
);
CREATE TABLE IF NOT EXISTS invoices (
	id UUID PRIMARY KEY,
	customer_id UUID NOT NULL REFERENCES customers(id),
	amount INT NOT NULL,
	status VARCHAR(255) NOT NULL,
	date DATE NOT NULL
);`

type seedCustomer struct {
	name, email, image string
}

var customers = []seedCustomer{
	{"Evil Rabbit", "evil@rabbit.com", "/static/customers/evil-rabbit.png"},
	{"Delba de Oliveira", "delba@oliveira.com", "/static/customers/delba-de-oliveira.png"},
	{"Lee Robinson", "lee@robinson.com", "/static/customers/lee-robinson.png"},
	{"Michael Novotny", "michael@novotny.com", "/static/customers/michael-novotny.png"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DB.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fmt.Fprintf(os.Stderr, "crear tablas: %v\n", err)
		os.Exit(1)
	}

	// Usuario demo (el API nunca crea usuarios; solo el seeder)
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashear password: %v\n", err)
		os.Exit(1)
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING`,
		uuid.New().String(), "User", "user@nextmail.com", string(hash),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "insertar usuario: %v\n", err)
		os.Exit(1)
	}

	// Clientes y una factura de ejemplo por cliente
	statuses := []string{entity.StatusPending, entity.StatusPaid}
	for i, c := range customers {
		customerID := uuid.New().String()
		_, err := pool.Exec(ctx, `
			INSERT INTO customers (id, name, email, image_url)
			VALUES ($1, $2, $3, $4)`,
			customerID, c.name, c.email, c.image,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insertar cliente %s: %v\n", c.name, err)
			os.Exit(1)
		}
		_, err = pool.Exec(ctx, `
			INSERT INTO invoices (id, customer_id, amount, status, date)
			VALUES ($1, $2, $3, $4, $5)`,
			uuid.New().String(), customerID, (i+1)*2500, statuses[i%2],
			time.Now().UTC().AddDate(0, 0, -i).Format(time.DateOnly),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insertar factura: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("seed completado")
}
