// Command seed carga datos de ejemplo en una API de people/pets que ya está corriendo.
//
//	go run ./cmd/seed -url http://localhost:8080
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"people-pets-api/internal/platform/httpclient"
	"people-pets-api/internal/platform/logger"
)

type person struct {
	ID        int64  `json:"id,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
}

type pet struct {
	ID    int64  `json:"id,omitempty"`
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Owner int64  `json:"owner"`
}

type createdPet struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Owner person `json:"owner"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "base URL de la API")
	timeout := flag.Duration("timeout", httpclient.DefaultTimeout, "timeout por request")
	flag.Parse()

	log := logger.NewFromEnv()

	client, err := httpclient.NewWithBaseURL(*baseURL, *timeout)
	if err != nil {
		log.Error("invalid url", map[string]any{"url": *baseURL, "error": err.Error()})
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seed(ctx, client, log); err != nil {
		log.Error("seed failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func seed(ctx context.Context, c *httpclient.Client, log logger.Logger) error {
	var owner person
	if err := c.Post(ctx, "/people/", person{FirstName: "Jesse", LastName: "Sublett", Age: 67}, &owner); err != nil {
		return fmt.Errorf("create person: %w", err)
	}
	log.Info("person created", map[string]any{"id": owner.ID, "first_name": owner.FirstName})

	var iggy createdPet
	if err := c.Post(ctx, "/pets/", pet{Name: "Iggy", Age: 5, Owner: owner.ID}, &iggy); err != nil {
		return fmt.Errorf("create pet: %w", err)
	}
	log.Info("pet created", map[string]any{"id": iggy.ID, "name": iggy.Name, "owner": iggy.Owner.ID})

	fmt.Printf("person=%d pet=%d\n", owner.ID, iggy.ID)
	return nil
}
