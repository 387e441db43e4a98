// cmd/seed/main.go
package main

import (
	"context"
	"log"
	"time"

	"dreamweave/internal/adapters/out/firestore"
	"dreamweave/internal/infra/config"
	firestoreinfra "dreamweave/internal/infra/firestore"
)

// Seeds the products collection with the starter catalog. Existing records
// with the same ids are overwritten, so the command is safe to re-run.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg := config.Load()

	fsw, err := firestoreinfra.NewClient(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile)
	if err != nil {
		log.Fatalf("[seed] firestore init failed: %v", err)
	}
	defer fsw.Close()

	repo := firestore.NewProductRepositoryFS(fsw.Client)

	log.Printf("[seed] seeding %d products into project %s", len(starterCatalog), cfg.FirestoreProjectID)

	for i := range starterCatalog {
		p := starterCatalog[i]
		if p.CreatedAt.IsZero() {
			p.CreatedAt = time.Now().UTC()
		}
		if err := p.Validate(); err != nil {
			log.Fatalf("[seed] product %s invalid: %v", p.ID, err)
		}
		if err := repo.Update(ctx, &p); err != nil {
			log.Fatalf("[seed] write failed for product %s: %v", p.ID, err)
		}
		log.Printf("[seed] wrote product %s (%s)", p.ID, p.Name)
	}

	log.Printf("[seed] done")
}
