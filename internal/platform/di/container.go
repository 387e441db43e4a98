// internal/platform/di/container.go
package di

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	httpin "dreamweave/internal/adapters/in/http"
	fsrepo "dreamweave/internal/adapters/out/firestore"
	"dreamweave/internal/adapters/out/gcs"
	"dreamweave/internal/adapters/out/mail"
	"dreamweave/internal/application/usecase"
	"dreamweave/internal/infra/config"
	firebaseinfra "dreamweave/internal/infra/firebase"
	firestoreinfra "dreamweave/internal/infra/firestore"
	"dreamweave/internal/infra/secrets"
)

// Container wires config, clients, repositories and usecases into RouterDeps.
type Container struct {
	Cfg        *config.Config
	Firestore  *firestoreinfra.ClientWrapper
	Storage    *storage.Client
	RouterDeps httpin.RouterDeps

	catalogCancel context.CancelFunc
}

// NewContainer builds the full dependency graph. Optional pieces (GCS,
// SendGrid, Firebase Auth) degrade to nil and their features stay unmounted
// or inactive.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Cfg: cfg}

	// Firestore is mandatory; everything persists there.
	fsw, err := firestoreinfra.NewClient(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("di: firestore init failed: %w", err)
	}
	c.Firestore = fsw

	// Firebase Auth verifies bearer tokens. Without it all authed routes
	// return 503 from the middleware, which is the right failure mode.
	fbAuth, err := firebaseinfra.NewAuthClient(ctx, cfg.FirebaseProjectID, cfg.FirestoreCredentialsFile)
	if err != nil {
		log.Printf("[di] WARN: firebase auth init failed: %v", err)
		fbAuth = nil
	}

	// Repositories
	cartRepo := fsrepo.NewCartRepositoryFS(fsw.Client)
	productRepo := fsrepo.NewProductRepositoryFS(fsw.Client)
	reviewRepo := fsrepo.NewReviewRepositoryFS(fsw.Client)
	orderRepo := fsrepo.NewOrderRepositoryFS(fsw.Client)
	favoriteRepo := fsrepo.NewFavoriteRepositoryFS(fsw.Client)
	userRepo := fsrepo.NewUserRepositoryFS(fsw.Client)

	// Catalog cache keeps a product table warm behind a snapshot listener
	// so cart refresh does not hammer reads.
	catalog := fsrepo.NewCatalogCacheFS(fsw.Client)
	catalogCtx, cancel := context.WithCancel(context.Background())
	c.catalogCancel = cancel
	go catalog.Run(catalogCtx)

	// Product image storage (optional)
	var images usecase.ImageStore
	if cfg.GCSBucket != "" {
		var opts []option.ClientOption
		if cfg.GCPCreds != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.GCPCreds))
		}
		storageClient, err := storage.NewClient(ctx, opts...)
		if err != nil {
			log.Printf("[di] WARN: gcs init failed, image uploads disabled: %v", err)
		} else {
			c.Storage = storageClient
			repo := gcs.NewProductImageRepositoryGCS(storageClient, cfg.GCSBucket)
			if cfg.GCSBaseURL != "" {
				repo.PublicBaseURL = cfg.GCSBaseURL
			}
			images = repo
		}
	} else {
		log.Printf("[di] GCS_BUCKET not set, image uploads disabled")
	}

	// Order confirmation mail (optional)
	var mailer usecase.OrderMailer
	apiKey, err := secrets.SendGridAPIKey(ctx, cfg.SendGridAPIKey, cfg.FirestoreProjectID, cfg.SendGridSecretName)
	if err != nil {
		log.Printf("[di] WARN: sendgrid key unavailable, confirmation mail disabled: %v", err)
	} else {
		mailer = mail.NewOrderConfirmationMailer(mail.NewSendGridClient(apiKey), cfg.MailFrom)
	}

	// Usecases
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo, catalog)
	productUC := usecase.NewProductUsecase(productRepo, images)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, orderRepo, productRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo, cartRepo, mailer)
	favoriteUC := usecase.NewFavoriteUsecase(favoriteRepo)
	userUC := usecase.NewUserUsecase(userRepo)

	c.RouterDeps = httpin.RouterDeps{
		CartUC:       cartUC,
		ProductUC:    productUC,
		ReviewUC:     reviewUC,
		OrderUC:      orderUC,
		FavoriteUC:   favoriteUC,
		UserUC:       userUC,
		FirebaseAuth: fbAuth,
	}

	return c, nil
}

// Close releases all clients. Safe on a partially built container.
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.catalogCancel != nil {
		c.catalogCancel()
	}
	if c.Storage != nil {
		if err := c.Storage.Close(); err != nil {
			log.Printf("[di] storage close: %v", err)
		}
	}
	if c.Firestore != nil {
		if err := c.Firestore.Close(); err != nil {
			log.Printf("[di] firestore close: %v", err)
		}
	}
}
