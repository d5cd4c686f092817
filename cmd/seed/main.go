package main

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/labellens/backend/config"
	"github.com/pageza/labellens/backend/internal/additive"
	"github.com/pageza/labellens/backend/internal/catalog"
	"github.com/pageza/labellens/backend/internal/database"
	"github.com/pageza/labellens/backend/internal/logging"
	"github.com/pageza/labellens/backend/internal/models"
	"github.com/pageza/labellens/backend/internal/service"
	"github.com/pageza/labellens/backend/internal/types"
)

//go:embed data/products.json
var embeddedProducts []byte

func main() {
	additivesPath := flag.String("additives", "", "Additive dataset JSON (defaults to the embedded dataset)")
	productsPath := flag.String("products", "", "Product catalog JSON (defaults to the embedded sample)")
	withImages := flag.Bool("images", false, "Generate missing product images and upload them to S3")
	imageBucket := flag.String("image-bucket", "", "S3 bucket for generated images")
	adminEmail := flag.String("admin-email", "", "Create an admin user and print a token for it")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(config.IsProduction(), cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	db, err := database.New(cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	records, err := loadRecords(ctx, *additivesPath)
	if err != nil {
		logger.Fatal("Failed to read additive dataset", zap.Error(err))
	}
	n, err := seedAdditives(ctx, db, records)
	if err != nil {
		logger.Fatal("Failed to seed additives", zap.Error(err))
	}
	logger.Info("Seeded additives", zap.Int("count", n))

	products, err := loadProducts(*productsPath)
	if err != nil {
		logger.Fatal("Failed to read product catalog", zap.Error(err))
	}

	var images *service.ImageService
	if *withImages {
		images, err = newImageService(ctx, cfg, *imageBucket, logger)
		if err != nil {
			logger.Fatal("Failed to configure image generation", zap.Error(err))
		}
	}
	n, err = seedProducts(ctx, db, products, images)
	if err != nil {
		logger.Fatal("Failed to seed products", zap.Error(err))
	}
	logger.Info("Seeded products", zap.Int("count", n))

	if *adminEmail != "" {
		token, err := seedAdmin(db, service.NewAuthService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL), *adminEmail)
		if err != nil {
			logger.Fatal("Failed to create admin user", zap.Error(err))
		}
		fmt.Println(token)
	}
}

func loadRecords(ctx context.Context, path string) ([]additive.Record, error) {
	if path == "" {
		return additive.EmbeddedSource{}.Load(ctx)
	}
	return additive.FileSource{Path: path}.Load(ctx)
}

func loadProducts(path string) ([]models.Product, error) {
	data := embeddedProducts
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		data = b
	}
	var products []models.Product
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// seedAdditives upserts every record by canonical code. The records go
// through a catalog first so a malformed dataset never reaches the table.
func seedAdditives(ctx context.Context, db *gorm.DB, records []additive.Record) (int, error) {
	c, err := additive.NewCatalog(records, "seed")
	if err != nil {
		return 0, err
	}
	canonical := c.Records()
	rows := make([]models.Additive, len(canonical))
	for i, r := range canonical {
		rows[i] = additive.ModelFromRecord(r, i)
	}
	err = db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		UpdateAll: true,
	}).Create(&rows).Error
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// seedProducts inserts products whose name and brand are not already present.
// With an image service, missing images are filled before insertion.
func seedProducts(ctx context.Context, db *gorm.DB, products []models.Product, images *service.ImageService) (int, error) {
	fresh := make([]models.Product, 0, len(products))
	for i := range products {
		p := products[i]
		var count int64
		if err := db.WithContext(ctx).Model(&models.Product{}).
			Where("name = ? AND brand = ?", p.Name, p.Brand).
			Count(&count).Error; err != nil {
			return 0, err
		}
		if count > 0 {
			continue
		}
		if images != nil {
			p.ImageURL = images.ImageFor(ctx, &p)
		}
		fresh = append(fresh, p)
	}
	if err := catalog.NewGormStore(db).Create(ctx, fresh); err != nil {
		return 0, err
	}
	return len(fresh), nil
}

func seedAdmin(db *gorm.DB, auth *service.AuthService, email string) (string, error) {
	user := models.User{Name: "Administrator", Email: email, Role: types.RoleAdmin}
	if err := db.Where(models.User{Email: email}).Attrs(user).FirstOrCreate(&user).Error; err != nil {
		return "", err
	}
	return auth.GenerateToken(&types.TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   types.RoleAdmin,
	})
}

func newImageService(ctx context.Context, cfg *config.Config, bucket string, logger *zap.Logger) (*service.ImageService, error) {
	if bucket == "" {
		return nil, fmt.Errorf("--image-bucket is required with --images")
	}
	s3cfg, err := config.NewS3Config(ctx, config.ReferenceCatalogConfig{
		Bucket:   bucket,
		Region:   cfg.ReferenceCatalog.Region,
		Endpoint: cfg.ReferenceCatalog.Endpoint,
	})
	if err != nil {
		return nil, err
	}
	var generator service.ImageGenerator
	if cfg.Classifier.APIKey != "" {
		generator = openai.NewClient(cfg.Classifier.APIKey)
	} else {
		logger.Warn("No API key configured; products without images get the placeholder")
	}
	return service.NewImageService(generator, s3cfg.Client, bucket, "", logger), nil
}
