package testhelpers

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/pageza/labellens/backend/internal/models"
	"github.com/pageza/labellens/backend/internal/types"
)

// CreateTestUser creates a user with the given role.
func CreateTestUser(t *testing.T, db *gorm.DB, role string) *models.User {
	id := uuid.New()
	user := &models.User{
		ID:    id,
		Name:  "Test User",
		Email: fmt.Sprintf("testuser+%s@example.com", id.String()),
		Role:  role,
	}
	err := db.Create(user).Error
	assert.NoError(t, err)
	return user
}

// Product builds an unsaved catalog product.
func Product(name, primary, secondary string, riskScore int, priceTier string) models.Product {
	return models.Product{
		ID:                uuid.New(),
		Name:              name,
		Brand:             "Test Brand",
		PrimaryCategory:   primary,
		SecondaryCategory: secondary,
		RiskScore:         riskScore,
		SafetyRating:      float64(100-riskScore) / 10,
		PriceTier:         priceTier,
		DietaryTags:       models.JSONBStringArray{},
	}
}

// CreateTestProducts inserts products and returns them with derived fields set.
func CreateTestProducts(t *testing.T, db *gorm.DB, products ...models.Product) []models.Product {
	for i := range products {
		err := db.Create(&products[i]).Error
		assert.NoError(t, err)
	}
	return products
}

// MockTokenValidator returns fixed claims or a fixed error.
type MockTokenValidator struct {
	Claims *types.TokenClaims
	Error  error
}

func (m *MockTokenValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	return m.Claims, nil
}
