package services

import (
	"testing"

	"gorm.io/gorm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpramana/apotek/app/models"
	"github.com/dpramana/apotek/pkg/auth"
)

type memUserStore map[string]models.User

func (s memUserStore) FindByEmail(email string) (models.User, error) {
	u, ok := s[email]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return u, nil
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("password")
	require.NoError(t, err)

	kasir := models.User{Name: "Budi Kasir", Email: "kasir@apotek.com", Password: hash, Role: models.RoleKasir}
	kasir.ID = 2
	svc := NewAuthService(memUserStore{kasir.Email: kasir})

	token, user, err := svc.Login("kasir@apotek.com", "password")
	require.NoError(t, err)
	assert.Equal(t, "Budi Kasir", user.Name)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(2), claims.UserID)
	assert.Equal(t, models.RoleKasir, claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	hash, err := auth.HashPassword("password")
	require.NoError(t, err)

	kasir := models.User{Email: "kasir@apotek.com", Password: hash}
	svc := NewAuthService(memUserStore{kasir.Email: kasir})

	_, _, err = svc.Login("kasir@apotek.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@apotek.com", "password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTransactionHistoryVisibility(t *testing.T) {
	store := &memTransactionStore{products: testCatalog()}
	t1 := models.Transaction{UserID: 1, Code: "TRX-A"}
	t2 := models.Transaction{UserID: 2, Code: "TRX-B"}
	t3 := models.Transaction{UserID: 2, Code: "TRX-C"}
	store.log = []models.Transaction{t1, t2, t3}

	svc := NewTransactionService(store)

	all, _, err := svc.History(1, models.RoleAdmin, 1, 20)
	require.NoError(t, err)
	assert.Len(t, all, 3, "admin sees every transaction")

	own, _, err := svc.History(2, models.RoleKasir, 1, 20)
	require.NoError(t, err)
	require.Len(t, own, 2, "kasir sees only their own")
	assert.Equal(t, "TRX-B", own[0].Code)
}
