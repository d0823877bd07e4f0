package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Lumberjack100/app-remote-config-site-backend/models"
)

func seedUser(t *testing.T, s *UserStore, account, password string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Account:     account,
		Password:    string(hashed),
		Name:        "宫贺",
		CompanyID:   138,
		CompanyName: "上海米度测控科技有限公司",
	}
	require.NoError(t, s.db.Create(&user).Error)
	return &user
}

func TestAuthenticate(t *testing.T) {
	db := openTestDB(t)
	users := NewUserStore(db)
	seeded := seedUser(t, users, "medo_gh", "medo123456")

	got, err := users.Authenticate("medo_gh", "medo123456")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, seeded.ID, got.ID)
	require.Equal(t, "宫贺", got.Name)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	db := openTestDB(t)
	users := NewUserStore(db)
	seedUser(t, users, "medo_gh", "medo123456")

	got, err := users.Authenticate("medo_gh", "wrong")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestAuthenticateUnknownAccount(t *testing.T) {
	db := openTestDB(t)
	users := NewUserStore(db)
	seedUser(t, users, "medo_gh", "medo123456")

	// Unknown account and wrong password look identical to the caller.
	got, err := users.Authenticate("nobody", "medo123456")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestByIDMissing(t *testing.T) {
	db := openTestDB(t)
	users := NewUserStore(db)

	got, err := users.ByID(9999)
	require.NoError(t, err)
	require.Nil(t, got)
}
