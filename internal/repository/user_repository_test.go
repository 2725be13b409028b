package repository_test

import (
	"context"
	"testing"

	"taskboard/internal/database/dbtest"
	"taskboard/internal/model"
	"taskboard/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func createUser(t *testing.T, repo *repository.UserRepository, email string) *model.User {
	t.Helper()
	user := &model.User{Name: "Test User", Email: email}
	cred := &model.Credential{PassHash: "hashed_password", Salt: "salt"}
	require.NoError(t, repo.CreateWithCredential(context.Background(), user, cred))
	require.NotZero(t, user.ID)
	return user
}

func TestUserRepository_CreateAndFindByEmail(t *testing.T) {
	repo := repository.NewUserRepository(dbtest.New(t))
	user := createUser(t, repo, "test@example.com")

	found, err := repo.FindByEmail(context.Background(), "test@example.com")

	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "Test User", found.Name)
	assert.Equal(t, "hashed_password", found.PassHash)
	assert.Equal(t, "salt", found.Salt)
}

func TestUserRepository_FindByEmail_IsCaseSensitive(t *testing.T) {
	repo := repository.NewUserRepository(dbtest.New(t))
	createUser(t, repo, "Case@Example.com")

	_, err := repo.FindByEmail(context.Background(), "case@example.com")

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_DuplicateEmailIsAtomic(t *testing.T) {
	db := dbtest.New(t)
	repo := repository.NewUserRepository(db)
	first := createUser(t, repo, "dup@example.com")

	err := repo.CreateWithCredential(context.Background(),
		&model.User{Name: "Second", Email: "dup@example.com"},
		&model.Credential{PassHash: "other", Salt: "other"})

	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	var users, creds int64
	require.NoError(t, db.Model(&model.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&model.Credential{}).Count(&creds).Error)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(1), creds)

	found, err := repo.FindByEmail(context.Background(), "dup@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
	assert.Equal(t, "hashed_password", found.PassHash)
}

func TestUserRepository_UpdateOnlyGivenFields(t *testing.T) {
	repo := repository.NewUserRepository(dbtest.New(t))
	user := createUser(t, repo, "upd@example.com")

	updated, err := repo.Update(context.Background(), user.ID, map[string]any{"surname": "Dante"})

	require.NoError(t, err)
	assert.Equal(t, "Test User", updated.Name)
	assert.Equal(t, "upd@example.com", updated.Email)
	require.NotNil(t, updated.Surname)
	assert.Equal(t, "Dante", *updated.Surname)
}

func TestUserRepository_UpdateToTakenEmail(t *testing.T) {
	repo := repository.NewUserRepository(dbtest.New(t))
	createUser(t, repo, "a@example.com")
	b := createUser(t, repo, "b@example.com")

	_, err := repo.Update(context.Background(), b.ID, map[string]any{"email": "a@example.com"})

	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	repo := repository.NewUserRepository(dbtest.New(t))

	_, err := repo.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_Delete(t *testing.T) {
	db := dbtest.New(t)
	repo := repository.NewUserRepository(db)
	user := createUser(t, repo, "gone@example.com")

	require.NoError(t, repo.Delete(context.Background(), user.ID))

	var creds int64
	require.NoError(t, db.Model(&model.Credential{}).Count(&creds).Error)
	assert.Zero(t, creds)
	assert.ErrorIs(t, repo.Delete(context.Background(), user.ID), repository.ErrNotFound)
}

func TestCredential_OnePerUser(t *testing.T) {
	db := dbtest.New(t)
	repo := repository.NewUserRepository(db)
	user := createUser(t, repo, "single@example.com")

	err := db.Create(&model.Credential{UserID: user.ID, PassHash: "other_hash", Salt: "other_salt"}).Error

	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var creds int64
	require.NoError(t, db.Model(&model.Credential{}).Where("user_id = ?", user.ID).Count(&creds).Error)
	assert.Equal(t, int64(1), creds)
}

func TestUserRepository_FindByEmail_Error(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	userRepo := repository.NewUserRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM .*users.* INNER JOIN user_credentials`).
		WillReturnError(assert.AnError)

	// Act
	user, err := userRepo.FindByEmail(context.Background(), "test@example.com")

	// Assert
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID_EmptyResult(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	userRepo := repository.NewUserRepository(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "surname", "email"}))

	// Act
	user, err := userRepo.GetByID(context.Background(), 1)

	// Assert
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}
