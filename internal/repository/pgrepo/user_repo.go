package pgrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-receipts/internal/domain"
	"github.com/fsdevblog/groph-receipts/internal/repository/repoargs"
	"github.com/fsdevblog/groph-receipts/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, fullname, username, email, password, is_active, created_at, updated_at`

type userRow struct {
	ID        int64     `db:"id"`
	FullName  string    `db:"fullname"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

// CreateUser создает юзера в базе данных. В случае конфликта юзернейма или email возвращает ошибку
// domain.ErrDuplicateKey, во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error) {
	rows, _ := u.conn.Query(ctx,
		`INSERT INTO users (fullname, username, email, password)
		VALUES (@fullname, @username, @email, @password)
		RETURNING `+userColumns,
		pgx.NamedArgs{
			"fullname": user.FullName,
			"username": user.Username,
			"email":    user.Email,
			"password": user.Password,
		},
	)
	dbUser, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[userRow])
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return convertUserModel(dbUser), nil
}

// FindUserByUsername ищет юзера по его юзернейму. Возвращает ошибку domain.ErrRecordNotFound если запись не найдена,
// во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	rows, _ := u.conn.Query(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	dbUser, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[userRow])
	if err != nil {
		return nil, convertErr(err, "finding user by username %s", username)
	}
	return convertUserModel(dbUser), nil
}

func convertUserModel(dbModel userRow) *domain.User {
	return &domain.User{
		ID:        dbModel.ID,
		CreatedAt: dbModel.CreatedAt.UTC(),
		UpdatedAt: dbModel.UpdatedAt.UTC(),
		FullName:  dbModel.FullName,
		Username:  dbModel.Username,
		Email:     dbModel.Email,
		Password:  dbModel.Password,
		IsActive:  dbModel.IsActive,
	}
}
