package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"Peerpulse/internal/core/users"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// userRecord maps the users table for gorm
type userRecord struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	CollegeID *string
	ID        string `gorm:"primaryKey"`
	Name      string
	Email     string
	Role      string
}

func (userRecord) TableName() string { return "users" }

func (u *userRecord) toUser() *users.User {
	return &users.User{
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		CollegeID: u.CollegeID,
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      users.Role(u.Role),
	}
}

// OpenGorm wraps an existing connection pool so gorm and database/sql
// repositories share connections
func OpenGorm(db *sql.DB) (*gorm.DB, error) {
	gdb, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}
	return gdb, nil
}

type gormUserRepo struct {
	db *gorm.DB
}

// NewUserRepository creates a new gorm-backed user repository
func NewUserRepository(db *gorm.DB) users.UserRepository {
	return &gormUserRepo{db: db}
}

func (r *gormUserRepo) GetByID(ctx context.Context, id string) (*users.User, error) {
	var rec userRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return rec.toUser(), nil
}

func (r *gormUserRepo) List(ctx context.Context) ([]*users.User, error) {
	var recs []userRecord
	if err := r.db.WithContext(ctx).Order("created_at ASC").Order("id ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]*users.User, len(recs))
	for i := range recs {
		out[i] = recs[i].toUser()
	}
	return out, nil
}
