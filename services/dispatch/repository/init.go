package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/mechafix/dispatch/internal/pkg/database"
	"github.com/mechafix/dispatch/internal/pkg/models"
)

// RequestRepository implements the service-request repository interface
type RequestRepository struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewRequestRepository creates a new request repository
func NewRequestRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *RequestRepository {
	return &RequestRepository{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// MechanicRepository implements the mechanic pool and worker repository
// interface
type MechanicRepository struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewMechanicRepository creates a new mechanic repository
func NewMechanicRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *MechanicRepository {
	return &MechanicRepository{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
