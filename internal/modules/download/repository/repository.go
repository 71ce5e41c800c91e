package repository

import (
	"github.com/reshetovitsme/telewaves/internal/modules/download/domain"
)

// Repository defines the interface for download history persistence
type Repository interface {
	Save(record *domain.Record) error
	List(limit int) ([]*domain.Record, error)
}
