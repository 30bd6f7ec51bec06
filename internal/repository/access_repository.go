package repository

import "github.com/RobbyCBennett/Serve/internal/models"

type AccessRepository interface {
	Save(record models.AccessRecord) error
	Recent(limit int) ([]models.AccessRecord, error)
	Summary() (models.AccessSummary, error)
	Close() error
}
