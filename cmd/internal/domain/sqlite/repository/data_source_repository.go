package repository

import (
	"errors"

	"clientsapi/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultDataSourceRepository struct {
	db *gorm.DB
}

func NewDataSourceRepository(db *gorm.DB) *DefaultDataSourceRepository {
	return &DefaultDataSourceRepository{db: db}
}

func (r *DefaultDataSourceRepository) FindAll() ([]*entity.DataSource, error) {
	var sources []*entity.DataSource
	err := r.db.
		Order("created_at desc, id desc").
		Find(&sources).Error
	if err != nil {
		return nil, err
	}
	return sources, nil
}

// FindByID returns (nil, nil) when no data source has the given id.
func (r *DefaultDataSourceRepository) FindByID(id int) (*entity.DataSource, error) {
	var source entity.DataSource
	err := r.db.First(&source, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &source, nil
}

func (r *DefaultDataSourceRepository) Save(source *entity.DataSource) error {
	return r.db.Save(source).Error
}

// CountClients returns how many clients reference the data source.
func (r *DefaultDataSourceRepository) CountClients(id int) (int64, error) {
	var count int64
	err := r.db.
		Model(&entity.Client{}).
		Where("data_source_id = ?", id).
		Count(&count).Error
	return count, err
}

func (r *DefaultDataSourceRepository) Delete(source *entity.DataSource) error {
	return r.db.Delete(source).Error
}
