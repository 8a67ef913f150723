package repository

import (
	"errors"

	"clientsapi/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *DefaultClientRepository {
	return &DefaultClientRepository{db: db}
}

// FindPage returns one page of clients, newest first, plus the total count.
func (r *DefaultClientRepository) FindPage(offset, limit int) ([]*entity.Client, int64, error) {
	var total int64
	if err := r.db.Model(&entity.Client{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	clients := []*entity.Client{}
	err := r.db.
		Preload("DataSource").
		Order("created_at desc, id desc").
		Offset(offset).
		Limit(limit).
		Find(&clients).Error
	if err != nil {
		return nil, 0, err
	}
	return clients, total, nil
}

// FindByID returns (nil, nil) when no client has the given id.
func (r *DefaultClientRepository) FindByID(id int) (*entity.Client, error) {
	var client entity.Client
	err := r.db.
		Preload("DataSource").
		First(&client, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &client, nil
}

// Save inserts or fully overwrites the client row. NULL columns are written
// as NULL, so a full replace really clears omitted fields.
func (r *DefaultClientRepository) Save(client *entity.Client) error {
	return r.db.
		Omit("DataSource").
		Save(client).Error
}

func (r *DefaultClientRepository) Delete(client *entity.Client) error {
	return r.db.Delete(client).Error
}
