package repository

import "github.com/jhoicas/invoicing-api/internal/domain/entity"

// ClientRepository define el puerto de lectura de clientes (datos semilla).
type ClientRepository interface {
	GetByID(id string) (*entity.Client, error) // (nil, nil) si no existe
	List() ([]*entity.Client, error)
}
