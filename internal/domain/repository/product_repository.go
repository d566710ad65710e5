package repository

import "github.com/jhoicas/invoicing-api/internal/domain/entity"

// ProductRepository define el puerto de lectura del catálogo de productos.
// Los productos son datos semilla: no hay escritura vía API.
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error) // (nil, nil) si no existe
	List() ([]*entity.Product, error)
}
