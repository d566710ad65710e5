package usecase

import (
	"github.com/jhoicas/invoicing-api/internal/application/dto"
	"github.com/jhoicas/invoicing-api/internal/domain"
	"github.com/jhoicas/invoicing-api/internal/domain/entity"
	"github.com/jhoicas/invoicing-api/internal/domain/repository"
)

// ClientUseCase casos de uso de lectura de clientes (datos semilla).
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// List lista todos los clientes.
func (uc *ClientUseCase) List() (*dto.ClientListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.ClientListResponse{Clients: make([]dto.ClientResponse, 0, len(list))}
	for _, c := range list {
		out.Clients = append(out.Clients, toClientResponse(c))
	}
	return out, nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := toClientResponse(c)
	return &resp, nil
}

func toClientResponse(c *entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:                    c.ID,
		Name:                  c.Name,
		Address:               c.Address,
		CompanyRegistrationNo: c.CompanyRegistrationNo,
	}
}
