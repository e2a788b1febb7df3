package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// ClientUseCase casos de uso para clientes. Toda mutación y la lectura por ID
// exigen que el caller sea el vendedor dueño del cliente.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente y lo asigna al vendedor del token.
// ErrEmailAlreadyExists si ya hay un cliente con ese email.
func (uc *ClientUseCase) Create(sellerID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if sellerID == "" {
		return nil, domain.ErrUnauthorized
	}
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Surname:   in.Surname,
		Company:   in.Company,
		Email:     in.Email,
		Phone:     in.Phone,
		SellerID:  sellerID,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente; solo su vendedor puede leerlo.
func (uc *ClientUseCase) GetByID(sellerID, id string) (*dto.ClientResponse, error) {
	client, err := uc.loadOwned(sellerID, id)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista todos los clientes.
func (uc *ClientUseCase) List() ([]dto.ClientResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toClientResponses(list), nil
}

// ListBySeller lista los clientes captados por el vendedor del token.
func (uc *ClientUseCase) ListBySeller(sellerID string) ([]dto.ClientResponse, error) {
	if sellerID == "" {
		return nil, domain.ErrUnauthorized
	}
	list, err := uc.repo.ListBySeller(sellerID)
	if err != nil {
		return nil, err
	}
	return toClientResponses(list), nil
}

// Update actualiza un cliente del vendedor (campos opcionales).
func (uc *ClientUseCase) Update(sellerID, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.loadOwned(sellerID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.Surname != nil {
		client.Surname = *in.Surname
	}
	if in.Company != nil {
		client.Company = *in.Company
	}
	if in.Email != nil && *in.Email != client.Email {
		existing, err := uc.repo.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente del vendedor y devuelve la entidad previa.
func (uc *ClientUseCase) Delete(sellerID, id string) (*dto.ClientResponse, error) {
	client, err := uc.loadOwned(sellerID, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// loadOwned carga el cliente y aplica el predicado de propiedad.
// ErrClientNotFound y ErrForbidden se distinguen a propósito.
func (uc *ClientUseCase) loadOwned(sellerID, id string) (*entity.Client, error) {
	if sellerID == "" {
		return nil, domain.ErrUnauthorized
	}
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	if !domain.OwnsClient(sellerID, client) {
		return nil, domain.ErrForbidden
	}
	return client, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Surname:   c.Surname,
		Company:   c.Company,
		Email:     c.Email,
		Phone:     c.Phone,
		SellerID:  c.SellerID,
		CreatedAt: c.CreatedAt,
	}
}

func toClientResponses(list []*entity.Client) []dto.ClientResponse {
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toClientResponse(c))
	}
	return out
}
