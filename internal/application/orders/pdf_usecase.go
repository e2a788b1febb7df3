package orders

import (
	"context"
	"fmt"

	"github.com/tu-usuario/ventas-pro/internal/domain"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// PDFUseCase genera la hoja de pedido imprimible (PDF) para entregar al cliente.
type PDFUseCase struct {
	orderRepo   repository.OrderRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	generator   OrderPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	orderRepo repository.OrderRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	generator OrderPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		orderRepo:   orderRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		generator:   generator,
	}
}

// DownloadOrderPDF carga pedido, cliente y productos, verifica propiedad y
// genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrOrderNotFound    si el pedido no existe.
//   - domain.ErrForbidden        si el pedido no es del vendedor del token.
func (uc *PDFUseCase) DownloadOrderPDF(ctx context.Context, sellerID, orderID string) (pdfBytes []byte, filename string, err error) {
	if sellerID == "" {
		return nil, "", domain.ErrUnauthorized
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener pedido: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrOrderNotFound
	}
	if !domain.OwnsOrder(sellerID, order) {
		return nil, "", domain.ErrForbidden
	}

	client, err := uc.clientRepo.GetByID(order.ClientID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if client == nil {
		return nil, "", domain.ErrClientNotFound
	}

	// Enriquecer renglones con nombre y precio del producto.
	lines := make([]OrderLineForPDF, 0, len(order.Items))
	for _, item := range order.Items {
		line := OrderLineForPDF{Item: item, ProductName: "Producto " + item.ProductID}
		if product, pErr := uc.productRepo.GetByID(item.ProductID); pErr == nil && product != nil {
			line.ProductName = product.Name
			line.UnitPrice = product.Price
		}
		lines = append(lines, line)
	}

	pdfBytes, err = uc.generator.GenerateOrderPDF(ctx, order, client, lines)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("pedido_%s.pdf", order.ID)
	return pdfBytes, filename, nil
}
