package repository

import (
	"context"
	"encoding/xml"

	"github.com/cloud-wave-best-zizon/stockify-web/internal/domain"
)

type listarExistencias struct {
	XMLName xml.Name `xml:"ws:listarExistencias"`
}

type listarExistenciasResponse struct {
	Return []domain.StockRecord `xml:"return"`
}

type StockRepository struct {
	soap *SOAPClient
}

func NewStockRepository(soap *SOAPClient) *StockRepository {
	return &StockRepository{soap: soap}
}

func (r *StockRepository) ListStock(ctx context.Context) ([]domain.StockRecord, error) {
	var resp listarExistenciasResponse
	if err := r.soap.Call(ctx, "listarExistencias", listarExistencias{}, &resp); err != nil {
		return nil, err
	}
	return resp.Return, nil
}

// CurrentStock returns the quantity recorded for productID.
// The service has no per-product lookup, so the full list is scanned.
func (r *StockRepository) CurrentStock(ctx context.Context, productID int64) (int, bool, error) {
	records, err := r.ListStock(ctx)
	if err != nil {
		return 0, false, err
	}
	for _, rec := range records {
		if rec.Product != nil && rec.Product.ID == productID {
			return rec.Quantity, true, nil
		}
	}
	return 0, false, nil
}
