package servicing

import (
	"github.com/jhoicas/Oficina-api/internal/application/dto"
	"github.com/jhoicas/Oficina-api/internal/domain/aggregate"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/money"
)

func toLineItems(items []entity.LineItem) []dto.LineItemResponse {
	out := make([]dto.LineItemResponse, 0, len(items))
	for _, it := range items {
		sub := it.Subtotal()
		out = append(out, dto.LineItemResponse{
			ID:           it.LocalID,
			SourceID:     it.SourceID,
			Name:         it.Name,
			Type:         string(it.Kind),
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			UnitPriceTxt: money.Format(it.UnitPrice),
			Subtotal:     sub,
			SubtotalTxt:  money.Format(sub),
		})
	}
	return out
}

func toOrderResponse(o *aggregate.Order, actor entity.Actor) dto.OrderResponse {
	return dto.OrderResponse{
		ID:          o.ID(),
		Client:      o.Client().String(),
		Responsible: o.Responsible().String(),
		DateInit:    o.OpenedAt(),
		Status:      string(o.Status()),
		StatusColor: o.StatusColor(),
		Total:       o.Total(),
		TotalText:   money.Format(o.Total()),
		Description: o.Description(),
		Summary:     o.Summary(),
		Services:    toLineItems(o.Services()),
		Products:    toLineItems(o.Products()),
		CanEdit:     o.CanEdit(actor),
		CanDelete:   o.CanDelete(actor),
	}
}

func toSaleResponse(s *aggregate.Sale, actor entity.Actor) dto.SaleResponse {
	return dto.SaleResponse{
		ID:          s.ID(),
		Client:      s.Client().String(),
		Responsible: s.Responsible().String(),
		Date:        s.Date(),
		Status:      string(s.Status()),
		StatusColor: s.StatusColor(),
		Total:       s.Total(),
		TotalText:   money.Format(s.Total()),
		Details:     s.Details(),
		Summary:     s.Summary(),
		Items:       toLineItems(s.Items()),
		CanEdit:     s.CanEdit(actor),
		CanDelete:   s.CanDelete(actor),
	}
}

func toFileResponse(f *entity.FileDocument) *dto.FileResponse {
	if f == nil {
		return nil
	}
	return &dto.FileResponse{
		ID:          f.ID,
		Name:        f.Name,
		Client:      f.Client.String(),
		Date:        f.Date,
		Description: f.Description,
		Type:        f.Type,
		Size:        f.Size,
		URL:         f.URL,
	}
}
