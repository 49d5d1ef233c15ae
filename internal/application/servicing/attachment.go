package servicing

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jhoicas/Oficina-api/internal/application/dto"
	"github.com/jhoicas/Oficina-api/internal/domain"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/repository"
)

const attachmentDescLen = 30

// AttachmentPrefix es el comienzo de la descripción de los adjuntos de una orden.
func AttachmentPrefix(orderID int64) string {
	return fmt.Sprintf("Anexo da OS #%d:", orderID)
}

// AttachmentDescription arma la descripción del archivo adjunto con los
// primeros 30 caracteres de la descripción de la orden.
func AttachmentDescription(orderID int64, orderDesc string) string {
	r := []rune(orderDesc)
	if len(r) > attachmentDescLen {
		r = r[:attachmentDescLen]
	}
	return fmt.Sprintf("%s %s...", AttachmentPrefix(orderID), string(r))
}

func validateAttachment(a *dto.AttachmentInput) error {
	if a == nil {
		return nil
	}
	isPDF := strings.EqualFold(a.Type, "application/pdf") ||
		strings.EqualFold(filepath.Ext(a.Name), ".pdf")
	if !isPDF {
		return fmt.Errorf("%w: el adjunto debe ser PDF", domain.ErrInvalidInput)
	}
	return nil
}

// orderTxStore guarda la orden y, si hay adjunto, su registro en files dentro
// de la misma transacción.
type orderTxStore struct {
	tx         TxRunner
	attachment *dto.AttachmentInput
	actor      entity.Actor
	now        time.Time
	saved      *entity.FileDocument
}

func (s *orderTxStore) Add(ctx context.Context, rec *entity.OrderRecord) (int64, error) {
	var id int64
	err := s.tx.RunServicing(ctx, func(orders repository.OrderRepository, files repository.FileRepository) error {
		newID, err := orders.Add(ctx, rec)
		if err != nil {
			return err
		}
		if err := s.attach(ctx, files, newID, rec); err != nil {
			return err
		}
		id = newID
		return nil
	})
	if err != nil {
		s.saved = nil
		return 0, err
	}
	return id, nil
}

func (s *orderTxStore) Update(ctx context.Context, rec *entity.OrderRecord) error {
	if rec.ID == 0 {
		return nil
	}
	err := s.tx.RunServicing(ctx, func(orders repository.OrderRepository, files repository.FileRepository) error {
		if err := orders.Update(ctx, rec); err != nil {
			return err
		}
		return s.attach(ctx, files, rec.ID, rec)
	})
	if err != nil {
		s.saved = nil
	}
	return err
}

func (s *orderTxStore) attach(ctx context.Context, files repository.FileRepository, orderID int64, rec *entity.OrderRecord) error {
	if s.attachment == nil {
		return nil
	}
	client := rec.Client
	if client.IsZero() {
		client = s.actor.Party()
	}
	f := &entity.FileDocument{
		Name:        s.attachment.Name,
		Client:      client,
		Date:        s.now,
		Description: AttachmentDescription(orderID, rec.Description),
		Type:        "PDF",
		Size:        s.attachment.Size,
		URL:         s.attachment.URL,
	}
	id, err := files.Add(ctx, f)
	if err != nil {
		return fmt.Errorf("registrar adjunto: %w", err)
	}
	f.ID = id
	s.saved = f
	return nil
}
