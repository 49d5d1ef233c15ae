package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/repository"
)

var _ repository.FileRepository = (*FileRepo)(nil)

// FileRepo implementación de FileRepository (usable con pool o tx).
type FileRepo struct {
	q Querier
}

// NewFileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFileRepository(q Querier) *FileRepo {
	return &FileRepo{q: q}
}

const fileColumns = `
	id, name, COALESCE(client, ''), date, COALESCE(description, ''),
	COALESCE(type, ''), COALESCE(size, ''), COALESCE(url, '')`

func scanFile(row pgx.Row) (*entity.FileDocument, error) {
	var f entity.FileDocument
	if err := row.Scan(&f.ID, &f.Name, &f.Client, &f.Date, &f.Description, &f.Type, &f.Size, &f.URL); err != nil {
		return nil, err
	}
	return &f, nil
}

// GetAll lista los archivos, más recientes primero.
func (r *FileRepo) GetAll(ctx context.Context) ([]*entity.FileDocument, error) {
	rows, err := r.q.Query(ctx, `SELECT `+fileColumns+` FROM files ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()
	var list []*entity.FileDocument
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// FindByDescriptionPrefix usa starts_with para no tener que escapar % y _ del prefijo.
func (r *FileRepo) FindByDescriptionPrefix(ctx context.Context, prefix string) (*entity.FileDocument, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE starts_with(description, $1) ORDER BY id LIMIT 1`
	f, err := scanFile(r.q.QueryRow(ctx, query, prefix))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find file by description: %w", err)
	}
	return f, nil
}

// Add registra un archivo y devuelve su id.
func (r *FileRepo) Add(ctx context.Context, f *entity.FileDocument) (int64, error) {
	query := `
		INSERT INTO files (name, client, date, description, type, size, url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		f.Name, string(f.Client), f.Date, f.Description, f.Type, f.Size, f.URL,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert file: %w", err)
	}
	return id, nil
}

// Delete elimina un archivo. Devuelve false si no existía.
func (r *FileRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM files WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete file: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
