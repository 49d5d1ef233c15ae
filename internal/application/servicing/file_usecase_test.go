package servicing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Oficina-api/internal/domain"
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
)

type failingFiles struct{ memFiles }

func (failingFiles) GetAll(context.Context) ([]*entity.FileDocument, error) {
	return nil, errors.New("conexión perdida")
}

func storedFiles() *memFiles {
	return &memFiles{files: []*entity.FileDocument{
		{ID: 1, Name: "nota.pdf", Client: "Maria", Description: "Anexo da OS #3: nota"},
		{ID: 5, Name: "laudo.pdf", Client: "Ana", Description: "Anexo da OS #7: laudo"},
		{ID: 3, Name: "recibo.pdf", Client: "maria", Description: "Anexo da OS #4: recibo"},
	}}
}

func TestFileList_ClienteVeSoloLosSuyos(t *testing.T) {
	uc := NewFileUseCase(storedFiles())
	maria := actorWith("Maria", entity.RoleClient, row(entity.ModuleFiles, entity.Capability{View: true}))

	out, err := uc.List(context.Background(), maria)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(3), out[0].ID)
	assert.Equal(t, int64(1), out[1].ID)
}

func TestFileList_GerenteVeTodoDescendente(t *testing.T) {
	uc := NewFileUseCase(storedFiles())
	gerente := actorWith("Gerente", entity.RoleManager, row(entity.ModuleFiles, entity.Capability{View: true}))

	out, err := uc.List(context.Background(), gerente)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, []int64{5, 3, 1}, []int64{out[0].ID, out[1].ID, out[2].ID})
	assert.Equal(t, "laudo.pdf", out[0].Name)
	assert.Equal(t, "Ana", out[0].Client)
}

// Los archivos no tienen responsable: un técnico con view no recibe ninguno.
func TestFileList_TecnicoNoVeArchivos(t *testing.T) {
	uc := NewFileUseCase(storedFiles())
	carlos := actorWith("Carlos", entity.RoleTechnician, row(entity.ModuleFiles, entity.Capability{View: true}))

	out, err := uc.List(context.Background(), carlos)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFileList_SinViewEsForbidden(t *testing.T) {
	uc := NewFileUseCase(storedFiles())
	_, err := uc.List(context.Background(), client)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestFileList_ErrorDelRepositorio(t *testing.T) {
	uc := NewFileUseCase(&failingFiles{})
	_, err := uc.List(context.Background(), admin)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listar archivos")
}
