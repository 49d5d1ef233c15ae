package permission

import "github.com/jhoicas/Oficina-api/internal/domain/entity"

// Ownership indica cómo leer el responsable y el cliente de un registro.
// Un extractor nil significa que el registro no tiene ese campo; el rol que
// lo necesita no ve ningún registro de ese tipo.
type Ownership[T any] struct {
	Responsible func(T) entity.PartyRef
	Client      func(T) entity.PartyRef
}

// CanSee aplica el filtro de pertenencia a un solo registro.
//   - admin y manager: todo.
//   - technician: responsable igual (exacto) a su nombre.
//   - client: cliente igual a su nombre, sin distinguir mayúsculas.
//
// Un technician o client sin nombre no es dueño de nada: de lo contrario
// coincidiría con todos los registros sin responsable o sin cliente.
//
// Los módulos que no se filtran por dueño (catálogos, finanzas) son visibles
// para todos los roles; la capacidad view se chequea aparte.
func CanSee[T any](actor entity.Actor, module entity.Module, record T, own Ownership[T]) bool {
	if !module.OwnershipScoped() {
		return true
	}
	switch actor.Role {
	case entity.RoleAdmin, entity.RoleManager:
		return true
	}
	if actor.Party().IsZero() {
		return false
	}
	switch actor.Role {
	case entity.RoleTechnician:
		return own.Responsible != nil && own.Responsible(record).Equal(actor.Party())
	case entity.RoleClient:
		return own.Client != nil && own.Client(record).EqualFold(actor.Party())
	}
	return false
}

// VisibleRecords devuelve, en el mismo orden, el subconjunto de registros que
// el actor puede ver. No consulta la matriz de capacidades.
func VisibleRecords[T any](actor entity.Actor, module entity.Module, records []T, own Ownership[T]) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if CanSee(actor, module, r, own) {
			out = append(out, r)
		}
	}
	return out
}

// OrderOwnership lee responsable y cliente de una orden persistida.
var OrderOwnership = Ownership[*entity.OrderRecord]{
	Responsible: func(o *entity.OrderRecord) entity.PartyRef { return o.Responsible },
	Client:      func(o *entity.OrderRecord) entity.PartyRef { return o.Client },
}

// SaleOwnership lee responsable y cliente de una venta persistida.
var SaleOwnership = Ownership[*entity.SaleRecord]{
	Responsible: func(s *entity.SaleRecord) entity.PartyRef { return s.Responsible },
	Client:      func(s *entity.SaleRecord) entity.PartyRef { return s.Client },
}

// FileOwnership solo conoce el cliente del archivo.
var FileOwnership = Ownership[*entity.FileDocument]{
	Client: func(f *entity.FileDocument) entity.PartyRef { return f.Client },
}
