// Package aggregate combina carritos, partes, estado y totales derivados en
// las órdenes de servicio y las ventas.
//
// Cada mutación recibe el actor explícitamente y se rechaza sin efecto
// (retorna false) cuando el actor no tiene la capacidad, no es dueño del
// registro o la transición no es legal. El total y el resumen se recalculan
// en cada mutación de carrito.
package aggregate

import (
	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/permission"
)

// owned es la parte común de órdenes y ventas que decide el acceso.
type owned struct {
	id          int64
	client      entity.PartyRef
	responsible entity.PartyRef
}

var ownedOwnership = permission.Ownership[*owned]{
	Responsible: func(o *owned) entity.PartyRef { return o.responsible },
	Client:      func(o *owned) entity.PartyRef { return o.client },
}

// ID devuelve el id persistido; 0 mientras no se haya guardado.
func (o *owned) ID() int64 { return o.id }

// IsNew informa si el registro aún no fue persistido.
func (o *owned) IsNew() bool { return o.id == 0 }

// Client devuelve la referencia al cliente.
func (o *owned) Client() entity.PartyRef { return o.client }

// Responsible devuelve la referencia al responsable.
func (o *owned) Responsible() entity.PartyRef { return o.responsible }

// writeAction es add para registros nuevos y edit para persistidos.
func (o *owned) writeAction() permission.Action {
	if o.IsNew() {
		return permission.ActionAdd
	}
	return permission.ActionEdit
}

// mayWrite chequea capacidad y pertenencia para escribir el registro.
func (o *owned) mayWrite(actor entity.Actor, module entity.Module) bool {
	return permission.Can(actor, module, o.writeAction()) &&
		permission.CanSee(actor, module, o, ownedOwnership)
}

// visible informa si el actor ve el registro según el filtro de pertenencia.
func (o *owned) visible(actor entity.Actor, module entity.Module) bool {
	return permission.CanSee(actor, module, o, ownedOwnership)
}

func (o *owned) setResponsible(actor entity.Actor, module entity.Module, p entity.PartyRef) bool {
	if actor.IsClient() || !o.mayWrite(actor, module) {
		return false
	}
	o.responsible = p
	return true
}

func (o *owned) setClient(actor entity.Actor, module entity.Module, p entity.PartyRef) bool {
	if actor.IsClient() || !o.mayWrite(actor, module) {
		return false
	}
	o.client = p
	return true
}

// prefill aplica los valores iniciales según el rol de quien crea.
func (o *owned) prefill(actor entity.Actor) {
	switch actor.Role {
	case entity.RoleClient:
		o.client = actor.Party()
	case entity.RoleTechnician:
		o.responsible = actor.Party()
	}
}
