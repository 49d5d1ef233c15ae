// Package permission resuelve qué puede hacer un actor en cada módulo y qué
// registros puede ver.
//
// Son dos chequeos independientes: la matriz de capacidades (view, add, edit,
// delete por módulo) y el filtro de pertenencia por fila, que limita a técnicos
// y clientes a sus propios registros aunque tengan view sobre el módulo.
package permission

import "github.com/jhoicas/Oficina-api/internal/domain/entity"

// Action es una de las cuatro capacidades de un módulo.
type Action string

const (
	ActionView   Action = "view"
	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// EffectiveCapability devuelve la capacidad del actor sobre el módulo.
// El administrador tiene todo; el resto usa su fila guardada o nada.
func EffectiveCapability(actor entity.Actor, module entity.Module) entity.Capability {
	if actor.Role == entity.RoleAdmin {
		return entity.FullCapability()
	}
	for _, row := range actor.Permissions {
		if row.Module == module {
			return row.Capability
		}
	}
	return entity.Capability{}
}

// Allows informa si la capacidad incluye la acción.
func Allows(c entity.Capability, action Action) bool {
	switch action {
	case ActionView:
		return c.View
	case ActionAdd:
		return c.Add
	case ActionEdit:
		return c.Edit
	case ActionDelete:
		return c.Delete
	}
	return false
}

// Can combina EffectiveCapability y Allows.
func Can(actor entity.Actor, module entity.Module, action Action) bool {
	return Allows(EffectiveCapability(actor, module), action)
}

// DefaultRows devuelve los permisos iniciales de un usuario nuevo: solo
// lectura en todos los módulos.
func DefaultRows() []entity.PermissionRow {
	modules := entity.AllModules()
	rows := make([]entity.PermissionRow, 0, len(modules))
	for _, m := range modules {
		rows = append(rows, entity.PermissionRow{Module: m, Capability: entity.Capability{View: true}})
	}
	return rows
}

// VisibleModules lista, en orden de menú, los módulos que el actor puede ver.
func VisibleModules(actor entity.Actor) []entity.Module {
	var out []entity.Module
	for _, m := range entity.AllModules() {
		if EffectiveCapability(actor, m).View {
			out = append(out, m)
		}
	}
	return out
}

// CanBeResponsible informa si un usuario con ese rol puede ser responsable
// de una orden o venta.
func CanBeResponsible(role entity.Role) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleManager, entity.RoleTechnician:
		return true
	}
	return false
}
