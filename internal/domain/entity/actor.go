package entity

// Module identifica un módulo funcional del back-office.
type Module string

// Módulos conocidos (coinciden con el menú lateral).
const (
	ModuleDashboard Module = "dashboard"
	ModuleUsers     Module = "usuarios"
	ModuleSales     Module = "sales"
	ModuleOrders    Module = "orders"
	ModuleWarranty  Module = "warranties"
	ModuleFiles     Module = "files"
	ModuleFinance   Module = "finance"
	ModuleReports   Module = "reports"
	ModuleSettings  Module = "settings"
)

// AllModules lista los módulos en el orden del menú.
func AllModules() []Module {
	return []Module{
		ModuleDashboard, ModuleUsers, ModuleSales, ModuleOrders, ModuleWarranty,
		ModuleFiles, ModuleFinance, ModuleReports, ModuleSettings,
	}
}

// OwnershipScoped informa si los registros del módulo se filtran por dueño
// (responsable o cliente) además de por capacidad.
func (m Module) OwnershipScoped() bool {
	switch m {
	case ModuleOrders, ModuleSales, ModuleFiles:
		return true
	}
	return false
}

// Capability agrupa los cuatro permisos de un módulo.
type Capability struct {
	View   bool `json:"view"`
	Add    bool `json:"add"`
	Edit   bool `json:"edit"`
	Delete bool `json:"delete"`
}

// FullCapability es la capacidad implícita del administrador.
func FullCapability() Capability {
	return Capability{View: true, Add: true, Edit: true, Delete: true}
}

// PermissionRow es la fila de permisos de un usuario para un módulo.
type PermissionRow struct {
	Module Module `json:"module"`
	Capability
}

// Actor es el usuario autenticado que ejecuta una operación. Se pasa
// explícitamente a cada chequeo de permisos; no hay sesión global.
type Actor struct {
	ID          string
	Name        string
	Email       string
	Role        Role
	Permissions []PermissionRow
}

// Party devuelve el nombre del actor como referencia de parte.
func (a Actor) Party() PartyRef { return PartyRef(a.Name) }

// IsClient informa si el actor tiene rol cliente.
func (a Actor) IsClient() bool { return a.Role == RoleClient }
