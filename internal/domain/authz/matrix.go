// Package authz contiene la matriz estática de permisos rol/módulo/acción.
// Es una tabla inmutable cargada al inicio del proceso; la lógica de autorización
// (middleware HTTP) la consulta pero no la define, así la matriz se prueba sola.
package authz

// Role categoría fija de usuario. No es extensible en runtime.
type Role string

// Roles del sistema.
const (
	RoleAdmin     Role = "admin"
	RoleSeller    Role = "seller"
	RoleInventory Role = "inventory"
	RoleReadonly  Role = "readonly"
)

// Module área funcional sujeta a permisos.
type Module string

// Módulos del sistema.
const (
	ModuleDashboard Module = "dashboard"
	ModuleInventory Module = "inventory"
	ModuleStock     Module = "stock"
	ModuleSales     Module = "sales"
	ModuleReports   Module = "reports"
	ModuleUsers     Module = "users"
)

// Action operación sobre un módulo.
type Action string

// Acciones posibles.
const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
	ActionManage Action = "manage"
)

// Roles, Modules y Actions en orden estable, para recorridos exhaustivos (menús, tests).
var (
	Roles   = []Role{RoleAdmin, RoleSeller, RoleInventory, RoleReadonly}
	Modules = []Module{ModuleDashboard, ModuleInventory, ModuleStock, ModuleSales, ModuleReports, ModuleUsers}
	Actions = []Action{ActionView, ActionCreate, ActionEdit, ActionDelete, ActionManage}
)

type entry struct {
	role   Role
	module Module
	action Action
}

// matrix: todo par (rol, módulo, acción) no listado implica denegación (default-deny).
var matrix = map[entry]bool{}

func grant(r Role, m Module, actions ...Action) {
	for _, a := range actions {
		matrix[entry{r, m, a}] = true
	}
}

func init() {
	// admin: acceso total
	for _, m := range Modules {
		grant(RoleAdmin, m, Actions...)
	}

	// seller: vende y consulta catálogo
	grant(RoleSeller, ModuleDashboard, ActionView)
	grant(RoleSeller, ModuleInventory, ActionView)
	grant(RoleSeller, ModuleSales, ActionView, ActionCreate, ActionEdit, ActionDelete)
	grant(RoleSeller, ModuleReports, ActionView)

	// inventory: administra catálogo y stock, consulta ventas
	grant(RoleInventory, ModuleDashboard, ActionView)
	grant(RoleInventory, ModuleInventory, ActionView, ActionCreate, ActionEdit, ActionDelete)
	grant(RoleInventory, ModuleStock, ActionView, ActionCreate, ActionManage)
	grant(RoleInventory, ModuleSales, ActionView)
	grant(RoleInventory, ModuleReports, ActionView)

	// readonly: solo lectura, sin usuarios
	grant(RoleReadonly, ModuleDashboard, ActionView)
	grant(RoleReadonly, ModuleInventory, ActionView)
	grant(RoleReadonly, ModuleStock, ActionView)
	grant(RoleReadonly, ModuleSales, ActionView)
	grant(RoleReadonly, ModuleReports, ActionView)
}

// Allows responde si el rol puede ejecutar la acción sobre el módulo.
// Rol, módulo o acción desconocidos devuelven false (fail-closed). Sin efectos secundarios.
func Allows(role Role, module Module, action Action) bool {
	return matrix[entry{role, module, action}]
}

// AccessibleModules devuelve, para un rol, los módulos con al menos una acción permitida
// y qué acciones son. Pensado para que un colaborador externo construya menús.
func AccessibleModules(role Role) map[Module][]Action {
	out := make(map[Module][]Action)
	for _, m := range Modules {
		for _, a := range Actions {
			if matrix[entry{role, m, a}] {
				out[m] = append(out[m], a)
			}
		}
	}
	return out
}
