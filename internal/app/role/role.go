package role

// Роль пользователя в системе
type Role int

const (
	Customer Role = iota // обычный клиент витрины
	Admin                // доступ к админ-панели
)

func (r Role) String() string {
	switch r {
	case Admin:
		return "admin"
	default:
		return "customer"
	}
}
