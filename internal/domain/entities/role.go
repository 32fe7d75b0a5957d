package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	// RoleAdmin gerencia usuários, limites e janelas de agendamento
	RoleAdmin Role = "admin"
	// RoleTransportadora cadastra placas até o seu limite
	RoleTransportadora Role = "transportadora"
	// RolePortaria confirma chegada e saída física dos veículos
	RolePortaria Role = "portaria"
)

// IsValid verifica se o role é um dos três papéis conhecidos
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleTransportadora, RolePortaria:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
