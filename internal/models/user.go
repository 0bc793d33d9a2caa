package models

// Роли пользователей
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User - агент или администратор. IncidentsCount денормализован и не
// пересчитывается автоматически при изменении инцидентов.
type User struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Department     string `json:"department"`
	Status         string `json:"status"`
	JoinDate       string `json:"join_date"`
	IncidentsCount int    `json:"incidents_count"`
}

// Session - активная сессия пользователя, хранится в кэше с TTL
type Session struct {
	Token     string `json:"token"`
	UserID    int64  `json:"user_id"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
}
