package domain

import "time"

type UserRole string

const (
	RoleCitizen  UserRole = "citizen"
	RoleOperator UserRole = "operator"
	RoleAdmin    UserRole = "admin"
)

// User - пользователь, _id приходит снаружи (UUID)
type User struct {
	ID           string    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Phone        string    `bson:"phone" json:"phone"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         UserRole  `bson:"role" json:"role"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// UserArea - закрепление пользователя за районом, пара (user_id, area_id) уникальна
type UserArea struct {
	UserID string `bson:"user_id" json:"user_id"`
	AreaID int64  `bson:"area_id" json:"area_id"`
}
