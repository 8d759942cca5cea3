package domain

// User представляет модель пользователя в системе.
// Соответствует таблице 'users' в базе данных.
type User struct {
	ID       uint   `json:"id" db:"id" gorm:"primaryKey"`
	Username string `json:"username" db:"username" gorm:"size:255;uniqueIndex;not null"`
	Email    string `json:"email" db:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" db:"password" gorm:"size:255;not null"`
}

func (User) TableName() string {
	return "users"
}

// UserOut — публичное представление пользователя, без хэша пароля.
type UserOut struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
