package model

// User is a row of the usuario table. Login looks users up by Username and
// deletion goes by Email; laboratories reference Email.
type User struct {
	Username string `json:"nome_usuario" gorm:"column:nome_usuario;primaryKey;size:255"`
	Email    string `json:"email" gorm:"column:email;uniqueIndex;size:255;not null"`
	// Password holds whatever was stored at creation time: plaintext, or a
	// bcrypt hash when password hashing is enabled.
	Password string `json:"-" gorm:"column:senha;size:255;not null"`
}

// TableName overrides the table name used by User.
func (User) TableName() string {
	return "usuario"
}

// SessionUser is the profile kept in a session after login.
type SessionUser struct {
	Name  string `json:"nome"`
	Email string `json:"email"`
}
