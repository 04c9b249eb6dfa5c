package model

// Laboratory is a row of the laboratorio table. ResponsibleEmail is not
// checked against usuario when written.
type Laboratory struct {
	ID               uint64 `json:"id_laboratorio" gorm:"column:id_laboratorio;primaryKey;autoIncrement"`
	Name             string `json:"nome_laboratorio" gorm:"column:nome_laboratorio;size:255;not null"`
	ResponsibleEmail string `json:"usuario_email" gorm:"column:usuario_email;size:255"`
}

// TableName overrides the table name used by Laboratory.
func (Laboratory) TableName() string {
	return "laboratorio"
}

// LaboratoryListing is a laboratory joined with its responsible user.
// Responsible and Email are nil when usuario_email matches no user.
type LaboratoryListing struct {
	ID          uint64  `json:"id_laboratorio" gorm:"column:id_laboratorio"`
	Name        string  `json:"nome_laboratorio" gorm:"column:nome_laboratorio"`
	Responsible *string `json:"responsavel" gorm:"column:responsavel"`
	Email       *string `json:"email" gorm:"column:email"`
}
