package model

// Product is a row of the produto table.
type Product struct {
	ID          uint64 `json:"id_produto" gorm:"column:id_produto;primaryKey;autoIncrement"`
	Name        string `json:"nome_produto" gorm:"column:nome_produto;size:255;not null"`
	Unit        string `json:"unidade_produto" gorm:"column:unidade_produto;size:50;not null"`
	Description string `json:"descricao_produto" gorm:"column:descricao_produto;type:text;not null"`
	TaxCode     string `json:"NCM" gorm:"column:NCM;size:20;not null"`
}

// TableName overrides the table name used by Product.
func (Product) TableName() string {
	return "produto"
}
