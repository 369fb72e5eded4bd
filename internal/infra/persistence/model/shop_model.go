package model

// ShopModel mirrors the 'shops' table. UserID is nullable so catalogs loaded
// without a registered owner can still exist.
type ShopModel struct {
	ID     uint   `gorm:"primaryKey"`
	Name   string `gorm:"type:varchar(50);unique;not null"`
	URL    string `gorm:"type:varchar(255)"`
	UserID *uint  `gorm:"index"`
	Status bool   `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}
