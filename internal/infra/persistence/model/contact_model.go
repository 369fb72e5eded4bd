package model

// ContactModel mirrors the 'contacts' table. The unique user id keeps it to
// one delivery contact per user.
type ContactModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"unique;not null"`
	City      string `gorm:"type:varchar(50);not null"`
	Street    string `gorm:"type:varchar(100);not null"`
	House     string `gorm:"type:varchar(15)"`
	Structure string `gorm:"type:varchar(15)"`
	Building  string `gorm:"type:varchar(15)"`
	Apartment string `gorm:"type:varchar(15)"`
	Phone     string `gorm:"type:varchar(20);not null"`
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}
