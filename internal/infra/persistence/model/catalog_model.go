package model

// CategoryModel mirrors the 'categories' table. The primary key is supplied
// by partner feeds rather than generated, so the same id always denotes the
// same category no matter which shop imported it.
type CategoryModel struct {
	ID   uint   `gorm:"primaryKey;autoIncrement:false"`
	Name string `gorm:"type:varchar(40);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// CategoryShopModel mirrors the 'category_shops' join table recording which
// shops carry which categories.
type CategoryShopModel struct {
	CategoryID uint `gorm:"primaryKey;autoIncrement:false"`
	ShopID     uint `gorm:"primaryKey;autoIncrement:false"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryShopModel) TableName() string {
	return "category_shops"
}

// ProductModel mirrors the 'products' table, the dictionary of known
// products shared across shops.
type ProductModel struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"type:varchar(80);not null;uniqueIndex:udx_products_name_category"`
	CategoryID uint   `gorm:"not null;uniqueIndex:udx_products_name_category"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductInfoModel mirrors the 'product_infos' table, the per-shop listing
// rows that get wholesale replaced on every feed import.
type ProductInfoModel struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID uint   `gorm:"not null;uniqueIndex:udx_product_infos_product_shop"`
	ShopID    uint   `gorm:"not null;uniqueIndex:udx_product_infos_product_shop"`
	Name      string `gorm:"type:varchar(80);not null"`
	Model     string `gorm:"type:varchar(80)"`
	Quantity  uint   `gorm:"not null"`
	Price     int64  `gorm:"not null"`
	PriceRRC  *int64

	Product    *ProductModel           `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Shop       *ShopModel              `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
	Parameters []ProductParameterModel `gorm:"foreignKey:ProductInfoID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductInfoModel) TableName() string {
	return "product_infos"
}

// ParameterModel mirrors the 'parameters' table, the dictionary of known
// attribute names.
type ParameterModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(40);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ParameterModel) TableName() string {
	return "parameters"
}

// ProductParameterModel mirrors the 'product_parameters' table binding an
// attribute value to a listing.
type ProductParameterModel struct {
	ID            uint `gorm:"primaryKey"`
	ProductInfoID uint `gorm:"not null;uniqueIndex:udx_product_parameters_info_param"`
	ParameterID   uint `gorm:"not null;uniqueIndex:udx_product_parameters_info_param"`
	Value         uint `gorm:"not null"`

	Parameter *ParameterModel `gorm:"foreignKey:ParameterID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductParameterModel) TableName() string {
	return "product_parameters"
}
