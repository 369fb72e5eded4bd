// Package model contains the GORM persistence models mirroring the database
// schema. Mapping to and from domain entities lives next to the repositories.
package model

// All returns every persistence model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&ConfirmEmailTokenModel{},
		&AccessTokenModel{},
		&ContactModel{},
		&ShopModel{},
		&CategoryModel{},
		&CategoryShopModel{},
		&ProductModel{},
		&ProductInfoModel{},
		&ParameterModel{},
		&ProductParameterModel{},
		&OrderModel{},
		&OrderItemModel{},
	}
}
