package models

import "time"

// ServiceType is a purchasable sub-service read from the "types_menage" table.
type ServiceType struct {
	ID            int64     `bson:"id" gorm:"column:id;primaryKey" json:"id"`
	MenageID      int64     `bson:"menage_id" gorm:"column:menage_id" json:"menage_id"`
	NameFR        string    `bson:"name_fr" gorm:"column:name_fr" json:"name_fr"`
	NameAR        string    `bson:"name_ar" gorm:"column:name_ar" json:"name_ar"`
	NameEN        string    `bson:"name_en" gorm:"column:name_en" json:"name_en"`
	DescriptionFR string    `bson:"description_fr" gorm:"column:description_fr" json:"description_fr"`
	DescriptionAR string    `bson:"description_ar" gorm:"column:description_ar" json:"description_ar"`
	DescriptionEN string    `bson:"description_en" gorm:"column:description_en" json:"description_en"`
	Price         *float64  `bson:"price,omitempty" gorm:"column:price" json:"price,omitempty"` // per unit or flat, nil when not priced
	Image         string    `bson:"image" gorm:"column:image" json:"image"`
	CreatedAt     time.Time `bson:"created_at" gorm:"column:created_at" json:"created_at"`

	// Menage is the nested category relation; filled by the repository.
	Menage *ServiceCategory `bson:"-" gorm:"foreignKey:MenageID" json:"menage,omitempty"`
}

func (ServiceType) TableName() string {
	return "types_menage"
}

func (t ServiceType) LocalizedName() Localized {
	return Localized{FR: t.NameFR, AR: t.NameAR, EN: t.NameEN}
}

func (t ServiceType) LocalizedDescription() Localized {
	return Localized{FR: t.DescriptionFR, AR: t.DescriptionAR, EN: t.DescriptionEN}
}

// PriceValue returns the price, or 0 when the type carries none.
func (t ServiceType) PriceValue() float64 {
	if t.Price == nil || *t.Price < 0 {
		return 0
	}
	return *t.Price
}
