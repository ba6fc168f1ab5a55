package models

import "time"

// ServiceCategory is a top-level grouping read from the "menage" table.
type ServiceCategory struct {
	ID        int64     `bson:"id" gorm:"column:id;primaryKey" json:"id"`
	NameFR    string    `bson:"name_fr" gorm:"column:name_fr" json:"name_fr"`
	NameAR    string    `bson:"name_ar" gorm:"column:name_ar" json:"name_ar"`
	NameEN    string    `bson:"name_en" gorm:"column:name_en" json:"name_en"`
	CreatedAt time.Time `bson:"created_at" gorm:"column:created_at" json:"created_at"`
}

func (ServiceCategory) TableName() string {
	return "menage"
}

func (c ServiceCategory) LocalizedName() Localized {
	return Localized{FR: c.NameFR, AR: c.NameAR, EN: c.NameEN}
}

// LocalizedDescription is empty; categories carry no description.
func (c ServiceCategory) LocalizedDescription() Localized {
	return Localized{}
}
