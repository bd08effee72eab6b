package models

// Question fields are pointers so a JSON body that omits one inserts NULL
// and lets the store's NOT NULL constraints reject it. CategoryID carries no
// foreign key: the store accepts ids that reference no existing category.
type Question struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Question   *string `gorm:"type:text;not null" json:"question"`
	Answer     *string `gorm:"type:text;not null" json:"answer"`
	CategoryID *uint   `gorm:"index" json:"category_id"`
	Difficulty *int    `json:"difficulty"`
}
