// internal/models/base.go
package models

// BaseModel carries the storage-internal sequential key. Rows are hard
// deleted, so there is no gorm.DeletedAt here.
type BaseModel struct {
	ID uint `json:"id" gorm:"primaryKey;autoIncrement"`
}
