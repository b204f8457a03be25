package models

import "time"

// Student is keyed by the business student_id, not a surrogate id. The API
// exposes class_name as "class".
type Student struct {
	StudentID string    `json:"student_id" gorm:"primaryKey;size:20"`
	Name      string    `json:"name" gorm:"size:50;not null;index"`
	ClassName string    `json:"class" gorm:"column:class_name;size:50;not null;index"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// BasicView is the reduced shape used by the class roster endpoint.
func (s Student) BasicView() map[string]any {
	return map[string]any{
		"student_id": s.StudentID,
		"name":       s.Name,
	}
}
