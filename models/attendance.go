package models

import "time"

// Attendance is one status record for a student on a date ("MM-DD").
//
// Name and ClassName are a point-in-time snapshot of the referenced student,
// taken when the record is created. They are not stored in the relational
// schema (the database path joins students instead); the in-memory store
// keeps the snapshot as-is, so a later student rename does not rewrite
// history there.
type Attendance struct {
	ID        int    `json:"id" gorm:"primaryKey"`
	StudentID string `json:"student_id" gorm:"size:20;not null;index"`
	Name      string `json:"name" gorm:"-"`
	ClassName string `json:"class" gorm:"-"`
	Date      string `json:"date" gorm:"size:5;not null;index"`
	Status    string `json:"status" gorm:"size:20;not null;index;check:status IN ('present','absent','late','early_leave','sick_leave','personal_leave')"`
	Remark    string `json:"remark" gorm:"type:text"`

	Student   *Student  `json:"-" gorm:"foreignKey:StudentID;references:StudentID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
