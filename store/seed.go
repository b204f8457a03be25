package store

import (
	"github.com/AstroAir/student-attendance-system/models"
	"github.com/AstroAir/student-attendance-system/status"
)

var seedStudents = []models.Student{
	{StudentID: "2024001", Name: "张三", ClassName: "人文2401班"},
	{StudentID: "2024002", Name: "李四", ClassName: "人文2401班"},
	{StudentID: "2024003", Name: "王五", ClassName: "人文2401班"},
	{StudentID: "2024004", Name: "赵六", ClassName: "人文2402班"},
	{StudentID: "2024005", Name: "钱七", ClassName: "人文2402班"},
	{StudentID: "2024006", Name: "孙八", ClassName: "人文2402班"},
	{StudentID: "2024007", Name: "周九", ClassName: "人文2403班"},
	{StudentID: "2024008", Name: "吴十", ClassName: "人文2403班"},
}

const seedDate = "12-15"

var seedAttendances = []struct {
	studentID string
	status    string
	remark    string
}{
	{"2024001", status.Present, ""},
	{"2024002", status.Present, ""},
	{"2024003", status.Late, "迟到5分钟"},
	{"2024004", status.Absent, ""},
	{"2024005", status.Present, ""},
	{"2024006", status.SickLeave, "感冒"},
	{"2024007", status.Present, ""},
	{"2024008", status.PersonalLeave, "家中有事"},
}

// seedLocked populates the sample dataset. Callers must either hold both
// mutexes or have exclusive access (New).
func (s *Store) seedLocked() {
	for _, st := range seedStudents {
		s.students[st.StudentID] = st
	}
	for _, rec := range seedAttendances {
		st, ok := s.students[rec.studentID]
		if !ok {
			continue
		}
		a := models.Attendance{
			ID:        s.nextID,
			StudentID: st.StudentID,
			Name:      st.Name,
			ClassName: st.ClassName,
			Date:      seedDate,
			Status:    rec.status,
			Remark:    rec.remark,
		}
		s.nextID++
		s.attendances[a.ID] = a
	}
}
