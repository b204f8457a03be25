package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AstroAir/student-attendance-system/models"
	"github.com/AstroAir/student-attendance-system/status"
)

func TestNewSeedsSampleData(t *testing.T) {
	s := New()

	assert.Len(t, s.GetAllStudents(), 8)
	assert.Len(t, s.GetAllAttendances(), 8)

	assert.Equal(t, []string{"人文2401班", "人文2402班", "人文2403班"}, s.GetAllClasses())
	assert.Equal(t, 3, s.GetClassStudentCount("人文2401班"))
	assert.Equal(t, 3, s.GetClassStudentCount("人文2402班"))
	assert.Equal(t, 2, s.GetClassStudentCount("人文2403班"))
	assert.Equal(t, 0, s.GetClassStudentCount("人文2404班"))

	st, ok := s.GetStudent("2024001")
	require.True(t, ok)
	assert.Equal(t, "张三", st.Name)
}

func TestAddStudentRejectsDuplicate(t *testing.T) {
	s := New()

	assert.False(t, s.AddStudent(models.Student{StudentID: "2024001", Name: "冒名", ClassName: "人文2401班"}))

	st, _ := s.GetStudent("2024001")
	assert.Equal(t, "张三", st.Name)

	assert.True(t, s.AddStudent(models.Student{StudentID: "2024009", Name: "新生", ClassName: "人文2403班"}))
	assert.True(t, s.StudentExists("2024009"))
}

func TestUpdateStudentKeepsBlankFields(t *testing.T) {
	s := New()

	assert.True(t, s.UpdateStudent("2024001", models.Student{Name: "张小三"}))
	st, _ := s.GetStudent("2024001")
	assert.Equal(t, "张小三", st.Name)
	assert.Equal(t, "人文2401班", st.ClassName)

	assert.True(t, s.UpdateStudent("2024001", models.Student{ClassName: "人文2402班"}))
	st, _ = s.GetStudent("2024001")
	assert.Equal(t, "张小三", st.Name)
	assert.Equal(t, "人文2402班", st.ClassName)

	assert.False(t, s.UpdateStudent("9999999", models.Student{Name: "无人"}))
}

func TestDeleteStudent(t *testing.T) {
	s := New()

	assert.True(t, s.DeleteStudent("2024008"))
	assert.False(t, s.StudentExists("2024008"))
	assert.False(t, s.DeleteStudent("2024008"))
}

func TestSearchStudents(t *testing.T) {
	s := New()

	assert.Len(t, s.SearchStudents("", ""), 8)
	assert.Len(t, s.SearchStudents("", "人文2401班"), 3)
	assert.Len(t, s.SearchStudents("2024", ""), 8)
	assert.Len(t, s.SearchStudents("张三", ""), 1)
	assert.Len(t, s.SearchStudents("张三", "人文2402班"), 0)
	assert.Len(t, s.SearchStudents("不存在", ""), 0)
}

func TestAttendanceIDsAreMonotonicAndNeverReused(t *testing.T) {
	s := New()

	first := s.AddAttendance(models.Attendance{StudentID: "2024001", Date: "12-16", Status: status.Present})
	assert.Equal(t, 9, first)

	assert.True(t, s.DeleteAttendance(first))
	second := s.AddAttendance(models.Attendance{StudentID: "2024001", Date: "12-17", Status: status.Present})
	assert.Equal(t, 10, second)

	_, ok := s.GetAttendance(first)
	assert.False(t, ok)
}

func TestUpdateAttendanceAsymmetry(t *testing.T) {
	s := New()

	// seed record 3 is 王五, late, with a remark
	before, ok := s.GetAttendance(3)
	require.True(t, ok)
	require.Equal(t, status.Late, before.Status)
	require.NotEmpty(t, before.Remark)

	// empty status keeps the stored status; remark is always overwritten
	assert.True(t, s.UpdateAttendance(3, models.Attendance{Remark: ""}))
	after, _ := s.GetAttendance(3)
	assert.Equal(t, status.Late, after.Status)
	assert.Equal(t, "", after.Remark)

	assert.True(t, s.UpdateAttendance(3, models.Attendance{Status: status.Present, Remark: "已补签"}))
	after, _ = s.GetAttendance(3)
	assert.Equal(t, status.Present, after.Status)
	assert.Equal(t, "已补签", after.Remark)

	assert.False(t, s.UpdateAttendance(999, models.Attendance{}))
}

func TestSearchAttendancesFilters(t *testing.T) {
	s := New()

	assert.Len(t, s.SearchAttendances(AttendanceFilter{}), 8)
	assert.Len(t, s.SearchAttendances(AttendanceFilter{StudentID: "2024001"}), 1)
	assert.Len(t, s.SearchAttendances(AttendanceFilter{ClassName: "人文2401班"}), 3)
	assert.Len(t, s.SearchAttendances(AttendanceFilter{Status: status.Present}), 4)
	assert.Len(t, s.SearchAttendances(AttendanceFilter{Date: "12-15"}), 8)
	assert.Len(t, s.SearchAttendances(AttendanceFilter{Date: "12-16"}), 0)
	assert.Len(t, s.SearchAttendances(AttendanceFilter{Name: "王"}), 1)

	// conjunction
	assert.Len(t, s.SearchAttendances(AttendanceFilter{
		ClassName: "人文2401班",
		Status:    status.Present,
	}), 2)
}

func TestSearchAttendancesDateRange(t *testing.T) {
	s := New()
	s.AddAttendance(models.Attendance{StudentID: "2024001", Date: "12-10", Status: status.Present})
	s.AddAttendance(models.Attendance{StudentID: "2024001", Date: "12-20", Status: status.Present})

	assert.Len(t, s.SearchAttendances(AttendanceFilter{StartDate: "12-15"}), 9)
	assert.Len(t, s.SearchAttendances(AttendanceFilter{EndDate: "12-15"}), 9)
	assert.Len(t, s.SearchAttendances(AttendanceFilter{StartDate: "12-11", EndDate: "12-19"}), 8)
	assert.Len(t, s.SearchAttendances(AttendanceFilter{StartDate: "12-21"}), 0)
}

func TestImportStudentsSkipsExisting(t *testing.T) {
	s := New()

	added := s.ImportStudents([]models.Student{
		{StudentID: "2024001", Name: "重复", ClassName: "人文2401班"},
		{StudentID: "2024010", Name: "新生甲", ClassName: "人文2403班"},
		{StudentID: "2024011", Name: "新生乙", ClassName: "人文2403班"},
	})
	assert.Equal(t, 2, added)
	assert.Len(t, s.GetAllStudents(), 10)

	st, _ := s.GetStudent("2024001")
	assert.Equal(t, "张三", st.Name)
}

func TestImportAttendancesAssignsFreshIDs(t *testing.T) {
	s := New()

	n := s.ImportAttendances([]models.Attendance{
		{ID: 1, StudentID: "2024001", Date: "12-16", Status: status.Present},
		{ID: 1, StudentID: "2024002", Date: "12-16", Status: status.Absent},
	})
	assert.Equal(t, 2, n)
	assert.Len(t, s.GetAllAttendances(), 10)

	// the original id 1 record survives untouched
	a, ok := s.GetAttendance(1)
	require.True(t, ok)
	assert.Equal(t, "12-15", a.Date)
}

func TestClearAndReset(t *testing.T) {
	s := New()

	s.Clear()
	assert.Empty(t, s.GetAllStudents())
	assert.Empty(t, s.GetAllAttendances())

	// counter restarts after Clear
	id := s.AddAttendance(models.Attendance{StudentID: "2024001", Date: "12-16", Status: status.Present})
	assert.Equal(t, 1, id)

	s.Reset()
	assert.Len(t, s.GetAllStudents(), 8)
	assert.Len(t, s.GetAllAttendances(), 8)
}
