package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AstroAir/student-attendance-system/models"
	"github.com/AstroAir/student-attendance-system/store"
)

func newStudentService() *StudentService {
	return NewStudentService(nil, store.New())
}

func TestStudentCreateValidation(t *testing.T) {
	svc := newStudentService()

	_, err := svc.Create(models.Student{Name: "无号", ClassName: "人文2401班"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(models.Student{StudentID: "2024009", ClassName: "人文2401班"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(models.Student{StudentID: "2024009", Name: "新生"})
	assert.ErrorIs(t, err, ErrValidation)

	// nothing was written on rejection
	_, err = svc.Get("2024009")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStudentCreateConflict(t *testing.T) {
	svc := newStudentService()

	_, err := svc.Create(models.Student{StudentID: "2024001", Name: "冒名", ClassName: "人文2401班"})
	assert.ErrorIs(t, err, ErrConflict)

	st, err := svc.Get("2024001")
	require.NoError(t, err)
	assert.Equal(t, "张三", st.Name)
}

func TestStudentCreateConcurrentSameID(t *testing.T) {
	svc := newStudentService()

	// exactly one of two racing creates wins; the loser sees a conflict,
	// never an internal error
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := svc.Create(models.Student{StudentID: "2024009", Name: "新生", ClassName: "人文2403班"})
			errs <- err
		}()
	}
	a, b := <-errs, <-errs

	if a == nil {
		assert.ErrorIs(t, b, ErrConflict)
	} else {
		assert.NoError(t, b)
		assert.ErrorIs(t, a, ErrConflict)
	}
}

func TestStudentCreateAndGet(t *testing.T) {
	svc := newStudentService()

	created, err := svc.Create(models.Student{StudentID: "2024009", Name: "新生", ClassName: "人文2403班"})
	require.NoError(t, err)
	assert.Equal(t, "2024009", created.StudentID)

	got, err := svc.Get("2024009")
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
}

func TestStudentUpdateRejectsBlankName(t *testing.T) {
	svc := newStudentService()

	_, err := svc.Update("2024001", "", "人文2402班")
	assert.ErrorIs(t, err, ErrValidation)

	// the whole update failed; the record is untouched
	st, _ := svc.Get("2024001")
	assert.Equal(t, "张三", st.Name)
	assert.Equal(t, "人文2401班", st.ClassName)
}

func TestStudentUpdateBlankClassKeepsStored(t *testing.T) {
	svc := newStudentService()

	st, err := svc.Update("2024001", "张小三", "")
	require.NoError(t, err)
	assert.Equal(t, "张小三", st.Name)
	assert.Equal(t, "人文2401班", st.ClassName)

	_, err = svc.Update("9999999", "无人", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStudentDelete(t *testing.T) {
	svc := newStudentService()

	require.NoError(t, svc.Delete("2024008"))
	assert.ErrorIs(t, svc.Delete("2024008"), ErrNotFound)
}

func TestStudentListPagination(t *testing.T) {
	svc := newStudentService()

	full := svc.All()
	require.Len(t, full, 8)

	// pages concatenate back to the full ordered set
	var seen []models.Student
	for page := 1; ; page++ {
		res := svc.List(StudentListQuery{Page: page, PageSize: 3})
		assert.Equal(t, 8, res.Total)
		if len(res.Items) == 0 {
			break
		}
		seen = append(seen, res.Items...)
	}
	assert.Equal(t, full, seen)
}

func TestStudentListClamps(t *testing.T) {
	svc := newStudentService()

	res := svc.List(StudentListQuery{Page: -5, PageSize: 0})
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 20, res.PageSize)
	assert.Len(t, res.Items, 8)

	res = svc.List(StudentListQuery{Page: 1, PageSize: 500})
	assert.Equal(t, 100, res.PageSize)

	res = svc.List(StudentListQuery{Page: 99, PageSize: 10})
	assert.Empty(t, res.Items)
	assert.Equal(t, 8, res.Total)
}

func TestStudentListFiltersAndSort(t *testing.T) {
	svc := newStudentService()

	res := svc.List(StudentListQuery{ClassName: "人文2401班"})
	assert.Equal(t, 3, res.Total)

	res = svc.List(StudentListQuery{Keyword: "张三"})
	assert.Equal(t, 1, res.Total)

	res = svc.List(StudentListQuery{SortBy: "student_id", Order: "desc"})
	require.Len(t, res.Items, 8)
	assert.Equal(t, "2024008", res.Items[0].StudentID)

	// unknown sort key falls back to student_id ascending
	res = svc.List(StudentListQuery{SortBy: "shoe_size"})
	assert.Equal(t, "2024001", res.Items[0].StudentID)
}

func TestClasses(t *testing.T) {
	svc := newStudentService()

	classes := svc.Classes()
	require.Len(t, classes, 3)
	assert.Equal(t, ClassInfo{Name: "人文2401班", StudentCount: 3}, classes[0])
	assert.Equal(t, ClassInfo{Name: "人文2403班", StudentCount: 2}, classes[2])
}

func TestStudentsByClass(t *testing.T) {
	svc := newStudentService()

	students, err := svc.StudentsByClass("人文2403班")
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "2024007", students[0].StudentID)

	_, err = svc.StudentsByClass("人文2404班")
	assert.ErrorIs(t, err, ErrNotFound)
}
