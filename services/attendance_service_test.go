package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AstroAir/student-attendance-system/status"
	"github.com/AstroAir/student-attendance-system/store"
)

func newAttendanceService() *AttendanceService {
	return NewAttendanceService(nil, store.New())
}

func TestAttendanceCreate(t *testing.T) {
	svc := newAttendanceService()

	att, err := svc.Create("2024001", "12-20", status.Present, "补录")
	require.NoError(t, err)
	assert.Greater(t, att.ID, 0)
	assert.Equal(t, "张三", att.Name)
	assert.Equal(t, "人文2401班", att.ClassName)

	got, err := svc.Get(att.ID)
	require.NoError(t, err)
	assert.Equal(t, att, got)
}

func TestAttendanceCreateValidation(t *testing.T) {
	svc := newAttendanceService()

	_, err := svc.Create("9999999", "12-20", status.Present, "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create("2024001", "12-20", "vacation", "")
	assert.ErrorIs(t, err, ErrValidation)

	// nothing was written on rejection
	assert.Len(t, svc.Search(store.AttendanceFilter{}), 8)
}

func TestAttendanceSnapshotSurvivesStudentRename(t *testing.T) {
	st := store.New()
	students := NewStudentService(nil, st)
	attendances := NewAttendanceService(nil, st)

	att, err := attendances.Create("2024001", "12-20", status.Present, "")
	require.NoError(t, err)

	_, err = students.Update("2024001", "改名", "")
	require.NoError(t, err)

	got, err := attendances.Get(att.ID)
	require.NoError(t, err)
	assert.Equal(t, "张三", got.Name)
}

func TestAttendanceBatchCreate(t *testing.T) {
	svc := newAttendanceService()

	count := svc.BatchCreate("12-21", []BatchRecord{
		{StudentID: "2024001", Status: status.Present},
		{StudentID: "2024002", Status: status.Late},
		{StudentID: "9999999", Status: status.Present}, // unknown student
		{StudentID: "2024003", Status: "vacation"},     // invalid status
	})
	assert.Equal(t, 2, count)
	assert.Len(t, svc.Search(store.AttendanceFilter{Date: "12-21"}), 2)
}

func TestAttendanceUpdateSemantics(t *testing.T) {
	svc := newAttendanceService()

	// empty status keeps the stored status; remark always overwritten
	att, err := svc.Update(3, "", "")
	require.NoError(t, err)
	assert.Equal(t, status.Late, att.Status)
	assert.Equal(t, "", att.Remark)

	att, err = svc.Update(3, status.Present, "已补签")
	require.NoError(t, err)
	assert.Equal(t, status.Present, att.Status)
	assert.Equal(t, "已补签", att.Remark)

	_, err = svc.Update(3, "vacation", "x")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Update(999, status.Present, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAttendanceDelete(t *testing.T) {
	svc := newAttendanceService()

	att, err := svc.Create("2024001", "12-20", status.Present, "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(att.ID))
	_, err = svc.Get(att.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(att.ID), ErrNotFound)
}

func TestAttendanceListPaginationAndSort(t *testing.T) {
	svc := newAttendanceService()

	res := svc.List(AttendanceListQuery{Page: 1, PageSize: 3})
	assert.Equal(t, 8, res.Total)
	require.Len(t, res.Items, 3)
	assert.Equal(t, 1, res.Items[0].ID)

	res = svc.List(AttendanceListQuery{Page: 99, PageSize: 3})
	assert.Empty(t, res.Items)
	assert.Equal(t, 8, res.Total)

	res = svc.List(AttendanceListQuery{SortBy: "date", Order: "desc", PageSize: 100})
	require.Len(t, res.Items, 8)

	res = svc.List(AttendanceListQuery{
		Filter: store.AttendanceFilter{Status: status.Present},
	})
	assert.Equal(t, 4, res.Total)
}

func TestAttendanceSearchOrderedByID(t *testing.T) {
	svc := newAttendanceService()

	items := svc.Search(store.AttendanceFilter{})
	require.Len(t, items, 8)
	for i := 1; i < len(items); i++ {
		assert.Less(t, items[i-1].ID, items[i].ID)
	}
}
