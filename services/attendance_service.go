package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/AstroAir/student-attendance-system/models"
	"github.com/AstroAir/student-attendance-system/status"
	"github.com/AstroAir/student-attendance-system/store"
)

// AttendanceService owns attendance business rules: the referenced student
// must exist and the status must belong to the vocabulary at creation and
// update. Reads and writes follow the same dual-path policy as
// StudentService.
type AttendanceService struct {
	db    *gorm.DB
	store *store.Store
}

func NewAttendanceService(db *gorm.DB, st *store.Store) *AttendanceService {
	return &AttendanceService{db: db, store: st}
}

type AttendanceListQuery struct {
	Page     int
	PageSize int
	SortBy   string
	Order    string
	Filter   store.AttendanceFilter
}

type AttendanceList struct {
	Items    []models.Attendance `json:"items"`
	Total    int                 `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
}

// attendanceRow is the join projection used by the database path; name and
// class come live from students there, while the store path serves its
// creation-time snapshot.
type attendanceRow struct {
	ID        int
	StudentID string
	Name      string
	ClassName string
	Date      string
	Status    string
	Remark    string
}

func (r attendanceRow) toModel() models.Attendance {
	return models.Attendance{
		ID:        r.ID,
		StudentID: r.StudentID,
		Name:      r.Name,
		ClassName: r.ClassName,
		Date:      r.Date,
		Status:    r.Status,
		Remark:    r.Remark,
	}
}

const attendanceSelect = "a.id AS id, a.student_id AS student_id, " +
	"s.name AS name, s.class_name AS class_name, " +
	"a.date AS date, a.status AS status, a.remark AS remark"

func (s *AttendanceService) joined(f store.AttendanceFilter) *gorm.DB {
	tx := s.db.Table("attendances AS a").
		Joins("JOIN students AS s ON a.student_id = s.student_id")
	if f.StudentID != "" {
		tx = tx.Where("a.student_id = ?", f.StudentID)
	}
	if f.Name != "" {
		tx = tx.Where("s.name LIKE ?", "%"+f.Name+"%")
	}
	if f.ClassName != "" {
		tx = tx.Where("s.class_name = ?", f.ClassName)
	}
	if f.Date != "" {
		tx = tx.Where("a.date = ?", f.Date)
	}
	if f.StartDate != "" {
		tx = tx.Where("a.date >= ?", f.StartDate)
	}
	if f.EndDate != "" {
		tx = tx.Where("a.date <= ?", f.EndDate)
	}
	if f.Status != "" {
		tx = tx.Where("a.status = ?", f.Status)
	}
	return tx
}

// List returns one page of the filtered attendance set.
func (s *AttendanceService) List(q AttendanceListQuery) AttendanceList {
	page, size := clampPage(q.Page, q.PageSize)
	if s.db != nil {
		if res, err := s.listDB(q, page, size); err == nil {
			return res
		}
	}
	return s.listStore(q, page, size)
}

func (s *AttendanceService) listDB(q AttendanceListQuery, page, size int) (AttendanceList, error) {
	var total int64
	if err := s.joined(q.Filter).Count(&total).Error; err != nil {
		return AttendanceList{}, err
	}

	var rows []attendanceRow
	order := attendanceSortColumn(q.SortBy) + " " + sqlOrder(q.Order)
	if err := s.joined(q.Filter).
		Select(attendanceSelect).
		Order(order).
		Limit(size).
		Offset((page - 1) * size).
		Scan(&rows).Error; err != nil {
		return AttendanceList{}, err
	}

	items := make([]models.Attendance, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.toModel())
	}
	return AttendanceList{Items: items, Total: int(total), Page: page, PageSize: size}, nil
}

func (s *AttendanceService) listStore(q AttendanceListQuery, page, size int) AttendanceList {
	items := s.store.SearchAttendances(q.Filter)
	sortAttendances(items, q.SortBy, q.Order)
	return AttendanceList{
		Items:    pageSlice(items, page, size),
		Total:    len(items),
		Page:     page,
		PageSize: size,
	}
}

// Search returns the full filtered set (no pagination), ordered by id. The
// report service and data export are built on it.
func (s *AttendanceService) Search(f store.AttendanceFilter) []models.Attendance {
	if s.db != nil {
		var rows []attendanceRow
		err := s.joined(f).
			Select(attendanceSelect).
			Order("a.id ASC").
			Scan(&rows).Error
		if err == nil {
			items := make([]models.Attendance, 0, len(rows))
			for _, r := range rows {
				items = append(items, r.toModel())
			}
			return items
		}
	}
	items := s.store.SearchAttendances(f)
	sortAttendances(items, "", "")
	return items
}

// Get returns the record by id or ErrNotFound.
func (s *AttendanceService) Get(id int) (models.Attendance, error) {
	if s.db != nil {
		att, err := s.getDB(id)
		if !errors.Is(err, errBackend) {
			return att, err
		}
	}
	if att, ok := s.store.GetAttendance(id); ok {
		return att, nil
	}
	return models.Attendance{}, fmt.Errorf("%w: attendance %d", ErrNotFound, id)
}

func (s *AttendanceService) getDB(id int) (models.Attendance, error) {
	var rows []attendanceRow
	if err := s.joined(store.AttendanceFilter{}).
		Select(attendanceSelect).
		Where("a.id = ?", id).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return models.Attendance{}, fmt.Errorf("%w: %v", errBackend, err)
	}
	if len(rows) == 0 {
		return models.Attendance{}, fmt.Errorf("%w: attendance %d", ErrNotFound, id)
	}
	return rows[0].toModel(), nil
}

// lookupStudent resolves the referenced student through the same dual-path
// preference as everything else.
func (s *AttendanceService) lookupStudent(studentID string) (models.Student, bool) {
	if s.db != nil {
		var st models.Student
		err := s.db.Where("student_id = ?", studentID).First(&st).Error
		if err == nil {
			return st, true
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Student{}, false
		}
	}
	return s.store.GetStudent(studentID)
}

// Create validates the reference and the status, snapshots the student's
// name and class, and inserts. Nothing is written on rejection.
func (s *AttendanceService) Create(studentID, date, statusVal, remark string) (models.Attendance, error) {
	stu, ok := s.lookupStudent(studentID)
	if !ok {
		return models.Attendance{}, fmt.Errorf("%w: student %q does not exist", ErrValidation, studentID)
	}
	if !status.IsValid(statusVal) {
		return models.Attendance{}, fmt.Errorf("%w: invalid status %q", ErrValidation, statusVal)
	}

	att := models.Attendance{
		StudentID: studentID,
		Name:      stu.Name,
		ClassName: stu.ClassName,
		Date:      date,
		Status:    statusVal,
		Remark:    remark,
	}
	if s.db != nil {
		rec := att
		if err := s.db.Create(&rec).Error; err == nil {
			att.ID = rec.ID
			return att, nil
		}
	}
	att.ID = s.store.AddAttendance(att)
	return att, nil
}

// BatchRecord is one (student, status) entry of a batch create.
type BatchRecord struct {
	StudentID string `json:"student_id" validate:"required"`
	Status    string `json:"status" validate:"required"`
}

// BatchCreate runs each record through the single-create path against one
// shared date and returns only the success count; callers needing
// per-record failure detail must issue single creates instead.
func (s *AttendanceService) BatchCreate(date string, records []BatchRecord) int {
	count := 0
	for _, r := range records {
		if _, err := s.Create(r.StudentID, date, r.Status, ""); err == nil {
			count++
		}
	}
	return count
}

// Update rejects unknown ids and invalid non-empty statuses. An empty status
// leaves the stored status unchanged; remark is always overwritten, even
// with an empty string.
func (s *AttendanceService) Update(id int, statusVal, remark string) (models.Attendance, error) {
	if statusVal != "" && !status.IsValid(statusVal) {
		return models.Attendance{}, fmt.Errorf("%w: invalid status %q", ErrValidation, statusVal)
	}

	if s.db != nil {
		att, err := s.updateDB(id, statusVal, remark)
		if !errors.Is(err, errBackend) {
			return att, err
		}
	}

	if _, ok := s.store.GetAttendance(id); !ok {
		return models.Attendance{}, fmt.Errorf("%w: attendance %d", ErrNotFound, id)
	}
	s.store.UpdateAttendance(id, models.Attendance{Status: statusVal, Remark: remark})
	att, ok := s.store.GetAttendance(id)
	if !ok {
		return models.Attendance{}, fmt.Errorf("%w: attendance updated but re-read failed", ErrInternal)
	}
	return att, nil
}

func (s *AttendanceService) updateDB(id int, statusVal, remark string) (models.Attendance, error) {
	var count int64
	if err := s.db.Model(&models.Attendance{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return models.Attendance{}, fmt.Errorf("%w: %v", errBackend, err)
	}
	if count == 0 {
		return models.Attendance{}, fmt.Errorf("%w: attendance %d", ErrNotFound, id)
	}

	updates := map[string]any{"remark": remark}
	if statusVal != "" {
		updates["status"] = statusVal
	}
	if err := s.db.Model(&models.Attendance{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return models.Attendance{}, fmt.Errorf("%w: %v", errBackend, err)
	}

	att, err := s.getDB(id)
	if err != nil {
		return models.Attendance{}, fmt.Errorf("%w: attendance updated but re-read failed", ErrInternal)
	}
	return att, nil
}

// Delete removes the record by id; ErrNotFound when absent.
func (s *AttendanceService) Delete(id int) error {
	if s.db != nil {
		res := s.db.Where("id = ?", id).Delete(&models.Attendance{})
		if res.Error == nil {
			if res.RowsAffected > 0 {
				return nil
			}
			return fmt.Errorf("%w: attendance %d", ErrNotFound, id)
		}
	}
	if s.store.DeleteAttendance(id) {
		return nil
	}
	return fmt.Errorf("%w: attendance %d", ErrNotFound, id)
}

/* ---------- sorting ---------- */

func attendanceSortColumn(sortBy string) string {
	switch sortBy {
	case "student_id":
		return "a.student_id"
	case "name":
		return "s.name"
	case "date":
		return "a.date"
	default:
		return "a.id"
	}
}

// sortAttendances orders the slice in place; the default (and any unknown
// sort key) is ascending id, the stable insertion order.
func sortAttendances(items []models.Attendance, sortBy, order string) {
	desc := strings.EqualFold(order, "desc")
	less := func(a, b models.Attendance) bool { return a.ID < b.ID }
	switch sortBy {
	case "student_id":
		less = func(a, b models.Attendance) bool { return a.StudentID < b.StudentID }
	case "name":
		less = func(a, b models.Attendance) bool { return a.Name < b.Name }
	case "date":
		less = func(a, b models.Attendance) bool { return a.Date < b.Date }
	}
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}
