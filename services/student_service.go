package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/AstroAir/student-attendance-system/models"
	"github.com/AstroAir/student-attendance-system/store"
)

// StudentService implements the student business rules on top of the
// dual-path policy: every operation prefers the relational backend when a
// client is connected and falls back to the in-memory store on any backend
// failure. The two stores are alternatives, not layers; they are never
// reconciled.
type StudentService struct {
	db    *gorm.DB
	store *store.Store
}

// NewStudentService wires explicit handles; db may be nil for a
// store-only deployment.
func NewStudentService(db *gorm.DB, st *store.Store) *StudentService {
	return &StudentService{db: db, store: st}
}

type StudentListQuery struct {
	Page      int
	PageSize  int
	SortBy    string
	Order     string
	ClassName string
	Keyword   string
}

type StudentList struct {
	Items    []models.Student `json:"items"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// List returns one page of the filtered student set. Total always reflects
// the pre-pagination size.
func (s *StudentService) List(q StudentListQuery) StudentList {
	page, size := clampPage(q.Page, q.PageSize)
	if s.db != nil {
		if res, err := s.listDB(q, page, size); err == nil {
			return res
		}
	}
	return s.listStore(q, page, size)
}

func (s *StudentService) listDB(q StudentListQuery, page, size int) (StudentList, error) {
	tx := s.db.Model(&models.Student{})
	if q.ClassName != "" {
		tx = tx.Where("class_name = ?", q.ClassName)
	}
	if q.Keyword != "" {
		like := "%" + q.Keyword + "%"
		tx = tx.Where("student_id LIKE ? OR name LIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return StudentList{}, err
	}

	var items []models.Student
	order := studentSortColumn(q.SortBy) + " " + sqlOrder(q.Order)
	if err := tx.Order(order).Limit(size).Offset((page - 1) * size).Find(&items).Error; err != nil {
		return StudentList{}, err
	}
	return StudentList{Items: items, Total: int(total), Page: page, PageSize: size}, nil
}

func (s *StudentService) listStore(q StudentListQuery, page, size int) StudentList {
	items := s.store.SearchStudents(q.Keyword, q.ClassName)
	sortStudents(items, q.SortBy, q.Order)
	return StudentList{
		Items:    pageSlice(items, page, size),
		Total:    len(items),
		Page:     page,
		PageSize: size,
	}
}

// All returns every student, ordered by student_id.
func (s *StudentService) All() []models.Student {
	if s.db != nil {
		var items []models.Student
		if err := s.db.Order("student_id ASC").Find(&items).Error; err == nil {
			return items
		}
	}
	items := s.store.GetAllStudents()
	sortStudents(items, "student_id", "asc")
	return items
}

// Get returns the student by key or ErrNotFound.
func (s *StudentService) Get(studentID string) (models.Student, error) {
	if s.db != nil {
		var st models.Student
		err := s.db.Where("student_id = ?", studentID).First(&st).Error
		if err == nil {
			return st, nil
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Student{}, fmt.Errorf("%w: student %q", ErrNotFound, studentID)
		}
		// backend failure: fall through to the store
	}
	if st, ok := s.store.GetStudent(studentID); ok {
		return st, nil
	}
	return models.Student{}, fmt.Errorf("%w: student %q", ErrNotFound, studentID)
}

// Create rejects blank fields and duplicate keys, then inserts. The store is
// never touched on rejection.
func (s *StudentService) Create(st models.Student) (models.Student, error) {
	if st.StudentID == "" {
		return models.Student{}, fmt.Errorf("%w: student_id is required", ErrValidation)
	}
	if st.Name == "" {
		return models.Student{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if st.ClassName == "" {
		return models.Student{}, fmt.Errorf("%w: class is required", ErrValidation)
	}

	if s.db != nil {
		if err := s.createDB(st); !errors.Is(err, errBackend) {
			if err != nil {
				return models.Student{}, err
			}
			return st, nil
		}
	}

	// the store's insert is atomic; a false return is always a key conflict
	if !s.store.AddStudent(st) {
		return models.Student{}, fmt.Errorf("%w: student_id %q", ErrConflict, st.StudentID)
	}
	return st, nil
}

func (s *StudentService) createDB(st models.Student) error {
	var count int64
	if err := s.db.Model(&models.Student{}).
		Where("student_id = ?", st.StudentID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("%w: %v", errBackend, err)
	}
	if count > 0 {
		return fmt.Errorf("%w: student_id %q", ErrConflict, st.StudentID)
	}
	if err := s.db.Create(&st).Error; err != nil {
		return fmt.Errorf("%w: %v", errBackend, err)
	}
	return nil
}

// Update patches name and class. A blank name fails the whole update; a
// blank class keeps the stored class. Returns the record as stored after the
// update.
func (s *StudentService) Update(studentID, name, className string) (models.Student, error) {
	if name == "" {
		return models.Student{}, fmt.Errorf("%w: name cannot be blank", ErrValidation)
	}

	if s.db != nil {
		st, err := s.updateDB(studentID, name, className)
		if !errors.Is(err, errBackend) {
			return st, err
		}
	}

	if !s.store.StudentExists(studentID) {
		return models.Student{}, fmt.Errorf("%w: student %q", ErrNotFound, studentID)
	}
	s.store.UpdateStudent(studentID, models.Student{Name: name, ClassName: className})
	st, ok := s.store.GetStudent(studentID)
	if !ok {
		return models.Student{}, fmt.Errorf("%w: student updated but re-read failed", ErrInternal)
	}
	return st, nil
}

func (s *StudentService) updateDB(studentID, name, className string) (models.Student, error) {
	var count int64
	if err := s.db.Model(&models.Student{}).
		Where("student_id = ?", studentID).
		Count(&count).Error; err != nil {
		return models.Student{}, fmt.Errorf("%w: %v", errBackend, err)
	}
	if count == 0 {
		return models.Student{}, fmt.Errorf("%w: student %q", ErrNotFound, studentID)
	}

	updates := map[string]any{"name": name}
	if className != "" {
		updates["class_name"] = className
	}
	if err := s.db.Model(&models.Student{}).
		Where("student_id = ?", studentID).
		Updates(updates).Error; err != nil {
		return models.Student{}, fmt.Errorf("%w: %v", errBackend, err)
	}

	var st models.Student
	if err := s.db.Where("student_id = ?", studentID).First(&st).Error; err != nil {
		return models.Student{}, fmt.Errorf("%w: student updated but re-read failed", ErrInternal)
	}
	return st, nil
}

// Delete removes the record by key; ErrNotFound when absent.
func (s *StudentService) Delete(studentID string) error {
	if s.db != nil {
		res := s.db.Where("student_id = ?", studentID).Delete(&models.Student{})
		if res.Error == nil {
			if res.RowsAffected > 0 {
				return nil
			}
			return fmt.Errorf("%w: student %q", ErrNotFound, studentID)
		}
	}
	if s.store.DeleteStudent(studentID) {
		return nil
	}
	return fmt.Errorf("%w: student %q", ErrNotFound, studentID)
}

type ClassInfo struct {
	Name         string `json:"name"`
	StudentCount int    `json:"student_count"`
}

// Classes lists distinct class names with per-class student counts, in
// ascending name order.
func (s *StudentService) Classes() []ClassInfo {
	if s.db != nil {
		var rows []struct {
			ClassName string
			Count     int
		}
		err := s.db.Model(&models.Student{}).
			Select("class_name, COUNT(1) AS count").
			Group("class_name").
			Order("class_name ASC").
			Scan(&rows).Error
		if err == nil {
			out := make([]ClassInfo, 0, len(rows))
			for _, r := range rows {
				out = append(out, ClassInfo{Name: r.ClassName, StudentCount: r.Count})
			}
			return out
		}
	}
	names := s.store.GetAllClasses()
	out := make([]ClassInfo, 0, len(names))
	for _, name := range names {
		out = append(out, ClassInfo{Name: name, StudentCount: s.store.GetClassStudentCount(name)})
	}
	return out
}

// StudentsByClass returns the roster of one class, or ErrNotFound for a
// class no student belongs to.
func (s *StudentService) StudentsByClass(className string) ([]models.Student, error) {
	var items []models.Student
	served := false
	if s.db != nil {
		if err := s.db.Where("class_name = ?", className).
			Order("student_id ASC").Find(&items).Error; err == nil {
			served = true
		}
	}
	if !served {
		items = s.store.GetStudentsByClass(className)
		sortStudents(items, "student_id", "asc")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: class %q", ErrNotFound, className)
	}
	return items, nil
}

/* ---------- sorting ---------- */

// studentSortColumn whitelists sort keys; unknown keys fall back to the
// stable default.
func studentSortColumn(sortBy string) string {
	switch sortBy {
	case "name":
		return "name"
	case "class":
		return "class_name"
	default:
		return "student_id"
	}
}

func sqlOrder(order string) string {
	if strings.EqualFold(order, "desc") {
		return "DESC"
	}
	return "ASC"
}

// sortStudents orders the slice in place. The store path always sorts, even
// without an explicit key, because map iteration order is not stable and
// pagination needs a deterministic sequence.
func sortStudents(items []models.Student, sortBy, order string) {
	desc := strings.EqualFold(order, "desc")
	less := func(a, b models.Student) bool { return a.StudentID < b.StudentID }
	switch sortBy {
	case "name":
		less = func(a, b models.Student) bool { return a.Name < b.Name }
	case "class":
		less = func(a, b models.Student) bool { return a.ClassName < b.ClassName }
	}
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}
