// Package store holds the in-memory authoritative collections of students
// and attendance records. It is the fallback of last resort when no database
// client is connected (or a database call fails) and the default store for a
// local, no-database deployment.
//
// The store enforces structural invariants only: student_id uniqueness,
// record existence, and monotonic attendance ids. Business validation
// (referenced student must exist, status must be in the vocabulary) belongs
// to the service layer.
package store

import (
	"sort"
	"strings"
	"sync"

	"github.com/AstroAir/student-attendance-system/models"
)

// AttendanceFilter carries the optional search predicates; an empty string
// means "no constraint". StartDate/EndDate are compared lexicographically on
// the "MM-DD" strings, which matches calendar order within a single year but
// not across a year boundary.
type AttendanceFilter struct {
	StudentID string
	Name      string
	ClassName string
	Date      string
	StartDate string
	EndDate   string
	Status    string
}

// Store is safe for concurrent use. Students and attendances are guarded by
// independent mutexes so operations on one collection do not serialize
// against the other; Reset takes both.
type Store struct {
	studentMu sync.Mutex
	attMu     sync.Mutex

	students    map[string]models.Student
	attendances map[int]models.Attendance
	nextID      int
}

// New returns a store populated with the sample dataset.
func New() *Store {
	s := &Store{
		students:    make(map[string]models.Student),
		attendances: make(map[int]models.Attendance),
		nextID:      1,
	}
	s.seedLocked()
	return s
}

/* ---------- students ---------- */

func (s *Store) GetAllStudents() []models.Student {
	s.studentMu.Lock()
	defer s.studentMu.Unlock()

	out := make([]models.Student, 0, len(s.students))
	for _, st := range s.students {
		out = append(out, st)
	}
	return out
}

func (s *Store) GetStudent(studentID string) (models.Student, bool) {
	s.studentMu.Lock()
	defer s.studentMu.Unlock()

	st, ok := s.students[studentID]
	return st, ok
}

// AddStudent inserts the record unless the student_id is already taken.
func (s *Store) AddStudent(st models.Student) bool {
	s.studentMu.Lock()
	defer s.studentMu.Unlock()

	if _, exists := s.students[st.StudentID]; exists {
		return false
	}
	s.students[st.StudentID] = st
	return true
}

// UpdateStudent overwrites name and class with the non-empty fields of patch;
// empty fields keep the stored value.
func (s *Store) UpdateStudent(studentID string, patch models.Student) bool {
	s.studentMu.Lock()
	defer s.studentMu.Unlock()

	st, ok := s.students[studentID]
	if !ok {
		return false
	}
	if patch.Name != "" {
		st.Name = patch.Name
	}
	if patch.ClassName != "" {
		st.ClassName = patch.ClassName
	}
	s.students[studentID] = st
	return true
}

func (s *Store) DeleteStudent(studentID string) bool {
	s.studentMu.Lock()
	defer s.studentMu.Unlock()

	if _, ok := s.students[studentID]; !ok {
		return false
	}
	delete(s.students, studentID)
	return true
}

func (s *Store) StudentExists(studentID string) bool {
	_, ok := s.GetStudent(studentID)
	return ok
}

// SearchStudents filters by exact class match and case-sensitive substring
// match of keyword against student_id or name. Empty arguments match all.
func (s *Store) SearchStudents(keyword, className string) []models.Student {
	s.studentMu.Lock()
	defer s.studentMu.Unlock()

	out := make([]models.Student, 0, len(s.students))
	for _, st := range s.students {
		if className != "" && st.ClassName != className {
			continue
		}
		if keyword != "" &&
			!strings.Contains(st.StudentID, keyword) &&
			!strings.Contains(st.Name, keyword) {
			continue
		}
		out = append(out, st)
	}
	return out
}

/* ---------- attendances ---------- */

func (s *Store) GetAllAttendances() []models.Attendance {
	s.attMu.Lock()
	defer s.attMu.Unlock()

	out := make([]models.Attendance, 0, len(s.attendances))
	for _, a := range s.attendances {
		out = append(out, a)
	}
	return out
}

func (s *Store) GetAttendance(id int) (models.Attendance, bool) {
	s.attMu.Lock()
	defer s.attMu.Unlock()

	a, ok := s.attendances[id]
	return a, ok
}

// AddAttendance stores a copy of a under a freshly assigned id and returns
// the id. Ids are monotonically increasing and never reused within a process
// lifetime, even after deletes.
func (s *Store) AddAttendance(a models.Attendance) int {
	s.attMu.Lock()
	defer s.attMu.Unlock()

	a.ID = s.nextID
	s.nextID++
	s.attendances[a.ID] = a
	return a.ID
}

// UpdateAttendance sets status only when patch.Status is non-empty, but
// always overwrites remark, even with an empty string. The asymmetry against
// UpdateStudent is deliberate and part of the contract.
func (s *Store) UpdateAttendance(id int, patch models.Attendance) bool {
	s.attMu.Lock()
	defer s.attMu.Unlock()

	a, ok := s.attendances[id]
	if !ok {
		return false
	}
	if patch.Status != "" {
		a.Status = patch.Status
	}
	a.Remark = patch.Remark
	s.attendances[id] = a
	return true
}

func (s *Store) DeleteAttendance(id int) bool {
	s.attMu.Lock()
	defer s.attMu.Unlock()

	if _, ok := s.attendances[id]; !ok {
		return false
	}
	delete(s.attendances, id)
	return true
}

// SearchAttendances applies the filter predicates conjunctively.
func (s *Store) SearchAttendances(f AttendanceFilter) []models.Attendance {
	s.attMu.Lock()
	defer s.attMu.Unlock()

	out := make([]models.Attendance, 0, len(s.attendances))
	for _, a := range s.attendances {
		if f.StudentID != "" && a.StudentID != f.StudentID {
			continue
		}
		if f.Name != "" && !strings.Contains(a.Name, f.Name) {
			continue
		}
		if f.ClassName != "" && a.ClassName != f.ClassName {
			continue
		}
		if f.Date != "" && a.Date != f.Date {
			continue
		}
		if f.StartDate != "" && a.Date < f.StartDate {
			continue
		}
		if f.EndDate != "" && a.Date > f.EndDate {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		out = append(out, a)
	}
	return out
}

/* ---------- classes ---------- */

// GetAllClasses returns the distinct class names in ascending order.
func (s *Store) GetAllClasses() []string {
	s.studentMu.Lock()
	defer s.studentMu.Unlock()

	seen := make(map[string]struct{})
	for _, st := range s.students {
		seen[st.ClassName] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (s *Store) GetStudentsByClass(className string) []models.Student {
	s.studentMu.Lock()
	defer s.studentMu.Unlock()

	var out []models.Student
	for _, st := range s.students {
		if st.ClassName == className {
			out = append(out, st)
		}
	}
	return out
}

func (s *Store) GetClassStudentCount(className string) int {
	s.studentMu.Lock()
	defer s.studentMu.Unlock()

	count := 0
	for _, st := range s.students {
		if st.ClassName == className {
			count++
		}
	}
	return count
}

/* ---------- import / lifecycle ---------- */

// ImportStudents inserts records whose student_id is not yet present and
// silently skips the rest. It returns the number inserted.
func (s *Store) ImportStudents(students []models.Student) int {
	s.studentMu.Lock()
	defer s.studentMu.Unlock()

	added := 0
	for _, st := range students {
		if _, exists := s.students[st.StudentID]; exists {
			continue
		}
		s.students[st.StudentID] = st
		added++
	}
	return added
}

// ImportAttendances always inserts, ignoring any id carried by the input and
// assigning fresh sequential ids. It returns the number inserted.
func (s *Store) ImportAttendances(attendances []models.Attendance) int {
	s.attMu.Lock()
	defer s.attMu.Unlock()

	for _, a := range attendances {
		a.ID = s.nextID
		s.nextID++
		s.attendances[a.ID] = a
	}
	return len(attendances)
}

// Clear empties both collections and resets the id counter.
func (s *Store) Clear() {
	s.studentMu.Lock()
	s.students = make(map[string]models.Student)
	s.studentMu.Unlock()

	s.attMu.Lock()
	s.attendances = make(map[int]models.Attendance)
	s.nextID = 1
	s.attMu.Unlock()
}

// Reset restores the sample dataset. Both locks are held together so
// concurrent readers never observe a half-reset store.
func (s *Store) Reset() {
	s.studentMu.Lock()
	defer s.studentMu.Unlock()
	s.attMu.Lock()
	defer s.attMu.Unlock()

	s.students = make(map[string]models.Student)
	s.attendances = make(map[int]models.Attendance)
	s.nextID = 1
	s.seedLocked()
}
