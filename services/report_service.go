package services

import (
	"fmt"

	"github.com/AstroAir/student-attendance-system/models"
	"github.com/AstroAir/student-attendance-system/status"
	"github.com/AstroAir/student-attendance-system/store"
)

// ReportService derives read-only reports from the student and attendance
// services; it never mutates anything and inherits their dual-path behavior.
type ReportService struct {
	students    *StudentService
	attendances *AttendanceService
}

func NewReportService(st *StudentService, at *AttendanceService) *ReportService {
	return &ReportService{students: st, attendances: at}
}

type Period struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

/* ---------- details ---------- */

type AttendanceDetail struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Symbol string `json:"symbol"`
}

type DetailsRecord struct {
	StudentID string             `json:"student_id"`
	Name      string             `json:"name"`
	Class     string             `json:"class"`
	Details   []AttendanceDetail `json:"attendance_details"`
}

type DetailsReport struct {
	Period  Period          `json:"period"`
	Records []DetailsRecord `json:"records"`
}

// Details lists, per student matching the optional class/student filters,
// the attendance records inside the date range. Students without any
// matching record still appear, with an empty detail list.
func (s *ReportService) Details(startDate, endDate, className, studentID string) DetailsReport {
	students := s.students.All()
	students = filterStudents(students, className, studentID)

	atts := s.attendances.Search(store.AttendanceFilter{
		ClassName: className,
		StartDate: startDate,
		EndDate:   endDate,
	})
	byStudent := groupByStudent(atts)

	records := make([]DetailsRecord, 0, len(students))
	for _, stu := range students {
		details := make([]AttendanceDetail, 0)
		for _, a := range byStudent[stu.StudentID] {
			details = append(details, AttendanceDetail{
				Date:   a.Date,
				Status: a.Status,
				Symbol: status.Symbol(a.Status),
			})
		}
		records = append(records, DetailsRecord{
			StudentID: stu.StudentID,
			Name:      stu.Name,
			Class:     stu.ClassName,
			Details:   details,
		})
	}
	return DetailsReport{
		Period:  Period{StartDate: startDate, EndDate: endDate},
		Records: records,
	}
}

/* ---------- daily ---------- */

type DailySummary struct {
	TotalStudents  int    `json:"total_students"`
	Present        int    `json:"present"`
	Absent         int    `json:"absent"`
	Late           int    `json:"late"`
	EarlyLeave     int    `json:"early_leave"`
	PersonalLeave  int    `json:"personal_leave"`
	SickLeave      int    `json:"sick_leave"`
	AttendanceRate string `json:"attendance_rate"`
}

type DailyDetail struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Class     string `json:"class"`
	Status    string `json:"status"`
	Symbol    string `json:"symbol"`
}

type DailyReport struct {
	Date    string        `json:"date"`
	Summary DailySummary  `json:"summary"`
	Details []DailyDetail `json:"details"`
}

// Daily summarizes one date: per-status counts, the attendance rate over the
// matching records and the raw detail list.
func (s *ReportService) Daily(date, className string) DailyReport {
	atts := s.attendances.Search(store.AttendanceFilter{
		ClassName: className,
		Date:      date,
	})

	summary := DailySummary{TotalStudents: len(atts)}
	details := make([]DailyDetail, 0, len(atts))
	for _, a := range atts {
		switch a.Status {
		case status.Present:
			summary.Present++
		case status.Absent:
			summary.Absent++
		case status.Late:
			summary.Late++
		case status.EarlyLeave:
			summary.EarlyLeave++
		case status.PersonalLeave:
			summary.PersonalLeave++
		case status.SickLeave:
			summary.SickLeave++
		}
		details = append(details, DailyDetail{
			StudentID: a.StudentID,
			Name:      a.Name,
			Class:     a.ClassName,
			Status:    a.Status,
			Symbol:    status.Symbol(a.Status),
		})
	}
	summary.AttendanceRate = formatRate(summary.Present, summary.TotalStudents)

	return DailyReport{Date: date, Summary: summary, Details: details}
}

/* ---------- summary ---------- */

type SummaryItem struct {
	StudentID          string `json:"student_id"`
	Name               string `json:"name"`
	Class              string `json:"class"`
	TotalDays          int    `json:"total_days"`
	PresentCount       int    `json:"present_count"`
	AbsentCount        int    `json:"absent_count"`
	LateCount          int    `json:"late_count"`
	EarlyLeaveCount    int    `json:"early_leave_count"`
	PersonalLeaveCount int    `json:"personal_leave_count"`
	SickLeaveCount     int    `json:"sick_leave_count"`
	AttendanceRate     string `json:"attendance_rate"`
}

type SummaryReport struct {
	Period  Period        `json:"period"`
	Summary []SummaryItem `json:"summary"`
}

// Summary aggregates per-student status counts across the date range; the
// rate denominator is the number of days the student has any record.
func (s *ReportService) Summary(startDate, endDate, className string) SummaryReport {
	students := filterStudents(s.students.All(), className, "")
	atts := s.attendances.Search(store.AttendanceFilter{
		ClassName: className,
		StartDate: startDate,
		EndDate:   endDate,
	})
	byStudent := groupByStudent(atts)

	items := make([]SummaryItem, 0, len(students))
	for _, stu := range students {
		item := SummaryItem{
			StudentID: stu.StudentID,
			Name:      stu.Name,
			Class:     stu.ClassName,
		}
		for _, a := range byStudent[stu.StudentID] {
			item.TotalDays++
			switch a.Status {
			case status.Present:
				item.PresentCount++
			case status.Absent:
				item.AbsentCount++
			case status.Late:
				item.LateCount++
			case status.EarlyLeave:
				item.EarlyLeaveCount++
			case status.PersonalLeave:
				item.PersonalLeaveCount++
			case status.SickLeave:
				item.SickLeaveCount++
			}
		}
		item.AttendanceRate = formatRate(item.PresentCount, item.TotalDays)
		items = append(items, item)
	}
	return SummaryReport{
		Period:  Period{StartDate: startDate, EndDate: endDate},
		Summary: items,
	}
}

/* ---------- abnormal ---------- */

type AbnormalRecord struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Class     string `json:"class"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	Symbol    string `json:"symbol"`
	Remark    string `json:"remark"`
}

type AbnormalStatistics struct {
	TotalAbnormal   int `json:"total_abnormal"`
	AbsentCount     int `json:"absent_count"`
	LateCount       int `json:"late_count"`
	EarlyLeaveCount int `json:"early_leave_count"`
}

type AbnormalReport struct {
	Period          Period             `json:"period"`
	AbnormalRecords []AbnormalRecord   `json:"abnormal_records"`
	Statistics      AbnormalStatistics `json:"statistics"`
}

// Abnormal filters the range by the abnormal classification, or by the one
// explicit status given as typeOverride.
func (s *ReportService) Abnormal(startDate, endDate, className, typeOverride string) AbnormalReport {
	atts := s.attendances.Search(store.AttendanceFilter{
		ClassName: className,
		StartDate: startDate,
		EndDate:   endDate,
	})

	records := make([]AbnormalRecord, 0)
	stats := AbnormalStatistics{}
	for _, a := range atts {
		match := status.IsAbnormal(a.Status)
		if typeOverride != "" {
			match = a.Status == typeOverride
		}
		if !match {
			continue
		}
		records = append(records, AbnormalRecord{
			StudentID: a.StudentID,
			Name:      a.Name,
			Class:     a.ClassName,
			Date:      a.Date,
			Status:    a.Status,
			Symbol:    status.Symbol(a.Status),
			Remark:    a.Remark,
		})
		switch a.Status {
		case status.Absent:
			stats.AbsentCount++
		case status.Late:
			stats.LateCount++
		case status.EarlyLeave:
			stats.EarlyLeaveCount++
		}
	}
	stats.TotalAbnormal = len(records)

	return AbnormalReport{
		Period:          Period{StartDate: startDate, EndDate: endDate},
		AbnormalRecords: records,
		Statistics:      stats,
	}
}

/* ---------- leave ---------- */

type LeaveRecord struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Class     string `json:"class"`
	Date      string `json:"date"`
	Type      string `json:"type"`
	Symbol    string `json:"symbol"`
	Remark    string `json:"remark"`
}

type LeaveStatistics struct {
	TotalLeave         int `json:"total_leave"`
	PersonalLeaveCount int `json:"personal_leave_count"`
	SickLeaveCount     int `json:"sick_leave_count"`
}

type LeaveReport struct {
	Period       Period          `json:"period"`
	LeaveRecords []LeaveRecord   `json:"leave_records"`
	Statistics   LeaveStatistics `json:"statistics"`
}

// Leave mirrors Abnormal for the leave classification.
func (s *ReportService) Leave(startDate, endDate, className, typeOverride string) LeaveReport {
	atts := s.attendances.Search(store.AttendanceFilter{
		ClassName: className,
		StartDate: startDate,
		EndDate:   endDate,
	})

	records := make([]LeaveRecord, 0)
	stats := LeaveStatistics{}
	for _, a := range atts {
		match := status.IsLeave(a.Status)
		if typeOverride != "" {
			match = a.Status == typeOverride
		}
		if !match {
			continue
		}
		records = append(records, LeaveRecord{
			StudentID: a.StudentID,
			Name:      a.Name,
			Class:     a.ClassName,
			Date:      a.Date,
			Type:      a.Status,
			Symbol:    status.Symbol(a.Status),
			Remark:    a.Remark,
		})
		switch a.Status {
		case status.PersonalLeave:
			stats.PersonalLeaveCount++
		case status.SickLeave:
			stats.SickLeaveCount++
		}
	}
	stats.TotalLeave = len(records)

	return LeaveReport{
		Period:       Period{StartDate: startDate, EndDate: endDate},
		LeaveRecords: records,
		Statistics:   stats,
	}
}

/* ---------- helpers ---------- */

// formatRate renders numer/denom as a two-decimal percentage; a zero
// denominator yields "0.00%", never a division fault.
func formatRate(numer, denom int) string {
	if denom == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(numer)/float64(denom)*100)
}

func filterStudents(students []models.Student, className, studentID string) []models.Student {
	out := students[:0]
	for _, stu := range students {
		if className != "" && stu.ClassName != className {
			continue
		}
		if studentID != "" && stu.StudentID != studentID {
			continue
		}
		out = append(out, stu)
	}
	return out
}

func groupByStudent(atts []models.Attendance) map[string][]models.Attendance {
	m := make(map[string][]models.Attendance)
	for _, a := range atts {
		m[a.StudentID] = append(m[a.StudentID], a)
	}
	return m
}
