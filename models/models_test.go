package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The JSON shape is part of the API contract: every exposed field survives a
// marshal/unmarshal round trip unchanged.
func TestJSONRoundTrip(t *testing.T) {
	student := Student{StudentID: "2024001", Name: "张三", ClassName: "人文2401班"}
	attendance := Attendance{
		ID:        3,
		StudentID: "2024001",
		Name:      "张三",
		ClassName: "人文2401班",
		Date:      "12-15",
		Status:    "late",
		Remark:    "迟到5分钟",
	}
	user := User{ID: 1, Username: "admin", Role: "admin"}

	var s2 Student
	raw, err := json.Marshal(student)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &s2))
	assert.Equal(t, student, s2)

	var a2 Attendance
	raw, err = json.Marshal(attendance)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &a2))
	assert.Equal(t, attendance, a2)

	var u2 User
	raw, err = json.Marshal(user)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &u2))
	assert.Equal(t, user, u2)
}

func TestJSONHidesSensitiveAndInternalFields(t *testing.T) {
	raw, err := json.Marshal(User{Username: "admin", PasswordHash: "deadbeef", Salt: "cafe"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "deadbeef")
	assert.NotContains(t, string(raw), "cafe")

	raw, err = json.Marshal(Student{StudentID: "2024001", Name: "张三", ClassName: "人文2401班"})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "CreatedAt")
	assert.Contains(t, string(raw), `"class"`)
}
