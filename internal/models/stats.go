package models

// DashboardStats is the summary returned by the dashboard endpoint.
type DashboardStats struct {
	TotalEmployees         int               `json:"totalEmployees"`
	PresentToday           int               `json:"presentToday"`
	AbsentToday            int               `json:"absentToday"`
	AttendanceRate         float64           `json:"attendanceRate"`
	TotalDepartments       int               `json:"totalDepartments"`
	WeeklyTrend            []DayTrend        `json:"weeklyTrend"`
	DepartmentDistribution []DepartmentCount `json:"departmentDistribution"`
	TodayAttendanceStatus  []StatusCount     `json:"todayAttendanceStatus"`
}

// DayTrend is the number of present employees on a weekday.
type DayTrend struct {
	Day     string `json:"day"`
	Present int    `json:"present"`
}

// DepartmentCount is the headcount of a department.
type DepartmentCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// StatusCount is the number of attendance records with a given status.
type StatusCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
