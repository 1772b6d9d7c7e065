package services

import (
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// LogEntry records a single handled request.
type LogEntry struct {
	Timestamp    time.Time
	Path         string
	Method       string
	StatusCode   int
	ResponseTime time.Duration
}

// MonitoringService keeps an in-memory request log for the monitoring
// dashboard.
type MonitoringService struct {
	logs []LogEntry
	mu   sync.RWMutex
}

// NewMonitoringService creates a new MonitoringService.
func NewMonitoringService() *MonitoringService {
	return &MonitoringService{
		logs: make([]LogEntry, 0),
	}
}

// LogRequest appends a request record.
func (s *MonitoringService) LogRequest(entry LogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, entry)
}

// LoggingMiddleware is the gin middleware recording request metadata.
// Admin and monitoring paths are excluded so the dashboard does not
// count its own traffic.
func (s *MonitoringService) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/v1/admin") || strings.HasPrefix(path, "/api/v1/monitoring") {
			return
		}

		s.LogRequest(LogEntry{
			Timestamp:    start,
			Path:         path,
			Method:       c.Request.Method,
			StatusCode:   c.Writer.Status(),
			ResponseTime: time.Since(start),
		})
	}
}

// DashboardData is the aggregated view served to the dashboard.
type DashboardData struct {
	RequestsOverTime []map[string]interface{} `json:"requestsOverTime"`
	Endpoints        map[string]int           `json:"endpoints"`
	StatusCodes      []map[string]interface{} `json:"statusCodes"`
	AvgResponseTimes []map[string]interface{} `json:"avgResponseTimes"`
	RecentErrors     []LogEntry               `json:"recentErrors"`
}

// GetDashboardData aggregates the log over the last periodHours hours.
func (s *MonitoringService) GetDashboardData(periodHours int) DashboardData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Display times in Chilean local time; fall back to UTC.
	clt, err := time.LoadLocation("America/Santiago")
	if err != nil {
		clt = time.UTC
	}

	now := time.Now().In(clt)
	since := now.Add(-time.Duration(periodHours) * time.Hour)

	filteredLogs := make([]LogEntry, 0)
	for _, entry := range s.logs {
		if entry.Timestamp.After(since) {
			filteredLogs = append(filteredLogs, entry)
		}
	}

	// Hourly request buckets, oldest first.
	requestsOverTime := make([]map[string]interface{}, periodHours)
	hourlyBuckets := make(map[string]int)
	for i := 0; i < periodHours; i++ {
		targetTime := now.Add(-time.Duration(periodHours-1-i) * time.Hour)
		bucketKey := targetTime.Truncate(time.Hour).Format(time.RFC3339)
		hourlyBuckets[bucketKey] = 0
		requestsOverTime[i] = map[string]interface{}{"time": targetTime.Format("15:00"), "requests": 0}
	}
	for _, entry := range filteredLogs {
		bucketKey := entry.Timestamp.In(clt).Truncate(time.Hour).Format(time.RFC3339)
		hourlyBuckets[bucketKey]++
	}
	for i := 0; i < periodHours; i++ {
		targetTime := now.Add(-time.Duration(periodHours-1-i) * time.Hour)
		bucketKey := targetTime.Truncate(time.Hour).Format(time.RFC3339)
		if count, ok := hourlyBuckets[bucketKey]; ok {
			requestsOverTime[i]["requests"] = count
		}
	}

	endpoints := make(map[string]int)
	for _, entry := range filteredLogs {
		endpoints[entry.Path]++
	}

	statusCodes := map[string]int{
		"2xx Success":      0,
		"4xx Client Error": 0,
		"5xx Server Error": 0,
	}
	for _, entry := range filteredLogs {
		switch {
		case entry.StatusCode >= 200 && entry.StatusCode < 300:
			statusCodes["2xx Success"]++
		case entry.StatusCode >= 400 && entry.StatusCode < 500:
			statusCodes["4xx Client Error"]++
		case entry.StatusCode >= 500:
			statusCodes["5xx Server Error"]++
		}
	}
	statusCodesSlice := make([]map[string]interface{}, 0)
	for name, value := range statusCodes {
		statusCodesSlice = append(statusCodesSlice, map[string]interface{}{"name": name, "value": value})
	}

	responseTimeSum := make(map[string]time.Duration)
	responseCount := make(map[string]int)
	for _, entry := range filteredLogs {
		responseTimeSum[entry.Path] += entry.ResponseTime
		responseCount[entry.Path]++
	}
	avgResponseTimes := make([]map[string]interface{}, 0)
	for path, totalTime := range responseTimeSum {
		avg := totalTime.Milliseconds() / int64(responseCount[path])
		avgResponseTimes = append(avgResponseTimes, map[string]interface{}{"endpoint": path, "responseTime": avg})
	}

	recentErrors := make([]LogEntry, 0)
	for i := len(filteredLogs) - 1; i >= 0; i-- {
		if filteredLogs[i].StatusCode >= 500 {
			recentErrors = append(recentErrors, filteredLogs[i])
			if len(recentErrors) >= 10 {
				break
			}
		}
	}

	return DashboardData{
		RequestsOverTime: requestsOverTime,
		Endpoints:        endpoints,
		StatusCodes:      statusCodesSlice,
		AvgResponseTimes: avgResponseTimes,
		RecentErrors:     recentErrors,
	}
}
