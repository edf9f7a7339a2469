package types

// HealthStatus is the observed health of a monitored crop.
type HealthStatus string

const (
	HealthExcellent      HealthStatus = "Excellent"
	HealthGood           HealthStatus = "Good"
	HealthNeedsAttention HealthStatus = "Needs Attention"
	HealthPoor           HealthStatus = "Poor"
)

// HealthStatuses lists every crop health status from best to worst.
func HealthStatuses() []HealthStatus {
	return []HealthStatus{HealthExcellent, HealthGood, HealthNeedsAttention, HealthPoor}
}

// IsValid reports whether h is a known health status.
func (h HealthStatus) IsValid() bool {
	switch h {
	case HealthExcellent, HealthGood, HealthNeedsAttention, HealthPoor:
		return true
	}
	return false
}

// NeedsAttention reports whether the crop should be flagged to the farmer.
func (h HealthStatus) NeedsAttention() bool {
	return h == HealthNeedsAttention || h == HealthPoor
}

// SoilStatus summarises a field's latest soil test.
type SoilStatus string

const (
	SoilExcellent      SoilStatus = "Excellent"
	SoilGood           SoilStatus = "Good"
	SoilNeedsAttention SoilStatus = "Needs Attention"
)

// SeasonStatus is the lifecycle state of a recorded growing season.
type SeasonStatus string

const (
	SeasonCompleted  SeasonStatus = "Completed"
	SeasonInProgress SeasonStatus = "In Progress"
	SeasonPlanned    SeasonStatus = "Planned"
)

// IsValid reports whether s is a known season status.
func (s SeasonStatus) IsValid() bool {
	switch s {
	case SeasonCompleted, SeasonInProgress, SeasonPlanned:
		return true
	}
	return false
}

// Severity grades how damaging a disease is.
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// Severities lists every severity from least to most damaging.
func Severities() []Severity {
	return []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
}

// IsValid reports whether s is a known severity.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// AlertPriority orders dashboard and weather alerts.
type AlertPriority string

const (
	PriorityHigh   AlertPriority = "high"
	PriorityMedium AlertPriority = "medium"
	PriorityLow    AlertPriority = "low"
)

// Rank returns a sort key where higher priorities sort first.
func (p AlertPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}
