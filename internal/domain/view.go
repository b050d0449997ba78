package domain

import "time"

// ChartSpec describes one chart placeholder inside a view.
type ChartSpec struct {
	Metric    string `json:"metric"`
	ChartType string `json:"chart_type"`
}

// View is a named screen owned by an agent, addressed by route.
type View struct {
	ID        int64
	AgentID   int64
	ViewID    string
	Route     string
	Charts    []ChartSpec
	CreatedAt time.Time
}
