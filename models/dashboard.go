package models

import "time"

type DashboardOverview struct {
	TotalCustomers   int     `json:"total_customers"`
	ActiveCustomers  int     `json:"active_customers"`
	SmsSentThisMonth int     `json:"sms_sent_this_month"`
	ResponseRate     float64 `json:"response_rate"`
	UpcomingSms      int     `json:"upcoming_sms"`
}

type AdminOverview struct {
	TotalBusinesses  int `json:"total_businesses"`
	ActiveBusinesses int `json:"active_businesses"`
	TotalCustomers   int `json:"total_customers"`
	SmsSentToday     int `json:"sms_sent_today"`
	SmsSentThisMonth int `json:"sms_sent_this_month"`
}

type RecentCustomer struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	LastVisit *time.Time `json:"last_visit,omitempty"`
}

type AdminStats struct {
	TotalUsers    int `json:"total_users"`
	ActiveUsers   int `json:"active_users"`
	AdminUsers    int `json:"admin_users"`
	BusinessUsers int `json:"business_users"`
}
