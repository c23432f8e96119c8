package mail

import "github.com/xavierca1/coldcall-backend/internal/entity"

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type PlanDigestData struct {
	Date  string
	Items []entity.CallPlanItem
}
