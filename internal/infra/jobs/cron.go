package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/xavierca1/coldcall-backend/internal/entity"
	"github.com/xavierca1/coldcall-backend/internal/usecase"
)

// DigestSender: o pedaço do mail sender que o job usa.
type DigestSender interface {
	SendPlanDigest(to, date string, items []entity.CallPlanItem) error
}

// PlanDigestJob manda o plano de ligações do dia por email, de manhã,
// em dia útil. Plano vazio não gera email.
type PlanDigestJob struct {
	CallPlanUC *usecase.CallPlanUseCase
	Mail       DigestSender
	To         string

	cron *cron.Cron
}

func NewPlanDigestJob(callPlanUC *usecase.CallPlanUseCase, mail DigestSender, to string) *PlanDigestJob {
	return &PlanDigestJob{
		CallPlanUC: callPlanUC,
		Mail:       mail,
		To:         to,
	}
}

func (j *PlanDigestJob) Start() error {
	j.cron = cron.New()

	// 08:00, segunda a sexta
	if _, err := j.cron.AddFunc("0 8 * * 1-5", j.run); err != nil {
		return err
	}

	j.cron.Start()
	log.Printf("🕒 Plan digest agendado para %s (08:00, seg-sex)", j.To)
	return nil
}

func (j *PlanDigestJob) Stop() {
	if j.cron != nil {
		j.cron.Stop()
	}
}

func (j *PlanDigestJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	items, err := j.CallPlanUC.Execute(ctx)
	if err != nil {
		log.Printf("❌ [DIGEST] Falha ao montar plano do dia: %v", err)
		return
	}

	if len(items) == 0 {
		log.Println("📭 [DIGEST] Plano vazio hoje, sem email")
		return
	}

	date := time.Now().Format(entity.DateLayout)
	if err := j.Mail.SendPlanDigest(j.To, date, items); err != nil {
		log.Printf("❌ [DIGEST] Falha ao enviar email: %v", err)
		return
	}

	log.Printf("✅ [DIGEST] Plano com %d contatos enviado para %s", len(items), j.To)
}
