package entity

// Resultado de uma tentativa de ligação. Valores gravados literalmente no log.
const (
	DispositionConnected     = "Connected"
	DispositionNoAnswer      = "NoAnswer"
	DispositionVoicemail     = "Voicemail"
	DispositionCallback      = "Callback"
	DispositionNotInterested = "NotInterested"
	DispositionWrongNumber   = "WrongNumber"
)

var dispositions = map[string]bool{
	DispositionConnected:     true,
	DispositionNoAnswer:      true,
	DispositionVoicemail:     true,
	DispositionCallback:      true,
	DispositionNotInterested: true,
	DispositionWrongNumber:   true,
}

func IsValidDisposition(d string) bool {
	return dispositions[d]
}

// Entidade: CallLog
// Linha da aba "CallLogs". Append-only: nunca existe update ou delete de log.
// ID e Timestamp são preenchidos pelo repositório no append.
type CallLog struct {
	ID              string `json:"id"`
	ContactID       string `json:"contact_id"`
	ContactName     string `json:"contact_name,omitempty"`
	Timestamp       string `json:"timestamp"` // RFC3339, UTC
	DurationSeconds int    `json:"duration_seconds"`
	Disposition     string `json:"disposition"`
	Summary         string `json:"summary,omitempty"`
	RecordingURL    string `json:"recording_url,omitempty"`
	DealStage       string `json:"deal_stage,omitempty"`
	DealStageAfter  string `json:"deal_stage_after,omitempty"`
}

// CallPlanItem: projeção de Contact + motivo da inclusão no plano.
// Derivado, recalculado a cada request, nunca persistido.
type CallPlanItem struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	ContactPerson   string `json:"contact_person,omitempty"`
	DealStage       string `json:"deal_stage"`
	NextFollowUp    string `json:"next_follow_up,omitempty"`
	CallCount       int    `json:"call_count"`
	LastCallSummary string `json:"last_call_summary,omitempty"`
	Reason          string `json:"reason"`
}

// DashboardStats: snapshot derivado do dia. Estágios com zero contatos
// ficam fora do mapa Pipeline.
type DashboardStats struct {
	CallsToday     int            `json:"calls_today"`
	ConnectedToday int            `json:"connected_today"`
	ConversionRate float64        `json:"conversion_rate"`
	Streak         int            `json:"streak"`
	Pipeline       map[string]int `json:"pipeline"`
}

// AISummary: saída estruturada da análise de transcrição.
type AISummary struct {
	Summary              string `json:"summary"`
	RecommendedDealStage string `json:"recommended_deal_stage"`
	NextAction           string `json:"next_action"`
}
